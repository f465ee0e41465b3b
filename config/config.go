// Package config 负责命令行排序工具的配置：YAML 加载、默认值、校验，
// 以及根据配置构建 Oracle 与 Pipeline 工厂。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/askrank/core"
	"github.com/rushteam/askrank/pipeline"
)

// Oracle 类型
const (
	OraclePrompt = "prompt" // 终端问答
	OracleExpr   = "expr"   // CEL 表达式
)

// Config 是排序工具的配置结构（YAML）。
//
// 示例：
//
//	randomize: true
//	caching: true
//	log_level: debug
//	oracle:
//	  type: expr
//	  preferred: candidate.size() > reference.size()
//	pipeline:
//	  name: default
//	  nodes:
//	    - type: rank.minimal
//	    - type: rerank.neighbor
//	      config:
//	        passes: 2
//	    - type: rerank.topn
//	      config:
//	        n: 10
type Config struct {
	Randomize   bool         `yaml:"randomize"`
	Caching     bool         `yaml:"caching"`
	LogLevel    string       `yaml:"log_level"`
	MetricsFile string       `yaml:"metrics_file"` // node_exporter textfile 路径，空表示不写
	Oracle      OracleConfig `yaml:"oracle"`

	Stages pipeline.Config `yaml:",inline"`
}

// OracleConfig 描述答案来源。
type OracleConfig struct {
	Type       string `yaml:"type"`       // prompt / expr
	Preferred  string `yaml:"preferred"`  // expr：candidate 是否优于 reference
	Equivalent string `yaml:"equivalent"` // expr：二者是否相当（可空）
}

// Default 返回默认配置：开启缓存、终端问答、只做一次 rank.minimal。
func Default() *Config {
	cfg := &Config{
		Caching:  true,
		LogLevel: "info",
		Oracle:   OracleConfig{Type: OraclePrompt},
	}
	cfg.Stages.Pipeline.Name = "default"
	cfg.Stages.Pipeline.Nodes = []pipeline.NodeConfig{{Type: NodeRankMinimal}}
	return cfg
}

// Load 在默认配置之上叠加 YAML 文件中的值。path 为空时返回默认配置。
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Validate 校验 Oracle 配置与 Pipeline 节点列表。
func (c *Config) Validate() error {
	switch c.Oracle.Type {
	case OraclePrompt:
	case OracleExpr:
		if c.Oracle.Preferred == "" {
			return invalid("oracle.preferred is required for oracle type %q", OracleExpr)
		}
	default:
		return invalid("unknown oracle type %q", c.Oracle.Type)
	}
	if len(c.Stages.Pipeline.Nodes) == 0 {
		return invalid("pipeline has no nodes")
	}
	return nil
}

// AppendNode 在 Pipeline 末尾追加一个节点（命令行开关使用），nodeConfig 可为 nil。
func (c *Config) AppendNode(nodeType string, nodeConfig map[string]any) {
	c.Stages.Pipeline.Nodes = append(c.Stages.Pipeline.Nodes,
		pipeline.NodeConfig{Type: nodeType, Config: nodeConfig})
}

func invalid(format string, args ...any) error {
	return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput, fmt.Sprintf(format, args...))
}
