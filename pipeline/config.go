package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/askrank/core"
)

// Config 是 Pipeline 的配置结构（支持 YAML/JSON）。
type Config struct {
	Pipeline struct {
		Name  string       `yaml:"name" json:"name"`
		Nodes []NodeConfig `yaml:"nodes" json:"nodes"`
	} `yaml:"pipeline" json:"pipeline"`
}

// NodeConfig 是单个 Node 的配置。
type NodeConfig struct {
	Type   string         `yaml:"type" json:"type"`     // rank.minimal / rerank.neighbor
	Config map[string]any `yaml:"config" json:"config"` // Node 特定配置
}

// LoadFromYAML 从 YAML 文件加载 Pipeline 配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return &cfg, nil
}

// LoadFromJSON 从 JSON 文件加载 Pipeline 配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return &cfg, nil
}

// BuildPipeline 根据配置构建 Pipeline（需要 NodeFactory 注册 Node 构建器）。
func BuildPipeline[T any](c *Config, factory *NodeFactory[T]) (*Pipeline[T], error) {
	nodes := make([]Node[T], 0, len(c.Pipeline.Nodes))

	for _, nc := range c.Pipeline.Nodes {
		node, err := factory.Build(nc.Type, nc.Config)
		if err != nil {
			return nil, fmt.Errorf("build node %s: %w", nc.Type, err)
		}
		nodes = append(nodes, node)
	}

	return &Pipeline[T]{Name: c.Pipeline.Name, Nodes: nodes}, nil
}

// NodeBuilder 根据 config 构建 Node。
type NodeBuilder[T any] func(config map[string]any) (Node[T], error)

// NodeFactory 用于根据配置构建 Node 实例。
type NodeFactory[T any] struct {
	builders map[string]NodeBuilder[T]
}

func NewNodeFactory[T any]() *NodeFactory[T] {
	return &NodeFactory[T]{
		builders: make(map[string]NodeBuilder[T]),
	}
}

// Register 注册 Node 构建器。
func (f *NodeFactory[T]) Register(nodeType string, builder NodeBuilder[T]) {
	if nodeType == "" || builder == nil {
		return
	}
	f.builders[nodeType] = builder
}

// Build 根据类型和配置构建 Node。
func (f *NodeFactory[T]) Build(nodeType string, config map[string]any) (Node[T], error) {
	builder, ok := f.builders[nodeType]
	if !ok {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			fmt.Sprintf("unknown node type %q (supported: %v)", nodeType, f.SupportedTypes()))
	}
	return builder(config)
}

// SupportedTypes 返回已注册的 Node 类型列表（排序），用于错误提示与校验。
func (f *NodeFactory[T]) SupportedTypes() []string {
	types := make([]string, 0, len(f.builders))
	for t := range f.builders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Validate 校验配置中所有 node 类型均已注册。
func (f *NodeFactory[T]) Validate(c *Config) error {
	if c == nil {
		return nil
	}
	for _, nc := range c.Pipeline.Nodes {
		if _, ok := f.builders[nc.Type]; !ok {
			return core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
				fmt.Sprintf("unsupported node type %q (supported: %v)", nc.Type, f.SupportedTypes()))
		}
	}
	return nil
}
