package config

import (
	"io"

	"github.com/rushteam/askrank/core"
	"github.com/rushteam/askrank/oracle"
	"github.com/rushteam/askrank/pipeline"
	"github.com/rushteam/askrank/pkg/conv"
	"github.com/rushteam/askrank/rank"
	"github.com/rushteam/askrank/rerank"
)

// 内置 Node 类型
const (
	NodeRankMinimal    = "rank.minimal"
	NodeRerankNeighbor = "rerank.neighbor"
	NodeRerankTopN     = "rerank.topn"
)

// DefaultFactory 返回一个包含所有内置 Node 的默认工厂。
func DefaultFactory[T any]() *pipeline.NodeFactory[T] {
	factory := pipeline.NewNodeFactory[T]()

	// 注册 Rank Nodes
	factory.Register(NodeRankMinimal, func(map[string]any) (pipeline.Node[T], error) {
		return &rank.MinimalNode[T]{}, nil
	})

	// 注册 ReRank Nodes
	factory.Register(NodeRerankNeighbor, func(config map[string]any) (pipeline.Node[T], error) {
		passes := conv.ConfigGetInt(config, "passes", 1)
		if passes < 1 {
			return nil, invalid("%s: passes must be >= 1, got %d", NodeRerankNeighbor, passes)
		}
		return &rerank.NeighborNode[T]{Passes: passes}, nil
	})
	factory.Register(NodeRerankTopN, func(config map[string]any) (pipeline.Node[T], error) {
		n := conv.ConfigGetInt(config, "n", 0)
		if n < 0 {
			return nil, invalid("%s: n must be >= 0, got %d", NodeRerankTopN, n)
		}
		return &rerank.TopNNode[T]{N: n}, nil
	})

	return factory
}

// BuildOracle 根据配置构建 Oracle。
// prompt 类型在 out 上提问、从 in 读取应答；echo 为 true 时回显应答（输入不是终端时）。
func BuildOracle(oc OracleConfig, in io.Reader, out io.Writer, echo bool) (core.Oracle, error) {
	switch oc.Type {
	case OracleExpr:
		o, err := oracle.NewExprOracle(oc.Preferred, oc.Equivalent)
		if err != nil {
			return nil, err
		}
		return o, nil
	case OraclePrompt, "":
		p := oracle.NewLinePrompter(in, out)
		p.Echo = echo
		return oracle.NewPromptOracle(p), nil
	default:
		return nil, invalid("unknown oracle type %q", oc.Type)
	}
}
