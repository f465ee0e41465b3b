package rerank

import (
	"context"

	"github.com/rushteam/askrank/pipeline"
	"github.com/rushteam/askrank/ranker"
)

// TopNNode 是一个 Top-N 截断节点，在排序之后只保留前 N 个物品。
// 截断后的 Node（如 rerank.neighbor）只作用于保留的物品，因此不会再询问被截掉的物品。
//
// 示例：
//
//	p := &pipeline.Pipeline[string]{
//	    Nodes: []pipeline.Node[string]{
//	        &rank.MinimalNode[string]{},     // 排序
//	        &rerank.TopNNode[string]{N: 10}, // 截取 Top 10
//	    },
//	}
type TopNNode[T any] struct {
	// N 要保留的物品数量；N <= 0 或 N >= 物品数时不截断
	N int
}

func (n *TopNNode[T]) Name() string {
	return "rerank.topn"
}

func (n *TopNNode[T]) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode[T]) Process(_ context.Context, s *ranker.Session[T]) error {
	if err := s.Err(); err != nil {
		return err
	}
	s.Truncate(n.N)
	return nil
}
