package rank

import (
	"context"

	"github.com/rushteam/askrank/pipeline"
	"github.com/rushteam/askrank/ranker"
)

// MinimalNode 是一个 Rank Node：用 Ford–Johnson 归并插入排序对全部物品建立全序，
// 询问次数接近信息论下界。通常作为 Pipeline 的第一个节点。
//
// 示例：
//
//	p := &pipeline.Pipeline[string]{
//	    Nodes: []pipeline.Node[string]{
//	        &rank.MinimalNode[string]{},      // 全量排序
//	        &rerank.NeighborNode[string]{},   // 相邻微调
//	    },
//	}
type MinimalNode[T any] struct{}

func (n *MinimalNode[T]) Name() string {
	return "rank.minimal"
}

func (n *MinimalNode[T]) Kind() pipeline.Kind {
	return pipeline.KindRank
}

func (n *MinimalNode[T]) Process(ctx context.Context, s *ranker.Session[T]) error {
	_, err := s.MinimalCompare(ctx)
	return err
}
