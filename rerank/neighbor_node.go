package rerank

import (
	"context"

	"github.com/rushteam/askrank/pipeline"
	"github.com/rushteam/askrank/ranker"
)

// NeighborNode 是一个 ReRank Node：从左到右把每对相邻物品比较一次（n-1 次比较），
// 后者更优时交换。默认只走一遍；Passes > 1 时重复多遍，每遍仍是 n-1 次比较。
//
// 使用场景：
//   - 在 rank.minimal 之后做一次廉价的微调（开启缓存时多数比较命中缓存）
//   - 初始顺序大致正确、只需修正相邻错位时单独使用
type NeighborNode[T any] struct {
	Passes int
}

func (n *NeighborNode[T]) Name() string {
	return "rerank.neighbor"
}

func (n *NeighborNode[T]) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *NeighborNode[T]) Process(ctx context.Context, s *ranker.Session[T]) error {
	passes := max(n.Passes, 1)
	for range passes {
		if _, err := s.NeighborCompare(ctx); err != nil {
			return err
		}
	}
	return nil
}
