package pipeline

import (
	"context"
	"fmt"

	"github.com/rushteam/askrank/ranker"
)

// Pipeline 把一次排序拆成可组合的 Node 链（如 rank.minimal → rerank.neighbor）。
type Pipeline[T any] struct {
	Name  string
	Nodes []Node[T]
}

// Run 依次执行各 Node，任一 Node 出错即中止（会话随之作废），成功时返回最终顺序。
func (p *Pipeline[T]) Run(ctx context.Context, s *ranker.Session[T]) ([]T, error) {
	for _, node := range p.Nodes {
		if err := node.Process(ctx, s); err != nil {
			return nil, fmt.Errorf("node %s: %w", node.Name(), err)
		}
	}
	return s.Items(), nil
}
