package pipeline

import (
	"context"

	"github.com/rushteam/askrank/ranker"
)

// Kind 用于标记 Node 类型，方便观测/编排（例如按阶段打点）。
type Kind string

const (
	KindRank   Kind = "rank"   // 排序阶段：对全部物品建立全序
	KindReRank Kind = "rerank" // 重排阶段：在排序结果上做局部微调
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用"作用于会话"的形态：Node 通过 Session 发起比较，结果写回调用方切片。
type Node[T any] interface {
	Name() string
	Kind() Kind

	Process(ctx context.Context, s *ranker.Session[T]) error
}
