// Package askrank 是一个"人工比较"排序工具包：比较结果由外部裁决者（通常是人）给出，
// 引擎负责用尽量少的提问得到全序。
//
// 设计要点：
// - Cache-first: 关系缓存记住并细化每个回答，同一逻辑问题不会问第二遍
// - Ford–Johnson: 归并插入排序按 Jacobsthal 顺序插入，询问次数接近信息论下界
// - Pipeline-first: 排序阶段通过 Node 串联（rank.minimal → rerank.neighbor）
// - Oracle 可替换: 终端问答、CEL 表达式或任意实现 core.Oracle 的类型
package askrank

import (
	"github.com/rushteam/askrank/core"
	"github.com/rushteam/askrank/ranker"
)

// 轻量 facade：便于用户直接 import "askrank" 使用核心抽象。
type Oracle = core.Oracle
type Relation = core.Relation
type Session[T any] = ranker.Session[T]
type Option = ranker.Option

var (
	WithRandomize = ranker.WithRandomize
	WithCaching   = ranker.WithCaching
	WithLogger    = ranker.WithLogger
	WithMetrics   = ranker.WithMetrics
)

// New 创建排序会话，见 ranker.New。
func New[T any](items []T, oracle Oracle, opts ...Option) (*Session[T], error) {
	return ranker.New(items, oracle, opts...)
}
