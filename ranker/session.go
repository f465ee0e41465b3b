// Package ranker 是排序引擎的门面：包装原始物品、驱动归并插入排序，
// 并把结果顺序写回调用方的切片。
package ranker

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rushteam/askrank/compare"
	"github.com/rushteam/askrank/core"
	"github.com/rushteam/askrank/mergeinsert"
)

// Session 是一次排序会话：物品、关系缓存与计数都只在会话内有效，结束后丢弃。
//
// collection 与调用方传入的切片共享底层数组，排序结果直接写回其中；
// wrapped 是工作顺序（可能被打乱），每次操作结束后与 collection 对齐。
// 任一操作返回错误后会话作废，后续调用返回同一错误。
type Session[T any] struct {
	id         string
	collection []T
	wrapped    []*compare.Item
	cmp        *compare.Comparator
	logger     *zap.Logger
	err        error
}

// New 创建排序会话。开启缓存（默认）且某个物品可能可变时返回 MutabilityError。
func New[T any](items []T, oracle core.Oracle, opts ...Option) (*Session[T], error) {
	if oracle == nil {
		return nil, core.NewDomainError(core.ModuleRanker, core.ErrorCodeInvalidInput, "oracle is required")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	id := uuid.NewString()
	logger := o.logger.With(zap.String("session", id))
	cmp := compare.NewComparator(oracle,
		compare.WithLogger(logger),
		compare.WithMetrics(o.metrics),
	)

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	if o.randomize {
		r := o.rand
		if r == nil {
			r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		r.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	wrapped := make([]*compare.Item, len(items))
	for k, i := range order {
		it, err := cmp.Wrap(items[i], o.caching)
		if err != nil {
			return nil, fmt.Errorf("wrap item %d: %w", i, err)
		}
		it.SetIndex(i)
		wrapped[k] = it
	}

	logger.Debug("ranking session created",
		zap.Int("items", len(items)),
		zap.Bool("caching", o.caching),
		zap.Bool("randomize", o.randomize),
	)

	return &Session[T]{
		id:         id,
		collection: items,
		wrapped:    wrapped,
		cmp:        cmp,
		logger:     logger,
	}, nil
}

// ID 返回会话 id（用于日志关联）。
func (s *Session[T]) ID() string { return s.id }

// Len 返回物品个数。
func (s *Session[T]) Len() int { return len(s.collection) }

// Items 返回调用方的切片（当前顺序）。
func (s *Session[T]) Items() []T { return s.collection }

// Stats 返回到目前为止的比较计数。
func (s *Session[T]) Stats() compare.Stats { return s.cmp.Stats() }

// Err 返回使会话作废的错误。
func (s *Session[T]) Err() error { return s.err }

// MinimalCompare 用尽量少的询问对全部物品排序，结果按偏好降序（最优在前）
// 写回调用方切片并返回。
func (s *Session[T]) MinimalCompare(ctx context.Context) ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	sorted, err := mergeinsert.Sort[*compare.Item](ctx, s.wrapped, s.cmp.LessThan)
	if err != nil {
		return nil, s.fail("minimal compare", err)
	}
	s.wrapped = sorted
	s.apply()

	st := s.cmp.Stats()
	s.logger.Debug("minimal compare finished",
		zap.Int("items", len(s.collection)),
		zap.Int("queries", st.Queries),
		zap.Int("cache_hits", st.CacheHits),
	)
	return s.collection, nil
}

// NeighborCompare 从左到右比较每对相邻物品一次（共 n-1 次），
// 后者更优时交换。只走一遍，不迭代到不动点。
func (s *Session[T]) NeighborCompare(ctx context.Context) ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := 0; i+1 < len(s.wrapped); i++ {
		lt, err := s.cmp.LessThan(ctx, s.wrapped[i], s.wrapped[i+1])
		if err != nil {
			return nil, s.fail("neighbor compare", err)
		}
		if lt {
			s.wrapped[i], s.wrapped[i+1] = s.wrapped[i+1], s.wrapped[i]
		}
	}
	s.apply()

	s.logger.Debug("neighbor compare finished",
		zap.Int("items", len(s.collection)),
		zap.Int("queries", s.cmp.Stats().Queries),
	)
	return s.collection, nil
}

// Truncate 只保留当前顺序的前 n 个物品并返回它们；n <= 0 或 n >= Len 时不变。
// 调用方切片的前 n 个位置即结果，之后的比较只涉及保留的物品。
func (s *Session[T]) Truncate(n int) []T {
	if s.err != nil || n <= 0 || n >= len(s.collection) {
		return s.collection
	}
	s.apply()
	s.collection = s.collection[:n]
	s.wrapped = s.wrapped[:n]
	s.logger.Debug("session truncated", zap.Int("items", n))
	return s.collection
}

// apply 按 wrapped 中记录的原位置重排 collection，并把位置更新为新下标。
func (s *Session[T]) apply() {
	snapshot := slices.Clone(s.collection)
	for k, it := range s.wrapped {
		s.collection[k] = snapshot[it.Index()]
		it.SetIndex(k)
	}
}

func (s *Session[T]) fail(op string, err error) error {
	s.err = fmt.Errorf("%s: %w", op, err)
	s.logger.Debug("ranking session aborted", zap.Error(s.err))
	return s.err
}
