package compare

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rushteam/askrank/core"
)

// Stats 是会话内的比较计数。
type Stats struct {
	Comparisons int // LessThan / Equal 调用次数（含缓存命中）
	Queries     int // 实际询问外部 Oracle 的次数
	CacheHits   int // 由关系缓存直接回答的次数
}

// Comparator 基于关系缓存回答物品之间的比较，缓存缺失时询问外部 Oracle。
//
// 只有 LessThan 和 Equal 会询问 Oracle，其余四个谓词由二者组合得到。
// 一个 Comparator 对应一个排序会话，单线程使用。
type Comparator struct {
	oracle  core.Oracle
	cache   *Cache
	logger  *zap.Logger
	metrics *Metrics
	stats   Stats
	nextID  int
}

// Option 配置 Comparator。
type Option func(*Comparator)

// WithLogger 设置日志（默认 zap.NewNop）。
func WithLogger(logger *zap.Logger) Option {
	return func(c *Comparator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics 设置 Prometheus 指标（默认不上报）。
func WithMetrics(m *Metrics) Option {
	return func(c *Comparator) {
		c.metrics = m
	}
}

func NewComparator(oracle core.Oracle, opts ...Option) *Comparator {
	c := &Comparator{
		oracle: oracle,
		cache:  NewCache(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wrap 包装原始值并分配身份令牌。
// 开启缓存且值可能可变时返回 MutabilityError。
func (c *Comparator) Wrap(value any, caching bool) (*Item, error) {
	if caching && IsMutable(value) {
		return nil, core.NewMutabilityError(core.ModuleCompare,
			fmt.Sprintf("item of type %T may be mutable; disable caching or pass an immutable value", value))
	}
	it := &Item{id: c.nextID, value: value, caching: caching}
	c.nextID++
	return it, nil
}

// Cache 返回会话的关系缓存（只读用途）。
func (c *Comparator) Cache() *Cache { return c.cache }

// Stats 返回当前计数。
func (c *Comparator) Stats() Stats { return c.stats }

func sameCaching(a, b *Item) error {
	if a.caching != b.caching {
		return core.NewConfigurationError(core.ModuleCompare,
			"all items compared with each other must share the same caching setting")
	}
	return nil
}

// LessThan 判断 a < b，即 b 是否优于 a。
func (c *Comparator) LessThan(ctx context.Context, a, b *Item) (bool, error) {
	c.stats.Comparisons++
	if err := sameCaching(a, b); err != nil {
		return false, err
	}
	if a.id == b.id {
		return false, nil
	}

	var prior core.Relation
	if a.caching {
		prior, _ = c.cache.Lookup(a.id, b.id)
		switch prior {
		case core.LessThan:
			c.hit(KindPreferred, a, b, prior)
			return true, nil
		case core.GreaterOrEqual, core.Equal, core.GreaterThan:
			c.hit(KindPreferred, a, b, prior)
			return false, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.query(KindPreferred, a, b)
	preferred, err := c.oracle.AskPreferred(ctx, b.value, a.value)
	if err != nil {
		return false, fmt.Errorf("ask preferred: %w", err)
	}
	if !a.caching {
		return preferred, nil
	}

	var next core.Relation
	switch {
	case preferred:
		next = core.LessThan
	case prior == core.LessOrEqual:
		next = core.Equal
	case prior == core.NotEqual:
		next = core.GreaterThan
	default:
		next = core.GreaterOrEqual
	}
	if err := c.cache.Record(a.id, b.id, next); err != nil {
		return false, err
	}
	return preferred, nil
}

// Equal 判断 a 与 b 是否大致相当。
func (c *Comparator) Equal(ctx context.Context, a, b *Item) (bool, error) {
	c.stats.Comparisons++
	if err := sameCaching(a, b); err != nil {
		return false, err
	}
	if a.id == b.id {
		return true, nil
	}

	var prior core.Relation
	if a.caching {
		prior, _ = c.cache.Lookup(a.id, b.id)
		switch prior {
		case core.Equal:
			c.hit(KindEquivalent, a, b, prior)
			return true, nil
		case core.NotEqual, core.LessThan, core.GreaterThan:
			c.hit(KindEquivalent, a, b, prior)
			return false, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.query(KindEquivalent, a, b)
	equivalent, err := c.oracle.AskEquivalent(ctx, b.value, a.value)
	if err != nil {
		return false, fmt.Errorf("ask equivalent: %w", err)
	}
	if !a.caching {
		return equivalent, nil
	}

	var next core.Relation
	switch {
	case equivalent:
		next = core.Equal
	case prior == core.LessOrEqual:
		next = core.LessThan
	case prior == core.GreaterOrEqual:
		next = core.GreaterThan
	default:
		next = core.NotEqual
	}
	if err := c.cache.Record(a.id, b.id, next); err != nil {
		return false, err
	}
	return equivalent, nil
}

// LessOrEqual 判断 a <= b。缓存中已有结论时直接返回。
func (c *Comparator) LessOrEqual(ctx context.Context, a, b *Item) (bool, error) {
	if a.caching && b.caching {
		if prior, ok := c.cache.Lookup(a.id, b.id); ok {
			switch prior {
			case core.LessOrEqual, core.Equal, core.LessThan:
				return true, nil
			case core.GreaterThan:
				return false, nil
			}
		}
	}
	lt, err := c.LessThan(ctx, a, b)
	if err != nil || lt {
		return lt, err
	}
	return c.Equal(ctx, a, b)
}

// GreaterThan 判断 a > b。
func (c *Comparator) GreaterThan(ctx context.Context, a, b *Item) (bool, error) {
	le, err := c.LessOrEqual(ctx, a, b)
	if err != nil {
		return false, err
	}
	return !le, nil
}

// GreaterOrEqual 判断 a >= b。
func (c *Comparator) GreaterOrEqual(ctx context.Context, a, b *Item) (bool, error) {
	lt, err := c.LessThan(ctx, a, b)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

// NotEqual 判断 a != b。
func (c *Comparator) NotEqual(ctx context.Context, a, b *Item) (bool, error) {
	eq, err := c.Equal(ctx, a, b)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func (c *Comparator) hit(kind string, a, b *Item, r core.Relation) {
	c.stats.CacheHits++
	c.metrics.incCacheHit(kind)
	c.logger.Debug("relation cache hit",
		zap.String("kind", kind),
		zap.Int("a", a.id),
		zap.Int("b", b.id),
		zap.Stringer("relation", r),
	)
}

func (c *Comparator) query(kind string, a, b *Item) {
	c.stats.Queries++
	c.metrics.incQuery(kind)
	c.logger.Debug("asking oracle",
		zap.String("kind", kind),
		zap.Int("a", a.id),
		zap.Int("b", b.id),
	)
}
