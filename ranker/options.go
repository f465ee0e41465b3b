package ranker

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/rushteam/askrank/compare"
)

// Option 配置 Session。
type Option func(*options)

type options struct {
	randomize bool
	caching   bool
	rand      *rand.Rand
	logger    *zap.Logger
	metrics   *compare.Metrics
}

func defaultOptions() *options {
	return &options{
		caching: true,
		logger:  zap.NewNop(),
	}
}

// WithRandomize 在包装前打乱工作顺序（缓解裁决者疲劳/偏差，不影响正确性）。默认 false。
func WithRandomize(randomize bool) Option {
	return func(o *options) {
		o.randomize = randomize
	}
}

// WithCaching 设置是否缓存比较结论。默认 true。
// 开启时物品必须不可变，否则 New 返回 MutabilityError。
func WithCaching(caching bool) Option {
	return func(o *options) {
		o.caching = caching
	}
}

// WithRand 指定打乱所用的随机源（测试中用于固定顺序）。
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithLogger 设置日志（默认 zap.NewNop）。
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics 设置 Prometheus 指标。
func WithMetrics(m *compare.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
