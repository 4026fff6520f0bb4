package engine

import (
	"time"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/limiter"
	"go.uber.org/zap"
)

type Option func(opts *options)

type options struct {
	Logger    *zap.Logger
	Extractor Extractor
	Store     collector.Store
	Limit     limiter.RateLimiter
	Attempts  int           // 每个角色最多尝试次数
	RetryWait time.Duration // 两次尝试之间的等待
	Timeout   time.Duration // 单个角色会话的超时，0 表示不限
	NodeID    int64         // snowflake 节点号
}

var defaultOptions = options{
	Logger:    zap.NewNop(),
	Attempts:  1,
	RetryWait: 5 * time.Second,
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.Logger = logger
	}
}

func WithExtractor(extractor Extractor) Option {
	return func(opts *options) {
		opts.Extractor = extractor
	}
}

func WithStore(store collector.Store) Option {
	return func(opts *options) {
		opts.Store = store
	}
}

func WithLimiter(limit limiter.RateLimiter) Option {
	return func(opts *options) {
		opts.Limit = limit
	}
}

func WithRetry(attempts int, wait time.Duration) Option {
	return func(opts *options) {
		opts.Attempts = attempts
		opts.RetryWait = wait
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.Timeout = timeout
	}
}

func WithNodeID(id int64) Option {
	return func(opts *options) {
		opts.NodeID = id
	}
}
