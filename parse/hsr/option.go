package hsr

import (
	"go.uber.org/zap"
)

// DefaultTabLabel 构筑数据所在的标签页
const DefaultTabLabel = "Build and teams"

type options struct {
	fetcher  PageFetcher
	logger   *zap.Logger
	tabLabel string
}

var defaultOptions = options{
	logger:   zap.NewNop(),
	tabLabel: DefaultTabLabel,
}

type Option func(opts *options)

func WithFetcher(fetcher PageFetcher) Option {
	return func(opts *options) {
		opts.fetcher = fetcher
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithTabLabel(label string) Option {
	return func(opts *options) {
		opts.tabLabel = label
	}
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
