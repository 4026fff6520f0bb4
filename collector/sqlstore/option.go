package sqlstore

import (
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	sqlUrl string
}

var defaultOptions = options{
	logger: zap.NewNop(),
	sqlUrl: "data/builds.db",
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithSqlUrl(sqlUrl string) Option {
	return func(opts *options) {
		opts.sqlUrl = sqlUrl
	}
}
