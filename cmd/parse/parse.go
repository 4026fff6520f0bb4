package parse

import (
	"context"
	"fmt"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/cmd/roster"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/collect"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/config"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/engine"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/limiter"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"go.uber.org/zap"
)

type Options struct {
	Characters []string
	All        bool
	FromDir    string // 非空时离线解析该目录下保存的页面
}

func Run(ctx context.Context, configPath string, opts Options) error {
	s, logger, cleanup, err := config.Setup(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.FromDir != "" {
		s.Fetcher.Mode = config.FetcherFile
		s.Fetcher.PagesDir = opts.FromDir
	}

	characters, err := resolveCharacters(ctx, s, logger, opts)
	if err != nil {
		return err
	}
	if len(characters) == 0 {
		return fmt.Errorf("no characters given, use --character or --all")
	}
	logger.Info("characters to process", zap.Int("count", len(characters)))

	fetcher, closeFetcher, err := s.NewPageFetcher(logger)
	if err != nil {
		return err
	}
	defer closeFetcher.Close()

	store, closeStore, err := s.NewStore(logger)
	if err != nil {
		return err
	}
	defer closeStore.Close()

	extractor := hsr.NewExtractor(
		hsr.WithFetcher(fetcher),
		hsr.WithLogger(logger.Named("hsr")),
		hsr.WithTabLabel(s.Fetcher.TabLabel),
	)

	crawler, err := engine.NewEngine(
		engine.WithExtractor(extractor),
		engine.WithStore(store),
		engine.WithLogger(logger),
		engine.WithLimiter(limit(s)),
		engine.WithRetry(s.Fetcher.Attempts, s.Fetcher.RetryWait),
		engine.WithTimeout(2*s.Fetcher.Timeout+s.Fetcher.Settle),
	)
	if err != nil {
		return err
	}

	if failed := crawler.Run(ctx, characters); len(failed) > 0 {
		return fmt.Errorf("%d of %d characters failed: %v", len(failed), len(characters), failed)
	}
	return nil
}

// 离线模式下没有网络请求，不需要限速
func limit(s *config.Settings) limiter.RateLimiter {
	if s.Fetcher.Mode == config.FetcherFile {
		return nil
	}
	return s.NewLimiter()
}

func resolveCharacters(ctx context.Context, s *config.Settings, logger *zap.Logger, opts Options) ([]string, error) {
	if !opts.All {
		return opts.Characters, nil
	}
	if s.Fetcher.Mode == config.FetcherFile {
		return collect.FileFetch{Dir: s.Fetcher.PagesDir}.Characters()
	}
	return roster.Fetch(ctx, s, logger)
}
