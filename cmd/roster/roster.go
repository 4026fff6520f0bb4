package roster

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collect"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/config"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Fetch 下载角色列表页并解析出全部角色 id
func Fetch(ctx context.Context, s *config.Settings, logger *zap.Logger) ([]string, error) {
	f, err := s.NewHTTPFetch(logger)
	if err != nil {
		return nil, err
	}
	return FetchWith(ctx, f, strings.TrimSuffix(s.Fetcher.BaseURL, "/"))
}

func FetchWith(ctx context.Context, f collect.Fetcher, url string) ([]string, error) {
	body, err := f.Get(ctx, &collect.Request{Url: url})
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	ids := hsr.ParseRoster(doc)
	if len(ids) == 0 {
		return nil, fmt.Errorf("no characters found on %s", url)
	}
	return ids, nil
}

func Run(ctx context.Context, configPath string) error {
	s, logger, cleanup, err := config.Setup(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	ids, err := Fetch(ctx, s, logger)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	logger.Info("roster loaded", zap.Int("count", len(ids)))
	return nil
}
