package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

// Extractor is the single-character operation the crawler drives.
type Extractor interface {
	ExtractCharacter(ctx context.Context, character string) (*hsr.CharacterBuild, error)
}

// Crawler processes characters one after another: each one is fetched,
// extracted and stored before the next begins.
type Crawler struct {
	options
	node *snowflake.Node
}

func NewEngine(opts ...Option) (*Crawler, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.Extractor == nil {
		return nil, errors.New("engine: no extractor")
	}
	if options.Store == nil {
		return nil, errors.New("engine: no store")
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.Attempts < 1 {
		options.Attempts = 1
	}
	node, err := snowflake.NewNode(options.NodeID)
	if err != nil {
		return nil, fmt.Errorf("engine: snowflake node: %w", err)
	}

	crawler := &Crawler{node: node}
	crawler.options = options
	return crawler, nil
}

// Run processes every character and returns the ids that failed, in order.
// It stops early, reporting the rest as failed, when ctx is cancelled.
func (c *Crawler) Run(ctx context.Context, characters []string) []string {
	var failed []string
	for i, character := range characters {
		if ctx.Err() != nil {
			failed = append(failed, characters[i:]...)
			break
		}
		logger := c.Logger.With(
			zap.String("character", character),
			zap.String("session", c.node.Generate().String()),
		)
		logger.Info(fmt.Sprintf("---- %s (%d/%d) ----", character, i+1, len(characters)))

		if err := c.process(ctx, character, logger); err != nil {
			logger.Error("character failed", zap.Error(err))
			failed = append(failed, character)
		}
	}

	if len(failed) > 0 {
		c.Logger.Warn("characters missed due to an error", zap.Strings("failed", failed))
	} else {
		c.Logger.Info("all characters have been successfully processed")
	}
	return failed
}

func (c *Crawler) process(ctx context.Context, character string, logger *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= c.Attempts; attempt++ {
		if attempt > 1 {
			logger.Info("retrying", zap.Int("attempt", attempt), zap.Duration("wait", c.RetryWait))
			if werr := wait(ctx, c.RetryWait); werr != nil {
				return werr
			}
		}
		if c.Limit != nil {
			if werr := c.Limit.Wait(ctx); werr != nil {
				return werr
			}
		}

		var build *hsr.CharacterBuild
		build, err = c.extract(ctx, character)
		if err != nil {
			logger.Warn("extract failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		report(logger, build)
		return c.Store.Put(character, build)
	}
	return err
}

func (c *Crawler) extract(ctx context.Context, character string) (*hsr.CharacterBuild, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	return c.Extractor.ExtractCharacter(ctx, character)
}

// report 打印每个区块是否找到
func report(logger *zap.Logger, build *hsr.CharacterBuild) {
	for _, s := range build.Sections() {
		mark := "✖"
		if s.Found {
			mark = "✔"
		}
		logger.Info(mark + " - " + s.Name)
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
