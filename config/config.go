package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collect"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector/filestore"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector/sqlstore"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/limiter"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/log"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/proxy"
	"github.com/go-micro/plugins/v4/config/encoder/toml"
	"go-micro.dev/v4/config"
	"go-micro.dev/v4/config/reader"
	"go-micro.dev/v4/config/reader/json"
	"go-micro.dev/v4/config/source"
	"go-micro.dev/v4/config/source/file"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultPath = "config.toml"

const (
	FetcherRod  = "rod"
	FetcherFile = "file"

	StorageFile   = "file"
	StorageSqlite = "sqlite"
)

type Fetcher struct {
	Mode      string
	BaseURL   string
	Headless  bool
	Bin       string // 浏览器路径，可选
	Timeout   time.Duration
	Settle    time.Duration
	Proxy     []string
	PagesDir  string // FileFetch 读取的目录
	TabLabel  string
	Attempts  int
	RetryWait time.Duration
}

type Storage struct {
	Kind   string
	Dir    string
	SqlUrl string
}

type Export struct {
	Path string
}

// Settings 程序的全部配置，每一项都有默认值
type Settings struct {
	LogLevel string
	LogFile  string
	Fetcher  Fetcher
	Storage  Storage
	Limits   []limiter.Config
	Export   Export
}

func Default() *Settings {
	return &Settings{
		LogLevel: "INFO",
		Fetcher: Fetcher{
			Mode:      FetcherRod,
			BaseURL:   collect.DefaultBaseURL,
			Headless:  true,
			Timeout:   30 * time.Second,
			Settle:    3 * time.Second,
			PagesDir:  "pages",
			TabLabel:  hsr.DefaultTabLabel,
			Attempts:  2,
			RetryWait: 5 * time.Second,
		},
		Storage: Storage{
			Kind:   StorageFile,
			Dir:    "data",
			SqlUrl: "data/builds.db",
		},
		Limits: []limiter.Config{{EventCount: 1, EventDur: 5, Bucket: 1}},
		Export: Export{Path: "builds.xlsx"},
	}
}

// Load 读取 toml 配置文件；文件不存在时返回默认配置
func Load(path string) (*Settings, error) {
	s := Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}

	enc := toml.NewEncoder()
	cfg, err := config.NewConfig(config.WithReader(json.NewReader(reader.WithEncoder(enc))))
	if err != nil {
		return nil, err
	}
	err = cfg.Load(file.NewSource(
		file.WithPath(path),
		source.WithEncoder(enc),
	))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	s.LogLevel = cfg.Get("logLevel").String(s.LogLevel)
	s.LogFile = cfg.Get("logFile").String(s.LogFile)

	f := &s.Fetcher
	f.Mode = cfg.Get("fetcher", "mode").String(f.Mode)
	f.BaseURL = cfg.Get("fetcher", "baseUrl").String(f.BaseURL)
	f.Headless = cfg.Get("fetcher", "headless").Bool(f.Headless)
	f.Bin = cfg.Get("fetcher", "bin").String(f.Bin)
	f.Timeout = millis(cfg.Get("fetcher", "timeout").Int(int(f.Timeout.Milliseconds())))
	f.Settle = millis(cfg.Get("fetcher", "settle").Int(int(f.Settle.Milliseconds())))
	f.Proxy = cfg.Get("fetcher", "proxy").StringSlice(f.Proxy)
	f.PagesDir = cfg.Get("fetcher", "pagesDir").String(f.PagesDir)
	f.TabLabel = cfg.Get("fetcher", "tabLabel").String(f.TabLabel)
	f.Attempts = cfg.Get("fetcher", "attempts").Int(f.Attempts)
	f.RetryWait = millis(cfg.Get("fetcher", "retryWait").Int(int(f.RetryWait.Milliseconds())))

	st := &s.Storage
	st.Kind = cfg.Get("storage", "kind").String(st.Kind)
	st.Dir = cfg.Get("storage", "dir").String(st.Dir)
	st.SqlUrl = cfg.Get("storage", "sqlUrl").String(st.SqlUrl)

	if v := cfg.Get("limit"); v.Exists() {
		var limits []limiter.Config
		if err := v.Scan(&limits); err != nil {
			return nil, fmt.Errorf("scan limit: %w", err)
		}
		s.Limits = limits
	}

	s.Export.Path = cfg.Get("export", "path").String(s.Export.Path)
	return s, nil
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// NewLogger 终端总是输出；配置了 logFile 时额外写一份 json 日志
func (s *Settings) NewLogger() (*zap.Logger, io.Closer, error) {
	level, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}
	if s.LogFile == "" {
		return log.NewLogger(log.NewStdoutPlugin(level)), nopCloser{}, nil
	}
	plugin, closer := log.NewTeePlugin(s.LogFile, level, zapcore.DebugLevel)
	return log.NewLogger(plugin), closer, nil
}

// NewPageFetcher 按 fetcher.mode 选择浏览器或本地文件
func (s *Settings) NewPageFetcher(logger *zap.Logger) (hsr.PageFetcher, io.Closer, error) {
	switch s.Fetcher.Mode {
	case FetcherRod:
		var p string
		if len(s.Fetcher.Proxy) > 0 {
			p = s.Fetcher.Proxy[0]
		}
		r := &collect.RodFetch{
			BaseURL:  s.Fetcher.BaseURL,
			Timeout:  s.Fetcher.Timeout,
			Settle:   s.Fetcher.Settle,
			Headless: s.Fetcher.Headless,
			Proxy:    p,
			Bin:      s.Fetcher.Bin,
			Logger:   logger.Named("rod"),
		}
		return r, r, nil
	case FetcherFile:
		return collect.FileFetch{Dir: s.Fetcher.PagesDir}, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown fetcher mode %q", s.Fetcher.Mode)
	}
}

// NewHTTPFetch 静态页面（角色列表）用，代理按轮询使用
func (s *Settings) NewHTTPFetch(logger *zap.Logger) (*collect.HTTPFetch, error) {
	p, err := proxy.RoundRobinProxySwitcher(s.Fetcher.Proxy...)
	if err != nil {
		return nil, err
	}
	return collect.NewHTTPFetch(s.Fetcher.Timeout, p, logger.Named("http")), nil
}

func (s *Settings) NewStore(logger *zap.Logger) (collector.Store, io.Closer, error) {
	switch s.Storage.Kind {
	case StorageFile:
		store, err := filestore.New(s.Storage.Dir, logger.Named("filestore"))
		if err != nil {
			return nil, nil, err
		}
		return store, nopCloser{}, nil
	case StorageSqlite:
		store, err := sqlstore.New(
			sqlstore.WithSqlUrl(s.Storage.SqlUrl),
			sqlstore.WithLogger(logger.Named("sqlDB")),
		)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage kind %q", s.Storage.Kind)
	}
}

func (s *Settings) NewLimiter() *limiter.MultiLimiter {
	return limiter.FromConfig(s.Limits)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup 读取配置、初始化日志并替换 zap 的全局 logger
// 返回的 cleanup 负责 Sync 与关闭日志文件
func Setup(path string) (*Settings, *zap.Logger, func(), error) {
	s, err := Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closer, err := s.NewLogger()
	if err != nil {
		return nil, nil, nil, err
	}
	undo := zap.ReplaceGlobals(logger)
	logger.Debug("log init end", zap.String("config", path))

	cleanup := func() {
		_ = logger.Sync()
		undo()
		closer.Close()
	}
	return s, logger, cleanup, nil
}
