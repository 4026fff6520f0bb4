package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collect"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector/filestore"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector/sqlstore"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/limiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const sample = `
logLevel = "debug"

[fetcher]
mode = "file"
timeout = 1500
settle = 250
proxy = ["http://127.0.0.1:8888"]
pagesDir = "saved"
attempts = 4
bin = "/usr/bin/chromium"

[storage]
kind = "sqlite"
sqlUrl = "%s"

[[limit]]
eventCount = 2
eventDur = 10
bucket = 1

[export]
path = "out/builds.xlsx"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, FetcherRod, s.Fetcher.Mode)
	assert.Equal(t, collect.DefaultBaseURL, s.Fetcher.BaseURL)
}

func TestLoad(t *testing.T) {
	dbPath := filepath.ToSlash(filepath.Join(t.TempDir(), "builds.db"))
	s, err := Load(writeConfig(t, fmtSample(dbPath)))
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, FetcherFile, s.Fetcher.Mode)
	assert.Equal(t, 1500*time.Millisecond, s.Fetcher.Timeout)
	assert.Equal(t, 250*time.Millisecond, s.Fetcher.Settle)
	assert.Equal(t, []string{"http://127.0.0.1:8888"}, s.Fetcher.Proxy)
	assert.Equal(t, "saved", s.Fetcher.PagesDir)
	assert.Equal(t, 4, s.Fetcher.Attempts)
	assert.Equal(t, "/usr/bin/chromium", s.Fetcher.Bin)
	// 未配置的项保持默认值
	assert.Equal(t, Default().Fetcher.RetryWait, s.Fetcher.RetryWait)
	assert.Equal(t, Default().Fetcher.TabLabel, s.Fetcher.TabLabel)
	assert.True(t, s.Fetcher.Headless)

	assert.Equal(t, StorageSqlite, s.Storage.Kind)
	assert.Equal(t, dbPath, s.Storage.SqlUrl)
	assert.Equal(t, []limiter.Config{{EventCount: 2, EventDur: 10, Bucket: 1}}, s.Limits)
	assert.Equal(t, "out/builds.xlsx", s.Export.Path)
	assert.Equal(t, rate.Every(5*time.Second), s.NewLimiter().Limit())
}

func fmtSample(dbPath string) string {
	return strings.Replace(sample, "%s", dbPath, 1)
}

func TestBuilders(t *testing.T) {
	logger := zap.NewNop()
	s := Default()
	s.Storage.Dir = filepath.Join(t.TempDir(), "data")

	store, closer, err := s.NewStore(logger)
	require.NoError(t, err)
	assert.IsType(t, &filestore.Store{}, store)
	assert.NoError(t, closer.Close())

	s.Storage.Kind = StorageSqlite
	s.Storage.SqlUrl = ":memory:"
	store, closer, err = s.NewStore(logger)
	require.NoError(t, err)
	assert.IsType(t, &sqlstore.SqlStore{}, store)
	assert.NoError(t, closer.Close())

	s.Storage.Kind = "redis"
	_, _, err = s.NewStore(logger)
	assert.Error(t, err)

	fetcher, closer, err := s.NewPageFetcher(logger)
	require.NoError(t, err)
	assert.IsType(t, &collect.RodFetch{}, fetcher)
	assert.NoError(t, closer.Close(), "closing a browser that never started")

	s.Fetcher.Mode = FetcherFile
	fetcher, _, err = s.NewPageFetcher(logger)
	require.NoError(t, err)
	assert.Equal(t, collect.FileFetch{Dir: s.Fetcher.PagesDir}, fetcher)

	s.Fetcher.Proxy = []string{"not a url"}
	_, err = s.NewHTTPFetch(logger)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	s := Default()
	s.LogLevel = "loud"
	_, _, err := s.NewLogger()
	assert.Error(t, err)

	s.LogLevel = "warn"
	s.LogFile = filepath.Join(t.TempDir(), "logs", "run.log")
	logger, closer, err := s.NewLogger()
	require.NoError(t, err)
	logger.Debug("to file only")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(s.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file only"`)
}
