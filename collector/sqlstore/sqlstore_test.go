package sqlstore

import (
	"path/filepath"
	"testing"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ collector.Store = (*SqlStore)(nil)

func TestSqlStoreMemory(t *testing.T) {
	s, err := New(WithSqlUrl(":memory:"))
	require.NoError(t, err)
	defer s.Close()
	storetest.Run(t, s)
}

func TestSqlStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "builds.db")

	s, err := New(WithSqlUrl(path))
	require.NoError(t, err)
	require.NoError(t, s.Put("acheron", storetest.FullBuild()))
	require.NoError(t, s.Close())

	s, err = New(WithSqlUrl(path))
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("acheron")
	require.NoError(t, err)
	assert.Equal(t, storetest.FullBuild(), got)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"acheron"}, ids)
}
