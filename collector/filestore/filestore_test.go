package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector/storetest"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ collector.Store = (*Store)(nil)

func TestStore(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "data"), nil)
	require.NoError(t, err)
	storetest.Run(t, s)
}

func TestStoreLayout(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Put("acheron", storetest.FullBuild()))

	// stray files are not records
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.json"), 0o755))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temp file left behind")

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"acheron"}, ids)

	data, err := os.ReadFile(filepath.Join(dir, "acheron.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"light_cones": [`)
}

func TestStoreCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, nil)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o644))

	_, err = s.Get("bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, collector.ErrNotFound)
}

func TestStorePutNonFiniteText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div class="team-container-moc">
			<div class="team-row">
				<p class="rank">Rank 1</p>
				<p class="usage">App. rate: NaN%</p>
				<p class="rounds">Avg. cycles: Infinity</p>
				<a href="/star-rail/characters/seele">x</a>
			</div>
		</div>`))
	require.NoError(t, err)
	build := hsr.ParseBuild(doc, "seele", hsr.ElementQuantum, nil)

	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	require.NoError(t, s.Put("seele", build))

	got, err := s.Get("seele")
	require.NoError(t, err)
	require.Len(t, got.Teams, 1)
	assert.Equal(t, 1, *got.Teams[0].Rank)
	assert.Nil(t, got.Teams[0].Usage)
	assert.Nil(t, got.Teams[0].AvgRounds)
}
