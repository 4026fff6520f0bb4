package collect

import (
	"context"
	"testing"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ hsr.PageFetcher = FileFetch{}
var _ hsr.PageFetcher = (*RodFetch)(nil)

func TestFileFetchSelectTab(t *testing.T) {
	f := FileFetch{Dir: "testdata"}
	ctx := context.Background()

	page, err := f.Render(ctx, "seele")
	require.NoError(t, err)
	defer page.Close()

	selected, err := f.SelectTab(ctx, page, hsr.DefaultTabLabel, hsr.ElementQuantum)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sparkle"}, hsr.ParseSynergy(selected.Document(), hsr.ElementQuantum, nil))

	// scoped to another element the tab is not there
	_, err = f.SelectTab(ctx, page, hsr.DefaultTabLabel, hsr.ElementFire)
	assert.ErrorIs(t, err, hsr.ErrTabNotFound)

	// unknown element falls back to every tab
	_, err = f.SelectTab(ctx, page, hsr.DefaultTabLabel, hsr.ElementUnknown)
	assert.NoError(t, err)
}

func TestFileFetchMissingTab(t *testing.T) {
	f := FileFetch{Dir: "testdata"}
	_, err := hsr.NewExtractor(hsr.WithFetcher(f)).ExtractCharacter(context.Background(), "arlan")
	require.ErrorIs(t, err, hsr.ErrTabNotFound)

	var ee *hsr.ExtractError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "arlan", ee.Character)
}

func TestFileFetchMissingPage(t *testing.T) {
	_, err := FileFetch{Dir: "testdata"}.Render(context.Background(), "nobody")
	assert.Error(t, err)
}

func TestFileFetchCharacters(t *testing.T) {
	ids, err := FileFetch{Dir: "testdata"}.Characters()
	require.NoError(t, err)
	assert.Equal(t, []string{"arlan", "seele"}, ids)

	ids, err = FileFetch{Dir: t.TempDir()}.Characters()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
