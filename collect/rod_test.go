package collect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRodFetch(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a browser")
	}
	bin, ok := launcher.LookPath()
	if !ok {
		t.Skip("no local chrome")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join("testdata", filepath.Base(r.URL.Path)+".html"))
	}))
	defer srv.Close()

	r := &RodFetch{BaseURL: srv.URL, Bin: bin, Headless: true, Timeout: 3 * time.Second}
	defer r.Close()
	ctx := context.Background()

	page, err := r.Render(ctx, "seele")
	require.NoError(t, err)
	defer page.Close()
	assert.Equal(t, hsr.ElementQuantum, hsr.DetectElement(page.Document(), nil))

	selected, err := r.SelectTab(ctx, page, hsr.DefaultTabLabel, hsr.ElementQuantum)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sparkle"}, hsr.ParseSynergy(selected.Document(), hsr.ElementQuantum, nil))

	// 超时后 page 仍可继续使用
	_, err = r.SelectTab(ctx, page, hsr.DefaultTabLabel, hsr.ElementFire)
	assert.ErrorIs(t, err, hsr.ErrTabNotFound)
	_, err = r.SelectTab(ctx, page, hsr.DefaultTabLabel, hsr.ElementQuantum)
	assert.NoError(t, err)
}
