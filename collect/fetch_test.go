package collect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestHTTPFetchGet(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().String(`<html><head><meta charset="windows-1252"></head><body>Café</body></html>`)
	require.NoError(t, err)

	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		switch r.URL.Path {
		case "/utf8":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(`<html><body><a href="/star-rail/characters/seele">Seele</a></body></html>`))
		case "/latin1":
			w.Write([]byte(latin1))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetch(5*time.Second, nil, nil)
	ctx := context.Background()

	body, err := f.Get(ctx, &Request{Url: srv.URL + "/utf8", Cookie: "a=b"})
	require.NoError(t, err)
	assert.Contains(t, string(body), "/star-rail/characters/seele")
	assert.Equal(t, "a=b", gotCookie)

	body, err = f.Get(ctx, &Request{Url: srv.URL + "/latin1"})
	require.NoError(t, err)
	assert.Contains(t, string(body), "Café")

	_, err = f.Get(ctx, &Request{Url: srv.URL + "/missing"})
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestHTTPFetchGetCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewHTTPFetch(time.Minute, nil, nil).Get(ctx, &Request{Url: srv.URL})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)
}
