package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher struct {
	body []byte
	err  error
	url  string
}

func (s *staticFetcher) Get(_ context.Context, req *collect.Request) ([]byte, error) {
	s.url = req.Url
	return s.body, s.err
}

func TestFetchWith(t *testing.T) {
	f := &staticFetcher{body: []byte(`
		<div class="employees-container">
			<a href="/star-rail/characters/kafka"><span>Kafka</span></a>
			<a href="/star-rail/characters/blade"><span>Blade</span></a>
		</div>`)}

	ids, err := FetchWith(context.Background(), f, "https://www.prydwen.gg/star-rail/characters")
	require.NoError(t, err)
	assert.Equal(t, []string{"blade", "kafka"}, ids)
	assert.Equal(t, "https://www.prydwen.gg/star-rail/characters", f.url)
}

func TestFetchWithErrors(t *testing.T) {
	_, err := FetchWith(context.Background(), &staticFetcher{err: errors.New("timeout")}, "u")
	assert.ErrorContains(t, err, "fetch roster")

	_, err = FetchWith(context.Background(), &staticFetcher{body: []byte("<html></html>")}, "u")
	assert.ErrorContains(t, err, "no characters found")
}
