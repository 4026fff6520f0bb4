package proxy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinProxySwitcher(t *testing.T) {
	p, err := RoundRobinProxySwitcher("http://127.0.0.1:8888", "socks5://127.0.0.1:1080")
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "https://www.prydwen.gg/", nil)
	var hosts []string
	for i := 0; i < 4; i++ {
		u, err := p(req)
		require.NoError(t, err)
		hosts = append(hosts, u.Host)
	}
	assert.Equal(t, []string{"127.0.0.1:8888", "127.0.0.1:1080", "127.0.0.1:8888", "127.0.0.1:1080"}, hosts)
}

func TestRoundRobinProxySwitcherEmpty(t *testing.T) {
	p, err := RoundRobinProxySwitcher()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestRoundRobinProxySwitcherInvalid(t *testing.T) {
	_, err := RoundRobinProxySwitcher("127.0.0.1:8888")
	assert.Error(t, err)

	_, err = RoundRobinProxySwitcher("http://%zz")
	assert.Error(t, err)
}
