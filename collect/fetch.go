package collect

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/proxy"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Fetcher 获取静态页面内容
type Fetcher interface {
	Get(ctx context.Context, req *Request) ([]byte, error)
}

// Request 单个静态页面请求
type Request struct {
	Url    string
	Cookie string
}

// HTTPFetch fetches pages without running their scripts. It is enough for the
// characters listing page; character pages need RodFetch.
type HTTPFetch struct {
	client *resty.Client
	logger *zap.Logger
}

func NewHTTPFetch(timeout time.Duration, p proxy.ProxyFunc, logger *zap.Logger) *HTTPFetch {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)
	if p != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = p // 替换为自定义的代理函数
		client.SetTransport(transport)
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	return &HTTPFetch{client: client, logger: logger}
}

func (h *HTTPFetch) Get(ctx context.Context, request *Request) ([]byte, error) {
	r := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if len(request.Cookie) > 0 {
		r.SetHeader("Cookie", request.Cookie)
	}

	resp, err := r.Get(request.Url)
	if err != nil {
		h.logger.Error("fetch failed", zap.String("url", request.Url), zap.Error(err))
		return nil, err
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", request.Url, resp.StatusCode())
	}

	bodyReader := bufio.NewReader(body)
	e := DetermineEncoding(bodyReader)
	utf8Reader := transform.NewReader(bodyReader, e.NewDecoder())
	return io.ReadAll(utf8Reader)
}

// DetermineEncoding sniffs the charset from the first KiB of the body.
func DetermineEncoding(r *bufio.Reader) encoding.Encoding {
	bytes, err := r.Peek(1024)
	if err != nil && len(bytes) == 0 {
		return unicode.UTF8
	}

	e, _, _ := charset.DetermineEncoding(bytes, "")
	return e
}
