package collect

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// DefaultBaseURL 角色页面的根地址
const DefaultBaseURL = "https://www.prydwen.gg/star-rail/characters/"

// RodFetch renders character pages in a headless Chrome so the client side
// tabs can be clicked.
type RodFetch struct {
	BaseURL  string
	Timeout  time.Duration // 单个页面加载/查找元素的超时
	Settle   time.Duration // 点击标签页后等待内容渲染的时间
	Headless bool
	Proxy    string // 浏览器只支持单个代理
	Bin      string // 浏览器可执行文件，为空时由 launcher 查找或下载
	Logger   *zap.Logger

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// rodPage keeps the live tab together with the snapshot taken from it.
type rodPage struct {
	page *rod.Page
	doc  *goquery.Document
}

func (p *rodPage) Document() *goquery.Document { return p.doc }

func (p *rodPage) Close() error { return p.page.Close() }

func (r *RodFetch) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *RodFetch) timeout() time.Duration {
	if r.Timeout <= 0 {
		return 30 * time.Second
	}
	return r.Timeout
}

func (r *RodFetch) start() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().Headless(r.Headless)
	if r.Bin != "" {
		l = l.Bin(r.Bin)
	}
	if r.Proxy != "" {
		l = l.Proxy(r.Proxy)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}
	r.launcher = l
	r.browser = browser
	r.logger().Debug("browser started", zap.String("control_url", controlURL))
	return browser, nil
}

// Close shuts the browser down.
func (r *RodFetch) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.launcher.Cleanup()
	r.browser = nil
	r.launcher = nil
	return err
}

func (r *RodFetch) Render(ctx context.Context, character string) (hsr.Page, error) {
	browser, err := r.start()
	if err != nil {
		return nil, err
	}
	base := r.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	url := strings.TrimRight(base, "/") + "/" + character

	// page 本身不绑定 ctx，超时后仍然可以 Close
	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", url, err)
	}
	loading := page.Context(ctx).Timeout(r.timeout())
	err = loading.WaitLoad()
	loading.CancelTimeout()
	if err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("wait load %s: %w", url, err)
	}
	p, err := snapshot(page)
	if err != nil {
		_ = page.Close()
		return nil, err
	}
	return p, nil
}

func (r *RodFetch) SelectTab(ctx context.Context, p hsr.Page, label string, scope hsr.Element) (hsr.Page, error) {
	rp, ok := p.(*rodPage)
	if !ok {
		return nil, fmt.Errorf("select tab: page %T was not rendered by RodFetch", p)
	}
	page := rp.page.Context(ctx)

	// 等待标签页按钮出现
	selector := tabSelector(scope)
	waiting := page.Timeout(r.timeout())
	_, err := waiting.Element(selector)
	waiting.CancelTimeout()
	if err != nil {
		return nil, fmt.Errorf("%w: no %s tabs: %v", hsr.ErrTabNotFound, selector, err)
	}
	tabs, err := page.Elements(selector)
	if err != nil {
		return nil, err
	}

	var tab *rod.Element
	for _, t := range tabs {
		text, err := t.Text()
		if err == nil && strings.Contains(text, label) {
			tab = t
			break
		}
	}
	if tab == nil {
		return nil, fmt.Errorf("%w: %q", hsr.ErrTabNotFound, label)
	}

	// 滚动到按钮上方一点，避免被页面顶部的导航栏挡住
	if err := tab.ScrollIntoView(); err != nil {
		r.logger().Debug("scroll into view failed", zap.Error(err))
	}
	if _, err := page.Eval(`() => window.scrollBy({top: -100, left: 0, behavior: 'smooth'})`); err != nil {
		r.logger().Debug("scroll failed", zap.Error(err))
	}
	if err := sleep(ctx, time.Second); err != nil {
		return nil, err
	}

	if err := tab.Click(proto.InputMouseButtonLeft, 1); err != nil {
		r.logger().Debug("click intercepted, clicking through js", zap.Error(err))
		if _, err := tab.Eval(`() => this.click()`); err != nil {
			return nil, fmt.Errorf("click tab %q: %w", label, err)
		}
	}
	if err := sleep(ctx, r.Settle); err != nil {
		return nil, err
	}
	return snapshot(rp.page)
}

func snapshot(page *rod.Page) (*rodPage, error) {
	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("read page html: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &rodPage{page: page, doc: doc}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
