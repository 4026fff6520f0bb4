package collect

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/PuerkitoBio/goquery"
)

// staticPage is a page snapshot with nothing to release.
type staticPage struct {
	doc *goquery.Document
}

func (p *staticPage) Document() *goquery.Document { return p.doc }

func (p *staticPage) Close() error { return nil }

// NewStaticPage parses html into a page snapshot.
func NewStaticPage(html []byte) (hsr.Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &staticPage{doc: doc}, nil
}

// tabSelector matches the tab buttons of the element's page theme.
func tabSelector(scope hsr.Element) string {
	if scope == hsr.ElementUnknown {
		return ".single-tab"
	}
	return ".single-tab." + string(scope)
}

// findTab returns the first tab of doc whose text contains label.
func findTab(doc *goquery.Document, label string, scope hsr.Element) *goquery.Selection {
	return doc.Find(tabSelector(scope)).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), label)
	}).First()
}

// FileFetch serves pages saved as <Dir>/<character>.html. The saved page is
// expected to already contain the build tab content, so SelectTab only checks
// that the tab exists.
type FileFetch struct {
	Dir string
}

func (f FileFetch) path(character string) string {
	return filepath.Join(f.Dir, character+".html")
}

func (f FileFetch) Render(_ context.Context, character string) (hsr.Page, error) {
	body, err := os.ReadFile(f.path(character))
	if err != nil {
		return nil, err
	}
	return NewStaticPage(body)
}

func (f FileFetch) SelectTab(_ context.Context, page hsr.Page, label string, scope hsr.Element) (hsr.Page, error) {
	if findTab(page.Document(), label, scope).Length() == 0 {
		return nil, fmt.Errorf("%w: %q", hsr.ErrTabNotFound, label)
	}
	return page, nil
}

// Characters lists the ids of the saved pages, sorted.
func (f FileFetch) Characters() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(f.Dir, "*.html"))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(filepath.Base(m), ".html"))
	}
	sort.Strings(ids)
	return ids, nil
}
