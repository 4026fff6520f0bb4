package hsr

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// 页面上的 class 组合很不规则，这里按 class 字符串精确匹配：
// 单个 class 只要包含即可，多个 class 必须完全一致（顺序也一致）。

func classMatches(attr, class string) bool {
	want := strings.Fields(class)
	got := strings.Fields(attr)
	if len(want) == 0 {
		return true
	}
	if len(want) == 1 {
		for _, c := range got {
			if c == want[0] {
				return true
			}
		}
		return false
	}
	return strings.Join(want, " ") == strings.Join(got, " ")
}

func hasClass(s *goquery.Selection, class string) bool {
	attr, _ := s.Attr("class")
	return classMatches(attr, class)
}

// findClass returns the descendants of s with the given tag whose class
// attribute matches class.
func findClass(s *goquery.Selection, tag, class string) *goquery.Selection {
	return s.Find(tag).FilterFunction(func(_ int, c *goquery.Selection) bool {
		return hasClass(c, class)
	})
}

// findClassAny matches any of the given class strings.
func findClassAny(s *goquery.Selection, tag string, classes ...string) *goquery.Selection {
	return s.Find(tag).FilterFunction(func(_ int, c *goquery.Selection) bool {
		for _, class := range classes {
			if hasClass(c, class) {
				return true
			}
		}
		return false
	})
}

// headingContaining returns the first element of tag.class whose text contains text.
func headingContaining(s *goquery.Selection, tag, class, text string) *goquery.Selection {
	return findClass(s, tag, class).FilterFunction(func(_ int, c *goquery.Selection) bool {
		return strings.Contains(SelectionText(c), text)
	}).First()
}

// headingExact returns the first tag element whose whole text equals text.
func headingExact(s *goquery.Selection, tag, text string) *goquery.Selection {
	return s.Find(tag).FilterFunction(func(_ int, c *goquery.Selection) bool {
		return SelectionText(c) == text
	}).First()
}

type nodeMatcher func(n *html.Node) bool

func elementMatcher(tag, class string) nodeMatcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		if class == "" {
			return true
		}
		for _, a := range n.Attr {
			if a.Key == "class" {
				return classMatches(a.Val, class)
			}
		}
		return false
	}
}

func textMatcher(tag, text string) nodeMatcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		return NormalizeText(strings.Join(collectText(n, nil), " ")) == text
	}
}

// nextInDocument 文档顺序（先序遍历）的下一个节点，包括自己的子孙
func nextInDocument(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// prevInDocument 文档顺序的上一个节点
func prevInDocument(n *html.Node) *html.Node {
	if n.PrevSibling == nil {
		return n.Parent
	}
	n = n.PrevSibling
	for n.LastChild != nil {
		n = n.LastChild
	}
	return n
}

// findNext returns the first node after s (in document order) accepted by match.
func findNext(s *goquery.Selection, match nodeMatcher) *goquery.Selection {
	if s.Length() == 0 {
		return s
	}
	for n := nextInDocument(s.Get(0)); n != nil; n = nextInDocument(n) {
		if match(n) {
			return s.Slice(0, 0).AddNodes(n)
		}
	}
	return s.Slice(0, 0)
}

// hasPrevious reports whether any node before s in document order is accepted by match.
func hasPrevious(s *goquery.Selection, match nodeMatcher) bool {
	if s.Length() == 0 {
		return false
	}
	for n := prevInDocument(s.Get(0)); n != nil; n = prevInDocument(n) {
		if match(n) {
			return true
		}
	}
	return false
}

// nextSiblingClass is the first following sibling tag element matching class.
func nextSiblingClass(s *goquery.Selection, tag, class string) *goquery.Selection {
	return s.NextAllFiltered(tag).FilterFunction(func(_ int, c *goquery.Selection) bool {
		return hasClass(c, class)
	}).First()
}

func elementClass(base string, el Element) string {
	return base + " " + string(el)
}
