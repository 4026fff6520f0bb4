package hsr

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	decimalRe        = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// NormalizeText collapses whitespace runs to single spaces, removes whitespace
// in front of . , ! ? ; : and trims the result.
func NormalizeText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(spaceBeforePunct.ReplaceAllString(s, "$1"))
}

// SelectionText joins every non-blank descendant text node of sel with single
// spaces and normalizes the result. A nil or empty selection yields "".
func SelectionText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	var parts []string
	for _, n := range sel.Nodes {
		parts = collectText(n, parts)
	}
	return NormalizeText(strings.Join(parts, " "))
}

func collectText(n *html.Node, parts []string) []string {
	if n == nil {
		return parts
	}
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			parts = append(parts, t)
		}
		return parts
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return parts
		}
	case html.CommentNode:
		return parts
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = collectText(c, parts)
	}
	return parts
}

// parseDecimal accepts plain decimals only ("12", "8.5"). NaN, Inf, hex and
// exponent forms are absent, as are values too large for a finite float64.
func parseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if !decimalRe.MatchString(s) {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
