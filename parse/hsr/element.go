package hsr

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// DetectElement guesses the character's element from how often each element
// class appears on the page. Pages cross-reference other characters, so the
// result is advisory.
func DetectElement(doc *goquery.Document, logger *zap.Logger) Element {
	if logger == nil {
		logger = zap.NewNop()
	}

	counts := make(map[Element]int, len(Elements))
	found := 0
	best := ElementUnknown
	for _, el := range Elements {
		n := doc.Find("." + string(el)).Length()
		counts[el] = n
		if n == 0 {
			continue
		}
		found++
		// 严格大于：计数相同时保留枚举顺序靠前的属性
		if best == ElementUnknown || n > counts[best] {
			best = el
		}
	}

	switch {
	case found == 0:
		logger.Warn("element not found on the page")
	case found >= 2:
		fields := make([]zap.Field, 0, found+1)
		fields = append(fields, zap.String("chosen", best.String()))
		for _, el := range Elements {
			if counts[el] > 0 {
				fields = append(fields, zap.Int(string(el), counts[el]))
			}
		}
		logger.Warn("several elements found on the page", fields...)
	}
	return best
}
