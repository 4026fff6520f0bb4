package hsr

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const synergyHeading = "Synergy"

// ParseSynergy lists the characters named in the "Synergy" section.
func ParseSynergy(doc *goquery.Document, el Element, logger *zap.Logger) []string {
	logger = loggerOrNop(logger)
	names := []string{}

	header := headingContaining(doc.Selection, "div", elementClass("content-header", el), synergyHeading)
	if header.Length() == 0 {
		sectionMissing(logger, synergyHeading)
		return names
	}
	sectionFound(logger, synergyHeading)

	list := nextSiblingClass(header, "ul", "bigger-margin")
	list.Find("li").Each(func(_ int, item *goquery.Selection) {
		item.Find("span.inline-name").Each(func(_ int, name *goquery.Selection) {
			names = append(names, SelectionText(name))
		})
	})
	return names
}
