package hsr

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const lightConesHeading = "Best Light Cones"

// ParseLightCones reads the "Best Light Cones" section, ranked in page order.
func ParseLightCones(doc *goquery.Document, el Element, logger *zap.Logger) []LightCone {
	logger = loggerOrNop(logger)
	cones := []LightCone{}

	header := headingContaining(doc.Selection, "div", elementClass("content-header", el), lightConesHeading)
	if header.Length() == 0 {
		sectionMissing(logger, lightConesHeading)
		return cones
	}
	sectionFound(logger, lightConesHeading)

	parent := findNext(header, elementMatcher("div", ""))
	items := findClass(parent, "div", "detailed-cones moc")
	if items.Length() == 0 {
		items = findClass(parent, "div", elementClass("single-cone with-notes", el))
	}

	infoClass := elementClass("information", el)
	items.Each(func(_ int, cone *goquery.Selection) {
		lc := LightCone{
			Percentage: parsePercent(SelectionText(cone.Find("div.percentage").First())),
		}

		if name := cone.Find("span.hsr-set-name").First(); name.Length() > 0 {
			lc.Name = SelectionText(name)
			lc.Rarity = rarityFromClass(name)
		}

		if super := cone.Find("span.cone-super").First(); super.Length() > 0 {
			s := strings.NewReplacer("(", "", ")", "", "S", "").Replace(SelectionText(super))
			if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				lc.Superimposition = &v
			}
		}

		lc.Description = SelectionText(findNext(cone, elementMatcher("div", infoClass)))
		if lc.Description == "" {
			lc.Description = SelectionText(nextSiblingClass(cone, "div", infoClass))
		}

		cones = append(cones, lc)
	})
	return cones
}

// rarityFromClass reads "rarity-5" style markers from the second class.
func rarityFromClass(s *goquery.Selection) int {
	classes := strings.Fields(s.AttrOr("class", ""))
	if len(classes) < 2 {
		return 0
	}
	parts := strings.Split(classes[1], "-")
	r, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return r
}

// parsePercent parses "87.5%" into 87.5; anything else is absent.
func parsePercent(s string) *float64 {
	return parseDecimal(strings.ReplaceAll(s, "%", ""))
}

func sectionFound(logger *zap.Logger, section string) {
	logger.Info("✔ - " + section)
}

func sectionMissing(logger *zap.Logger, section string) {
	logger.Info("✖ - " + section)
}
