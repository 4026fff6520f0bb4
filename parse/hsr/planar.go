package hsr

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ParsePlanarSets reads the "Best Planetary Sets" and "Special Planetary Sets"
// sections and concatenates them in that order. Only the best section's
// trailing notes are returned.
func ParsePlanarSets(doc *goquery.Document, el Element, logger *zap.Logger) ([]PlanarSet, PlanarNotes) {
	logger = loggerOrNop(logger)

	best, notes := parsePlanarSection(doc, el, bestPlanarHeading, logger)
	special, _ := parsePlanarSection(doc, el, specialPlanarHeading, logger)

	sets := make([]PlanarSet, 0, len(best)+len(special))
	sets = append(sets, best...)
	sets = append(sets, special...)
	return sets, notes
}

func parsePlanarSection(doc *goquery.Document, el Element, heading string, logger *zap.Logger) ([]PlanarSet, PlanarNotes) {
	var notes PlanarNotes
	sets := []PlanarSet{}

	header := headingExact(doc.Selection, "h6", heading)
	if header.Length() == 0 {
		sectionMissing(logger, heading)
		return sets, notes
	}
	sectionFound(logger, heading)

	container := nextSiblingClass(header, "div", setContainerClass)
	if container.Length() == 0 {
		container = findNext(header, elementMatcher("div", setContainerClass))
	}
	if container.Length() == 0 {
		sectionMissing(logger, heading+" / Planar Sets Container")
		return sets, notes
	}
	sectionFound(logger, heading+" / Planar Sets Container")

	queue := newNoteQueue(findClass(container, "div", elementClass("information", el)))
	container.Find("div").Each(func(_ int, item *goquery.Selection) {
		if !item.HasClass("single-cone") {
			return
		}
		p := PlanarSet{
			Name:       SelectionText(item.Find("button").First()),
			Percentage: parsePercent(SelectionText(item.Find("div.percentage").First().Find("p").First())),
		}
		p.TwoPiece, _ = setBonuses(item)
		if item.HasClass("with-notes") {
			p.Note = queue.pop()
		}
		sets = append(sets, p)
	})

	notes.Text = SelectionText(container.Find("p.with-margin-top").First())
	notes.List = SelectionText(container.Find("ul.with-sets").First())
	return sets, notes
}
