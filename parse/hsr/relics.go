package hsr

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	relicsHeading        = "Best Relic Sets"
	bestPlanarHeading    = "Best Planetary Sets"
	specialPlanarHeading = "Special Planetary Sets"
	setContainerClass    = "detailed-cones moc extra planar"
)

// noteQueue hands out the section's note blocks in page order. Only items
// tagged "with-notes" take one; notes are matched by position, not proximity.
type noteQueue struct {
	notes *goquery.Selection
	next  int
}

func newNoteQueue(notes *goquery.Selection) *noteQueue {
	return &noteQueue{notes: notes}
}

func (q *noteQueue) pop() string {
	if q.next >= q.notes.Length() {
		return ""
	}
	n := q.notes.Eq(q.next)
	q.next++
	return SelectionText(n)
}

// ParseRelics reads the "Best Relic Sets" section. Items that come after the
// "Best Planetary Sets" heading belong to the planar section and end the scan.
func ParseRelics(doc *goquery.Document, el Element, logger *zap.Logger) []Relic {
	logger = loggerOrNop(logger)
	relics := []Relic{}

	header := headingExact(doc.Selection, "h6", relicsHeading)
	if header.Length() == 0 {
		sectionMissing(logger, relicsHeading)
		return relics
	}
	sectionFound(logger, relicsHeading)

	containers := header.NextAllFiltered("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return hasClass(s, setContainerClass)
	})
	if containers.Length() == 0 {
		sectionMissing(logger, relicsHeading+" / Relics Container")
		return relics
	}
	sectionFound(logger, relicsHeading+" / Relics Container")

	planarMarker := textMatcher("h6", bestPlanarHeading)
	containers.Each(func(_ int, container *goquery.Selection) {
		items := findClassAny(container, "div",
			elementClass("single-cone with-notes", el),
			elementClass("single-cone", el),
		)
		notes := newNoteQueue(findClass(container, "div", elementClass("information", el)))

		items.EachWithBreak(func(_ int, item *goquery.Selection) bool {
			if hasPrevious(item, planarMarker) {
				return false
			}
			withNotes := item.HasClass("with-notes")

			r := Relic{
				Name:       SelectionText(item.Find("button").First()),
				Percentage: parsePercent(SelectionText(item.Find("div.percentage").First().Find("p").First())),
				// flex-placeholder 只在 with-notes 的条目里才有意义
				Flex: withNotes && item.Find("div.flex-placeholder").Length() > 0,
			}
			r.TwoPiece, r.FourPiece = setBonuses(item.Find("div.accordion-item").First())
			if withNotes {
				r.Note = notes.pop()
			}
			relics = append(relics, r)
			return true
		})
	})
	return relics
}

// setBonuses reads the "(2)" and "(4)" piece descriptions of a set.
func setBonuses(s *goquery.Selection) (two, four string) {
	s.Find("div.hsr-set-description").Find("div").Each(func(_ int, part *goquery.Selection) {
		piece := part.Find("span.set-piece").First()
		text := part.Find("p").First()
		if piece.Length() == 0 || text.Length() == 0 {
			return
		}
		switch SelectionText(piece) {
		case "(2)":
			two = SelectionText(text)
		case "(4)":
			four = SelectionText(text)
		}
	})
	return two, four
}
