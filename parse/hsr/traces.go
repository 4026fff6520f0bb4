package hsr

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const tracesHeading = "Traces priority"

// ParseTraces reads the skills priority row and the major traces row that
// follow the "Traces priority" heading.
func ParseTraces(doc *goquery.Document, el Element, logger *zap.Logger) TracesPriority {
	logger = loggerOrNop(logger)
	traces := TracesPriority{Skills: Priority{}, MajorTraces: Priority{}}

	header := headingContaining(doc.Selection, "div", elementClass("content-header", el), tracesHeading)
	if header.Length() == 0 {
		sectionMissing(logger, tracesHeading)
		return traces
	}
	sectionFound(logger, tracesHeading)

	row := elementMatcher("div", "row")
	skills := findNext(header, row)
	if skills.Length() == 0 {
		return traces
	}
	traces.Skills = priorityBox(skills)

	if major := findNext(skills, row); major.Length() > 0 {
		traces.MajorTraces = priorityBox(major)
	}
	return traces
}

func priorityBox(row *goquery.Selection) Priority {
	box := findClass(row, "div", "box sub-stats").First()
	return ParsePriority(SelectionText(box.Find("p").First()))
}
