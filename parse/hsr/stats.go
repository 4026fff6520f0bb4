package hsr

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	statsSection    = "Best Stats"
	statDetails     = "Details about the Stats"
	endgameHeading  = "Recommended endgame stats"
	endgameListType = "raw list"
)

// Stats 是 "Best Stats" 区块的全部内容
type Stats struct {
	Main         MainStats
	Substats     Priority
	SubstatsText string
	Details      string
	Comments     string
	Endgame      []Characteristic
}

// ParsePriority splits "A = B > C" into ordered tiers: ">" separates tiers,
// "=" separates equal names inside a tier. Empty tiers are dropped.
func ParsePriority(text string) Priority {
	tiers := Priority{}
	if strings.TrimSpace(text) == "" {
		return tiers
	}
	for _, segment := range strings.Split(text, ">") {
		tier := []string{}
		for _, name := range strings.Split(segment, "=") {
			if name = strings.TrimSpace(name); name != "" {
				tier = append(tier, name)
			}
		}
		if len(tier) > 0 {
			tiers = append(tiers, tier)
		}
	}
	return tiers
}

// ParseStats reads the main stats per slot, the substat priority, the free
// text around them and the recommended endgame stats.
func ParseStats(doc *goquery.Document, el Element, logger *zap.Logger) Stats {
	logger = loggerOrNop(logger)
	stats := Stats{
		Main:     MainStats{},
		Substats: Priority{},
		Endgame:  []Characteristic{},
	}

	section := doc.Find("div.build-stats").First()
	if section.Length() == 0 {
		sectionMissing(logger, statsSection)
		return stats
	}
	sectionFound(logger, statsSection)

	stats.Main = parseMainStats(section, logger)

	if sub := section.Find("div.sub-stats").First(); sub.Length() > 0 {
		stats.SubstatsText = SelectionText(sub)
		stats.Substats = ParsePriority(stats.SubstatsText)
	}

	button := headingExact(section, "button", statDetails)
	if button.Length() > 0 {
		stats.Details = SelectionText(findNext(button, elementMatcher("div", "accordion-body")))
	}

	if comments := section.Find("div.stats-comments").First(); comments.Length() > 0 {
		stats.Comments = SelectionText(comments.Find("p").First())
	}

	stats.Endgame = DecodeCharacteristics(endgameLines(section, el, logger), logger)
	return stats
}

func parseMainStats(section *goquery.Selection, logger *zap.Logger) MainStats {
	main := MainStats{}
	block := section.Find("div.main-stats").First()
	if block.Length() == 0 {
		sectionMissing(logger, statsSection+" / Main Stats")
		return main
	}
	sectionFound(logger, statsSection+" / Main Stats")

	block.Find("div.col").Each(func(_ int, col *goquery.Selection) {
		header := findClass(col, "div", "stats-header span").First()
		if header.Length() == 0 {
			header = col.Find("div.stats-header").First()
		}
		list := col.Find("div.list-stats").First()
		if list.Length() == 0 {
			return
		}

		slot := SlotStats{Slot: SelectionText(header), Stats: []string{}, Tiers: Priority{}}
		// 主词条没有并列关系，位置即优先级
		list.Find("div.hsr-stat").Each(func(_ int, stat *goquery.Selection) {
			name := SelectionText(stat.Find("span").First())
			slot.Stats = append(slot.Stats, name)
			slot.Tiers = append(slot.Tiers, []string{name})
		})
		main = append(main, slot)
	})
	return main
}

// endgameLines flattens the endgame list: one line per top level item, with
// the texts of a nested list appended to its parent.
func endgameLines(section *goquery.Selection, el Element, logger *zap.Logger) []string {
	header := headingContaining(section, "div", elementClass("content-header", el), endgameHeading)
	if header.Length() == 0 {
		sectionMissing(logger, endgameHeading)
		return nil
	}
	sectionFound(logger, endgameHeading)

	body := header.NextAllFiltered("div").First()
	list := findClass(body, "div", endgameListType).First().ChildrenFiltered("ul").First()

	var lines []string
	list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
		line := SelectionText(item.Find("p").First())
		if nested := item.Find("ul").First(); nested.Length() > 0 {
			var parts []string
			nested.Find("li").Each(func(_ int, sub *goquery.Selection) {
				parts = append(parts, SelectionText(sub.Find("p").First()))
			})
			line += " " + strings.Join(parts, " ")
		}
		lines = append(lines, line)
	})
	return lines
}
