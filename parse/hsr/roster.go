package hsr

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RosterPath 角色列表页的路径，角色页都挂在它下面
const RosterPath = "/star-rail/characters/"

// ParseRoster collects the character ids linked from the characters listing
// page, sorted and without duplicates.
func ParseRoster(doc *goquery.Document) []string {
	seen := map[string]bool{}
	doc.Find(`a[href^="` + RosterPath + `"]`).Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		id := strings.Trim(strings.TrimPrefix(href, RosterPath), "/")
		if id == "" || strings.Contains(id, "/") {
			return
		}
		seen[id] = true
	})

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
