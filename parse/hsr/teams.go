package hsr

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const teamsSection = "Teams (MoC)"

// ParseTeams reads the MoC team rows: rank, usage rate, average cycles and
// the member ids taken from the character links.
func ParseTeams(doc *goquery.Document, logger *zap.Logger) []Team {
	logger = loggerOrNop(logger)
	teams := []Team{}

	container := doc.Find("div.team-container-moc").First()
	if container.Length() == 0 {
		sectionMissing(logger, teamsSection)
		return teams
	}
	sectionFound(logger, teamsSection)

	container.Find("div.team-row").Each(func(_ int, row *goquery.Selection) {
		t := Team{Members: []string{}}

		if rank := row.Find("p.rank").First(); rank.Length() > 0 {
			s := strings.TrimSpace(strings.Replace(SelectionText(rank), "Rank", "", 1))
			if v, err := strconv.Atoi(s); err == nil {
				t.Rank = &v
			} else {
				logger.Debug("bad team rank", zap.String("text", s))
			}
		}
		if usage := row.Find("p.usage").First(); usage.Length() > 0 {
			s := strings.NewReplacer("App. rate:", "", "%", "").Replace(SelectionText(usage))
			if t.Usage = parseDecimal(s); t.Usage == nil {
				logger.Debug("bad team usage", zap.String("text", s))
			}
		}
		if rounds := row.Find("p.rounds").First(); rounds.Length() > 0 {
			s := strings.Replace(SelectionText(rounds), "Avg. cycles:", "", 1)
			if t.AvgRounds = parseDecimal(s); t.AvgRounds == nil {
				logger.Debug("bad team cycles", zap.String("text", s))
			}
		}

		row.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href := strings.TrimRight(a.AttrOr("href", ""), "/")
			t.Members = append(t.Members, capitalize(href[strings.LastIndex(href, "/")+1:]))
		})
		teams = append(teams, t)
	})
	return teams
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
