package hsr

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relicItem(class, name string) string {
	return fmt.Sprintf(`<div class="%s"><div class="percentage"><p>50%%</p></div>
		<div class="accordion-item"><button>%s</button></div></div>`, class, name)
}

func TestParseRelicsStopsAtPlanarHeading(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<h6>Best Relic Sets</h6><div class="detailed-cones moc extra planar">`)
	for i := 1; i <= 3; i++ {
		b.WriteString(relicItem("single-cone Ice", fmt.Sprintf("Relic %d", i)))
	}
	b.WriteString(`<h6>Best Planetary Sets</h6>`)
	for i := 4; i <= 5; i++ {
		b.WriteString(relicItem("single-cone Ice", fmt.Sprintf("Relic %d", i)))
	}
	b.WriteString(`</div>`)

	relics := ParseRelics(docFromString(t, b.String()), ElementIce, nil)
	require.Len(t, relics, 3)
	for i, r := range relics {
		assert.Equal(t, fmt.Sprintf("Relic %d", i+1), r.Name)
		assert.Equal(t, 50.0, *r.Percentage)
	}
}

func TestParseRelicsNotesAndFlex(t *testing.T) {
	doc := docFromString(t, `
		<h6>Best Relic Sets</h6>
		<div class="detailed-cones moc extra planar">
			<div class="single-cone Wind"><button>Plain</button><div class="flex-placeholder"></div></div>
			<div class="single-cone with-notes Wind"><button>Noted</button><div class="flex-placeholder"></div></div>
			<div class="single-cone with-notes Wind"><button>Noted too</button></div>
			<div class="single-cone with-notes Fire"><button>Other element</button></div>
			<div class="information Wind"><p>first note</p></div>
			<div class="information Wind"><p>second note</p></div>
		</div>`)

	relics := ParseRelics(doc, ElementWind, nil)
	require.Len(t, relics, 3)
	assert.Equal(t, Relic{Name: "Plain"}, relics[0])
	assert.Equal(t, Relic{Name: "Noted", Flex: true, Note: "first note"}, relics[1])
	assert.Equal(t, Relic{Name: "Noted too", Note: "second note"}, relics[2])
}

func TestParseLightConesFallbackShape(t *testing.T) {
	doc := docFromString(t, `
		<div class="content-header Quantum">Best Light Cones (in order)</div>
		<div>
			<div class="single-cone with-notes Quantum">
				<div class="percentage">110%</div>
				<span class="hsr-set-name rarity-3">Fine Fruit</span>
			</div>
			<div class="information Quantum">Cheap.</div>
		</div>`)

	cones := ParseLightCones(doc, ElementQuantum, nil)
	require.Len(t, cones, 1)
	assert.Equal(t, LightCone{Name: "Fine Fruit", Percentage: ptr(110.0), Rarity: 3, Description: "Cheap."}, cones[0])
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, Priority{{"A", "B"}, {"C"}, {"D", "E"}}, ParsePriority("A = B > C > D = E"))
	assert.Equal(t, Priority{{"Skill"}, {"Ultimate"}}, ParsePriority(" Skill >> Ultimate > "))
	assert.Equal(t, Priority{{"A"}, {"B"}}, ParsePriority("A >> B"))
	assert.Equal(t, Priority{}, ParsePriority("  "))
}

func TestLocatorsOnEmptyPage(t *testing.T) {
	doc := docFromString(t, `<html><body><p>Under construction</p></body></html>`)

	assert.Equal(t, []LightCone{}, ParseLightCones(doc, ElementFire, nil))
	assert.Equal(t, []Relic{}, ParseRelics(doc, ElementFire, nil))

	sets, notes := ParsePlanarSets(doc, ElementFire, nil)
	assert.Equal(t, []PlanarSet{}, sets)
	assert.Zero(t, notes)

	stats := ParseStats(doc, ElementFire, nil)
	assert.Equal(t, MainStats{}, stats.Main)
	assert.Equal(t, Priority{}, stats.Substats)
	assert.Equal(t, []Characteristic{}, stats.Endgame)

	assert.Equal(t, TracesPriority{Skills: Priority{}, MajorTraces: Priority{}}, ParseTraces(doc, ElementFire, nil))
	assert.Equal(t, []string{}, ParseSynergy(doc, ElementFire, nil))
	assert.Equal(t, []Team{}, ParseTeams(doc, nil))

	b := ParseBuild(doc, "nobody", ElementUnknown, nil)
	assert.Equal(t, newBuild("nobody", ElementUnknown), b)
	for _, s := range b.Sections() {
		assert.False(t, s.Found, s.Name)
	}
}

func TestParseTeams(t *testing.T) {
	doc := docFromString(t, `
		<div class="team-container-moc">
			<div class="team-row">
				<p class="rank">Rank 3</p>
				<p class="usage">App. rate: 7.25%</p>
				<p class="rounds">Avg. cycles: n/a</p>
				<a href="/star-rail/characters/dan-heng-imbibitor-lunae">x</a>
				<a href="/star-rail/characters/TINGYUN/">y</a>
			</div>
		</div>`)

	teams := ParseTeams(doc, nil)
	require.Len(t, teams, 1)
	assert.Equal(t, Team{
		Rank:    ptr(3),
		Usage:   ptr(7.25),
		Members: []string{"Dan-heng-imbibitor-lunae", "Tingyun"},
	}, teams[0])
}

func TestParseNonFiniteNumbersAreAbsent(t *testing.T) {
	doc := docFromString(t, `
		<div class="content-header Quantum">Best Light Cones (in order)</div>
		<div>
			<div class="single-cone with-notes Quantum">
				<div class="percentage">NaN%</div>
				<span class="hsr-set-name rarity-5">Glitched Cone</span>
			</div>
			<div class="information Quantum">Broken render.</div>
		</div>
		<div class="team-container-moc">
			<div class="team-row">
				<p class="usage">App. rate: NaN%</p>
				<p class="rounds">Avg. cycles: Infinity</p>
				<a href="/star-rail/characters/seele">x</a>
			</div>
			<div class="team-row">
				<p class="usage">App. rate: 0x1p4%</p>
				<p class="rounds">Avg. cycles: 1e3</p>
				<a href="/star-rail/characters/bronya">y</a>
			</div>
		</div>`)

	cones := ParseLightCones(doc, ElementQuantum, nil)
	require.Len(t, cones, 1)
	assert.Equal(t, "Glitched Cone", cones[0].Name)
	assert.Nil(t, cones[0].Percentage)

	teams := ParseTeams(doc, nil)
	require.Len(t, teams, 2)
	for _, team := range teams {
		assert.Nil(t, team.Usage, "%v", team.Members)
		assert.Nil(t, team.AvgRounds, "%v", team.Members)
	}

	_, err := json.Marshal(ParseBuild(doc, "seele", ElementQuantum, nil))
	assert.NoError(t, err)
}

func TestParseDecimal(t *testing.T) {
	for in, want := range map[string]*float64{
		"12":       ptr(12.0),
		" 8.5 ":    ptr(8.5),
		"NaN":      nil,
		"Inf":      nil,
		"Infinity": nil,
		"0x1p4":    nil,
		"1e3":      nil,
		"-3":       nil,
		"":         nil,
	} {
		assert.Equal(t, want, parseDecimal(in), "%q", in)
	}
	assert.Nil(t, parseDecimal("1"+strings.Repeat("0", 400)))
}

func TestParseRoster(t *testing.T) {
	doc := docFromString(t, `
		<a href="/star-rail/characters/">All</a>
		<a href="/star-rail/characters/seele">Seele</a>
		<a href="/star-rail/characters/acheron/">Acheron</a>
		<a href="/star-rail/characters/seele">Seele again</a>
		<a href="/star-rail/characters/seele/builds">nested</a>
		<a href="/star-rail/light-cones/">cones</a>`)

	assert.Equal(t, []string{"acheron", "seele"}, ParseRoster(doc))
}

func TestClassMatches(t *testing.T) {
	assert.True(t, classMatches("single-cone with-notes Fire", "with-notes"))
	assert.True(t, classMatches("single-cone with-notes Fire", "single-cone with-notes Fire"))
	assert.True(t, classMatches("  single-cone   Fire ", "single-cone Fire"))
	assert.False(t, classMatches("single-cone with-notes Fire", "single-cone Fire"))
	assert.False(t, classMatches("detailed-cones moc extra planar", "detailed-cones moc"))
	assert.True(t, classMatches("anything", ""))
}
