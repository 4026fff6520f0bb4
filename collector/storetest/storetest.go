// Package storetest holds the behaviour every collector.Store must have.
package storetest

import (
	"testing"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// FullBuild has every optional field populated.
func FullBuild() *hsr.CharacterBuild {
	return &hsr.CharacterBuild{
		Character: "acheron",
		Element:   hsr.ElementLightning,
		LightCones: []hsr.LightCone{
			{Name: "Along the Passing Shore", Percentage: ptr(100.0), Rarity: 5, Superimposition: ptr(1), Description: "Signature."},
			{Name: "Good Night and Sleep Well", Percentage: ptr(87.25), Rarity: 4, Superimposition: ptr(5), Description: ""},
		},
		Relics: []hsr.Relic{
			{Name: "Band of Sizzling Thunder", Percentage: ptr(100.0), TwoPiece: "Lightning DMG +10%.", FourPiece: "ATK +20% after Skill.", Flex: true, Note: "Best."},
			{Name: "Pioneer Diver of Dead Waters", TwoPiece: "DMG +12% vs debuffed.", FourPiece: "CRIT DMG up."},
		},
		PlanarSets: []hsr.PlanarSet{
			{Name: "Izumo Gensei and Takama Divine Realm", Percentage: ptr(100.0), TwoPiece: "ATK +12%.", Note: "With a Nihility ally."},
			{Name: "Inert Salsotto", TwoPiece: "CRIT Rate +8%."},
		},
		PlanarNotes: hsr.PlanarNotes{Text: "Top to bottom.", List: "Izumo Inert Salsotto"},
		MainStats: hsr.MainStats{
			{Slot: "Body", Stats: []string{"CRIT Rate", "CRIT DMG"}, Tiers: hsr.Priority{{"CRIT Rate"}, {"CRIT DMG"}}},
			{Slot: "Planar Sphere", Stats: []string{"Lightning DMG"}, Tiers: hsr.Priority{{"Lightning DMG"}}},
		},
		Substats:         hsr.Priority{{"CRIT Rate", "CRIT DMG"}, {"ATK%"}, {"SPD"}},
		SubstatsText:     "CRIT Rate = CRIT DMG > ATK% > SPD",
		StatDetailsText:  "Details.",
		StatCommentsText: "Comments.",
		EndgameStats: []hsr.Characteristic{
			{Label: "ATK", Kind: hsr.KindRange, Range: &hsr.ValueRange{Min: 3000, Max: ptr(3500.0), MaxComment: "(buffed)", Plus: true}, Raw: "ATK: 3000-3500+ (buffed)"},
			{Label: "SPD", Kind: hsr.KindRange, Range: &hsr.ValueRange{Condition: "1-2 Speed slower than carry", Min: 134, Plus: true, MinComment: "(E1)"}, Raw: "SPD: 1-2 Speed slower than carry / 134+ (E1)"},
			{Label: "CRIT", Kind: hsr.KindFixed, Fixed: []hsr.Alternative{{Value: "1.5", Comment: "(2)"}, {Value: "1.8", Comment: "(4)"}}, Raw: "CRIT: 1.5 (2) / 1.8 (4)"},
			{Label: "Note", Kind: hsr.KindText, Text: "whatever works", Raw: "Note: whatever works"},
			{Label: "ER", Kind: hsr.KindRange, Range: &hsr.ValueRange{Min: 19.4, Percent: true}, Raw: "ER: 19.4%"},
		},
		Traces: hsr.TracesPriority{
			Skills:      hsr.Priority{{"Ultimate"}, {"Skill", "Talent"}, {"Basic ATK"}},
			MajorTraces: hsr.Priority{{"Red Oni"}, {"The Abyss"}},
		},
		Synergy: []string{"Pela", "Jiaoqiu"},
		Teams: []hsr.Team{
			{Rank: ptr(1), Usage: ptr(33.3), AvgRounds: ptr(2.8), Members: []string{"Acheron", "Jiaoqiu", "Pela", "Aventurine"}},
			{Members: []string{"Acheron"}},
		},
	}
}

// EmptyBuild is a record whose every section was missing on the page.
func EmptyBuild() *hsr.CharacterBuild {
	return &hsr.CharacterBuild{
		Character:    "trailblazer",
		LightCones:   []hsr.LightCone{},
		Relics:       []hsr.Relic{},
		PlanarSets:   []hsr.PlanarSet{},
		MainStats:    hsr.MainStats{},
		Substats:     hsr.Priority{},
		EndgameStats: []hsr.Characteristic{},
		Traces:       hsr.TracesPriority{Skills: hsr.Priority{}, MajorTraces: hsr.Priority{}},
		Synergy:      []string{},
		Teams:        []hsr.Team{},
	}
}

// Run checks the round trip, overwrite, missing key and listing behaviour of s.
// s must start empty.
func Run(t *testing.T, s collector.Store) {
	t.Helper()

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = s.Get("acheron")
	require.ErrorIs(t, err, collector.ErrNotFound)

	for _, want := range []*hsr.CharacterBuild{FullBuild(), EmptyBuild()} {
		require.NoError(t, s.Put(want.Character, want))
		got, err := s.Get(want.Character)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip of %s mismatch (-want +got):\n%s", want.Character, diff)
		}
	}

	updated := FullBuild()
	updated.Synergy = []string{"Black Swan"}
	require.NoError(t, s.Put(updated.Character, updated))
	got, err := s.Get(updated.Character)
	require.NoError(t, err)
	assert.Equal(t, []string{"Black Swan"}, got.Synergy)

	ids, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"acheron", "trailblazer"}, ids)
}
