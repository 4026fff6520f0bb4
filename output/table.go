package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderBuild prints one table per section of the record. Empty sections are skipped.
func RenderBuild(w io.Writer, b *hsr.CharacterBuild) {
	fmt.Fprintf(w, "%s (%s)\n", b.Character, b.Element)

	if len(b.LightCones) > 0 {
		t := newTable(w, "Best Light Cones")
		t.AppendHeader(table.Row{"#", "Light Cone", "Rarity", "S", "%", "Notes"})
		for i, lc := range b.LightCones {
			t.AppendRow(table.Row{i + 1, lc.Name, stars(lc.Rarity), optInt(lc.Superimposition, "S"), percent(lc.Percentage), lc.Description})
		}
		t.Render()
	}

	if len(b.Relics) > 0 {
		t := newTable(w, "Best Relic Sets")
		t.AppendHeader(table.Row{"#", "Set", "%", "Flex", "(2)", "(4)", "Notes"})
		for i, r := range b.Relics {
			flex := ""
			if r.Flex {
				flex = "flex"
			}
			t.AppendRow(table.Row{i + 1, r.Name, percent(r.Percentage), flex, r.TwoPiece, r.FourPiece, r.Note})
		}
		t.Render()
	}

	if len(b.PlanarSets) > 0 {
		t := newTable(w, "Planetary Sets")
		t.AppendHeader(table.Row{"#", "Set", "%", "(2)", "Notes"})
		for i, p := range b.PlanarSets {
			t.AppendRow(table.Row{i + 1, p.Name, percent(p.Percentage), p.TwoPiece, p.Note})
		}
		if b.PlanarNotes.Text != "" || b.PlanarNotes.List != "" {
			t.AppendFooter(table.Row{"", strings.TrimSpace(b.PlanarNotes.Text + " " + b.PlanarNotes.List)})
		}
		t.Render()
	}

	if len(b.MainStats) > 0 || len(b.Substats) > 0 {
		t := newTable(w, "Stats")
		t.AppendHeader(table.Row{"Slot", "Priority"})
		for _, s := range b.MainStats {
			t.AppendRow(table.Row{s.Slot, FormatPriority(s.Tiers)})
		}
		if len(b.Substats) > 0 {
			t.AppendSeparator()
			t.AppendRow(table.Row{"Substats", FormatPriority(b.Substats)})
		}
		t.Render()
	}

	if len(b.EndgameStats) > 0 {
		t := newTable(w, "Recommended endgame stats")
		t.AppendHeader(table.Row{"Stat", "Value", "Kind"})
		for _, c := range b.EndgameStats {
			t.AppendRow(table.Row{c.Label, FormatValue(c), string(c.Kind)})
		}
		t.Render()
	}

	if len(b.Traces.Skills) > 0 || len(b.Traces.MajorTraces) > 0 {
		t := newTable(w, "Traces priority")
		t.AppendRow(table.Row{"Skills", FormatPriority(b.Traces.Skills)})
		t.AppendRow(table.Row{"Major Traces", FormatPriority(b.Traces.MajorTraces)})
		t.Render()
	}

	if len(b.Synergy) > 0 {
		t := newTable(w, "Synergy")
		for _, name := range b.Synergy {
			t.AppendRow(table.Row{name})
		}
		t.Render()
	}

	if len(b.Teams) > 0 {
		t := newTable(w, "Teams (MoC)")
		t.AppendHeader(table.Row{"Rank", "Members", "App. rate", "Avg. cycles"})
		for _, team := range b.Teams {
			usage := "-"
			if team.Usage != nil {
				usage = percent(team.Usage)
			}
			t.AppendRow(table.Row{optInt(team.Rank, ""), strings.Join(team.Members, ", "), usage, optFloat(team.AvgRounds)})
		}
		t.Render()
	}
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	return t
}
