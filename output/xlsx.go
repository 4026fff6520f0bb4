package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/xuri/excelize/v2"
)

const (
	SheetLightCones = "Light Cones"
	SheetRelics     = "Relics"
	SheetPlanar     = "Planar Sets"
	SheetStats      = "Stats"
	SheetEndgame    = "Endgame Stats"
	SheetTeams      = "Teams"
)

type sheet struct {
	name   string
	header []interface{}
	rows   func(b *hsr.CharacterBuild) [][]interface{}
}

var sheets = []sheet{
	{
		name:   SheetLightCones,
		header: []interface{}{"Character", "Element", "#", "Light Cone", "Rarity", "Superimposition", "Percentage", "Description"},
		rows: func(b *hsr.CharacterBuild) [][]interface{} {
			rows := make([][]interface{}, 0, len(b.LightCones))
			for i, lc := range b.LightCones {
				rows = append(rows, []interface{}{b.Character, string(b.Element), i + 1, lc.Name, lc.Rarity, cellInt(lc.Superimposition), cellFloat(lc.Percentage), lc.Description})
			}
			return rows
		},
	},
	{
		name:   SheetRelics,
		header: []interface{}{"Character", "Element", "#", "Set", "Percentage", "Flex", "2-piece", "4-piece", "Note"},
		rows: func(b *hsr.CharacterBuild) [][]interface{} {
			rows := make([][]interface{}, 0, len(b.Relics))
			for i, r := range b.Relics {
				rows = append(rows, []interface{}{b.Character, string(b.Element), i + 1, r.Name, cellFloat(r.Percentage), r.Flex, r.TwoPiece, r.FourPiece, r.Note})
			}
			return rows
		},
	},
	{
		name:   SheetPlanar,
		header: []interface{}{"Character", "Element", "#", "Set", "Percentage", "2-piece", "Note"},
		rows: func(b *hsr.CharacterBuild) [][]interface{} {
			rows := make([][]interface{}, 0, len(b.PlanarSets))
			for i, p := range b.PlanarSets {
				rows = append(rows, []interface{}{b.Character, string(b.Element), i + 1, p.Name, cellFloat(p.Percentage), p.TwoPiece, p.Note})
			}
			return rows
		},
	},
	{
		name:   SheetStats,
		header: []interface{}{"Character", "Element", "Slot", "Priority"},
		rows: func(b *hsr.CharacterBuild) [][]interface{} {
			rows := make([][]interface{}, 0, len(b.MainStats)+3)
			for _, s := range b.MainStats {
				rows = append(rows, []interface{}{b.Character, string(b.Element), s.Slot, FormatPriority(s.Tiers)})
			}
			if len(b.Substats) > 0 {
				rows = append(rows, []interface{}{b.Character, string(b.Element), "Substats", FormatPriority(b.Substats)})
			}
			if len(b.Traces.Skills) > 0 {
				rows = append(rows, []interface{}{b.Character, string(b.Element), "Skills", FormatPriority(b.Traces.Skills)})
			}
			if len(b.Traces.MajorTraces) > 0 {
				rows = append(rows, []interface{}{b.Character, string(b.Element), "Major Traces", FormatPriority(b.Traces.MajorTraces)})
			}
			return rows
		},
	},
	{
		name:   SheetEndgame,
		header: []interface{}{"Character", "Element", "Stat", "Value", "Kind", "Raw"},
		rows: func(b *hsr.CharacterBuild) [][]interface{} {
			rows := make([][]interface{}, 0, len(b.EndgameStats))
			for _, c := range b.EndgameStats {
				rows = append(rows, []interface{}{b.Character, string(b.Element), c.Label, FormatValue(c), string(c.Kind), c.Raw})
			}
			return rows
		},
	},
	{
		name:   SheetTeams,
		header: []interface{}{"Character", "Element", "Rank", "Members", "App. rate", "Avg. cycles"},
		rows: func(b *hsr.CharacterBuild) [][]interface{} {
			rows := make([][]interface{}, 0, len(b.Teams))
			for _, t := range b.Teams {
				rows = append(rows, []interface{}{b.Character, string(b.Element), cellInt(t.Rank), strings.Join(t.Members, ", "), cellFloat(t.Usage), cellFloat(t.AvgRounds)})
			}
			return rows
		},
	},
}

// ExportXLSX writes every record into one workbook, one sheet per section,
// one row per item. Records keep the order they are given in.
func ExportXLSX(path string, builds []*hsr.CharacterBuild) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}

		if err := f.SetSheetRow(s.name, "A1", &s.header); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(s.header), 1)
		if err := f.SetCellStyle(s.name, "A1", last, headerStyleID); err != nil {
			return err
		}
		_ = f.SetPanes(s.name, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

		row := 1
		for _, b := range builds {
			for _, values := range s.rows(b) {
				row++
				cell, _ := excelize.CoordinatesToCellName(1, row)
				if err := f.SetSheetRow(s.name, cell, &values); err != nil {
					return fmt.Errorf("%s row %d: %w", s.name, row, err)
				}
			}
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// 空值写成空单元格
func cellFloat(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func cellInt(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
