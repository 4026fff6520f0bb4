package output

import (
	"strconv"
	"strings"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
)

// FormatPriority renders tiers back into the page notation, e.g. "CRIT Rate = CRIT DMG > ATK%".
func FormatPriority(p hsr.Priority) string {
	tiers := make([]string, 0, len(p))
	for _, tier := range p {
		tiers = append(tiers, strings.Join(tier, " = "))
	}
	return strings.Join(tiers, " > ")
}

// FormatValue 把解析后的数值还原成可读的形式
func FormatValue(c hsr.Characteristic) string {
	switch c.Kind {
	case hsr.KindRange:
		r := c.Range
		if r == nil {
			return c.Raw
		}
		var b strings.Builder
		if r.Condition != "" {
			b.WriteString(r.Condition)
			b.WriteString(", ")
		}
		if r.Max == nil {
			b.WriteString(bound(r.Min, r.Percent, r.Plus, r.MinComment))
		} else {
			b.WriteString(bound(r.Min, r.Percent, false, r.MinComment))
			b.WriteString(" - ")
			b.WriteString(bound(*r.Max, r.Percent, r.Plus, r.MaxComment))
		}
		return b.String()
	case hsr.KindFixed:
		alts := make([]string, 0, len(c.Fixed))
		for _, a := range c.Fixed {
			if a.Comment != "" {
				alts = append(alts, a.Value+" "+a.Comment)
			} else {
				alts = append(alts, a.Value)
			}
		}
		return strings.Join(alts, " / ")
	default:
		return c.Text
	}
}

// plus 只加在最后一个数值上
func bound(v float64, percent, plus bool, comment string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if percent {
		s += "%"
	}
	if plus {
		s += "+"
	}
	if comment != "" {
		s += " " + comment
	}
	return s
}

func percent(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64) + "%"
}

func optInt(p *int, prefix string) string {
	if p == nil {
		return "-"
	}
	return prefix + strconv.Itoa(*p)
}

func optFloat(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func stars(n int) string {
	if n <= 0 {
		return "-"
	}
	return strings.Repeat("★", n)
}
