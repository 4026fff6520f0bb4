package hsr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// recognizer decodes the value part of a "label: value" line.
// ok == false hands the value to the next recognizer.
type recognizer struct {
	name   string
	decode func(value string, logger *zap.Logger) (c Characteristic, ok bool)
}

// recognizers 按优先级排列，第一个匹配的生效
var recognizers = []recognizer{
	{"slower-than-carry", decodeSlowerThanCarry},
	{"slower-than-the-carry", decodeSlowerThanTheCarry},
	{"base-speed", decodeBaseSpeed},
	{"commented-pair", decodeCommentedPair},
	{"alternatives", decodeAlternatives},
	{"range", decodeRange},
	{"single", decodeSingle},
}

const (
	slowerThanCarry    = "1-2 Speed slower than carry"
	slowerThanTheCarry = "1-2 Speed slower than the carry"
	baseSpeed          = "Base Speed"
)

var (
	slowerThanCarryRe    = regexp.MustCompile(`^(1-2 Speed slower than carry)(.*?)\s*/\s*(\d+\+?)\s*(\(.*\))?`)
	slowerThanTheCarryRe = regexp.MustCompile(`^(1-2 Speed slower than the carry.*?)(,\s*)(\d+\+?)\s*(.*)`)
	baseSpeedRe          = regexp.MustCompile(`^(Base Speed.*?/\s*)(\d+)`)
	commentedPairRe      = regexp.MustCompile(`^(\d+(?:\.\d+)?%?\+?)\s*(\(.*?\))\s*/\s*(\d+(?:\.\d+)?%?\+?)\s*(\(.*\))`)
	commentSplitRe       = regexp.MustCompile(`^(.*?)(\(.*\))`)
	rangeRe              = regexp.MustCompile(`^(\d+\.?\d*%?)\s*(\(.*?\))?\s*-\s*(\d+\.?\d*%?)\+?\s*(\(.*?\))?`)
	singleRe             = regexp.MustCompile(`^(\d+\.?\d*%?)\+?\s*(\(.*\))?`)
	leadingDigitRe       = regexp.MustCompile(`^\d`)
)

// DecodeCharacteristic decodes one "label: value" line. It never fails: a value
// no recognizer accepts is kept verbatim as text. logger may be nil.
func DecodeCharacteristic(line string, logger *zap.Logger) Characteristic {
	label, value := splitLabel(line)
	c := decodeValue(value, loggerOrNop(logger))
	c.Label = label
	c.Raw = line
	return c
}

// DecodeCharacteristics decodes lines in order, skipping blank ones.
func DecodeCharacteristics(lines []string, logger *zap.Logger) []Characteristic {
	logger = loggerOrNop(logger)
	out := make([]Characteristic, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, DecodeCharacteristic(l, logger))
	}
	return out
}

func splitLabel(line string) (string, string) {
	label, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", strings.TrimSpace(line)
	}
	return strings.TrimSpace(label), strings.TrimSpace(value)
}

func decodeValue(value string, logger *zap.Logger) Characteristic {
	for _, r := range recognizers {
		c, ok, err := tryRecognizer(r, value, logger)
		if err != nil {
			logger.Debug("characteristic decode failed",
				zap.String("rule", r.name), zap.String("value", value), zap.Error(err))
			break
		}
		if ok {
			return c
		}
	}
	return textValue(value)
}

func tryRecognizer(r recognizer, value string, logger *zap.Logger) (c Characteristic, ok bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("recognizer %s: %v", r.name, p)
		}
	}()
	c, ok = r.decode(value, logger)
	return c, ok, nil
}

func textValue(value string) Characteristic {
	return Characteristic{Kind: KindText, Text: value}
}

func rangeValue(r ValueRange) Characteristic {
	return Characteristic{Kind: KindRange, Range: &r}
}

// 两个特殊写法一旦出现就只走对应规则，匹配失败直接退化为文本

func decodeSlowerThanCarry(value string, logger *zap.Logger) (Characteristic, bool) {
	if !strings.Contains(value, slowerThanCarry) {
		return Characteristic{}, false
	}
	m := slowerThanCarryRe.FindStringSubmatch(value)
	if m == nil {
		logger.Debug("speed idiom without threshold", zap.String("value", value))
		return textValue(value), true
	}
	r := ValueRange{Condition: m[1], MinComment: m[4]}
	var ok bool
	if r.Min, r.Plus, ok = parseThreshold(m[3]); !ok {
		logger.Debug("speed threshold out of range", zap.String("value", value))
		return textValue(value), true
	}
	return rangeValue(r), true
}

func decodeSlowerThanTheCarry(value string, logger *zap.Logger) (Characteristic, bool) {
	if !strings.Contains(value, slowerThanTheCarry) {
		return Characteristic{}, false
	}
	m := slowerThanTheCarryRe.FindStringSubmatch(value)
	if m == nil {
		logger.Debug("speed idiom without threshold", zap.String("value", value))
		return textValue(value), true
	}
	r := ValueRange{Condition: m[1], MinComment: strings.TrimSpace(m[4])}
	var ok bool
	if r.Min, r.Plus, ok = parseThreshold(m[3]); !ok {
		logger.Debug("speed threshold out of range", zap.String("value", value))
		return textValue(value), true
	}
	return rangeValue(r), true
}

func decodeBaseSpeed(value string, logger *zap.Logger) (Characteristic, bool) {
	if !strings.Contains(value, baseSpeed) {
		return Characteristic{}, false
	}
	m := baseSpeedRe.FindStringSubmatch(value)
	if m == nil {
		logger.Debug("base speed idiom without value", zap.String("value", value))
		return textValue(value), true
	}
	base := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), "/"))
	return Characteristic{
		Kind:  KindFixed,
		Fixed: []Alternative{{Value: base}, {Value: m[2]}},
	}, true
}

func decodeCommentedPair(value string, _ *zap.Logger) (Characteristic, bool) {
	m := commentedPairRe.FindStringSubmatch(value)
	if m == nil {
		return Characteristic{}, false
	}
	return Characteristic{
		Kind: KindFixed,
		Fixed: []Alternative{
			{Value: m[1], Comment: m[2]},
			{Value: m[3], Comment: m[4]},
		},
	}, true
}

// decodeAlternatives handles "a / b / c". Only one alternative carries a
// comment: the search goes from the last alternative to the first.
func decodeAlternatives(value string, _ *zap.Logger) (Characteristic, bool) {
	if !strings.Contains(value, "/") {
		return Characteristic{}, false
	}
	parts := strings.Split(value, "/")
	if len(parts) > 3 {
		return Characteristic{}, false
	}
	alts := make([]Alternative, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !leadingDigitRe.MatchString(p) {
			return Characteristic{}, false
		}
		alts[i] = Alternative{Value: p}
	}
	for i := len(alts) - 1; i >= 0; i-- {
		if !strings.Contains(alts[i].Value, "(") {
			continue
		}
		if m := commentSplitRe.FindStringSubmatch(alts[i].Value); m != nil {
			alts[i] = Alternative{Value: strings.TrimSpace(m[1]), Comment: m[2]}
		}
		break
	}
	return Characteristic{Kind: KindFixed, Fixed: alts}, true
}

func decodeRange(value string, _ *zap.Logger) (Characteristic, bool) {
	if strings.Contains(value, "/") {
		return Characteristic{}, false
	}
	m := rangeRe.FindStringSubmatch(value)
	if m == nil {
		return Characteristic{}, false
	}
	lo, loPct, err := parseQuantity(m[1])
	if err != nil {
		return Characteristic{}, false
	}
	hi, hiPct, err := parseQuantity(m[3])
	if err != nil {
		return Characteristic{}, false
	}
	return rangeValue(ValueRange{
		Min:        lo,
		Max:        &hi,
		MinComment: m[2],
		MaxComment: m[4],
		Percent:    loPct || hiPct,
		Plus:       strings.Contains(value, "+"),
	}), true
}

func decodeSingle(value string, _ *zap.Logger) (Characteristic, bool) {
	if strings.Contains(value, "/") {
		return Characteristic{}, false
	}
	m := singleRe.FindStringSubmatch(value)
	if m == nil {
		return Characteristic{}, false
	}
	v, pct, err := parseQuantity(m[1])
	if err != nil {
		return Characteristic{}, false
	}
	return rangeValue(ValueRange{
		Min:        v,
		MinComment: m[2],
		Percent:    pct,
		Plus:       strings.Contains(value, "+"),
	}), true
}

// parseQuantity 的输入已被正则限定为十进制数字，超出 float64 范围时报错
func parseQuantity(s string) (float64, bool, error) {
	pct := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	return v, pct, err
}

func parseThreshold(s string) (v float64, plus bool, ok bool) {
	plus = strings.HasSuffix(s, "+")
	f := parseDecimal(strings.TrimSuffix(s, "+"))
	if f == nil {
		return 0, plus, false
	}
	return *f, plus, true
}
