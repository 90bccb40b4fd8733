// Package ingredient contains the core parsing and normalization logic for
// free-text recipe ingredient lines. All functions in this package are pure:
// they never perform I/O, never log, and never fail on malformed input —
// unparseable values degrade to their zero form instead.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"
)

// vagueQuantity maps colloquial quantity phrases to fixed numeric values.
// Checked before any numeric parsing so "a couple of eggs" resolves to 2.
var vagueQuantities = []struct {
	phrase string
	value  float64
}{
	{"a few", 3},
	{"a couple", 2},
	{"several", 4},
	{"a pinch", 0.125},
	{"a dash", 0.125},
	{"a handful", 0.5},
	{"heaping", 1.25},
	{"scant", 0.875},
}

// vulgarFractions maps unicode vulgar fraction runes to their values.
var vulgarFractions = map[rune]float64{
	'¼': 0.25,
	'½': 0.5,
	'¾': 0.75,
	'⅐': 1.0 / 7,
	'⅑': 1.0 / 9,
	'⅒': 0.1,
	'⅓': 1.0 / 3,
	'⅔': 2.0 / 3,
	'⅕': 0.2,
	'⅖': 0.4,
	'⅗': 0.6,
	'⅘': 0.8,
	'⅙': 1.0 / 6,
	'⅚': 5.0 / 6,
	'⅛': 0.125,
	'⅜': 0.375,
	'⅝': 0.625,
	'⅞': 0.875,
}

var (
	mixedFractionRe  = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)$`)
	simpleFractionRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)$`)
	rangeRe          = regexp.MustCompile(`^(.+?)\s*(?:-|–|—|\bto\b|\bor\b)\s*(.+)$`)
	plainNumberRe    = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// ParseQuantity converts a quantity token to a numeric value. It understands
// vague phrases ("a few"), unicode vulgar fractions ("½", "1½"), ASCII mixed
// numbers ("1 1/2"), simple fractions ("3/4"), ranges ("2-3", "2 to 3") and
// plain numbers. Rules are tried in that order; the first match wins.
// Returns false when no rule matches.
func ParseQuantity(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	for _, vq := range vagueQuantities {
		if strings.Contains(s, vq.phrase) {
			return vq.value, true
		}
	}

	if v, ok := parseVulgarFraction(s); ok {
		return v, true
	}

	if m := mixedFractionRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return 0, false
		}
		return whole + num/den, true
	}

	if m := simpleFractionRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, false
		}
		return num / den, true
	}

	if m := rangeRe.FindStringSubmatch(s); m != nil {
		lo, okLo := parseRangeBound(m[1])
		hi, okHi := parseRangeBound(m[2])
		if okLo && okHi {
			return (lo + hi) / 2, true
		}
	}

	if plainNumberRe.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return v, true
		}
	}

	return 0, false
}

// parseVulgarFraction handles "½", "1½" and "1 ½" forms. The whole part, when
// present, must immediately precede the fraction rune.
func parseVulgarFraction(s string) (float64, bool) {
	runes := []rune(s)
	for i, r := range runes {
		frac, ok := vulgarFractions[r]
		if !ok {
			continue
		}
		// Anything after the fraction rune disqualifies the token.
		if i != len(runes)-1 {
			return 0, false
		}
		wholePart := strings.TrimSpace(string(runes[:i]))
		if wholePart == "" {
			return frac, true
		}
		whole, err := strconv.ParseFloat(wholePart, 64)
		if err != nil {
			return 0, false
		}
		return whole + frac, true
	}
	return 0, false
}

// parseRangeBound parses one side of a range. Bounds may themselves be
// fractions or vulgar fractions, but not ranges.
func parseRangeBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if m := mixedFractionRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return 0, false
		}
		return whole + num/den, true
	}
	if m := simpleFractionRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, false
		}
		return num / den, true
	}
	if v, ok := parseVulgarFraction(s); ok {
		return v, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
