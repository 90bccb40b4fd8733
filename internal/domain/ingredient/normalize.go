package ingredient

import (
	"regexp"
	"strings"
	"unicode"
)

// Attributes describe how a name resolved, so the aggregator can branch on
// them (bell peppers get a per-color breakdown, for example).
type Attributes struct {
	Compound      bool
	IsBellPepper  bool
	Color         string
	FamilyMatched bool
	PrepStripped  bool
	AllStripped   bool
}

// Normalized is the canonical identity of an ingredient name. Key groups
// mentions that refer to the same thing to buy; Display is what the shopper
// sees. An empty Key means the name could not be resolved at all.
type Normalized struct {
	Key     string
	Display string
	Attrs   Attributes
}

// compoundNames maps fixed multi-ingredient phrases to one canonical key.
var compoundNames = map[string]Normalized{
	"salt and pepper":  {Key: "salt & pepper", Display: "Salt & pepper"},
	"salt & pepper":    {Key: "salt & pepper", Display: "Salt & pepper"},
	"salt n pepper":    {Key: "salt & pepper", Display: "Salt & pepper"},
	"salt 'n pepper":   {Key: "salt & pepper", Display: "Salt & pepper"},
	"salt and black pepper": {Key: "salt & pepper", Display: "Salt & pepper"},
}

// Bell peppers need an explicit bell or color qualifier. Plain "pepper",
// "black pepper", "cayenne pepper" and named hot peppers must never land
// here — they are different ingredients entirely.
var (
	bellPepperRe  = regexp.MustCompile(`\b(?:(red|green|yellow|orange)\s+)?bell\s+peppers?\b`)
	colorPepperRe = regexp.MustCompile(`^(red|green|yellow|orange)\s+peppers?$`)
)

// prepModifiers are cut/cook-state/prep-action words that never change what
// the shopper buys.
var prepModifiers = map[string]struct{}{
	"chopped": {}, "diced": {}, "minced": {}, "sliced": {}, "grated": {},
	"shredded": {}, "melted": {}, "softened": {}, "cooked": {},
	"crumbled": {}, "cubed": {}, "julienned": {}, "halved": {},
	"quartered": {}, "peeled": {}, "pitted": {}, "trimmed": {},
	"rinsed": {}, "drained": {}, "thawed": {}, "beaten": {},
	"whisked": {}, "sifted": {}, "crushed": {}, "torn": {}, "mashed": {},
	"finely": {}, "coarsely": {}, "thinly": {}, "roughly": {},
	"freshly": {}, "divided": {}, "packed": {},
}

// qualityModifiers are grade/dietary/size/texture words. Stripped only as a
// last resort, because sometimes they do matter ("unsalted" butter) — a
// family match on the full text always wins first.
var qualityModifiers = map[string]struct{}{
	"fresh": {}, "organic": {}, "large": {}, "small": {}, "medium": {},
	"extra": {}, "unsalted": {}, "salted": {}, "lean": {}, "ripe": {},
	"raw": {}, "frozen": {}, "canned": {}, "dried": {}, "whole": {},
	"light": {}, "skim": {}, "low-fat": {}, "lowfat": {}, "nonfat": {},
	"fat-free": {}, "low-sodium": {}, "reduced-sodium": {},
	"gluten-free": {}, "sugar-free": {}, "boneless": {}, "skinless": {},
	"premium": {}, "homemade": {}, "store-bought": {}, "quality": {},
	"good": {}, "best": {},
}

var genericCompoundRe = regexp.MustCompile(`^([a-z]{2,12}) and ([a-z]{2,12})$`)

// NormalizeName resolves a free-text ingredient name to its canonical key
// and display form. Decision order: compound table, bell-pepper rule, family
// table (full text, then prep-stripped, then fully stripped), generic
// "x and y" compounding, pluralization fallback. First success returns.
func NormalizeName(raw string) Normalized {
	cleaned := cleanName(raw)
	lower := strings.ToLower(cleaned)
	if lower == "" {
		return Normalized{}
	}

	if n, ok := compoundNames[lower]; ok {
		n.Attrs.Compound = true
		return n
	}

	if n, ok := matchBellPepper(lower); ok {
		return n
	}

	if rule, ok := matchFamily(lower); ok {
		return Normalized{
			Key:     rule.Canonical,
			Display: rule.Display,
			Attrs:   Attributes{FamilyMatched: true},
		}
	}

	prepStripped := stripModifiers(lower, prepModifiers)
	if prepStripped != lower && prepStripped != "" {
		if rule, ok := matchFamily(prepStripped); ok {
			return Normalized{
				Key:     rule.Canonical,
				Display: rule.Display,
				Attrs:   Attributes{FamilyMatched: true, PrepStripped: true},
			}
		}
	}

	allStripped := stripModifiers(prepStripped, qualityModifiers)
	if allStripped != prepStripped && allStripped != "" {
		if rule, ok := matchFamily(allStripped); ok {
			return Normalized{
				Key:     rule.Canonical,
				Display: rule.Display,
				Attrs:   Attributes{FamilyMatched: true, PrepStripped: true, AllStripped: true},
			}
		}
	}

	if m := genericCompoundRe.FindStringSubmatch(lower); m != nil {
		key := m[1] + " & " + m[2]
		return Normalized{
			Key:     key,
			Display: capitalizeFirst(key),
			Attrs:   Attributes{Compound: true},
		}
	}

	// Fallback: singularize the most-stripped non-empty variant.
	base := allStripped
	attrs := Attributes{PrepStripped: prepStripped != lower, AllStripped: allStripped != prepStripped}
	if base == "" {
		base = prepStripped
		attrs.AllStripped = false
	}
	if base == "" {
		base = lower
		attrs.PrepStripped = false
	}
	singular := SingularizePhrase(base)
	return Normalized{
		Key:     singular,
		Display: capitalizeFirst(singular),
		Attrs:   attrs,
	}
}

// matchBellPepper applies the bell-pepper rule. Color is empty when the line
// says just "bell pepper".
func matchBellPepper(lower string) (Normalized, bool) {
	if m := bellPepperRe.FindStringSubmatch(lower); m != nil {
		return Normalized{
			Key:     "bell pepper",
			Display: "Bell peppers",
			Attrs:   Attributes{IsBellPepper: true, Color: m[1]},
		}, true
	}
	if m := colorPepperRe.FindStringSubmatch(lower); m != nil {
		return Normalized{
			Key:     "bell pepper",
			Display: "Bell peppers",
			Attrs:   Attributes{IsBellPepper: true, Color: m[1]},
		}, true
	}
	return Normalized{}, false
}

// cleanName collapses whitespace and strips trailing punctuation.
func cleanName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " ,.;:!*")
}

// stripModifiers removes every token found in the given modifier set.
func stripModifiers(s string, modifiers map[string]struct{}) string {
	words := strings.Fields(s)
	kept := words[:0:0]
	for _, w := range words {
		if _, ok := modifiers[strings.Trim(w, ",")]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
