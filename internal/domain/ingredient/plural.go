package ingredient

import "strings"

// irregularSingulars handles words standard suffix rules get wrong. This map
// is consulted before the keep-plural set and the suffix rules; the order
// matters for words like "cherries" that more than one rule could claim.
var irregularSingulars = map[string]string{
	"tomatoes":     "tomato",
	"potatoes":     "potato",
	"heroes":       "hero",
	"leaves":       "leaf",
	"loaves":       "loaf",
	"halves":       "half",
	"knives":       "knife",
	"cherries":     "cherry",
	"berries":      "berry",
	"strawberries": "strawberry",
	"blueberries":  "blueberry",
	"raspberries":  "raspberry",
	"blackberries": "blackberry",
	"anchovies":    "anchovy",
	"children":     "child",
	"feet":         "foot",
}

// keepPlural lists ingredient words that are conventionally plural (or end
// in "s") and must never be singularized.
var keepPlural = map[string]struct{}{
	"oats":        {},
	"lentils":     {},
	"chickpeas":   {},
	"breadcrumbs": {},
	"grits":       {},
	"molasses":    {},
	"couscous":    {},
	"hummus":      {},
	"asparagus":   {},
	"swiss":       {},
	"greens":      {},
	"sprouts":     {},
	"noodles":     {},
	"citrus":      {},
	"watercress":  {},
}

// Singularize reduces a lowercase English noun to singular form using the
// irregulars map first, then the keep-plural exception set, then standard
// suffix heuristics (-ies → -y, -es after sibilants, trailing -s).
func Singularize(word string) string {
	w := strings.TrimSpace(word)
	if w == "" {
		return w
	}

	if singular, ok := irregularSingulars[w]; ok {
		return singular
	}
	if _, ok := keepPlural[w]; ok {
		return w
	}

	if strings.HasSuffix(w, "ies") && len(w) > 3 {
		return w[:len(w)-3] + "y"
	}
	if strings.HasSuffix(w, "es") && len(w) > 2 {
		stem := w[:len(w)-2]
		for _, sib := range []string{"s", "x", "z", "ch", "sh"} {
			if strings.HasSuffix(stem, sib) {
				return stem
			}
		}
	}
	if strings.HasSuffix(w, "ss") {
		return w
	}
	if strings.HasSuffix(w, "s") && len(w) > 1 {
		return w[:len(w)-1]
	}
	return w
}

// SingularizePhrase singularizes only the final word of a multi-word name,
// so "green onions" becomes "green onion".
func SingularizePhrase(phrase string) string {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return phrase
	}
	words[len(words)-1] = Singularize(words[len(words)-1])
	return strings.Join(words, " ")
}
