package ingredient

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Line is one raw ingredient mention from a recipe, with whatever structure
// the caller already has. Fields left empty are filled in by ParseLine.
type Line struct {
	RecipeID uuid.UUID
	Text     string
	Quantity *float64
	Unit     Unit
	Name     string
}

// Parsed is a fully structured ingredient line. Preparation holds trailing
// comma clauses and parentheticals ("melted", "about 2 lbs"); Notes holds
// non-quantifiable phrases ("to taste"). Immutable after creation.
type Parsed struct {
	Line
	Preparation string
	Notes       string
	Group       string
}

// nonQuantPhrases short-circuit parsing: a line carrying one of these has no
// meaningful quantity and the phrase itself becomes the note.
var nonQuantPhrases = []string{
	"to taste",
	"as needed",
	"optional",
	"for garnish",
	"for serving",
}

// countableNouns is the set of foods commonly written with a bare count
// ("2 eggs"). When a quantity is present without a unit and the name is in
// this set, the unit is inferred as "piece" so these lines stay summable.
var countableNouns = map[string]struct{}{
	"egg": {}, "banana": {}, "onion": {}, "apple": {}, "lemon": {},
	"lime": {}, "orange": {}, "tomato": {}, "potato": {}, "carrot": {},
	"avocado": {}, "shallot": {}, "cucumber": {}, "zucchini": {},
	"peach": {}, "pear": {}, "mango": {}, "pepper": {}, "jalapeno": {},
	"scallion": {}, "radish": {}, "beet": {}, "turnip": {}, "plum": {},
}

var (
	parentheticalRe = regexp.MustCompile(`\s*\(([^)]*)\)`)
	leadingQtyRe    = regexp.MustCompile(`^((?:\d+\s+\d+\s*/\s*\d+)|(?:\d+(?:\.\d+)?\s*/\s*\d+(?:\.\d+)?)|(?:\d+(?:\.\d+)?\s*(?:-|–|to|or)\s*\d+(?:\.\d+)?)|(?:\d+(?:\.\d+)?\s*[¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞])|(?:[¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞])|(?:\d+(?:\.\d+)?))\s*`)
)

// ParseLine structures one raw ingredient line. It never fails: fields it
// cannot resolve stay empty and the original text is always preserved.
func ParseLine(recipeID uuid.UUID, text string) Parsed {
	p := Parsed{Line: Line{RecipeID: recipeID, Text: text}}

	work := strings.TrimSpace(text)
	lower := strings.ToLower(work)

	// Non-quantifiable phrases win outright: strip the phrase, keep it as
	// the note, and skip quantity/unit parsing entirely.
	for _, phrase := range nonQuantPhrases {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}
		remainder := work[:idx] + work[idx+len(phrase):]
		p.Notes = phrase
		p.Name = cleanLineRemainder(remainder)
		return p
	}

	// Parentheticals and trailing comma clauses are preparation detail,
	// not part of the name.
	if m := parentheticalRe.FindStringSubmatch(work); m != nil {
		p.Preparation = strings.TrimSpace(m[1])
		work = strings.TrimSpace(parentheticalRe.ReplaceAllString(work, ""))
	}
	if idx := strings.Index(work, ","); idx >= 0 {
		clause := strings.TrimSpace(work[idx+1:])
		if clause != "" {
			if p.Preparation != "" {
				p.Preparation += ", " + clause
			} else {
				p.Preparation = clause
			}
		}
		work = strings.TrimSpace(work[:idx])
	}

	// Leading quantity token.
	if m := leadingQtyRe.FindStringSubmatch(work); m != nil {
		if v, ok := ParseQuantity(m[1]); ok {
			p.Quantity = &v
			work = strings.TrimSpace(work[len(m[0]):])
		}
	} else if v, rest, ok := matchVaguePrefix(work); ok {
		p.Quantity = &v
		work = rest
	}

	// Candidate unit: try a two-word token first so "fl oz" and
	// "fluid ounces" resolve, then a single word.
	if p.Quantity != nil {
		words := strings.Fields(work)
		if len(words) >= 2 {
			if u, ok := NormalizeUnit(words[0] + " " + words[1]); ok {
				p.Unit = u
				work = strings.TrimSpace(strings.Join(words[2:], " "))
				words = nil
			}
		}
		if words != nil && len(words) >= 1 {
			if u, ok := NormalizeUnit(words[0]); ok {
				p.Unit = u
				work = strings.TrimSpace(strings.Join(words[1:], " "))
			}
		}
	}

	// "2 cups of flour" — the "of" is noise.
	work = strings.TrimSpace(strings.TrimPrefix(work, "of "))
	if work == "of" {
		work = ""
	}

	p.Name = cleanLineRemainder(work)

	// Countable inference: "2 eggs" has no unit but needs a unit class so
	// it can sum with other bare-count lines.
	if p.Quantity != nil && p.Unit == "" {
		singular := Singularize(strings.ToLower(p.Name))
		if _, ok := countableNouns[singular]; ok {
			p.Unit = UnitPiece
		}
	}

	return p
}

// matchVaguePrefix matches a vague quantity phrase at the start of the line
// ("a few sprigs of thyme") and returns the remainder after the phrase.
func matchVaguePrefix(s string) (float64, string, bool) {
	lower := strings.ToLower(s)
	for _, vq := range vagueQuantities {
		if strings.HasPrefix(lower, vq.phrase+" ") || lower == vq.phrase {
			return vq.value, strings.TrimSpace(s[len(vq.phrase):]), true
		}
	}
	return 0, "", false
}

// cleanLineRemainder tidies a name fragment left over after phrase and token
// extraction: dangling commas, doubled spaces, stray "of".
func cleanLineRemainder(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " ,;.")
	s = strings.TrimSpace(strings.TrimPrefix(s, "of "))
	return s
}
