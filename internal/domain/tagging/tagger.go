package tagging

import (
	"sort"
	"strings"
)

// RecipeInput is the text a recipe contributes to classification.
type RecipeInput struct {
	Title       string
	Description string
	Ingredients []string
}

// Result holds the matched label names. Mapping names to external
// identifiers is the application layer's job.
type Result struct {
	Cuisines      []string
	MealTypes     []string
	DietaryLabels []string
}

const (
	cuisineTitleWeight      = 3
	cuisineIngredientWeight = 1
	mealTitleWeight         = 5
	mealDescriptionWeight   = 2
	minScore                = 3
	maxResults              = 2
	highProteinThreshold    = 3
)

// Tag classifies a recipe. All matching is lowercase substring with word
// boundaries; each keyword counts at most once no matter how many
// ingredients contain it.
func Tag(in RecipeInput) Result {
	title := strings.ToLower(in.Title)
	description := strings.ToLower(in.Description)
	ingredients := make([]string, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		ingredients = append(ingredients, strings.ToLower(ing))
	}

	return Result{
		Cuisines:      scoreCuisines(title, ingredients),
		MealTypes:     scoreMealTypes(title, description),
		DietaryLabels: deriveDietaryLabels(title, description, ingredients),
	}
}

type scored struct {
	name  string
	score int
	order int
}

func topMatches(candidates []scored) []string {
	kept := candidates[:0:0]
	for _, c := range candidates {
		if c.score >= minScore {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].order < kept[j].order
	})
	if len(kept) > maxResults {
		kept = kept[:maxResults]
	}
	names := make([]string, len(kept))
	for i, c := range kept {
		names[i] = c.name
	}
	return names
}

func scoreCuisines(title string, ingredients []string) []string {
	candidates := make([]scored, 0, len(cuisineTable))
	for i, c := range cuisineTable {
		score := 0
		for _, kw := range c.TitleKeywords {
			if containsKeyword(title, kw) {
				score += cuisineTitleWeight
			}
		}
		for _, kw := range c.IngredientKeywords {
			if anyIngredientContains(ingredients, kw) {
				score += cuisineIngredientWeight
			}
		}
		candidates = append(candidates, scored{name: c.Name, score: score, order: i})
	}
	return topMatches(candidates)
}

func scoreMealTypes(title, description string) []string {
	candidates := make([]scored, 0, len(mealTypeTable))
	for i, m := range mealTypeTable {
		score := 0
		for _, kw := range m.TitleKeywords {
			if containsKeyword(title, kw) {
				score += mealTitleWeight
			}
		}
		for _, kw := range m.DescriptionKeywords {
			if containsKeyword(description, kw) {
				score += mealDescriptionWeight
			}
		}
		candidates = append(candidates, scored{name: m.Name, score: score, order: i})
	}
	return topMatches(candidates)
}

// deriveDietaryLabels computes presence/absence classes once over the
// ingredient list and derives each label from them. An empty ingredient
// list yields no labels: absence of evidence is not evidence of absence.
func deriveDietaryLabels(title, description string, ingredients []string) []string {
	if len(ingredients) == 0 {
		return nil
	}

	hasMeat := anyKeywordHit(ingredients, meatKeywords)
	hasFish := anyKeywordHit(ingredients, fishKeywords)
	hasAnimalBroth := anyKeywordHit(ingredients, animalBrothKeywords)
	hasDairy := anyKeywordHit(ingredients, dairyKeywords)
	hasEgg := anyKeywordHit(ingredients, eggKeywords)
	hasGluten := anyKeywordHit(ingredients, glutenKeywords)
	hasNut := anyKeywordHit(ingredients, nutKeywords)
	hasHighCarb := anyKeywordHit(ingredients, highCarbKeywords)
	proteinHits := countKeywordHits(ingredients, proteinKeywords)

	var labels []string

	vegetarian := !hasMeat && !hasFish && !hasAnimalBroth
	if vegetarian {
		labels = append(labels, LabelVegetarian)
		if !hasDairy && !hasEgg {
			labels = append(labels, LabelVegan)
		}
	}
	if !hasGluten {
		labels = append(labels, LabelGlutenFree)
	}
	if !hasDairy {
		labels = append(labels, LabelDairyFree)
	}
	if !hasNut {
		labels = append(labels, LabelNutFree)
	}
	if proteinHits >= highProteinThreshold || containsKeyword(title, "protein") {
		labels = append(labels, LabelHighProtein)
	}
	titleAndDescription := title + " " + description
	if strings.Contains(titleAndDescription, "low sodium") ||
		strings.Contains(titleAndDescription, "low-sodium") ||
		strings.Contains(titleAndDescription, "no salt") {
		labels = append(labels, LabelLowSodium)
	}
	if !hasHighCarb && (hasMeat || hasDairy || hasEgg) {
		labels = append(labels, LabelKeto, LabelLowCarb)
	}

	return labels
}

// anyKeywordHit reports whether any keyword of the class appears in any
// ingredient.
func anyKeywordHit(ingredients, keywords []string) bool {
	for _, kw := range keywords {
		if anyIngredientContains(ingredients, kw) {
			return true
		}
	}
	return false
}

// countKeywordHits counts distinct keywords hit across the ingredient list;
// a keyword present in several ingredients still counts once.
func countKeywordHits(ingredients, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if anyIngredientContains(ingredients, kw) {
			count++
		}
	}
	return count
}

func anyIngredientContains(ingredients []string, keyword string) bool {
	for _, ing := range ingredients {
		if containsKeyword(ing, keyword) {
			return true
		}
	}
	return false
}

// containsKeyword is word-boundary containment: "egg" hits "2 eggs" but not
// "eggplant", and "nut" does not hit "minutes".
func containsKeyword(s, keyword string) bool {
	for start := 0; ; {
		idx := strings.Index(s[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(keyword)

		leftOK := idx == 0 || !isWordByte(s[idx-1])
		rightOK := end == len(s) || !isWordByte(s[end]) || hasPluralTail(s[end:])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
		if start >= len(s) {
			return false
		}
	}
}

func hasPluralTail(tail string) bool {
	for _, suffix := range []string{"s", "es"} {
		if strings.HasPrefix(tail, suffix) {
			rest := tail[len(suffix):]
			if rest == "" || !isWordByte(rest[0]) {
				return true
			}
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
