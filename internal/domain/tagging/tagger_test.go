package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagCuisines(t *testing.T) {
	t.Run("title and ingredient evidence combine", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Spaghetti Carbonara",
			Ingredients: []string{"spaghetti", "eggs", "parmesan cheese", "pancetta", "black pepper"},
		})
		assert.Equal(t, []string{"Italian"}, result.Cuisines)
	})

	t.Run("weak evidence stays below threshold", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Grilled Chicken",
			Ingredients: []string{"chicken", "salt"},
		})
		assert.Empty(t, result.Cuisines)
	})

	t.Run("at most two cuisines, strongest first", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Korean Mexican Fusion Tacos",
			Ingredients: []string{"kimchi", "tortilla", "gochujang"},
		})
		assert.Equal(t, []string{"Mexican", "Korean"}, result.Cuisines)
	})

	t.Run("equal scores break by table order", func(t *testing.T) {
		result := Tag(RecipeInput{Title: "Pasta Tacos"})
		assert.Equal(t, []string{"Italian", "Mexican"}, result.Cuisines)
	})

	t.Run("plural keyword still matches", func(t *testing.T) {
		result := Tag(RecipeInput{Title: "Beef Tacos"})
		assert.Equal(t, []string{"Mexican"}, result.Cuisines)
	})
}

func TestTagMealTypes(t *testing.T) {
	t.Run("title keyword alone crosses the threshold", func(t *testing.T) {
		result := Tag(RecipeInput{Title: "Blueberry Pancakes"})
		assert.Equal(t, []string{"Breakfast"}, result.MealTypes)
	})

	t.Run("description keywords accumulate", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Skillet Chicken",
			Description: "An easy weeknight dinner the whole family loves.",
		})
		assert.Equal(t, []string{"Dinner"}, result.MealTypes)
	})

	t.Run("single description hit is not enough", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Skillet Chicken",
			Description: "Ready for dinner in twenty minutes.",
		})
		assert.Empty(t, result.MealTypes)
	})

	t.Run("no evidence yields no meal types", func(t *testing.T) {
		result := Tag(RecipeInput{Title: "Chicken"})
		assert.Empty(t, result.MealTypes)
	})
}

func TestTagDietaryLabels(t *testing.T) {
	t.Run("plant-only ingredients are vegetarian and vegan", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Rice and Beans",
			Ingredients: []string{"rice", "black beans", "olive oil", "cilantro"},
		})
		assert.Equal(t,
			[]string{LabelVegetarian, LabelVegan, LabelGlutenFree, LabelDairyFree, LabelNutFree},
			result.DietaryLabels,
		)
	})

	t.Run("dairy blocks vegan but not vegetarian", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Buttered Pasta",
			Ingredients: []string{"pasta", "butter"},
		})
		assert.Contains(t, result.DietaryLabels, LabelVegetarian)
		assert.NotContains(t, result.DietaryLabels, LabelVegan)
		assert.NotContains(t, result.DietaryLabels, LabelDairyFree)
		assert.NotContains(t, result.DietaryLabels, LabelGlutenFree)
	})

	t.Run("chicken broth blocks vegetarian", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Vegetable Soup",
			Ingredients: []string{"carrots", "celery", "chicken broth"},
		})
		assert.NotContains(t, result.DietaryLabels, LabelVegetarian)
		assert.NotContains(t, result.DietaryLabels, LabelVegan)
	})

	t.Run("eggplant is not an egg", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Roasted Eggplant",
			Ingredients: []string{"eggplant", "olive oil"},
		})
		assert.Contains(t, result.DietaryLabels, LabelVegan)
	})

	t.Run("keto and low-carb require animal food and no high-carb", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Garlic Butter Chicken",
			Ingredients: []string{"chicken breast", "butter", "spinach"},
		})
		assert.Contains(t, result.DietaryLabels, LabelKeto)
		assert.Contains(t, result.DietaryLabels, LabelLowCarb)
	})

	t.Run("high-carb ingredient cancels keto", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Chicken and Rice",
			Ingredients: []string{"chicken breast", "rice", "butter"},
		})
		assert.NotContains(t, result.DietaryLabels, LabelKeto)
		assert.NotContains(t, result.DietaryLabels, LabelLowCarb)
	})

	t.Run("three protein classes make high-protein", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Power Bowl",
			Ingredients: []string{"chicken", "eggs", "greek yogurt", "quinoa"},
		})
		assert.Contains(t, result.DietaryLabels, LabelHighProtein)
	})

	t.Run("protein in title makes high-protein", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Protein Smoothie",
			Ingredients: []string{"banana"},
		})
		assert.Contains(t, result.DietaryLabels, LabelHighProtein)
	})

	t.Run("low sodium comes from title or description", func(t *testing.T) {
		result := Tag(RecipeInput{
			Title:       "Low-Sodium Vegetable Soup",
			Ingredients: []string{"carrots", "celery"},
		})
		assert.Contains(t, result.DietaryLabels, LabelLowSodium)
	})

	t.Run("empty ingredient list yields no labels", func(t *testing.T) {
		result := Tag(RecipeInput{Title: "Mystery Dish"})
		assert.Empty(t, result.DietaryLabels)
	})
}

func TestContainsKeywordBoundaries(t *testing.T) {
	tests := []struct {
		s, keyword string
		want       bool
	}{
		{"2 eggs", "egg", true},
		{"eggplant", "egg", false},
		{"30 minutes", "nut", false},
		{"pine nuts", "nut", true},
		{"black tea", "tea", true},
		{"steak", "tea", false},
		{"tacos", "taco", true},
		{"tacos and more tacos", "taco", true},
		{"taco", "taco", true},
	}
	for _, tt := range tests {
		t.Run(tt.s+"/"+tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, containsKeyword(tt.s, tt.keyword))
		})
	}
}
