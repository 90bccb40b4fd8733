package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNameFamilies(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKey     string
		wantDisplay string
	}{
		{"exact family word", "cheddar", "cheddar cheese", "Cheddar cheese"},
		{"family word inside phrase", "sharp cheddar cheese", "cheddar cheese", "Cheddar cheese"},
		{"plural family word", "roma tomatoes", "tomato", "Tomatoes"},
		{"specific rule beats generic", "extra virgin olive oil", "olive oil", "Olive oil"},
		{"all-purpose flour collapses", "all-purpose flour", "flour", "Flour"},
		{"tortillas are not flour", "flour tortillas", "flour tortillas", "Flour tortillas"},
		{"chicken broth is not chicken", "low-sodium chicken broth", "chicken broth", "Chicken broth"},
		{"chicken breast stays specific", "boneless skinless chicken breasts", "chicken breast", "Chicken breasts"},
		{"peanut butter is not butter", "creamy peanut butter", "peanut butter", "Peanut butter"},
		{"egg noodles are not eggs", "wide egg noodles", "egg noodles", "Egg noodles"},
		{"rice wine is not rice", "shaoxing rice wine", "rice wine", "Rice wine"},
		{"oyster sauce is not seafood", "oyster sauce", "oyster sauce", "Oyster sauce"},
		{"black pepper is a spice", "freshly ground black pepper", "black pepper", "Black pepper"},
		{"kosher salt collapses", "kosher salt", "salt", "Salt"},
		{"word boundary blocks eggplant", "eggplant", "eggplant", "Eggplant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NormalizeName(tt.input)
			assert.Equal(t, tt.wantKey, n.Key)
			assert.Equal(t, tt.wantDisplay, n.Display)
			assert.True(t, n.Attrs.FamilyMatched)
			assert.False(t, n.Attrs.IsBellPepper)
		})
	}
}

func TestNormalizeNameBellPeppers(t *testing.T) {
	tests := []struct {
		input     string
		wantColor string
	}{
		{"red bell pepper", "red"},
		{"red bell peppers", "red"},
		{"2 large green bell peppers", "green"},
		{"yellow bell pepper", "yellow"},
		{"orange bell peppers", "orange"},
		{"bell pepper", ""},
		{"bell peppers", ""},
		{"green pepper", "green"},
		{"red peppers", "red"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n := NormalizeName(tt.input)
			assert.Equal(t, "bell pepper", n.Key)
			assert.Equal(t, "Bell peppers", n.Display)
			assert.True(t, n.Attrs.IsBellPepper)
			assert.Equal(t, tt.wantColor, n.Attrs.Color)
		})
	}
}

func TestNormalizeNameNonBellPeppers(t *testing.T) {
	for _, input := range []string{
		"black pepper", "cayenne pepper", "jalapeno pepper", "pepper",
	} {
		t.Run(input, func(t *testing.T) {
			n := NormalizeName(input)
			assert.False(t, n.Attrs.IsBellPepper, "%q must not resolve to bell pepper", input)
			assert.NotEqual(t, "bell pepper", n.Key)
		})
	}
}

func TestNormalizeNameCompounds(t *testing.T) {
	for _, input := range []string{
		"salt and pepper", "Salt & Pepper", "salt and black pepper",
	} {
		t.Run(input, func(t *testing.T) {
			n := NormalizeName(input)
			assert.Equal(t, "salt & pepper", n.Key)
			assert.Equal(t, "Salt & pepper", n.Display)
			assert.True(t, n.Attrs.Compound)
		})
	}

	t.Run("generic x and y", func(t *testing.T) {
		n := NormalizeName("bits and bobs")
		assert.Equal(t, "bits & bobs", n.Key)
		assert.True(t, n.Attrs.Compound)
	})
}

func TestNormalizeNameModifierStripping(t *testing.T) {
	t.Run("prep modifiers removed before second family pass", func(t *testing.T) {
		n := NormalizeName("finely chopped yellow onions")
		assert.Equal(t, "onion", n.Key)
		assert.True(t, n.Attrs.FamilyMatched)
	})

	t.Run("quality modifiers removed last", func(t *testing.T) {
		n := NormalizeName("fresh organic baby spinach")
		assert.Equal(t, "spinach", n.Key)
	})
}

func TestNormalizeNameFallback(t *testing.T) {
	t.Run("unknown name singularized", func(t *testing.T) {
		n := NormalizeName("lotus roots")
		assert.Equal(t, "lotus root", n.Key)
		assert.Equal(t, "Lotus root", n.Display)
		assert.False(t, n.Attrs.FamilyMatched)
	})

	t.Run("prep words stripped in fallback", func(t *testing.T) {
		n := NormalizeName("chopped lotus roots")
		assert.Equal(t, "lotus root", n.Key)
		assert.True(t, n.Attrs.PrepStripped)
	})

	t.Run("empty input yields empty key", func(t *testing.T) {
		n := NormalizeName("   ")
		assert.Equal(t, "", n.Key)
	})
}
