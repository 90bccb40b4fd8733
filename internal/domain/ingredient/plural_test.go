package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingularize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Irregulars win over suffix rules.
		{"tomatoes", "tomato"},
		{"potatoes", "potato"},
		{"leaves", "leaf"},
		{"loaves", "loaf"},
		{"cherries", "cherry"},
		{"strawberries", "strawberry"},
		{"anchovies", "anchovy"},

		// Conventionally plural foods stay as they are.
		{"oats", "oats"},
		{"lentils", "lentils"},
		{"chickpeas", "chickpeas"},
		{"breadcrumbs", "breadcrumbs"},
		{"molasses", "molasses"},
		{"couscous", "couscous"},
		{"asparagus", "asparagus"},
		{"greens", "greens"},
		{"noodles", "noodles"},

		// Suffix rules.
		{"berries", "berry"},
		{"boxes", "box"},
		{"dishes", "dish"},
		{"peaches", "peach"},
		{"carrots", "carrot"},
		{"onions", "onion"},
		{"eggs", "egg"},

		// Double-s words are not plurals.
		{"swiss", "swiss"},
		{"bass", "bass"},

		// Already singular.
		{"egg", "egg"},
		{"flour", "flour"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Singularize(tt.input))
		})
	}
}

func TestSingularizePhrase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"green onions", "green onion"},
		{"cherry tomatoes", "cherry tomato"},
		{"chicken breasts", "chicken breast"},
		{"collard greens", "collard greens"},
		{"flour", "flour"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SingularizePhrase(tt.input))
		})
	}
}
