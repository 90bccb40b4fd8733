package ingredient

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestParseLine(t *testing.T) {
	recipeID := uuid.New()

	tests := []struct {
		name     string
		text     string
		quantity *float64
		unit     Unit
		wantName string
		prep     string
		notes    string
	}{
		{
			name:     "quantity unit name",
			text:     "2 cups flour",
			quantity: floatPtr(2),
			unit:     UnitCup,
			wantName: "flour",
		},
		{
			name:     "of is stripped",
			text:     "2 cups of flour",
			quantity: floatPtr(2),
			unit:     UnitCup,
			wantName: "flour",
		},
		{
			name:     "mixed number",
			text:     "1 1/2 cups shredded cheddar cheese",
			quantity: floatPtr(1.5),
			unit:     UnitCup,
			wantName: "shredded cheddar cheese",
		},
		{
			name:     "vulgar fraction",
			text:     "½ cup sugar",
			quantity: floatPtr(0.5),
			unit:     UnitCup,
			wantName: "sugar",
		},
		{
			name:     "two word unit",
			text:     "4 fl oz heavy cream",
			quantity: floatPtr(4),
			unit:     UnitFluidOunce,
			wantName: "heavy cream",
		},
		{
			name:     "comma clause becomes preparation",
			text:     "2 cloves garlic, minced",
			quantity: floatPtr(2),
			unit:     UnitClove,
			wantName: "garlic",
			prep:     "minced",
		},
		{
			name:     "parenthetical becomes preparation",
			text:     "1 (14 oz) can black beans",
			quantity: floatPtr(1),
			unit:     UnitCan,
			wantName: "black beans",
			prep:     "14 oz",
		},
		{
			name:     "parenthetical and comma clause combine",
			text:     "1 lb chicken thighs (boneless), trimmed",
			quantity: floatPtr(1),
			unit:     UnitPound,
			wantName: "chicken thighs",
			prep:     "boneless, trimmed",
		},
		{
			name:     "to taste short-circuits",
			text:     "salt to taste",
			wantName: "salt",
			notes:    "to taste",
		},
		{
			name:     "for garnish short-circuits",
			text:     "chopped parsley for garnish",
			wantName: "chopped parsley",
			notes:    "for garnish",
		},
		{
			name:     "bare count with countable noun infers piece",
			text:     "2 eggs",
			quantity: floatPtr(2),
			unit:     UnitPiece,
			wantName: "eggs",
		},
		{
			name:     "bare count with non-countable noun keeps empty unit",
			text:     "2 chicken breasts",
			quantity: floatPtr(2),
			wantName: "chicken breasts",
		},
		{
			name:     "vague phrase prefix",
			text:     "a few sprigs of thyme",
			quantity: floatPtr(3),
			unit:     UnitSprig,
			wantName: "thyme",
		},
		{
			name:     "a pinch",
			text:     "a pinch of nutmeg",
			quantity: floatPtr(0.125),
			wantName: "nutmeg",
		},
		{
			name:     "range quantity",
			text:     "2-3 tbsp olive oil",
			quantity: floatPtr(2.5),
			unit:     UnitTablespoon,
			wantName: "olive oil",
		},
		{
			name:     "descriptive word not mistaken for unit",
			text:     "2 fresh tomatoes",
			quantity: floatPtr(2),
			wantName: "fresh tomatoes",
		},
		{
			name:     "no quantity at all",
			text:     "butter",
			wantName: "butter",
		},
		{
			name:     "empty line",
			text:     "",
			wantName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseLine(recipeID, tt.text)

			assert.Equal(t, recipeID, p.RecipeID)
			assert.Equal(t, tt.text, p.Text, "original text must be preserved")
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.unit, p.Unit)
			assert.Equal(t, tt.prep, p.Preparation)
			assert.Equal(t, tt.notes, p.Notes)

			if tt.quantity == nil {
				assert.Nil(t, p.Quantity)
			} else {
				require.NotNil(t, p.Quantity)
				assert.InDelta(t, *tt.quantity, *p.Quantity, 1e-9)
			}
		})
	}
}

func TestParseLineNeverPanicsOnGarbage(t *testing.T) {
	for _, text := range []string{
		"!!!", "((((", "1/0 cups chaos", ", , ,", "½", "2",
		"to taste", "   leading space   ", "😀 2 cups rice",
	} {
		assert.NotPanics(t, func() {
			ParseLine(uuid.Nil, text)
		}, "input %q", text)
	}
}
