package shoppinglist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mealcart/engine/internal/domain/ingredient"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AggregateTestSuite exercises the merge behavior across recipes.
type AggregateTestSuite struct {
	suite.Suite
	recipeA uuid.UUID
	recipeB uuid.UUID
}

func (s *AggregateTestSuite) SetupTest() {
	s.recipeA = uuid.New()
	s.recipeB = uuid.New()
}

func (s *AggregateTestSuite) lines(recipeID uuid.UUID, texts ...string) []ingredient.Line {
	out := make([]ingredient.Line, len(texts))
	for i, t := range texts {
		out[i] = ingredient.Line{RecipeID: recipeID, Text: t}
	}
	return out
}

func (s *AggregateTestSuite) findItem(items []AggregatedItem, key string) *AggregatedItem {
	for i := range items {
		if items[i].CanonicalKey == key {
			return &items[i]
		}
	}
	return nil
}

func (s *AggregateTestSuite) TestSameUnitLinesSum() {
	lines := append(
		s.lines(s.recipeA, "2 cups flour"),
		s.lines(s.recipeB, "3 cups flour")...,
	)

	items := Aggregate(lines)
	s.Require().Len(items, 1)

	item := items[0]
	s.Equal("flour", item.CanonicalKey)
	s.Equal("Flour", item.DisplayName)
	s.Require().NotNil(item.Total)
	s.InDelta(5, *item.Total, 1e-9)
	s.Equal(ingredient.UnitCup, item.Unit)
	s.Len(item.SourceLines, 2)
	s.Empty(item.Notes)
}

func (s *AggregateTestSuite) TestConvertibleUnitsSumIntoFirstUnit() {
	lines := append(
		s.lines(s.recipeA, "1 tbsp soy sauce"),
		s.lines(s.recipeB, "2 tsp soy sauce")...,
	)

	items := Aggregate(lines)
	s.Require().Len(items, 1)

	item := items[0]
	s.Require().NotNil(item.Total)
	s.InDelta(1+2.0/3, *item.Total, 1e-9)
	s.Equal(ingredient.UnitTablespoon, item.Unit, "first encountered unit wins")
}

func (s *AggregateTestSuite) TestIncompatibleUnitsKeepMixedNote() {
	lines := append(
		s.lines(s.recipeA, "1 cup sugar"),
		s.lines(s.recipeB, "100 g sugar")...,
	)

	items := Aggregate(lines)
	s.Require().Len(items, 1)

	item := items[0]
	s.Nil(item.Total)
	s.Equal("Mixed: 1 cup + 100 g", item.Notes)
	s.Len(item.SourceLines, 2)
}

func (s *AggregateTestSuite) TestQuantitylessLinesStillMerge() {
	lines := append(
		s.lines(s.recipeA, "butter"),
		s.lines(s.recipeB, "2 tbsp butter")...,
	)

	items := Aggregate(lines)
	s.Require().Len(items, 1)

	item := items[0]
	s.Equal("butter", item.CanonicalKey)
	s.Require().NotNil(item.Total)
	s.InDelta(2, *item.Total, 1e-9)
	s.Equal(ingredient.UnitTablespoon, item.Unit)
	s.Len(item.SourceLines, 2)
}

func (s *AggregateTestSuite) TestAllQuantitylessGroupHasNilTotal() {
	lines := append(
		s.lines(s.recipeA, "salt to taste"),
		s.lines(s.recipeB, "salt as needed")...,
	)

	items := Aggregate(lines)
	s.Require().Len(items, 1)
	s.Equal("salt", items[0].CanonicalKey)
	s.Nil(items[0].Total)
	s.Empty(items[0].Notes)
}

func (s *AggregateTestSuite) TestVariantSpellingsCollapse() {
	lines := append(
		s.lines(s.recipeA, "2 cups all-purpose flour"),
		s.lines(s.recipeB, "1 cup plain flour")...,
	)

	items := Aggregate(lines)
	s.Require().Len(items, 1)
	s.Equal("flour", items[0].CanonicalKey)
	s.Require().NotNil(items[0].Total)
	s.InDelta(3, *items[0].Total, 1e-9)
}

func (s *AggregateTestSuite) TestUnresolvableLinesDropped() {
	lines := append(
		s.lines(s.recipeA, "", "   ", ", , ,"),
		s.lines(s.recipeB, "1 cup rice")...,
	)

	items := Aggregate(lines)
	s.Require().Len(items, 1)
	s.Equal("rice", items[0].CanonicalKey)
}

func (s *AggregateTestSuite) TestCompoundLine() {
	items := Aggregate(s.lines(s.recipeA, "salt and pepper to taste"))
	s.Require().Len(items, 1)
	s.Equal("salt & pepper", items[0].CanonicalKey)
	s.Equal("Salt & pepper", items[0].DisplayName)
	s.Nil(items[0].Total)
}

func (s *AggregateTestSuite) TestPreStructuredLinesSkipParsing() {
	two := 2.0
	lines := []ingredient.Line{
		{RecipeID: s.recipeA, Text: "2 cups flour", Quantity: &two, Unit: ingredient.UnitCup, Name: "flour"},
	}
	lines = append(lines, s.lines(s.recipeB, "1 cup flour")...)

	items := Aggregate(lines)
	s.Require().Len(items, 1)
	s.Require().NotNil(items[0].Total)
	s.InDelta(3, *items[0].Total, 1e-9)
}

func (s *AggregateTestSuite) TestOutputSortedByDisplayName() {
	lines := s.lines(s.recipeA,
		"1 cup rice",
		"2 tbsp butter",
		"3 carrots",
	)

	items := Aggregate(lines)
	s.Require().Len(items, 3)
	s.Equal("Butter", items[0].DisplayName)
	s.Equal("Carrots", items[1].DisplayName)
	s.Equal("Rice", items[2].DisplayName)
}

func (s *AggregateTestSuite) TestOrderIndependentTotals() {
	forward := append(
		s.lines(s.recipeA, "2 cups flour", "1 cup sugar", "2 carrots"),
		s.lines(s.recipeB, "3 cups flour", "1 carrot")...,
	)
	backward := make([]ingredient.Line, len(forward))
	for i, line := range forward {
		backward[len(forward)-1-i] = line
	}

	a := Aggregate(forward)
	b := Aggregate(backward)
	s.Require().Equal(len(a), len(b))
	for i := range a {
		s.Equal(a[i].CanonicalKey, b[i].CanonicalKey)
		s.Equal(a[i].DisplayName, b[i].DisplayName)
		s.Equal(a[i].Unit, b[i].Unit)
		if s.NotNil(a[i].Total) && s.NotNil(b[i].Total) {
			s.InDelta(*a[i].Total, *b[i].Total, 1e-9)
		}
	}
}

func TestAggregateTestSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

// BellPepperTestSuite exercises the color-breakdown path.
type BellPepperTestSuite struct {
	suite.Suite
	recipeA uuid.UUID
	recipeB uuid.UUID
}

func (s *BellPepperTestSuite) SetupTest() {
	s.recipeA = uuid.New()
	s.recipeB = uuid.New()
}

func (s *BellPepperTestSuite) aggregate(texts ...string) AggregatedItem {
	lines := make([]ingredient.Line, len(texts))
	for i, t := range texts {
		lines[i] = ingredient.Line{RecipeID: s.recipeA, Text: t}
	}
	items := Aggregate(lines)
	s.Require().Len(items, 1)
	return items[0]
}

func (s *BellPepperTestSuite) TestColorsCollapseWithBreakdown() {
	item := s.aggregate(
		"2 red bell peppers",
		"1 green bell pepper",
		"1 bell pepper",
	)

	s.Equal("bell pepper", item.CanonicalKey)
	s.Equal("Bell peppers", item.DisplayName)
	s.Require().NotNil(item.Total)
	s.InDelta(4, *item.Total, 1e-9)
	s.Equal(ingredient.UnitPiece, item.Unit)

	require.Len(s.T(), item.Components, 3)
	s.Equal(Component{Label: "red", Quantity: 2}, item.Components[0])
	s.Equal(Component{Label: "green", Quantity: 1}, item.Components[1])
	s.Equal(Component{Label: "any color", Quantity: 1}, item.Components[2])

	s.Equal("Breakdown: 2 red, 1 green, 1 any color", item.Notes)
}

func (s *BellPepperTestSuite) TestSameColorSums() {
	item := s.aggregate("1 red bell pepper", "2 red bell peppers")

	s.Require().NotNil(item.Total)
	s.InDelta(3, *item.Total, 1e-9)
	s.Require().Len(item.Components, 1)
	s.Equal("red", item.Components[0].Label)
	s.InDelta(3, item.Components[0].Quantity, 1e-9)
	s.Equal("Breakdown: 3 red", item.Notes)
}

func (s *BellPepperTestSuite) TestColorlessOnlySkipsBreakdown() {
	item := s.aggregate("2 bell peppers", "1 bell pepper")

	s.Require().NotNil(item.Total)
	s.InDelta(3, *item.Total, 1e-9)
	s.Len(item.Components, 1)
	s.Empty(item.Notes, "no breakdown when no line named a color")
}

func (s *BellPepperTestSuite) TestColorWordsWithoutBell() {
	item := s.aggregate("1 green pepper", "1 red pepper")

	s.Equal("bell pepper", item.CanonicalKey)
	s.Require().NotNil(item.Total)
	s.InDelta(2, *item.Total, 1e-9)
	s.Require().Len(item.Components, 2)
	s.Equal("red", item.Components[0].Label)
	s.Equal("green", item.Components[1].Label)
}

func (s *BellPepperTestSuite) TestVolumeAndCountLinesDoNotSum() {
	item := s.aggregate(
		"1 cup diced red bell pepper",
		"2 green bell peppers",
	)

	s.Equal("bell pepper", item.CanonicalKey)
	s.Nil(item.Total, "a cup of diced pepper cannot be added to whole peppers")
	s.Equal(ingredient.Unit(""), item.Unit)
	s.Equal("Mixed: 1 cup + 2", item.Notes)
}

func (s *BellPepperTestSuite) TestVolumeOnlyLinesSumInTheirOwnUnit() {
	item := s.aggregate(
		"1 cup diced red bell pepper",
		"1 cup diced green bell pepper",
	)

	s.Require().NotNil(item.Total)
	s.InDelta(2, *item.Total, 1e-9)
	s.Equal(ingredient.UnitCup, item.Unit)
}

func (s *BellPepperTestSuite) TestBlackPepperStaysSeparate() {
	lines := []ingredient.Line{
		{RecipeID: s.recipeA, Text: "1 red bell pepper"},
		{RecipeID: s.recipeA, Text: "1 tsp black pepper"},
	}

	items := Aggregate(lines)
	s.Require().Len(items, 2)
	keys := []string{items[0].CanonicalKey, items[1].CanonicalKey}
	s.Contains(keys, "bell pepper")
	s.Contains(keys, "black pepper")
}

func TestBellPepperTestSuite(t *testing.T) {
	suite.Run(t, new(BellPepperTestSuite))
}
