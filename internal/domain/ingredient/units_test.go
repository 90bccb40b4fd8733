package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		input string
		want  Unit
		ok    bool
	}{
		{"tsp", UnitTeaspoon, true},
		{"Teaspoons", UnitTeaspoon, true},
		{"TBSP", UnitTablespoon, true},
		{"tbsp.", UnitTablespoon, true},
		{"tablespoons", UnitTablespoon, true},
		{"fl oz", UnitFluidOunce, true},
		{"fluid ounces", UnitFluidOunce, true},
		{"cup", UnitCup, true},
		{"cups", UnitCup, true},
		{"pints", UnitPint, true},
		{"qt", UnitQuart, true},
		{"gal", UnitGallon, true},
		{"ml", UnitMilliliter, true},
		{"litres", UnitLiter, true},
		{"g", UnitGram, true},
		{"grams", UnitGram, true},
		{"kg", UnitKilogram, true},
		{"oz", UnitOunce, true},
		{"lbs", UnitPound, true},
		{"pounds", UnitPound, true},
		{"cloves", UnitClove, true},
		{"bunches", UnitBunch, true},
		{"pinches", UnitPinch, true},
		{"pkg", UnitPackage, true},
		{"", "", false},
		{"flour", "", false},
		{"fresh", "", false},
		{"chopped", "", false},
		{"large", "", false},
		{"boneless", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeUnit(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompatibleUnits(t *testing.T) {
	tests := []struct {
		name string
		a, b Unit
		want bool
	}{
		{"tsp and tbsp share the small volume group", UnitTeaspoon, UnitTablespoon, true},
		{"tbsp and fl oz share the small volume group", UnitTablespoon, UnitFluidOunce, true},
		{"cup and quart share the large volume group", UnitCup, UnitQuart, true},
		{"ml and l share the metric volume group", UnitMilliliter, UnitLiter, true},
		{"g and kg share the metric weight group", UnitGram, UnitKilogram, true},
		{"oz and lb share the imperial weight group", UnitOunce, UnitPound, true},
		{"same count unit is compatible with itself", UnitClove, UnitClove, true},
		{"tbsp and cup are separate volume groups", UnitTablespoon, UnitCup, false},
		{"cup and ml are separate volume groups", UnitCup, UnitMilliliter, false},
		{"cup and g never sum", UnitCup, UnitGram, false},
		{"g and oz cross measurement systems", UnitGram, UnitOunce, false},
		{"distinct count units never sum", UnitCan, UnitJar, false},
		{"unknown unit is incompatible", Unit("blob"), UnitCup, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompatibleUnits(tt.a, tt.b))
		})
	}
}

func TestConvertUnit(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		from, to Unit
		want     float64
		ok       bool
	}{
		{"tbsp to tsp", 3, UnitTablespoon, UnitTeaspoon, 9, true},
		{"tsp to tbsp", 6, UnitTeaspoon, UnitTablespoon, 2, true},
		{"fl oz to tsp", 1, UnitFluidOunce, UnitTeaspoon, 6, true},
		{"quart to cup", 2, UnitQuart, UnitCup, 8, true},
		{"cup to gallon", 2, UnitCup, UnitGallon, 0.125, true},
		{"liter to ml", 1.5, UnitLiter, UnitMilliliter, 1500, true},
		{"kg to g", 0.25, UnitKilogram, UnitGram, 250, true},
		{"lb to oz", 1, UnitPound, UnitOunce, 16, true},
		{"same unit is identity", 4, UnitCup, UnitCup, 4, true},
		{"cup to tsp fails", 1, UnitCup, UnitTeaspoon, 0, false},
		{"cup to g fails", 1, UnitCup, UnitGram, 0, false},
		{"can to jar fails", 1, UnitCan, UnitJar, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertUnit(tt.qty, tt.from, tt.to)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
