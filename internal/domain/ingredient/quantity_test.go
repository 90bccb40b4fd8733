package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain integer", "2", 2, true},
		{"plain decimal", "1.5", 1.5, true},
		{"simple fraction", "3/4", 0.75, true},
		{"simple fraction with spaces", "1 / 2", 0.5, true},
		{"mixed number", "1 1/2", 1.5, true},
		{"mixed number wide spacing", "2  3/4", 2.75, true},
		{"vulgar fraction", "½", 0.5, true},
		{"vulgar fraction quarter", "¼", 0.25, true},
		{"vulgar fraction third", "⅓", 1.0 / 3, true},
		{"attached vulgar fraction", "1½", 1.5, true},
		{"spaced vulgar fraction", "1 ½", 1.5, true},
		{"hyphen range", "2-3", 2.5, true},
		{"en dash range", "2–3", 2.5, true},
		{"worded range", "2 to 3", 2.5, true},
		{"or range", "1 or 2", 1.5, true},
		{"fraction range", "1/2 to 3/4", 0.625, true},
		{"a few", "a few", 3, true},
		{"a couple", "a couple", 2, true},
		{"several", "several", 4, true},
		{"a pinch", "a pinch", 0.125, true},
		{"a dash", "a dash", 0.125, true},
		{"a handful", "a handful", 0.5, true},
		{"heaping", "heaping", 1.25, true},
		{"scant", "scant", 0.875, true},
		{"mixed case vague phrase", "A Few", 3, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"word", "some", 0, false},
		{"zero denominator", "1/0", 0, false},
		{"trailing garbage after fraction", "½ish", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantity(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseQuantityRangeTakesMidpoint(t *testing.T) {
	got, ok := ParseQuantity("4-6")
	assert.True(t, ok)
	assert.Equal(t, 5.0, got)
}
