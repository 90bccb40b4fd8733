// Package shoppinglist turns parsed ingredient lines from one or more
// recipes into a deduplicated, categorized shopping list. Aggregation is a
// pure function of its input: no I/O, no shared state, deterministic output.
package shoppinglist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mealcart/engine/internal/domain/ingredient"
)

// SourceLine records where an aggregated item came from.
type SourceLine struct {
	RecipeID uuid.UUID
	Text     string
	Parsed   ingredient.Parsed
}

// Component is one slice of a per-variant breakdown (bell pepper colors).
type Component struct {
	Label    string
	Quantity float64
	Unit     ingredient.Unit
}

// AggregatedItem is one entry on the final shopping list. Total is nil when
// the contributing lines had no parseable quantity or incompatible units; in
// the incompatible case Notes carries a human-readable breakdown instead.
type AggregatedItem struct {
	DisplayName  string
	CanonicalKey string
	Total        *float64
	Unit         ingredient.Unit
	Components   []Component
	SourceLines  []SourceLine
	Notes        string
}

// canonicalGroup collects the lines sharing one canonical key.
type canonicalGroup struct {
	normalized ingredient.Normalized
	items      []ingredient.Parsed
}

// Aggregate merges ingredient lines into consolidated shopping items. Lines
// without a resolvable name are dropped. Output is sorted by display name so
// the same multiset of lines always yields the same list.
func Aggregate(lines []ingredient.Line) []AggregatedItem {
	groups := make(map[string]*canonicalGroup)
	order := make([]string, 0, len(lines))

	for _, line := range lines {
		parsed := ensureParsed(line)
		if parsed.Name == "" {
			continue
		}
		norm := ingredient.NormalizeName(parsed.Name)
		if norm.Key == "" {
			continue
		}
		parsed.Group = norm.Key

		g, ok := groups[norm.Key]
		if !ok {
			g = &canonicalGroup{normalized: norm}
			groups[norm.Key] = g
			order = append(order, norm.Key)
		}
		// The first bell-pepper mention may carry no color; keep per-item
		// normalization so each line's own color survives grouping.
		g.items = append(g.items, parsed)
	}

	items := make([]AggregatedItem, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		if g.normalized.Attrs.IsBellPepper {
			items = append(items, aggregateBellPeppers(g))
		} else {
			items = append(items, aggregateStandard(g))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].DisplayName) < strings.ToLower(items[j].DisplayName)
	})
	return items
}

// ensureParsed parses the raw text only when the caller has not already
// supplied structure.
func ensureParsed(line ingredient.Line) ingredient.Parsed {
	if line.Name != "" {
		return ingredient.Parsed{Line: line}
	}
	return ingredient.ParseLine(line.RecipeID, line.Text)
}

// aggregateStandard sums a group when all units share a conversion group.
// The first item's unit is the target unit; later items convert into it.
// Incompatible units produce a nil total and a "Mixed:" note instead.
func aggregateStandard(g *canonicalGroup) AggregatedItem {
	item := AggregatedItem{
		DisplayName:  g.normalized.Display,
		CanonicalKey: g.normalized.Key,
	}

	targetUnit := ingredient.Unit("")
	compatible := true
	var total float64
	hasQty := false

	for _, p := range g.items {
		item.SourceLines = append(item.SourceLines, SourceLine{
			RecipeID: p.RecipeID,
			Text:     p.Text,
			Parsed:   p,
		})
		if p.Quantity == nil {
			continue
		}
		if !hasQty {
			targetUnit = p.Unit
			total = *p.Quantity
			hasQty = true
			continue
		}
		if p.Unit == targetUnit {
			total += *p.Quantity
			continue
		}
		converted, ok := ingredient.ConvertUnit(*p.Quantity, p.Unit, targetUnit)
		if !ok {
			compatible = false
			continue
		}
		total += converted
	}

	if hasQty && compatible {
		item.Total = &total
		item.Unit = targetUnit
	} else if hasQty {
		item.Notes = mixedUnitsNote(g.items)
	}
	return item
}

// mixedUnitsNote renders each line's original quantity and unit when the
// group cannot be summed.
func mixedUnitsNote(items []ingredient.Parsed) string {
	parts := make([]string, 0, len(items))
	for _, p := range items {
		if p.Quantity == nil {
			continue
		}
		parts = append(parts, formatQuantity(*p.Quantity, p.Unit))
	}
	return "Mixed: " + strings.Join(parts, " + ")
}

// bellPepperColors fixes the presentation order of color buckets.
var bellPepperColors = []string{"red", "green", "yellow", "orange", "any color"}

// aggregateBellPeppers buckets a bell-pepper group by color. Lines without a
// stated color land in the "any color" bucket. A breakdown note is attached
// whenever more than one bucket exists, or a single explicit color was given.
// Unitless lines count whole peppers; a line measured in an incompatible
// unit (say a cup of diced pepper) keeps the group from summing, the same
// way the standard path handles it.
func aggregateBellPeppers(g *canonicalGroup) AggregatedItem {
	item := AggregatedItem{
		DisplayName:  g.normalized.Display,
		CanonicalKey: g.normalized.Key,
	}

	buckets := make(map[string]float64)
	bucketUnits := make(map[string]ingredient.Unit)
	targetUnit := ingredient.Unit("")
	var total float64
	hasQty := false
	summable := true
	explicitColor := false

	for _, p := range g.items {
		item.SourceLines = append(item.SourceLines, SourceLine{
			RecipeID: p.RecipeID,
			Text:     p.Text,
			Parsed:   p,
		})

		norm := ingredient.NormalizeName(p.Name)
		color := norm.Attrs.Color
		if color == "" {
			color = "any color"
		} else {
			explicitColor = true
		}

		if p.Quantity == nil {
			if _, seen := buckets[color]; !seen {
				buckets[color] = 0
				bucketUnits[color] = ""
			}
			continue
		}

		qty := *p.Quantity
		unit := p.Unit
		if unit == "" {
			unit = ingredient.UnitPiece
		}
		if !hasQty {
			targetUnit = unit
		} else if unit != targetUnit {
			converted, ok := ingredient.ConvertUnit(qty, unit, targetUnit)
			if !ok {
				summable = false
			} else {
				qty = converted
			}
		}

		buckets[color] += qty
		if _, seen := bucketUnits[color]; !seen {
			bucketUnits[color] = p.Unit
		}
		total += qty
		hasQty = true
	}

	if hasQty && !summable {
		item.Notes = mixedUnitsNote(g.items)
		return item
	}
	if hasQty {
		item.Total = &total
		item.Unit = targetUnit
	}

	for _, color := range bellPepperColors {
		qty, ok := buckets[color]
		if !ok {
			continue
		}
		item.Components = append(item.Components, Component{
			Label:    color,
			Quantity: qty,
			Unit:     bucketUnits[color],
		})
	}

	if len(item.Components) > 1 || explicitColor {
		parts := make([]string, 0, len(item.Components))
		for _, c := range item.Components {
			parts = append(parts, fmt.Sprintf("%s %s", trimFloat(c.Quantity), c.Label))
		}
		item.Notes = "Breakdown: " + strings.Join(parts, ", ")
	}
	return item
}

// formatQuantity renders "2 tbsp" or a bare "2" when there is no unit.
func formatQuantity(qty float64, unit ingredient.Unit) string {
	if unit == "" {
		return trimFloat(qty)
	}
	return trimFloat(qty) + " " + string(unit)
}

// trimFloat drops trailing zeros so 3.0 prints as "3" and 2.5 as "2.5".
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
