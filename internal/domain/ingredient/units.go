package ingredient

import "strings"

// Unit is a canonical measurement unit token.
type Unit string

// Canonical unit tokens. Count-style units (can, clove, ...) each form their
// own conversion group and are never interconvertible.
const (
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitFluidOunce Unit = "fl oz"
	UnitCup        Unit = "cup"
	UnitPint       Unit = "pint"
	UnitQuart      Unit = "quart"
	UnitGallon     Unit = "gallon"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitOunce      Unit = "oz"
	UnitPound      Unit = "lb"
	UnitPiece      Unit = "piece"
	UnitCan        Unit = "can"
	UnitJar        Unit = "jar"
	UnitBottle     Unit = "bottle"
	UnitPackage    Unit = "package"
	UnitClove      Unit = "clove"
	UnitSlice      Unit = "slice"
	UnitStick      Unit = "stick"
	UnitBunch      Unit = "bunch"
	UnitHead       Unit = "head"
	UnitSprig      Unit = "sprig"
	UnitStalk      Unit = "stalk"
	UnitPinch      Unit = "pinch"
	UnitDash       Unit = "dash"
)

// conversionGroup identifies a set of mutually summable units.
type conversionGroup string

const (
	groupVolumeSmall    conversionGroup = "volume-small"  // base: tsp
	groupVolumeLarge    conversionGroup = "volume-large"  // base: cup
	groupVolumeMetric   conversionGroup = "volume-metric" // base: ml
	groupWeightMetric   conversionGroup = "weight-metric" // base: g
	groupWeightImperial conversionGroup = "weight-imperial" // base: oz
)

type unitInfo struct {
	group  conversionGroup
	toBase float64
}

// countGroup builds the single-member conversion group for a count unit.
func countGroup(u Unit) unitInfo {
	return unitInfo{group: conversionGroup("count-" + string(u)), toBase: 1}
}

var unitTable = map[Unit]unitInfo{
	UnitTeaspoon:   {groupVolumeSmall, 1},
	UnitTablespoon: {groupVolumeSmall, 3},
	UnitFluidOunce: {groupVolumeSmall, 6},

	UnitCup:    {groupVolumeLarge, 1},
	UnitPint:   {groupVolumeLarge, 2},
	UnitQuart:  {groupVolumeLarge, 4},
	UnitGallon: {groupVolumeLarge, 16},

	UnitMilliliter: {groupVolumeMetric, 1},
	UnitLiter:      {groupVolumeMetric, 1000},

	UnitGram:     {groupWeightMetric, 1},
	UnitKilogram: {groupWeightMetric, 1000},

	UnitOunce: {groupWeightImperial, 1},
	UnitPound: {groupWeightImperial, 16},

	UnitPiece:   countGroup(UnitPiece),
	UnitCan:     countGroup(UnitCan),
	UnitJar:     countGroup(UnitJar),
	UnitBottle:  countGroup(UnitBottle),
	UnitPackage: countGroup(UnitPackage),
	UnitClove:   countGroup(UnitClove),
	UnitSlice:   countGroup(UnitSlice),
	UnitStick:   countGroup(UnitStick),
	UnitBunch:   countGroup(UnitBunch),
	UnitHead:    countGroup(UnitHead),
	UnitSprig:   countGroup(UnitSprig),
	UnitStalk:   countGroup(UnitStalk),
	UnitPinch:   countGroup(UnitPinch),
	UnitDash:    countGroup(UnitDash),
}

// unitAliases maps lowercase spelling variants to canonical tokens.
var unitAliases = map[string]Unit{
	"tsp": UnitTeaspoon, "tsps": UnitTeaspoon, "tsp.": UnitTeaspoon,
	"teaspoon": UnitTeaspoon, "teaspoons": UnitTeaspoon,

	"tbsp": UnitTablespoon, "tbsps": UnitTablespoon, "tbsp.": UnitTablespoon,
	"tbs": UnitTablespoon, "tbl": UnitTablespoon,
	"tablespoon": UnitTablespoon, "tablespoons": UnitTablespoon,

	"fl oz": UnitFluidOunce, "fl. oz.": UnitFluidOunce, "floz": UnitFluidOunce,
	"fluid ounce": UnitFluidOunce, "fluid ounces": UnitFluidOunce,

	"cup": UnitCup, "cups": UnitCup, "c.": UnitCup,

	"pint": UnitPint, "pints": UnitPint, "pt": UnitPint, "pt.": UnitPint,
	"quart": UnitQuart, "quarts": UnitQuart, "qt": UnitQuart, "qt.": UnitQuart,
	"gallon": UnitGallon, "gallons": UnitGallon, "gal": UnitGallon,

	"ml": UnitMilliliter, "ml.": UnitMilliliter,
	"milliliter": UnitMilliliter, "milliliters": UnitMilliliter,
	"millilitre": UnitMilliliter, "millilitres": UnitMilliliter,

	"l": UnitLiter, "liter": UnitLiter, "liters": UnitLiter,
	"litre": UnitLiter, "litres": UnitLiter,

	"g": UnitGram, "g.": UnitGram, "gr": UnitGram,
	"gram": UnitGram, "grams": UnitGram,

	"kg": UnitKilogram, "kg.": UnitKilogram,
	"kilogram": UnitKilogram, "kilograms": UnitKilogram,

	"oz": UnitOunce, "oz.": UnitOunce, "ounce": UnitOunce, "ounces": UnitOunce,

	"lb": UnitPound, "lbs": UnitPound, "lb.": UnitPound, "lbs.": UnitPound,
	"pound": UnitPound, "pounds": UnitPound,

	"piece": UnitPiece, "pieces": UnitPiece, "pc": UnitPiece, "pcs": UnitPiece,

	"can": UnitCan, "cans": UnitCan,
	"jar": UnitJar, "jars": UnitJar,
	"bottle": UnitBottle, "bottles": UnitBottle,
	"package": UnitPackage, "packages": UnitPackage,
	"pkg": UnitPackage, "pkgs": UnitPackage,

	"clove": UnitClove, "cloves": UnitClove,
	"slice": UnitSlice, "slices": UnitSlice,
	"stick": UnitStick, "sticks": UnitStick,
	"bunch": UnitBunch, "bunches": UnitBunch,
	"head": UnitHead, "heads": UnitHead,
	"sprig": UnitSprig, "sprigs": UnitSprig,
	"stalk": UnitStalk, "stalks": UnitStalk,
	"pinch": UnitPinch, "pinches": UnitPinch,
	"dash": UnitDash, "dashes": UnitDash,
}

// notUnits are descriptive words that must never be treated as units, even
// when they appear in unit position ("2 fresh tomatoes").
var notUnits = map[string]struct{}{
	"fresh": {}, "chopped": {}, "diced": {}, "minced": {}, "sliced": {},
	"grated": {}, "shredded": {}, "melted": {}, "softened": {},
	"large": {}, "small": {}, "medium": {}, "whole": {}, "ground": {},
	"dried": {}, "frozen": {}, "ripe": {}, "raw": {}, "cooked": {},
	"room": {}, "temperature": {}, "boneless": {}, "skinless": {},
	"finely": {}, "coarsely": {}, "divided": {}, "packed": {},
	"optional": {}, "plus": {}, "extra": {},
}

// NormalizeUnit resolves a raw unit word to its canonical token. Returns
// false for unknown words and for descriptive words on the denylist.
func NormalizeUnit(raw string) (Unit, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	if _, banned := notUnits[s]; banned {
		return "", false
	}
	u, ok := unitAliases[s]
	return u, ok
}

// CompatibleUnits reports whether two canonical units belong to the same
// conversion group and can therefore be summed.
func CompatibleUnits(a, b Unit) bool {
	ia, okA := unitTable[a]
	ib, okB := unitTable[b]
	return okA && okB && ia.group == ib.group
}

// ConvertUnit converts a quantity between two compatible units. The second
// return value is false when the units are not in the same group.
func ConvertUnit(qty float64, from, to Unit) (float64, bool) {
	ia, okA := unitTable[from]
	ib, okB := unitTable[to]
	if !okA || !okB || ia.group != ib.group {
		return 0, false
	}
	return qty * ia.toBase / ib.toBase, true
}
