// Package units converts ingredient quantities between recipe and purchase
// units. Same-class conversions (cup to tablespoon, pound to gram) go through
// a canonical intermediate (milliliters for volume, grams for weight).
// Cross-class conversions go through the ingredient's density equivalence
// and fail fast when the ingredient has none.
package units

import (
	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
)

// Class of a measurement unit.
type Class int

const (
	ClassVolume Class = iota
	ClassWeight
	ClassCount
)

// Factors to the canonical unit of each class (ml for volume, g for weight).
// US customary equivalences per NIST handbook values.
var volumeToMl = map[string]decimal.Decimal{
	"ml":     decimal.NewFromInt(1),
	"l":      decimal.NewFromInt(1000),
	"tsp":    decimal.RequireFromString("4.92892159375"),
	"tbsp":   decimal.RequireFromString("14.78676478125"),
	"floz":   decimal.RequireFromString("29.5735295625"),
	"cup":    decimal.RequireFromString("236.5882365"),
	"pint":   decimal.RequireFromString("473.176473"),
	"quart":  decimal.RequireFromString("946.352946"),
	"gallon": decimal.RequireFromString("3785.411784"),
}

var weightToG = map[string]decimal.Decimal{
	"g":  decimal.NewFromInt(1),
	"kg": decimal.NewFromInt(1000),
	"oz": decimal.RequireFromString("28.349523125"),
	"lb": decimal.RequireFromString("453.59237"),
}

// Count units have no common base; only identity conversion is defined.
var countUnits = map[string]struct{}{
	"each":    {},
	"piece":   {},
	"package": {},
	"dozen":   {},
}

// Lookup resolves a unit to its class and canonical factor. Count units have
// factor 1 within their own name only.
func Lookup(unit string) (Class, decimal.Decimal, bool) {
	if f, ok := volumeToMl[unit]; ok {
		return ClassVolume, f, true
	}
	if f, ok := weightToG[unit]; ok {
		return ClassWeight, f, true
	}
	if _, ok := countUnits[unit]; ok {
		return ClassCount, decimal.NewFromInt(1), true
	}
	return 0, decimal.Decimal{}, false
}

// Known reports whether the resolver recognizes the unit at all.
func Known(unit string) bool {
	_, _, ok := Lookup(unit)
	return ok
}

// Convert converts qty from one unit to another for the given ingredient.
// Same-unit conversion is identity. Cross-class conversion requires the
// ingredient's density data and returns *domain.UnitConversionError when it
// is absent, when either unit is unrecognized, or when the classes cannot be
// bridged (count units never bridge). The error must propagate unchanged:
// defaulting to 1:1 would silently corrupt costing.
func Convert(ing *entity.Ingredient, qty decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return qty, nil
	}

	slug := ""
	if ing != nil {
		slug = ing.Slug
	}

	fromClass, fromFactor, ok := Lookup(from)
	if !ok {
		return decimal.Decimal{}, &domain.UnitConversionError{
			Ingredient: slug, FromUnit: from, ToUnit: to, Reason: "unrecognized source unit",
		}
	}
	toClass, toFactor, ok := Lookup(to)
	if !ok {
		return decimal.Decimal{}, &domain.UnitConversionError{
			Ingredient: slug, FromUnit: from, ToUnit: to, Reason: "unrecognized target unit",
		}
	}

	if fromClass == toClass {
		if fromClass == ClassCount {
			// Distinct count units ("each" vs "dozen") carry no shared base.
			return decimal.Decimal{}, &domain.UnitConversionError{
				Ingredient: slug, FromUnit: from, ToUnit: to, Reason: "count units do not interconvert",
			}
		}
		return qty.Mul(fromFactor).Div(toFactor), nil
	}

	if fromClass == ClassCount || toClass == ClassCount {
		return decimal.Decimal{}, &domain.UnitConversionError{
			Ingredient: slug, FromUnit: from, ToUnit: to, Reason: "count units cannot cross classes",
		}
	}

	gPerMl, err := gramsPerMilliliter(ing, from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if fromClass == ClassVolume {
		// volume -> canonical ml -> g -> target weight unit
		return qty.Mul(fromFactor).Mul(gPerMl).Div(toFactor), nil
	}
	// weight -> canonical g -> ml -> target volume unit
	return qty.Mul(fromFactor).Div(gPerMl).Div(toFactor), nil
}

// gramsPerMilliliter derives the density bridge from the ingredient's
// volume/weight equivalence.
func gramsPerMilliliter(ing *entity.Ingredient, from, to string) (decimal.Decimal, error) {
	slug := ""
	if ing != nil {
		slug = ing.Slug
	}
	if ing == nil || !ing.HasDensity() {
		return decimal.Decimal{}, &domain.UnitConversionError{
			Ingredient: slug, FromUnit: from, ToUnit: to, Reason: "ingredient has no density data",
		}
	}

	volClass, volFactor, ok := Lookup(ing.Density.VolumeUnit)
	if !ok || volClass != ClassVolume {
		return decimal.Decimal{}, &domain.UnitConversionError{
			Ingredient: slug, FromUnit: from, ToUnit: to,
			Reason: "density volume unit is not a volume unit",
		}
	}
	wtClass, wtFactor, ok := Lookup(ing.Density.WeightUnit)
	if !ok || wtClass != ClassWeight {
		return decimal.Decimal{}, &domain.UnitConversionError{
			Ingredient: slug, FromUnit: from, ToUnit: to,
			Reason: "density weight unit is not a weight unit",
		}
	}

	grams := ing.Density.WeightAmount.Mul(wtFactor)
	milliliters := ing.Density.VolumeAmount.Mul(volFactor)
	return grams.Div(milliliters), nil
}
