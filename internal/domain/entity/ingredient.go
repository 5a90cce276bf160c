package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Density holds the per-ingredient volume/weight equivalence used to bridge
// unit classes (e.g. 1 cup of flour weighs 120 g). Fields are all-or-nothing:
// either both sides are set or the ingredient has no density data.
type Density struct {
	VolumeAmount decimal.Decimal
	VolumeUnit   string
	WeightAmount decimal.Decimal
	WeightUnit   string
}

// Ingredient is the canonical definition of a consumable ("All-Purpose
// Flour"). Its identity is immutable once recipes or lots reference it.
// RecipeUnit is the unit every recipe line and consumption result is
// expressed in.
type Ingredient struct {
	ID         string
	Slug       string // unique
	Name       string
	Category   string
	RecipeUnit string
	Density    *Density
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasDensity reports whether cross-class unit conversion is possible.
func (i *Ingredient) HasDensity() bool {
	return i.Density != nil &&
		i.Density.VolumeAmount.IsPositive() && i.Density.VolumeUnit != "" &&
		i.Density.WeightAmount.IsPositive() && i.Density.WeightUnit != ""
}
