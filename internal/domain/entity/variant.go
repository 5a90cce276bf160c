package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a specific purchasable form of an Ingredient (brand + package
// size + supplier). IngredientID is a one-directional FK; the variant does
// not own its parent. At most one variant per ingredient is conventionally
// flagged Preferred; the engine consumes the flag but does not enforce
// uniqueness.
type Variant struct {
	ID               string
	IngredientID     string
	Brand            string
	PackageSize      string
	Supplier         string
	PurchaseUnit     string          // native unit lots of this variant are counted in
	PurchaseQuantity decimal.Decimal // purchase units per package
	Preferred        bool
	CreatedAt        time.Time
}
