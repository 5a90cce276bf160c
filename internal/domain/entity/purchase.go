package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is an immutable acquisition record for a Variant. The most recent
// purchase of a variant is the source of truth for its current market price;
// UnitPrice is the price of one purchase unit (not one package).
type Purchase struct {
	ID           string
	VariantID    string
	Quantity     decimal.Decimal // purchase units acquired
	UnitPrice    decimal.Decimal // per purchase unit
	PurchaseDate time.Time
	Supplier     string
	CreatedAt    time.Time
}
