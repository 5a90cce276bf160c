package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRun records one batch production of a recipe: how many batches,
// what they yielded and what the consumed ingredients cost.
type ProductionRun struct {
	ID                  string
	RecipeID            string
	FinishedUnitID      string
	NumBatches          int
	ExpectedYield       decimal.Decimal
	ActualYield         decimal.Decimal
	TotalIngredientCost decimal.Decimal
	PerUnitCost         decimal.Decimal
	ProducedAt          time.Time
	CreatedBy           string
}

// ConsumptionRecord is one ledger line of a production run: total quantity
// and total cost consumed for one ingredient. Coarser than the per-lot
// breakdown the FIFO engine returns, which is not persisted.
type ConsumptionRecord struct {
	ID              string
	ProductionRunID string
	IngredientSlug  string
	Quantity        decimal.Decimal
	Unit            string
	TotalCost       decimal.Decimal
	CreatedAt       time.Time
}
