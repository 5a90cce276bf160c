package dto

import "github.com/shopspring/decimal"

// CanProduceRequest body for POST /api/recipes/:id/can-produce.
type CanProduceRequest struct {
	NumBatches int `json:"num_batches"`
}

// MissingIngredient is one line of a can-produce check that stock cannot
// fully satisfy. Needed and Available are in the ingredient's recipe unit.
type MissingIngredient struct {
	IngredientSlug string          `json:"ingredient_slug"`
	IngredientName string          `json:"ingredient_name"`
	Needed         decimal.Decimal `json:"needed"`
	Available      decimal.Decimal `json:"available"`
	Unit           string          `json:"unit"`
}

// CanProduceResult answers whether stock covers a scaled recipe.
type CanProduceResult struct {
	CanProduce bool                `json:"can_produce"`
	Missing    []MissingIngredient `json:"missing"`
}

// ProduceRequest body for POST /api/recipes/:id/produce.
type ProduceRequest struct {
	FinishedUnitID string `json:"finished_unit_id"`
	NumBatches     int    `json:"num_batches"`
}

// ConsumptionEntry is one ledger line of a production result.
type ConsumptionEntry struct {
	IngredientSlug   string          `json:"ingredient_slug"`
	QuantityConsumed decimal.Decimal `json:"quantity_consumed"`
	Unit             string          `json:"unit"`
	TotalCost        decimal.Decimal `json:"total_cost"`
}

// ProductionResult summarizes a committed batch production run.
type ProductionResult struct {
	ProductionRunID     string             `json:"production_run_id"`
	RecipeID            string             `json:"recipe_id"`
	FinishedUnitID      string             `json:"finished_unit_id"`
	NumBatches          int                `json:"num_batches"`
	ExpectedYield       decimal.Decimal    `json:"expected_yield"`
	ActualYield         decimal.Decimal    `json:"actual_yield"`
	TotalIngredientCost decimal.Decimal    `json:"total_ingredient_cost"`
	PerUnitCost         decimal.Decimal    `json:"per_unit_cost"`
	Consumptions        []ConsumptionEntry `json:"consumptions"`
}

// RecipeCostResponse wraps a costing result.
type RecipeCostResponse struct {
	RecipeID string          `json:"recipe_id"`
	Cost     decimal.Decimal `json:"cost"`
}
