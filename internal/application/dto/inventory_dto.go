package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumeRequest body for POST /api/inventory/consume.
type ConsumeRequest struct {
	IngredientSlug string          `json:"ingredient_slug"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
	DryRun         bool            `json:"dry_run"`
}

// ConsumptionBreakdownItem describes how much one FIFO consumption drew from
// one specific lot. Quantities are in the ingredient's recipe unit.
type ConsumptionBreakdownItem struct {
	LotID            string          `json:"lot_id"`
	VariantID        string          `json:"variant_id"`
	LotDate          *time.Time      `json:"lot_date"`
	QuantityConsumed decimal.Decimal `json:"quantity_consumed"`
	Unit             string          `json:"unit"`
	RemainingInLot   decimal.Decimal `json:"remaining_in_lot"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// ConsumptionResult is the outcome of one FIFO consumption.
// Invariant: Consumed + Shortfall == the requested quantity, exactly.
type ConsumptionResult struct {
	Consumed  decimal.Decimal            `json:"consumed"`
	Breakdown []ConsumptionBreakdownItem `json:"breakdown"`
	Shortfall decimal.Decimal            `json:"shortfall"`
	Satisfied bool                       `json:"satisfied"`
	TotalCost decimal.Decimal            `json:"total_cost"`
}

// AdjustmentRequest body for POST /api/inventory/adjustments.
type AdjustmentRequest struct {
	InventoryItemID   string          `json:"inventory_item_id"`
	QuantityToDeplete decimal.Decimal `json:"quantity_to_deplete"`
	Reason            string          `json:"reason"`
	Notes             string          `json:"notes,omitempty"`
}

// DepletionResult echoes the persisted audit record of a manual adjustment.
type DepletionResult struct {
	QuantityDepleted decimal.Decimal `json:"quantity_depleted"`
	DepletionReason  string          `json:"depletion_reason"`
	Cost             decimal.Decimal `json:"cost"`
	DepletionDate    time.Time       `json:"depletion_date"`
	CreatedBy        string          `json:"created_by"`
}

// LotSummary is one open lot in a stock listing. Quantity is in the lot's
// native (purchase) unit; InRecipeUnits is the same amount converted, zero
// when no conversion exists.
type LotSummary struct {
	LotID           string          `json:"lot_id"`
	VariantID       string          `json:"variant_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	InRecipeUnits   decimal.Decimal `json:"in_recipe_units"`
	AcquisitionDate *time.Time      `json:"acquisition_date"`
	ExpirationDate  *time.Time      `json:"expiration_date,omitempty"`
	Location        string          `json:"location,omitempty"`
}

// IngredientStockResult is the on-hand view of one ingredient: its open lots
// in FIFO order and their total in the recipe unit.
type IngredientStockResult struct {
	IngredientSlug string          `json:"ingredient_slug"`
	IngredientName string          `json:"ingredient_name"`
	Unit           string          `json:"unit"`
	OnHand         decimal.Decimal `json:"on_hand"`
	Lots           []LotSummary    `json:"lots"`
}

// DepletionRecord is one line of a lot's manual depletion history.
type DepletionRecord struct {
	LotID            string          `json:"lot_id"`
	QuantityDepleted decimal.Decimal `json:"quantity_depleted"`
	Unit             string          `json:"unit"`
	DepletionReason  string          `json:"depletion_reason"`
	Notes            string          `json:"notes,omitempty"`
	Cost             decimal.Decimal `json:"cost"`
	DepletionDate    time.Time       `json:"depletion_date"`
	CreatedBy        string          `json:"created_by"`
}

// ReceiveStockRequest body for POST /api/inventory/receipts.
type ReceiveStockRequest struct {
	VariantID      string          `json:"variant_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	Supplier       string          `json:"supplier,omitempty"`
	Location       string          `json:"location,omitempty"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
}

// ReceiveStockResult echoes the lot a stock receipt created.
type ReceiveStockResult struct {
	LotID           string          `json:"lot_id"`
	VariantID       string          `json:"variant_id"`
	PurchaseID      string          `json:"purchase_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	AcquisitionDate *time.Time      `json:"acquisition_date"`
	ExpirationDate  *time.Time      `json:"expiration_date,omitempty"`
	Location        string          `json:"location,omitempty"`
}
