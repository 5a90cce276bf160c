package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
)

func TestManualAdjustmentDepletesLotAndWritesAudit(t *testing.T) {
	f := newFixture(t)
	seedFlour(t, f)
	uc := inventory.NewAdjustmentUseCase(f.runner, "baker")

	res, err := uc.ManualAdjustment(context.Background(), "lot-b", decimal.NewFromInt(30),
		entity.DepletionReasonSpoilage, "water damage")
	require.NoError(t, err)

	assert.True(t, res.QuantityDepleted.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, entity.DepletionReasonSpoilage, res.DepletionReason)
	assert.True(t, res.Cost.Equal(decimal.RequireFromString("0.30")), "got %s", res.Cost)
	assert.Equal(t, "baker", res.CreatedBy)
	assert.False(t, res.DepletionDate.IsZero())

	// Decrement and audit record landed together.
	assert.True(t, f.lotQuantity(t, "lot-b").Equal(decimal.NewFromInt(70)))
	records, err := f.repos.Depletions.ListByLot("lot-b", 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.DepletionReasonSpoilage, records[0].Reason)
	assert.Equal(t, "water damage", records[0].Notes)
	assert.Equal(t, "g", records[0].Unit)
}

func TestManualAdjustmentOtherRequiresNotes(t *testing.T) {
	f := newFixture(t)
	seedFlour(t, f)
	uc := inventory.NewAdjustmentUseCase(f.runner, "baker")

	_, err := uc.ManualAdjustment(context.Background(), "lot-a", decimal.NewFromInt(1),
		entity.DepletionReasonOther, "")
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "notes", vErr.Field)

	// With notes the same request goes through.
	_, err = uc.ManualAdjustment(context.Background(), "lot-a", decimal.NewFromInt(1),
		entity.DepletionReasonOther, "lent to neighbor")
	assert.NoError(t, err)
}

func TestManualAdjustmentRejectsUnknownReason(t *testing.T) {
	f := newFixture(t)
	seedFlour(t, f)
	uc := inventory.NewAdjustmentUseCase(f.runner, "baker")

	_, err := uc.ManualAdjustment(context.Background(), "lot-a", decimal.NewFromInt(1),
		"EVAPORATED", "")
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "reason", vErr.Field)
}

func TestManualAdjustmentCannotExceedOnHand(t *testing.T) {
	f := newFixture(t)
	seedFlour(t, f)
	uc := inventory.NewAdjustmentUseCase(f.runner, "baker")

	_, err := uc.ManualAdjustment(context.Background(), "lot-a", decimal.NewFromInt(101),
		entity.DepletionReasonGift, "")
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))

	// Nothing changed, nothing was recorded.
	assert.True(t, f.lotQuantity(t, "lot-a").Equal(decimal.NewFromInt(100)))
	records, err := f.repos.Depletions.ListByLot("lot-a", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestManualAdjustmentUnknownLot(t *testing.T) {
	f := newFixture(t)
	seedFlour(t, f)
	uc := inventory.NewAdjustmentUseCase(f.runner, "baker")

	_, err := uc.ManualAdjustment(context.Background(), "lot-nope", decimal.NewFromInt(1),
		entity.DepletionReasonCorrection, "")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestReceiveStockCreatesPurchaseAndLot(t *testing.T) {
	f := newFixture(t)
	seedFlour(t, f)
	uc := inventory.NewReceiveUseCase(f.runner)

	purchased := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	lot, err := uc.ReceiveStock(context.Background(), inventory.ReceiveStockInput{
		VariantID:    "var-g",
		Quantity:     decimal.NewFromInt(500),
		UnitPrice:    decimal.RequireFromString("0.02"),
		PurchaseDate: purchased,
		Supplier:     "mill direct",
	})
	require.NoError(t, err)
	require.NotNil(t, lot)

	assert.True(t, lot.Quantity.Equal(decimal.NewFromInt(500)))
	require.NotNil(t, lot.AcquisitionDate)
	assert.True(t, lot.AcquisitionDate.Equal(purchased))

	// The receipt's purchase is now the variant's market price.
	latest, err := f.repos.Purchases.LatestByVariant("var-g")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, latest.UnitPrice.Equal(decimal.RequireFromString("0.02")))

	stored, err := f.repos.Lots.GetByID(lot.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestReceiveStockValidation(t *testing.T) {
	f := newFixture(t)
	seedFlour(t, f)
	uc := inventory.NewReceiveUseCase(f.runner)

	_, err := uc.ReceiveStock(context.Background(), inventory.ReceiveStockInput{
		VariantID: "var-g", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1),
	})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))

	_, err = uc.ReceiveStock(context.Background(), inventory.ReceiveStockInput{
		VariantID: "var-nope", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
}
