package production_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/production"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/infrastructure/memory"
	"github.com/kentonium3/bake-tracker-sub006/pkg/logger"
)

type prodFixture struct {
	repos inventory.TxRepos
	uc    *production.UseCase
}

// newProdFixture seeds flour (200 g on hand at 0.01/g) and sugar (100 g at
// 0.02/g), plus a cookie recipe needing 100 g flour and 50 g sugar per batch
// with an expected yield of 10 cookies.
func newProdFixture(t *testing.T) *prodFixture {
	t.Helper()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	repos := store.Repos()

	consume := inventory.NewConsumeUseCase(runner,
		repos.Ingredients, repos.Variants, repos.Purchases, repos.Lots)
	uc := production.New(runner, consume, repos.Recipes, repos.Ingredients, "baker", logger.Nop())

	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	seed := []struct {
		ingID, slug, varID, lotID string
		price, qty                string
	}{
		{"ing-flour", "flour", "var-f", "lot-f", "0.01", "200"},
		{"ing-sugar", "sugar", "var-s", "lot-s", "0.02", "100"},
	}
	for _, s := range seed {
		require.NoError(t, repos.Ingredients.Create(&entity.Ingredient{
			ID: s.ingID, Slug: s.slug, Name: s.slug, RecipeUnit: "g",
		}))
		require.NoError(t, repos.Variants.Create(&entity.Variant{
			ID: s.varID, IngredientID: s.ingID, PurchaseUnit: "g",
			PurchaseQuantity: decimal.NewFromInt(1), Preferred: true,
		}))
		require.NoError(t, repos.Purchases.Create(&entity.Purchase{
			ID: "pur-" + s.varID, VariantID: s.varID,
			Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString(s.price),
			PurchaseDate: jan, CreatedAt: jan,
		}))
		require.NoError(t, repos.Lots.Create(&entity.Lot{
			ID: s.lotID, VariantID: s.varID,
			Quantity: decimal.RequireFromString(s.qty), AcquisitionDate: &jan,
			CreatedAt: jan, UpdatedAt: jan,
		}))
	}

	require.NoError(t, repos.Recipes.Create(&entity.Recipe{
		ID: "rec-cookies", Name: "Cookies", ExpectedYield: decimal.NewFromInt(10),
		Ingredients: []entity.RecipeIngredient{
			{RecipeID: "rec-cookies", IngredientSlug: "flour", Quantity: decimal.NewFromInt(100), Unit: "g"},
			{RecipeID: "rec-cookies", IngredientSlug: "sugar", Quantity: decimal.NewFromInt(50), Unit: "g"},
		},
	}))

	return &prodFixture{repos: repos, uc: uc}
}

func (f *prodFixture) lotQuantity(t *testing.T, lotID string) decimal.Decimal {
	t.Helper()
	lot, err := f.repos.Lots.GetByID(lotID)
	require.NoError(t, err)
	require.NotNil(t, lot)
	return lot.Quantity
}

func TestCheckCanProduceSufficientStock(t *testing.T) {
	f := newProdFixture(t)

	res, err := f.uc.CheckCanProduce(context.Background(), "rec-cookies", 2)
	require.NoError(t, err)
	assert.True(t, res.CanProduce)
	assert.Empty(t, res.Missing)

	// The check is a pure read.
	assert.True(t, f.lotQuantity(t, "lot-f").Equal(decimal.NewFromInt(200)))
	assert.True(t, f.lotQuantity(t, "lot-s").Equal(decimal.NewFromInt(100)))
}

func TestCheckCanProduceReportsMissing(t *testing.T) {
	f := newProdFixture(t)

	res, err := f.uc.CheckCanProduce(context.Background(), "rec-cookies", 3)
	require.NoError(t, err)
	assert.False(t, res.CanProduce)
	require.Len(t, res.Missing, 2)

	flour := res.Missing[0]
	assert.Equal(t, "flour", flour.IngredientSlug)
	assert.True(t, flour.Needed.Equal(decimal.NewFromInt(300)))
	assert.True(t, flour.Available.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "g", flour.Unit)

	sugar := res.Missing[1]
	assert.Equal(t, "sugar", sugar.IngredientSlug)
	assert.True(t, sugar.Needed.Equal(decimal.NewFromInt(150)))
	assert.True(t, sugar.Available.Equal(decimal.NewFromInt(100)))
}

func TestRecordBatchProduction(t *testing.T) {
	f := newProdFixture(t)

	res, err := f.uc.RecordBatchProduction(context.Background(), "rec-cookies", "fu-cookie", 2)
	require.NoError(t, err)

	assert.Equal(t, "rec-cookies", res.RecipeID)
	assert.Equal(t, "fu-cookie", res.FinishedUnitID)
	assert.Equal(t, 2, res.NumBatches)
	assert.True(t, res.ExpectedYield.Equal(decimal.NewFromInt(20)))
	assert.True(t, res.ActualYield.Equal(decimal.NewFromInt(20)))

	// 200 g flour at 0.01 plus 100 g sugar at 0.02.
	assert.True(t, res.TotalIngredientCost.Equal(decimal.RequireFromString("4.00")), "got %s", res.TotalIngredientCost)
	assert.True(t, res.PerUnitCost.Equal(decimal.RequireFromString("0.2")), "got %s", res.PerUnitCost)

	require.Len(t, res.Consumptions, 2)
	assert.Equal(t, "flour", res.Consumptions[0].IngredientSlug)
	assert.True(t, res.Consumptions[0].QuantityConsumed.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "sugar", res.Consumptions[1].IngredientSlug)
	assert.True(t, res.Consumptions[1].QuantityConsumed.Equal(decimal.NewFromInt(100)))

	// Stock was drained and the run plus its ledger were persisted.
	assert.True(t, f.lotQuantity(t, "lot-f").IsZero())
	assert.True(t, f.lotQuantity(t, "lot-s").IsZero())

	run, err := f.repos.Productions.GetRun(res.ProductionRunID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "baker", run.CreatedBy)
	assert.True(t, run.TotalIngredientCost.Equal(res.TotalIngredientCost))

	records, err := f.repos.Productions.ListConsumptions(res.ProductionRunID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRecordBatchProductionProceedsOnShortfall(t *testing.T) {
	f := newProdFixture(t)

	// Four batches need 400 g flour against 200 g on hand. The run records
	// what was actually consumed; feasibility is checked ahead of time via
	// CheckCanProduce.
	res, err := f.uc.RecordBatchProduction(context.Background(), "rec-cookies", "fu-cookie", 4)
	require.NoError(t, err)

	assert.True(t, res.Consumptions[0].QuantityConsumed.Equal(decimal.NewFromInt(200)))
	assert.True(t, res.Consumptions[1].QuantityConsumed.Equal(decimal.NewFromInt(100)))
	assert.True(t, f.lotQuantity(t, "lot-f").IsZero())
}

func TestRecordBatchProductionRollsBackOnFailure(t *testing.T) {
	f := newProdFixture(t)

	// Third line asks for eggs by weight; eggs are counted and carry no
	// density, so the line fails after flour and sugar were already
	// decremented inside the transaction.
	require.NoError(t, f.repos.Ingredients.Create(&entity.Ingredient{
		ID: "ing-eggs", Slug: "eggs", Name: "eggs", RecipeUnit: "each",
	}))
	require.NoError(t, f.repos.Recipes.Create(&entity.Recipe{
		ID: "rec-bad", Name: "Bad", ExpectedYield: decimal.NewFromInt(10),
		Ingredients: []entity.RecipeIngredient{
			{RecipeID: "rec-bad", IngredientSlug: "flour", Quantity: decimal.NewFromInt(100), Unit: "g"},
			{RecipeID: "rec-bad", IngredientSlug: "sugar", Quantity: decimal.NewFromInt(50), Unit: "g"},
			{RecipeID: "rec-bad", IngredientSlug: "eggs", Quantity: decimal.NewFromInt(100), Unit: "g"},
		},
	}))

	_, err := f.uc.RecordBatchProduction(context.Background(), "rec-bad", "fu-bad", 1)
	var convErr *domain.UnitConversionError
	require.True(t, errors.As(err, &convErr), "got %v", err)

	// Atomic rollback: every lot is back at its pre-run quantity.
	assert.True(t, f.lotQuantity(t, "lot-f").Equal(decimal.NewFromInt(200)))
	assert.True(t, f.lotQuantity(t, "lot-s").Equal(decimal.NewFromInt(100)))
}

func TestRecordBatchProductionValidation(t *testing.T) {
	f := newProdFixture(t)

	var vErr *domain.ValidationError
	_, err := f.uc.RecordBatchProduction(context.Background(), "rec-cookies", "fu", 0)
	require.True(t, errors.As(err, &vErr))

	_, err = f.uc.CheckCanProduce(context.Background(), "rec-cookies", -1)
	require.True(t, errors.As(err, &vErr))

	_, err = f.uc.RecordBatchProduction(context.Background(), "rec-nope", "fu", 1)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
