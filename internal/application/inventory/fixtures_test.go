package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/infrastructure/memory"
)

// fixture wires the FIFO engine against an in-memory store.
type fixture struct {
	store   *memory.Store
	runner  *memory.TxRunner
	repos   inventory.TxRepos
	consume *inventory.ConsumeUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	repos := store.Repos()
	return &fixture{
		store:  store,
		runner: runner,
		repos:  repos,
		consume: inventory.NewConsumeUseCase(runner,
			repos.Ingredients, repos.Variants, repos.Purchases, repos.Lots),
	}
}

func (f *fixture) addIngredient(t *testing.T, id, slug, recipeUnit string) {
	t.Helper()
	require.NoError(t, f.repos.Ingredients.Create(&entity.Ingredient{
		ID: id, Slug: slug, Name: slug, RecipeUnit: recipeUnit,
	}))
}

func (f *fixture) addVariant(t *testing.T, id, ingredientID, purchaseUnit string, preferred bool) {
	t.Helper()
	require.NoError(t, f.repos.Variants.Create(&entity.Variant{
		ID: id, IngredientID: ingredientID, PurchaseUnit: purchaseUnit,
		PurchaseQuantity: decimal.NewFromInt(1), Preferred: preferred,
	}))
}

func (f *fixture) addPurchase(t *testing.T, id, variantID, unitPrice string, day time.Time) {
	t.Helper()
	require.NoError(t, f.repos.Purchases.Create(&entity.Purchase{
		ID: id, VariantID: variantID,
		Quantity:     decimal.NewFromInt(1),
		UnitPrice:    decimal.RequireFromString(unitPrice),
		PurchaseDate: day,
		CreatedAt:    day,
	}))
}

func (f *fixture) addLot(t *testing.T, id, variantID, quantity string, acquired *time.Time) {
	t.Helper()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if acquired != nil {
		created = *acquired
	}
	require.NoError(t, f.repos.Lots.Create(&entity.Lot{
		ID: id, VariantID: variantID,
		Quantity:        decimal.RequireFromString(quantity),
		AcquisitionDate: acquired,
		CreatedAt:       created,
		UpdatedAt:       created,
	}))
}

func (f *fixture) lotQuantity(t *testing.T, lotID string) decimal.Decimal {
	t.Helper()
	lot, err := f.repos.Lots.GetByID(lotID)
	require.NoError(t, err)
	require.NotNil(t, lot)
	return lot.Quantity
}

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// seedFlour sets up one ingredient tracked in grams with three 100 g lots of
// the same variant: two dated (Jan 1 and Jan 2) and one undated. The latest
// purchase prices the variant at 0.01 per gram.
func seedFlour(t *testing.T, f *fixture) {
	t.Helper()
	f.addIngredient(t, "ing-flour", "flour", "g")
	f.addVariant(t, "var-g", "ing-flour", "g", true)
	f.addPurchase(t, "pur-1", "var-g", "0.01", *day(2026, time.January, 2))
	f.addLot(t, "lot-a", "var-g", "100", day(2026, time.January, 1))
	f.addLot(t, "lot-b", "var-g", "100", day(2026, time.January, 2))
	f.addLot(t, "lot-c", "var-g", "100", nil)
}
