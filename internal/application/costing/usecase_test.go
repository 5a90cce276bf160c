package costing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/costing"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/infrastructure/memory"
)

type costFixture struct {
	repos inventory.TxRepos
	uc    *costing.UseCase
}

// newCostFixture seeds one ingredient ("flour", tracked in grams) with two
// variants: an older one backing a 5 g lot bought at 1.00/g, and a preferred
// one with no stock whose latest purchase sets the market price at 2.00/g.
func newCostFixture(t *testing.T) *costFixture {
	t.Helper()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	repos := store.Repos()

	consume := inventory.NewConsumeUseCase(runner,
		repos.Ingredients, repos.Variants, repos.Purchases, repos.Lots)
	uc := costing.New(consume, repos.Recipes, repos.Ingredients, repos.Variants, repos.Purchases)

	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Ingredients.Create(&entity.Ingredient{
		ID: "ing-flour", Slug: "flour", Name: "All-Purpose Flour", RecipeUnit: "g",
	}))
	require.NoError(t, repos.Variants.Create(&entity.Variant{
		ID: "var-old", IngredientID: "ing-flour", PurchaseUnit: "g",
		PurchaseQuantity: decimal.NewFromInt(1),
	}))
	require.NoError(t, repos.Variants.Create(&entity.Variant{
		ID: "var-pref", IngredientID: "ing-flour", PurchaseUnit: "g",
		PurchaseQuantity: decimal.NewFromInt(1), Preferred: true,
	}))
	require.NoError(t, repos.Purchases.Create(&entity.Purchase{
		ID: "pur-old", VariantID: "var-old",
		Quantity: decimal.NewFromInt(5), UnitPrice: decimal.RequireFromString("1.00"),
		PurchaseDate: jan, CreatedAt: jan,
	}))
	require.NoError(t, repos.Purchases.Create(&entity.Purchase{
		ID: "pur-pref", VariantID: "var-pref",
		Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("2.00"),
		PurchaseDate: feb, CreatedAt: feb,
	}))
	require.NoError(t, repos.Lots.Create(&entity.Lot{
		ID: "lot-old", VariantID: "var-old",
		Quantity: decimal.NewFromInt(5), AcquisitionDate: &jan,
		CreatedAt: jan, UpdatedAt: jan,
	}))

	return &costFixture{repos: repos, uc: uc}
}

func (f *costFixture) addRecipe(t *testing.T, id string, lines ...entity.RecipeIngredient) {
	t.Helper()
	require.NoError(t, f.repos.Recipes.Create(&entity.Recipe{
		ID: id, Name: id, ExpectedYield: decimal.NewFromInt(12), Ingredients: lines,
	}))
}

func TestActualCostStockThenMarketFallback(t *testing.T) {
	f := newCostFixture(t)
	f.addRecipe(t, "rec-bread", entity.RecipeIngredient{
		RecipeID: "rec-bread", IngredientSlug: "flour",
		Quantity: decimal.NewFromInt(8), Unit: "g",
	})

	// 5 g on hand at 1.00, the missing 3 g at the market price of 2.00.
	cost, err := f.uc.CalculateActualCost(context.Background(), "rec-bread")
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.RequireFromString("11.00")), "got %s", cost)

	// Costing is a pure read: the lot still holds its full 5 g.
	lot, err := f.repos.Lots.GetByID("lot-old")
	require.NoError(t, err)
	assert.True(t, lot.Quantity.Equal(decimal.NewFromInt(5)))
}

func TestActualCostFullyFromStock(t *testing.T) {
	f := newCostFixture(t)
	f.addRecipe(t, "rec-roll", entity.RecipeIngredient{
		RecipeID: "rec-roll", IngredientSlug: "flour",
		Quantity: decimal.NewFromInt(4), Unit: "g",
	})

	cost, err := f.uc.CalculateActualCost(context.Background(), "rec-roll")
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.RequireFromString("4.00")), "got %s", cost)
}

func TestEstimatedCostIgnoresStock(t *testing.T) {
	f := newCostFixture(t)
	f.addRecipe(t, "rec-bread", entity.RecipeIngredient{
		RecipeID: "rec-bread", IngredientSlug: "flour",
		Quantity: decimal.NewFromInt(8), Unit: "g",
	})

	// 8 g at the preferred variant's market price, stock notwithstanding.
	cost, err := f.uc.CalculateEstimatedCost(context.Background(), "rec-bread")
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.RequireFromString("16.00")), "got %s", cost)
}

func TestCostConvertsRecipeLineUnits(t *testing.T) {
	f := newCostFixture(t)
	f.addRecipe(t, "rec-kg", entity.RecipeIngredient{
		RecipeID: "rec-kg", IngredientSlug: "flour",
		Quantity: decimal.RequireFromString("0.008"), Unit: "kg",
	})

	// 0.008 kg is the same 8 g.
	cost, err := f.uc.CalculateEstimatedCost(context.Background(), "rec-kg")
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.RequireFromString("16.00")), "got %s", cost)
}

func TestCostFailsFastWithoutPricing(t *testing.T) {
	f := newCostFixture(t)
	require.NoError(t, f.repos.Ingredients.Create(&entity.Ingredient{
		ID: "ing-sugar", Slug: "sugar", Name: "Sugar", RecipeUnit: "g",
	}))
	require.NoError(t, f.repos.Variants.Create(&entity.Variant{
		ID: "var-sugar", IngredientID: "ing-sugar", PurchaseUnit: "g",
		PurchaseQuantity: decimal.NewFromInt(1), Preferred: true,
	}))
	f.addRecipe(t, "rec-sweet", entity.RecipeIngredient{
		RecipeID: "rec-sweet", IngredientSlug: "sugar",
		Quantity: decimal.NewFromInt(10), Unit: "g",
	})

	// No purchase history anywhere: zero-costing the line would lie.
	var vErr *domain.ValidationError
	_, err := f.uc.CalculateEstimatedCost(context.Background(), "rec-sweet")
	require.True(t, errors.As(err, &vErr), "got %v", err)

	_, err = f.uc.CalculateActualCost(context.Background(), "rec-sweet")
	require.True(t, errors.As(err, &vErr), "got %v", err)
}

func TestCostUnknownRecipeAndIngredient(t *testing.T) {
	f := newCostFixture(t)

	_, err := f.uc.CalculateActualCost(context.Background(), "rec-nope")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	f.addRecipe(t, "rec-ghost", entity.RecipeIngredient{
		RecipeID: "rec-ghost", IngredientSlug: "saffron",
		Quantity: decimal.NewFromInt(1), Unit: "g",
	})
	_, err = f.uc.CalculateEstimatedCost(context.Background(), "rec-ghost")
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
