// Package costing computes recipe costs: actual cost from FIFO-valued stock
// with a market-price fallback for any shortfall, and estimated cost from
// market prices alone. Both are pure reads; a cost is all-or-nothing
// accurate and any failure aborts the whole recipe rather than silently
// zero-costing a line.
package costing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/units"
)

// UseCase is the costing service.
type UseCase struct {
	consume        *inventory.ConsumeUseCase
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	variantRepo    repository.VariantRepository
	purchaseRepo   repository.PurchaseRepository
}

// New builds the costing service.
func New(
	consume *inventory.ConsumeUseCase,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	variantRepo repository.VariantRepository,
	purchaseRepo repository.PurchaseRepository,
) *UseCase {
	return &UseCase{
		consume:        consume,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		variantRepo:    variantRepo,
		purchaseRepo:   purchaseRepo,
	}
}

// CalculateActualCost prices one batch of the recipe against current stock:
// each line is dry-run consumed FIFO, and any shortfall is priced at the
// ingredient's market price. Inventory is never mutated.
func (uc *UseCase) CalculateActualCost(ctx context.Context, recipeID string) (decimal.Decimal, error) {
	recipe, err := uc.getRecipe(recipeID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	total := decimal.Zero
	for _, line := range recipe.Ingredients {
		ing, needed, err := uc.lineInRecipeUnits(line)
		if err != nil {
			return decimal.Decimal{}, err
		}

		res, err := uc.consume.ConsumeFIFO(ctx, line.IngredientSlug, needed, true)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(res.TotalCost)

		if res.Shortfall.IsPositive() {
			price, err := inventory.MarketPricePerRecipeUnit(uc.variantRepo, uc.purchaseRepo, ing)
			if err != nil {
				return decimal.Decimal{}, err
			}
			total = total.Add(res.Shortfall.Mul(price))
		}
	}
	return total, nil
}

// CalculateEstimatedCost prices one batch of the recipe at market prices,
// ignoring stock entirely.
func (uc *UseCase) CalculateEstimatedCost(ctx context.Context, recipeID string) (decimal.Decimal, error) {
	recipe, err := uc.getRecipe(recipeID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	total := decimal.Zero
	for _, line := range recipe.Ingredients {
		ing, needed, err := uc.lineInRecipeUnits(line)
		if err != nil {
			return decimal.Decimal{}, err
		}
		price, err := inventory.MarketPricePerRecipeUnit(uc.variantRepo, uc.purchaseRepo, ing)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(needed.Mul(price))
	}
	return total, nil
}

func (uc *UseCase) getRecipe(recipeID string) (*entity.Recipe, error) {
	recipe, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

// lineInRecipeUnits resolves the line's ingredient and converts the line
// quantity into the ingredient's recipe unit.
func (uc *UseCase) lineInRecipeUnits(line entity.RecipeIngredient) (*entity.Ingredient, decimal.Decimal, error) {
	ing, err := uc.ingredientRepo.GetBySlug(line.IngredientSlug)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	if ing == nil {
		return nil, decimal.Decimal{}, domain.ErrIngredientNotFound
	}
	needed, err := units.Convert(ing, line.Quantity, line.Unit, ing.RecipeUnit)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	return ing, needed, nil
}
