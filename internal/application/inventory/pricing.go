package inventory

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/units"
)

// unitCostPerRecipeUnit derives the cost of one recipe unit of the
// ingredient for a variant, from the variant's most recent purchase price
// (which is per purchase unit).
func unitCostPerRecipeUnit(
	purchaseRepo repository.PurchaseRepository,
	ing *entity.Ingredient,
	variant *entity.Variant,
) (decimal.Decimal, error) {
	latest, err := purchaseRepo.LatestByVariant(variant.ID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if latest == nil {
		return decimal.Decimal{}, domain.NewValidationError("pricing",
			"variant "+variant.ID+" has no purchase history")
	}
	recipeUnitsPerPurchaseUnit, err := units.Convert(ing, decimal.NewFromInt(1), variant.PurchaseUnit, ing.RecipeUnit)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return latest.UnitPrice.Div(recipeUnitsPerPurchaseUnit), nil
}

// MarketPricePerRecipeUnit is the ingredient's current market price per
// recipe unit: the preferred variant's most recent purchase price, falling
// back to the first variant that has any purchase history. Fails with a
// ValidationError when no variant has ever been purchased, so a recipe cost
// is never silently zeroed.
func MarketPricePerRecipeUnit(
	variantRepo repository.VariantRepository,
	purchaseRepo repository.PurchaseRepository,
	ing *entity.Ingredient,
) (decimal.Decimal, error) {
	variants, err := variantRepo.ListByIngredient(ing.ID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	// Preferred first, then anything priced. ListByIngredient already sorts
	// preferred variants to the front.
	var lastErr error
	for _, v := range variants {
		price, err := unitCostPerRecipeUnit(purchaseRepo, ing, v)
		if err != nil {
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				lastErr = err
				continue // unpriced variant; try the next one
			}
			return decimal.Decimal{}, err // conversion or storage failure
		}
		return price, nil
	}
	if lastErr != nil {
		return decimal.Decimal{}, lastErr
	}
	return decimal.Decimal{}, domain.NewValidationError("pricing",
		"ingredient "+ing.Slug+" has no variants")
}
