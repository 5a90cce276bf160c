package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/dto"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/units"
)

// ConsumeUseCase is the FIFO consumption engine: given an ingredient and a
// requested quantity it selects lots oldest-first across every variant of
// the ingredient (brands are fungible for recipe purposes), computes the
// consumed amounts and their cost, and either applies the decrements inside
// a transaction or, in dry-run mode, discards them.
type ConsumeUseCase struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	variantRepo    repository.VariantRepository
	purchaseRepo   repository.PurchaseRepository
	lotRepo        repository.LotRepository
}

// NewConsumeUseCase builds the engine.
func NewConsumeUseCase(
	txRunner TxRunner,
	ingredientRepo repository.IngredientRepository,
	variantRepo repository.VariantRepository,
	purchaseRepo repository.PurchaseRepository,
	lotRepo repository.LotRepository,
) *ConsumeUseCase {
	return &ConsumeUseCase{
		txRunner:       txRunner,
		ingredientRepo: ingredientRepo,
		variantRepo:    variantRepo,
		purchaseRepo:   purchaseRepo,
		lotRepo:        lotRepo,
	}
}

// ConsumeFIFO consumes quantityNeeded (in the ingredient's recipe unit) from
// the ingredient's lots, oldest first. With dryRun the result is computed
// over the current lot state and nothing is persisted; otherwise the
// decrements run inside their own transaction.
func (uc *ConsumeUseCase) ConsumeFIFO(ctx context.Context, ingredientSlug string, quantityNeeded decimal.Decimal, dryRun bool) (*dto.ConsumptionResult, error) {
	if dryRun {
		// Pure read path: compute, then discard. Never mutate-then-rollback.
		return consumeFIFO(uc.ingredientRepo, uc.variantRepo, uc.purchaseRepo, uc.lotRepo,
			ingredientSlug, quantityNeeded, true)
	}

	var result *dto.ConsumptionResult
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		var err error
		result, err = consumeFIFO(r.Ingredients, r.Variants, r.Purchases, r.Lots,
			ingredientSlug, quantityNeeded, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ConsumeInTx runs one consumption against repos already bound to the
// caller's transaction, so a multi-ingredient operation composes into a
// single atomic unit.
func (uc *ConsumeUseCase) ConsumeInTx(r TxRepos, ingredientSlug string, quantityNeeded decimal.Decimal, dryRun bool) (*dto.ConsumptionResult, error) {
	return consumeFIFO(r.Ingredients, r.Variants, r.Purchases, r.Lots,
		ingredientSlug, quantityNeeded, dryRun)
}

// consumeFIFO walks the ingredient's open lots oldest-first. Per lot it
// converts the remaining quantity into recipe units, takes
// min(remainingNeeded, available), converts the taken amount back to the
// lot's native unit for the decrement, and prices the portion at the
// variant's most recent purchase price. A conversion failure on any lot
// aborts the whole operation; skipping the lot would under-cost the result.
func consumeFIFO(
	ingredientRepo repository.IngredientRepository,
	variantRepo repository.VariantRepository,
	purchaseRepo repository.PurchaseRepository,
	lotRepo repository.LotRepository,
	ingredientSlug string,
	quantityNeeded decimal.Decimal,
	dryRun bool,
) (*dto.ConsumptionResult, error) {
	if !quantityNeeded.IsPositive() {
		return nil, domain.NewValidationError("quantity_needed", "must be positive")
	}

	ing, err := ingredientRepo.GetBySlug(ingredientSlug)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrIngredientNotFound
	}

	lots, err := lotRepo.ListOpenByIngredient(ingredientSlug)
	if err != nil {
		return nil, err
	}
	sortLotsFIFO(lots)

	// Variants and per-recipe-unit costs resolved once per variant.
	variantByID := map[string]*entity.Variant{}
	costByVariant := map[string]decimal.Decimal{}

	remaining := quantityNeeded
	consumed := decimal.Zero
	totalCost := decimal.Zero
	breakdown := []dto.ConsumptionBreakdownItem{}

	for _, lot := range lots {
		if !remaining.IsPositive() {
			break
		}

		variant, ok := variantByID[lot.VariantID]
		if !ok {
			variant, err = variantRepo.GetByID(lot.VariantID)
			if err != nil {
				return nil, err
			}
			if variant == nil {
				return nil, domain.ErrVariantNotFound
			}
			variantByID[lot.VariantID] = variant
			unitCost, err := unitCostPerRecipeUnit(purchaseRepo, ing, variant)
			if err != nil {
				return nil, err
			}
			costByVariant[lot.VariantID] = unitCost
		}
		unitCost := costByVariant[lot.VariantID]

		available, err := units.Convert(ing, lot.Quantity, variant.PurchaseUnit, ing.RecipeUnit)
		if err != nil {
			return nil, err
		}
		if !available.IsPositive() {
			continue
		}

		take := decimal.Min(remaining, available)
		nativeDecrement, err := units.Convert(ing, take, ing.RecipeUnit, variant.PurchaseUnit)
		if err != nil {
			return nil, err
		}

		newQuantity := lot.Quantity.Sub(nativeDecrement)
		if newQuantity.IsNegative() {
			// Round-trip conversion can leave dust below the division
			// precision; a lot never goes negative.
			newQuantity = decimal.Zero
		}

		breakdown = append(breakdown, dto.ConsumptionBreakdownItem{
			LotID:            lot.ID,
			VariantID:        lot.VariantID,
			LotDate:          lot.AcquisitionDate,
			QuantityConsumed: take,
			Unit:             ing.RecipeUnit,
			RemainingInLot:   available.Sub(take),
			UnitCost:         unitCost,
		})

		consumed = consumed.Add(take)
		totalCost = totalCost.Add(take.Mul(unitCost))
		remaining = remaining.Sub(take)

		if !dryRun {
			if err := lotRepo.UpdateQuantity(lot.ID, newQuantity); err != nil {
				return nil, err
			}
		}
	}

	shortfall := quantityNeeded.Sub(consumed)
	return &dto.ConsumptionResult{
		Consumed:  consumed,
		Breakdown: breakdown,
		Shortfall: shortfall,
		Satisfied: shortfall.IsZero(),
		TotalCost: totalCost,
	}, nil
}

// sortLotsFIFO orders lots oldest acquisition date first. Undated stock is
// least trusted for FIFO ordering and sorts after every dated lot; ties
// break on creation time then ID so the walk is reproducible.
func sortLotsFIFO(lots []*entity.Lot) {
	sort.SliceStable(lots, func(i, j int) bool {
		a, b := lots[i], lots[j]
		switch {
		case a.AcquisitionDate == nil && b.AcquisitionDate == nil:
			// fall through to tie-break
		case a.AcquisitionDate == nil:
			return false
		case b.AcquisitionDate == nil:
			return true
		case !a.AcquisitionDate.Equal(*b.AcquisitionDate):
			return a.AcquisitionDate.Before(*b.AcquisitionDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
