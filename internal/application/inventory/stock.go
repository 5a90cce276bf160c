package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/dto"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/units"
)

// StockUseCase answers read-only stock questions: what lots an ingredient
// has on hand and what has been manually depleted from a lot.
type StockUseCase struct {
	ingredientRepo repository.IngredientRepository
	variantRepo    repository.VariantRepository
	lotRepo        repository.LotRepository
	depletionRepo  repository.DepletionRepository
}

// NewStockUseCase builds the use case.
func NewStockUseCase(
	ingredientRepo repository.IngredientRepository,
	variantRepo repository.VariantRepository,
	lotRepo repository.LotRepository,
	depletionRepo repository.DepletionRepository,
) *StockUseCase {
	return &StockUseCase{
		ingredientRepo: ingredientRepo,
		variantRepo:    variantRepo,
		lotRepo:        lotRepo,
		depletionRepo:  depletionRepo,
	}
}

// IngredientStock lists the ingredient's open lots in FIFO order and totals
// them in the ingredient's recipe unit. Lots whose unit cannot be converted
// are reported at zero rather than failing the whole listing; this is a
// display query, not a costing operation.
func (uc *StockUseCase) IngredientStock(ctx context.Context, ingredientSlug string) (*dto.IngredientStockResult, error) {
	ing, err := uc.ingredientRepo.GetBySlug(ingredientSlug)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrIngredientNotFound
	}

	lots, err := uc.lotRepo.ListOpenByIngredient(ingredientSlug)
	if err != nil {
		return nil, err
	}

	variantByID := map[string]*entity.Variant{}
	onHand := decimal.Zero
	summaries := []dto.LotSummary{}

	for _, lot := range lots {
		variant, ok := variantByID[lot.VariantID]
		if !ok {
			variant, err = uc.variantRepo.GetByID(lot.VariantID)
			if err != nil {
				return nil, err
			}
			if variant == nil {
				return nil, domain.ErrVariantNotFound
			}
			variantByID[lot.VariantID] = variant
		}

		inRecipeUnits := decimal.Zero
		if converted, err := units.Convert(ing, lot.Quantity, variant.PurchaseUnit, ing.RecipeUnit); err == nil {
			inRecipeUnits = converted
			onHand = onHand.Add(converted)
		}

		summaries = append(summaries, dto.LotSummary{
			LotID:           lot.ID,
			VariantID:       lot.VariantID,
			Quantity:        lot.Quantity,
			Unit:            variant.PurchaseUnit,
			InRecipeUnits:   inRecipeUnits,
			AcquisitionDate: lot.AcquisitionDate,
			ExpirationDate:  lot.ExpirationDate,
			Location:        lot.Location,
		})
	}

	return &dto.IngredientStockResult{
		IngredientSlug: ing.Slug,
		IngredientName: ing.Name,
		Unit:           ing.RecipeUnit,
		OnHand:         onHand,
		Lots:           summaries,
	}, nil
}

// LotDepletions returns the lot's manual depletion history, most recent
// first.
func (uc *StockUseCase) LotDepletions(ctx context.Context, lotID string, limit, offset int) ([]dto.DepletionRecord, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrItemNotFound
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	records, err := uc.depletionRepo.ListByLot(lotID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DepletionRecord, 0, len(records))
	for _, d := range records {
		out = append(out, dto.DepletionRecord{
			LotID:            d.LotID,
			QuantityDepleted: d.Quantity,
			Unit:             d.Unit,
			DepletionReason:  d.Reason,
			Notes:            d.Notes,
			Cost:             d.Cost,
			DepletionDate:    d.DepletionDate,
			CreatedBy:        d.CreatedBy,
		})
	}
	return out, nil
}
