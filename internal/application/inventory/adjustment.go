package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/dto"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
)

// AdjustmentUseCase records non-recipe depletions (spoilage, gift,
// correction, ad hoc use) against one specific inventory lot. The caller
// names the exact lot, so it bypasses the FIFO engine, but it shares its
// discipline: the decrement and the immutable audit record land in the same
// transaction or not at all.
type AdjustmentUseCase struct {
	txRunner TxRunner
	actor    string
}

// NewAdjustmentUseCase builds the use case. actor is recorded as CreatedBy
// on every depletion.
func NewAdjustmentUseCase(txRunner TxRunner, actor string) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner, actor: actor}
}

// ManualAdjustment depletes quantityToDeplete (in the lot's native unit)
// from the lot and writes the audit record. Notes are required when reason
// is OTHER. Cost is quantity times the lot's current unit cost.
func (uc *AdjustmentUseCase) ManualAdjustment(ctx context.Context, inventoryItemID string, quantityToDeplete decimal.Decimal, reason, notes string) (*dto.DepletionResult, error) {
	if !entity.ValidDepletionReason(reason) {
		return nil, domain.NewValidationError("reason", "unknown depletion reason "+reason)
	}
	if reason == entity.DepletionReasonOther && notes == "" {
		return nil, domain.NewValidationError("notes", "required when reason is OTHER")
	}
	if !quantityToDeplete.IsPositive() {
		return nil, domain.NewValidationError("quantity_to_deplete", "must be positive")
	}

	var result *dto.DepletionResult
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		lot, err := r.Lots.GetByID(inventoryItemID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrItemNotFound
		}
		if quantityToDeplete.GreaterThan(lot.Quantity) {
			return domain.NewValidationError("quantity_to_deplete",
				"exceeds quantity on hand")
		}

		variant, err := r.Variants.GetByID(lot.VariantID)
		if err != nil {
			return err
		}
		if variant == nil {
			return domain.ErrVariantNotFound
		}

		latest, err := r.Purchases.LatestByVariant(variant.ID)
		if err != nil {
			return err
		}
		if latest == nil {
			return domain.NewValidationError("pricing",
				"variant "+variant.ID+" has no purchase history")
		}
		cost := quantityToDeplete.Mul(latest.UnitPrice)

		if err := r.Lots.UpdateQuantity(lot.ID, lot.Quantity.Sub(quantityToDeplete)); err != nil {
			return err
		}

		dep := &entity.InventoryDepletion{
			ID:            uuid.New().String(),
			LotID:         lot.ID,
			Quantity:      quantityToDeplete,
			Unit:          variant.PurchaseUnit,
			Reason:        reason,
			Notes:         notes,
			Cost:          cost,
			DepletionDate: time.Now(),
			CreatedBy:     uc.actor,
		}
		if err := r.Depletions.Create(dep); err != nil {
			return err
		}

		result = &dto.DepletionResult{
			QuantityDepleted: dep.Quantity,
			DepletionReason:  dep.Reason,
			Cost:             dep.Cost,
			DepletionDate:    dep.DepletionDate,
			CreatedBy:        dep.CreatedBy,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
