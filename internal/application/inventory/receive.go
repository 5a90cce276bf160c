package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
)

// ReceiveStockInput describes one stock receipt: the purchase being recorded
// and the lot it lands in. Quantity and UnitPrice are in the variant's
// purchase unit.
type ReceiveStockInput struct {
	VariantID      string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	PurchaseDate   time.Time
	Supplier       string
	Location       string
	ExpirationDate *time.Time
}

// ReceiveUseCase records incoming stock: an immutable Purchase plus the Lot
// it created, in one transaction.
type ReceiveUseCase struct {
	txRunner TxRunner
}

// NewReceiveUseCase builds the use case.
func NewReceiveUseCase(txRunner TxRunner) *ReceiveUseCase {
	return &ReceiveUseCase{txRunner: txRunner}
}

// ReceiveStock validates the input, then creates the purchase record and the
// lot atomically. Returns the new lot.
func (uc *ReceiveUseCase) ReceiveStock(ctx context.Context, input ReceiveStockInput) (*entity.Lot, error) {
	if input.VariantID == "" {
		return nil, domain.NewValidationError("variant_id", "required")
	}
	if !input.Quantity.IsPositive() {
		return nil, domain.NewValidationError("quantity", "must be positive")
	}
	if input.UnitPrice.IsNegative() {
		return nil, domain.NewValidationError("unit_price", "must not be negative")
	}
	if input.PurchaseDate.IsZero() {
		input.PurchaseDate = time.Now()
	}

	var lot *entity.Lot
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		variant, err := r.Variants.GetByID(input.VariantID)
		if err != nil {
			return err
		}
		if variant == nil {
			return domain.ErrVariantNotFound
		}

		now := time.Now()
		purchase := &entity.Purchase{
			ID:           uuid.New().String(),
			VariantID:    variant.ID,
			Quantity:     input.Quantity,
			UnitPrice:    input.UnitPrice,
			PurchaseDate: input.PurchaseDate,
			Supplier:     input.Supplier,
			CreatedAt:    now,
		}
		if err := r.Purchases.Create(purchase); err != nil {
			return err
		}

		acquired := input.PurchaseDate
		lot = &entity.Lot{
			ID:              uuid.New().String(),
			VariantID:       variant.ID,
			PurchaseID:      purchase.ID,
			Quantity:        input.Quantity,
			AcquisitionDate: &acquired,
			ExpirationDate:  input.ExpirationDate,
			Location:        input.Location,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return r.Lots.Create(lot)
	})
	if err != nil {
		return nil, err
	}
	return lot, nil
}
