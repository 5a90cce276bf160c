package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepository)(nil)

// LotRepository is the in-memory Lot adapter.
type LotRepository struct {
	store *Store
}

// Create adds a lot.
func (r *LotRepository) Create(lot *entity.Lot) error {
	cp := *lot
	r.store.lots[cp.ID] = &cp
	return nil
}

// GetByID returns the lot or nil when absent.
func (r *LotRepository) GetByID(id string) (*entity.Lot, error) {
	lot, ok := r.store.lots[id]
	if !ok {
		return nil, nil
	}
	cp := *lot
	return &cp, nil
}

// ListOpenByIngredient returns lots with quantity > 0 across every variant
// of the ingredient, oldest acquisition date first, undated lots last.
func (r *LotRepository) ListOpenByIngredient(ingredientSlug string) ([]*entity.Lot, error) {
	var ingredientID string
	for _, ing := range r.store.ingredients {
		if ing.Slug == ingredientSlug {
			ingredientID = ing.ID
			break
		}
	}
	if ingredientID == "" {
		return nil, nil
	}

	variantIDs := map[string]struct{}{}
	for _, v := range r.store.variants {
		if v.IngredientID == ingredientID {
			variantIDs[v.ID] = struct{}{}
		}
	}

	var lots []*entity.Lot
	for _, lot := range r.store.lots {
		if _, ok := variantIDs[lot.VariantID]; !ok {
			continue
		}
		if lot.Quantity.IsPositive() {
			cp := *lot
			lots = append(lots, &cp)
		}
	}
	sort.SliceStable(lots, func(i, j int) bool {
		return lotBefore(lots[i], lots[j])
	})
	return lots, nil
}

// UpdateQuantity sets the lot's remaining quantity. Quantities never go
// negative; a zero-quantity lot is kept for the audit trail.
func (r *LotRepository) UpdateQuantity(lotID string, quantity decimal.Decimal) error {
	lot, ok := r.store.lots[lotID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if quantity.IsNegative() {
		return domain.NewValidationError("quantity", "lot quantity must not be negative")
	}
	lot.Quantity = quantity
	lot.UpdatedAt = time.Now()
	return nil
}

func lotBefore(a, b *entity.Lot) bool {
	switch {
	case a.AcquisitionDate == nil && b.AcquisitionDate == nil:
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
}
