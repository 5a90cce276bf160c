package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
)

// LotRepository is the persistence port for physical inventory lots.
// Lots are mutated only through UpdateQuantity; zero-quantity lots are
// retained for the audit trail.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	// ListOpenByIngredient returns every lot with quantity > 0 belonging to
	// any variant of the ingredient, oldest acquisition date first with
	// undated lots last.
	ListOpenByIngredient(ingredientSlug string) ([]*entity.Lot, error)
	UpdateQuantity(lotID string, quantity decimal.Decimal) error
}
