package repository

import "github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"

// PurchaseRepository is the persistence port for Purchase. Purchases are
// immutable history: there is no update or delete.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	// LatestByVariant returns the most recent purchase of the variant by
	// purchase date, or nil when the variant has never been purchased.
	LatestByVariant(variantID string) (*entity.Purchase, error)
	ListByVariant(variantID string, limit, offset int) ([]*entity.Purchase, error)
}
