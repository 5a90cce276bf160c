package memory

import (
	"sort"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)

// PurchaseRepository is the in-memory Purchase adapter. Purchases are
// immutable history; only Create exists.
type PurchaseRepository struct {
	store *Store
}

// Create adds a purchase record.
func (r *PurchaseRepository) Create(purchase *entity.Purchase) error {
	cp := *purchase
	r.store.purchases[cp.ID] = &cp
	return nil
}

// LatestByVariant returns the variant's most recent purchase by purchase
// date, or nil when it has never been purchased.
func (r *PurchaseRepository) LatestByVariant(variantID string) (*entity.Purchase, error) {
	var latest *entity.Purchase
	for _, p := range r.store.purchases {
		if p.VariantID != variantID {
			continue
		}
		if latest == nil || p.PurchaseDate.After(latest.PurchaseDate) ||
			(p.PurchaseDate.Equal(latest.PurchaseDate) && p.CreatedAt.After(latest.CreatedAt)) {
			latest = p
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

// ListByVariant returns the variant's purchases, most recent first.
func (r *PurchaseRepository) ListByVariant(variantID string, limit, offset int) ([]*entity.Purchase, error) {
	var purchases []*entity.Purchase
	for _, p := range r.store.purchases {
		if p.VariantID == variantID {
			cp := *p
			purchases = append(purchases, &cp)
		}
	}
	sort.Slice(purchases, func(i, j int) bool {
		return purchases[i].PurchaseDate.After(purchases[j].PurchaseDate)
	})
	return paginate(purchases, limit, offset), nil
}
