package memory

import (
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.DepletionRepository = (*DepletionRepository)(nil)

// DepletionRepository is the in-memory adapter for depletion audit records.
// Append-only.
type DepletionRepository struct {
	store *Store
}

// Create appends a depletion record.
func (r *DepletionRepository) Create(depletion *entity.InventoryDepletion) error {
	cp := *depletion
	r.store.depletions = append(r.store.depletions, &cp)
	return nil
}

// ListByLot returns the lot's depletions in insertion order.
func (r *DepletionRepository) ListByLot(lotID string, limit, offset int) ([]*entity.InventoryDepletion, error) {
	var records []*entity.InventoryDepletion
	for _, d := range r.store.depletions {
		if d.LotID == lotID {
			cp := *d
			records = append(records, &cp)
		}
	}
	return paginate(records, limit, offset), nil
}
