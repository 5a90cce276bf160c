package repository

import "github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"

// DepletionRepository persists manual depletion audit records. Records are
// append-only: no update or delete exists.
type DepletionRepository interface {
	Create(depletion *entity.InventoryDepletion) error
	ListByLot(lotID string, limit, offset int) ([]*entity.InventoryDepletion, error)
}
