package memory

import (
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepository)(nil)

// ProductionRepository is the in-memory adapter for production runs and
// their consumption ledger.
type ProductionRepository struct {
	store *Store
}

// CreateRun adds a production run.
func (r *ProductionRepository) CreateRun(run *entity.ProductionRun) error {
	cp := *run
	r.store.runs[cp.ID] = &cp
	return nil
}

// CreateConsumption appends one ledger line.
func (r *ProductionRepository) CreateConsumption(record *entity.ConsumptionRecord) error {
	cp := *record
	r.store.consumptions = append(r.store.consumptions, &cp)
	return nil
}

// GetRun returns the run or nil when absent.
func (r *ProductionRepository) GetRun(id string) (*entity.ProductionRun, error) {
	run, ok := r.store.runs[id]
	if !ok {
		return nil, nil
	}
	cp := *run
	return &cp, nil
}

// ListConsumptions returns the run's ledger lines in insertion order.
func (r *ProductionRepository) ListConsumptions(productionRunID string) ([]*entity.ConsumptionRecord, error) {
	var records []*entity.ConsumptionRecord
	for _, rec := range r.store.consumptions {
		if rec.ProductionRunID == productionRunID {
			cp := *rec
			records = append(records, &cp)
		}
	}
	return records, nil
}
