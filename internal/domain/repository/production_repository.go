package repository

import "github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"

// ProductionRepository persists production runs and their consumption ledger.
type ProductionRepository interface {
	CreateRun(run *entity.ProductionRun) error
	CreateConsumption(record *entity.ConsumptionRecord) error
	GetRun(id string) (*entity.ProductionRun, error)
	ListConsumptions(productionRunID string) ([]*entity.ConsumptionRecord, error)
}
