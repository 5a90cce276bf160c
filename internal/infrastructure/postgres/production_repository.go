package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo is the PostgreSQL adapter for production runs and their
// consumption ledger (usable with pool or tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository builds the adapter. Pass a pool or tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// CreateRun persists a production run.
func (r *ProductionRepo) CreateRun(run *entity.ProductionRun) error {
	query := `
		INSERT INTO production_runs (id, recipe_id, finished_unit_id, num_batches,
			expected_yield, actual_yield, total_ingredient_cost, per_unit_cost,
			produced_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		run.ID, run.RecipeID, run.FinishedUnitID, run.NumBatches,
		run.ExpectedYield, run.ActualYield, run.TotalIngredientCost, run.PerUnitCost,
		run.ProducedAt, run.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create production run: %w", err)
	}
	return nil
}

// CreateConsumption persists one ledger line.
func (r *ProductionRepo) CreateConsumption(rec *entity.ConsumptionRecord) error {
	query := `
		INSERT INTO consumption_records (id, production_run_id, ingredient_slug,
			quantity, unit, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.ProductionRunID, rec.IngredientSlug,
		rec.Quantity, rec.Unit, rec.TotalCost, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create consumption record: %w", err)
	}
	return nil
}

// GetRun returns the run or nil when absent.
func (r *ProductionRepo) GetRun(id string) (*entity.ProductionRun, error) {
	query := `
		SELECT id, recipe_id, finished_unit_id, num_batches, expected_yield,
			actual_yield, total_ingredient_cost, per_unit_cost, produced_at, created_by
		FROM production_runs WHERE id = $1`
	var run entity.ProductionRun
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&run.ID, &run.RecipeID, &run.FinishedUnitID, &run.NumBatches, &run.ExpectedYield,
		&run.ActualYield, &run.TotalIngredientCost, &run.PerUnitCost, &run.ProducedAt, &run.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production run: %w", err)
	}
	return &run, nil
}

// ListConsumptions returns the run's ledger lines.
func (r *ProductionRepo) ListConsumptions(productionRunID string) ([]*entity.ConsumptionRecord, error) {
	query := `
		SELECT id, production_run_id, ingredient_slug, quantity, unit, total_cost, created_at
		FROM consumption_records WHERE production_run_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, productionRunID)
	if err != nil {
		return nil, fmt.Errorf("list consumption records: %w", err)
	}
	defer rows.Close()

	var records []*entity.ConsumptionRecord
	for rows.Next() {
		var rec entity.ConsumptionRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductionRunID, &rec.IngredientSlug,
			&rec.Quantity, &rec.Unit, &rec.TotalCost, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan consumption record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
