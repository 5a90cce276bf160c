package postgres

import (
	"context"
	"fmt"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.DepletionRepository = (*DepletionRepo)(nil)

// DepletionRepo is the PostgreSQL adapter for depletion audit records
// (usable with pool or tx). Records are append-only; no update or delete
// statement exists here on purpose.
type DepletionRepo struct {
	q Querier
}

// NewDepletionRepository builds the adapter. Pass a pool or tx (Querier).
func NewDepletionRepository(q Querier) *DepletionRepo {
	return &DepletionRepo{q: q}
}

// Create persists a depletion record.
func (r *DepletionRepo) Create(d *entity.InventoryDepletion) error {
	query := `
		INSERT INTO inventory_depletions (id, lot_id, quantity, unit, reason,
			notes, cost, depletion_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	notes := (*string)(nil)
	if d.Notes != "" {
		notes = &d.Notes
	}
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.LotID, d.Quantity, d.Unit, d.Reason,
		notes, d.Cost, d.DepletionDate, d.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create depletion: %w", err)
	}
	return nil
}

// ListByLot returns the lot's depletions, most recent first.
func (r *DepletionRepo) ListByLot(lotID string, limit, offset int) ([]*entity.InventoryDepletion, error) {
	query := `
		SELECT id, lot_id, quantity, unit, reason, notes, cost, depletion_date, created_by
		FROM inventory_depletions WHERE lot_id = $1
		ORDER BY depletion_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, lotID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list depletions: %w", err)
	}
	defer rows.Close()

	var records []*entity.InventoryDepletion
	for rows.Next() {
		var d entity.InventoryDepletion
		var notes *string
		if err := rows.Scan(
			&d.ID, &d.LotID, &d.Quantity, &d.Unit, &d.Reason,
			&notes, &d.Cost, &d.DepletionDate, &d.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan depletion: %w", err)
		}
		if notes != nil {
			d.Notes = *notes
		}
		records = append(records, &d)
	}
	return records, rows.Err()
}
