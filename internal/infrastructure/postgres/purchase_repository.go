package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo is the PostgreSQL Purchase adapter (usable with pool or tx).
// Purchases are immutable history; the adapter exposes no update or delete.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository builds the adapter. Pass a pool or tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, variant_id, quantity, unit_price, purchase_date, supplier, created_at`

// Create persists a purchase record.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.VariantID, p.Quantity, p.UnitPrice, p.PurchaseDate, p.Supplier, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// LatestByVariant returns the variant's most recent purchase, or nil when it
// has never been purchased.
func (r *PurchaseRepo) LatestByVariant(variantID string) (*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + ` FROM purchases
		WHERE variant_id = $1
		ORDER BY purchase_date DESC, created_at DESC
		LIMIT 1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, variantID).Scan(
		&p.ID, &p.VariantID, &p.Quantity, &p.UnitPrice, &p.PurchaseDate, &p.Supplier, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest purchase: %w", err)
	}
	return &p, nil
}

// ListByVariant returns the variant's purchases, most recent first.
func (r *PurchaseRepo) ListByVariant(variantID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + ` FROM purchases
		WHERE variant_id = $1
		ORDER BY purchase_date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, variantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.VariantID, &p.Quantity, &p.UnitPrice, &p.PurchaseDate, &p.Supplier, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
