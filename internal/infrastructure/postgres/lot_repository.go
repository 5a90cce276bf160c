package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo is the PostgreSQL Lot adapter (usable with pool or tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository builds the adapter. Pass a pool or tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, variant_id, purchase_id, quantity, acquisition_date,
	expiration_date, location, created_at, updated_at`

// Create persists a lot.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	purchaseID := (*string)(nil)
	if lot.PurchaseID != "" {
		purchaseID = &lot.PurchaseID
	}
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.VariantID, purchaseID, lot.Quantity, lot.AcquisitionDate,
		lot.ExpirationDate, lot.Location, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create lot: %w", err)
	}
	return nil
}

// GetByID returns the lot or nil when absent.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return lot, nil
}

// ListOpenByIngredient returns lots with quantity > 0 across every variant
// of the ingredient, oldest acquisition date first with undated lots last,
// the FIFO order the consumption engine walks.
func (r *LotRepo) ListOpenByIngredient(ingredientSlug string) ([]*entity.Lot, error) {
	query := `
		SELECT l.id, l.variant_id, l.purchase_id, l.quantity, l.acquisition_date,
			l.expiration_date, l.location, l.created_at, l.updated_at
		FROM lots l
		JOIN variants v ON v.id = l.variant_id
		JOIN ingredients i ON i.id = v.ingredient_id
		WHERE i.slug = $1 AND l.quantity > 0
		ORDER BY l.acquisition_date ASC NULLS LAST, l.created_at, l.id`
	rows, err := r.q.Query(context.Background(), query, ingredientSlug)
	if err != nil {
		return nil, fmt.Errorf("list open lots: %w", err)
	}
	defer rows.Close()

	var lots []*entity.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

// UpdateQuantity sets the lot's remaining quantity. The lots table carries a
// quantity >= 0 check constraint; this guard surfaces the violation as a
// ValidationError before the round trip.
func (r *LotRepo) UpdateQuantity(lotID string, quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return domain.NewValidationError("quantity", "lot quantity must not be negative")
	}
	query := `UPDATE lots SET quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, lotID, quantity)
	if err != nil {
		return fmt.Errorf("update lot quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var lot entity.Lot
	var purchaseID *string
	err := row.Scan(
		&lot.ID, &lot.VariantID, &purchaseID, &lot.Quantity, &lot.AcquisitionDate,
		&lot.ExpirationDate, &lot.Location, &lot.CreatedAt, &lot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan lot: %w", err)
	}
	if purchaseID != nil {
		lot.PurchaseID = *purchaseID
	}
	return &lot, nil
}
