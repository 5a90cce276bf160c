package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo is the PostgreSQL Variant adapter (usable with pool or tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository builds the adapter. Pass a pool or tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantColumns = `id, ingredient_id, brand, package_size, supplier,
	purchase_unit, purchase_quantity, preferred, created_at`

// Create persists a variant.
func (r *VariantRepo) Create(v *entity.Variant) error {
	query := `
		INSERT INTO variants (` + variantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.IngredientID, v.Brand, v.PackageSize, v.Supplier,
		v.PurchaseUnit, v.PurchaseQuantity, v.Preferred, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create variant: %w", err)
	}
	return nil
}

// GetByID returns the variant or nil when absent.
func (r *VariantRepo) GetByID(id string) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants WHERE id = $1`
	var v entity.Variant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.IngredientID, &v.Brand, &v.PackageSize, &v.Supplier,
		&v.PurchaseUnit, &v.PurchaseQuantity, &v.Preferred, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return &v, nil
}

// ListByIngredient returns the ingredient's variants, preferred first.
func (r *VariantRepo) ListByIngredient(ingredientID string) ([]*entity.Variant, error) {
	query := `
		SELECT ` + variantColumns + ` FROM variants
		WHERE ingredient_id = $1
		ORDER BY preferred DESC, created_at, id`
	rows, err := r.q.Query(context.Background(), query, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Variant
	for rows.Next() {
		var v entity.Variant
		if err := rows.Scan(
			&v.ID, &v.IngredientID, &v.Brand, &v.PackageSize, &v.Supplier,
			&v.PurchaseUnit, &v.PurchaseQuantity, &v.Preferred, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
