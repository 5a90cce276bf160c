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

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo is the PostgreSQL Ingredient adapter (usable with pool or tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository builds the adapter. Pass a pool or tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, slug, name, category, recipe_unit,
	density_volume_amount, density_volume_unit, density_weight_amount, density_weight_unit,
	created_at, updated_at`

// Create persists an ingredient. Density columns are all-or-nothing.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (` + ingredientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	var volAmt, wtAmt *decimal.Decimal
	var volUnit, wtUnit *string
	if ing.Density != nil {
		volAmt, volUnit = &ing.Density.VolumeAmount, &ing.Density.VolumeUnit
		wtAmt, wtUnit = &ing.Density.WeightAmount, &ing.Density.WeightUnit
	}
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Slug, ing.Name, ing.Category, ing.RecipeUnit,
		volAmt, volUnit, wtAmt, wtUnit, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create ingredient: %w", err)
	}
	return nil
}

// GetBySlug returns the ingredient or nil when absent.
func (r *IngredientRepo) GetBySlug(slug string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE slug = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, slug))
}

// GetByID returns the ingredient or nil when absent.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List returns ingredients ordered by slug.
func (r *IngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY slug LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

func (r *IngredientRepo) scanOne(row pgx.Row) (*entity.Ingredient, error) {
	ing, err := scanIngredient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ing, nil
}

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	var volAmt, wtAmt *decimal.Decimal
	var volUnit, wtUnit *string
	err := row.Scan(
		&ing.ID, &ing.Slug, &ing.Name, &ing.Category, &ing.RecipeUnit,
		&volAmt, &volUnit, &wtAmt, &wtUnit, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan ingredient: %w", err)
	}
	if volAmt != nil && volUnit != nil && wtAmt != nil && wtUnit != nil {
		ing.Density = &entity.Density{
			VolumeAmount: *volAmt,
			VolumeUnit:   *volUnit,
			WeightAmount: *wtAmt,
			WeightUnit:   *wtUnit,
		}
	}
	return &ing, nil
}
