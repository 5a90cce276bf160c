package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo is the PostgreSQL Recipe adapter (usable with pool or tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository builds the adapter. Pass a pool or tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persists a recipe and its lines.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (id, name, expected_yield, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.ExpectedYield, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}

	lineQuery := `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_slug, quantity, unit)
		VALUES ($1, $2, $3, $4)`
	for _, line := range recipe.Ingredients {
		if _, err := r.q.Exec(context.Background(), lineQuery,
			recipe.ID, line.IngredientSlug, line.Quantity, line.Unit,
		); err != nil {
			return fmt.Errorf("create recipe line: %w", err)
		}
	}
	return nil
}

// GetByID returns the recipe with its lines, or nil when absent.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `SELECT id, name, expected_yield, created_at, updated_at FROM recipes WHERE id = $1`
	var recipe entity.Recipe
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&recipe.ID, &recipe.Name, &recipe.ExpectedYield, &recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	lineQuery := `
		SELECT recipe_id, ingredient_slug, quantity, unit
		FROM recipe_ingredients WHERE recipe_id = $1
		ORDER BY ingredient_slug`
	rows, err := r.q.Query(context.Background(), lineQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line entity.RecipeIngredient
		if err := rows.Scan(&line.RecipeID, &line.IngredientSlug, &line.Quantity, &line.Unit); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		recipe.Ingredients = append(recipe.Ingredients, line)
	}
	return &recipe, rows.Err()
}
