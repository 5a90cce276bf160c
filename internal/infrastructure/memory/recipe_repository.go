package memory

import (
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepository)(nil)

// RecipeRepository is the in-memory Recipe adapter.
type RecipeRepository struct {
	store *Store
}

// Create adds a recipe with its lines.
func (r *RecipeRepository) Create(recipe *entity.Recipe) error {
	cp := *recipe
	cp.Ingredients = append([]entity.RecipeIngredient(nil), recipe.Ingredients...)
	r.store.recipes[cp.ID] = &cp
	return nil
}

// GetByID returns the recipe or nil when absent.
func (r *RecipeRepository) GetByID(id string) (*entity.Recipe, error) {
	recipe, ok := r.store.recipes[id]
	if !ok {
		return nil, nil
	}
	cp := *recipe
	cp.Ingredients = append([]entity.RecipeIngredient(nil), recipe.Ingredients...)
	return &cp, nil
}
