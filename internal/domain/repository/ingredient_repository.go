package repository

import "github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"

// IngredientRepository is the persistence port for Ingredient.
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetBySlug(slug string) (*entity.Ingredient, error)
	GetByID(id string) (*entity.Ingredient, error)
	List(limit, offset int) ([]*entity.Ingredient, error)
}
