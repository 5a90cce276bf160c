package repository

import "github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"

// RecipeRepository is the persistence port for Recipe, lines included.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
}
