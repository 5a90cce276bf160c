package repository

import "github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"

// VariantRepository is the persistence port for Variant.
type VariantRepository interface {
	Create(variant *entity.Variant) error
	GetByID(id string) (*entity.Variant, error)
	// ListByIngredient returns every variant of the ingredient, preferred
	// variants first, then by creation time.
	ListByIngredient(ingredientID string) ([]*entity.Variant, error)
}
