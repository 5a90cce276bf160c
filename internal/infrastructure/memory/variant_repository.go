package memory

import (
	"sort"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepository)(nil)

// VariantRepository is the in-memory Variant adapter.
type VariantRepository struct {
	store *Store
}

// Create adds a variant.
func (r *VariantRepository) Create(variant *entity.Variant) error {
	cp := *variant
	r.store.variants[cp.ID] = &cp
	return nil
}

// GetByID returns the variant or nil when absent.
func (r *VariantRepository) GetByID(id string) (*entity.Variant, error) {
	v, ok := r.store.variants[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

// ListByIngredient returns the ingredient's variants, preferred first, then
// by creation time and ID.
func (r *VariantRepository) ListByIngredient(ingredientID string) ([]*entity.Variant, error) {
	var variants []*entity.Variant
	for _, v := range r.store.variants {
		if v.IngredientID == ingredientID {
			cp := *v
			variants = append(variants, &cp)
		}
	}
	sort.Slice(variants, func(i, j int) bool {
		a, b := variants[i], variants[j]
		if a.Preferred != b.Preferred {
			return a.Preferred
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return variants, nil
}
