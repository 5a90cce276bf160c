package memory

import (
	"sort"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepository)(nil)

// IngredientRepository is the in-memory Ingredient adapter.
type IngredientRepository struct {
	store *Store
}

// Create adds an ingredient; slugs are unique.
func (r *IngredientRepository) Create(ingredient *entity.Ingredient) error {
	for _, existing := range r.store.ingredients {
		if existing.Slug == ingredient.Slug {
			return domain.ErrDuplicate
		}
	}
	cp := *ingredient
	r.store.ingredients[cp.ID] = &cp
	return nil
}

// GetBySlug returns the ingredient or nil when absent.
func (r *IngredientRepository) GetBySlug(slug string) (*entity.Ingredient, error) {
	for _, ing := range r.store.ingredients {
		if ing.Slug == slug {
			cp := *ing
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID returns the ingredient or nil when absent.
func (r *IngredientRepository) GetByID(id string) (*entity.Ingredient, error) {
	ing, ok := r.store.ingredients[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

// List returns ingredients ordered by slug.
func (r *IngredientRepository) List(limit, offset int) ([]*entity.Ingredient, error) {
	var all []*entity.Ingredient
	for _, ing := range r.store.ingredients {
		cp := *ing
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Slug < all[j].Slug })
	return paginate(all, limit, offset), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
