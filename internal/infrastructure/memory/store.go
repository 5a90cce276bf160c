// Package memory implements every persistence port over in-process maps.
// It backs the test suite and storage-less runs of the tracker. The model
// is single-process, single-writer; atomicity comes from the snapshot
// TxRunner, not from locking.
package memory

import (
	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
)

// Store holds all tracker state.
type Store struct {
	ingredients  map[string]*entity.Ingredient // by ID
	variants     map[string]*entity.Variant
	purchases    map[string]*entity.Purchase
	lots         map[string]*entity.Lot
	recipes      map[string]*entity.Recipe
	runs         map[string]*entity.ProductionRun
	consumptions []*entity.ConsumptionRecord
	depletions   []*entity.InventoryDepletion
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		ingredients: map[string]*entity.Ingredient{},
		variants:    map[string]*entity.Variant{},
		purchases:   map[string]*entity.Purchase{},
		lots:        map[string]*entity.Lot{},
		recipes:     map[string]*entity.Recipe{},
		runs:        map[string]*entity.ProductionRun{},
	}
}

// Repos returns repositories reading and writing this store directly.
func (s *Store) Repos() inventory.TxRepos {
	return inventory.TxRepos{
		Ingredients: &IngredientRepository{store: s},
		Variants:    &VariantRepository{store: s},
		Purchases:   &PurchaseRepository{store: s},
		Lots:        &LotRepository{store: s},
		Recipes:     &RecipeRepository{store: s},
		Productions: &ProductionRepository{store: s},
		Depletions:  &DepletionRepository{store: s},
	}
}

// clone copies the store so a transaction can work on a scratch snapshot.
// Entities are copied by value; nested pointers (dates, density) are treated
// as immutable and shared.
func (s *Store) clone() *Store {
	c := NewStore()
	for id, v := range s.ingredients {
		cp := *v
		c.ingredients[id] = &cp
	}
	for id, v := range s.variants {
		cp := *v
		c.variants[id] = &cp
	}
	for id, v := range s.purchases {
		cp := *v
		c.purchases[id] = &cp
	}
	for id, v := range s.lots {
		cp := *v
		c.lots[id] = &cp
	}
	for id, v := range s.recipes {
		cp := *v
		cp.Ingredients = append([]entity.RecipeIngredient(nil), v.Ingredients...)
		c.recipes[id] = &cp
	}
	for id, v := range s.runs {
		cp := *v
		c.runs[id] = &cp
	}
	c.consumptions = append([]*entity.ConsumptionRecord(nil), s.consumptions...)
	c.depletions = append([]*entity.InventoryDepletion(nil), s.depletions...)
	return c
}

// replace adopts the snapshot's state as the live state.
func (s *Store) replace(c *Store) {
	*s = *c
}
