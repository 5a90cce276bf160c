package inventory

import (
	"context"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
)

// TxRepos bundles the repositories a transactional callback may touch, all
// bound to the same transaction. Passing the bundle makes the atomicity
// boundary explicit in the signature: everything done through it commits or
// rolls back together.
type TxRepos struct {
	Ingredients repository.IngredientRepository
	Variants    repository.VariantRepository
	Purchases   repository.PurchaseRepository
	Lots        repository.LotRepository
	Recipes     repository.RecipeRepository
	Productions repository.ProductionRepository
	Depletions  repository.DepletionRepository
}

// TxRunner executes a callback inside one transaction, handing it repos
// bound to that transaction. An error from the callback rolls everything
// back; otherwise the transaction commits.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
