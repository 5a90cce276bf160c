package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction, handing
// them repositories bound to that transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with tx-bound repos, and commits.
// Any error from fn (or the commit) rolls everything back.
func (r *TxRunner) Run(ctx context.Context, fn func(inventory.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := inventory.TxRepos{
		Ingredients: NewIngredientRepository(tx),
		Variants:    NewVariantRepository(tx),
		Purchases:   NewPurchaseRepository(tx),
		Lots:        NewLotRepository(tx),
		Recipes:     NewRecipeRepository(tx),
		Productions: NewProductionRepository(tx),
		Depletions:  NewDepletionRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
