package memory

import (
	"context"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner gives the memory store transactional semantics: the callback
// works on a snapshot, and only a nil return swaps the snapshot in as the
// live state. An error discards the snapshot, leaving the store untouched.
type TxRunner struct {
	store *Store
}

// NewTxRunner builds the runner over the store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run executes fn against a snapshot of the store, committing on success.
func (r *TxRunner) Run(ctx context.Context, fn func(inventory.TxRepos) error) error {
	snapshot := r.store.clone()
	if err := fn(snapshot.Repos()); err != nil {
		return err
	}
	r.store.replace(snapshot)
	return nil
}
