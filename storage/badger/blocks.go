package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/storage"
)

// blockRepository is a BadgerDB-backed block cache.
type blockRepository struct {
	backend *Backend
	logger  *slog.Logger
}

// NewBlockRepository creates a block repository on top of an open backend.
func NewBlockRepository(backend *Backend) (storage.BlockRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &blockRepository{
		backend: backend,
		logger:  slog.Default(),
	}, nil
}

// GetBlocks retrieves the cached block sequence for a content key.
func (r *blockRepository) GetBlocks(ctx context.Context, key core.ID) ([]core.TextBlock, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var blocks []core.TextBlock
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeBlockKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			blocks, err = storage.UnmarshalBlocks(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// PutBlocks stores a block sequence under a content key.
func (r *blockRepository) PutBlocks(ctx context.Context, key core.ID, blocks []core.TextBlock) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeBlockKey(key), storage.MarshalBlocks(blocks)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the repository. The underlying backend is shared and must be
// closed by its owner.
func (r *blockRepository) Close() error {
	return nil
}
