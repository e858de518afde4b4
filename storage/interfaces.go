package storage

import (
	"context"

	"github.com/docsift/docsift/core"
)

// BlockRepository caches extracted text blocks keyed by document content
// hash, so unchanged documents are not re-parsed across batch runs.
// Implementations must be thread-safe and support concurrent access.
type BlockRepository interface {
	// GetBlocks retrieves the cached block sequence for a content key.
	// Returns ErrNotFound if no entry exists.
	GetBlocks(ctx context.Context, key core.ID) ([]core.TextBlock, error)

	// PutBlocks stores a block sequence under a content key, replacing any
	// existing entry.
	PutBlocks(ctx context.Context, key core.ID, blocks []core.TextBlock) error

	// Close closes the storage backend and releases resources.
	Close() error
}
