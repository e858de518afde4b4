package extract

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/storage"
)

// Resolver maps a document filename to its bytes. The external loader owns
// where documents actually live.
type Resolver interface {
	Open(filename string) ([]byte, error)
}

// DirResolver resolves filenames against a directory on disk.
type DirResolver string

// Open reads the named document from the directory.
func (d DirResolver) Open(filename string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), filename))
}

// Batch extracts a set of documents concurrently over a bounded worker
// pool. Each worker exclusively owns one document's parse handle for the
// duration of extraction; per-document failures never fail the batch.
type Batch struct {
	extractor *Extractor
	pool      *ants.Pool
	cache     storage.BlockRepository
	logger    *slog.Logger
}

// Option configures a Batch.
type Option func(*Batch) error

// WithPoolSize sets the worker pool size for concurrent extraction.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Batch) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithCache sets a block cache consulted before parsing and updated after.
// Default is no cache.
func WithCache(cache storage.BlockRepository) Option {
	return func(b *Batch) error {
		b.cache = cache
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Batch) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		b.extractor = New(logger)
		return nil
	}
}

// NewBatch creates a batch extractor.
func NewBatch(opts ...Option) (*Batch, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Batch{
		extractor: New(slog.Default()),
		pool:      pool,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			b.Release()
			return nil, err
		}
	}
	return b, nil
}

// ExtractAll extracts every named document through the worker pool and
// returns the results in input order.
//
// A document the resolver cannot open is excluded from the result with a
// warning; a document that opens but fails to parse contributes an empty
// block sequence. Neither case affects sibling documents.
func (b *Batch) ExtractAll(ctx context.Context, resolver Resolver, filenames []string) []*core.Document {
	if resolver == nil || len(filenames) == 0 {
		return nil
	}

	slots := make([]*core.Document, len(filenames))
	var wg sync.WaitGroup

	for i, filename := range filenames {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			slots[i] = b.extractOne(ctx, resolver, filename)
		}
		if err := b.pool.Submit(task); err != nil {
			// Pool unavailable; run on the caller's goroutine instead.
			b.logger.Warn("worker pool submit failed, extracting inline", "err", err)
			task()
		}
	}
	wg.Wait()

	docs := make([]*core.Document, 0, len(filenames))
	for _, doc := range slots {
		if doc != nil {
			docs = append(docs, doc)
		}
	}
	return docs
}

// extractOne resolves, extracts, and caches a single document.
// Returns nil when the document cannot be opened at all.
func (b *Batch) extractOne(ctx context.Context, resolver Resolver, filename string) *core.Document {
	data, err := resolver.Open(filename)
	if err != nil {
		b.logger.Warn("document not found, excluding from extraction",
			"document", filename, "err", err)
		return nil
	}

	key := core.IDFromContent(data)
	if b.cache != nil {
		blocks, err := b.cache.GetBlocks(ctx, key)
		if err == nil {
			b.logger.Debug("block cache hit", "document", filename, "blocks", len(blocks))
			return &core.Document{Filename: filename, Blocks: blocks}
		}
		if !errors.Is(err, storage.ErrNotFound) {
			b.logger.Warn("block cache read failed", "document", filename, "err", err)
		}
	}

	doc, err := b.extractor.Extract(data, filename)
	if err != nil {
		// Recoverable: the document contributes an empty block sequence.
		b.logger.Warn("document parse failed, substituting empty block sequence",
			"document", filename, "err", err)
		return doc
	}

	if b.cache != nil {
		if err := b.cache.PutBlocks(ctx, key, doc.Blocks); err != nil {
			b.logger.Warn("block cache write failed", "document", filename, "err", err)
		}
	}
	return doc
}

// Release releases the worker pool.
// The batch should not be used after calling Release.
func (b *Batch) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
