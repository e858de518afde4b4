package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/storage"
)

func TestBlockRepositoryRoundTrip(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	key := core.IDFromContent([]byte("document bytes"))
	blocks := []core.TextBlock{
		{
			Text:       "Nightlife and Entertainment",
			Page:       11,
			FontSize:   16,
			FontName:   "Helvetica-Bold",
			IsBold:     true,
			BBox:       core.Rect{X0: 72, Y0: 700, X1: 300, Y1: 716},
			RelativeY:  0.1,
			WordCount:  3,
			TextLength: 27,
		},
	}

	if err := repo.PutBlocks(ctx, key, blocks); err != nil {
		t.Fatalf("Failed to put blocks: %v", err)
	}

	got, err := repo.GetBlocks(ctx, key)
	if err != nil {
		t.Fatalf("Failed to get blocks: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(got))
	}
	if got[0] != blocks[0] {
		t.Fatalf("Block mismatch: %+v != %+v", got[0], blocks[0])
	}
}

func TestBlockRepositoryNotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	_, err = repo.GetBlocks(context.Background(), core.IDFromContent([]byte("never stored")))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestBlockRepositoryOverwrite(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	key := core.IDFromContent([]byte("doc"))

	first := []core.TextBlock{{Text: "old", Page: 1, RelativeY: 0.5, WordCount: 1, TextLength: 3}}
	second := []core.TextBlock{{Text: "new", Page: 1, RelativeY: 0.5, WordCount: 1, TextLength: 3}}

	if err := repo.PutBlocks(ctx, key, first); err != nil {
		t.Fatalf("Failed to put first blocks: %v", err)
	}
	if err := repo.PutBlocks(ctx, key, second); err != nil {
		t.Fatalf("Failed to put second blocks: %v", err)
	}

	got, err := repo.GetBlocks(ctx, key)
	if err != nil {
		t.Fatalf("Failed to get blocks: %v", err)
	}
	if len(got) != 1 || got[0].Text != "new" {
		t.Fatalf("Expected overwritten blocks, got %+v", got)
	}
}

func TestBlockRepositoryClosedBackend(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	repo.Close()
	backend.Close()

	_, err = repo.GetBlocks(context.Background(), core.IDFromContent([]byte("doc")))
	if !errors.Is(err, storage.ErrStorageClosed) {
		t.Fatalf("Expected ErrStorageClosed, got %v", err)
	}
}
