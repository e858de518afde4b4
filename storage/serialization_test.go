package storage

import (
	"errors"
	"testing"

	"github.com/docsift/docsift/core"
)

func sampleBlocks() []core.TextBlock {
	return []core.TextBlock{
		{
			Text:       "Coastal Adventures",
			Page:       2,
			FontSize:   16,
			FontName:   "Helvetica-Bold",
			IsBold:     true,
			BBox:       core.Rect{X0: 72, Y0: 700, X1: 260, Y1: 716},
			CenterX:    166,
			CenterY:    708,
			RelativeY:  0.106,
			WordCount:  2,
			TextLength: 18,
		},
		{
			Text:       "Beach hopping along the Mediterranean coast.",
			Page:       2,
			FontSize:   11,
			FontName:   "Helvetica",
			BBox:       core.Rect{X0: 72, Y0: 680, X1: 400, Y1: 691},
			CenterX:    236,
			CenterY:    685.5,
			RelativeY:  0.134,
			WordCount:  6,
			TextLength: 44,
		},
	}
}

func TestIDRoundTrip(t *testing.T) {
	id := core.IDFromContent([]byte("some pdf bytes"))

	data := MarshalID(id)
	back, err := UnmarshalID(data)
	if err != nil {
		t.Fatalf("Failed to unmarshal ID: %v", err)
	}
	if back != id {
		t.Fatalf("Expected ID %d, got %d", id, back)
	}
}

func TestBlocksRoundTrip(t *testing.T) {
	blocks := sampleBlocks()

	data := MarshalBlocks(blocks)
	back, err := UnmarshalBlocks(data)
	if err != nil {
		t.Fatalf("Failed to unmarshal blocks: %v", err)
	}

	if len(back) != len(blocks) {
		t.Fatalf("Expected %d blocks, got %d", len(blocks), len(back))
	}
	for i := range blocks {
		if back[i] != blocks[i] {
			t.Fatalf("Block %d mismatch: %+v != %+v", i, back[i], blocks[i])
		}
	}
}

func TestEmptyBlocksRoundTrip(t *testing.T) {
	data := MarshalBlocks(nil)
	back, err := UnmarshalBlocks(data)
	if err != nil {
		t.Fatalf("Failed to unmarshal empty blocks: %v", err)
	}
	if len(back) != 0 {
		t.Fatalf("Expected no blocks, got %d", len(back))
	}
}

func TestUnmarshalCorruptData(t *testing.T) {
	_, err := UnmarshalBlocks([]byte{0xff})
	if err == nil {
		t.Fatal("Expected error for corrupt data")
	}
	if !errors.Is(err, ErrSerializationFailed) {
		t.Fatalf("Expected ErrSerializationFailed, got %v", err)
	}
}
