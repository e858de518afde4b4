package extract

import (
	"testing"

	"github.com/docsift/docsift/core"
)

func TestGroupLinesMergesByBaseline(t *testing.T) {
	spans := []span{
		{text: "Coastal ", font: "Helvetica-Bold", fontSize: 16, x: 72, y: 700, w: 60},
		{text: "Adventures", font: "Helvetica-Bold", fontSize: 16, x: 132, y: 701, w: 80},
		{text: "Beach hopping", font: "Helvetica", fontSize: 11, x: 72, y: 680, w: 90},
	}

	lines := groupLines(spans)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if len(lines[0]) != 2 {
		t.Fatalf("Expected 2 spans in first line, got %d", len(lines[0]))
	}
	if lines[0][0].text != "Coastal " {
		t.Fatalf("Expected left span first, got %q", lines[0][0].text)
	}
	if lines[1][0].text != "Beach hopping" {
		t.Fatalf("Expected second line below first, got %q", lines[1][0].text)
	}
}

func TestGroupLinesOrdersTopToBottom(t *testing.T) {
	// Input deliberately shuffled; page y grows upward.
	spans := []span{
		{text: "bottom", fontSize: 10, x: 72, y: 100, w: 40},
		{text: "top", fontSize: 10, x: 72, y: 700, w: 40},
		{text: "middle", fontSize: 10, x: 72, y: 400, w: 40},
	}

	lines := groupLines(spans)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	want := []string{"top", "middle", "bottom"}
	for i, line := range lines {
		if line[0].text != want[i] {
			t.Fatalf("Line %d: expected %q, got %q", i, want[i], line[0].text)
		}
	}
}

func TestGroupLinesEmpty(t *testing.T) {
	if lines := groupLines(nil); lines != nil {
		t.Fatalf("Expected nil for no spans, got %v", lines)
	}
}

func TestBuildBlock(t *testing.T) {
	line := []span{
		{text: "Culinary ", font: "Times-Bold", fontSize: 14, x: 72, y: 650, w: 70},
		{text: "Experiences", font: "Times-Bold", fontSize: 14, x: 142, y: 650, w: 90},
	}

	block, ok := buildBlock(line, 6, 792)
	if !ok {
		t.Fatal("Expected a block")
	}
	if block.Text != "Culinary Experiences" {
		t.Fatalf("Expected concatenated trimmed text, got %q", block.Text)
	}
	if block.Page != 6 {
		t.Fatalf("Expected page 6, got %d", block.Page)
	}
	if !block.IsBold {
		t.Fatal("Expected bold from font name")
	}
	if block.IsItalic {
		t.Fatal("Did not expect italic")
	}
	if block.WordCount != 2 {
		t.Fatalf("Expected 2 words, got %d", block.WordCount)
	}
	if block.TextLength != len("Culinary Experiences") {
		t.Fatalf("Expected text length %d, got %d", len("Culinary Experiences"), block.TextLength)
	}

	want := core.Rect{X0: 72, Y0: 650, X1: 232, Y1: 664}
	if block.BBox != want {
		t.Fatalf("Expected bbox %+v, got %+v", want, block.BBox)
	}
	if block.RelativeY < 0 || block.RelativeY > 1 {
		t.Fatalf("RelativeY out of range: %f", block.RelativeY)
	}
	// 650 is near the top of a 792pt page, so the relative position is small.
	if block.RelativeY > 0.3 {
		t.Fatalf("Expected top-of-page position, got %f", block.RelativeY)
	}
}

func TestBuildBlockDiscardsEmptyLines(t *testing.T) {
	line := []span{{text: "   ", font: "Helvetica", fontSize: 10, x: 72, y: 650, w: 10}}
	if _, ok := buildBlock(line, 1, 792); ok {
		t.Fatal("Expected whitespace-only line to be discarded")
	}
}

func TestBuildBlockItalicDetection(t *testing.T) {
	tests := []struct {
		font   string
		italic bool
	}{
		{"Helvetica-Oblique", true},
		{"Times-Italic", true},
		{"Times-BoldItalic", true},
		{"Helvetica", false},
	}
	for _, tt := range tests {
		line := []span{{text: "x", font: tt.font, fontSize: 10, x: 0, y: 0, w: 5}}
		block, ok := buildBlock(line, 1, 792)
		if !ok {
			t.Fatalf("%s: expected a block", tt.font)
		}
		if block.IsItalic != tt.italic {
			t.Fatalf("%s: expected italic=%v", tt.font, tt.italic)
		}
	}
}

func TestModalFontAndSize(t *testing.T) {
	line := []span{
		{text: "a", font: "Helvetica", fontSize: 12},
		{text: "b", font: "Helvetica-Bold", fontSize: 14},
		{text: "c", font: "Helvetica", fontSize: 12},
	}
	if got := modalFont(line); got != "Helvetica" {
		t.Fatalf("Expected Helvetica, got %q", got)
	}
	if got := modalSize(line); got != 12 {
		t.Fatalf("Expected 12, got %f", got)
	}

	// Ties resolve to the earliest span.
	tie := []span{
		{text: "a", font: "Courier", fontSize: 9},
		{text: "b", font: "Times", fontSize: 11},
	}
	if got := modalFont(tie); got != "Courier" {
		t.Fatalf("Expected first span to win tie, got %q", got)
	}
	if got := modalSize(tie); got != 9 {
		t.Fatalf("Expected first span to win tie, got %f", got)
	}
}

func TestRelativeFromTop(t *testing.T) {
	tests := []struct {
		name       string
		centerY    float64
		pageHeight float64
		want       float64
	}{
		{"top of page", 792, 792, 0},
		{"bottom of page", 0, 792, 1},
		{"middle", 396, 792, 0.5},
		{"above page top clamps", 900, 792, 0},
		{"zero height", 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeFromTop(tt.centerY, tt.pageHeight); got != tt.want {
				t.Fatalf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}
