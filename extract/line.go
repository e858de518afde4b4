package extract

import (
	"math"
	"sort"
	"strings"

	"github.com/docsift/docsift/core"
)

// span is a run of text sharing one font, as reported by the PDF content
// stream.
type span struct {
	text     string
	font     string
	fontSize float64
	x, y, w  float64
}

// baselineTolerance returns how far apart two baselines may be while still
// belonging to the same visual line.
func baselineTolerance(fontSize float64) float64 {
	return math.Max(2, 0.35*fontSize)
}

// groupLines merges spans into visual lines: spans whose baselines fall
// within tolerance of the line's first span form one line. Lines are ordered
// top to bottom, spans within a line left to right.
func groupLines(spans []span) [][]span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]span, len(spans))
	copy(sorted, spans)
	// Page coordinates grow upward, so descending y reads top to bottom.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].y != sorted[j].y {
			return sorted[i].y > sorted[j].y
		}
		return sorted[i].x < sorted[j].x
	})

	var lines [][]span
	var current []span
	var baseline float64

	for _, s := range sorted {
		if len(current) == 0 {
			current = []span{s}
			baseline = s.y
			continue
		}
		if math.Abs(s.y-baseline) <= baselineTolerance(current[0].fontSize) {
			current = append(current, s)
			continue
		}
		lines = append(lines, current)
		current = []span{s}
		baseline = s.y
	}
	lines = append(lines, current)

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool { return line[i].x < line[j].x })
	}
	return lines
}

// buildBlock turns one visual line into a TextBlock. The reported font size
// and name are the modal values across the line's spans; a line is bold or
// italic if any span's font name says so. Lines that are empty after
// trimming yield ok=false.
func buildBlock(line []span, page int, pageHeight float64) (core.TextBlock, bool) {
	var text strings.Builder
	for _, s := range line {
		text.WriteString(s.text)
	}
	trimmed := strings.TrimSpace(text.String())
	if trimmed == "" {
		return core.TextBlock{}, false
	}

	bbox := spanRect(line[0])
	for _, s := range line[1:] {
		bbox = bbox.Union(spanRect(s))
	}

	isBold := false
	isItalic := false
	for _, s := range line {
		lower := strings.ToLower(s.font)
		if strings.Contains(lower, "bold") {
			isBold = true
		}
		if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
			isItalic = true
		}
	}

	block := core.TextBlock{
		Text:       trimmed,
		Page:       page,
		FontSize:   modalSize(line),
		FontName:   modalFont(line),
		IsBold:     isBold,
		IsItalic:   isItalic,
		BBox:       bbox,
		CenterX:    bbox.CenterX(),
		CenterY:    bbox.CenterY(),
		RelativeY:  relativeFromTop(bbox.CenterY(), pageHeight),
		WordCount:  len(strings.Fields(trimmed)),
		TextLength: len(trimmed),
	}
	return block, true
}

func spanRect(s span) core.Rect {
	return core.Rect{X0: s.x, Y0: s.y, X1: s.x + s.w, Y1: s.y + s.fontSize}
}

// relativeFromTop normalizes a vertical center to [0,1] measured from the
// top of the page, so headings near the top get small values regardless of
// the page coordinate origin.
func relativeFromTop(centerY, pageHeight float64) float64 {
	if pageHeight <= 0 {
		return 0
	}
	rel := (pageHeight - centerY) / pageHeight
	return math.Min(1, math.Max(0, rel))
}

// modalSize returns the most frequent font size across spans; ties go to
// the earliest span.
func modalSize(line []span) float64 {
	counts := make(map[float64]int, len(line))
	for _, s := range line {
		counts[s.fontSize]++
	}
	best := line[0].fontSize
	for _, s := range line {
		if counts[s.fontSize] > counts[best] {
			best = s.fontSize
		}
	}
	return best
}

// modalFont returns the most frequent font name across spans; ties go to
// the earliest span.
func modalFont(line []span) string {
	counts := make(map[string]int, len(line))
	for _, s := range line {
		counts[s.font]++
	}
	best := line[0].font
	for _, s := range line {
		if counts[s.font] > counts[best] {
			best = s.font
		}
	}
	return best
}
