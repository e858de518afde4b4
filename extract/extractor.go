package extract

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"

	"github.com/docsift/docsift/core"
)

// defaultPageHeight is used when a page carries no usable MediaBox.
// US Letter height in points.
const defaultPageHeight = 792.0

// Extractor converts PDF documents into ordered text blocks with geometry
// and font metadata.
type Extractor struct {
	logger *slog.Logger
}

// New creates an extractor. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract parses one document's bytes into a Document whose blocks preserve
// page order and top-to-bottom line order within each page.
//
// A page that cannot be parsed contributes no blocks and is logged; a
// document that cannot be opened at all returns an error together with a
// Document holding an empty block sequence, so callers can substitute it
// without aborting sibling documents.
func (e *Extractor) Extract(data []byte, filename string) (*core.Document, error) {
	doc := &core.Document{Filename: filename}

	reader, err := openReader(data)
	if err != nil {
		return doc, fmt.Errorf("%w: %s: %w", ErrParseFailed, filename, err)
	}

	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		blocks, err := e.extractPage(reader, pageNum)
		if err != nil {
			e.logger.Warn("skipping unparseable page",
				"document", filename, "page", pageNum, "err", err)
			continue
		}
		doc.Blocks = append(doc.Blocks, blocks...)
	}

	return doc, nil
}

// openReader opens a PDF reader over raw bytes. The underlying parser
// panics on some malformed cross-reference tables, so the panic is
// converted into an error here.
func openReader(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

// extractPage reads one page's spans and merges them into line blocks.
// The PDF content stream decoder panics on malformed input, so the panic is
// converted into a per-page error here.
func (e *Extractor) extractPage(reader *pdf.Reader, pageNum int) (blocks []core.TextBlock, err error) {
	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = fmt.Errorf("%w: page %d: %v", ErrParseFailed, pageNum, r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	spans := make([]span, 0, len(content.Text))
	for _, t := range content.Text {
		spans = append(spans, span{
			text:     t.S,
			font:     t.Font,
			fontSize: t.FontSize,
			x:        t.X,
			y:        t.Y,
			w:        t.W,
		})
	}
	if len(spans) == 0 {
		return nil, nil
	}

	height := pageHeight(page)
	for _, line := range groupLines(spans) {
		if block, ok := buildBlock(line, pageNum, height); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// since the box may be inherited from a parent node.
func pageHeight(page pdf.Page) float64 {
	node := page.V
	for !node.IsNull() {
		box := node.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			height := box.Index(3).Float64() - box.Index(1).Float64()
			if height > 0 {
				return height
			}
		}
		node = node.Key("Parent")
	}
	return defaultPageHeight
}
