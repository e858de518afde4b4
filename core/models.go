package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from raw content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(data []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Rect is an axis-aligned rectangle in page coordinates.
// X0,Y0 is the lower-left corner and X1,Y1 the upper-right corner.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: min(r.X0, other.X0),
		Y0: min(r.Y0, other.Y0),
		X1: max(r.X1, other.X1),
		Y1: max(r.Y1, other.Y1),
	}
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return (r.X0 + r.X1) / 2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return (r.Y0 + r.Y1) / 2 }

// TextBlock is a single visual line of text extracted from a document page,
// with the geometry and font metadata needed for layout heuristics.
// Blocks are created once during extraction and never mutated afterward.
type TextBlock struct {
	Text       string
	Page       int // 1-based
	FontSize   float64
	FontName   string
	IsBold     bool
	IsItalic   bool
	BBox       Rect
	CenterX    float64
	CenterY    float64
	RelativeY  float64 // vertical position from the top of the page, in [0,1]
	WordCount  int
	TextLength int
}

// Document is one input document with its extracted text blocks,
// ordered by page and then by line position within the page.
type Document struct {
	Filename string
	Blocks   []TextBlock
}

// PersonaQuery is a persona role and job description together with the
// keyword set derived from the job text.
type PersonaQuery struct {
	PersonaRole    string
	JobDescription string
	Keywords       []string // lower-cased tokens and vocabulary phrases from the job
}

// Section is one ranked section of the final result.
type Section struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"` // 1-based, contiguous within a result
	PageNumber     int    `json:"page_number"`
}

// SubsectionAnalysis carries the refined text excerpt attached to a section.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Metadata describes the inputs a result was produced from.
// ProcessingTimestamp is kept as a string so serialization round-trips losslessly.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// Result is the canonical output shape: metadata, ranked sections, and
// refined text entries. ExtractedSections are ordered by importance rank;
// SubsectionAnalysis follows its own presentation order, which may differ.
type Result struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []Section            `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

// NormalizePersona lower-cases and trims a persona role for matching.
func NormalizePersona(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
