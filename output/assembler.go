package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/docsift/docsift/core"
)

// Assembler builds validated results from resolved sections and writes them
// as JSON. The zero value is not usable, construct with NewAssembler.
type Assembler struct {
	now func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAssembler creates an assembler stamping results with the current UTC time.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble combines metadata, sections, and subsection analyses into a
// Result and validates it against the output contract. The metadata lists
// every input document, including ones no section references. The
// processing timestamp is taken at assembly time, in UTC.
func (a *Assembler) Assemble(inputDocuments []string, personaRole, jobDescription string, sections []core.Section, subsections []core.SubsectionAnalysis) (*core.Result, error) {
	if sections == nil {
		sections = []core.Section{}
	}
	if subsections == nil {
		subsections = []core.SubsectionAnalysis{}
	}

	result := &core.Result{
		Metadata: core.Metadata{
			InputDocuments:      inputDocuments,
			Persona:             personaRole,
			JobToBeDone:         jobDescription,
			ProcessingTimestamp: a.now().UTC().Format(time.RFC3339),
		},
		ExtractedSections:  sections,
		SubsectionAnalysis: subsections,
	}

	if err := core.ValidateResult(result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContractViolation, err)
	}
	return result, nil
}

// Encode writes a result as indented JSON.
func Encode(w io.Writer, result *core.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return nil
}

// Marshal renders a result as indented JSON bytes.
func Marshal(result *core.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
