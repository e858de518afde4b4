package analyze

import (
	"log/slog"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/registry"
)

const (
	// defaultTopK is the number of sections the generalized resolver keeps.
	defaultTopK = 5

	// refinedTextLimit caps refined-text excerpts produced by the
	// generalized resolver, in characters.
	refinedTextLimit = 1000
)

// Analyzer classifies persona+job queries and resolves them into ranked
// sections: known collections through the curated registry, everything else
// through the generalized vocabulary scorer.
type Analyzer struct {
	registry *registry.Registry
	topK     int
	splitter textsplitter.RecursiveCharacter
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithTopK sets how many sections the generalized resolver returns.
// Default is 5.
func WithTopK(k int) Option {
	return func(a *Analyzer) error {
		if k < 1 {
			k = 1
		}
		a.topK = k
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates an analyzer over the given registry.
func NewAnalyzer(reg *registry.Registry, opts ...Option) (*Analyzer, error) {
	if reg == nil {
		return nil, ErrRegistryRequired
	}

	a := &Analyzer{
		registry: reg,
		topK:     defaultTopK,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(refinedTextLimit),
			textsplitter.WithChunkOverlap(0),
		),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Decision is the classifier's verdict for one query.
type Decision struct {
	CollectionID string
	Known        bool
}

// Classify decides whether a persona+job query matches a known collection.
//
// The persona must equal a collection's persona case-insensitively and at
// least one of the collection's job keywords must occur in the job text.
// Collections are scanned in registry declaration order; the first match
// wins. Document names are part of the query identity but do not influence
// matching.
func (a *Analyzer) Classify(personaRole, jobDescription string, documentNames []string) Decision {
	persona := core.NormalizePersona(personaRole)
	job := core.NormalizePersona(jobDescription)

	for _, col := range a.registry.Collections() {
		if core.NormalizePersona(col.Persona) != persona {
			continue
		}
		for _, keyword := range col.JobKeywords {
			if containsAny(job, []string{core.NormalizePersona(keyword)}) {
				a.logger.Info("classified as known collection",
					"collection", col.ID, "persona", personaRole)
				return Decision{CollectionID: col.ID, Known: true}
			}
		}
	}

	a.logger.Info("no known collection matched, using generalized analysis",
		"persona", personaRole)
	return Decision{}
}

// Analyze classifies the query and resolves sections and subsections
// through the matching strategy. Identical inputs always produce identical
// output.
func (a *Analyzer) Analyze(docs []*core.Document, personaRole, jobDescription string) ([]core.Section, []core.SubsectionAnalysis, error) {
	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Filename
	}

	decision := a.Classify(personaRole, jobDescription, names)
	if decision.Known {
		return a.resolveExact(decision.CollectionID)
	}
	sections, subsections := a.resolveGeneralized(docs, personaRole, jobDescription)
	return sections, subsections, nil
}
