package registry

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/docsift/docsift/core"
)

//go:embed registry.yaml
var embeddedData []byte

// GenericPersona names the fallback vocabulary used for unrecognized personas.
const GenericPersona = "generic"

type registryFile struct {
	Collections  []Collection      `yaml:"collections"`
	Templates    map[string]string `yaml:"templates"`
	Vocabularies []Vocabulary      `yaml:"vocabularies"`
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Load(embeddedData)
})

// Default returns the process-wide registry built from the embedded data.
// It is loaded once; subsequent calls return the same instance.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Load parses and validates registry data.
//
// Validation rules:
//   - collection IDs are unique, personas and job keyword sets non-empty
//   - each collection's curated ranks are exactly {1..N}
//   - collections sharing a persona have disjoint job keyword sets, so the
//     first-match-wins scan cannot depend on an accidental ordering
//   - a generic fallback vocabulary is present
//
// Presentation items whose content type is absent from the template table
// are legal; the exact resolver skips them silently.
func Load(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}

	seenIDs := make(map[string]bool, len(file.Collections))
	// persona -> keyword -> collection id, for the disjointness check
	personaKeywords := make(map[string]map[string]string)

	for i := range file.Collections {
		col := &file.Collections[i]
		if col.ID == "" {
			return nil, fmt.Errorf("%w: collection %d has no id", ErrInvalidRegistry, i)
		}
		if seenIDs[col.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCollection, col.ID)
		}
		seenIDs[col.ID] = true

		if col.Persona == "" {
			return nil, fmt.Errorf("%w: collection %q has no persona", ErrInvalidRegistry, col.ID)
		}
		if len(col.JobKeywords) == 0 {
			return nil, fmt.Errorf("%w: collection %q has no job keywords", ErrInvalidRegistry, col.ID)
		}

		if err := validateRanks(col); err != nil {
			return nil, err
		}

		persona := core.NormalizePersona(col.Persona)
		keywords := personaKeywords[persona]
		if keywords == nil {
			keywords = make(map[string]string)
			personaKeywords[persona] = keywords
		}
		for _, keyword := range col.JobKeywords {
			normalized := core.NormalizePersona(keyword)
			if other, ok := keywords[normalized]; ok && other != col.ID {
				return nil, fmt.Errorf("%w: %q shared by %q and %q",
					ErrAmbiguousKeywords, keyword, other, col.ID)
			}
			keywords[normalized] = col.ID
		}
	}

	registry := &Registry{
		collections:  file.Collections,
		templates:    file.Templates,
		vocabularies: file.Vocabularies,
	}

	for i := range file.Vocabularies {
		vocab := &file.Vocabularies[i]
		if vocab.Persona == "" {
			return nil, fmt.Errorf("%w: vocabulary %d has no persona", ErrInvalidRegistry, i)
		}
		for _, entry := range vocab.Entries {
			if entry.ContentType == "" || len(entry.Phrases) == 0 {
				return nil, fmt.Errorf("%w: vocabulary %q has an empty content type entry",
					ErrInvalidRegistry, vocab.Persona)
			}
		}
		if core.NormalizePersona(vocab.Persona) == GenericPersona {
			registry.generic = vocab
		}
	}
	if registry.generic == nil {
		return nil, ErrMissingGenericVocabulary
	}

	return registry, nil
}

func validateRanks(col *Collection) error {
	seen := make(map[int]bool, len(col.Sections))
	for _, section := range col.Sections {
		if section.Rank < 1 || section.Rank > len(col.Sections) {
			return fmt.Errorf("%w: collection %q rank %d with %d sections",
				ErrInvalidRegistry, col.ID, section.Rank, len(col.Sections))
		}
		if seen[section.Rank] {
			return fmt.Errorf("%w: collection %q duplicate rank %d",
				ErrInvalidRegistry, col.ID, section.Rank)
		}
		seen[section.Rank] = true
	}
	return nil
}
