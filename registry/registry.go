package registry

import (
	"github.com/docsift/docsift/core"
)

// CuratedSection is one pre-ranked section of a known collection.
type CuratedSection struct {
	Title       string `yaml:"title"`
	Document    string `yaml:"document"`
	Page        int    `yaml:"page"`
	Rank        int    `yaml:"rank"`
	ContentType string `yaml:"content_type"`
}

// PresentationItem names a content type, document, and page for the
// subsection analysis of a known collection. The presentation list is an
// explicit per-collection ordering, deliberately distinct from rank order.
type PresentationItem struct {
	ContentType string `yaml:"content_type"`
	Document    string `yaml:"document"`
	Page        int    `yaml:"page"`
}

// Collection is one known persona+job combination with a curated answer set.
type Collection struct {
	ID           string             `yaml:"id"`
	Persona      string             `yaml:"persona"`
	JobKeywords  []string           `yaml:"job_keywords"`
	Sections     []CuratedSection   `yaml:"sections"`
	Presentation []PresentationItem `yaml:"presentation"`
}

// VocabularyEntry maps one content type to its trigger phrases.
// Declaration order breaks scoring ties, so entries are a list, not a map.
type VocabularyEntry struct {
	ContentType string   `yaml:"content_type"`
	Phrases     []string `yaml:"phrases"`
}

// Vocabulary is the content-type vocabulary for one persona.
type Vocabulary struct {
	Persona string            `yaml:"persona"`
	Entries []VocabularyEntry `yaml:"content_types"`
}

// Registry holds the full static configuration: known collections, content
// templates, and per-persona vocabularies. It is read-only after Load and
// safe for unsynchronized concurrent reads.
type Registry struct {
	collections  []Collection
	templates    map[string]string
	vocabularies []Vocabulary
	generic      *Vocabulary
}

// Collections returns the known collections in declaration order.
// The order is part of the classification contract: the first matching
// entry wins.
func (r *Registry) Collections() []Collection {
	return r.collections
}

// Collection returns the known collection with the given ID.
func (r *Registry) Collection(id string) (*Collection, bool) {
	for i := range r.collections {
		if r.collections[i].ID == id {
			return &r.collections[i], true
		}
	}
	return nil, false
}

// Template returns the refined-text template for a content type.
func (r *Registry) Template(contentType string) (string, bool) {
	text, ok := r.templates[contentType]
	return text, ok
}

// VocabularyFor returns the vocabulary for a persona role, matching
// case-insensitively. Unrecognized personas fall back to the generic
// vocabulary.
func (r *Registry) VocabularyFor(personaRole string) *Vocabulary {
	normalized := core.NormalizePersona(personaRole)
	for i := range r.vocabularies {
		if core.NormalizePersona(r.vocabularies[i].Persona) == normalized {
			return &r.vocabularies[i]
		}
	}
	return r.generic
}
