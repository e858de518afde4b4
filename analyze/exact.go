package analyze

import (
	"fmt"

	"github.com/docsift/docsift/core"
)

// resolveExact replicates a known collection's curated sections verbatim and
// builds subsections from the collection's presentation order.
//
// The presentation order is an explicit per-collection permutation of
// content types, deliberately distinct from rank order. Content types with
// no template are skipped silently.
func (a *Analyzer) resolveExact(collectionID string) ([]core.Section, []core.SubsectionAnalysis, error) {
	col, ok := a.registry.Collection(collectionID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collectionID)
	}

	sections := make([]core.Section, 0, len(col.Sections))
	for _, curated := range col.Sections {
		sections = append(sections, core.Section{
			Document:       curated.Document,
			SectionTitle:   curated.Title,
			ImportanceRank: curated.Rank,
			PageNumber:     curated.Page,
		})
	}

	subsections := make([]core.SubsectionAnalysis, 0, len(col.Presentation))
	for _, item := range col.Presentation {
		template, ok := a.registry.Template(item.ContentType)
		if !ok {
			continue
		}
		subsections = append(subsections, core.SubsectionAnalysis{
			Document:    item.Document,
			RefinedText: template,
			PageNumber:  item.Page,
		})
	}

	return sections, subsections, nil
}
