package analyze

import (
	"sort"
	"strings"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/registry"
)

// refinedWindowChars is how much surrounding text the generalized resolver
// gathers around a representative block before capping.
const refinedWindowChars = 600

// sectionGroup accumulates the blocks of one (document, content type) pair.
type sectionGroup struct {
	docIndex    int
	document    string
	contentType string
	total       int
	rep         core.TextBlock
	repScore    int
	repIndex    int // representative's index within the document's blocks
}

// buildQuery derives the keyword set for a job description: lower-cased
// tokens minus stop words, plus any multi-word vocabulary phrase that
// occurs in the job text.
func buildQuery(personaRole, jobDescription string, vocab *registry.Vocabulary) core.PersonaQuery {
	keywords := tokenize(jobDescription)

	jobLower := strings.ToLower(jobDescription)
	seen := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		seen[keyword] = true
	}
	for _, entry := range vocab.Entries {
		for _, phrase := range entry.Phrases {
			lower := strings.ToLower(phrase)
			if strings.Contains(lower, " ") && strings.Contains(jobLower, lower) && !seen[lower] {
				keywords = append(keywords, lower)
				seen[lower] = true
			}
		}
	}

	return core.PersonaQuery{
		PersonaRole:    personaRole,
		JobDescription: jobDescription,
		Keywords:       keywords,
	}
}

// resolveGeneralized scores every text block against the persona's
// vocabulary and assembles the top scoring (document, content type) groups
// into ranked sections.
//
// A block's score against a content type is the number of distinct
// vocabulary phrases occurring in its text; its best content type is the
// highest scoring one, ties going to the earlier vocabulary declaration.
// Blocks containing a job keyword get a uniform +1 boost, which cannot
// change the best-type choice but promotes job-relevant groups in the final
// ranking. Zero qualifying blocks is a valid outcome and yields empty
// results.
func (a *Analyzer) resolveGeneralized(docs []*core.Document, personaRole, jobDescription string) ([]core.Section, []core.SubsectionAnalysis) {
	vocab := a.registry.VocabularyFor(personaRole)
	query := buildQuery(personaRole, jobDescription, vocab)

	groups := make(map[string]*sectionGroup)
	var order []string // group keys in first-seen order, for stable iteration

	for docIndex, doc := range docs {
		for blockIndex := range doc.Blocks {
			block := &doc.Blocks[blockIndex]
			text := strings.ToLower(block.Text)

			bestType := ""
			bestScore := 0
			for _, entry := range vocab.Entries {
				score := countDistinct(text, entry.Phrases)
				if score > bestScore {
					bestType = entry.ContentType
					bestScore = score
				}
			}
			if bestScore == 0 {
				continue
			}

			blockScore := bestScore
			if containsAny(text, query.Keywords) {
				blockScore++
			}

			key := doc.Filename + "\x00" + bestType
			group, ok := groups[key]
			if !ok {
				group = &sectionGroup{
					docIndex:    docIndex,
					document:    doc.Filename,
					contentType: bestType,
					rep:         *block,
					repScore:    blockScore,
					repIndex:    blockIndex,
				}
				groups[key] = group
				order = append(order, key)
			}
			group.total += blockScore
			if blockScore > group.repScore {
				group.rep = *block
				group.repScore = blockScore
				group.repIndex = blockIndex
			}
		}
	}

	ranked := make([]*sectionGroup, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, groups[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		if ranked[i].docIndex != ranked[j].docIndex {
			return ranked[i].docIndex < ranked[j].docIndex
		}
		if ranked[i].rep.Page != ranked[j].rep.Page {
			return ranked[i].rep.Page < ranked[j].rep.Page
		}
		return ranked[i].repIndex < ranked[j].repIndex
	})

	if len(ranked) > a.topK {
		ranked = ranked[:a.topK]
	}

	sections := make([]core.Section, 0, len(ranked))
	subsections := make([]core.SubsectionAnalysis, 0, len(ranked))
	for i, group := range ranked {
		sections = append(sections, core.Section{
			Document:       group.document,
			SectionTitle:   group.rep.Text,
			ImportanceRank: i + 1,
			PageNumber:     group.rep.Page,
		})
		subsections = append(subsections, core.SubsectionAnalysis{
			Document:    group.document,
			RefinedText: a.refinedText(docs[group.docIndex], group),
			PageNumber:  group.rep.Page,
		})
	}
	return sections, subsections
}

// refinedText builds the excerpt for a section: the representative block's
// text followed by subsequent blocks on the same page until the window is
// full, capped to refinedTextLimit characters.
func (a *Analyzer) refinedText(doc *core.Document, group *sectionGroup) string {
	var window strings.Builder
	window.WriteString(group.rep.Text)

	for i := group.repIndex + 1; i < len(doc.Blocks) && window.Len() < refinedWindowChars; i++ {
		block := &doc.Blocks[i]
		if block.Page != group.rep.Page {
			break
		}
		window.WriteString(" ")
		window.WriteString(block.Text)
	}

	text := window.String()
	if len(text) <= refinedTextLimit {
		return text
	}

	chunks, err := a.splitter.SplitText(text)
	if err != nil || len(chunks) == 0 {
		a.logger.Warn("refined text split failed, truncating", "err", err)
		return text[:refinedTextLimit]
	}
	return chunks[0]
}
