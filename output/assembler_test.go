package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/core"
)

var fixedTime = time.Date(2025, 7, 10, 15, 31, 22, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func testSections() ([]core.Section, []core.SubsectionAnalysis) {
	sections := []core.Section{
		{Document: "a.pdf", SectionTitle: "Coastal Adventures", ImportanceRank: 1, PageNumber: 2},
		{Document: "b.pdf", SectionTitle: "Culinary Experiences", ImportanceRank: 2, PageNumber: 6},
	}
	subsections := []core.SubsectionAnalysis{
		{Document: "b.pdf", RefinedText: "Cooking classes and tastings.", PageNumber: 6},
		{Document: "a.pdf", RefinedText: "Beach hopping along the coast.", PageNumber: 2},
	}
	return sections, subsections
}

func TestAssemble(t *testing.T) {
	a := NewAssembler(WithClock(fixedClock))
	sections, subsections := testSections()

	result, err := a.Assemble([]string{"a.pdf", "b.pdf", "unused.pdf"},
		"Travel Planner", "Plan a trip", sections, subsections)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.pdf", "b.pdf", "unused.pdf"}, result.Metadata.InputDocuments)
	assert.Equal(t, "Travel Planner", result.Metadata.Persona)
	assert.Equal(t, "Plan a trip", result.Metadata.JobToBeDone)
	assert.Equal(t, "2025-07-10T15:31:22Z", result.Metadata.ProcessingTimestamp)
	assert.Equal(t, sections, result.ExtractedSections)
	assert.Equal(t, subsections, result.SubsectionAnalysis)
}

func TestAssembleEmptySections(t *testing.T) {
	a := NewAssembler(WithClock(fixedClock))

	result, err := a.Assemble([]string{"a.pdf"}, "Analyst", "Find nothing", nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, result.ExtractedSections)
	assert.Empty(t, result.ExtractedSections)
	assert.NotNil(t, result.SubsectionAnalysis)
	assert.Empty(t, result.SubsectionAnalysis)
}

func TestAssembleRejectsContractViolations(t *testing.T) {
	a := NewAssembler(WithClock(fixedClock))
	sections, subsections := testSections()

	t.Run("unknown document", func(t *testing.T) {
		_, err := a.Assemble([]string{"a.pdf"}, "Travel Planner", "Plan a trip",
			sections, subsections)
		require.ErrorIs(t, err, ErrContractViolation)
		assert.ErrorIs(t, err, core.ErrUnknownDocument)
	})

	t.Run("broken ranks", func(t *testing.T) {
		bad := make([]core.Section, len(sections))
		copy(bad, sections)
		bad[1].ImportanceRank = 3
		_, err := a.Assemble([]string{"a.pdf", "b.pdf"}, "Travel Planner", "Plan a trip",
			bad, nil)
		require.ErrorIs(t, err, ErrContractViolation)
		assert.ErrorIs(t, err, core.ErrRanksNotContiguous)
	})

	t.Run("empty persona", func(t *testing.T) {
		_, err := a.Assemble([]string{"a.pdf", "b.pdf"}, "", "Plan a trip",
			sections, subsections)
		require.ErrorIs(t, err, ErrContractViolation)
		assert.ErrorIs(t, err, core.ErrEmptyField)
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	a := NewAssembler(WithClock(fixedClock))
	sections, subsections := testSections()

	result, err := a.Assemble([]string{"a.pdf", "b.pdf"},
		"Travel Planner", "Plan a trip", sections, subsections)
	require.NoError(t, err)

	data, err := Marshal(result)
	require.NoError(t, err)

	// Wire keys are part of the contract.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "metadata")
	assert.Contains(t, raw, "extracted_sections")
	assert.Contains(t, raw, "subsection_analysis")

	var meta map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["metadata"], &meta))
	assert.Contains(t, meta, "input_documents")
	assert.Contains(t, meta, "persona")
	assert.Contains(t, meta, "job_to_be_done")
	assert.Contains(t, meta, "processing_timestamp")

	var back core.Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *result, back)
}
