package docsift

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errResolver fails every open, standing in for a directory with no
// readable PDFs. Unreadable inputs are excluded from extraction but stay in
// the result metadata.
type errResolver struct{}

func (errResolver) Open(filename string) ([]byte, error) {
	return nil, fmt.Errorf("no such file: %s", filename)
}

var foodDocuments = []string{
	"Breakfast Ideas.pdf",
	"Dinner Ideas - Mains_2.pdf",
	"Dinner Ideas - Sides_1.pdf",
	"Dinner Ideas - Sides_2.pdf",
	"Dinner Ideas - Sides_3.pdf",
	"Lunch Ideas.pdf",
}

func TestProcessKnownCollection(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	defer engine.Release()

	result, err := engine.Process(context.Background(), errResolver{}, foodDocuments,
		"Food Contractor",
		"Prepare a vegetarian buffet-style dinner menu for a corporate gathering, including gluten-free items.")
	require.NoError(t, err)

	assert.Equal(t, foodDocuments, result.Metadata.InputDocuments)
	assert.Equal(t, "Food Contractor", result.Metadata.Persona)
	assert.NotEmpty(t, result.Metadata.ProcessingTimestamp)

	require.Len(t, result.ExtractedSections, 5)
	assert.Equal(t, "Falafel", result.ExtractedSections[0].SectionTitle)
	for i, section := range result.ExtractedSections {
		assert.Equal(t, i+1, section.ImportanceRank)
	}

	require.Len(t, result.SubsectionAnalysis, 5)
	for _, sub := range result.SubsectionAnalysis {
		assert.NotEmpty(t, sub.RefinedText)
	}
}

func TestProcessGeneralizedWithoutDocuments(t *testing.T) {
	engine, err := New(WithTopK(3), WithPoolSize(2))
	require.NoError(t, err)
	defer engine.Release()

	result, err := engine.Process(context.Background(), errResolver{},
		[]string{"missing.pdf"}, "Data Scientist", "Survey the available material")
	require.NoError(t, err)

	assert.Equal(t, []string{"missing.pdf"}, result.Metadata.InputDocuments)
	assert.Empty(t, result.ExtractedSections)
	assert.Empty(t, result.SubsectionAnalysis)
}
