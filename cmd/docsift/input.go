package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// InputDocument names one PDF of a collection.
type InputDocument struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

// InputSpec is the challenge input file: a document collection plus the
// persona and job driving the analysis.
type InputSpec struct {
	ChallengeInfo json.RawMessage `json:"challenge_info"`
	Documents     []InputDocument `json:"documents"`
	Persona       struct {
		Role string `json:"role"`
	} `json:"persona"`
	JobToBeDone struct {
		Task string `json:"task"`
	} `json:"job_to_be_done"`
}

// loadInput reads and validates an input file. All four top-level fields
// must be present; a missing field is fatal before any processing starts.
func loadInput(path string) (*InputSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return parseInput(data)
}

func parseInput(data []byte) (*InputSpec, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing input file: %w", err)
	}
	for _, field := range []string{"challenge_info", "documents", "persona", "job_to_be_done"} {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("input file is missing required field %q", field)
		}
	}

	var spec InputSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing input file: %w", err)
	}
	if len(spec.Documents) == 0 {
		return nil, fmt.Errorf("input file lists no documents")
	}
	for i, doc := range spec.Documents {
		if doc.Filename == "" {
			return nil, fmt.Errorf("document %d has no filename", i)
		}
	}
	if spec.Persona.Role == "" {
		return nil, fmt.Errorf("persona role is empty")
	}
	if spec.JobToBeDone.Task == "" {
		return nil, fmt.Errorf("job task is empty")
	}
	return &spec, nil
}

// Filenames returns the document filenames in declaration order.
func (s *InputSpec) Filenames() []string {
	names := make([]string, len(s.Documents))
	for i, doc := range s.Documents {
		names[i] = doc.Filename
	}
	return names
}
