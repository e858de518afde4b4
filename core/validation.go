// Copyright 2025 Docsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
)

// ValidateTextBlock validates a TextBlock according to domain rules.
//
// Validation rules:
//   - Text must not be empty after trimming
//   - Page must be >= 1
//   - RelativeY must be within [0,1]
func ValidateTextBlock(block *TextBlock) error {
	if block == nil {
		return fmt.Errorf("%w: block is nil", ErrInvalidTextBlock)
	}
	if block.Text == "" {
		return fmt.Errorf("%w: %w: text", ErrInvalidTextBlock, ErrEmptyField)
	}
	if block.Page < 1 {
		return fmt.Errorf("%w: page %d is not 1-based", ErrInvalidTextBlock, block.Page)
	}
	if block.RelativeY < 0 || block.RelativeY > 1 {
		return fmt.Errorf("%w: relative y %f outside [0,1]", ErrInvalidTextBlock, block.RelativeY)
	}
	return nil
}

// ValidateSection validates a Section against the set of input document names.
func ValidateSection(section *Section, inputDocuments map[string]bool) error {
	if section == nil {
		return fmt.Errorf("%w: section is nil", ErrInvalidSection)
	}
	if section.Document == "" {
		return fmt.Errorf("%w: %w: document", ErrInvalidSection, ErrEmptyField)
	}
	if section.SectionTitle == "" {
		return fmt.Errorf("%w: %w: section title", ErrInvalidSection, ErrEmptyField)
	}
	if section.PageNumber < 1 {
		return fmt.Errorf("%w: page number %d is not 1-based", ErrInvalidSection, section.PageNumber)
	}
	if !inputDocuments[section.Document] {
		return fmt.Errorf("%w: %q", ErrUnknownDocument, section.Document)
	}
	return nil
}

// ValidateSubsection validates a SubsectionAnalysis against the set of input
// document names.
func ValidateSubsection(sub *SubsectionAnalysis, inputDocuments map[string]bool) error {
	if sub == nil {
		return fmt.Errorf("%w: subsection is nil", ErrInvalidSubsection)
	}
	if sub.Document == "" {
		return fmt.Errorf("%w: %w: document", ErrInvalidSubsection, ErrEmptyField)
	}
	if sub.RefinedText == "" {
		return fmt.Errorf("%w: %w: refined text", ErrInvalidSubsection, ErrEmptyField)
	}
	if sub.PageNumber < 1 {
		return fmt.Errorf("%w: page number %d is not 1-based", ErrInvalidSubsection, sub.PageNumber)
	}
	if !inputDocuments[sub.Document] {
		return fmt.Errorf("%w: %q", ErrUnknownDocument, sub.Document)
	}
	return nil
}

// ValidateResult validates a fully assembled Result.
//
// Validation rules:
//   - Metadata persona, job, and timestamp must be present
//   - Importance ranks must be exactly {1..N} for N extracted sections
//   - Every referenced document must be one of the input documents
//
// A failure here signals a contract violation in a resolver, not a user
// input error.
func ValidateResult(result *Result) error {
	if result == nil {
		return fmt.Errorf("%w: result is nil", ErrInvalidResult)
	}
	if result.Metadata.Persona == "" {
		return fmt.Errorf("%w: %w: metadata.persona", ErrInvalidResult, ErrEmptyField)
	}
	if result.Metadata.JobToBeDone == "" {
		return fmt.Errorf("%w: %w: metadata.job_to_be_done", ErrInvalidResult, ErrEmptyField)
	}
	if result.Metadata.ProcessingTimestamp == "" {
		return fmt.Errorf("%w: %w: metadata.processing_timestamp", ErrInvalidResult, ErrEmptyField)
	}

	inputSet := make(map[string]bool, len(result.Metadata.InputDocuments))
	for _, name := range result.Metadata.InputDocuments {
		inputSet[name] = true
	}

	seen := make(map[int]bool, len(result.ExtractedSections))
	for i := range result.ExtractedSections {
		section := &result.ExtractedSections[i]
		if err := ValidateSection(section, inputSet); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidResult, err)
		}
		if section.ImportanceRank < 1 || section.ImportanceRank > len(result.ExtractedSections) {
			return fmt.Errorf("%w: %w: rank %d with %d sections",
				ErrInvalidResult, ErrRanksNotContiguous, section.ImportanceRank, len(result.ExtractedSections))
		}
		if seen[section.ImportanceRank] {
			return fmt.Errorf("%w: %w: duplicate rank %d",
				ErrInvalidResult, ErrRanksNotContiguous, section.ImportanceRank)
		}
		seen[section.ImportanceRank] = true
	}

	for i := range result.SubsectionAnalysis {
		if err := ValidateSubsection(&result.SubsectionAnalysis[i], inputSet); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidResult, err)
		}
	}

	return nil
}
