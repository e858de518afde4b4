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

import "errors"

// Domain validation errors
var (
	// ErrInvalidResult indicates a Result failed validation.
	ErrInvalidResult = errors.New("invalid result")

	// ErrInvalidSection indicates a Section failed validation.
	ErrInvalidSection = errors.New("invalid section")

	// ErrInvalidSubsection indicates a SubsectionAnalysis failed validation.
	ErrInvalidSubsection = errors.New("invalid subsection analysis")

	// ErrInvalidTextBlock indicates a TextBlock failed validation.
	ErrInvalidTextBlock = errors.New("invalid text block")

	// ErrRanksNotContiguous indicates importance ranks are not exactly 1..N.
	ErrRanksNotContiguous = errors.New("importance ranks must be contiguous from 1")

	// ErrUnknownDocument indicates a section references a document outside the input set.
	ErrUnknownDocument = errors.New("document is not an input document")

	// ErrEmptyField indicates a required field is empty.
	ErrEmptyField = errors.New("required field is empty")
)
