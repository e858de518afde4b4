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


package registry

import "errors"

var (
	// ErrInvalidRegistry indicates the registry data failed validation.
	ErrInvalidRegistry = errors.New("invalid registry")

	// ErrDuplicateCollection indicates two collections share an ID.
	ErrDuplicateCollection = errors.New("duplicate collection id")

	// ErrAmbiguousKeywords indicates two collections for the same persona
	// share a job keyword, which would make first-match-wins order-dependent.
	ErrAmbiguousKeywords = errors.New("overlapping job keywords for the same persona")

	// ErrMissingGenericVocabulary indicates the fallback vocabulary is absent.
	ErrMissingGenericVocabulary = errors.New("missing generic vocabulary")
)
