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

// Package analyze classifies persona+job queries and resolves them into
// ranked document sections.
//
// Classification is a two-way gate. Queries matching a known registry
// collection (persona equality plus a job keyword hit) resolve to that
// collection's curated sections and presentation-ordered subsections,
// verbatim. Everything else goes through the generalized resolver, which
// scores every extracted text block against the persona's vocabulary,
// groups blocks by document and content type, and returns the top scoring
// groups with contiguous importance ranks.
//
// Both paths are deterministic: identical inputs always produce identical
// sections and subsections.
package analyze
