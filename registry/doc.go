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


// Package registry holds the static configuration driving classification:
// known collections with curated answer sets, refined-text templates, and
// per-persona content-type vocabularies.
//
// The data ships embedded as YAML and is parsed once; the resulting Registry
// is immutable and safe for unsynchronized concurrent reads. Two orderings
// in the data are contractual:
//
//   - Collection declaration order is the classifier's scan order; the first
//     matching collection wins. Load rejects collections that share both a
//     persona and a job keyword, so the scan order can never silently decide
//     between overlapping entries.
//   - Vocabulary entry order breaks scoring ties in the generalized
//     resolver: when a block scores equally against two content types, the
//     earlier declaration wins.
package registry
