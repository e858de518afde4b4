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


// Package storage provides the block-cache abstraction for docsift.
//
// Extraction is by far the most expensive stage of a batch run, and the
// inputs are immutable files: the cache keys extracted block sequences by a
// content hash of the document bytes, so re-running a collection only parses
// documents that actually changed.
//
// The package defines the BlockRepository interface and serialization
// helpers; the BadgerDB implementation lives in the badger subpackage.
// Constructors in implementation packages return the interface type so
// callers never couple to a specific backend.
//
// All implementations must be safe for concurrent use; extraction workers
// read and write the cache in parallel.
package storage
