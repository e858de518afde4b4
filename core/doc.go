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


// Package core defines the domain model shared by all docsift packages.
//
// It contains the extracted-layout types (TextBlock, Document), the query
// type (PersonaQuery), and the result types (Section, SubsectionAnalysis,
// Result) together with their validation rules and serializers.
//
// Types in this package carry no behavior beyond derivation and validation;
// extraction, classification, and assembly live in their own packages.
package core
