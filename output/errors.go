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

package output

import "errors"

var (
	// ErrContractViolation indicates an assembled result failed validation
	// against the output contract.
	ErrContractViolation = errors.New("result violates output contract")

	// ErrEncodeFailed indicates a result could not be encoded to JSON.
	ErrEncodeFailed = errors.New("failed to encode result")
)
