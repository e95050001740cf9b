// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import "fmt"

// Diagnostic is a recoverable syntax error recorded against a parse result.
//
// A Diagnostic is data, not an error value: parsing never fails, it only
// accumulates diagnostics alongside the tree it produces. The span is the
// diagnostic's owning range; an incremental reparse of a subtree replaces
// exactly the diagnostics whose spans fall inside that subtree.
type Diagnostic struct {
	Span    Span
	Message string
}

// String implements [fmt.Stringer].
func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %s", d.Span, d.Message)
}
