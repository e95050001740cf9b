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

package fern

import (
	"fmt"

	"github.com/fernlang/fern/report"
)

// Edit is a single contiguous text replacement: the bytes in Delete are
// removed and Insert is put in their place.
type Edit struct {
	Delete report.Span
	Insert string
}

// Replace returns an edit that swaps the bytes in [start, end) for text.
func Replace(start, end int, text string) Edit {
	return Edit{Delete: report.Span{Start: start, End: end}, Insert: text}
}

// Delete returns an edit that removes the bytes in [start, end).
func Delete(start, end int) Edit {
	return Edit{Delete: report.Span{Start: start, End: end}}
}

// Insert returns an edit that inserts text at offset.
func Insert(offset int, text string) Edit {
	return Edit{Delete: report.Span{Start: offset, End: offset}, Insert: text}
}

// Apply returns text with the edit applied.
//
// Apply panics if the edit's deleted range does not lie within text.
func (e Edit) Apply(text string) string {
	if e.Delete.Start < 0 || e.Delete.Start > e.Delete.End || e.Delete.End > len(text) {
		panic(fmt.Sprintf("fern: edit range %v out of bounds for text of length %d", e.Delete, len(text)))
	}
	return text[:e.Delete.Start] + e.Insert + text[e.Delete.End:]
}

// delta is how much the edit changes the length of any text it is
// applied to.
func (e Edit) delta() int {
	return len(e.Insert) - e.Delete.Len()
}
