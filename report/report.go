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

import (
	"iter"

	"github.com/tidwall/btree"
)

// Report is a collection of diagnostics, kept ordered by span.
//
// Diagnostics are keyed by (start, end, insertion sequence); the sequence
// component means two diagnostics with identical spans and messages are both
// retained. The zero value is an empty, ready-to-use report.
//
// A Report is not safe for concurrent mutation. Once fully built it may be
// read from any number of goroutines, which is how parse results use it.
type Report struct {
	tree *btree.BTreeG[entry]
	next int
}

type entry struct {
	diag Diagnostic
	seq  int
}

func entryLess(a, b entry) bool {
	if a.diag.Span.Start != b.diag.Span.Start {
		return a.diag.Span.Start < b.diag.Span.Start
	}
	if a.diag.Span.End != b.diag.Span.End {
		return a.diag.Span.End < b.diag.Span.End
	}
	return a.seq < b.seq
}

// NewReport returns a report holding the given diagnostics.
func NewReport(diags []Diagnostic) *Report {
	r := new(Report)
	for _, d := range diags {
		r.Push(d)
	}
	return r
}

// Push adds a diagnostic to this report.
func (r *Report) Push(d Diagnostic) {
	if r.tree == nil {
		r.tree = btree.NewBTreeG(entryLess)
	}
	r.tree.Set(entry{diag: d, seq: r.next})
	r.next++
}

// Len returns the number of diagnostics in this report.
func (r *Report) Len() int {
	if r.tree == nil {
		return 0
	}
	return r.tree.Len()
}

// All returns an iterator over the diagnostics in span order.
func (r *Report) All() iter.Seq[Diagnostic] {
	return func(yield func(Diagnostic) bool) {
		if r.tree == nil {
			return
		}
		r.tree.Scan(func(e entry) bool {
			return yield(e.diag)
		})
	}
}

// Diagnostics returns an independent copy of this report's diagnostics in
// span order. Mutating the returned slice does not affect the report.
func (r *Report) Diagnostics() []Diagnostic {
	diags := make([]Diagnostic, 0, r.Len())
	for d := range r.All() {
		diags = append(diags, d)
	}
	return diags
}

// Span returns an iterator over the diagnostics whose owning spans lie
// entirely within span.
func (r *Report) Span(span Span) iter.Seq[Diagnostic] {
	return func(yield func(Diagnostic) bool) {
		if r.tree == nil {
			return
		}
		pivot := entry{diag: Diagnostic{Span: Point(span.Start)}, seq: -1}
		r.tree.Ascend(pivot, func(e entry) bool {
			if e.diag.Span.Start > span.End {
				return false
			}
			if !span.ContainsSpan(e.diag.Span) {
				return true
			}
			return yield(e.diag)
		})
	}
}
