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

package syntax

import "github.com/fernlang/fern/report"

// Tree owns a green root and the diagnostics produced alongside it.
//
// A Tree is one immutable parse result. Deriving red views, reading text,
// or splicing a replacement subtree never mutates it; edits always produce
// a new Tree sharing untouched green subtrees with the old one.
type Tree struct {
	green *GreenNode
	errs  *report.Report
}

// NewTree wraps a green root and its diagnostics.
func NewTree(green *GreenNode, diags []report.Diagnostic) *Tree {
	return &Tree{green: green, errs: report.NewReport(diags)}
}

// Root returns the navigable root of this tree.
func (t *Tree) Root() Node {
	return Node{d: &nodeData{tree: t, green: t.green}}
}

// Green returns this tree's green root.
func (t *Tree) Green() *GreenNode { return t.green }

// Errors returns an independent copy of this tree's diagnostics, ordered
// by span. Mutating the result does not alias the tree.
func (t *Tree) Errors() []report.Diagnostic {
	return t.errs.Diagnostics()
}

// Report returns this tree's diagnostic report. The report must be treated
// as read-only.
func (t *Tree) Report() *report.Report { return t.errs }

// Text returns the full source text of this tree.
func (t *Tree) Text() string { return t.green.Text() }
