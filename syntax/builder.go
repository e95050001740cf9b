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

import (
	"fmt"

	"github.com/fernlang/fern/internal/ext/slicesx"
	"github.com/fernlang/fern/report"
)

// Builder materializes a green tree and its diagnostics from a balanced
// sequence of tree-construction events, the contract every grammar entry
// point is driven against:
//
//	StartNode(kind) ... Token(kind, text) ... FinishNode()
//
// The builder tracks the running byte offset of the text it has been fed,
// so [Builder.Error] records a diagnostic with a precise owning span
// without the grammar doing any offset arithmetic.
//
// Misuse (unbalanced Start/Finish, tokens outside any node) is a
// programmer error and panics. A Builder is single-use: after [Builder.Finish]
// it must not be reused.
type Builder struct {
	stack  []frame
	root   *GreenNode
	offset int
	errs   []report.Diagnostic
	leaves map[leafKey]*GreenNode
}

type frame struct {
	kind     Kind
	children []*GreenNode
}

type leafKey struct {
	kind Kind
	text string
}

// Checkpoint is a position in the event stream that a node started later
// can be retroactively wrapped around; see [Builder.StartNodeAt].
type Checkpoint struct {
	depth    int
	children int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{leaves: make(map[leafKey]*GreenNode)}
}

// StartNode begins a new composite node of the given kind. Every call must
// be balanced by a [Builder.FinishNode].
func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, frame{kind: kind})
}

// Checkpoint returns a checkpoint at the current position in the node that
// is currently open.
func (b *Builder) Checkpoint() Checkpoint {
	top, ok := slicesx.Last(b.stack)
	if !ok {
		panic("syntax: Checkpoint called outside of a node")
	}
	return Checkpoint{depth: len(b.stack), children: len(top.children)}
}

// StartNodeAt begins a new composite node of the given kind as if
// StartNode had been called at cp: children added since the checkpoint are
// moved into the new node.
//
// This is how the grammar builds left-leaning structures (binary operators,
// call expressions) without backtracking: parse the operand, then wrap it
// once an operator shows up. The checkpoint must refer to the node that is
// currently open.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	if cp.depth != len(b.stack) {
		panic(fmt.Sprintf("syntax: StartNodeAt with stale checkpoint (depth %d, have %d)", cp.depth, len(b.stack)))
	}
	top := &b.stack[len(b.stack)-1]
	if cp.children > len(top.children) {
		panic("syntax: StartNodeAt with stale checkpoint")
	}
	moved := make([]*GreenNode, len(top.children)-cp.children)
	copy(moved, top.children[cp.children:])
	top.children = top.children[:cp.children]
	b.stack = append(b.stack, frame{kind: kind, children: moved})
}

// Token appends a token leaf to the node that is currently open.
//
// Leaves are interned per builder: two tokens with the same kind and text
// share one green node. The intern table is builder-local and therefore
// needs no locking; a host that adds a shared table across parses must
// guard only that table, never tree traversal.
func (b *Builder) Token(kind Kind, text string) {
	if len(b.stack) == 0 {
		panic("syntax: Token called outside of a node")
	}
	key := leafKey{kind: kind, text: text}
	leaf, ok := b.leaves[key]
	if !ok {
		leaf = NewGreenLeaf(kind, text)
		b.leaves[key] = leaf
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, leaf)
	b.offset += len(text)
}

// FinishNode closes the node opened by the matching [Builder.StartNode].
func (b *Builder) FinishNode() {
	top, ok := slicesx.Last(b.stack)
	if !ok {
		panic("syntax: FinishNode without matching StartNode")
	}
	b.stack = b.stack[:len(b.stack)-1]
	node := NewGreenNode(top.kind, top.children)
	if len(b.stack) == 0 {
		if b.root != nil {
			panic("syntax: more than one root node")
		}
		b.root = node
		return
	}
	parent := &b.stack[len(b.stack)-1]
	parent.children = append(parent.children, node)
}

// Error records a diagnostic at the current offset.
func (b *Builder) Error(msg string) {
	b.ErrorAt(report.Point(b.offset), msg)
}

// ErrorAt records a diagnostic with an explicit owning span.
func (b *Builder) ErrorAt(span report.Span, msg string) {
	b.errs = append(b.errs, report.Diagnostic{Span: span, Message: msg})
}

// Offset returns the number of bytes of text fed to the builder so far.
func (b *Builder) Offset() int { return b.offset }

// Finish returns the completed green tree and its diagnostics.
//
// Panics if any node is still open or no root was ever produced.
func (b *Builder) Finish() (*GreenNode, []report.Diagnostic) {
	if len(b.stack) != 0 {
		panic(fmt.Sprintf("syntax: Finish with %d unfinished nodes", len(b.stack)))
	}
	if b.root == nil {
		panic("syntax: Finish without a root node")
	}
	return b.root, b.errs
}
