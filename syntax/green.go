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
	"slices"
	"strings"
)

// GreenNode is an immutable node of the position-free tree layer.
//
// A GreenNode is never mutated after construction. It carries its kind and
// its width in bytes, and either an ordered sequence of children (for a
// composite node) or its literal source text (for a token leaf). It stores
// no absolute offset and no parent pointer; offsets are always derived by
// the red layer, never persisted, so a subtree may be shared by reference
// across any number of tree versions and goroutines without coordination.
type GreenNode struct {
	kind     Kind
	width    int
	children []*GreenNode // nil for leaves
	text     string       // leaves only
}

// NewGreenLeaf returns a token leaf with the given kind and literal text.
func NewGreenLeaf(kind Kind, text string) *GreenNode {
	return &GreenNode{kind: kind, width: len(text), text: text}
}

// NewGreenNode returns a composite node with the given ordered children.
//
// The child sequence is fixed at construction; the slice is copied so the
// caller cannot alias into the new node.
func NewGreenNode(kind Kind, children []*GreenNode) *GreenNode {
	width := 0
	for _, c := range children {
		width += c.width
	}
	cloned := slices.Clone(children)
	if cloned == nil {
		// A childless composite (e.g. an empty list produced during error
		// recovery) must still be distinguishable from a leaf.
		cloned = []*GreenNode{}
	}
	return &GreenNode{
		kind:     kind,
		width:    width,
		children: cloned,
	}
}

// Kind returns the kind of this node.
func (g *GreenNode) Kind() Kind { return g.kind }

// Width returns the text length of this node, in bytes.
//
// For a composite node this is exactly the sum of its children's widths.
func (g *GreenNode) Width() int { return g.width }

// IsLeaf returns whether this node is a token leaf.
//
// A leaf carries literal text; a composite node carries children. An empty
// composite (such as an empty list produced during recovery) is not a leaf.
func (g *GreenNode) IsLeaf() bool { return g.children == nil }

// LeafText returns the literal text of a token leaf, and whether this node
// is one.
func (g *GreenNode) LeafText() (string, bool) {
	if !g.IsLeaf() {
		return "", false
	}
	return g.text, true
}

// NumChildren returns the number of children of this node. Leaves have
// none.
func (g *GreenNode) NumChildren() int { return len(g.children) }

// Child returns the idx-th child, or nil if idx is out of bounds.
func (g *GreenNode) Child(idx int) *GreenNode {
	if idx < 0 || idx >= len(g.children) {
		return nil
	}
	return g.children[idx]
}

// Text returns the full source text of this subtree: the concatenation of
// its leaf texts in document order.
func (g *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(g.width)
	g.writeText(&sb)
	return sb.String()
}

func (g *GreenNode) writeText(sb *strings.Builder) {
	if g.IsLeaf() {
		sb.WriteString(g.text)
		return
	}
	for _, c := range g.children {
		c.writeText(sb)
	}
}
