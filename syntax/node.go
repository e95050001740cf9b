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
	"iter"

	"github.com/fernlang/fern/report"
)

// Zero is the zero [Node], used to denote the absence of a node.
var Zero Node

// Node is a red node: a position-aware view into a green tree, computed on
// demand from the tree root and a path to this position.
//
// A Node is a cheap value; copying it copies a single pointer. The zero
// value is the "zero node", returned wherever a neighbor does not exist
// (the parent of the root, the sibling past either end); test for it with
// [Node.IsZero].
//
// Every Node keeps its [Tree] reachable, so a node handed out by a parse
// result is self-owning, while a node derived from a caller-held Tree
// borrows it; both behave identically, and a Node stays valid as long as
// any reference to it exists. Navigation is O(depth) or O(sibling count);
// nothing is cached beyond the path the node was reached by.
type Node struct {
	d *nodeData
}

type nodeData struct {
	tree   *Tree
	green  *GreenNode
	parent *nodeData // nil at the root
	index  int       // position in parent's children
	offset int       // absolute byte offset
}

// IsZero returns whether this is the zero node.
func (n Node) IsZero() bool { return n.d == nil }

// Tree returns the tree this node belongs to, or nil for the zero node.
func (n Node) Tree() *Tree {
	if n.IsZero() {
		return nil
	}
	return n.d.tree
}

// Green returns the green node backing this view, or nil for the zero
// node.
func (n Node) Green() *GreenNode {
	if n.IsZero() {
		return nil
	}
	return n.d.green
}

// Kind returns this node's kind. The zero node reports [KindError].
func (n Node) Kind() Kind {
	if n.IsZero() {
		return KindError
	}
	return n.d.green.Kind()
}

// Span returns the absolute byte range this node covers.
func (n Node) Span() report.Span {
	if n.IsZero() {
		return report.Span{}
	}
	return report.Span{Start: n.d.offset, End: n.d.offset + n.d.green.Width()}
}

// Text returns the full source text of this node's subtree.
func (n Node) Text() string {
	if n.IsZero() {
		return ""
	}
	return n.d.green.Text()
}

// LeafText returns the literal text of a token leaf, and whether this node
// is one.
func (n Node) LeafText() (string, bool) {
	if n.IsZero() {
		return "", false
	}
	return n.d.green.LeafText()
}

// Same reports whether two nodes denote the same position in the same
// tree.
//
// Leaf green nodes are interned, so pointer identity alone cannot tell two
// identical tokens apart; position disambiguates them.
func (n Node) Same(o Node) bool {
	if n.IsZero() || o.IsZero() {
		return n.IsZero() == o.IsZero()
	}
	return n.d.tree == o.d.tree && n.d.green == o.d.green && n.d.offset == o.d.offset
}

// Parent returns this node's parent, or the zero node at the root.
func (n Node) Parent() Node {
	if n.IsZero() || n.d.parent == nil {
		return Zero
	}
	return Node{d: n.d.parent}
}

// Children returns an iterator over this node's direct children in
// document order. Leaves have none.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if n.IsZero() {
			return
		}
		offset := n.d.offset
		for i := 0; i < n.d.green.NumChildren(); i++ {
			child := n.d.green.Child(i)
			data := &nodeData{
				tree:   n.d.tree,
				green:  child,
				parent: n.d,
				index:  i,
				offset: offset,
			}
			if !yield(Node{d: data}) {
				return
			}
			offset += child.Width()
		}
	}
}

// FirstChild returns this node's first child, or the zero node.
func (n Node) FirstChild() Node {
	for child := range n.Children() {
		return child
	}
	return Zero
}

// LastChild returns this node's last child, or the zero node.
func (n Node) LastChild() Node {
	last := Zero
	for child := range n.Children() {
		last = child
	}
	return last
}

// NextSibling returns the sibling after this node, or the zero node.
func (n Node) NextSibling() Node { return n.sibling(+1) }

// PrevSibling returns the sibling before this node, or the zero node.
func (n Node) PrevSibling() Node { return n.sibling(-1) }

func (n Node) sibling(delta int) Node {
	if n.IsZero() || n.d.parent == nil {
		return Zero
	}
	want := n.d.index + delta
	for sib := range (Node{d: n.d.parent}).Children() {
		if sib.d.index == want {
			return sib
		}
	}
	return Zero
}

// Ancestors returns an iterator over this node and its ancestors, ending
// at the root.
func (n Node) Ancestors() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for d := n.d; d != nil; d = d.parent {
			if !yield(Node{d: d}) {
				return
			}
		}
	}
}

// ReplaceWith returns the green root of a new tree in which this node's
// subtree is replaced by green.
//
// Every subtree outside the path from the root to this node is shared by
// reference with the old tree; only the spine above the replacement is
// rebuilt. The receiver's tree is unaffected.
func (n Node) ReplaceWith(green *GreenNode) *GreenNode {
	if n.IsZero() {
		panic("syntax: ReplaceWith on the zero node")
	}
	sub := green
	for d := n.d; d.parent != nil; d = d.parent {
		pg := d.parent.green
		children := make([]*GreenNode, pg.NumChildren())
		for i := range children {
			children[i] = pg.Child(i)
		}
		children[d.index] = sub
		sub = NewGreenNode(pg.Kind(), children)
	}
	return sub
}

// String implements [fmt.Stringer].
func (n Node) String() string {
	if n.IsZero() {
		return "Node(zero)"
	}
	return fmt.Sprintf("%v@%v", n.Kind(), n.Span())
}
