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
	"iter"

	"github.com/fernlang/fern/report"
)

// Preorder returns an iterator over root's subtree in preorder: each node
// before its children, children in document order.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		preorder(root, yield)
	}
}

func preorder(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	for child := range n.Children() {
		if !preorder(child, yield) {
			return false
		}
	}
	return true
}

// CoveringNode returns the smallest node under root whose span fully
// contains span, descending from root. Returns the zero node if root
// itself does not contain span.
func CoveringNode(root Node, span report.Span) Node {
	if !root.Span().ContainsSpan(span) {
		return Zero
	}
	n := root
descend:
	for {
		for child := range n.Children() {
			if child.Span().ContainsSpan(span) {
				n = child
				continue descend
			}
		}
		return n
	}
}
