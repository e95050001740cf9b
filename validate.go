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

	"github.com/fernlang/fern/syntax"
)

// debugChecks enables expensive whole-tree structural assertions after
// every parse. Off in ordinary builds; tests turn it on.
var debugChecks bool

// validateBlockStructure panics if any matched pair of curly braces in the
// tree fails to delimit a single node: the '}' that closes a '{' must be a
// later sibling under the same parent, with the pair bounding its siblings
// ('{' first child, '}' last). Grammars that keep this invariant produce
// trees where brace-delimited regions are reparsable in isolation.
//
// An unmatched '}' with no '{' before it is tolerated; error recovery
// legitimately produces those. Braces inside attribute token trees are
// uninterpreted tokens and are skipped.
func validateBlockStructure(root syntax.Node) {
	var stack []syntax.Node
	for n := range syntax.Preorder(root) {
		switch n.Kind() {
		case syntax.KindLCurly:
			if inTokenTree(n) {
				continue
			}
			stack = append(stack, n)
		case syntax.KindRCurly:
			if inTokenTree(n) {
				continue
			}
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !open.Parent().Same(n.Parent()) {
				panic(fmt.Sprintf(
					"fern: brace pair split across nodes: %v opened under %v, closed under %v\n%s",
					open, open.Parent(), n.Parent(), syntax.Dump(root),
				))
			}
			if !open.PrevSibling().IsZero() || !n.NextSibling().IsZero() {
				panic(fmt.Sprintf(
					"fern: brace pair does not bound its siblings: %v ... %v under %v\n%s",
					open, n, n.Parent(), syntax.Dump(root),
				))
			}
		}
	}
}

func inTokenTree(n syntax.Node) bool {
	for a := range n.Ancestors() {
		if a.Kind() == syntax.KindTokenTree {
			return true
		}
	}
	return false
}
