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

// Package ast is the typed view over Fern's untyped syntax tree.
//
// Every syntactically meaningful kind gets a zero-overhead wrapper holding
// just the [syntax.Node] it wraps. The only way from the untyped tree into
// the typed view is a checked cast: [Cast] (and the per-union CastExpr,
// CastTypeRef, CastStmt, CastNominalDef) succeeds exactly when the node's
// kind is in the wrapper's declared set, never silently.
//
// Structural accessors scan direct children only, taking the first (or
// every) child whose cast succeeds; the grammar fixes each semantic
// child's position, so the scans never need to recurse. An absent child is
// an explicit (zero, false), not an error.
//
// Cross-cutting accessors are capability interfaces ([NameOwner],
// [TypeParamsOwner], [AttrsOwner]) implemented independently by otherwise
// unrelated wrappers; there is deliberately no base wrapper type.
package ast

import (
	"iter"

	"github.com/fernlang/fern/syntax"
)

// Node is any typed wrapper over a syntax node.
type Node interface {
	// Syntax returns the wrapped untyped node.
	Syntax() syntax.Node
}

// caster is implemented by every wrapper's pointer type; it accepts the
// node iff the kind matches the wrapper's declared kind.
type caster interface {
	cast(syntax.Node) bool
}

// Cast attempts to view n as the wrapper type T.
//
// The cast is a checked narrowing: it succeeds iff n's kind equals T's
// declared kind. Usage:
//
//	fn, ok := ast.Cast[ast.FnDef](node)
func Cast[T Node, P interface {
	*T
	caster
}](n syntax.Node) (T, bool) {
	var out T
	ok := P(&out).cast(n)
	return out, ok
}

// child returns the first direct child of parent that casts to T.
func child[T Node, P interface {
	*T
	caster
}](parent Node) (T, bool) {
	for c := range parent.Syntax().Children() {
		if n, ok := Cast[T, P](c); ok {
			return n, true
		}
	}
	var zero T
	return zero, false
}

// children iterates over the direct children of parent that cast to T.
func children[T Node, P interface {
	*T
	caster
}](parent Node) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range parent.Syntax().Children() {
			if n, ok := Cast[T, P](c); ok && !yield(n) {
				return
			}
		}
	}
}

// unionChild returns the idx-th direct child of parent accepted by a union
// cast.
func unionChild[U any](parent Node, cast func(syntax.Node) (U, bool), idx int) (U, bool) {
	for c := range parent.Syntax().Children() {
		n, ok := cast(c)
		if !ok {
			continue
		}
		if idx == 0 {
			return n, true
		}
		idx--
	}
	var zero U
	return zero, false
}

// unionChildren iterates over the direct children of parent accepted by a
// union cast.
func unionChildren[U any](parent Node, cast func(syntax.Node) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		for c := range parent.Syntax().Children() {
			if n, ok := cast(c); ok && !yield(n) {
				return
			}
		}
	}
}

// tokenChild returns the text of the first direct token child of the given
// kind.
func tokenChild(parent Node, kind syntax.Kind) (string, bool) {
	for c := range parent.Syntax().Children() {
		if c.Kind() != kind {
			continue
		}
		if text, ok := c.LeafText(); ok {
			return text, true
		}
	}
	return "", false
}
