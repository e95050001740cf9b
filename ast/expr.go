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

package ast

import (
	"iter"

	"github.com/fernlang/fern/syntax"
)

// Expr is the closed union of expression shapes.
//
// Any grammar position that accepts "an expression" accepts exactly these
// alternatives; a new expression kind must be added to [CastExpr] for
// matching to stay exhaustive.
type Expr interface {
	Node
	isExpr()
}

func (Literal) isExpr()    {}
func (PathExpr) isExpr()   {}
func (PrefixExpr) isExpr() {}
func (BinExpr) isExpr()    {}
func (CallExpr) isExpr()   {}
func (ParenExpr) isExpr()  {}

// CastExpr attempts to view n as an expression.
//
// This is the single kind-to-variant mapping for the [Expr] union.
func CastExpr(n syntax.Node) (Expr, bool) {
	switch n.Kind() {
	case syntax.KindLiteral:
		v, ok := Cast[Literal](n)
		return v, ok
	case syntax.KindPathExpr:
		v, ok := Cast[PathExpr](n)
		return v, ok
	case syntax.KindPrefixExpr:
		v, ok := Cast[PrefixExpr](n)
		return v, ok
	case syntax.KindBinExpr:
		v, ok := Cast[BinExpr](n)
		return v, ok
	case syntax.KindCallExpr:
		v, ok := Cast[CallExpr](n)
		return v, ok
	case syntax.KindParenExpr:
		v, ok := Cast[ParenExpr](n)
		return v, ok
	default:
		return nil, false
	}
}

// Literal is a literal expression: a number, string, or boolean.
type Literal struct{ node syntax.Node }

// Syntax implements [Node].
func (n Literal) Syntax() syntax.Node { return n.node }

func (n *Literal) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindLiteral {
		return false
	}
	n.node = s
	return true
}

// Token returns the kind of the literal's token.
func (n Literal) Token() syntax.Kind {
	return n.node.FirstChild().Kind()
}

// Text returns the literal's source text.
func (n Literal) Text() string { return n.node.Text() }

// PathExpr is a reference to a name in expression position.
type PathExpr struct{ node syntax.Node }

// Syntax implements [Node].
func (n PathExpr) Syntax() syntax.Node { return n.node }

func (n *PathExpr) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindPathExpr {
		return false
	}
	n.node = s
	return true
}

// NameRef returns the referenced name.
func (n PathExpr) NameRef() (NameRef, bool) { return child[NameRef](n) }

// PrefixExpr is a unary operator applied to an operand.
type PrefixExpr struct{ node syntax.Node }

// Syntax implements [Node].
func (n PrefixExpr) Syntax() syntax.Node { return n.node }

func (n *PrefixExpr) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindPrefixExpr {
		return false
	}
	n.node = s
	return true
}

// Op returns the kind of the operator token.
func (n PrefixExpr) Op() syntax.Kind {
	return n.node.FirstChild().Kind()
}

// Operand returns the operand expression, if the source has one.
func (n PrefixExpr) Operand() (Expr, bool) { return unionChild(n, CastExpr, 0) }

// BinExpr is a binary operator expression.
type BinExpr struct{ node syntax.Node }

// Syntax implements [Node].
func (n BinExpr) Syntax() syntax.Node { return n.node }

func (n *BinExpr) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindBinExpr {
		return false
	}
	n.node = s
	return true
}

// Op returns the kind of the operator token.
func (n BinExpr) Op() syntax.Kind {
	for c := range n.node.Children() {
		if _, ok := c.LeafText(); ok && !c.Kind().IsTrivia() {
			return c.Kind()
		}
	}
	return syntax.KindError
}

// Lhs returns the left operand, if the source has one.
func (n BinExpr) Lhs() (Expr, bool) { return unionChild(n, CastExpr, 0) }

// Rhs returns the right operand, if the source has one.
func (n BinExpr) Rhs() (Expr, bool) { return unionChild(n, CastExpr, 1) }

// CallExpr is a call of a callee with an argument list.
type CallExpr struct{ node syntax.Node }

// Syntax implements [Node].
func (n CallExpr) Syntax() syntax.Node { return n.node }

func (n *CallExpr) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindCallExpr {
		return false
	}
	n.node = s
	return true
}

// Callee returns the called expression.
func (n CallExpr) Callee() (Expr, bool) { return unionChild(n, CastExpr, 0) }

// Args returns the argument list, if the source has one.
func (n CallExpr) Args() (ArgList, bool) { return child[ArgList](n) }

// ArgList is a call's parenthesized argument list.
type ArgList struct{ node syntax.Node }

// Syntax implements [Node].
func (n ArgList) Syntax() syntax.Node { return n.node }

func (n *ArgList) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindArgList {
		return false
	}
	n.node = s
	return true
}

// Args iterates over the argument expressions.
func (n ArgList) Args() iter.Seq[Expr] { return unionChildren(n, CastExpr) }

// ParenExpr is a parenthesized expression.
type ParenExpr struct{ node syntax.Node }

// Syntax implements [Node].
func (n ParenExpr) Syntax() syntax.Node { return n.node }

func (n *ParenExpr) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindParenExpr {
		return false
	}
	n.node = s
	return true
}

// Inner returns the parenthesized expression, if the source has one.
func (n ParenExpr) Inner() (Expr, bool) { return unionChild(n, CastExpr, 0) }
