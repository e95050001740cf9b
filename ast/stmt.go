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

// Block is a brace-delimited statement block.
type Block struct{ node syntax.Node }

// Syntax implements [Node].
func (n Block) Syntax() syntax.Node { return n.node }

func (n *Block) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindBlock {
		return false
	}
	n.node = s
	return true
}

// Statements iterates over the block's statements.
func (n Block) Statements() iter.Seq[Stmt] { return unionChildren(n, CastStmt) }

// Stmt is the closed union of statement shapes.
type Stmt interface {
	Node
	isStmt()
}

func (LetStmt) isStmt()  {}
func (ExprStmt) isStmt() {}

// CastStmt attempts to view n as either statement shape.
func CastStmt(n syntax.Node) (Stmt, bool) {
	switch n.Kind() {
	case syntax.KindLetStmt:
		v, ok := Cast[LetStmt](n)
		return v, ok
	case syntax.KindExprStmt:
		v, ok := Cast[ExprStmt](n)
		return v, ok
	default:
		return nil, false
	}
}

// LetStmt is a 'let name = expr;' binding.
type LetStmt struct{ node syntax.Node }

// Syntax implements [Node].
func (n LetStmt) Syntax() syntax.Node { return n.node }

func (n *LetStmt) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindLetStmt {
		return false
	}
	n.node = s
	return true
}

// Name implements [NameOwner].
func (n LetStmt) Name() (Name, bool) { return child[Name](n) }

// Ascription returns the binding's declared type, if present.
func (n LetStmt) Ascription() (TypeRef, bool) { return unionChild(n, CastTypeRef, 0) }

// Value returns the bound expression, if the source has one.
func (n LetStmt) Value() (Expr, bool) { return unionChild(n, CastExpr, 0) }

// ExprStmt is a bare expression in statement position.
type ExprStmt struct{ node syntax.Node }

// Syntax implements [Node].
func (n ExprStmt) Syntax() syntax.Node { return n.node }

func (n *ExprStmt) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindExprStmt {
		return false
	}
	n.node = s
	return true
}

// Expr returns the wrapped expression, if the source has one.
func (n ExprStmt) Expr() (Expr, bool) { return unionChild(n, CastExpr, 0) }

var _ NameOwner = LetStmt{}
