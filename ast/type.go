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

import "github.com/fernlang/fern/syntax"

// TypeRef is the closed union of type-reference shapes.
type TypeRef interface {
	Node
	isTypeRef()
}

func (PathType) isTypeRef()  {}
func (ParenType) isTypeRef() {}
func (ArrayType) isTypeRef() {}

// CastTypeRef attempts to view n as a type reference.
//
// This is the single kind-to-variant mapping for the [TypeRef] union.
func CastTypeRef(n syntax.Node) (TypeRef, bool) {
	switch n.Kind() {
	case syntax.KindPathType:
		v, ok := Cast[PathType](n)
		return v, ok
	case syntax.KindParenType:
		v, ok := Cast[ParenType](n)
		return v, ok
	case syntax.KindArrayType:
		v, ok := Cast[ArrayType](n)
		return v, ok
	default:
		return nil, false
	}
}

// PathType is a reference to a named type.
type PathType struct{ node syntax.Node }

// Syntax implements [Node].
func (n PathType) Syntax() syntax.Node { return n.node }

func (n *PathType) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindPathType {
		return false
	}
	n.node = s
	return true
}

// NameRef returns the referenced type name.
func (n PathType) NameRef() (NameRef, bool) { return child[NameRef](n) }

// ParenType is a parenthesized type.
type ParenType struct{ node syntax.Node }

// Syntax implements [Node].
func (n ParenType) Syntax() syntax.Node { return n.node }

func (n *ParenType) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindParenType {
		return false
	}
	n.node = s
	return true
}

// Inner returns the parenthesized type, if the source has one.
func (n ParenType) Inner() (TypeRef, bool) { return unionChild(n, CastTypeRef, 0) }

// ArrayType is a '[T]' array type.
type ArrayType struct{ node syntax.Node }

// Syntax implements [Node].
func (n ArrayType) Syntax() syntax.Node { return n.node }

func (n *ArrayType) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindArrayType {
		return false
	}
	n.node = s
	return true
}

// Elem returns the element type, if the source has one.
func (n ArrayType) Elem() (TypeRef, bool) { return unionChild(n, CastTypeRef, 0) }
