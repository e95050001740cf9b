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

// SourceFile is the typed root of a parsed file.
type SourceFile struct{ node syntax.Node }

// Syntax implements [Node].
func (n SourceFile) Syntax() syntax.Node { return n.node }

func (n *SourceFile) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindSourceFile {
		return false
	}
	n.node = s
	return true
}

// Functions iterates over the file's function definitions.
func (n SourceFile) Functions() iter.Seq[FnDef] {
	return children[FnDef](n)
}

// Structs iterates over the file's struct definitions.
func (n SourceFile) Structs() iter.Seq[StructDef] {
	return children[StructDef](n)
}

// Enums iterates over the file's enum definitions.
func (n SourceFile) Enums() iter.Seq[EnumDef] {
	return children[EnumDef](n)
}

// Nominals iterates over the file's nominal definitions of either shape.
func (n SourceFile) Nominals() iter.Seq[NominalDef] {
	return unionChildren(n, CastNominalDef)
}

// FnDef is a function definition.
type FnDef struct{ node syntax.Node }

// Syntax implements [Node].
func (n FnDef) Syntax() syntax.Node { return n.node }

func (n *FnDef) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindFnDef {
		return false
	}
	n.node = s
	return true
}

// Name implements [NameOwner].
func (n FnDef) Name() (Name, bool) { return child[Name](n) }

// TypeParamList implements [TypeParamsOwner].
func (n FnDef) TypeParamList() (TypeParamList, bool) { return child[TypeParamList](n) }

// WhereClause implements [TypeParamsOwner].
func (n FnDef) WhereClause() (WhereClause, bool) { return child[WhereClause](n) }

// Attrs implements [AttrsOwner].
func (n FnDef) Attrs() iter.Seq[Attr] { return children[Attr](n) }

// ParamList returns the parameter list, if the source has one.
func (n FnDef) ParamList() (ParamList, bool) { return child[ParamList](n) }

// RetType returns the '-> T' clause, if present.
func (n FnDef) RetType() (RetType, bool) { return child[RetType](n) }

// Body returns the function body, if the source has one.
func (n FnDef) Body() (Block, bool) { return child[Block](n) }

// HasAtomAttr returns whether an attribute of the form #[atom] with no
// arguments is attached to this function.
func (n FnDef) HasAtomAttr(atom string) bool {
	for attr := range n.Attrs() {
		if name, ok := attr.NameText(); ok && name == atom {
			if _, hasArgs := attr.Value(); !hasArgs {
				return true
			}
		}
	}
	return false
}

// StructDef is a struct definition.
type StructDef struct{ node syntax.Node }

// Syntax implements [Node].
func (n StructDef) Syntax() syntax.Node { return n.node }

func (n *StructDef) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindStructDef {
		return false
	}
	n.node = s
	return true
}

// Name implements [NameOwner].
func (n StructDef) Name() (Name, bool) { return child[Name](n) }

// TypeParamList implements [TypeParamsOwner].
func (n StructDef) TypeParamList() (TypeParamList, bool) { return child[TypeParamList](n) }

// WhereClause implements [TypeParamsOwner].
func (n StructDef) WhereClause() (WhereClause, bool) { return child[WhereClause](n) }

// Attrs implements [AttrsOwner].
func (n StructDef) Attrs() iter.Seq[Attr] { return children[Attr](n) }

// FieldList returns the braced field list, if the source has one.
func (n StructDef) FieldList() (NamedFieldDefList, bool) { return child[NamedFieldDefList](n) }

// Fields iterates over the struct's fields.
func (n StructDef) Fields() iter.Seq[NamedFieldDef] {
	return func(yield func(NamedFieldDef) bool) {
		list, ok := n.FieldList()
		if !ok {
			return
		}
		for f := range list.Fields() {
			if !yield(f) {
				return
			}
		}
	}
}

// EnumDef is an enum definition.
type EnumDef struct{ node syntax.Node }

// Syntax implements [Node].
func (n EnumDef) Syntax() syntax.Node { return n.node }

func (n *EnumDef) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindEnumDef {
		return false
	}
	n.node = s
	return true
}

// Name implements [NameOwner].
func (n EnumDef) Name() (Name, bool) { return child[Name](n) }

// TypeParamList implements [TypeParamsOwner].
func (n EnumDef) TypeParamList() (TypeParamList, bool) { return child[TypeParamList](n) }

// WhereClause implements [TypeParamsOwner].
func (n EnumDef) WhereClause() (WhereClause, bool) { return child[WhereClause](n) }

// Attrs implements [AttrsOwner].
func (n EnumDef) Attrs() iter.Seq[Attr] { return children[Attr](n) }

// VariantList returns the braced variant list, if the source has one.
func (n EnumDef) VariantList() (EnumVariantList, bool) { return child[EnumVariantList](n) }

// EnumVariantList is the braced list of an enum's variants.
type EnumVariantList struct{ node syntax.Node }

// Syntax implements [Node].
func (n EnumVariantList) Syntax() syntax.Node { return n.node }

func (n *EnumVariantList) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindEnumVariantList {
		return false
	}
	n.node = s
	return true
}

// Variants iterates over the list's variants.
func (n EnumVariantList) Variants() iter.Seq[EnumVariant] { return children[EnumVariant](n) }

// EnumVariant is a single variant of an enum.
type EnumVariant struct{ node syntax.Node }

// Syntax implements [Node].
func (n EnumVariant) Syntax() syntax.Node { return n.node }

func (n *EnumVariant) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindEnumVariant {
		return false
	}
	n.node = s
	return true
}

// Name implements [NameOwner].
func (n EnumVariant) Name() (Name, bool) { return child[Name](n) }

// Attrs implements [AttrsOwner].
func (n EnumVariant) Attrs() iter.Seq[Attr] { return children[Attr](n) }

// NamedFieldDefList is the braced list of a struct's fields.
type NamedFieldDefList struct{ node syntax.Node }

// Syntax implements [Node].
func (n NamedFieldDefList) Syntax() syntax.Node { return n.node }

func (n *NamedFieldDefList) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindNamedFieldDefList {
		return false
	}
	n.node = s
	return true
}

// Fields iterates over the list's fields.
func (n NamedFieldDefList) Fields() iter.Seq[NamedFieldDef] { return children[NamedFieldDef](n) }

// NamedFieldDef is a single 'name: Type' field definition.
type NamedFieldDef struct{ node syntax.Node }

// Syntax implements [Node].
func (n NamedFieldDef) Syntax() syntax.Node { return n.node }

func (n *NamedFieldDef) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindNamedFieldDef {
		return false
	}
	n.node = s
	return true
}

// Name implements [NameOwner].
func (n NamedFieldDef) Name() (Name, bool) { return child[Name](n) }

// Attrs implements [AttrsOwner].
func (n NamedFieldDef) Attrs() iter.Seq[Attr] { return children[Attr](n) }

// Type returns the field's declared type, if the source has one.
func (n NamedFieldDef) Type() (TypeRef, bool) { return unionChild(n, CastTypeRef, 0) }

// Name is a declared name.
type Name struct{ node syntax.Node }

// Syntax implements [Node].
func (n Name) Syntax() syntax.Node { return n.node }

func (n *Name) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindName {
		return false
	}
	n.node = s
	return true
}

// Text returns the name's identifier text.
func (n Name) Text() string {
	text, _ := tokenChild(n, syntax.KindIdent)
	return text
}

// NameRef is a use of a name.
type NameRef struct{ node syntax.Node }

// Syntax implements [Node].
func (n NameRef) Syntax() syntax.Node { return n.node }

func (n *NameRef) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindNameRef {
		return false
	}
	n.node = s
	return true
}

// Text returns the referenced identifier text.
func (n NameRef) Text() string {
	text, _ := tokenChild(n, syntax.KindIdent)
	return text
}

// Attr is a single '#[...]' attribute.
type Attr struct{ node syntax.Node }

// Syntax implements [Node].
func (n Attr) Syntax() syntax.Node { return n.node }

func (n *Attr) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindAttr {
		return false
	}
	n.node = s
	return true
}

// NameText returns the attribute's name, if the source has one.
func (n Attr) NameText() (string, bool) { return tokenChild(n, syntax.KindIdent) }

// Value returns the attribute's argument token tree, if present.
func (n Attr) Value() (TokenTree, bool) { return child[TokenTree](n) }

// TokenTree is an uninterpreted parenthesized run of tokens, as found in
// attribute arguments.
type TokenTree struct{ node syntax.Node }

// Syntax implements [Node].
func (n TokenTree) Syntax() syntax.Node { return n.node }

func (n *TokenTree) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindTokenTree {
		return false
	}
	n.node = s
	return true
}

// TypeParamList is a '<...>' list of type parameters.
type TypeParamList struct{ node syntax.Node }

// Syntax implements [Node].
func (n TypeParamList) Syntax() syntax.Node { return n.node }

func (n *TypeParamList) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindTypeParamList {
		return false
	}
	n.node = s
	return true
}

// TypeParams iterates over the list's type parameters.
func (n TypeParamList) TypeParams() iter.Seq[TypeParam] { return children[TypeParam](n) }

// TypeParam is a single type parameter.
type TypeParam struct{ node syntax.Node }

// Syntax implements [Node].
func (n TypeParam) Syntax() syntax.Node { return n.node }

func (n *TypeParam) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindTypeParam {
		return false
	}
	n.node = s
	return true
}

// Name implements [NameOwner].
func (n TypeParam) Name() (Name, bool) { return child[Name](n) }

// WhereClause is a 'where' clause.
type WhereClause struct{ node syntax.Node }

// Syntax implements [Node].
func (n WhereClause) Syntax() syntax.Node { return n.node }

func (n *WhereClause) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindWhereClause {
		return false
	}
	n.node = s
	return true
}

// Preds iterates over the clause's predicates.
func (n WhereClause) Preds() iter.Seq[WherePred] { return children[WherePred](n) }

// WherePred is a single 'Name: Bound' predicate.
type WherePred struct{ node syntax.Node }

// Syntax implements [Node].
func (n WherePred) Syntax() syntax.Node { return n.node }

func (n *WherePred) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindWherePred {
		return false
	}
	n.node = s
	return true
}

// Subject returns the constrained name.
func (n WherePred) Subject() (NameRef, bool) { return child[NameRef](n) }

// Bound returns the bound type, if the source has one.
func (n WherePred) Bound() (TypeRef, bool) { return unionChild(n, CastTypeRef, 0) }

// ParamList is a function's parenthesized parameter list.
type ParamList struct{ node syntax.Node }

// Syntax implements [Node].
func (n ParamList) Syntax() syntax.Node { return n.node }

func (n *ParamList) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindParamList {
		return false
	}
	n.node = s
	return true
}

// Params iterates over the list's parameters.
func (n ParamList) Params() iter.Seq[Param] { return children[Param](n) }

// Param is a single 'name: Type' parameter.
type Param struct{ node syntax.Node }

// Syntax implements [Node].
func (n Param) Syntax() syntax.Node { return n.node }

func (n *Param) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindParam {
		return false
	}
	n.node = s
	return true
}

// Name implements [NameOwner].
func (n Param) Name() (Name, bool) { return child[Name](n) }

// Type returns the parameter's declared type, if the source has one.
func (n Param) Type() (TypeRef, bool) { return unionChild(n, CastTypeRef, 0) }

// RetType is a '-> Type' return clause.
type RetType struct{ node syntax.Node }

// Syntax implements [Node].
func (n RetType) Syntax() syntax.Node { return n.node }

func (n *RetType) cast(s syntax.Node) bool {
	if s.Kind() != syntax.KindRetType {
		return false
	}
	n.node = s
	return true
}

// Type returns the declared return type, if the source has one.
func (n RetType) Type() (TypeRef, bool) { return unionChild(n, CastTypeRef, 0) }

// NominalDef is the closed union of the two nominal-definition shapes.
//
// Exactly one variant matches any given node; the kind-to-variant mapping
// lives in [CastNominalDef] and nowhere else.
type NominalDef interface {
	NameOwner
	isNominalDef()
}

func (StructDef) isNominalDef() {}
func (EnumDef) isNominalDef()   {}

// CastNominalDef attempts to view n as either nominal-definition shape.
func CastNominalDef(n syntax.Node) (NominalDef, bool) {
	switch n.Kind() {
	case syntax.KindStructDef:
		v, ok := Cast[StructDef](n)
		return v, ok
	case syntax.KindEnumDef:
		v, ok := Cast[EnumDef](n)
		return v, ok
	default:
		return nil, false
	}
}

var (
	_ NameOwner = FnDef{}
	_ NameOwner = StructDef{}
	_ NameOwner = EnumDef{}
	_ NameOwner = EnumVariant{}
	_ NameOwner = NamedFieldDef{}
	_ NameOwner = TypeParam{}
	_ NameOwner = Param{}

	_ TypeParamsOwner = FnDef{}
	_ TypeParamsOwner = StructDef{}
	_ TypeParamsOwner = EnumDef{}

	_ AttrsOwner = FnDef{}
	_ AttrsOwner = StructDef{}
	_ AttrsOwner = EnumDef{}
	_ AttrsOwner = EnumVariant{}
	_ AttrsOwner = NamedFieldDef{}
)
