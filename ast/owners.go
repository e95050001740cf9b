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

import "iter"

// NameOwner is any construct that declares a name: functions, nominal
// definitions, fields, parameters, variants, and let bindings all qualify,
// without sharing any base type.
type NameOwner interface {
	Node

	// Name returns the declared name, or false if the source is too
	// malformed to have one.
	Name() (Name, bool)
}

// TypeParamsOwner is any construct that can be generic.
type TypeParamsOwner interface {
	Node

	// TypeParamList returns the '<...>' list, if present.
	TypeParamList() (TypeParamList, bool)

	// WhereClause returns the 'where' clause, if present.
	WhereClause() (WhereClause, bool)
}

// AttrsOwner is any construct attributes can be attached to.
type AttrsOwner interface {
	Node

	// Attrs iterates over the attached attributes, outermost first.
	Attrs() iter.Seq[Attr]
}
