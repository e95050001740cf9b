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
	"github.com/fernlang/fern/ast"
	"github.com/fernlang/fern/grammar"
	"github.com/fernlang/fern/lexer"
	"github.com/fernlang/fern/report"
	"github.com/fernlang/fern/syntax"
)

// File is one immutable parse result: a syntax tree and the diagnostics
// produced alongside it.
//
// A File is never mutated; [File.Reparse] returns a new one. Any number of
// goroutines may read a File concurrently.
type File struct {
	text string
	tree *syntax.Tree
}

// Parse parses text into a [File].
//
// Parse never fails: malformed input produces a tree that still holds
// every input byte, plus diagnostics describing what went wrong.
func Parse(text string) *File {
	toks := lexer.Tokenize(text)
	b := syntax.NewBuilder()
	grammar.File(grammar.NewParser(text, toks, b))
	green, errs := b.Finish()
	return newFile(text, green, errs)
}

func newFile(text string, green *syntax.GreenNode, errs []report.Diagnostic) *File {
	f := &File{text: text, tree: syntax.NewTree(green, errs)}
	if debugChecks {
		validateBlockStructure(f.Syntax())
	}
	return f
}

// Text returns the file's source text.
func (f *File) Text() string { return f.text }

// Syntax returns the untyped navigable root of the file's tree.
func (f *File) Syntax() syntax.Node { return f.tree.Root() }

// AST returns the typed root of the file's tree.
func (f *File) AST() ast.SourceFile {
	root, ok := ast.Cast[ast.SourceFile](f.Syntax())
	if !ok {
		// The grammar's whole-file entry point always produces a
		// SourceFile root.
		panic("fern: parse produced a non-SourceFile root")
	}
	return root
}

// Errors returns an independent copy of the file's diagnostics, ordered
// by span.
func (f *File) Errors() []report.Diagnostic { return f.tree.Errors() }

// Reparse returns a new File reflecting edit, leaving the receiver
// untouched.
//
// When the edit is confined to a reparsable region and the edited region
// still forms a single balanced block, only that region is retokenized
// and reparsed, and the rest of the tree is shared with the receiver.
// Otherwise the full edited text is reparsed. Either way the result is
// indistinguishable to callers.
func (f *File) Reparse(edit Edit) *File {
	if f2 := f.incremental(edit); f2 != nil {
		return f2
	}
	return Parse(edit.Apply(f.text))
}
