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

package fern_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlang/fern"
	"github.com/fernlang/fern/syntax"
)

// checkReparse applies edit both ways, asserts the incremental result is
// indistinguishable from a full parse, and reports whether the fast path
// was taken.
//
// Tests that consult the fast-path counter must not run in parallel.
func checkReparse(t *testing.T, text string, edit fern.Edit) bool {
	t.Helper()

	before := fern.ReparseFastPaths()
	fast := fern.Parse(text).Reparse(edit)
	took := fern.ReparseFastPaths() > before

	full := fern.Parse(edit.Apply(text))
	assert.Equal(t, full.Text(), fast.Text())
	assert.Equal(t, syntax.Dump(full.Syntax()), syntax.Dump(fast.Syntax()),
		"incremental and full parse must produce identical trees")
	assert.Equal(t, full.Errors(), fast.Errors(),
		"incremental and full parse must produce identical diagnostics")
	return took
}

func TestReparseInsideBlock(t *testing.T) {
	text := "fn f() { let x = 1; }"
	one := strings.Index(text, "1")

	took := checkReparse(t, text, fern.Replace(one, one+1, "42"))
	assert.True(t, took, "an edit inside a balanced block takes the fast path")
}

func TestReparseInsideFieldList(t *testing.T) {
	text := "struct S { a: A, b: B }"
	b := strings.Index(text, "b:")

	took := checkReparse(t, text, fern.Insert(b, "extra: E, "))
	assert.True(t, took, "an edit inside a field list takes the fast path")
}

func TestReparseSharesSubtrees(t *testing.T) {
	text := "fn before() { 0; } fn f() { let x = 1; } fn after() { 2; }"
	one := strings.Index(text, "1")

	old := fern.Parse(text)
	upd := old.Reparse(fern.Replace(one, one+1, "42"))

	// The functions around the edited one are shared green subtrees, not
	// reparsed copies.
	assert.Same(t, old.Syntax().FirstChild().Green(), upd.Syntax().FirstChild().Green())
	assert.Equal(t, text, old.Text(), "the old file is untouched")
}

func TestReparseFallbackUnbalanced(t *testing.T) {
	text := "fn f() { let x = 1; }"
	one := strings.Index(text, "1")

	took := checkReparse(t, text, fern.Replace(one, one+1, "{"))
	assert.False(t, took, "an edit that unbalances the block falls back")
}

func TestReparseFallbackOutsideBlock(t *testing.T) {
	text := "fn f() { let x = 1; }"

	took := checkReparse(t, text, fern.Replace(3, 4, "g"))
	assert.False(t, took, "an edit outside any reparsable region falls back")
}

func TestReparseFallbackSplitsBlock(t *testing.T) {
	// Replacing the blank inside "{ }" with "} {" keeps the braces
	// balanced but turns the region into two adjacent blocks; the
	// under-consumption guard must reject it.
	text := "fn f() { }"
	blank := strings.Index(text, "{ }") + 1

	took := checkReparse(t, text, fern.Replace(blank, blank+1, "} {"))
	assert.False(t, took)
}

func TestReparseFallbackEdgeTrivia(t *testing.T) {
	// Inserting at the very start of a block's text would put trivia
	// outside the braces; the balance check rejects it.
	text := "fn f() { }"
	brace := strings.Index(text, "{")

	took := checkReparse(t, text, fern.Insert(brace, " "))
	assert.False(t, took)
}

func TestReparseFallbackDiagnosticOnOpeningBrace(t *testing.T) {
	// "fn f { 1; }" carries "expected a parameter list" on the block's
	// own '{'. The localized block reparse cannot regenerate it, so the
	// fast path must not run, or the diagnostic would be lost.
	text := "fn f { 1; }"
	one := strings.Index(text, "1")

	took := checkReparse(t, text, fern.Replace(one, one+1, "2"))
	assert.False(t, took, "a diagnostic on the reparsed node's opening delimiter forces the full path")
}

func TestReparseDeletesAcrossStatements(t *testing.T) {
	text := "fn f() { let x = 1; let y = 2; }"
	start := strings.Index(text, "let y")

	took := checkReparse(t, text, fern.Delete(start, start+len("let y = 2;")))
	assert.True(t, took)
}

func TestReparseDiagnosticsShift(t *testing.T) {
	// A diagnostic after the edited block must shift by the edit's length
	// change; one inside it must be regenerated by the localized reparse.
	text := "fn f() { 1 + } @"
	one := strings.Index(text, "1")

	took := checkReparse(t, text, fern.Replace(one, one+1, "100"))
	assert.True(t, took)
}

func TestReparseNestedBlocksPickInnermost(t *testing.T) {
	// With no nested-block syntax in statements, the innermost reparsable
	// ancestor of an edit in a body is that body's own block.
	text := "fn f() { let x = 1; } fn g() { let y = 2; }"
	two := strings.Index(text, "2")

	old := fern.Parse(text)
	upd := old.Reparse(fern.Replace(two, two+1, "3"))

	// f is untouched and shared; only g's body was reparsed.
	assert.Same(t, old.Syntax().FirstChild().Green(), upd.Syntax().FirstChild().Green())
	assert.Equal(t, "fn f() { let x = 1; } fn g() { let y = 3; }", upd.Text())
}

func TestReparseChain(t *testing.T) {
	// A chain of single edits, each applied to the previous result.
	file := fern.Parse("fn f() { }")
	edits := []fern.Edit{
		fern.Insert(9, "let x = 1; "),
		fern.Insert(20, "let y = x + 1; "),
		fern.Replace(17, 18, "41"),
		fern.Delete(20, 35),
	}
	text := file.Text()
	for _, edit := range edits {
		text = edit.Apply(text)
		file = file.Reparse(edit)
		require.Equal(t, text, file.Text())
		require.Equal(t, fern.Parse(text).Errors(), file.Errors())
	}
}
