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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlang/fern/report"
	"github.com/fernlang/fern/syntax"
)

// buildBlock builds the tree for "{ x y }" by hand:
//
//	Block
//	  LCurly Whitespace
//	  ExprStmt > PathExpr > NameRef > Ident "x"
//	  Whitespace
//	  ExprStmt > PathExpr > NameRef > Ident "y"
//	  Whitespace RCurly
func buildBlock(t *testing.T) *syntax.Tree {
	t.Helper()

	b := syntax.NewBuilder()
	b.StartNode(syntax.KindBlock)
	b.Token(syntax.KindLCurly, "{")
	b.Token(syntax.KindWhitespace, " ")
	for _, name := range []string{"x", "y"} {
		b.StartNode(syntax.KindExprStmt)
		b.StartNode(syntax.KindPathExpr)
		b.StartNode(syntax.KindNameRef)
		b.Token(syntax.KindIdent, name)
		b.FinishNode()
		b.FinishNode()
		b.FinishNode()
		b.Token(syntax.KindWhitespace, " ")
	}
	b.Token(syntax.KindRCurly, "}")
	b.FinishNode()

	green, errs := b.Finish()
	require.Empty(t, errs)
	return syntax.NewTree(green, nil)
}

func TestNodeSpans(t *testing.T) {
	t.Parallel()

	root := buildBlock(t).Root()
	assert.Equal(t, report.Span{Start: 0, End: 7}, root.Span())
	assert.Equal(t, "{ x y }", root.Text())

	var spans []report.Span
	for child := range root.Children() {
		spans = append(spans, child.Span())
	}
	assert.Equal(t, []report.Span{
		{Start: 0, End: 1}, // {
		{Start: 1, End: 2},
		{Start: 2, End: 3}, // x
		{Start: 3, End: 4},
		{Start: 4, End: 5}, // y
		{Start: 5, End: 6},
		{Start: 6, End: 7}, // }
	}, spans)
}

func TestNodeNavigation(t *testing.T) {
	t.Parallel()

	root := buildBlock(t).Root()

	first := root.FirstChild()
	assert.Equal(t, syntax.KindLCurly, first.Kind())
	assert.True(t, first.PrevSibling().IsZero())

	last := root.LastChild()
	assert.Equal(t, syntax.KindRCurly, last.Kind())
	assert.True(t, last.NextSibling().IsZero())

	stmt := first.NextSibling().NextSibling()
	assert.Equal(t, syntax.KindExprStmt, stmt.Kind())
	assert.True(t, stmt.Parent().Same(root))

	ident := stmt.FirstChild().FirstChild().FirstChild()
	assert.Equal(t, syntax.KindIdent, ident.Kind())
	text, ok := ident.LeafText()
	assert.True(t, ok)
	assert.Equal(t, "x", text)

	var kinds []syntax.Kind
	for n := range ident.Ancestors() {
		kinds = append(kinds, n.Kind())
	}
	assert.Equal(t, []syntax.Kind{
		syntax.KindIdent,
		syntax.KindNameRef,
		syntax.KindPathExpr,
		syntax.KindExprStmt,
		syntax.KindBlock,
	}, kinds)
}

func TestNodeZero(t *testing.T) {
	t.Parallel()

	assert.True(t, syntax.Zero.IsZero())
	assert.Equal(t, syntax.KindError, syntax.Zero.Kind())
	assert.Equal(t, "", syntax.Zero.Text())
	assert.Nil(t, syntax.Zero.Tree())
	assert.True(t, syntax.Zero.Parent().IsZero())
	assert.True(t, syntax.Zero.Same(syntax.Zero))

	root := buildBlock(t).Root()
	assert.True(t, root.Parent().IsZero())
	assert.False(t, root.Same(syntax.Zero))
}

func TestNodeSameInternedLeaves(t *testing.T) {
	t.Parallel()

	b := syntax.NewBuilder()
	b.StartNode(syntax.KindArgList)
	b.Token(syntax.KindIdent, "x")
	b.Token(syntax.KindIdent, "x")
	b.FinishNode()
	green, _ := b.Finish()
	root := syntax.NewTree(green, nil).Root()

	first := root.FirstChild()
	second := root.LastChild()
	// The two tokens share one green node; position tells them apart.
	assert.Same(t, first.Green(), second.Green())
	assert.False(t, first.Same(second))
	assert.True(t, first.Same(root.FirstChild()))
}

func TestNodeReplaceWith(t *testing.T) {
	t.Parallel()

	old := buildBlock(t)
	root := old.Root()

	// Replace the first statement, "x", with "z".
	stmt := root.FirstChild().NextSibling().NextSibling()
	require.Equal(t, syntax.KindExprStmt, stmt.Kind())

	b := syntax.NewBuilder()
	b.StartNode(syntax.KindExprStmt)
	b.StartNode(syntax.KindPathExpr)
	b.StartNode(syntax.KindNameRef)
	b.Token(syntax.KindIdent, "z")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	repl, _ := b.Finish()

	green := stmt.ReplaceWith(repl)
	assert.Equal(t, "{ z y }", green.Text())
	assert.Equal(t, "{ x y }", old.Text(), "the old tree is untouched")

	// The sibling statement's subtree is shared, not copied.
	assert.Same(t, root.Green().Child(4), green.Child(4))

	assert.Panics(t, func() { syntax.Zero.ReplaceWith(repl) })
}
