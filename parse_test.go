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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlang/fern"
	"github.com/fernlang/fern/syntax"
)

func TestParseLossless(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"fn f() { }",
		"fn main() {\n\t// greet\n\tprint(\"hi\");\n}\n",
		"struct S { a: A, b: B }",
		"total garbage $$$ \x00\x01",
		"fn broken( { let } }",
	}
	for _, text := range inputs {
		file := fern.Parse(text)
		assert.Equal(t, text, file.Text())
		assert.Equal(t, text, file.Syntax().Text(), "the tree must reproduce the input")
		assert.Equal(t, syntax.KindSourceFile, file.Syntax().Kind())
	}
}

func TestParseDiagnostics(t *testing.T) {
	t.Parallel()

	file := fern.Parse("fn f( { }")
	require.NotEmpty(t, file.Errors())

	// Errors returns an independent copy.
	errs := file.Errors()
	errs[0].Message = "clobbered"
	assert.NotEqual(t, "clobbered", file.Errors()[0].Message)
}

func TestParseAST(t *testing.T) {
	t.Parallel()

	file := fern.Parse("fn f() { } struct S;")

	var names []string
	for fn := range file.AST().Functions() {
		name, ok := fn.Name()
		require.True(t, ok)
		names = append(names, name.Text())
	}
	for def := range file.AST().Nominals() {
		name, ok := def.Name()
		require.True(t, ok)
		names = append(names, name.Text())
	}
	assert.Equal(t, []string{"f", "S"}, names)
}

func TestParseRecoversEverywhere(t *testing.T) {
	t.Parallel()

	// A parse must produce a full-width SourceFile no matter what, with
	// every diagnostic span inside the input.
	inputs := []string{
		"fn", "fn f", "fn f(", "fn f()", "fn f() {",
		"struct", "struct S {", "struct S { x", "struct S { x:",
		"enum", "enum E {", "enum E { ,",
		"#[", "#[attr", "#[attr(",
		"}{", ")(", "][",
	}
	for _, text := range inputs {
		file := fern.Parse(text)
		assert.Equal(t, text, file.Text())
		for _, d := range file.Errors() {
			assert.GreaterOrEqual(t, d.Span.Start, 0)
			assert.LessOrEqual(t, d.Span.End, len(text), "diagnostic %v escapes %q", d, text)
		}
	}
}

func TestEdit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "axyzc", fern.Replace(1, 2, "xyz").Apply("abc"))
	assert.Equal(t, "ac", fern.Delete(1, 2).Apply("abc"))
	assert.Equal(t, "axbc", fern.Insert(1, "x").Apply("abc"))
	assert.Equal(t, "abcx", fern.Insert(3, "x").Apply("abc"))
	assert.Equal(t, "x", fern.Insert(0, "x").Apply(""))

	assert.Panics(t, func() { fern.Delete(2, 1).Apply("abc") })
	assert.Panics(t, func() { fern.Delete(0, 4).Apply("abc") })
	assert.Panics(t, func() { fern.Insert(-1, "x").Apply("abc") })
}
