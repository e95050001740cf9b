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

package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/fernlang/fern/lexer"
)

// lex tokenizes text and renders each token as "Kind:text" for compact
// comparison.
func lex(text string) []string {
	var got []string
	offset := 0
	for _, tok := range lexer.Tokenize(text) {
		got = append(got, tok.Kind.String()+":"+text[offset:offset+tok.Len])
		offset += tok.Len
	}
	return got
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "keywords and idents",
			text: "fn fnord let lettuce",
			want: []string{
				"FnKw:fn", "Whitespace: ", "Ident:fnord", "Whitespace: ",
				"LetKw:let", "Whitespace: ", "Ident:lettuce",
			},
		},
		{
			name: "all keywords",
			text: "fn struct enum let where true false",
			want: []string{
				"FnKw:fn", "Whitespace: ", "StructKw:struct", "Whitespace: ",
				"EnumKw:enum", "Whitespace: ", "LetKw:let", "Whitespace: ",
				"WhereKw:where", "Whitespace: ", "TrueKw:true", "Whitespace: ",
				"FalseKw:false",
			},
		},
		{
			name: "numbers",
			text: "0 42 007",
			want: []string{
				"IntNumber:0", "Whitespace: ", "IntNumber:42",
				"Whitespace: ", "IntNumber:007",
			},
		},
		{
			name: "strings",
			text: `"hi" "a\"b" ""`,
			want: []string{
				`String:"hi"`, "Whitespace: ", `String:"a\"b"`,
				"Whitespace: ", `String:""`,
			},
		},
		{
			name: "unterminated string stops at newline",
			text: "\"oops\nx",
			want: []string{`String:"oops`, "Whitespace:\n", "Ident:x"},
		},
		{
			name: "unterminated string at eof",
			text: `"oops`,
			want: []string{`String:"oops`},
		},
		{
			name: "comment stops before newline",
			text: "// hey\nx",
			want: []string{"Comment:// hey", "Whitespace:\n", "Ident:x"},
		},
		{
			name: "comment at eof",
			text: "x // trailing",
			want: []string{"Ident:x", "Whitespace: ", "Comment:// trailing"},
		},
		{
			name: "two-char operators win over one-char",
			text: "== = != ! && & || | -> -",
			want: []string{
				"EqEq:==", "Whitespace: ", "Eq:=", "Whitespace: ",
				"Neq:!=", "Whitespace: ", "Bang:!", "Whitespace: ",
				"AmpAmp:&&", "Whitespace: ", "Amp:&", "Whitespace: ",
				"PipePipe:||", "Whitespace: ", "Pipe:|", "Whitespace: ",
				"ThinArrow:->", "Whitespace: ", "Minus:-",
			},
		},
		{
			name: "punctuation",
			text: "(){}[]<>,:;#+*/",
			want: []string{
				"LParen:(", "RParen:)", "LCurly:{", "RCurly:}",
				"LBrack:[", "RBrack:]", "LAngle:<", "RAngle:>",
				"Comma:,", "Colon::", "Semi:;", "Pound:#",
				"Plus:+", "Star:*", "Slash:/",
			},
		},
		{
			name: "whitespace runs coalesce",
			text: "a \t\r\n b",
			want: []string{"Ident:a", "Whitespace: \t\r\n ", "Ident:b"},
		},
		{
			name: "unrecognized bytes become whole-rune errors",
			text: "a@é?",
			want: []string{"Ident:a", "Error:@", "Error:é", "Error:?"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(test.want, lex(test.text)); diff != "" {
				t.Errorf("token mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeGapFree(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"fn f() { let x = 1 + 2; }",
		"struct S { a: A, b: B }",
		"\"unterminated\n}{][)(",
		"#[derive(Debug)] enum E { A, B }",
		"@@@\x80\x80 garbage \xff",
	}
	for _, text := range inputs {
		total := 0
		for _, tok := range lexer.Tokenize(text) {
			assert.Positive(t, tok.Len)
			total += tok.Len
		}
		assert.Equal(t, len(text), total, "token lengths must cover %q exactly", text)
	}
}
