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

// Package lexer turns Fern source text into a flat token stream.
//
// The stream is gap-free: token lengths sum to exactly the input length,
// whatever the input. Bytes the lexer does not recognize become
// [syntax.KindError] tokens; an unterminated string is still a string
// token. Tokenization never fails.
package lexer

import (
	"unicode/utf8"

	"github.com/fernlang/fern/syntax"
)

// Token is a single lexed token: a kind and a byte length. Tokens carry no
// text or position; both are recovered from the source and a running
// offset.
type Token struct {
	Kind syntax.Kind
	Len  int
}

var keywords = map[string]syntax.Kind{
	"fn":     syntax.KindFnKw,
	"struct": syntax.KindStructKw,
	"enum":   syntax.KindEnumKw,
	"let":    syntax.KindLetKw,
	"where":  syntax.KindWhereKw,
	"true":   syntax.KindTrueKw,
	"false":  syntax.KindFalseKw,
}

// Tokenize lexes text into a token stream covering the entire input.
func Tokenize(text string) []Token {
	var toks []Token
	for pos := 0; pos < len(text); {
		kind, length := next(text[pos:])
		toks = append(toks, Token{Kind: kind, Len: length})
		pos += length
	}
	return toks
}

func next(rest string) (syntax.Kind, int) {
	c := rest[0]
	switch {
	case isSpace(c):
		return syntax.KindWhitespace, runLen(rest, isSpace)
	case c == '/' && len(rest) > 1 && rest[1] == '/':
		return syntax.KindComment, commentLen(rest)
	case isIdentStart(c):
		n := runLen(rest, isIdentPart)
		if kw, ok := keywords[rest[:n]]; ok {
			return kw, n
		}
		return syntax.KindIdent, n
	case isDigit(c):
		return syntax.KindIntNumber, runLen(rest, isDigit)
	case c == '"':
		return syntax.KindString, stringLen(rest)
	}

	if len(rest) > 1 {
		switch rest[:2] {
		case "==":
			return syntax.KindEqEq, 2
		case "!=":
			return syntax.KindNeq, 2
		case "&&":
			return syntax.KindAmpAmp, 2
		case "||":
			return syntax.KindPipePipe, 2
		case "->":
			return syntax.KindThinArrow, 2
		}
	}

	switch c {
	case '(':
		return syntax.KindLParen, 1
	case ')':
		return syntax.KindRParen, 1
	case '{':
		return syntax.KindLCurly, 1
	case '}':
		return syntax.KindRCurly, 1
	case '[':
		return syntax.KindLBrack, 1
	case ']':
		return syntax.KindRBrack, 1
	case '<':
		return syntax.KindLAngle, 1
	case '>':
		return syntax.KindRAngle, 1
	case ',':
		return syntax.KindComma, 1
	case ':':
		return syntax.KindColon, 1
	case ';':
		return syntax.KindSemi, 1
	case '#':
		return syntax.KindPound, 1
	case '=':
		return syntax.KindEq, 1
	case '!':
		return syntax.KindBang, 1
	case '+':
		return syntax.KindPlus, 1
	case '-':
		return syntax.KindMinus, 1
	case '*':
		return syntax.KindStar, 1
	case '/':
		return syntax.KindSlash, 1
	case '&':
		return syntax.KindAmp, 1
	case '|':
		return syntax.KindPipe, 1
	}

	// Whole rune, so error tokens never split a UTF-8 sequence.
	_, size := utf8.DecodeRuneInString(rest)
	return syntax.KindError, size
}

func runLen(s string, pred func(byte) bool) int {
	n := 1
	for n < len(s) && pred(s[n]) {
		n++
	}
	return n
}

func commentLen(s string) int {
	for i := 2; i < len(s); i++ {
		if s[i] == '\n' {
			return i
		}
	}
	return len(s)
}

func stringLen(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		case '\n':
			// Unterminated: stop at the line break.
			return i
		}
	}
	return len(s)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
