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

// Package grammar is Fern's error-tolerant recursive descent parser.
//
// Entry points drive a [syntax.Builder] over a token stream. None of them
// can fail: unexpected tokens are wrapped in error nodes, missing
// delimiters become diagnostics, and every token of the input ends up in
// the tree, so the tree's text always reproduces the input byte for byte.
//
// Besides the whole-file entry point there is one entry point per
// reparsable kind, each able to parse just that region's text in
// isolation; [Reparser] maps a kind to its entry point.
package grammar

import "github.com/fernlang/fern/syntax"

// File parses a whole source file. The root node spans the entire input,
// including leading and trailing trivia.
func File(p *Parser) {
	p.b.StartNode(syntax.KindSourceFile)
	for !p.eof() {
		item(p)
	}
	p.flushTrivia()
	p.b.FinishNode()
}

// Block parses a single brace-delimited statement block. The input must
// start at the '{'.
func Block(p *Parser) {
	block(p)
}

// NamedFieldDefList parses a single brace-delimited field list. The input
// must start at the '{'.
func NamedFieldDefList(p *Parser) {
	namedFieldDefList(p)
}

// Reparser returns the dedicated entry point for a reparsable kind.
//
// The set of reparsable kinds is fixed and small: exactly those regions
// whose content can be parsed in isolation from the rest of the file.
func Reparser(kind syntax.Kind) (func(*Parser), bool) {
	switch kind {
	case syntax.KindBlock:
		return Block, true
	case syntax.KindNamedFieldDefList:
		return NamedFieldDefList, true
	default:
		return nil, false
	}
}
