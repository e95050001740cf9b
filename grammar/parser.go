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

package grammar

import (
	"github.com/fernlang/fern/internal/ext/slicesx"
	"github.com/fernlang/fern/lexer"
	"github.com/fernlang/fern/report"
	"github.com/fernlang/fern/syntax"
)

// Parser is the state threaded through every grammar entry point: a token
// stream, a cursor into it, and the builder the tree is materialized
// through.
//
// Trivia (whitespace, comments) is held back and flushed to the innermost
// open node just before the next structural event. Leading trivia
// therefore ends up outside the construct that follows it, while trivia
// between a construct's delimiters ends up inside — a block's own text
// always starts at its '{' and ends at its '}'.
type Parser struct {
	text   string
	toks   []lexer.Token
	pos    int // index of the next unconsumed token, trivia included
	offset int // byte offset of toks[pos]
	b      *syntax.Builder
}

// NewParser returns a parser over text and its token stream, building into
// b.
func NewParser(text string, toks []lexer.Token, b *syntax.Builder) *Parser {
	return &Parser{text: text, toks: toks, b: b}
}

// peekTok returns the index and byte offset of the next significant token,
// or (-1, end-of-text offset) at EOF.
func (p *Parser) peekTok() (idx, off int) {
	idx, off = p.pos, p.offset
	for {
		t, ok := slicesx.Get(p.toks, idx)
		if !ok {
			return -1, off
		}
		if !t.Kind.IsTrivia() {
			return idx, off
		}
		idx++
		off += t.Len
	}
}

// peek returns the kind of the next significant token, or [syntax.KindEOF].
func (p *Parser) peek() syntax.Kind {
	idx, _ := p.peekTok()
	if idx < 0 {
		return syntax.KindEOF
	}
	return p.toks[idx].Kind
}

func (p *Parser) at(kind syntax.Kind) bool {
	return p.peek() == kind
}

func (p *Parser) eof() bool {
	return p.at(syntax.KindEOF)
}

// emit feeds the token at the cursor to the builder and advances.
func (p *Parser) emit() {
	t := p.toks[p.pos]
	p.b.Token(t.Kind, p.text[p.offset:p.offset+t.Len])
	p.pos++
	p.offset += t.Len
}

// flushTrivia emits any pending trivia into the currently open node.
func (p *Parser) flushTrivia() {
	for p.pos < len(p.toks) && p.toks[p.pos].Kind.IsTrivia() {
		p.emit()
	}
}

// bump consumes the next significant token, flushing pending trivia first.
func (p *Parser) bump() {
	p.flushTrivia()
	if p.pos >= len(p.toks) {
		panic("grammar: bump at end of input")
	}
	p.emit()
}

// start opens a node of the given kind, flushing pending trivia to the
// node that was open before it.
func (p *Parser) start(kind syntax.Kind) {
	p.flushTrivia()
	p.b.StartNode(kind)
}

// checkpoint flushes pending trivia and returns a checkpoint that a
// left-leaning node can later be started at.
func (p *Parser) checkpoint() syntax.Checkpoint {
	p.flushTrivia()
	return p.b.Checkpoint()
}

func (p *Parser) startAt(cp syntax.Checkpoint, kind syntax.Kind) {
	p.b.StartNodeAt(cp, kind)
}

func (p *Parser) finish() {
	p.b.FinishNode()
}

// errorHere records a diagnostic owning the next significant token, or a
// zero-width span at EOF.
func (p *Parser) errorHere(msg string) {
	idx, off := p.peekTok()
	span := report.Point(off)
	if idx >= 0 {
		span.End = off + p.toks[idx].Len
	}
	p.b.ErrorAt(span, msg)
}

// expect consumes a token of the given kind, or records a diagnostic
// without consuming anything.
func (p *Parser) expect(kind syntax.Kind, what string) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	p.errorHere("expected " + what)
	return false
}

// errorAndBump records a diagnostic and consumes one token into an error
// node, guaranteeing progress during recovery. At EOF only the diagnostic
// is recorded.
//
// Curly braces get special treatment so that every matched pair keeps
// delimiting a single node: a stray '{' opens an error node that owns its
// whole balanced region, and a stray '}' is consumed bare. The latter is
// safe because every loop inside a braced region stops at '}', so a bare
// one is only ever consumed where no '{' is open.
func (p *Parser) errorAndBump(msg string) {
	p.errorHere(msg)
	if p.eof() {
		return
	}
	switch p.peek() {
	case syntax.KindLCurly:
		p.errorBlock()
	case syntax.KindRCurly:
		p.bump()
	default:
		p.start(syntax.KindErrorNode)
		p.bump()
		p.finish()
	}
}

// errorBlock wraps a stray '{' and everything through its matching '}'
// in an error node. Nested braces recurse, so each matched pair ends up
// as the first and last child of its own node.
func (p *Parser) errorBlock() {
	p.start(syntax.KindErrorNode)
	p.bump() // {
	for !p.eof() {
		switch p.peek() {
		case syntax.KindRCurly:
			p.bump()
			p.finish()
			return
		case syntax.KindLCurly:
			p.errorBlock()
		default:
			p.bump()
		}
	}
	p.finish()
}

// peekPastAttrs returns the kind of the first significant token after any
// run of attributes, without consuming anything. This is how item parsing
// decides which node to open before the attributes are inside it.
func (p *Parser) peekPastAttrs() syntax.Kind {
	idx, _ := p.peekTok()
	for idx >= 0 && p.toks[idx].Kind == syntax.KindPound {
		idx = p.skipSignificant(idx + 1)
		if idx < 0 || p.toks[idx].Kind != syntax.KindLBrack {
			break
		}
		depth := 0
		for ; idx >= 0; idx = p.skipSignificant(idx + 1) {
			switch p.toks[idx].Kind {
			case syntax.KindLBrack:
				depth++
			case syntax.KindRBrack:
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if idx < 0 {
			break
		}
		idx = p.skipSignificant(idx + 1)
	}
	if idx < 0 {
		return syntax.KindEOF
	}
	return p.toks[idx].Kind
}

// skipSignificant returns the index of the first significant token at or
// after idx, or -1.
func (p *Parser) skipSignificant(idx int) int {
	for {
		t, ok := slicesx.Get(p.toks, idx)
		if !ok {
			return -1
		}
		if !t.Kind.IsTrivia() {
			return idx
		}
		idx++
	}
}
