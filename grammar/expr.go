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

import "github.com/fernlang/fern/syntax"

// Binding powers for infix operators. A left power of zero means "not an
// operator". Left < right makes every operator left-associative.
func binaryBP(kind syntax.Kind) (left, right int) {
	switch kind {
	case syntax.KindPipePipe:
		return 1, 2
	case syntax.KindAmpAmp:
		return 3, 4
	case syntax.KindEqEq, syntax.KindNeq:
		return 5, 6
	case syntax.KindLAngle, syntax.KindRAngle:
		return 7, 8
	case syntax.KindPlus, syntax.KindMinus:
		return 9, 10
	case syntax.KindStar, syntax.KindSlash:
		return 11, 12
	default:
		return 0, 0
	}
}

const unaryBP = 13

func atExprStart(kind syntax.Kind) bool {
	switch kind {
	case syntax.KindIntNumber, syntax.KindString, syntax.KindTrueKw, syntax.KindFalseKw,
		syntax.KindIdent, syntax.KindLParen, syntax.KindMinus, syntax.KindBang:
		return true
	default:
		return false
	}
}

func expr(p *Parser) {
	exprBP(p, 1)
}

// exprBP is a Pratt loop: parse an operand, then wrap it in a BinExpr
// whenever an operator with enough binding power follows. The checkpoint
// taken before the operand is what each BinExpr is started at, so a chain
// of equal-power operators leans left.
func exprBP(p *Parser, minBP int) bool {
	cp := p.checkpoint()
	if !operand(p, cp) {
		return false
	}
	for {
		left, right := binaryBP(p.peek())
		if left == 0 || left < minBP {
			return true
		}
		p.startAt(cp, syntax.KindBinExpr)
		p.bump() // operator
		exprBP(p, right)
		p.finish()
	}
}

// operand parses a prefix, primary, or postfix expression. The checkpoint
// is reused to wrap calls around their callee.
func operand(p *Parser, cp syntax.Checkpoint) bool {
	switch p.peek() {
	case syntax.KindMinus, syntax.KindBang:
		p.start(syntax.KindPrefixExpr)
		p.bump()
		exprBP(p, unaryBP)
		p.finish()
	case syntax.KindIntNumber, syntax.KindString, syntax.KindTrueKw, syntax.KindFalseKw:
		p.start(syntax.KindLiteral)
		p.bump()
		p.finish()
	case syntax.KindIdent:
		p.start(syntax.KindPathExpr)
		nameRef(p)
		p.finish()
	case syntax.KindLParen:
		p.start(syntax.KindParenExpr)
		p.bump()
		expr(p)
		p.expect(syntax.KindRParen, "')'")
		p.finish()
	default:
		p.errorHere("expected an expression")
		return false
	}

	for p.at(syntax.KindLParen) {
		p.startAt(cp, syntax.KindCallExpr)
		argList(p)
		p.finish()
	}
	return true
}

func argList(p *Parser) {
	p.start(syntax.KindArgList)
	p.bump() // (
	// A '}' ends the argument list without being consumed; it belongs to
	// the enclosing block.
	for !p.at(syntax.KindRParen) && !p.at(syntax.KindRCurly) && !p.eof() {
		if !atExprStart(p.peek()) {
			p.errorAndBump("expected an expression")
			continue
		}
		expr(p)
		if p.at(syntax.KindComma) {
			p.bump()
		} else if !p.at(syntax.KindRParen) && !p.at(syntax.KindRCurly) {
			p.errorHere("expected ','")
		}
	}
	p.expect(syntax.KindRParen, "')'")
	p.finish()
}
