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

func item(p *Parser) {
	switch p.peekPastAttrs() {
	case syntax.KindFnKw:
		fnDef(p)
	case syntax.KindStructKw:
		structDef(p)
	case syntax.KindEnumKw:
		enumDef(p)
	default:
		p.errorAndBump("expected an item")
	}
}

func fnDef(p *Parser) {
	p.start(syntax.KindFnDef)
	attrs(p)
	p.bump() // fn
	name(p)
	if p.at(syntax.KindLAngle) {
		typeParamList(p)
	}
	if p.at(syntax.KindLParen) {
		paramList(p)
	} else {
		p.errorHere("expected a parameter list")
	}
	if p.at(syntax.KindThinArrow) {
		retType(p)
	}
	if p.at(syntax.KindWhereKw) {
		whereClause(p)
	}
	if p.at(syntax.KindLCurly) {
		block(p)
	} else {
		p.errorHere("expected a function body")
	}
	p.finish()
}

func structDef(p *Parser) {
	p.start(syntax.KindStructDef)
	attrs(p)
	p.bump() // struct
	name(p)
	if p.at(syntax.KindLAngle) {
		typeParamList(p)
	}
	if p.at(syntax.KindWhereKw) {
		whereClause(p)
	}
	switch {
	case p.at(syntax.KindLCurly):
		namedFieldDefList(p)
	case p.at(syntax.KindSemi):
		p.bump()
	default:
		p.errorHere("expected a field list")
	}
	p.finish()
}

func enumDef(p *Parser) {
	p.start(syntax.KindEnumDef)
	attrs(p)
	p.bump() // enum
	name(p)
	if p.at(syntax.KindLAngle) {
		typeParamList(p)
	}
	if p.at(syntax.KindWhereKw) {
		whereClause(p)
	}
	if p.at(syntax.KindLCurly) {
		enumVariantList(p)
	} else {
		p.errorHere("expected a variant list")
	}
	p.finish()
}

func enumVariantList(p *Parser) {
	p.start(syntax.KindEnumVariantList)
	p.bump() // {
	for !p.at(syntax.KindRCurly) && !p.eof() {
		if p.peekPastAttrs() != syntax.KindIdent {
			p.errorAndBump("expected a variant")
			continue
		}
		p.start(syntax.KindEnumVariant)
		attrs(p)
		name(p)
		p.finish()
		if p.at(syntax.KindComma) {
			p.bump()
		} else if !p.at(syntax.KindRCurly) {
			p.errorHere("expected ','")
		}
	}
	p.expect(syntax.KindRCurly, "'}'")
	p.finish()
}

// namedFieldDefList parses a brace-delimited field list. It is one of the
// two reparsable regions; see [NamedFieldDefList].
func namedFieldDefList(p *Parser) {
	p.start(syntax.KindNamedFieldDefList)
	p.expect(syntax.KindLCurly, "'{'")
	for !p.at(syntax.KindRCurly) && !p.eof() {
		if p.peekPastAttrs() != syntax.KindIdent {
			p.errorAndBump("expected a field")
			continue
		}
		namedFieldDef(p)
		if p.at(syntax.KindComma) {
			p.bump()
		} else if !p.at(syntax.KindRCurly) {
			p.errorHere("expected ','")
		}
	}
	p.expect(syntax.KindRCurly, "'}'")
	p.finish()
}

func namedFieldDef(p *Parser) {
	p.start(syntax.KindNamedFieldDef)
	attrs(p)
	name(p)
	p.expect(syntax.KindColon, "':'")
	typeRef(p)
	p.finish()
}

func attrs(p *Parser) {
	for p.at(syntax.KindPound) {
		attr(p)
	}
}

func attr(p *Parser) {
	p.start(syntax.KindAttr)
	p.bump() // #
	p.expect(syntax.KindLBrack, "'['")
	if p.at(syntax.KindIdent) {
		p.bump()
	} else {
		p.errorHere("expected an attribute name")
	}
	if p.at(syntax.KindLParen) {
		tokenTree(p)
	}
	p.expect(syntax.KindRBrack, "']'")
	p.finish()
}

// tokenTree consumes a parenthesized run of arbitrary tokens, tracking
// only paren nesting. Attribute arguments are uninterpreted.
func tokenTree(p *Parser) {
	p.start(syntax.KindTokenTree)
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case syntax.KindLParen:
			depth++
		case syntax.KindRParen:
			depth--
		}
		p.bump()
		if depth == 0 {
			break
		}
	}
	if depth != 0 {
		p.errorHere("expected ')'")
	}
	p.finish()
}

func typeParamList(p *Parser) {
	p.start(syntax.KindTypeParamList)
	p.bump() // <
	for !p.at(syntax.KindRAngle) && !p.at(syntax.KindLCurly) && !p.eof() {
		if !p.at(syntax.KindIdent) {
			p.errorAndBump("expected a type parameter")
			continue
		}
		p.start(syntax.KindTypeParam)
		name(p)
		p.finish()
		if p.at(syntax.KindComma) {
			p.bump()
		} else if !p.at(syntax.KindRAngle) {
			p.errorHere("expected ','")
		}
	}
	p.expect(syntax.KindRAngle, "'>'")
	p.finish()
}

func whereClause(p *Parser) {
	p.start(syntax.KindWhereClause)
	p.bump() // where
	for {
		if !p.at(syntax.KindIdent) {
			p.errorHere("expected a where predicate")
			break
		}
		p.start(syntax.KindWherePred)
		nameRef(p)
		p.expect(syntax.KindColon, "':'")
		typeRef(p)
		p.finish()
		if !p.at(syntax.KindComma) {
			break
		}
		p.bump()
	}
	p.finish()
}

func paramList(p *Parser) {
	p.start(syntax.KindParamList)
	p.bump() // (
	for !p.at(syntax.KindRParen) && !p.at(syntax.KindLCurly) && !p.eof() {
		if !p.at(syntax.KindIdent) {
			p.errorAndBump("expected a parameter")
			continue
		}
		p.start(syntax.KindParam)
		name(p)
		p.expect(syntax.KindColon, "':'")
		typeRef(p)
		p.finish()
		if p.at(syntax.KindComma) {
			p.bump()
		} else if !p.at(syntax.KindRParen) {
			p.errorHere("expected ','")
		}
	}
	p.expect(syntax.KindRParen, "')'")
	p.finish()
}

func retType(p *Parser) {
	p.start(syntax.KindRetType)
	p.bump() // ->
	typeRef(p)
	p.finish()
}

// block parses a brace-delimited statement block. It is one of the two
// reparsable regions; see [Block].
func block(p *Parser) {
	p.start(syntax.KindBlock)
	p.expect(syntax.KindLCurly, "'{'")
	for !p.at(syntax.KindRCurly) && !p.eof() {
		stmt(p)
	}
	p.expect(syntax.KindRCurly, "'}'")
	p.finish()
}

func stmt(p *Parser) {
	switch {
	case p.at(syntax.KindLetKw):
		letStmt(p)
	case atExprStart(p.peek()):
		exprStmt(p)
	default:
		p.errorAndBump("expected a statement")
	}
}

func letStmt(p *Parser) {
	p.start(syntax.KindLetStmt)
	p.bump() // let
	name(p)
	if p.at(syntax.KindColon) {
		p.bump()
		typeRef(p)
	}
	p.expect(syntax.KindEq, "'='")
	expr(p)
	if p.at(syntax.KindSemi) {
		p.bump()
	}
	p.finish()
}

func exprStmt(p *Parser) {
	p.start(syntax.KindExprStmt)
	expr(p)
	if p.at(syntax.KindSemi) {
		p.bump()
	}
	p.finish()
}

func name(p *Parser) {
	if !p.at(syntax.KindIdent) {
		p.errorHere("expected a name")
		return
	}
	p.start(syntax.KindName)
	p.bump()
	p.finish()
}

func nameRef(p *Parser) {
	if !p.at(syntax.KindIdent) {
		p.errorHere("expected a name")
		return
	}
	p.start(syntax.KindNameRef)
	p.bump()
	p.finish()
}
