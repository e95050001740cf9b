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

func typeRef(p *Parser) {
	switch p.peek() {
	case syntax.KindIdent:
		p.start(syntax.KindPathType)
		nameRef(p)
		p.finish()
	case syntax.KindLParen:
		p.start(syntax.KindParenType)
		p.bump()
		typeRef(p)
		p.expect(syntax.KindRParen, "')'")
		p.finish()
	case syntax.KindLBrack:
		p.start(syntax.KindArrayType)
		p.bump()
		typeRef(p)
		p.expect(syntax.KindRBrack, "']'")
		p.finish()
	default:
		p.errorHere("expected a type")
	}
}
