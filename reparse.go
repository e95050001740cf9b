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

package fern

import (
	"sync/atomic"

	"github.com/fernlang/fern/grammar"
	"github.com/fernlang/fern/lexer"
	"github.com/fernlang/fern/report"
	"github.com/fernlang/fern/syntax"
)

// reparseFastPaths counts successful incremental reparses. Tests use it
// to pin down which path [File.Reparse] took.
var reparseFastPaths atomic.Int64

// incremental attempts to reparse only the smallest reparsable node
// covering edit, splicing the result into a structurally shared copy of
// the old tree. It returns nil whenever it cannot prove the result would
// match a full reparse, and [File.Reparse] falls back.
func (f *File) incremental(edit Edit) *File {
	node := f.reparseTarget(edit)
	if node.IsZero() {
		return nil
	}

	nodeSpan := node.Span()
	// Rebase the edit into the node's own text.
	local := Edit{
		Delete: edit.Delete.Shift(-nodeSpan.Start),
		Insert: edit.Insert,
	}
	text := local.Apply(node.Text())

	toks := lexer.Tokenize(text)
	if !balancedBlock(toks) {
		return nil
	}

	reparse, ok := grammar.Reparser(node.Kind())
	if !ok {
		return nil
	}
	b := syntax.NewBuilder()
	reparse(grammar.NewParser(text, toks, b))
	sub, errs := b.Finish()
	if sub.Width() != len(text) || sub.Kind() != node.Kind() {
		// The edited text no longer parses as a single node of this
		// kind, for example because it now holds two adjacent blocks.
		return nil
	}

	merged, ok := f.mergeDiagnostics(nodeSpan, edit, errs)
	if !ok {
		return nil
	}
	reparseFastPaths.Add(1)
	return newFile(edit.Apply(f.text), node.ReplaceWith(sub), merged)
}

// reparseTarget finds the nearest ancestor of the edited range that the
// grammar can reparse in isolation, or the zero Node if there is none.
func (f *File) reparseTarget(edit Edit) syntax.Node {
	covering := syntax.CoveringNode(f.Syntax(), edit.Delete)
	for n := range covering.Ancestors() {
		if _, ok := grammar.Reparser(n.Kind()); ok {
			return n
		}
	}
	return syntax.Zero
}

// balancedBlock reports whether toks is a single brace-balanced run:
// it must start with { and end with }, with braces in between nesting
// properly. Leading or trailing trivia fails the check, since a
// reparsable node's text owns no surrounding trivia.
func balancedBlock(toks []lexer.Token) bool {
	if len(toks) == 0 {
		return false
	}
	if toks[0].Kind != syntax.KindLCurly || toks[len(toks)-1].Kind != syntax.KindRCurly {
		return false
	}
	depth := 0
	for _, tok := range toks {
		switch tok.Kind {
		case syntax.KindLCurly:
			depth++
		case syntax.KindRCurly:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// mergeDiagnostics rebuilds the diagnostic list for the edited file from
// the old file's diagnostics and the diagnostics of the reparsed node.
//
// Diagnostics inside the reparsed node are replaced wholesale by the new
// localized ones; diagnostics before the node are untouched; diagnostics
// after it shift by the edit's length change. Two kinds of diagnostic
// have no safe rewrite, so merging reports failure and the caller falls
// back to a full reparse: one straddling the node's boundary, and one
// sitting on the node's opening delimiter. The latter comes from the
// surrounding grammar (the localized entry point always finds its '{'
// and never diagnoses it), so dropping it would lose it for good.
func (f *File) mergeDiagnostics(nodeSpan report.Span, edit Edit, local []report.Diagnostic) ([]report.Diagnostic, bool) {
	delta := edit.delta()
	var merged []report.Diagnostic
	for _, d := range f.Errors() {
		switch {
		case d.Span.End <= nodeSpan.Start:
			merged = append(merged, d)
		case d.Span.Start >= nodeSpan.End:
			d.Span = d.Span.Shift(delta)
			merged = append(merged, d)
		case nodeSpan.ContainsSpan(d.Span):
			if d.Span.Start == nodeSpan.Start {
				return nil, false
			}
			// Superseded by the localized reparse.
		default:
			return nil, false
		}
	}
	for _, d := range local {
		d.Span = d.Span.Shift(nodeSpan.Start)
		merged = append(merged, d)
	}
	return merged, true
}
