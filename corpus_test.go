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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fernlang/fern"
	"github.com/fernlang/fern/internal/golden"
	"github.com/fernlang/fern/syntax"
)

// TestCorpus checks whole-file parses against golden tree dumps and
// diagnostic listings. Refresh with FERN_REFRESH='**' go test.
func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata",
		Refresh:   "FERN_REFRESH",
		Extension: "fern",
		Outputs: []golden.Output{
			{Extension: "ast"},
			{Extension: "errors"},
		},
		Test: func(t *testing.T, path, text string) []string {
			file := fern.Parse(text)
			require.Equal(t, text, file.Syntax().Text(), "parse must be lossless")

			var errs strings.Builder
			for _, d := range file.Errors() {
				fmt.Fprintf(&errs, "%v\n", d)
			}
			return []string{syntax.Dump(file.Syntax()), errs.String()}
		},
	}
	corpus.Run(t)
}
