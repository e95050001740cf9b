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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fernlang/fern/report"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test", "foo\nbar\ncat: 🐈\n")

	tests := []report.Location{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 2, Line: 1, Column: 3},
		{Offset: 3, Line: 1, Column: 4},
		{Offset: 4, Line: 2, Column: 1},
		{Offset: 13, Line: 3, Column: 6},
		// The cat emoji is four bytes and two terminal cells wide.
		{Offset: 17, Line: 3, Column: 8},
		{Offset: 18, Line: 4, Column: 1},
	}

	for _, want := range tests {
		t.Logf("%q | %q", file.Text()[:want.Offset], file.Text()[want.Offset:])
		assert.Equal(t, want, file.Location(want.Offset))
	}
}

func TestLocationClamps(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test", "ab")
	assert.Equal(t, report.Location{Offset: 0, Line: 1, Column: 1}, file.Location(-5))
	assert.Equal(t, report.Location{Offset: 2, Line: 1, Column: 3}, file.Location(100))
	assert.Equal(t, "test", file.Name())
}
