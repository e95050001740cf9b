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

package report

import (
	"sort"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
)

// File is a source file that can translate byte offsets into editor
// coordinates. The line index is built lazily, at most once.
//
// File exists for hosts that render diagnostics; the syntax tree itself
// never stores locations, only byte offsets.
type File struct {
	name string
	text string

	once  sync.Once
	lines []int // byte offset of the start of each line
}

// NewFile returns a file with the given display name and contents.
func NewFile(name, text string) *File {
	return &File{name: name, text: text}
}

// Name returns the display name of this file.
func (f *File) Name() string { return f.name }

// Text returns the contents of this file.
func (f *File) Text() string { return f.text }

// Location is a 1-based editor coordinate within a [File].
//
// Column counts terminal cells, not bytes, so multi-byte and wide
// characters land where an editor would put the caret.
type Location struct {
	Offset int
	Line   int
	Column int
}

// Location translates a byte offset into a [Location].
//
// Offsets out of range are clamped to the file bounds.
func (f *File) Location(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.text) {
		offset = len(f.text)
	}

	f.once.Do(f.index)
	line := sort.Search(len(f.lines), func(i int) bool {
		return f.lines[i] > offset
	}) - 1

	prefix := f.text[f.lines[line]:offset]
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: uniseg.StringWidth(prefix) + 1,
	}
}

func (f *File) index() {
	f.lines = append(f.lines, 0)
	for i := 0; i < len(f.text); {
		next := strings.IndexByte(f.text[i:], '\n')
		if next < 0 {
			break
		}
		i += next + 1
		f.lines = append(f.lines, i)
	}
}
