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

import "fmt"

// Span is a half-open byte range [Start, End) within some source text.
//
// Spans do not retain the text they refer to; they are plain offsets, which
// is what allows them to be carried inside immutable tree values and shifted
// cheaply when text around them moves.
type Span struct {
	Start, End int
}

// Point returns a zero-width span at the given offset.
func Point(offset int) Span {
	return Span{Start: offset, End: offset}
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns whether this span has zero width.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns whether offset lies within this span.
//
// A zero-width span contains only its own offset.
func (s Span) Contains(offset int) bool {
	if s.IsEmpty() {
		return offset == s.Start
	}
	return offset >= s.Start && offset < s.End
}

// ContainsSpan returns whether other lies entirely within this span.
//
// Containment is inclusive at both ends, so a zero-width span sitting on
// either boundary is contained.
func (s Span) ContainsSpan(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Shift returns this span moved by delta bytes.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta}
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}
