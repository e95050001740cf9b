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

package syntax

import (
	"fmt"
	"strings"
)

// Dump renders a node's subtree as an indented listing, one node per line,
// token leaves with their quoted text:
//
//	SourceFile@[0, 9)
//	  FnDef@[0, 9)
//	    FnKw@[0, 2) "fn"
//	    ...
//
// The format is stable; golden tests compare against it.
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	span := n.Span()
	fmt.Fprintf(sb, "%v@[%d, %d)", n.Kind(), span.Start, span.End)
	if text, ok := n.LeafText(); ok {
		fmt.Fprintf(sb, " %q", text)
	}
	sb.WriteByte('\n')
	for child := range n.Children() {
		dump(sb, child, depth+1)
	}
}
