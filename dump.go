// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mdstream

import (
	"strings"

	"go4.org/bytereplacer"
)

var dumpEscaper = bytereplacer.New(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

// Dump returns a compact single-line description of the tree rooted at n.
// Text nodes appear as quoted strings,
// attributes in square brackets after the tag,
// and children in parentheses:
//
//	document(h1("Hello " strong("World")) codeBlock(code[language=go]("x" lineBreak)))
func Dump(n *Node) string {
	sb := new(strings.Builder)
	Walk(n, &WalkOptions{
		Pre: func(c *Cursor) bool {
			curr := c.Node()
			if parent := c.Parent(); c.Depth() > 0 && parent.Child(0) != curr {
				sb.WriteString(" ")
			}
			if curr.Tag() == TextTag {
				sb.WriteString(`"`)
				sb.Write(dumpEscaper.Replace([]byte(curr.Text())))
				sb.WriteString(`"`)
				return false
			}
			sb.WriteString(curr.Tag().String())
			if attrs := curr.Attrs(); len(attrs) > 0 {
				sb.WriteString("[")
				for i, attr := range attrs {
					if i > 0 {
						sb.WriteString(" ")
					}
					sb.WriteString(attr.Key)
					sb.WriteString("=")
					sb.Write(dumpEscaper.Replace([]byte(attr.Value)))
				}
				sb.WriteString("]")
			}
			if curr.ChildCount() > 0 {
				sb.WriteString("(")
			}
			return true
		},
		Post: func(c *Cursor) bool {
			if c.Node().ChildCount() > 0 {
				sb.WriteString(")")
			}
			return true
		},
	})
	return sb.String()
}
