// Copyright 2023 Ross Light
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
	"fmt"
	"io"
)

// LineBreakBehavior is an enumeration of rendering styles for [LineBreakTag] nodes.
type LineBreakBehavior int

const (
	// LineBreakElement renders line breaks as <br> elements.
	LineBreakElement LineBreakBehavior = iota
	// LineBreakNewline renders line breaks as newline characters,
	// which display as line breaks inside <pre> elements.
	LineBreakNewline
)

func (b LineBreakBehavior) String() string {
	switch b {
	case LineBreakElement:
		return "LineBreakElement"
	case LineBreakNewline:
		return "LineBreakNewline"
	default:
		return fmt.Sprintf("LineBreakBehavior(%d)", int(b))
	}
}

// An HTMLRenderer converts an in-memory tree into HTML.
// The tree does not need to be complete:
// rendering a tree that is still being built shows the document so far.
type HTMLRenderer struct {
	// LineBreakBehavior determines how line breaks in code blocks are rendered.
	LineBreakBehavior LineBreakBehavior
}

// RenderHTML writes the children of root to w as HTML
// using the default options for [HTMLRenderer].
func RenderHTML(w io.Writer, root *Node) error {
	return new(HTMLRenderer).Render(w, root)
}

// Render writes the children of root to w as HTML.
func (r *HTMLRenderer) Render(w io.Writer, root *Node) error {
	if _, err := w.Write(r.AppendHTML(nil, root)); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

// AppendHTML appends the rendered HTML of root's children to dst
// and returns the resulting byte slice.
func (r *HTMLRenderer) AppendHTML(dst []byte, root *Node) []byte {
	for i, n := 0, root.ChildCount(); i < n; i++ {
		Walk(root.Child(i), &WalkOptions{
			Pre: func(c *Cursor) bool {
				dst = r.openNode(dst, c.Node())
				return true
			},
			Post: func(c *Cursor) bool {
				dst = r.closeNode(dst, c.Node())
				return true
			},
		})
	}
	return dst
}

func (r *HTMLRenderer) openNode(dst []byte, n *Node) []byte {
	switch n.Tag() {
	case TextTag:
		return escapeHTML(dst, n.Text())
	case LineBreakTag:
		if r.LineBreakBehavior == LineBreakNewline {
			return append(dst, '\n')
		}
		return append(dst, "<br>"...)
	}
	name := n.Tag().Atom()
	if name == 0 {
		return dst
	}
	dst = append(dst, '<')
	dst = append(dst, name.String()...)
	for _, attr := range n.Attrs() {
		key, value := attr.Key, attr.Value
		if key == LanguageAttr {
			key, value = "class", "language-"+value
		}
		dst = append(dst, ' ')
		dst = append(dst, key...)
		dst = append(dst, `="`...)
		dst = escapeHTML(dst, value)
		dst = append(dst, '"')
	}
	return append(dst, '>')
}

func (r *HTMLRenderer) closeNode(dst []byte, n *Node) []byte {
	switch n.Tag() {
	case TextTag, LineBreakTag:
		return dst
	}
	name := n.Tag().Atom()
	if name == 0 {
		return dst
	}
	dst = append(dst, "</"...)
	dst = append(dst, name.String()...)
	return append(dst, '>')
}

// escapeHTML appends the HTML-escaped version of a string to a byte slice.
func escapeHTML(dst []byte, src string) []byte {
	verbatimStart := 0
	for i := 0; i < len(src); i++ {
		var esc string
		switch src[i] {
		case '&':
			esc = "&amp;"
		case '\'':
			// "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
			esc = "&#39;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		default:
			continue
		}
		dst = append(dst, src[verbatimStart:i]...)
		dst = append(dst, esc...)
		verbatimStart = i + 1
	}
	return append(dst, src[verbatimStart:]...)
}
