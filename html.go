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
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLBuilder is a [Builder] that constructs a [golang.org/x/net/html] node tree.
// [LanguageAttr] is stored as a "language-" class,
// the convention used by syntax highlighters.
type HTMLBuilder struct{}

// NewHTMLDocument returns a new empty <div> to use as a root.
func NewHTMLDocument() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     atom.Div.String(),
	}
}

// CreateNode returns a new detached element node.
// [TextTag] nodes are created as empty text nodes.
func (HTMLBuilder) CreateNode(tag Tag) *html.Node {
	if tag == TextTag {
		return &html.Node{Type: html.TextNode}
	}
	a := tag.Atom()
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}

// AppendChild appends child to parent.
// It panics if child already has a parent.
func (HTMLBuilder) AppendChild(parent, child *html.Node) {
	parent.AppendChild(child)
}

// AppendText appends a new text node to parent.
func (HTMLBuilder) AppendText(parent *html.Node, text string) {
	parent.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: text,
	})
}

// SetAttribute sets an attribute on an element,
// replacing any previous value for the key.
func (HTMLBuilder) SetAttribute(node *html.Node, key, value string) {
	if key == LanguageAttr {
		key, value = "class", "language-"+value
	}
	for i := range node.Attr {
		if node.Attr[i].Namespace == "" && node.Attr[i].Key == key {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: value})
}

// RenderHTMLNode writes the children of root to w using [html.Render].
func RenderHTMLNode(w io.Writer, root *html.Node) error {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("render markdown to html: %w", err)
		}
	}
	return nil
}
