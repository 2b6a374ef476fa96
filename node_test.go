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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{DocumentTag, "document"},
		{Heading4Tag, "h4"},
		{OrderedListTag, "orderedList"},
		{LineBreakTag, "lineBreak"},
		{0, "Tag(0)"},
		{Tag(200), "Tag(200)"},
	}
	for _, test := range tests {
		if got := test.tag.String(); got != test.want {
			t.Errorf("Tag(%d).String() = %q; want %q", uint8(test.tag), got, test.want)
		}
	}
}

func TestHeadingTag(t *testing.T) {
	tests := []struct {
		level int
		want  Tag
	}{
		{-1, Heading1Tag},
		{1, Heading1Tag},
		{3, Heading3Tag},
		{6, Heading6Tag},
		{7, Heading6Tag},
	}
	for _, test := range tests {
		got := HeadingTag(test.level)
		if got != test.want {
			t.Errorf("HeadingTag(%d) = %v; want %v", test.level, got, test.want)
		}
	}
	for level := 1; level <= 6; level++ {
		if got := HeadingTag(level).HeadingLevel(); got != level {
			t.Errorf("HeadingTag(%d).HeadingLevel() = %d", level, got)
		}
	}
	if got := ParagraphTag.HeadingLevel(); got != 0 {
		t.Errorf("ParagraphTag.HeadingLevel() = %d; want 0", got)
	}
}

func TestIsBlock(t *testing.T) {
	for _, tag := range []Tag{Heading1Tag, ParagraphTag, ListItemTag, CodeBlockTag, CodeTag} {
		if !tag.IsBlock() {
			t.Errorf("%v.IsBlock() = false; want true", tag)
		}
	}
	for _, tag := range []Tag{EmphasisTag, InlineCodeTag, LineBreakTag, TextTag} {
		if tag.IsBlock() {
			t.Errorf("%v.IsBlock() = true; want false", tag)
		}
	}
}

func TestTreeBuilder(t *testing.T) {
	var b TreeBuilder
	root := NewDocument()
	p := b.CreateNode(ParagraphTag)
	b.AppendChild(root, p)
	b.AppendText(p, "hi")
	b.SetAttribute(p, "id", "a")
	b.SetAttribute(p, "class", "x")
	b.SetAttribute(p, "id", "b")

	if got := root.ChildCount(); got != 1 {
		t.Fatalf("root.ChildCount() = %d; want 1", got)
	}
	if got := root.Child(0).Parent(); got != root {
		t.Errorf("paragraph parent = %p; want %p", got, root)
	}
	if got := p.LastChild().Text(); got != "hi" {
		t.Errorf("text = %q; want \"hi\"", got)
	}
	want := []Attribute{{Key: "id", Value: "b"}, {Key: "class", Value: "x"}}
	if diff := cmp.Diff(want, p.Attrs()); diff != "" {
		t.Errorf("attributes (-want +got):\n%s", diff)
	}
	if v, ok := p.Attr("class"); v != "x" || !ok {
		t.Errorf(`p.Attr("class") = %q, %t; want "x", true`, v, ok)
	}
	if v, ok := p.Attr("missing"); v != "" || ok {
		t.Errorf(`p.Attr("missing") = %q, %t; want "", false`, v, ok)
	}
}

func TestTreeBuilderPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func(b TreeBuilder, root *Node)
	}{
		{
			name: "Reparent",
			f: func(b TreeBuilder, root *Node) {
				n := b.CreateNode(ParagraphTag)
				b.AppendChild(root, n)
				b.AppendChild(root, n)
			},
		},
		{
			name: "Cycle",
			f: func(b TreeBuilder, root *Node) {
				n := b.CreateNode(ParagraphTag)
				b.AppendChild(n, n)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("did not panic")
				}
			}()
			test.f(TreeBuilder{}, NewDocument())
		})
	}
}

func TestNilNode(t *testing.T) {
	var n *Node
	if got := n.Tag(); got != 0 {
		t.Errorf("nil Tag() = %v; want 0", got)
	}
	if got := n.ChildCount(); got != 0 {
		t.Errorf("nil ChildCount() = %d; want 0", got)
	}
	if got := n.LastChild(); got != nil {
		t.Errorf("nil LastChild() = %p; want nil", got)
	}
	if got := Dump(n); got != "" {
		t.Errorf("Dump(nil) = %q; want \"\"", got)
	}
}

func TestDumpEscapes(t *testing.T) {
	var b TreeBuilder
	root := NewDocument()
	b.AppendText(root, "say \"hi\"\t\\")
	want := `document("say \"hi\"\t\\")`
	if got := Dump(root); got != want {
		t.Errorf("Dump(...) = %s; want %s", got, want)
	}
}

func TestWalkStops(t *testing.T) {
	doc := Parse("# a\n# b\n# c\n")
	var seen []string
	Walk(doc, &WalkOptions{
		Post: func(c *Cursor) bool {
			if c.Node().Tag() != TextTag {
				return true
			}
			seen = append(seen, c.Node().Text())
			return c.Node().Text() != "b"
		},
	})
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Errorf("texts visited (-want +got):\n%s", diff)
	}
}
