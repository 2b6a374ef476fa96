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

// Package format writes an [mdstream] tree back out as Markdown.
package format

import (
	"io"
	"strconv"
	"strings"

	"zombiezen.com/go/mdstream"
)

// Format writes the tree rooted at root as Markdown.
// Parsing the output of a tree built by [mdstream.Parser]
// yields the same tree.
func Format(w io.Writer, root *mdstream.Node) error {
	f := &formatter{errWriter: errWriter{w: w}}
	var prev *mdstream.Node
	for i := 0; i < root.ChildCount(); i++ {
		curr := root.Child(i)
		if prev != nil && f.separate(prev, curr) {
			f.blankLine()
		}
		f.writeBlock(curr, 0)
		prev = curr
	}
	return f.err
}

// formatter writes Markdown while tracking the ordered-list counter
// a parser reading the output would have.
type formatter struct {
	errWriter
	counter int
}

// blankLine writes an empty line, which resets the parser's counter.
func (f *formatter) blankLine() {
	f.WriteString("\n")
	f.counter = 0
}

// separate reports whether to write a blank line between
// two sibling blocks at the top level.
// Blank lines are written where the parser requires one
// and otherwise only where the counter is already zero,
// so numbering after the blank line is unchanged.
func (f *formatter) separate(prev, next *mdstream.Node) bool {
	switch {
	case mustSeparate(prev, next) || startsRun(next):
		return true
	case isList(prev) && isList(next):
		return false
	default:
		return f.counter == 0
	}
}

// mustSeparate reports whether next would attach to prev
// without a blank line between them.
func mustSeparate(prev, next *mdstream.Node) bool {
	switch next.Tag() {
	case mdstream.ParagraphTag:
		if prev.Tag() == mdstream.ParagraphTag {
			return true
		}
		return isList(prev) && listCursor(prev) != mdstream.CodeBlockTag
	case mdstream.CodeBlockTag:
		return isList(prev) && listCursor(prev) == mdstream.ListItemTag
	default:
		return false
	}
}

// listCursor returns the kind of block a parser is left on
// after reading list:
// [mdstream.ListItemTag] after an item line,
// [mdstream.ParagraphTag] after a paragraph inside an item,
// or [mdstream.CodeBlockTag] after a closed code block, which leaves no block current.
func listCursor(list *mdstream.Node) mdstream.Tag {
	for {
		last := list.LastChild()
		if last == nil {
			return mdstream.ListItemTag
		}
		if last.Tag() != mdstream.ListItemTag {
			list = last
			continue
		}
		b := last.LastChild()
		switch {
		case b == nil || !b.Tag().IsBlock():
			return mdstream.ListItemTag
		case isList(b):
			list = b
		default:
			return b.Tag()
		}
	}
}

// startsRun reports whether list is an ordered list numbered from 1.
// A blank line resets the ordered-list counter,
// so writing one before such a list reproduces its numbering.
func startsRun(list *mdstream.Node) bool {
	if list.Tag() != mdstream.OrderedListTag {
		return false
	}
	start, ok := list.Attr(mdstream.StartAttr)
	return !ok || start == "1"
}

func isList(n *mdstream.Node) bool {
	return n.Tag() == mdstream.OrderedListTag || n.Tag() == mdstream.UnorderedListTag
}

func (f *formatter) writeBlock(b *mdstream.Node, depth int) {
	switch tag := b.Tag(); tag {
	case mdstream.ParagraphTag:
		f.writeInlines(b)
		f.WriteString("\n")
	case mdstream.BlockQuoteTag:
		f.WriteString("> ")
		f.writeInlines(b)
		f.WriteString("\n")
	case mdstream.CodeBlockTag:
		f.writeCodeBlock(b)
	case mdstream.OrderedListTag, mdstream.UnorderedListTag:
		f.writeList(b, depth)
	default:
		if level := tag.HeadingLevel(); level > 0 {
			f.WriteString(strings.Repeat("#", level))
			f.WriteString(" ")
			f.writeInlines(b)
			f.WriteString("\n")
		}
	}
}

func (f *formatter) writeCodeBlock(b *mdstream.Node) {
	f.WriteString("```")
	code := b.LastChild()
	if lang, ok := code.Attr(mdstream.LanguageAttr); ok {
		f.WriteString(lang)
	}
	f.WriteString("\n")
	for i := 0; i < code.ChildCount(); i++ {
		switch c := code.Child(i); c.Tag() {
		case mdstream.TextTag:
			f.WriteString(c.Text())
		case mdstream.LineBreakTag:
			f.WriteString("\n")
		}
	}
	f.WriteString("```\n")
}

func (f *formatter) writeList(list *mdstream.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	ordered := list.Tag() == mdstream.OrderedListTag
	for i := 0; i < list.ChildCount(); i++ {
		item := list.Child(i)
		if item.Tag() != mdstream.ListItemTag {
			// List opened more than one level deeper than its parent.
			f.writeList(item, depth+1)
			continue
		}
		f.WriteString(indent)
		if ordered {
			value, _ := item.Attr(mdstream.ValueAttr)
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				n = 1
			}
			f.WriteString(strconv.Itoa(n))
			f.WriteString(". ")
			f.counter = n
		} else {
			f.WriteString("- ")
		}
		f.writeInlines(item)
		f.WriteString("\n")

		for j := 0; j < item.ChildCount(); j++ {
			child := item.Child(j)
			if !child.Tag().IsBlock() {
				continue
			}
			if startsRun(child) {
				f.blankLine()
			}
			f.writeBlock(child, depth+1)
		}
	}
}

// writeInlines writes the inline children of b.
// Block children are skipped.
// Adjacent text nodes come from separate source lines,
// so a newline is written between them.
func (f *formatter) writeInlines(b *mdstream.Node) {
	for i := 0; i < b.ChildCount(); i++ {
		switch c := b.Child(i); c.Tag() {
		case mdstream.TextTag:
			if i > 0 && b.Child(i-1).Tag() == mdstream.TextTag {
				f.WriteString("\n")
			}
			f.WriteString(c.Text())
		case mdstream.EmphasisTag:
			f.writeSpan(c, "*")
		case mdstream.StrongTag:
			f.writeSpan(c, "**")
		case mdstream.InlineCodeTag:
			f.writeSpan(c, "`")
		}
	}
}

func (f *formatter) writeSpan(span *mdstream.Node, delim string) {
	f.WriteString(delim)
	if span.Tag() == mdstream.EmphasisTag && span.ChildCount() == 0 {
		// "**" would open a strong span.
		// An empty emphasis only spans a paragraph line break.
		f.WriteString("\n")
	}
	f.writeInlines(span)
	f.WriteString(delim)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
