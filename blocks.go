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
	"strconv"
	"strings"
)

// codeFence is the prefix that opens and closes a fenced code block.
const codeFence = "```"

// maxHeadingLevel is the largest number of '#' characters
// that introduce an ATX heading.
const maxHeadingLevel = 6

// listLevel is an entry in the list nesting stack.
type listLevel[N comparable] struct {
	list    N
	ordered bool
	start   int // recorded start value of an ordered list
	item    N   // trailing item or the zero value if the list has no items yet
}

// parseLine dispatches a complete line outside of a fenced code block.
// The first matching rule wins.
func (p *Parser[N]) parseLine(line string) {
	if level, rest, ok := parseATXHeading(line); ok {
		p.openRootBlock(HeadingTag(level))
		p.scan(rest)
		return
	}
	if strings.HasPrefix(line, codeFence) {
		p.openCodeBlock(strings.TrimSpace(line[len(codeFence):]))
		return
	}
	if m, ok := parseListMarker(line); ok {
		p.listItem(m)
		return
	}
	if rest, ok := strings.CutPrefix(line, "> "); ok {
		p.openRootBlock(BlockQuoteTag)
		p.scan(rest)
		return
	}
	if isBlankLine(line) {
		p.clearCursor()
		p.counter = 0
		p.interrupted = true
		return
	}
	var zero N
	if p.block == zero || p.blockTag != ParagraphTag {
		p.openBlock(ParagraphTag)
	}
	p.scan(line)
}

// codeLine handles a line inside a fenced code block.
func (p *Parser[N]) codeLine(line string) {
	if strings.HasPrefix(line, codeFence) {
		p.log.Debug("close code block", "line", p.lineno, "language", p.codeLanguage)
		p.inCodeBlock = false
		p.codeLanguage = ""
		p.clearCursor()
		return
	}
	if line != "" {
		p.b.AppendText(p.block, line)
	}
	p.newNode(p.block, LineBreakTag)
}

func (p *Parser[N]) openCodeBlock(language string) {
	p.openBlock(CodeBlockTag)
	code := p.newNode(p.block, CodeTag)
	if language != "" {
		p.b.SetAttribute(code, LanguageAttr, language)
	}
	p.setBlock(code, CodeTag)
	p.inCodeBlock = true
	p.codeLanguage = language
	p.log.Debug("open code block", "line", p.lineno, "language", language)
}

// openRootBlock appends a new block to the root,
// ending any list being built.
func (p *Parser[N]) openRootBlock(tag Tag) {
	p.closeLists()
	p.setBlock(p.newNode(p.root, tag), tag)
}

// openBlock appends a new block inside the current list item if there is one
// or to the root otherwise.
func (p *Parser[N]) openBlock(tag Tag) {
	var zero N
	if p.block == zero || p.blockTag != ListItemTag {
		p.openRootBlock(tag)
		return
	}
	p.setBlock(p.newNode(p.block, tag), tag)
}

// setBlock makes n the current block.
// Inline spans left open in the previous block are abandoned.
func (p *Parser[N]) setBlock(n N, tag Tag) {
	p.block = n
	p.blockTag = tag
	p.inline.reset()
}

// clearCursor leaves no block current.
func (p *Parser[N]) clearCursor() {
	var zero N
	p.setBlock(zero, 0)
}

// closeLists ends every open list.
// The ordered-list run counter is left alone:
// only a blank line resets it.
func (p *Parser[N]) closeLists() {
	if len(p.lists) == 0 {
		return
	}
	p.log.Debug("close lists", "line", p.lineno, "depth", len(p.lists))
	clear(p.lists)
	p.lists = p.lists[:0]
	p.interrupted = false
}

// listItem appends a list item,
// opening or leaving nested lists to reach the item's depth.
func (p *Parser[N]) listItem(m listMarker) {
	depth := m.indent/2 + 1
	if depth < len(p.lists) {
		clear(p.lists[depth:])
		p.lists = p.lists[:depth]
		if top := p.lists[depth-1]; top.ordered && m.ordered {
			p.counter = top.start - 1
		}
	}
	if depth == len(p.lists) {
		top := p.lists[depth-1]
		if top.ordered != m.ordered || (top.ordered && p.interrupted) {
			p.lists[depth-1] = listLevel[N]{}
			p.lists = p.lists[:depth-1]
		}
	}
	for len(p.lists) < depth {
		p.openList(m.ordered)
	}

	top := &p.lists[depth-1]
	item := p.newNode(top.list, ListItemTag)
	top.item = item
	if m.ordered {
		p.counter++
		p.b.SetAttribute(item, ValueAttr, strconv.Itoa(p.counter))
	}
	p.interrupted = false
	p.setBlock(item, ListItemTag)
	p.scan(m.content)
}

// openList pushes a new list one level deeper than the current depth.
func (p *Parser[N]) openList(ordered bool) {
	var zero N
	parent := p.root
	if n := len(p.lists); n > 0 {
		if enclosing := p.lists[n-1]; enclosing.item != zero {
			parent = enclosing.item
		} else {
			parent = enclosing.list
		}
	}

	tag := UnorderedListTag
	if ordered {
		tag = OrderedListTag
	}
	level := listLevel[N]{
		list:    p.newNode(parent, tag),
		ordered: ordered,
	}
	if ordered {
		level.start = p.counter + 1
		p.b.SetAttribute(level.list, StartAttr, strconv.Itoa(level.start))
	}
	p.lists = append(p.lists, level)
	p.log.Debug("open list", "line", p.lineno, "depth", len(p.lists), "ordered", ordered)
}

// parseATXHeading reports whether the line is a heading:
// 1-6 '#' characters, a space, and at least one more character.
func parseATXHeading(line string) (level int, rest string, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel ||
		level+1 >= len(line) || !isSpaceTab(line[level]) {
		return 0, "", false
	}
	return level, line[level+1:], true
}

type listMarker struct {
	indent  int // number of leading whitespace characters
	ordered bool
	content string
}

// parseListMarker reports whether the line is a list item:
// optional leading whitespace, a marker ("N.", "*", or "-"),
// a space, and at least one more character.
func parseListMarker(line string) (m listMarker, ok bool) {
	i := 0
	for i < len(line) && isSpaceTab(line[i]) {
		i++
	}
	m.indent = i
	switch {
	case i >= len(line):
		return listMarker{}, false
	case line[i] == '*' || line[i] == '-':
		i++
	case '1' <= line[i] && line[i] <= '9':
		for i < len(line) && isDigit(line[i]) {
			i++
		}
		if i >= len(line) || line[i] != '.' {
			return listMarker{}, false
		}
		i++
		m.ordered = true
	default:
		return listMarker{}, false
	}
	if i+1 >= len(line) || !isSpaceTab(line[i]) {
		return listMarker{}, false
	}
	m.content = line[i+1:]
	return m, true
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isSpaceTab(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
