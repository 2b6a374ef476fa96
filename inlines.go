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

// inlineState is the inline scanner's state for the current block.
//
// The three toggles are independent of each other.
// Closing a span always pops the innermost open span,
// so a delimiter that closes out of order
// ends the wrong span and leaves the toggles out of step with the tree.
// This matches the behavior of closing by walking to the cursor's parent.
type inlineState[N comparable] struct {
	emphasis bool
	strong   bool
	code     bool
	spans    []openSpan[N]
}

type openSpan[N comparable] struct {
	tag  Tag
	node N
}

func (s *inlineState[N]) reset() {
	s.emphasis = false
	s.strong = false
	s.code = false
	clear(s.spans)
	s.spans = s.spans[:0]
}

// cursor returns the node that new inline content is appended to.
func (p *Parser[N]) cursor() N {
	if n := len(p.inline.spans); n > 0 {
		return p.inline.spans[n-1].node
	}
	return p.block
}

// scan appends the inline content of text to the cursor.
// Open spans remain open after scan returns.
func (p *Parser[N]) scan(text string) {
	var zero N
	if p.block == zero {
		return
	}
	plainStart := 0
	for pos := 0; pos < len(text); {
		switch {
		case text[pos] == '*' && !p.inline.code:
			p.appendText(text[plainStart:pos])
			if pos+1 < len(text) && text[pos+1] == '*' {
				p.toggle(StrongTag, &p.inline.strong)
				pos += 2
			} else {
				p.toggle(EmphasisTag, &p.inline.emphasis)
				pos++
			}
			plainStart = pos
		case text[pos] == '`':
			p.appendText(text[plainStart:pos])
			p.toggle(InlineCodeTag, &p.inline.code)
			pos++
			plainStart = pos
		default:
			pos++
		}
	}
	p.appendText(text[plainStart:])
}

func (p *Parser[N]) toggle(tag Tag, open *bool) {
	if *open {
		p.closeSpan(tag)
	} else {
		p.openSpan(tag)
	}
	*open = !*open
}

func (p *Parser[N]) openSpan(tag Tag) {
	n := p.newNode(p.cursor(), tag)
	p.inline.spans = append(p.inline.spans, openSpan[N]{tag: tag, node: n})
}

func (p *Parser[N]) closeSpan(tag Tag) {
	n := len(p.inline.spans)
	if n == 0 {
		p.log.Debug("closing delimiter without open span", "line", p.lineno, "delimiter", tag)
		return
	}
	top := p.inline.spans[n-1]
	p.inline.spans[n-1] = openSpan[N]{}
	p.inline.spans = p.inline.spans[:n-1]
	if top.tag != tag {
		p.log.Debug("mis-nested delimiter", "line", p.lineno, "delimiter", tag, "closed", top.tag)
	}
}

func (p *Parser[N]) appendText(s string) {
	if s == "" {
		return
	}
	p.b.AppendText(p.cursor(), s)
}
