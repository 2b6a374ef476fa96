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

// Package mdstream builds a Markdown document tree incrementally
// from a stream of arbitrarily split fragments.
//
// A [Parser] accepts fragments of any length, unaligned to lines or markup,
// and appends nodes to a tree through a [Builder] as soon as each line is complete.
// The tree after the last fragment is the same
// no matter how the document was split.
//
// The dialect is a small subset of Markdown:
// ATX headings, fenced code blocks, ordered and unordered lists,
// single-line block quotes, paragraphs,
// and emphasis, strong, and code spans.
package mdstream

import (
	"log/slog"
	"strings"
)

// Options is the set of optional parameters to [NewParser].
type Options struct {
	// Logger receives debug events about the parse.
	// If nil, [slog.Default] is used.
	Logger *slog.Logger
}

// A Parser consumes Markdown fragments and grows a tree under a root node.
// A Parser is not safe for concurrent use,
// but independent parsers share no state.
type Parser[N comparable] struct {
	b    Builder[N]
	root N
	log  *slog.Logger

	line   strings.Builder // pending line
	lineno int

	// block is the current block or the zero value if no block is current.
	block    N
	blockTag Tag
	inline   inlineState[N]

	inCodeBlock  bool
	codeLanguage string

	lists       []listLevel[N]
	counter     int  // ordered-list run counter
	interrupted bool // blank line seen since the last list item
}

// NewParser returns a parser that appends to root using b.
// If root is the zero value, all calls on the parser are no-ops.
// opts may be nil.
func NewParser[N comparable](b Builder[N], root N, opts *Options) *Parser[N] {
	p := &Parser[N]{
		b:    b,
		root: root,
	}
	if opts != nil {
		p.log = opts.Logger
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	return p
}

// Parse parses a complete document into a new in-memory tree.
// As with any stream, a final line without a trailing newline is not parsed.
func Parse(source string) *Node {
	doc := NewDocument()
	NewParser[*Node](TreeBuilder{}, doc, nil).Consume(source)
	return doc
}

// Consume feeds a fragment of the document to the parser.
// Every complete line in the fragment is parsed before Consume returns.
func (p *Parser[N]) Consume(fragment string) {
	var zero N
	if p.root == zero {
		return
	}
	for {
		i := strings.IndexByte(fragment, '\n')
		if i < 0 {
			p.line.WriteString(fragment)
			return
		}
		p.line.WriteString(fragment[:i])
		fragment = fragment[i+1:]

		line := strings.TrimSuffix(p.line.String(), "\r")
		p.line.Reset()
		p.lineno++
		if p.inCodeBlock {
			p.codeLine(line)
		} else {
			p.parseLine(line)
		}
	}
}

// Write calls [*Parser.Consume] with the bytes as a fragment.
// It always returns len(b), nil.
func (p *Parser[N]) Write(b []byte) (int, error) {
	p.Consume(string(b))
	return len(b), nil
}

// WriteString calls [*Parser.Consume] with s as a fragment.
// It always returns len(s), nil.
func (p *Parser[N]) WriteString(s string) (int, error) {
	p.Consume(s)
	return len(s), nil
}

// Pending returns the text received after the last newline.
// This text has not been added to the tree.
func (p *Parser[N]) Pending() string {
	return p.line.String()
}

// Lines returns the number of complete lines parsed so far.
func (p *Parser[N]) Lines() int {
	return p.lineno
}

// InCodeBlock reports whether the parser is inside a fenced code block.
func (p *Parser[N]) InCodeBlock() bool {
	return p.inCodeBlock
}

// newNode creates a node and appends it to parent.
func (p *Parser[N]) newNode(parent N, tag Tag) N {
	n := p.b.CreateNode(tag)
	p.b.AppendChild(parent, n)
	return n
}
