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
	"strconv"

	"golang.org/x/net/html/atom"
)

// Tag is an enumeration of the node types a [Parser] creates.
type Tag uint8

const (
	// DocumentTag is the tag of the root a tree grows under.
	// The parser never creates a DocumentTag node itself.
	DocumentTag Tag = 1 + iota

	Heading1Tag
	Heading2Tag
	Heading3Tag
	Heading4Tag
	Heading5Tag
	Heading6Tag
	ParagraphTag
	BlockQuoteTag
	OrderedListTag
	UnorderedListTag
	ListItemTag
	// CodeBlockTag is the container of a fenced code block.
	CodeBlockTag
	// CodeTag is the container nested inside a [CodeBlockTag] node
	// that holds the code block's lines.
	CodeTag

	EmphasisTag
	StrongTag
	InlineCodeTag
	LineBreakTag
	TextTag
)

// Attribute keys set by a [Parser].
const (
	// LanguageAttr is set on a [CodeTag] node
	// to the info string of its fenced code block.
	LanguageAttr = "language"
	// StartAttr is set on an [OrderedListTag] node
	// to the ordinal of its first item.
	StartAttr = "start"
	// ValueAttr is set on a [ListItemTag] node of an ordered list
	// to the item's ordinal.
	ValueAttr = "value"
)

var tagNames = [...]string{
	DocumentTag:      "document",
	Heading1Tag:      "h1",
	Heading2Tag:      "h2",
	Heading3Tag:      "h3",
	Heading4Tag:      "h4",
	Heading5Tag:      "h5",
	Heading6Tag:      "h6",
	ParagraphTag:     "paragraph",
	BlockQuoteTag:    "blockquote",
	OrderedListTag:   "orderedList",
	UnorderedListTag: "unorderedList",
	ListItemTag:      "listItem",
	CodeBlockTag:     "codeBlock",
	CodeTag:          "code",
	EmphasisTag:      "emphasis",
	StrongTag:        "strong",
	InlineCodeTag:    "inlineCode",
	LineBreakTag:     "lineBreak",
	TextTag:          "text",
}

func (tag Tag) String() string {
	if int(tag) < len(tagNames) && tagNames[tag] != "" {
		return tagNames[tag]
	}
	return "Tag(" + strconv.Itoa(int(tag)) + ")"
}

// HeadingTag returns the tag for a heading of the given level.
// Levels outside the range [1, 6] are clamped.
func HeadingTag(level int) Tag {
	switch {
	case level < 1:
		level = 1
	case level > 6:
		level = 6
	}
	return Heading1Tag + Tag(level-1)
}

// HeadingLevel returns the level (1-6) of a heading tag
// or 0 if the tag is not a heading.
func (tag Tag) HeadingLevel() int {
	if tag < Heading1Tag || tag > Heading6Tag {
		return 0
	}
	return int(tag-Heading1Tag) + 1
}

// IsBlock reports whether nodes with the tag are block-level elements.
func (tag Tag) IsBlock() bool {
	return tag >= DocumentTag && tag <= CodeTag
}

// Atom returns the HTML element used to represent the tag.
// It returns zero for [TextTag] and unknown tags.
func (tag Tag) Atom() atom.Atom {
	switch tag {
	case DocumentTag:
		return atom.Div
	case Heading1Tag:
		return atom.H1
	case Heading2Tag:
		return atom.H2
	case Heading3Tag:
		return atom.H3
	case Heading4Tag:
		return atom.H4
	case Heading5Tag:
		return atom.H5
	case Heading6Tag:
		return atom.H6
	case ParagraphTag:
		return atom.P
	case BlockQuoteTag:
		return atom.Blockquote
	case OrderedListTag:
		return atom.Ol
	case UnorderedListTag:
		return atom.Ul
	case ListItemTag:
		return atom.Li
	case CodeBlockTag:
		return atom.Pre
	case CodeTag, InlineCodeTag:
		return atom.Code
	case EmphasisTag:
		return atom.Em
	case StrongTag:
		return atom.Strong
	case LineBreakTag:
		return atom.Br
	default:
		return 0
	}
}

// Builder is the tree-building capability a [Parser] writes to.
// N is the builder's node handle type.
// The zero value of N is never passed to a Builder by a Parser.
type Builder[N comparable] interface {
	// CreateNode returns a new detached node with the given tag.
	CreateNode(tag Tag) N
	// AppendChild appends child as the last child of parent.
	AppendChild(parent, child N)
	// AppendText appends a new text node with the given content
	// as the last child of parent.
	AppendText(parent N, text string)
	// SetAttribute sets an attribute on a node created by CreateNode.
	SetAttribute(node N, key, value string)
}
