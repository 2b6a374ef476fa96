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

// Package normhtml normalizes HTML so that two renderings
// that differ only in insignificant ways compare equal.
// Whitespace runs collapse to a single space outside of <pre>,
// whitespace next to block-level tags is removed,
// attributes are sorted by key,
// and text is converted to Unicode normalization form C
// and re-escaped consistently.
package normhtml

import (
	"bytes"
	"regexp"
	"sort"
	"unicode"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML strips insignificant output differences from HTML.
func NormalizeHTML(b []byte) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}

	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	afterBlock := true
	preDepth := 0
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			data := norm.NFC.Bytes(bytes.Clone(tok.Text()))
			if preDepth == 0 {
				data = whitespaceRE.ReplaceAll(data, []byte(" "))
				if afterBlock {
					data = bytes.TrimLeftFunc(data, unicode.IsSpace)
				}
			}
			if len(data) > 0 {
				output = append(output, htmlEscaper.Replace(data)...)
				afterBlock = false
			}
		case html.EndTagToken:
			name, _ := tok.TagName()
			a := atom.Lookup(name)
			if a == atom.Br {
				// </br> is parsed as <br> by browsers.
				output = append(output, "<br>"...)
				continue
			}
			if isBlockTag(a) && preDepth == 0 {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			if a == atom.Pre && preDepth > 0 {
				preDepth--
			}
			output = append(output, "</"...)
			output = append(output, name...)
			output = append(output, ">"...)
			afterBlock = isBlockTag(a)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tok.TagName()
			tag := string(name)
			a := atom.Lookup(name)
			if isBlockTag(a) && preDepth == 0 {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "<"...)
			output = append(output, tag...)
			if hasAttr {
				var attrs []htmlAttribute
				for {
					k, v, more := tok.TagAttr()
					attrs = append(attrs, htmlAttribute{string(k), string(v)})
					if !more {
						break
					}
				}
				sort.Slice(attrs, func(i, j int) bool {
					return attrs[i].key < attrs[j].key
				})
				for _, attr := range attrs {
					output = append(output, " "...)
					output = append(output, attr.key...)
					if attr.value != "" {
						output = append(output, `="`...)
						output = append(output, html.EscapeString(attr.value)...)
						output = append(output, `"`...)
					}
				}
			}
			output = append(output, ">"...)
			if a == atom.Pre {
				preDepth++
			}
			afterBlock = isBlockTag(a)
		}
	}
}

func isBlockTag(a atom.Atom) bool {
	switch a {
	case atom.Blockquote, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Hr, atom.Li, atom.Ol, atom.P, atom.Pre, atom.Ul, atom.Table, atom.Tr, atom.Td, atom.Th:
		return true
	default:
		return false
	}
}
