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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "PlainText",
			input: "Hello, World!\n",
			want:  `document(paragraph("Hello, World!"))`,
		},
		{
			name:  "CodeSpanHidesEmphasis",
			input: "`**x**`\n",
			want:  `document(paragraph(inlineCode("**x**")))`,
		},
		{
			name:  "CodeSpanInsideStrong",
			input: "**a `b` c**\n",
			want:  `document(paragraph(strong("a " inlineCode("b") " c")))`,
		},
		{
			name:  "UnclosedEmphasis",
			input: "*open\n",
			want:  `document(paragraph(emphasis("open")))`,
		},
		{
			name:  "EmptyStrong",
			input: "a****b\n",
			want:  `document(paragraph("a" strong "b"))`,
		},
		{
			name:  "TripleDelimiter",
			input: "***x***\n",
			want:  `document(paragraph(strong(emphasis("x"))))`,
		},
		{
			name:  "LoneAsterisk",
			input: "2 * 3 = 6\n",
			want:  `document(paragraph("2 " emphasis(" 3 = 6")))`,
		},
		{
			name:  "CodeSpanAcrossLines",
			input: "`a\nb`\n",
			want:  `document(paragraph(inlineCode("a" "b")))`,
		},
		{
			name:  "Heading",
			input: "# *a* b\n",
			want:  `document(h1(emphasis("a") " b"))`,
		},
		{
			name:  "ListItem",
			input: "- `x`\n",
			want:  `document(unorderedList(listItem(inlineCode("x"))))`,
		},
		{
			name:  "SpanEndsWithHeading",
			input: "*a\n# b\n",
			want:  `document(paragraph(emphasis("a")) h1("b"))`,
		},
		{
			name:  "SpanEndsWithListItem",
			input: "- *a\n- b\n",
			want:  `document(unorderedList(listItem(emphasis("a")) listItem("b")))`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Dump(Parse(test.input))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Dump(Parse(%q)) (-want +got):\n%s", test.input, diff)
			}
		})
	}
}
