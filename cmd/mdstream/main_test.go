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

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testDocument = "# Title\n\n- one\n- **two**\n\n```go\nx\n```\n"

func TestRun(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{
			format: "tree",
			want: `document(h1("Title") unorderedList(listItem("one") listItem(strong("two"))) ` +
				`codeBlock(code[language=go]("x" lineBreak)))` + "\n",
		},
		{
			format: "html",
			want:   `<h1>Title</h1><ul><li>one</li><li><strong>two</strong></li></ul><pre><code class="language-go">x<br></code></pre>` + "\n",
		},
		{
			format: "dom",
			want:   `<h1>Title</h1><ul><li>one</li><li><strong>two</strong></li></ul><pre><code class="language-go">x<br/></code></pre>` + "\n",
		},
		{
			format: "markdown",
			want:   "# Title\n\n- one\n- **two**\n\n```go\nx\n```\n",
		},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			stdout := new(bytes.Buffer)
			stderr := new(bytes.Buffer)
			opts := &options{
				format: test.format,
				minLen: 1,
				maxLen: 4,
				seed:   1,
			}
			if err := run(context.Background(), strings.NewReader(testDocument), stdout, stderr, nil, opts); err != nil {
				t.Fatal("run:", err)
			}
			if diff := cmp.Diff(test.want, stdout.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
			if stderr.Len() > 0 {
				t.Errorf("stderr = %q; want empty", stderr)
			}
		})
	}
}

func TestRunTerminal(t *testing.T) {
	stdout := new(bytes.Buffer)
	opts := &options{
		format: "terminal",
		minLen: 2,
		maxLen: 20,
		style:  "notty",
		width:  40,
	}
	if err := run(context.Background(), strings.NewReader(testDocument), stdout, new(bytes.Buffer), nil, opts); err != nil {
		t.Fatal("run:", err)
	}
	for _, want := range []string{"Title", "one", "two"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, stdout)
		}
	}
}

func TestRunPendingLine(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	opts := &options{format: "tree", minLen: 2, maxLen: 20, seed: 1}
	if err := run(context.Background(), strings.NewReader("# A\nno newline"), stdout, stderr, nil, opts); err != nil {
		t.Fatal("run:", err)
	}
	if got, want := stdout.String(), `document(h1("A"))`+"\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
	if !strings.Contains(stderr.String(), "does not end with a newline") {
		t.Errorf("stderr = %q; want a warning about the last line", stderr)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	opts := &options{format: "pdf", minLen: 2, maxLen: 20}
	err := run(context.Background(), strings.NewReader(testDocument), new(bytes.Buffer), new(bytes.Buffer), nil, opts)
	if err == nil {
		t.Error("run with unknown format did not return an error")
	}
}
