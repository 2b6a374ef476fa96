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

// Mdstream renders a Markdown document incrementally.
//
// Usage:
//
//	mdstream [flags] [file]
//
// Mdstream reads the named file, or else standard input,
// splits it into random fragments,
// and feeds the fragments to an incremental parser one at a time.
// When the stream ends, the resulting tree is printed to standard output.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"zombiezen.com/go/mdstream"
	"zombiezen.com/go/mdstream/format"
	"zombiezen.com/go/mdstream/internal/fragment"
)

type options struct {
	format   string
	minLen   int
	maxLen   int
	interval time.Duration
	seed     int64
	live     bool
	verbose  bool
	style    string
	width    int
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:   "mdstream [flags] [file]",
		Short: "Render Markdown incrementally from a stream of fragments",
		Long: `mdstream splits a Markdown document into randomly sized fragments,
delivers them to an incremental parser on a timer,
and prints the tree that was built.

Output formats:
  html      HTML rendered from the in-memory tree
  dom       HTML rendered from an x/net/html node tree
  tree      compact dump of the in-memory tree
  markdown  the tree written back as Markdown
  terminal  the tree styled for a terminal`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "mdstream:", err)
			}
			return err
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "output `format` (html, dom, tree, markdown, or terminal)")
	cmd.Flags().IntVar(&opts.minLen, "min", fragment.DefaultMin, "minimum fragment length in bytes")
	cmd.Flags().IntVar(&opts.maxLen, "max", fragment.DefaultMax, "maximum fragment length in bytes")
	cmd.Flags().DurationVar(&opts.interval, "interval", 20*time.Millisecond, "delay between fragments")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for fragment lengths (0 picks one from the clock)")
	cmd.Flags().BoolVar(&opts.live, "live", false, "print a snapshot of the tree after every fragment")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log parser events to stderr")
	cmd.Flags().StringVar(&opts.style, "style", "dark", "glamour `style` for terminal output")
	cmd.Flags().IntVar(&opts.width, "width", 80, "word wrap width for terminal output")

	return cmd
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string, opts *options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	source, err := readSource(stdin, args)
	if err != nil {
		return err
	}
	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewSource(opts.seed))
	}
	frags := fragment.Split(string(source), opts.minLen, opts.maxLen, rng)
	logger.Debug("split document", "bytes", len(source), "fragments", len(frags))

	parserOpts := &mdstream.Options{Logger: logger}
	switch opts.format {
	case "dom":
		root := mdstream.NewHTMLDocument()
		p := mdstream.NewParser[*html.Node](mdstream.HTMLBuilder{}, root, parserOpts)
		return feed(ctx, logger, p, frags, opts, func(w io.Writer) error {
			if err := mdstream.RenderHTMLNode(w, root); err != nil {
				return err
			}
			_, err := io.WriteString(w, "\n")
			return err
		}, stdout)
	case "html", "tree", "markdown", "terminal":
		var term *glamour.TermRenderer
		if opts.format == "terminal" {
			var err error
			term, err = glamour.NewTermRenderer(
				glamour.WithStandardStyle(opts.style),
				glamour.WithWordWrap(opts.width),
			)
			if err != nil {
				return fmt.Errorf("terminal renderer: %w", err)
			}
		}
		root := mdstream.NewDocument()
		p := mdstream.NewParser[*mdstream.Node](mdstream.TreeBuilder{}, root, parserOpts)
		return feed(ctx, logger, p, frags, opts, func(w io.Writer) error {
			if term != nil {
				return renderTerminal(w, term, root)
			}
			return renderTree(w, opts.format, root)
		}, stdout)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

// feed streams fragments into p, then renders the final tree.
// An interrupted stream still renders what arrived.
func feed[N comparable](ctx context.Context, logger *slog.Logger, p *mdstream.Parser[N], frags []string, opts *options, render func(io.Writer) error, stdout io.Writer) error {
	var snapshotErr error
	streamErr := fragment.Stream(ctx, frags, opts.interval, func(frag string) {
		p.Consume(frag)
		if opts.live && snapshotErr == nil {
			snapshotErr = render(stdout)
		}
	})
	if snapshotErr != nil {
		return snapshotErr
	}
	switch {
	case errors.Is(streamErr, context.Canceled):
		logger.Warn("stream interrupted", "lines", p.Lines())
	case streamErr != nil:
		return streamErr
	}
	if pending := p.Pending(); pending != "" {
		logger.Warn("document does not end with a newline; last line not rendered", "text", pending)
	}
	if opts.live {
		return nil
	}
	return render(stdout)
}

func renderTree(w io.Writer, outputFormat string, root *mdstream.Node) error {
	switch outputFormat {
	case "markdown":
		return format.Format(w, root)
	case "tree":
		_, err := io.WriteString(w, mdstream.Dump(root)+"\n")
		return err
	default:
		if err := mdstream.RenderHTML(w, root); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
}

// renderTerminal styles the tree by formatting it as Markdown
// and handing the result to glamour.
func renderTerminal(w io.Writer, term *glamour.TermRenderer, root *mdstream.Node) error {
	md := new(strings.Builder)
	if err := format.Format(md, root); err != nil {
		return err
	}
	out, err := term.Render(md.String())
	if err != nil {
		return fmt.Errorf("render terminal output: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func readSource(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}
