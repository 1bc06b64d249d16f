package cmd

import (
	"fmt"
	"io"

	"textoffset/internal/application/dto"
	"textoffset/internal/config"

	"github.com/spf13/cobra"
)

type findOptions struct {
	input    inputFlags
	patterns []string
	from     int
	unit     string
	boundary string
	all      bool
}

func newFindCmd(a *app) *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a pattern at or after an offset",
		Long: `Find the first occurrence of a pattern at or after --from and print its
position relative to the start of the text.

Repeat --pattern to search several patterns concurrently. With --all every
non-overlapping occurrence is reported.`,
		Example: `  textoffset find --text "me and me and you" --pattern me --from 5
  textoffset find --file notes.txt --pattern TODO --all --output json
  echo "日本語のテキスト" | textoffset find --file - --pattern テ --unit rune`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd, a.runFind(cmd, opts))
		},
	}

	flags := cmd.Flags()
	opts.input.register(cmd)
	flags.StringArrayVarP(&opts.patterns, "pattern", "p", nil, "Pattern to find (repeatable)")
	flags.IntVar(&opts.from, "from", 0, "Offset to start searching at")
	flags.StringVar(&opts.unit, "unit", "", "Offset unit (byte, rune, grapheme); defaults to find.unit")
	flags.StringVar(&opts.boundary, "boundary", "", "Boundary rule (rune, grapheme); defaults to find.boundary")
	flags.BoolVar(&opts.all, "all", false, "Report every non-overlapping match")
	flags.Int("max-concurrency", config.DefaultMaxConcurrency, "Parallel searches for repeated --pattern")
	_ = cmd.MarkFlagRequired("pattern")

	if err := a.v.BindPFlag("find.max_concurrency", flags.Lookup("max-concurrency")); err != nil {
		panic(err)
	}
	return cmd
}

func (a *app) runFind(cmd *cobra.Command, opts *findOptions) error {
	text, err := opts.input.read(cmd)
	if err != nil {
		return err
	}

	requests := make([]dto.FindRequest, 0, len(opts.patterns))
	for _, pattern := range opts.patterns {
		requests = append(requests, dto.FindRequest{
			Text:     text,
			Pattern:  pattern,
			Start:    opts.from,
			Unit:     opts.unit,
			Boundary: opts.boundary,
			All:      opts.all,
		})
	}

	var responses []dto.FindResponse
	if len(requests) == 1 {
		resp, err := a.finder.Find(cmd.Context(), requests[0])
		if err != nil {
			return err
		}
		responses = []dto.FindResponse{resp}
	} else {
		responses, err = a.finder.FindBatch(cmd.Context(), requests)
		if err != nil {
			return err
		}
	}

	var value any = responses
	if len(responses) == 1 {
		value = responses[0]
	}
	err = writeOutput(cmd.OutOrStdout(), a.cfg.Find.Output, value, func(w io.Writer) error {
		return writeFindText(w, responses)
	})
	if err != nil {
		return err
	}

	for _, resp := range responses {
		if resp.Found {
			return nil
		}
	}
	return errNoMatch
}

func writeFindText(w io.Writer, responses []dto.FindResponse) error {
	for _, resp := range responses {
		if _, err := fmt.Fprintln(w, resp.String()); err != nil {
			return err
		}
		if len(resp.Matches) < 2 {
			continue
		}
		for _, m := range resp.Matches {
			if _, err := fmt.Fprintf(w, "  [%d,%d)\n", m.Start, m.End); err != nil {
				return err
			}
		}
	}
	return nil
}
