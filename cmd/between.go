package cmd

import (
	"fmt"
	"io"

	"textoffset/internal/application/dto"

	"github.com/spf13/cobra"
)

type betweenOptions struct {
	input    inputFlags
	open     string
	close    string
	from     int
	unit     string
	boundary string
}

func newBetweenCmd(a *app) *cobra.Command {
	opts := &betweenOptions{}

	cmd := &cobra.Command{
		Use:   "between",
		Short: "Print the text between two delimiters",
		Long: `Find --open at or after --from, then --close after it, and print the
text in between together with its offsets.`,
		Example: `  textoffset between --text 'hello first " and hello the second"' --open '"' --close '"'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd, a.runBetween(cmd, opts))
		},
	}

	flags := cmd.Flags()
	opts.input.register(cmd)
	flags.StringVar(&opts.open, "open", "", "Opening delimiter")
	flags.StringVar(&opts.close, "close", "", "Closing delimiter")
	flags.IntVar(&opts.from, "from", 0, "Offset to start searching at")
	flags.StringVar(&opts.unit, "unit", "", "Offset unit (byte, rune, grapheme); defaults to find.unit")
	flags.StringVar(&opts.boundary, "boundary", "", "Boundary rule (rune, grapheme); defaults to find.boundary")
	_ = cmd.MarkFlagRequired("open")
	_ = cmd.MarkFlagRequired("close")
	return cmd
}

func (a *app) runBetween(cmd *cobra.Command, opts *betweenOptions) error {
	text, err := opts.input.read(cmd)
	if err != nil {
		return err
	}

	resp, err := a.finder.Between(cmd.Context(), dto.BetweenRequest{
		Text:     text,
		Open:     opts.open,
		Close:    opts.close,
		Start:    opts.from,
		Unit:     opts.unit,
		Boundary: opts.boundary,
	})
	if err != nil {
		return err
	}

	err = writeOutput(cmd.OutOrStdout(), a.cfg.Find.Output, resp, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, resp.String())
		return err
	})
	if err != nil {
		return err
	}
	if !resp.Found {
		return errNoMatch
	}
	return nil
}
