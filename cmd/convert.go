package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type convertOptions struct {
	input  inputFlags
	offset int
	from   string
	to     string
}

type convertResult struct {
	Offset    int    `json:"offset"    yaml:"offset"`
	From      string `json:"from"      yaml:"from"`
	To        string `json:"to"        yaml:"to"`
	Converted int    `json:"converted" yaml:"converted"`
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an offset between byte, rune and grapheme units",
		Example: `  textoffset convert --text "héllo" --offset 3 --from-unit byte --to-unit rune
  textoffset convert --file notes.txt --offset 10 --from-unit grapheme`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd, a.runConvert(cmd, opts))
		},
	}

	flags := cmd.Flags()
	opts.input.register(cmd)
	flags.IntVar(&opts.offset, "offset", 0, "Offset to convert")
	flags.StringVar(&opts.from, "from-unit", "byte", "Unit of --offset (byte, rune, grapheme)")
	flags.StringVar(&opts.to, "to-unit", "rune", "Unit to convert to (byte, rune, grapheme)")
	_ = cmd.MarkFlagRequired("offset")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, opts *convertOptions) error {
	text, err := opts.input.read(cmd)
	if err != nil {
		return err
	}

	converted, err := a.converter.Convert(cmd.Context(), text, opts.offset, opts.from, opts.to)
	if err != nil {
		return err
	}

	result := convertResult{Offset: opts.offset, From: opts.from, To: opts.to, Converted: converted}
	return writeOutput(cmd.OutOrStdout(), a.cfg.Find.Output, result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, converted)
		return err
	})
}
