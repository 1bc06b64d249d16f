package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"textoffset/internal/application/dto"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

const (
	demoQuoteText = `hello first " and hello the second"`
	demoMeText    = "me and me and you"
	demoWideText  = "日本語 and 日本語"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through re-anchored searches on sample texts",
		Long: `Walk through three searches that show why an index found in a suffix
of a text must be shifted by the suffix start before it can be used on the
whole text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd, a.runDemo(cmd.Context(), cmd.OutOrStdout()))
		},
	}
}

func (a *app) runDemo(ctx context.Context, w io.Writer) error {
	for _, walkthrough := range []func(context.Context, io.Writer) error{
		a.demoQuotes,
		a.demoRepeated,
		a.demoWide,
	} {
		if err := walkthrough(ctx, w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func (a *app) demoQuotes(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "the text is: '%s'\n", demoQuoteText)

	first, err := a.demoFind(ctx, demoQuoteText, `"`, 0, "byte")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "index of first quote (\"): %d\n", first)
	writeCaret(w, demoQuoteText, first)

	from := first + 1
	second, err := a.demoFind(ctx, demoQuoteText, `"`, from, "byte")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "index of second quote (\"), searching from %d: %d\n", from, second)
	writeCaret(w, demoQuoteText, second)

	relative := second - from
	fmt.Fprintf(w, "the suffix '%s' alone reports %d, which in the whole text points here:\n",
		demoQuoteText[from:], relative)
	writeCaret(w, demoQuoteText, relative)

	span, err := a.finder.Between(ctx, dto.BetweenRequest{
		Text: demoQuoteText, Open: `"`, Close: `"`, Unit: "byte", Boundary: "rune",
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "text between quotes: '%s'\n", span.Text)
	return nil
}

func (a *app) demoRepeated(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "the text is: '%s'\n", demoMeText)
	for _, from := range []int{0, 5} {
		index, err := a.demoFind(ctx, demoMeText, "me", from, "byte")
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\"me\" from %d: index %d, text from index: '%s'\n", from, index, demoMeText[index:])
		writeCaret(w, demoMeText, index)
	}
	return nil
}

func (a *app) demoWide(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "the text is: '%s'\n", demoWideText)

	runeIndex, err := a.demoFind(ctx, demoWideText, "日本語", 1, "rune")
	if err != nil {
		return err
	}
	byteIndex, err := a.converter.Convert(ctx, demoWideText, runeIndex, "rune", "byte")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\"日本語\" from rune 1: rune index %d, byte index %d\n", runeIndex, byteIndex)
	writeCaret(w, demoWideText, byteIndex)
	return nil
}

func (a *app) demoFind(ctx context.Context, text, pattern string, from int, unit string) (int, error) {
	resp, err := a.finder.Find(ctx, dto.FindRequest{
		Text: text, Pattern: pattern, Start: from, Unit: unit, Boundary: "rune",
	})
	if err != nil {
		return 0, err
	}
	if !resp.Found {
		return 0, fmt.Errorf("%q from %d: %w", pattern, from, errNoMatch)
	}
	return *resp.Index, nil
}

// writeCaret prints text with a caret under the character at byteIndex,
// padded by display width so wide characters line up.
func writeCaret(w io.Writer, text string, byteIndex int) {
	pad := uniseg.StringWidth(text[:byteIndex])
	fmt.Fprintf(w, "  %s\n  %s^\n", text, strings.Repeat(" ", pad))
}
