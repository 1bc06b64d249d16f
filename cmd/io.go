package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// inputFlags holds the --text and --file flags shared by the search commands.
type inputFlags struct {
	text string
	file string
}

func (in *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.text, "text", "t", "", "Text to search")
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "Read the text from a file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
	cmd.MarkFlagsOneRequired("text", "file")
}

// read returns the text to search. File contents are used verbatim,
// including any trailing newline.
func (in *inputFlags) read(cmd *cobra.Command) (string, error) {
	if !cmd.Flags().Changed("file") {
		return in.text, nil
	}
	if in.file == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(in.file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", in.file, err)
	}
	return string(data), nil
}

// writeOutput renders value as JSON or YAML, or calls writeText for the
// human-readable format.
func writeOutput(w io.Writer, format string, value any, writeText func(io.Writer) error) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	case outputText, "":
		return writeText(w)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
