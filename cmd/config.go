package cmd

import (
	"fmt"
	"os"

	"textoffset/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command, which prints the effective
// configuration, and its check subcommand.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after merging defaults, the config file,
TEXTOFFSET_* environment variables and flags, rendered as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd, a.runConfig(cmd))
		},
	}

	cmd.AddCommand(newConfigCheckCmd())
	return cmd
}

func (a *app) runConfig(cmd *cobra.Command) error {
	out, err := a.cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		// The file under check may be the one the root would fail to load.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			if _, err := config.ParseConfigFromYAML(string(data)); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
			return err
		},
	}
}
