// Package cmd provides the command-line interface of the textoffset application.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"textoffset/internal/application/common/logging"
	"textoffset/internal/application/common/slogger"
	"textoffset/internal/application/service"
	"textoffset/internal/config"
	"textoffset/internal/port/inbound"
	"textoffset/internal/version"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes returned by Execute.
const (
	exitError    = 1
	exitNotFound = 2
)

// errNoMatch is returned by commands whose search found nothing. Execute maps
// it to exitNotFound without printing an error.
var errNoMatch = errors.New("no match")

// app carries the state shared by the command tree of one invocation.
type app struct {
	v         *viper.Viper
	cfgFile   string
	metrics   bool
	cfg       *config.Config
	telemetry *telemetry
	finder    inbound.FindService
	converter inbound.OffsetConverter
}

// newRootCmd builds a fresh command tree. Every call gets its own viper
// instance so tests can execute commands independently.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	syncLegacyVersionVars()
	info := version.GetVersion()

	rootCmd := &cobra.Command{
		Use:   "textoffset",
		Short: "Find substrings at or after an offset",
		Long: `textoffset locates a pattern in a text starting at a given offset and
reports the position relative to the start of the whole text.

Offsets can be counted in bytes, code points (rune) or grapheme clusters.
An offset that is negative, beyond the end of the text or inside a
character is rejected rather than clamped.

Exit status is 0 when a match is found, 2 when nothing matched and 1 on
any error.`,
		Version:           info.FormatShort(),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.initialize,
	}
	rootCmd.SetVersionTemplate(info.FormatFull())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./configs/config.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "Log format (json, text)")
	flags.StringP("output", "o", config.DefaultOutput, "Output format (text, json, yaml)")
	flags.BoolVar(&a.metrics, "metrics", false, "Print a metrics summary to stderr after the command")

	for key, name := range map[string]string{
		"log.level":   "log-level",
		"log.format":  "log-format",
		"find.output": "output",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			slogger.WarnNoCtx("Failed to bind flag", slogger.Fields{"flag": name, "error": err.Error()})
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(a),
		newFindCmd(a),
		newBetweenCmd(a),
		newConvertCmd(a),
		newDemoCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits with the matching status.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(exitNotFound)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}

// initialize loads configuration, installs the logger and wires the services.
func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}
	if err := slogger.Configure(a.cfg.Log.Level, a.cfg.Log.Format); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	cmd.SetContext(logging.NewCorrelationContext(cmd.Context()))

	var metrics *service.OTelFindMetrics
	var err error
	if a.metrics {
		a.telemetry, err = newTelemetry(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to set up metrics: %w", err)
		}
		metrics, err = service.NewFindMetrics(a.telemetry.provider)
	} else {
		metrics, err = service.NewFindMetrics(nil)
	}
	if err != nil {
		return fmt.Errorf("failed to create find metrics: %w", err)
	}

	finder, err := service.NewFindService(service.FindServiceConfig{
		DefaultUnit:     a.cfg.Find.Unit,
		DefaultBoundary: a.cfg.Find.Boundary,
		MaxConcurrency:  a.cfg.Find.MaxConcurrency,
	}, metrics)
	if err != nil {
		return fmt.Errorf("failed to create find service: %w", err)
	}
	a.finder = finder
	a.converter = service.NewOffsetConversionService()

	slogger.Debug(cmd.Context(), "Command initialized", slogger.Fields{
		"command":     cmd.Name(),
		"config_file": a.v.ConfigFileUsed(),
		"unit":        a.cfg.Find.Unit,
		"boundary":    a.cfg.Find.Boundary,
	})
	return nil
}

func (a *app) loadConfig() error {
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath("./configs")
		a.v.AddConfigPath(".")
	}

	a.v.SetEnvPrefix("TEXTOFFSET")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults and environment
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// report prints and releases the metrics collected during the command, if
// any, and returns runErr joined with any reporting failure. Commands call it
// on every exit path since cobra skips post-run hooks when RunE fails.
func (a *app) report(cmd *cobra.Command, runErr error) error {
	if a.telemetry == nil {
		return runErr
	}
	tel := a.telemetry
	a.telemetry = nil
	return errors.Join(runErr,
		tel.writeSummary(cmd.Context(), cmd.ErrOrStderr()),
		tel.shutdown(cmd.Context()),
	)
}
