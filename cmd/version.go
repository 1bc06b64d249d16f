package cmd

import (
	"textoffset/internal/version"

	"github.com/spf13/cobra"
)

// Version information variables that may be set via ldflags during build.
// They take precedence over the values baked into the version package.
//
//nolint:gochecknoglobals // Required for build-time injection via ldflags.
var (
	// Version is the application version (e.g., v1.0.0).
	Version string
	// Commit is the git commit hash (e.g., abc123def456).
	Commit string
	// BuildTime is the build timestamp (e.g., 2025-01-01T12:00:00Z).
	BuildTime string
)

// newVersionCmd creates and returns the version command.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show version information for the textoffset CLI, including the
version number, commit and build time.`,
		// Version needs no configuration, so skip the root initialization.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd, short)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")
	return cmd
}

func runVersion(cmd *cobra.Command, short bool) error {
	syncLegacyVersionVars()
	return version.GetVersion().Write(cmd.OutOrStdout(), short)
}

// syncLegacyVersionVars copies the cmd-level build variables into the version
// package when any of them is set.
func syncLegacyVersionVars() {
	if Version != "" || Commit != "" || BuildTime != "" {
		version.SetBuildVars(Version, Commit, BuildTime)
	}
}
