// Package cli provides the Cobra command structure for camelsnake.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/camelsnake/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root camelsnake command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "camelsnake",
		Short: "Rename camelCase C and C++ identifiers to snake_case",
		Long: `camelsnake renames camelCase variable names in C and C++ sources to
snake_case.

It works line by line with regular expressions rather than a parser. Function
calls are left alone, Hungarian prefixes such as m and b are dropped or turned
into is_, and common abbreviations are spelled out. Files are only written
with --rewrite; by default camelsnake reports how many names it would change.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	rootCmd.AddCommand(newRenameCommand())
	rootCmd.AddCommand(newLineCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	applyHelp(rootCmd)

	return rootCmd
}

// usageArgs wraps a positional argument validator so its errors map to
// ExitInvalidUsage.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return nil
	}
}
