package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/camelsnake/internal/logging"
	"github.com/yaklabco/camelsnake/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigFile is the file written by init without --output.
const defaultConfigFile = ".camelsnake.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new camelsnake configuration file",
		Long: `Create a new .camelsnake.yml configuration file in the current directory
with the default settings, documented inline.

Examples:
  camelsnake init                      Create .camelsnake.yml
  camelsnake init --output custom.yml  Write to a custom file path
  camelsnake init --force              Overwrite an existing file`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags, isTerminal(cmd.InOrStdin()))
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .camelsnake.yml)")

	return cmd
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runInit(cmd *cobra.Command, flags *initFlags, interactive bool) error {
	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		switch {
		case flags.force:
			logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
		case interactive:
			ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
				fmt.Sprintf("%s already exists. Overwrite? [y/N] ", outputPath))
			if err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			if !ok {
				logger.Info("left existing file unchanged", logging.FieldPath, outputPath)
				return nil
			}
		default:
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, outputPath)
		}
	}

	if err := os.WriteFile(absPath, config.Template(), configFilePermissions); err != nil {
		return ioError{fmt.Errorf("write file: %w", err)}
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'camelsnake rename' to see what would change")

	return nil
}

// confirm asks a yes/no question; only "y" or "yes" is a yes.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
