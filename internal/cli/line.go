package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/camelsnake/internal/ui/pretty"
	"github.com/yaklabco/camelsnake/pkg/config"
	"github.com/yaklabco/camelsnake/pkg/ident"
	"github.com/yaklabco/camelsnake/pkg/naming"
	"github.com/yaklabco/camelsnake/pkg/rewrite"
)

type lineFlags struct {
	ctor             bool
	shortIdentifiers string
}

func newLineCommand() *cobra.Command {
	flags := &lineFlags{}

	cmd := &cobra.Command{
		Use:   "line <text>",
		Short: "Rename the identifiers in one line of code",
		Long: `Rename the identifiers in one line of code and show how each was split.

Every renamed identifier is printed with its pieces, followed by the
rewritten line. Nothing is read from or written to disk.

Examples:
  camelsnake line 'int mCount = vecElemCnt;'
  camelsnake line --ctor 'Foo::Foo(int x) : memberVar(x) {'`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.ctor, "ctor", false, "treat the line as part of a constructor initializer list")
	cmd.Flags().StringVar(&flags.shortIdentifiers, "short-identifiers", "error",
		"names like mX that would shrink to one letter: error or keep")

	return cmd
}

func runLine(cmd *cobra.Command, text string, flags *lineFlags) error {
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("short-identifiers") {
		cliCfg.ShortIdentifiers = flags.shortIdentifiers
	}

	cfg, _, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	rules, err := cfg.NamingRules()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	mode := ident.ModeNormal
	if flags.ctor {
		mode = ident.ModeCtorInit
	}

	result, err := rewrite.NewEngine(rules).RewriteLine(text, mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))

	for _, rn := range result.Renames {
		pieces, err := naming.Split(rn.Old)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, styles.FormatPieces(rn.Old, pieces))
	}
	fmt.Fprintln(out, styles.NewLine.Render(result.Text))

	return nil
}
