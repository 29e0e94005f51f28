package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/camelsnake/internal/logging"
	"github.com/yaklabco/camelsnake/pkg/config"
	"github.com/yaklabco/camelsnake/pkg/pipeline"
	"github.com/yaklabco/camelsnake/pkg/reporter"
	"github.com/yaklabco/camelsnake/pkg/rewrite"
	"github.com/yaklabco/camelsnake/pkg/runner"
)

type renameFlags struct {
	format           string
	ignore           []string
	shortIdentifiers string
	detectLanguage   bool
	compact          bool
}

func newRenameCommand() *cobra.Command {
	cfg := &config.Config{}
	flags := &renameFlags{}

	cmd := &cobra.Command{
		Use:   "rename [paths...]",
		Short: "Rename camelCase identifiers in C and C++ files",
		Long:  renameLongDescription,
		Args:  usageArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, cfg, flags)
		},
	}

	addRenameFlags(cmd, cfg, flags)

	return cmd
}

const renameLongDescription = `Rename camelCase identifiers in C and C++ files to snake_case.

By default, scans .h, .cc, .cpp and .c files in the current directory and
subdirectories, skipping test-inputs, third-party and linters trees, and
prints how many identifiers each file would change. Named files are
processed whatever their suffix.

Examples:
  camelsnake rename                     # Report counts for the current directory
  camelsnake rename src/                # Report counts for src
  camelsnake rename --rewrite src/      # Rewrite files in place
  camelsnake rename --dry-run src/      # Show the rewrite as a diff
  camelsnake rename --format echo a.cc  # Show every line before and after
  camelsnake rename --check             # Exit 2 if anything would change`

func runRename(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *renameFlags) error {
	logger := logging.Default()

	// Only flags given on the command line override the config files.
	if cmd.Flags().Changed("format") {
		if _, err := reporter.ParseFormat(flags.format); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("short-identifiers") {
		cliCfg.ShortIdentifiers = flags.shortIdentifiers
	}
	if cmd.Flags().Changed("detect-language") {
		cliCfg.DetectLanguage = config.Bool(flags.detectLanguage)
	}

	cfg, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	if cfg.Check {
		cfg.Rewrite = false
	}
	if cfg.DryRun && cfg.Format == config.FormatText && !cmd.Flags().Changed("format") {
		cfg.Format = config.FormatDiff
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	rules, err := cfg.NamingRules()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger.Debug("configuration loaded",
		logging.FieldRewrite, cfg.Rewrite,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldCheck, cfg.Check,
		logging.FieldFormat, format,
		logging.FieldJobs, cfg.Jobs,
	)

	ctx := logging.WithLogger(cmd.Context(), logger)

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	files, err := runner.Discover(ctx, runOpts)
	if err != nil {
		if errors.Is(err, runner.ErrPathNotFound) {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return ioError{fmt.Errorf("discover files: %w", err)}
	}

	logger.Debug("starting rename run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldFiles, len(files),
	)

	if cfg.Progress {
		bar := newProgressBar(cmd, len(files))
		runOpts.OnFile = func(runner.FileOutcome) { _ = bar.Add(1) }
		defer func() { _ = bar.Finish() }()
	}

	renamer := runner.New(pipeline.New(rewrite.NewEngine(rules)))
	result, err := renamer.RunFiles(ctx, files, runOpts)
	if err != nil {
		return fmt.Errorf("rename run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowSummary: true,
		ShowTally:   true,
		Rewrite:     cfg.Rewrite && !cfg.DryRun,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return ioError{fmt.Errorf("report results: %w", err)}
	}

	logger.Debug("rename run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldRenames, result.Stats.Renames,
	)

	return resultError(result, cfg.Check)
}

func newProgressBar(cmd *cobra.Command, total int) *progressbar.ProgressBar {
	visible := true
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		visible = term.IsTerminal(int(f.Fd()))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("renaming"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(visible),
	)
}

func addRenameFlags(cmd *cobra.Command, cfg *config.Config, flags *renameFlags) {
	cmd.Flags().BoolVar(&cfg.Rewrite, "rewrite", false, "rewrite files in place")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show the rewrite as a diff without writing")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "exit with status 2 if any identifier would be renamed")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, echo, content, diff, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when rewriting")
	cmd.Flags().StringVar(&flags.shortIdentifiers, "short-identifiers", "error",
		"names like mX that would shrink to one letter: error or keep")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false,
		"also process files detected as C or C++ by content")
	cmd.Flags().BoolVar(&cfg.Progress, "progress", false, "show a progress bar on stderr")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
}
