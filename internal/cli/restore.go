package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/camelsnake/internal/logging"
	"github.com/yaklabco/camelsnake/pkg/config"
	"github.com/yaklabco/camelsnake/pkg/fsutil"
	"github.com/yaklabco/camelsnake/pkg/runner"
)

type restoreFlags struct {
	keep bool
}

func newRestoreCommand() *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore [paths...]",
		Short: "Restore files from the backups written by rename --rewrite",
		Long: `Restore files from their sidecar backups (*.camelsnake.bak).

Files are discovered the same way as for rename. Every file with a backup
gets its original content back and the backup is removed, unless --keep is
given. Files without a backup are left alone.`,
		Args: usageArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.keep, "keep", false, "keep backups after restoring")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string, flags *restoreFlags) error {
	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

	cfg, workDir, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}
	mode := fsutil.BackupMode(cfg.Backups.Mode)
	if mode == fsutil.BackupModeNone {
		mode = fsutil.BackupModeSidecar
	}

	opts := runner.OptionsFromConfig(cfg, args)
	opts.WorkingDir = workDir

	ctx := cmd.Context()
	files, err := runner.Discover(ctx, opts)
	if err != nil {
		if errors.Is(err, runner.ErrPathNotFound) {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return ioError{fmt.Errorf("discover files: %w", err)}
	}

	var restored int
	var errs []error
	for _, path := range files {
		ok, err := fsutil.RestoreBackup(ctx, path, mode)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		restored++
		logger.Info("restored", logging.FieldPath, path)

		if flags.keep {
			continue
		}
		if _, err := fsutil.RemoveBackup(path, mode); err != nil {
			errs = append(errs, err)
		}
	}

	logger.Info("restore finished", logging.FieldCount, restored)

	if len(errs) > 0 {
		return ioError{errors.Join(errs...)}
	}
	return nil
}
