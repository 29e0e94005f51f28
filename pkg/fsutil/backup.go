package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// BackupMode specifies how backups are stored.
type BackupMode string

const (
	// BackupModeSidecar stores the backup next to the file with BackupSuffix.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// BackupSuffix is appended to a file path to form its sidecar backup.
const BackupSuffix = ".camelsnake.bak"

// Backup controls backup behavior.
type Backup struct {
	Enabled bool
	Mode    BackupMode
}

// DefaultBackup returns the default backup settings: sidecar mode, disabled.
func DefaultBackup() Backup {
	return Backup{Mode: BackupModeSidecar}
}

// active reports whether backups will be written.
func (b Backup) active() bool {
	return b.Enabled && b.Mode != BackupModeNone
}

// BackupPath returns the backup location for path, or "" for BackupModeNone.
// Unknown modes fall back to sidecar.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// CreateBackup copies path to its backup location unless a backup already
// exists there, so repeated runs keep the oldest content. It reports whether
// a backup was written.
func CreateBackup(ctx context.Context, path string, cfg Backup) (bool, error) {
	if !cfg.active() {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	backupPath := BackupPath(path, cfg.Mode)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	created, err := copyFile(ctx, path, backupPath)
	if err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return created, nil
}

// RestoreBackup copies the backup of path back over path. It reports false
// when no backup exists.
func RestoreBackup(ctx context.Context, path string, mode BackupMode) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("restore backup: %w", err)
	}

	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	restored, err := copyFile(ctx, backupPath, path)
	if err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}
	return restored, nil
}

// RemoveBackup deletes the backup of path. It reports false when none existed.
func RemoveBackup(path string, mode BackupMode) (bool, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	err := os.Remove(backupPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}

// BackupExists reports whether path has a backup.
func BackupExists(path string, mode BackupMode) bool {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false
	}
	_, err := os.Stat(backupPath)
	return err == nil
}

// copyFile atomically copies src to dst keeping src's mode. A missing src
// is not an error and reports false.
func copyFile(ctx context.Context, src, dst string) (bool, error) {
	stat, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", src, err)
	}

	content, err := os.ReadFile(src)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", src, err)
	}

	if err := WriteAtomic(ctx, dst, content, stat.Mode()); err != nil {
		return false, err
	}
	return true, nil
}
