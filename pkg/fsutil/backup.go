package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a dump's path for its sidecar backup.
const BackupSuffix = ".orig"

// BackupPath returns the sidecar backup path for a dump.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the current file to its sidecar backup before a
// fix rewrite. Returns false without error when the source file does
// not exist (nothing to back up). An existing backup is overwritten:
// the backup always reflects the file as it was before the most recent
// rewrite.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read for backup: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat for backup: %w", err)
	}

	if err := WriteAtomic(ctx, BackupPath(path), content, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup replaces the file with its sidecar backup, if one
// exists. Returns false without error when there is no backup.
func RestoreBackup(ctx context.Context, path string) (bool, error) {
	content, err := os.ReadFile(BackupPath(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, 0); err != nil {
		return false, fmt.Errorf("restore backup: %w", err)
	}
	return true, nil
}

// RemoveBackup deletes the sidecar backup, if present.
func RemoveBackup(path string) (bool, error) {
	err := os.Remove(BackupPath(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}
