// Package fsutil holds the small file-system helpers shared by the credential file,
// the audit log and key rotation.
package fsutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// DefaultDirPermissions is the permission used when creating parent directories.
	DefaultDirPermissions = 0o750
	// DefaultFilePermissions is the permission used for encrypted files and backups.
	DefaultFilePermissions = 0o600
)

// EnsureParentDir creates the directory containing path if it doesn't exist.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// AtomicWriteFile writes data to a temp file next to path, syncs and closes it, then
// renames it over path. Readers see either the old content or the new content, and
// the new content is on disk before the rename makes it visible.
func AtomicWriteFile(path string, data []byte, perm os.FileMode, logger *slog.Logger) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err == nil {
			return
		}
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) && logger != nil {
			logger.Warn("failed to remove temp file",
				slog.String("path", tmpPath),
				slog.Any("error", removeErr))
		}
	}()

	if err := writeAndSync(tmp, data, perm); err != nil {
		CloseWithError(tmp.Close, logger, tmpPath)
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

func writeAndSync(f *os.File, data []byte, perm os.FileMode) error {
	if err := f.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set temp file permissions: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	return nil
}

// BackupPath returns "<path>.bak.<unix milliseconds>" for the given instant.
func BackupPath(path string, now time.Time) string {
	return path + ".bak." + strconv.FormatInt(now.UnixMilli(), 10)
}

// CopyFile copies src to dst byte for byte. dst must not already exist.
func CopyFile(src, dst string, perm os.FileMode) (err error) {
	in, err := os.Open(src) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer CloseWithError(in.Close, nil, src)

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", dst, closeErr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	return out.Sync()
}

// CloseWithError closes a resource and logs any error if a logger is provided.
// This is useful for defer statements where close errors should be handled.
func CloseWithError(closer func() error, logger *slog.Logger, resource string) {
	if err := closer(); err != nil {
		if logger != nil {
			logger.Warn("failed to close resource", slog.String("resource", resource), slog.Any("error", err))
		}
	}
}
