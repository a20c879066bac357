// Package repository persists the encrypted audit log as newline-delimited CipherTokens.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/allisson/formrelay/internal/fsutil"
)

// FileAuditLogRepository appends encrypted lines to a single file.
//
// Appends from this process are serialized by a mutex and each line is issued as a
// single write on an O_APPEND descriptor, so a crashed request never leaves half a
// line behind. Appends from other processes are not coordinated.
type FileAuditLogRepository struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewFileAuditLogRepository creates a repository backed by path.
func NewFileAuditLogRepository(path string, logger *slog.Logger) *FileAuditLogRepository {
	return &FileAuditLogRepository{path: path, logger: logger}
}

// Path returns the audit log location.
func (r *FileAuditLogRepository) Path() string {
	return r.path
}

// Append writes line followed by a newline at the end of the file, creating the
// file and its directory on first use.
func (r *FileAuditLogRepository) Append(ctx context.Context, line string) error {
	if strings.ContainsAny(line, "\r\n") {
		return fmt.Errorf("audit log line must not contain newlines")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := fsutil.EnsureParentDir(r.path); err != nil {
		return err
	}

	//nolint:gosec // path comes from operator configuration
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fsutil.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer fsutil.CloseWithError(f.Close, r.logger, r.path)

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append audit log line: %w", err)
	}
	return nil
}

// ReadLines returns every non-empty line in file order. A missing file has no lines.
func (r *FileAuditLogRepository) ReadLines(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	return splitLines(string(data)), nil
}

// Exists reports whether the log file is present.
func (r *FileAuditLogRepository) Exists(ctx context.Context) (bool, error) {
	return fsutil.Exists(r.path)
}

// Backup copies the log to <path>.bak.<unix millis> and returns the backup path.
func (r *FileAuditLogRepository) Backup(ctx context.Context, now time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	backupPath := fsutil.BackupPath(r.path, now)
	if err := fsutil.CopyFile(r.path, backupPath, fsutil.DefaultFilePermissions); err != nil {
		return "", err
	}
	return backupPath, nil
}

// Rewrite atomically replaces the log with lines, each terminated by a newline.
func (r *FileAuditLogRepository) Rewrite(ctx context.Context, lines []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := fsutil.EnsureParentDir(r.path); err != nil {
		return err
	}
	if err := fsutil.AtomicWriteFile(r.path, []byte(joinLines(lines)), fsutil.DefaultFilePermissions, r.logger); err != nil {
		return fmt.Errorf("failed to rewrite audit log: %w", err)
	}
	return nil
}

func splitLines(content string) []string {
	lines := []string{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
