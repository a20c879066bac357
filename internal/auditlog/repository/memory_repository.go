package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/allisson/formrelay/internal/fsutil"
)

// MemoryAuditLogRepository keeps log lines in memory. Used by tests.
type MemoryAuditLogRepository struct {
	mu      sync.Mutex
	path    string
	lines   []string
	exists  bool
	backups map[string][]string
}

// NewMemoryAuditLogRepository creates an empty repository. path names backups.
func NewMemoryAuditLogRepository(path string) *MemoryAuditLogRepository {
	return &MemoryAuditLogRepository{path: path, backups: make(map[string][]string)}
}

// Path returns the nominal log path.
func (r *MemoryAuditLogRepository) Path() string {
	return r.path
}

// Append adds line to the end of the log.
func (r *MemoryAuditLogRepository) Append(ctx context.Context, line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append(r.lines, line)
	r.exists = true
	return nil
}

// ReadLines returns a copy of all non-empty lines.
func (r *MemoryAuditLogRepository) ReadLines(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, 0, len(r.lines))
	for _, line := range r.lines {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Exists reports whether anything was ever written.
func (r *MemoryAuditLogRepository) Exists(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.exists, nil
}

// Backup snapshots the current lines.
func (r *MemoryAuditLogRepository) Backup(ctx context.Context, now time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exists {
		return "", fmt.Errorf("audit log %s does not exist", r.path)
	}
	backupPath := fsutil.BackupPath(r.path, now)
	r.backups[backupPath] = append([]string(nil), r.lines...)
	return backupPath, nil
}

// Rewrite replaces all lines.
func (r *MemoryAuditLogRepository) Rewrite(ctx context.Context, lines []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append([]string(nil), lines...)
	r.exists = true
	return nil
}

// BackupLines returns the lines saved under backupPath.
func (r *MemoryAuditLogRepository) BackupLines(backupPath string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines, ok := r.backups[backupPath]
	return lines, ok
}
