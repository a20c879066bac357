package repository

import (
	"context"
	"sync"
	"time"

	credentialDomain "github.com/allisson/formrelay/internal/credential/domain"
	"github.com/allisson/formrelay/internal/fsutil"
)

// MemoryCredentialRepository keeps the credential in memory. Used by tests and by
// callers that want the store semantics without touching disk.
type MemoryCredentialRepository struct {
	mu      sync.RWMutex
	path    string
	token   *string
	backups map[string]string
}

// NewMemoryCredentialRepository creates an empty in-memory repository. path is only
// used to name backups.
func NewMemoryCredentialRepository(path string) *MemoryCredentialRepository {
	return &MemoryCredentialRepository{path: path, backups: make(map[string]string)}
}

// Path returns the nominal credential path.
func (r *MemoryCredentialRepository) Path() string {
	return r.path
}

// Read returns the stored token or ErrCredentialNotFound.
func (r *MemoryCredentialRepository) Read(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.token == nil {
		return "", credentialDomain.ErrCredentialNotFound
	}
	return *r.token, nil
}

// Write stores token.
func (r *MemoryCredentialRepository) Write(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.token = &token
	return nil
}

// Backup records a copy of the current token under the backup path.
func (r *MemoryCredentialRepository) Backup(ctx context.Context, now time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.token == nil {
		return "", credentialDomain.ErrCredentialNotFound
	}
	backupPath := fsutil.BackupPath(r.path, now)
	r.backups[backupPath] = *r.token
	return backupPath, nil
}

// BackupContent returns the token saved under backupPath.
func (r *MemoryCredentialRepository) BackupContent(backupPath string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.backups[backupPath]
	return token, ok
}
