// Package repository persists the encrypted credential.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	credentialDomain "github.com/allisson/formrelay/internal/credential/domain"
	"github.com/allisson/formrelay/internal/fsutil"
)

// FileCredentialRepository stores the credential token as the whole content of a file.
type FileCredentialRepository struct {
	path   string
	logger *slog.Logger
}

// NewFileCredentialRepository creates a repository backed by path.
func NewFileCredentialRepository(path string, logger *slog.Logger) *FileCredentialRepository {
	return &FileCredentialRepository{path: path, logger: logger}
}

// Path returns the credential file location.
func (r *FileCredentialRepository) Path() string {
	return r.path
}

// Read returns the stored token with surrounding whitespace removed.
func (r *FileCredentialRepository) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", credentialDomain.ErrCredentialNotFound
		}
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Write replaces the credential file atomically, creating its directory if needed.
func (r *FileCredentialRepository) Write(ctx context.Context, token string) error {
	if err := fsutil.EnsureParentDir(r.path); err != nil {
		return err
	}
	if err := fsutil.AtomicWriteFile(r.path, []byte(token), fsutil.DefaultFilePermissions, r.logger); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return nil
}

// Backup copies the current file to <path>.bak.<unix millis> and returns the backup path.
func (r *FileCredentialRepository) Backup(ctx context.Context, now time.Time) (string, error) {
	exists, err := fsutil.Exists(r.path)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", credentialDomain.ErrCredentialNotFound
	}

	backupPath := fsutil.BackupPath(r.path, now)
	if err := fsutil.CopyFile(r.path, backupPath, fsutil.DefaultFilePermissions); err != nil {
		return "", err
	}
	return backupPath, nil
}
