// Package usecase implements appending to and reading from the encrypted audit log.
package usecase

import (
	"context"
	"time"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
)

// AuditLogRepository defines the interface for audit log persistence.
type AuditLogRepository interface {
	Path() string
	Append(ctx context.Context, line string) error
	ReadLines(ctx context.Context) ([]string, error)
	Exists(ctx context.Context) (bool, error)
	Backup(ctx context.Context, now time.Time) (string, error)
	Rewrite(ctx context.Context, lines []string) error
}

// AuditLogUseCase defines the interface for audit log operations.
type AuditLogUseCase interface {
	// Append serializes, encrypts and appends record. Failures match
	// auditlogDomain.ErrLogWriteFailed.
	Append(ctx context.Context, record *auditlogDomain.Record, passphrase string) error

	// ReadAll decrypts the last limit lines in file order. Lines that cannot be
	// decrypted or parsed come back as placeholder entries; they never fail the read.
	ReadAll(ctx context.Context, passphrase string, limit int) ([]auditlogDomain.Entry, error)
}
