package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
)

type auditLogUseCase struct {
	repo   AuditLogRepository
	cipher cryptoService.TextCipher
}

// Append encrypts the JSON form of record and appends it as one line.
func (a *auditLogUseCase) Append(ctx context.Context, record *auditlogDomain.Record, passphrase string) error {
	if record == nil {
		return auditlogDomain.ErrNilRecord
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %w", auditlogDomain.ErrLogWriteFailed, err)
	}

	line, err := a.cipher.EncryptText(passphrase, string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", auditlogDomain.ErrLogWriteFailed, err)
	}

	if err := a.repo.Append(ctx, line); err != nil {
		return fmt.Errorf("%w: %w", auditlogDomain.ErrLogWriteFailed, err)
	}

	return nil
}

// ReadAll reads the tail of the log and decrypts each line on its own.
func (a *auditLogUseCase) ReadAll(
	ctx context.Context,
	passphrase string,
	limit int,
) ([]auditlogDomain.Entry, error) {
	if limit < 1 {
		return nil, auditlogDomain.ErrInvalidLimit
	}
	if passphrase == "" {
		return nil, cryptoDomain.ErrEmptyPassphrase
	}

	lines, err := a.repo.ReadLines(ctx)
	if err != nil {
		return nil, err
	}

	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	entries := make([]auditlogDomain.Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, a.decodeLine(passphrase, line))
	}

	return entries, nil
}

func (a *auditLogUseCase) decodeLine(passphrase, line string) auditlogDomain.Entry {
	text, err := a.cipher.DecryptText(passphrase, line)
	if err != nil {
		return auditlogDomain.Entry{Failure: auditlogDomain.FailureDecrypt}
	}

	// A JSON null, or an object without a known type, is not a record.
	var record *auditlogDomain.Record
	if err := json.Unmarshal([]byte(text), &record); err != nil || record == nil || !record.Type.Valid() {
		return auditlogDomain.Entry{Failure: auditlogDomain.FailureParse, Raw: text}
	}

	return auditlogDomain.Entry{Record: record}
}

// NewAuditLogUseCase creates a new AuditLogUseCase.
func NewAuditLogUseCase(repo AuditLogRepository, cipher cryptoService.TextCipher) AuditLogUseCase {
	return &auditLogUseCase{
		repo:   repo,
		cipher: cipher,
	}
}
