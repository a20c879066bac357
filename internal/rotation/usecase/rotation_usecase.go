package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	auditlogUseCase "github.com/allisson/formrelay/internal/auditlog/usecase"
	credentialDomain "github.com/allisson/formrelay/internal/credential/domain"
	credentialUseCase "github.com/allisson/formrelay/internal/credential/usecase"
	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
	apperrors "github.com/allisson/formrelay/internal/errors"
	rotationDomain "github.com/allisson/formrelay/internal/rotation/domain"
)

type rotationUseCase struct {
	auditLogRepo   auditlogUseCase.AuditLogRepository
	credentialRepo credentialUseCase.CredentialRepository
	cipher         cryptoService.TextCipher
	logger         *slog.Logger
	now            func() time.Time
}

// RotateAuditLog re-encrypts the audit log line by line.
func (r *rotationUseCase) RotateAuditLog(
	ctx context.Context,
	oldPassphrase, newPassphrase string,
) (*rotationDomain.Report, error) {
	if oldPassphrase == "" || newPassphrase == "" {
		return nil, cryptoDomain.ErrEmptyPassphrase
	}

	exists, err := r.auditLogRepo.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", rotationDomain.ErrTargetNotFound, r.auditLogRepo.Path())
	}

	lines, err := r.auditLogRepo.ReadLines(ctx)
	if err != nil {
		return nil, err
	}

	report := &rotationDomain.Report{
		Target: rotationDomain.TargetAuditLog,
		Path:   r.auditLogRepo.Path(),
	}
	if len(lines) == 0 {
		return report, nil
	}

	rotated := make([]string, 0, len(lines))
	for i, line := range lines {
		plaintext, err := r.cipher.DecryptText(oldPassphrase, line)
		if err != nil {
			report.Failed++
			r.logger.Warn("dropping audit log line that does not decrypt with the old passphrase",
				slog.Int("line", i+1))
			continue
		}

		token, err := r.cipher.EncryptText(newPassphrase, plaintext)
		if err != nil {
			return nil, err
		}
		rotated = append(rotated, token)
		report.Rotated++
	}

	backupPath, err := r.auditLogRepo.Backup(ctx, r.now())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to back up audit log")
	}
	report.BackupPath = backupPath

	if err := r.auditLogRepo.Rewrite(ctx, rotated); err != nil {
		return nil, apperrors.Wrap(err, "failed to rewrite audit log")
	}

	r.logger.Info("audit log rotated",
		slog.String("path", report.Path),
		slog.String("backup_path", report.BackupPath),
		slog.Int("rotated", report.Rotated),
		slog.Int("failed", report.Failed))

	return report, nil
}

// RotateCredential decrypts the credential with the old passphrase, backs the file
// up and writes the re-encrypted token.
func (r *rotationUseCase) RotateCredential(
	ctx context.Context,
	oldPassphrase, newPassphrase string,
) (*rotationDomain.Report, error) {
	if oldPassphrase == "" || newPassphrase == "" {
		return nil, cryptoDomain.ErrEmptyPassphrase
	}

	token, err := r.credentialRepo.Read(ctx)
	if err != nil {
		if apperrors.Is(err, credentialDomain.ErrCredentialNotFound) {
			return nil, fmt.Errorf("%w: %s", rotationDomain.ErrTargetNotFound, r.credentialRepo.Path())
		}
		return nil, err
	}

	secret, err := r.cipher.DecryptText(oldPassphrase, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rotationDomain.ErrRotationAborted, err)
	}

	rotated, err := r.cipher.EncryptText(newPassphrase, secret)
	if err != nil {
		return nil, err
	}

	backupPath, err := r.credentialRepo.Backup(ctx, r.now())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to back up credential")
	}

	if err := r.credentialRepo.Write(ctx, rotated); err != nil {
		return nil, apperrors.Wrap(err, "failed to write rotated credential")
	}

	report := &rotationDomain.Report{
		Target:     rotationDomain.TargetCredential,
		Path:       r.credentialRepo.Path(),
		BackupPath: backupPath,
		Rotated:    1,
	}

	r.logger.Info("credential rotated",
		slog.String("path", report.Path),
		slog.String("backup_path", report.BackupPath))

	return report, nil
}

// NewRotationUseCase creates a new RotationUseCase.
func NewRotationUseCase(
	auditLogRepo auditlogUseCase.AuditLogRepository,
	credentialRepo credentialUseCase.CredentialRepository,
	cipher cryptoService.TextCipher,
	logger *slog.Logger,
) RotationUseCase {
	return &rotationUseCase{
		auditLogRepo:   auditLogRepo,
		credentialRepo: credentialRepo,
		cipher:         cipher,
		logger:         logger,
		now:            time.Now,
	}
}
