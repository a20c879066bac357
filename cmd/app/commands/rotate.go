package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	rotationDomain "github.com/allisson/formrelay/internal/rotation/domain"
	rotationUseCase "github.com/allisson/formrelay/internal/rotation/usecase"
)

// RunRotateLog re-encrypts every audit log line from oldPassphrase to newPassphrase.
//
// Lines that cannot be decrypted with the old passphrase are dropped from the
// rewritten log; they remain in the backup. That is reported, not treated as failure.
func RunRotateLog(
	ctx context.Context,
	rotationUseCase rotationUseCase.RotationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	oldPassphrase, newPassphrase string,
) error {
	report, err := rotationUseCase.RotateAuditLog(ctx, oldPassphrase, newPassphrase)
	if err != nil {
		return fmt.Errorf("failed to rotate audit log: %w", err)
	}

	logger.Info("audit log rotated",
		slog.String("path", report.Path),
		slog.Int("rotated", report.Rotated),
		slog.Int("failed", report.Failed),
		slog.String("backup_path", report.BackupPath),
	)

	if report.BackupPath == "" {
		_, _ = fmt.Fprintf(writer, "Audit log %s is empty. Nothing to rotate.\n", report.Path)
		return nil
	}

	outputRotationReport(writer, report)
	return nil
}

// RunRotateCredential re-encrypts the credential from oldPassphrase to newPassphrase.
// Nothing is written when the credential cannot be decrypted with oldPassphrase.
func RunRotateCredential(
	ctx context.Context,
	rotationUseCase rotationUseCase.RotationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	oldPassphrase, newPassphrase string,
) error {
	report, err := rotationUseCase.RotateCredential(ctx, oldPassphrase, newPassphrase)
	if err != nil {
		return fmt.Errorf("failed to rotate credential: %w", err)
	}

	logger.Info("credential rotated",
		slog.String("path", report.Path),
		slog.String("backup_path", report.BackupPath),
	)

	outputRotationReport(writer, report)
	return nil
}

// outputRotationReport prints the rotation summary in text format.
func outputRotationReport(writer io.Writer, report *rotationDomain.Report) {
	_, _ = fmt.Fprintf(writer, "Rotated %s\n", report.Path)
	if report.Target == rotationDomain.TargetAuditLog {
		_, _ = fmt.Fprintf(writer, "Rotated: %d\n", report.Rotated)
		_, _ = fmt.Fprintf(writer, "Failed:  %d\n", report.Failed)
	}
	_, _ = fmt.Fprintf(writer, "Backup saved to: %s\n", report.BackupPath)

	if report.HasLosses() {
		_, _ = fmt.Fprintf(
			writer,
			"WARNING: %d line(s) could not be decrypted with the old passphrase and were dropped. "+
				"They are preserved in the backup.\n",
			report.Failed,
		)
	}
}
