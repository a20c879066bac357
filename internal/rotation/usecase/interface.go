// Package usecase re-encrypts the audit log and the credential under a new passphrase.
//
// Rotation is an offline operation: it must not run while the relay is serving
// traffic, since appends made during a rotation would be lost by the rewrite.
package usecase

import (
	"context"

	rotationDomain "github.com/allisson/formrelay/internal/rotation/domain"
)

// RotationUseCase defines the interface for key rotation operations.
type RotationUseCase interface {
	// RotateAuditLog re-encrypts every line that decrypts under oldPassphrase and
	// drops the rest. The original file is backed up before it is rewritten.
	RotateAuditLog(ctx context.Context, oldPassphrase, newPassphrase string) (*rotationDomain.Report, error)

	// RotateCredential re-encrypts the credential. If it does not decrypt under
	// oldPassphrase nothing is written and ErrRotationAborted is returned.
	RotateCredential(ctx context.Context, oldPassphrase, newPassphrase string) (*rotationDomain.Report, error)
}
