// Package domain defines key rotation targets, reports and errors.
package domain

import (
	"github.com/allisson/formrelay/internal/errors"
)

// Target names what a rotation rewrote.
type Target string

const (
	TargetAuditLog   Target = "audit_log"
	TargetCredential Target = "credential"
)

// Report summarizes a completed rotation.
//
// For the audit log, Failed counts lines that could not be decrypted with the old
// passphrase. Those lines are dropped from the rewritten file and only survive in
// the backup at BackupPath. BackupPath is empty when there was nothing to rotate.
type Report struct {
	Target     Target
	Path       string
	BackupPath string
	Rotated    int
	Failed     int
}

// HasLosses reports whether any line was dropped.
func (r *Report) HasLosses() bool {
	return r.Failed > 0
}

var (
	// ErrTargetNotFound indicates the file to rotate does not exist.
	ErrTargetNotFound = errors.Wrap(errors.ErrNotFound, "rotation target not found")

	// ErrRotationAborted indicates the credential could not be decrypted with the old
	// passphrase. No file was modified.
	ErrRotationAborted = errors.Wrap(errors.ErrInvalidInput, "rotation aborted: credential cannot be decrypted with the old passphrase")
)
