// Package domain defines audit log records, read results and errors.
package domain

const (
	// DefaultFilePath is where the encrypted audit log lives when not configured.
	DefaultFilePath = "response/response.log.enc"

	// DefaultReadLimit is the number of tail entries returned when no limit is given.
	DefaultReadLimit = 100

	// MaxReadLimit caps how many tail entries a single read may decrypt.
	MaxReadLimit = 1000
)

// RecordType classifies an audit record.
type RecordType string

const (
	TypeSuccess RecordType = "success"
	TypeError   RecordType = "error"
	TypeTest    RecordType = "test"
)

// Valid reports whether t is one of the known record types.
func (t RecordType) Valid() bool {
	switch t {
	case TypeSuccess, TypeError, TypeTest:
		return true
	}
	return false
}

// ChannelEmail is the only delivery channel the relay uses.
const ChannelEmail = "email"

// Placeholder failure kinds for log lines that could not be turned into a Record.
const (
	FailureDecrypt = "decrypt_failed"
	FailureParse   = "parse_failed"
)
