// Package credential manages the single encrypted outbound API credential.
//
// The credential file holds exactly one CipherToken. It is written by operator
// tooling (the encrypt and rotate-credential commands) and read by the relay on
// every form submission, so a rotated file takes effect without a restart.
package credential
