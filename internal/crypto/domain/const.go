// Package domain defines the cryptographic value types shared by the credential
// store, the encrypted audit log and key rotation.
//
// Every persisted secret is a CipherToken: a random 16-byte IV and an AES-256-CBC
// ciphertext, both hex encoded and joined by a colon. The key is the SHA-256 digest
// of an operator passphrase.
package domain

const (
	// KeySize is the size in bytes of an AES-256 key.
	KeySize = 32

	// IVSize is the size in bytes of the CBC initialization vector (one AES block).
	IVSize = 16

	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// TokenSeparator separates the hex IV from the hex ciphertext in a CipherToken.
	TokenSeparator = ":"
)
