package domain

// DerivedKey is a 256-bit AES key derived from a passphrase.
// It is recomputed on demand and never persisted.
type DerivedKey [KeySize]byte

// Bytes returns the key as a slice backed by the array.
func (k *DerivedKey) Bytes() []byte {
	return k[:]
}

// Zero overwrites the key material.
func (k *DerivedKey) Zero() {
	if k == nil {
		return
	}
	Zero(k[:])
}

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
