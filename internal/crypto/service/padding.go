package service

import (
	"bytes"
)

// pkcs7Pad appends 1..blockSize bytes, each equal to the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+padLen)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad strips PKCS#7 padding and reports whether it was well formed.
// The pad bytes are checked without an early exit on the first mismatch.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, false
	}

	var diff byte
	for _, b := range data[len(data)-padLen:] {
		diff |= b ^ byte(padLen)
	}
	if diff != 0 {
		return nil, false
	}

	return data[:len(data)-padLen], true
}
