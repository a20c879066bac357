package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"
)

// KMSCiphertext validates a KMS-wrapped value: standard base64 that decodes to a
// non-empty ciphertext. Empty strings pass so Required can decide.
var KMSCiphertext = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_kms_ciphertext_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(decoded) == 0 {
		return validation.NewError("validation_kms_ciphertext", "must be base64-encoded KMS ciphertext")
	}
	return nil
})
