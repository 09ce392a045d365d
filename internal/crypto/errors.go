package crypto

import "errors"

var (
	// ErrMalformedCiphertext is returned by Open when the input is not a
	// sealed blob at all (bad base64 or truncated).
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrDecryptionFailed is returned by Open when authentication fails,
	// which means the secret is wrong or the blob was tampered with.
	ErrDecryptionFailed = errors.New("decryption failed")
)
