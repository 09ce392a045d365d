package vault

import "errors"

var (
	// ErrInvalidJSON is the Reason of a Corrupt entry whose text does not
	// parse as JSON.
	ErrInvalidJSON = errors.New("stored value is not valid JSON")

	// ErrUndecryptable is the Reason of a Corrupt entry that the cipher
	// could not open with the current secret.
	ErrUndecryptable = errors.New("stored value cannot be decrypted with the current secret")
)
