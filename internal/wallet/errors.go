package wallet

import "errors"

var (
	ErrInvalidMnemonic   = errors.New("invalid mnemonic")
	ErrUnsupportedFormat = errors.New("unsupported keystore format")
	ErrWrongPassword     = errors.New("keystore MAC mismatch: wrong password")
	ErrEmptyPassword     = errors.New("keystore password is empty")
)
