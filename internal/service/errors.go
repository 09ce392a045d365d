package service

import "errors"

var (
	// ErrDeclined is returned when the user cancels a password prompt or
	// declines a confirmation. It is a normal outcome: nothing was changed.
	ErrDeclined = errors.New("action declined by user")

	// ErrBusy is returned when a create or remove is started while another
	// one is still waiting for the user or the wallet provider.
	ErrBusy = errors.New("another account operation is in progress")

	// ErrDuplicateAddress is returned when the wallet provider yields an
	// address that is already in the collection.
	ErrDuplicateAddress = errors.New("account address already exists")

	// ErrSessionEnded is returned by a create or remove that was still
	// running when the session was ended. Its result is discarded.
	ErrSessionEnded = errors.New("session ended during account operation")
)
