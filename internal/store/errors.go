package store

import "errors"

// Sentinel errors returned by every [SessionStore] implementation. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrQuotaExceeded is returned when a value is larger than the
	// configured per-value cap. It mirrors the quota fault of a browser
	// session store and is meant to propagate to the caller.
	ErrQuotaExceeded = errors.New("session store quota exceeded")

	// ErrStoreClosed is returned by any operation on a store whose session
	// has already ended.
	ErrStoreClosed = errors.New("session store is closed")

	// ErrUnknownBackend is returned by [NewSessionStore] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown session store backend")
)
