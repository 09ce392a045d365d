package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore is the volatile string key/value store the vault writes to.
// Every implementation is scoped to one client session: nothing written
// through it survives Close.
type SessionStore interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; err is reserved for backend faults.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists every stored key starting with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close ends the session and discards its data.
	Close() error
}
