package store

import (
	"context"
	"fmt"
)

// quotaStore wraps a [SessionStore] and rejects values larger than max
// bytes before they reach the inner store.
type quotaStore struct {
	SessionStore
	max int
}

// WithQuota wraps inner so that Set fails with [ErrQuotaExceeded] for values
// longer than maxBytes. A non-positive maxBytes returns inner unchanged.
func WithQuota(inner SessionStore, maxBytes int) SessionStore {
	if maxBytes <= 0 {
		return inner
	}
	return &quotaStore{SessionStore: inner, max: maxBytes}
}

// Set implements [SessionStore].
func (q *quotaStore) Set(ctx context.Context, key, value string) error {
	if len(value) > q.max {
		return fmt.Errorf("%w: value for %q is %d bytes, limit %d", ErrQuotaExceeded, key, len(value), q.max)
	}
	return q.SessionStore.Set(ctx, key, value)
}
