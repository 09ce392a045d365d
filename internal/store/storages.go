// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/session-wallet/internal/config"
	"github.com/MKhiriev/session-wallet/internal/logger"
)

// NewSessionStore opens the backend named by cfg.Backend and wraps it with
// the per-value quota. An empty backend selects the in-memory store.
func NewSessionStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (SessionStore, error) {
	var (
		inner SessionStore
		err   error
	)

	switch cfg.Backend {
	case "", config.BackendMemory:
		inner = NewMemoryStore()
	case config.BackendBadger:
		inner, err = NewBadgerStore()
		if err != nil {
			return nil, err
		}
	case config.BackendSQLite:
		inner, err = newSQLiteSessionStore(ctx, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	log.Debug().
		Str("func", "NewSessionStore").
		Str("backend", cfg.Backend).
		Int("max_value_bytes", cfg.MaxValueBytes).
		Msg("session store opened")

	return WithQuota(inner, cfg.MaxValueBytes), nil
}

func newSQLiteSessionStore(ctx context.Context, dsn string, log *logger.Logger) (SessionStore, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	s, err := NewSQLiteStore(ctx, db, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
