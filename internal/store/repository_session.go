package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/session-wallet/internal/logger"
)

// staleSessionAge is how long rows of a foreign session may sit untouched
// before a new session purges them.
const staleSessionAge = 24 * time.Hour

// SQLiteStore implements [SessionStore] on a sqlite table. Every row carries
// the id of the session that wrote it; the store only ever sees its own rows
// and deletes them on Close.
type SQLiteStore struct {
	db        *DB
	sessionID string
	now       func() time.Time
	closed    atomic.Bool
	logger    *logger.Logger
}

// NewSQLiteStore starts a new session on db. Rows abandoned by sessions that
// never closed are purged once they are older than a day.
func NewSQLiteStore(ctx context.Context, db *DB, log *logger.Logger) (*SQLiteStore, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	s := &SQLiteStore{
		db:        db,
		sessionID: id.String(),
		now:       time.Now,
		logger:    log,
	}

	if err = s.purgeStale(ctx); err != nil {
		// not fatal: stale rows are invisible to this session anyway
		log.Warn().Err(err).Str("func", "NewSQLiteStore").Msg("failed to purge stale session rows")
	}

	return s, nil
}

// SessionID returns the id scoping this store's rows.
func (s *SQLiteStore) SessionID() string {
	return s.sessionID
}

// Get implements [SessionStore].
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, ErrStoreClosed
	}

	query, args, err := buildGetEntryQuery(s.sessionID, key)
	if err != nil {
		return "", false, fmt.Errorf("build get query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*SQLiteStore.Get").Str("key", key).Msg("error reading session entry")
		return "", false, fmt.Errorf("sqlite get: %w", err)
	}

	return value, true, nil
}

// Set implements [SessionStore].
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	query, args, err := buildUpsertEntryQuery(s.sessionID, key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*SQLiteStore.Set").Str("key", key).Msg("error writing session entry")
		return fmt.Errorf("sqlite set: %w", err)
	}

	return nil
}

// Remove implements [SessionStore].
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	query, args, err := buildDeleteEntryQuery(s.sessionID, key)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*SQLiteStore.Remove").Str("key", key).Msg("error deleting session entry")
		return fmt.Errorf("sqlite remove: %w", err)
	}

	return nil
}

// Keys implements [SessionStore].
func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	query, args, err := buildListKeysQuery(s.sessionID)
	if err != nil {
		return nil, fmt.Errorf("build keys query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err = rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("sqlite keys scan: %w", err)
		}
		// LIKE would need escaping for '%' and '_' in user prefixes
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite keys rows: %w", err)
	}

	return keys, nil
}

// Close implements [SessionStore]. The session's rows are deleted before the
// connection is closed.
func (s *SQLiteStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	var errs []error

	query, args, err := buildDeleteSessionQuery(s.sessionID)
	if err != nil {
		errs = append(errs, fmt.Errorf("build delete session query: %w", err))
	} else if _, err = s.db.Exec(query, args...); err != nil {
		errs = append(errs, fmt.Errorf("delete session rows: %w", err))
	}

	if err = s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	}

	return errors.Join(errs...)
}

func (s *SQLiteStore) purgeStale(ctx context.Context) error {
	query, args, err := buildPurgeStaleQuery(s.sessionID, s.now().UTC().Add(-staleSessionAge))
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		s.logger.Info().Str("func", "*SQLiteStore.purgeStale").Int64("rows", n).Msg("purged stale session rows")
	}

	return nil
}
