// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionEntriesTable = "session_entries"

	colSessionID = "session_id"
	colKey       = "entry_key"
	colValue     = "entry_value"
	colUpdatedAt = "updated_at"
)

// sqlite understands "?" placeholders, which is squirrel's default.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func bySessionAndKey(sessionID, key string) sq.And {
	return sq.And{
		sq.Eq{colSessionID: sessionID},
		sq.Eq{colKey: key},
	}
}

func buildGetEntryQuery(sessionID, key string) (string, []any, error) {
	return psql.
		Select(colValue).
		From(sessionEntriesTable).
		Where(bySessionAndKey(sessionID, key)).
		ToSql()
}

func buildUpsertEntryQuery(sessionID, key, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(sessionEntriesTable).
		Columns(colSessionID, colKey, colValue, colUpdatedAt).
		Values(sessionID, key, value, now).
		Suffix("ON CONFLICT(" + colSessionID + ", " + colKey + ") DO UPDATE SET " +
			colValue + " = excluded." + colValue + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt).
		ToSql()
}

func buildDeleteEntryQuery(sessionID, key string) (string, []any, error) {
	return psql.
		Delete(sessionEntriesTable).
		Where(bySessionAndKey(sessionID, key)).
		ToSql()
}

func buildListKeysQuery(sessionID string) (string, []any, error) {
	return psql.
		Select(colKey).
		From(sessionEntriesTable).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colKey).
		ToSql()
}

func buildDeleteSessionQuery(sessionID string) (string, []any, error) {
	return psql.
		Delete(sessionEntriesTable).
		Where(sq.Eq{colSessionID: sessionID}).
		ToSql()
}

// buildPurgeStaleQuery removes rows left behind by sessions that ended
// without Close (crash, kill) and have not been touched since cutoff.
func buildPurgeStaleQuery(currentSessionID string, cutoff time.Time) (string, []any, error) {
	return psql.
		Delete(sessionEntriesTable).
		Where(sq.And{
			sq.NotEq{colSessionID: currentSessionID},
			sq.Lt{colUpdatedAt: cutoff},
		}).
		ToSql()
}
