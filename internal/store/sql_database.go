package store

import (
	"database/sql"

	"github.com/MKhiriev/session-wallet/internal/logger"
	"github.com/MKhiriev/session-wallet/migrations"
)

// DB wraps a *sql.DB together with the logger used by the SQL-backed store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
