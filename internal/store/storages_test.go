package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/session-wallet/internal/config"
	"github.com/MKhiriev/session-wallet/internal/logger"
)

func TestNewSessionStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		backend string
		wantErr error
	}{
		{name: "default is memory", backend: ""},
		{name: "memory", backend: config.BackendMemory},
		{name: "badger", backend: config.BackendBadger},
		{name: "unknown", backend: "redis", wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSessionStore(ctx, config.ClientStorage{Backend: tt.backend, MaxValueBytes: 4}, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			defer s.Close()

			assert.ErrorIs(t, s.Set(ctx, "k", "12345"), ErrQuotaExceeded)
			assert.NoError(t, s.Set(ctx, "k", "1234"))
		})
	}
}

func TestNewSessionStore_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := t.TempDir() + "/session.db"

	s, err := NewSessionStore(ctx, config.ClientStorage{Backend: config.BackendSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "wallet.accounts", `[]`))
	require.NoError(t, s.Set(ctx, "wallet.accounts", `[{"address":"0xAAA"}]`))

	v, ok, err := s.Get(ctx, "wallet.accounts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"address":"0xAAA"}]`, v)

	keys, err := s.Keys(ctx, "wallet.")
	require.NoError(t, err)
	assert.Equal(t, []string{"wallet.accounts"}, keys)

	require.NoError(t, s.Close())
}
