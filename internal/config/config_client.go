package config

import (
	"fmt"
	"time"
)

// ClientStorage groups the settings the store package needs to open a
// session store.
type ClientStorage struct {
	// Backend is one of [BackendMemory], [BackendBadger], [BackendSQLite].
	Backend string
	// DSN is the sqlite file path, used only by [BackendSQLite].
	DSN string
	// MaxValueBytes caps the size of a single stored value.
	MaxValueBytes int
}

// ClientVault holds the vault construction settings.
type ClientVault struct {
	// Prefix namespaces every vault key.
	Prefix string
}

// ClientCrypto holds key-derivation parameters for the vault cipher and the
// wallet keystore.
type ClientCrypto struct {
	ArgonTime      uint32
	ArgonMemoryKiB uint32
	ArgonThreads   uint8
	ScryptN        int
	ScryptP        int
}

// ClientSession holds session lifetime settings.
type ClientSession struct {
	IdleTimeout time.Duration
}

// ClientConfig is the configuration view consumed by the wallet client.
type ClientConfig struct {
	LogDir  string
	Storage ClientStorage
	Vault   ClientVault
	Crypto  ClientCrypto
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		LogDir: cfg.App.LogDir,
		Storage: ClientStorage{
			Backend:       cfg.Storage.Backend,
			DSN:           cfg.Storage.DB.DSN,
			MaxValueBytes: cfg.Storage.MaxValueBytes,
		},
		Vault: ClientVault{
			Prefix: cfg.Storage.Prefix,
		},
		Crypto: ClientCrypto{
			ArgonTime:      cfg.Crypto.ArgonTime,
			ArgonMemoryKiB: cfg.Crypto.ArgonMemoryKiB,
			ArgonThreads:   cfg.Crypto.ArgonThreads,
			ScryptN:        cfg.Crypto.ScryptN,
			ScryptP:        cfg.Crypto.ScryptP,
		},
		Session: ClientSession{
			IdleTimeout: cfg.Session.IdleTimeout,
		},
	}
}
