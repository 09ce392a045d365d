// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case "", BackendMemory, BackendBadger, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Storage.MaxValueBytes < 0 {
		return fmt.Errorf("%w: negative max value bytes", ErrInvalidStorageConfigs)
	}

	if cfg.Session.IdleTimeout < 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Backend == BackendSQLite && cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: sqlite backend needs a DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Crypto.ArgonTime == 0 || cfg.Crypto.ArgonMemoryKiB == 0 || cfg.Crypto.ArgonThreads == 0 {
		return fmt.Errorf("%w: argon2id parameters must be positive", ErrInvalidCryptoConfigs)
	}

	// scrypt requires N to be a power of two greater than 1
	if n := cfg.Crypto.ScryptN; n <= 1 || n&(n-1) != 0 || cfg.Crypto.ScryptP <= 0 {
		return fmt.Errorf("%w: scrypt N must be a power of two > 1 and P positive", ErrInvalidCryptoConfigs)
	}

	return nil
}
