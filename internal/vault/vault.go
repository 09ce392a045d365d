package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/session-wallet/internal/crypto"
	"github.com/MKhiriev/session-wallet/internal/logger"
	"github.com/MKhiriev/session-wallet/internal/store"
)

// Vault namespaces, encodes and optionally encrypts values on their way to a
// [store.SessionStore]. It is safe for concurrent use.
//
// The session secret is set once per session; replacing it does not
// re-encrypt values already stored, which then read back as Corrupt.
type Vault struct {
	store  store.SessionStore
	cipher crypto.SecretCipher
	prefix string

	mu     sync.RWMutex
	secret string

	logger *logger.Logger
}

// New creates a Vault writing to s under prefix. prefix is fixed for the
// lifetime of the Vault.
func New(s store.SessionStore, cipher crypto.SecretCipher, prefix string, log *logger.Logger) *Vault {
	return &Vault{
		store:  s,
		cipher: cipher,
		prefix: prefix,
		logger: log.WithComponent("vault"),
	}
}

// NamespacedKey returns key with the vault prefix prepended.
func (v *Vault) NamespacedKey(key string) string {
	return v.prefix + key
}

// SetSecretKey installs the session secret. An empty secret turns
// encryption off.
func (v *Vault) SetSecretKey(secret string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.secret != "" && v.secret != secret {
		v.logger.Warn().
			Str("func", "*Vault.SetSecretKey").
			Msg("session secret replaced; values stored under the previous secret will read as absent")
	}
	v.secret = secret
}

// SecretKey returns the current session secret; ok is false when none is
// set.
func (v *Vault) SecretKey() (secret string, ok bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.secret, v.secret != ""
}

// Get decodes the value stored under key into target. It reports false when
// the key is empty, absent, undecryptable or not valid JSON. Only backing
// store faults are returned as errors.
func (v *Vault) Get(ctx context.Context, key string, target any) (bool, error) {
	entry, err := v.Lookup(ctx, key)
	if err != nil {
		return false, err
	}
	return entry.Decode(target), nil
}

// Lookup reads key and tells absent, corrupt and present values apart.
func (v *Vault) Lookup(ctx context.Context, key string) (Entry, error) {
	if key == "" {
		return Entry{Status: Absent}, nil
	}

	nsKey := v.NamespacedKey(key)
	raw, ok, err := v.store.Get(ctx, nsKey)
	if err != nil {
		v.logger.Err(err).Str("func", "*Vault.Lookup").Str("key", nsKey).Msg("backing store read failed")
		return Entry{}, fmt.Errorf("vault get %q: %w", key, err)
	}
	if !ok {
		return Entry{Status: Absent}, nil
	}

	text := []byte(raw)
	if secret, encrypted := v.SecretKey(); encrypted {
		text, err = v.cipher.Open(raw, secret)
		if err != nil {
			v.logger.Debug().Err(err).Str("func", "*Vault.Lookup").Str("key", nsKey).Msg("stored value cannot be opened")
			return Entry{Status: Corrupt, Reason: fmt.Errorf("%w: %v", ErrUndecryptable, err)}, nil
		}
	}

	if valid, _ := IsValidJSON(text); !valid {
		v.logger.Debug().Str("func", "*Vault.Lookup").Str("key", nsKey).Msg("stored value is not valid JSON")
		return Entry{Status: Corrupt, Reason: ErrInvalidJSON}, nil
	}

	return Entry{Status: Present, Raw: json.RawMessage(text)}, nil
}

// Set stores value under key as JSON, sealed with the session secret when
// one is set. It reports false without touching the store when key is empty.
func (v *Vault) Set(ctx context.Context, key string, value any) (bool, error) {
	if key == "" {
		return false, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("vault encode %q: %w", key, err)
	}

	stored := string(data)
	if secret, encrypted := v.SecretKey(); encrypted {
		stored, err = v.cipher.Seal(data, secret)
		if err != nil {
			return false, fmt.Errorf("vault seal %q: %w", key, err)
		}
	}

	nsKey := v.NamespacedKey(key)
	if err = v.store.Set(ctx, nsKey, stored); err != nil {
		v.logger.Err(err).Str("func", "*Vault.Set").Str("key", nsKey).Msg("backing store write failed")
		return false, fmt.Errorf("vault set %q: %w", key, err)
	}

	return true, nil
}

// Remove deletes key. It reports false without touching the store when key
// is empty.
func (v *Vault) Remove(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	nsKey := v.NamespacedKey(key)
	if err := v.store.Remove(ctx, nsKey); err != nil {
		v.logger.Err(err).Str("func", "*Vault.Remove").Str("key", nsKey).Msg("backing store delete failed")
		return false, fmt.Errorf("vault remove %q: %w", key, err)
	}

	return true, nil
}

// Clear removes every key under the vault prefix and forgets the secret.
// Keys written by others to the same store are left alone.
func (v *Vault) Clear(ctx context.Context) error {
	keys, err := v.store.Keys(ctx, v.prefix)
	if err != nil {
		return fmt.Errorf("vault list keys: %w", err)
	}

	for _, k := range keys {
		if err = v.store.Remove(ctx, k); err != nil {
			return fmt.Errorf("vault clear %q: %w", k, err)
		}
	}

	v.mu.Lock()
	v.secret = ""
	v.mu.Unlock()

	v.logger.Info().Str("func", "*Vault.Clear").Int("keys", len(keys)).Msg("vault cleared")
	return nil
}
