// Package vault implements the encrypted, session-scoped key/value vault the
// wallet client keeps its account records in.
//
// Every logical key is namespaced with a fixed prefix before it reaches the
// backing [store.SessionStore]. Values are JSON-encoded and, once a session
// secret has been supplied, sealed with a [crypto.SecretCipher].
//
// Reads are fail-soft: a missing entry, an entry that cannot be decrypted
// with the current secret and an entry that is not valid JSON all look the
// same to [Vault.Get]. [Vault.Lookup] exposes the distinction for callers
// that care. Only faults of the backing store are returned as errors.
package vault
