package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_cipher_mock.go -package=mock

// SecretCipher protects vault values with a passphrase-like session secret.
// It knows nothing about keys, stores or wallets.
//
// Scheme:
//
//	Key    = Argon2id(secret, salt)                     (per value, random salt)
//	Sealed = base64(salt ‖ nonce ‖ AES-256-GCM(Key, plaintext))
//
// Because GCM authenticates the ciphertext, opening a value with the wrong
// secret fails instead of producing garbage.
type SecretCipher interface {
	// Seal encrypts plaintext under secret and returns a printable blob that
	// can be written to a string-oriented store.
	Seal(plaintext []byte, secret string) (string, error)

	// Open reverses Seal. It returns an error when sealed is not a blob
	// produced by Seal or when secret does not match.
	Open(sealed string, secret string) ([]byte, error)
}
