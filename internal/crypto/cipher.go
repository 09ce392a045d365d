// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32 // AES-256
)

// Params holds the Argon2id cost parameters.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultParams returns the parameters recommended by OWASP (2024):
// 1 iteration, 64 MiB, 4 threads.
func DefaultParams() Params {
	return Params{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   4,
	}
}

// secretCipher is the private implementation of [SecretCipher].
type secretCipher struct {
	params Params
}

// NewSecretCipher constructs a [SecretCipher] deriving keys with params.
func NewSecretCipher(params Params) SecretCipher {
	return &secretCipher{params: params}
}

func (c *secretCipher) deriveKey(secret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(secret),
		salt,
		c.params.Time,
		c.params.MemoryKiB,
		c.params.Threads,
		keySize,
	)
}

func (c *secretCipher) newGCM(secret string, salt []byte) (cipher.AEAD, error) {
	key := c.deriveKey(secret, salt)
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [SecretCipher]. A fresh salt and nonce are drawn from the
// OS CSPRNG for every call, so sealing the same plaintext twice yields
// different blobs.
func (c *secretCipher) Seal(plaintext []byte, secret string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.newGCM(secret, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [SecretCipher].
func (c *secretCipher) Open(sealed string, secret string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrMalformedCiphertext, err)
	}

	if len(blob) < saltSize {
		return nil, fmt.Errorf("%w: too short", ErrMalformedCiphertext)
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	gcm, err := c.newGCM(secret, salt)
	if err != nil {
		return nil, err
	}

	if len(rest) < gcm.NonceSize()+gcm.Overhead() {
		return nil, fmt.Errorf("%w: too short", ErrMalformedCiphertext)
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	// An error here almost always means the wrong secret.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
