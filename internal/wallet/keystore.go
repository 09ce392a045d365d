package wallet

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

const (
	keystoreVersion = 3
	keystoreCipher  = "aes-128-ctr"
	keystoreKDF     = "scrypt"

	scryptR     = 8
	scryptDKLen = 32
	saltSize    = 32
	macSize     = 32 // keccak-256
)

// ScryptParams are the scrypt cost parameters of generated keystores.
type ScryptParams struct {
	N int
	P int
}

// DefaultScryptParams matches what browser wallets write by default.
func DefaultScryptParams() ScryptParams {
	return ScryptParams{N: 1 << 17, P: 1}
}

// keystoreJSON is the Web3 Secret Storage v3 document.
type keystoreJSON struct {
	Address string     `json:"address"`
	Crypto  cryptoJSON `json:"crypto"`
	ID      string     `json:"id"`
	Version int        `json:"version"`
}

type cryptoJSON struct {
	Cipher       string           `json:"cipher"`
	CipherText   string           `json:"ciphertext"`
	CipherParams cipherParamsJSON `json:"cipherparams"`
	KDF          string           `json:"kdf"`
	KDFParams    scryptParamsJSON `json:"kdfparams"`
	MAC          string           `json:"mac"`
}

type cipherParamsJSON struct {
	IV string `json:"iv"`
}

type scryptParamsJSON struct {
	DKLen int    `json:"dklen"`
	N     int    `json:"n"`
	P     int    `json:"p"`
	R     int    `json:"r"`
	Salt  string `json:"salt"`
}

// Progress stages reported by EncryptKey. scrypt has no progress hook, so
// the KDF is one step.
const (
	stageStart    = 0.0
	stageKDFStart = 0.05
	stageKDFDone  = 0.9
	stageDone     = 1.0
)

// EncryptKey seals priv under password as a v3 keystore for address.
// ctx is checked before the key derivation starts; once scrypt runs it
// cannot be interrupted.
func EncryptKey(ctx context.Context, priv []byte, address, password string, params ScryptParams, progress func(float64)) (string, error) {
	report := func(f float64) {
		if progress != nil {
			progress(f)
		}
	}

	if password == "" {
		return "", ErrEmptyPassword
	}

	report(stageStart)

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	report(stageKDFStart)

	derived, err := scrypt.Key([]byte(password), salt, params.N, scryptR, params.P, scryptDKLen)
	if err != nil {
		return "", fmt.Errorf("scrypt: %w", err)
	}
	defer clear(derived)
	report(stageKDFDone)

	ciphertext, err := aesCTR(derived[:16], iv, priv)
	if err != nil {
		return "", err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate keystore id: %w", err)
	}

	ks := keystoreJSON{
		Address: strings.ToLower(strings.TrimPrefix(address, "0x")),
		Crypto: cryptoJSON{
			Cipher:       keystoreCipher,
			CipherText:   hex.EncodeToString(ciphertext),
			CipherParams: cipherParamsJSON{IV: hex.EncodeToString(iv)},
			KDF:          keystoreKDF,
			KDFParams: scryptParamsJSON{
				DKLen: scryptDKLen,
				N:     params.N,
				P:     params.P,
				R:     scryptR,
				Salt:  hex.EncodeToString(salt),
			},
			MAC: hex.EncodeToString(keccak256(derived[16:32], ciphertext)),
		},
		ID:      id.String(),
		Version: keystoreVersion,
	}

	out, err := json.Marshal(ks)
	if err != nil {
		return "", fmt.Errorf("encode keystore: %w", err)
	}

	report(stageDone)
	return string(out), nil
}

// DecryptKeystore opens a v3 keystore and returns the private key together
// with the checksummed address recomputed from it.
func DecryptKeystore(data, password string) (priv []byte, address string, err error) {
	var ks keystoreJSON
	if err = json.Unmarshal([]byte(data), &ks); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if ks.Version != keystoreVersion || ks.Crypto.Cipher != keystoreCipher || ks.Crypto.KDF != keystoreKDF {
		return nil, "", fmt.Errorf("%w: version %d, cipher %q, kdf %q",
			ErrUnsupportedFormat, ks.Version, ks.Crypto.Cipher, ks.Crypto.KDF)
	}

	kp := ks.Crypto.KDFParams
	salt, err := hex.DecodeString(kp.Salt)
	if err != nil {
		return nil, "", fmt.Errorf("%w: salt: %v", ErrUnsupportedFormat, err)
	}
	iv, err := hex.DecodeString(ks.Crypto.CipherParams.IV)
	if err != nil {
		return nil, "", fmt.Errorf("%w: iv: %v", ErrUnsupportedFormat, err)
	}
	ciphertext, err := hex.DecodeString(ks.Crypto.CipherText)
	if err != nil {
		return nil, "", fmt.Errorf("%w: ciphertext: %v", ErrUnsupportedFormat, err)
	}
	mac, err := hex.DecodeString(ks.Crypto.MAC)
	if err != nil {
		return nil, "", fmt.Errorf("%w: mac: %v", ErrUnsupportedFormat, err)
	}
	if len(iv) != aes.BlockSize {
		return nil, "", fmt.Errorf("%w: iv length %d", ErrUnsupportedFormat, len(iv))
	}
	if len(mac) != macSize {
		return nil, "", fmt.Errorf("%w: mac length %d", ErrUnsupportedFormat, len(mac))
	}
	if kp.DKLen < 32 {
		return nil, "", fmt.Errorf("%w: dklen %d", ErrUnsupportedFormat, kp.DKLen)
	}

	derived, err := scrypt.Key([]byte(password), salt, kp.N, kp.R, kp.P, kp.DKLen)
	if err != nil {
		return nil, "", fmt.Errorf("scrypt: %w", err)
	}
	defer clear(derived)

	if subtle.ConstantTimeCompare(keccak256(derived[16:32], ciphertext), mac) != 1 {
		return nil, "", ErrWrongPassword
	}

	priv, err = aesCTR(derived[:16], iv, ciphertext)
	if err != nil {
		return nil, "", err
	}

	address = AddressFromPrivateKey(priv)
	if ks.Address != "" && !bytes.EqualFold([]byte("0x"+ks.Address), []byte(address)) {
		return nil, "", fmt.Errorf("%w: address %s does not match key", ErrUnsupportedFormat, ks.Address)
	}

	return priv, address, nil
}

func aesCTR(key, iv, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)
	return out, nil
}
