package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"
)

// BIP-44 path of the first external Ethereum account: m/44'/60'/0'/0/0.
var ethereumPath = []uint32{
	bip32.FirstHardenedChild + 44,
	bip32.FirstHardenedChild + 60,
	bip32.FirstHardenedChild + 0,
	0,
	0,
}

// deriveEthereumKey walks ethereumPath from the master key of seed and
// returns the raw 32-byte private key.
func deriveEthereumKey(seed []byte) ([]byte, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}

	for _, idx := range ethereumPath {
		key, err = key.NewChildKey(idx)
		if err != nil {
			return nil, fmt.Errorf("derive child %d: %w", idx, err)
		}
	}

	// bip32 Key.Key is 33 bytes with a leading 0x00 for private keys.
	raw := key.Key
	if len(raw) == 33 && raw[0] == 0 {
		raw = raw[1:]
	}
	return raw, nil
}

// KeyFromMnemonic derives the m/44'/60'/0'/0/0 private key from mnemonic.
func KeyFromMnemonic(mnemonic string) ([]byte, error) {
	seed, err := seedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return deriveEthereumKey(seed)
}
