package wallet

import (
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

// AddressLength is the size of an Ethereum address in bytes.
const AddressLength = 20

func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// AddressFromPrivateKey returns the EIP-55 checksummed address of the
// secp256k1 key priv.
func AddressFromPrivateKey(priv []byte) string {
	pub := secp256k1.PrivKeyFromBytes(priv).PubKey().SerializeUncompressed()
	// drop the 0x04 prefix; the address is the last 20 bytes of the hash
	hash := keccak256(pub[1:])
	return ChecksumAddress(hash[len(hash)-AddressLength:])
}

// ChecksumAddress renders addr as a 0x-prefixed EIP-55 mixed-case string.
func ChecksumAddress(addr []byte) string {
	lower := hex.EncodeToString(addr)
	hash := hex.EncodeToString(keccak256([]byte(lower)))

	var b strings.Builder
	b.Grow(2 + len(lower))
	b.WriteString("0x")
	for i, c := range lower {
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			b.WriteRune(c - 'a' + 'A')
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// IsHexAddress reports whether s is a 0x-prefixed 20-byte hex string. The
// checksum is not verified.
func IsHexAddress(s string) bool {
	s, ok := strings.CutPrefix(s, "0x")
	if !ok {
		s, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || len(s) != 2*AddressLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
