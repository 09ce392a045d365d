package wallet

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_provider_mock.go -package=mock

// Provider creates new random accounts.
type Provider interface {
	// CreateRandom generates a fresh mnemonic and derives the first
	// Ethereum account from it.
	CreateRandom() (Handle, error)
}

// Handle is a freshly generated account whose key material has not been
// persisted yet.
type Handle interface {
	// Address is the EIP-55 checksummed account address.
	Address() string

	// Mnemonic is the BIP-39 phrase the account was derived from.
	Mnemonic() string

	// Encrypt seals the private key into a Web3 Secret Storage (v3) JSON
	// document. progress, when not nil, receives fractions in [0, 1].
	Encrypt(ctx context.Context, password string, progress func(float64)) (string, error)
}
