package wallet

import (
	"context"
	"fmt"
)

type provider struct {
	params ScryptParams
}

// NewProvider returns a [Provider] whose handles write keystores with the
// given scrypt cost.
func NewProvider(params ScryptParams) Provider {
	return &provider{params: params}
}

// CreateRandom implements [Provider].
func (p *provider) CreateRandom() (Handle, error) {
	mnemonic, err := GenerateMnemonic()
	if err != nil {
		return nil, err
	}
	return FromMnemonic(mnemonic, p.params)
}

// FromMnemonic rebuilds the handle of the first account of mnemonic.
func FromMnemonic(mnemonic string, params ScryptParams) (Handle, error) {
	priv, err := KeyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("derive account: %w", err)
	}
	return &handle{
		priv:     priv,
		address:  AddressFromPrivateKey(priv),
		mnemonic: mnemonic,
		params:   params,
	}, nil
}

type handle struct {
	priv     []byte
	address  string
	mnemonic string
	params   ScryptParams
}

func (h *handle) Address() string  { return h.address }
func (h *handle) Mnemonic() string { return h.mnemonic }

func (h *handle) Encrypt(ctx context.Context, password string, progress func(float64)) (string, error) {
	return EncryptKey(ctx, h.priv, h.address, password, h.params, progress)
}
