// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ZeroBalance is the balance every freshly created account starts with.
// Balances are kept as decimal strings with 18 fractional digits.
const ZeroBalance = "0.000000000000000000"

// Account is a single wallet record kept in the session vault.
//
// The JSON field names are part of the persisted layout: the whole
// collection is stored as a JSON array under the "accounts" vault key and a
// single record under "selected".
type Account struct {
	// Address is the wallet public identifier (EIP-55 hex). It is the unique
	// key of a record within [Accounts].
	Address string `json:"address"`

	// Wallet is the opaque serialized keystore produced by the wallet crypto
	// provider. It is never interpreted by the account manager.
	Wallet string `json:"wallet"`

	// Balance is a numeric string, initialised to [ZeroBalance].
	Balance string `json:"balance"`

	// Title is an optional user-assigned label.
	Title *string `json:"title,omitempty"`
}

// DisplayName returns the account title or, when it is not set, the address.
func (a Account) DisplayName() string {
	if a.Title != nil && *a.Title != "" {
		return *a.Title
	}
	return a.Address
}

// Accounts is the ordered account collection. Order is insertion order.
type Accounts []Account

// Clone returns a deep copy of the collection, including the title pointers.
func (a Accounts) Clone() Accounts {
	if a == nil {
		return nil
	}

	out := make(Accounts, len(a))
	for i, acc := range a {
		out[i] = acc
		if acc.Title != nil {
			title := *acc.Title
			out[i].Title = &title
		}
	}
	return out
}

// Contains reports whether a record with the given address exists.
func (a Accounts) Contains(address string) bool {
	for _, acc := range a {
		if acc.Address == address {
			return true
		}
	}
	return false
}
