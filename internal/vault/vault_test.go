package vault

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/session-wallet/internal/crypto"
	"github.com/MKhiriev/session-wallet/internal/logger"
	"github.com/MKhiriev/session-wallet/internal/mock"
	"github.com/MKhiriev/session-wallet/internal/store"
	"github.com/MKhiriev/session-wallet/models"
)

const testPrefix = "wallet."

// cheap Argon2id parameters keep the tests fast
var testCipher = crypto.NewSecretCipher(crypto.Params{Time: 1, MemoryKiB: 1024, Threads: 1})

func newTestVault(t *testing.T) (*Vault, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	return New(s, testCipher, testPrefix, logger.Nop()), s
}

func strPtr(s string) *string { return &s }

func TestVault_Roundtrip(t *testing.T) {
	ctx := context.Background()
	accounts := models.Accounts{
		{Address: "0xAAA", Wallet: `{"version":3}`, Balance: models.ZeroBalance},
		{Address: "0xBBB", Wallet: `{"version":3}`, Balance: models.ZeroBalance, Title: strPtr("My Wallet")},
	}

	for _, secret := range []string{"", "s3cr3t"} {
		t.Run("secret="+secret, func(t *testing.T) {
			v, _ := newTestVault(t)
			v.SetSecretKey(secret)

			ok, err := v.Set(ctx, "accounts", accounts)
			require.NoError(t, err)
			assert.True(t, ok)

			var got models.Accounts
			ok, err = v.Get(ctx, "accounts", &got)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, accounts, got)

			var n int
			ok, err = v.Set(ctx, "count", 42)
			require.NoError(t, err)
			require.True(t, ok)
			ok, err = v.Get(ctx, "count", &n)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, 42, n)
		})
	}
}

func TestVault_StoredLayout(t *testing.T) {
	ctx := context.Background()

	t.Run("plaintext JSON under namespaced key", func(t *testing.T) {
		v, s := newTestVault(t)

		_, err := v.Set(ctx, "selected", models.Account{Address: "0xAAA", Balance: models.ZeroBalance})
		require.NoError(t, err)

		raw, ok, err := s.Get(ctx, "wallet.selected")
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `{"address":"0xAAA","wallet":"","balance":"0.000000000000000000"}`, raw)
	})

	t.Run("ciphertext when secret is set", func(t *testing.T) {
		v, s := newTestVault(t)
		v.SetSecretKey("s3cr3t")

		_, err := v.Set(ctx, "selected", models.Account{Address: "0xAAA"})
		require.NoError(t, err)

		raw, ok, err := s.Get(ctx, "wallet.selected")
		require.NoError(t, err)
		require.True(t, ok)
		assert.NotContains(t, raw, "0xAAA")
		valid, _ := IsValidJSON(raw)
		assert.False(t, valid)
	})
}

func TestVault_SecretMismatch(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	v.SetSecretKey("s1")
	_, err := v.Set(ctx, "accounts", models.Accounts{{Address: "0xAAA"}})
	require.NoError(t, err)

	v.SetSecretKey("s2")

	var got models.Accounts
	ok, err := v.Get(ctx, "accounts", &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	entry, err := v.Lookup(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, Corrupt, entry.Status)
	assert.ErrorIs(t, entry.Reason, ErrUndecryptable)
}

func TestVault_PlaintextReadWithSecretIsAbsent(t *testing.T) {
	ctx := context.Background()
	v, s := newTestVault(t)

	require.NoError(t, s.Set(ctx, "wallet.accounts", `[]`))
	v.SetSecretKey("s3cr3t")

	var got models.Accounts
	ok, err := v.Get(ctx, "accounts", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVault_InvalidJSONIsAbsent(t *testing.T) {
	ctx := context.Background()
	v, s := newTestVault(t)

	require.NoError(t, s.Set(ctx, "wallet.accounts", `[{"address":`))

	var got models.Accounts
	ok, err := v.Get(ctx, "accounts", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	entry, err := v.Lookup(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, Corrupt, entry.Status)
	assert.ErrorIs(t, entry.Reason, ErrInvalidJSON)
}

func TestVault_Lookup(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	entry, err := v.Lookup(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, Absent, entry.Status)
	assert.Equal(t, "absent", entry.Status.String())

	_, err = v.Set(ctx, "present", map[string]int{"a": 1})
	require.NoError(t, err)

	entry, err = v.Lookup(ctx, "present")
	require.NoError(t, err)
	assert.Equal(t, Present, entry.Status)
	assert.JSONEq(t, `{"a":1}`, string(entry.Raw))
}

func TestVault_EmptyKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no store expectations: an empty key must never reach the store
	s := mock.NewMockSessionStore(ctrl)
	v := New(s, testCipher, testPrefix, logger.Nop())

	var target any
	ok, err := v.Get(ctx, "", &target)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.Set(ctx, "", "value")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.Remove(ctx, "")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVault_Remove(t *testing.T) {
	ctx := context.Background()
	v, s := newTestVault(t)

	_, err := v.Set(ctx, "selected", "x")
	require.NoError(t, err)

	ok, err := v.Remove(ctx, "selected")
	require.NoError(t, err)
	assert.True(t, ok)

	_, found, err := s.Get(ctx, "wallet.selected")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVault_StoreFaultsPropagate(t *testing.T) {
	ctx := context.Background()

	t.Run("quota exceeded on set", func(t *testing.T) {
		v := New(store.WithQuota(store.NewMemoryStore(), 16), testCipher, testPrefix, logger.Nop())

		ok, err := v.Set(ctx, "accounts", strings.Repeat("x", 64))
		assert.False(t, ok)
		assert.ErrorIs(t, err, store.ErrQuotaExceeded)
	})

	t.Run("read fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		boom := errors.New("backend down")
		s := mock.NewMockSessionStore(ctrl)
		s.EXPECT().Get(ctx, "wallet.accounts").Return("", false, boom)

		v := New(s, testCipher, testPrefix, logger.Nop())
		var got models.Accounts
		ok, err := v.Get(ctx, "accounts", &got)
		assert.False(t, ok)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("remove fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := mock.NewMockSessionStore(ctrl)
		s.EXPECT().Remove(ctx, "wallet.selected").Return(store.ErrStoreClosed)

		v := New(s, testCipher, testPrefix, logger.Nop())
		ok, err := v.Remove(ctx, "selected")
		assert.False(t, ok)
		assert.ErrorIs(t, err, store.ErrStoreClosed)
	})
}

func TestVault_SealFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := mock.NewMockSecretCipher(ctrl)
	c.EXPECT().Seal([]byte(`"v"`), "s").Return("", errors.New("no entropy"))

	v := New(store.NewMemoryStore(), c, testPrefix, logger.Nop())
	v.SetSecretKey("s")

	ok, err := v.Set(ctx, "k", "v")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestVault_UnencodableValue(t *testing.T) {
	v, _ := newTestVault(t)

	ok, err := v.Set(context.Background(), "k", make(chan int))
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestVault_SecretKey(t *testing.T) {
	v, _ := newTestVault(t)

	_, ok := v.SecretKey()
	assert.False(t, ok)

	v.SetSecretKey("first")
	s, ok := v.SecretKey()
	assert.True(t, ok)
	assert.Equal(t, "first", s)

	v.SetSecretKey("second")
	s, _ = v.SecretKey()
	assert.Equal(t, "second", s)

	v.SetSecretKey("")
	_, ok = v.SecretKey()
	assert.False(t, ok)
}

func TestVault_NamespacedKey(t *testing.T) {
	v, _ := newTestVault(t)

	assert.Equal(t, "wallet.accounts", v.NamespacedKey("accounts"))
	assert.Equal(t, "wallet.", v.NamespacedKey(""))

	bare := New(store.NewMemoryStore(), testCipher, "", logger.Nop())
	assert.Equal(t, "accounts", bare.NamespacedKey("accounts"))
}

func TestVault_Clear(t *testing.T) {
	ctx := context.Background()
	v, s := newTestVault(t)
	v.SetSecretKey("s3cr3t")

	_, err := v.Set(ctx, "accounts", models.Accounts{})
	require.NoError(t, err)
	_, err = v.Set(ctx, "selected", models.Account{})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "other.key", "kept"))

	require.NoError(t, v.Clear(ctx))

	keys, err := s.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"other.key"}, keys)

	_, ok := v.SecretKey()
	assert.False(t, ok)
}

func TestIsValidJSON(t *testing.T) {
	tests := []struct {
		name           string
		in             any
		wantValid      bool
		wantApplicable bool
	}{
		{name: "empty object", in: "{}", wantValid: true, wantApplicable: true},
		{name: "truncated object", in: "{", wantValid: false, wantApplicable: true},
		{name: "empty string", in: "", wantValid: false, wantApplicable: true},
		{name: "bytes", in: []byte(`[1,2]`), wantValid: true, wantApplicable: true},
		{name: "number", in: 42, wantValid: false, wantApplicable: false},
		{name: "nil", in: nil, wantValid: false, wantApplicable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, applicable := IsValidJSON(tt.in)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantApplicable, applicable)
		})
	}
}
