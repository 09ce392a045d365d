package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/session-wallet/internal/mock/servicemock"
	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/internal/wallet"
	"github.com/MKhiriev/session-wallet/models"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
)

func strPtr(s string) *string { return &s }

func pageAccounts() models.Accounts {
	return models.Accounts{
		{Address: addrA, Wallet: "{}", Balance: models.ZeroBalance},
		{Address: addrB, Wallet: "{}", Balance: "1.5", Title: strPtr("Savings")},
	}
}

func loadedAccountsModel(t *testing.T, manager *servicemock.MockAccountManager) *AccountsModel {
	t.Helper()
	m := NewAccountsModel(context.Background(), manager)
	m.Init()
	m.Update(accountsLoadedMsg{accounts: pageAccounts()})
	return m
}

// ── Аккаунты ──

func TestAccountsModel_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)
	manager.EXPECT().Load(gomock.Any()).Return(nil)
	manager.EXPECT().Accounts().Return(pageAccounts())

	m := NewAccountsModel(context.Background(), manager)
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Загрузка")

	m.Update(cmd())

	view := m.View()
	assert.Contains(t, view, addrA)
	assert.Contains(t, view, "Savings")
}

func TestAccountsModel_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)

	m := NewAccountsModel(context.Background(), manager)
	m.Init()
	m.Update(accountsLoadedMsg{err: errors.New("store down")})

	assert.Equal(t, "store down", m.errMsg)
}

func TestAccountsModel_RemoveCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)
	manager.EXPECT().Remove(gomock.Any(), addrB).Return(nil)
	manager.EXPECT().Accounts().Return(pageAccounts()[:1])

	m := loadedAccountsModel(t, manager)
	m.Update(keyType(tea.KeyDown))
	_, cmd := m.Update(keyRunes("d"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, removeDoneMsg{address: addrB}, msg)

	m.Update(msg)
	assert.Len(t, m.accounts, 1)
	assert.Equal(t, 0, m.idx)
	assert.Contains(t, m.status, addrB)
}

func TestAccountsModel_RemoveDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)

	m := loadedAccountsModel(t, manager)
	m.Update(removeDoneMsg{address: addrA, err: service.ErrDeclined})

	assert.Equal(t, "Удаление отменено", m.status)
	assert.Empty(t, m.errMsg)
	assert.Len(t, m.accounts, 2)
}

func TestAccountsModel_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)
	manager.EXPECT().Rename(gomock.Any(), addrA, "Main").Return(nil)

	m := loadedAccountsModel(t, manager)
	m.Update(keyRunes("e"))
	require.True(t, m.capturesInput())

	for _, r := range "Main" {
		m.Update(keyRunes(string(r)))
	}
	_, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)

	assert.False(t, m.capturesInput())
	assert.Equal(t, renameDoneMsg{}, cmd())
}

func TestAccountsModel_RenameEscCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)

	m := loadedAccountsModel(t, manager)
	m.Update(keyRunes("e"))
	_, cmd := m.Update(keyType(tea.KeyEsc))

	assert.Nil(t, cmd)
	assert.False(t, m.capturesInput())
}

func TestAccountsModel_SelectActions(t *testing.T) {
	tests := []struct {
		key   tea.KeyMsg
		route models.Route
	}{
		{key: keyRunes("s"), route: models.RouteSend},
		{key: keyRunes("r"), route: models.RouteReceive},
		{key: keyType(tea.KeyEnter), route: models.RouteReceive},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := servicemock.NewMockAccountManager(ctrl)
			manager.EXPECT().Select(gomock.Any(), tt.route, pageAccounts()[0]).Return(nil)

			m := loadedAccountsModel(t, manager)
			_, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, selectDoneMsg{}, cmd())
		})
	}
}

func TestAccountsModel_CreateDone(t *testing.T) {
	created := models.Account{Address: "0x3333333333333333333333333333333333333333", Balance: models.ZeroBalance}

	tests := []struct {
		name       string
		msg        createDoneMsg
		wantStatus string
		wantErr    string
	}{
		{name: "declined", msg: createDoneMsg{err: service.ErrDeclined}, wantStatus: "Создание аккаунта отменено"},
		{name: "busy", msg: createDoneMsg{err: service.ErrBusy}, wantErr: "Дождитесь завершения текущей операции"},
		{name: "created", msg: createDoneMsg{account: created, mnemonic: "abandon ability able"}, wantStatus: "Аккаунт создан: " + created.Address},
		{name: "session ended", msg: createDoneMsg{err: service.ErrSessionEnded}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := servicemock.NewMockAccountManager(ctrl)
			if tt.msg.err == nil {
				manager.EXPECT().Accounts().Return(append(pageAccounts(), created))
			}

			m := loadedAccountsModel(t, manager)
			m.creating = true
			m.Update(tt.msg)

			assert.False(t, m.creating)
			assert.Equal(t, tt.wantStatus, m.status)
			assert.Equal(t, tt.wantErr, m.errMsg)
			if tt.msg.err == nil {
				assert.Equal(t, 2, m.idx)
				assert.Contains(t, m.View(), "abandon ability able")
			}
		})
	}
}

func TestAccountsModel_MnemonicShownOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)
	manager.EXPECT().Accounts().Return(pageAccounts())

	m := loadedAccountsModel(t, manager)
	m.Update(createDoneMsg{account: pageAccounts()[1], mnemonic: "abandon ability able"})
	require.Contains(t, m.View(), "abandon ability able")

	// первая клавиша только скрывает фразу и не удаляет аккаунт
	_, cmd := m.Update(keyRunes("d"))

	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "abandon ability able")
}

func TestAccountsModel_LockEndsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)
	manager.EXPECT().EndSession(gomock.Any()).Return(nil)

	m := loadedAccountsModel(t, manager)
	_, cmd := m.Update(keyRunes("l"))
	require.NotNil(t, cmd)

	assert.Equal(t, sessionEndedMsg{}, cmd())
}

// ── Отправка и получение ──

func TestTransferModel_ReceiveShowsSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)
	manager.EXPECT().Selected(gomock.Any()).Return(pageAccounts()[1], true, nil)

	m := NewTransferModel(context.Background(), manager, models.RouteReceive)
	cmd := m.Init()
	require.NotNil(t, cmd)

	// Init у страницы получения возвращает только загрузку
	m.Update(cmd())

	view := m.View()
	assert.Contains(t, view, addrB)
	assert.Contains(t, view, "Savings")
	assert.False(t, m.capturesInput())
}

func TestTransferModel_EscGoesBack(t *testing.T) {
	m := NewTransferModel(context.Background(), nil, models.RouteSend)

	_, cmd := m.Update(keyType(tea.KeyEsc))
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateTo{Page: models.RouteAccounts}, cmd())
}

// senderAccount returns an account whose keystore opens with "pw".
func senderAccount(t *testing.T) models.Account {
	t.Helper()
	h, err := wallet.FromMnemonic("test test test test test test test test test test test junk", wallet.ScryptParams{N: 1 << 4, P: 1})
	require.NoError(t, err)
	blob, err := h.Encrypt(context.Background(), "pw", nil)
	require.NoError(t, err)
	return models.Account{Address: h.Address(), Wallet: blob, Balance: "1.5"}
}

func TestTransferModel_SendValidation(t *testing.T) {
	sender := senderAccount(t)

	tests := []struct {
		name     string
		found    bool
		to       string
		amount   string
		password string
		wantErr  string
	}{
		{name: "no account", found: false, to: addrA, amount: "1", password: "pw", wantErr: "Аккаунт не выбран"},
		{name: "bad address", found: true, to: "0x123", amount: "1", password: "pw", wantErr: "Некорректный адрес получателя"},
		{name: "self", found: true, to: sender.Address, amount: "1", password: "pw", wantErr: "Нельзя отправить самому себе"},
		{name: "bad amount", found: true, to: addrA, amount: "abc", password: "pw", wantErr: "Некорректная сумма"},
		{name: "zero amount", found: true, to: addrA, amount: "0", password: "pw", wantErr: "Некорректная сумма"},
		{name: "too much", found: true, to: addrA, amount: "2", password: "pw", wantErr: "Недостаточно средств: баланс 1.5"},
		{name: "no password", found: true, to: addrA, amount: "1", wantErr: "Введите пароль аккаунта"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTransferModel(context.Background(), nil, models.RouteSend)
			m.Update(selectedLoadedMsg{account: sender, ok: tt.found})
			m.inputs[0].SetValue(tt.to)
			m.inputs[1].SetValue(tt.amount)
			m.inputs[2].SetValue(tt.password)

			cmd := m.submit()

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantErr, m.errMsg)
			assert.Empty(t, m.status)
		})
	}
}

func TestTransferModel_SendChecksKeystorePassword(t *testing.T) {
	sender := senderAccount(t)

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "right password", password: "pw"},
		{name: "wrong password", password: "nope", wantErr: "Неверный пароль"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTransferModel(context.Background(), nil, models.RouteSend)
			m.Update(selectedLoadedMsg{account: sender, ok: true})
			m.inputs[0].SetValue(addrA)
			m.inputs[1].SetValue("1.25")
			m.inputs[2].SetValue(tt.password)

			cmd := m.submit()
			require.NotNil(t, cmd)
			assert.True(t, m.checking)
			// пока идёт проверка, повторная отправка игнорируется
			assert.Nil(t, m.submit())

			m.Update(cmd())

			assert.False(t, m.checking)
			assert.Empty(t, m.inputs[2].Value())
			assert.Equal(t, tt.wantErr, m.errMsg)
			if tt.wantErr == "" {
				assert.Contains(t, m.status, addrA)
			} else {
				assert.Empty(t, m.status)
			}
		})
	}
}

func TestTransferModel_SendRejectsForeignKeystore(t *testing.T) {
	sender := senderAccount(t)
	sender.Address = addrB

	msg := cmdCheckKeystore(sender, "pw", "ok")()

	checked, ok := msg.(transferCheckedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, checked.err, wallet.ErrUnsupportedFormat)
}

// ── Открытие сессии ──

func TestUnlockModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)
	manager.EXPECT().Load(gomock.Any()).Return(nil)

	secrets := &fakeSecrets{}
	m := NewUnlockModel(context.Background(), secrets, manager)
	m.Init()
	for _, r := range "pass" {
		m.Update(keyRunes(string(r)))
	}

	_, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, "pass", secrets.secret)

	// повторный enter во время загрузки игнорируется
	_, again := m.Update(keyType(tea.KeyEnter))
	assert.Nil(t, again)
	assert.Equal(t, 1, secrets.set)

	_, nav := m.Update(cmd())
	require.NotNil(t, nav)
	assert.Equal(t, NavigateTo{Page: models.RouteAccounts}, nav())
}

func TestUnlockModel_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := servicemock.NewMockAccountManager(ctrl)

	m := NewUnlockModel(context.Background(), &fakeSecrets{}, manager)
	m.Init()
	m.submitting = true

	_, cmd := m.Update(unlockDoneMsg{err: errors.New("store down")})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "store down", m.errMsg)
}

func TestUnlockModel_SessionEndedNotice(t *testing.T) {
	m := NewUnlockModel(context.Background(), &fakeSecrets{}, nil)

	m.Update(sessionEndedMsg{idle: true})
	assert.Contains(t, m.View(), "неактивности")

	m.Update(sessionEndedMsg{})
	assert.Contains(t, m.View(), "Сессия завершена, данные удалены")
}
