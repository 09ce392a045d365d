package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/session-wallet/internal/logger"
	"github.com/MKhiriev/session-wallet/internal/wallet"
	"github.com/MKhiriev/session-wallet/models"
)

type accountManager struct {
	vault     AccountVault
	provider  wallet.Provider
	prompter  PasswordPrompter
	confirmer Confirmer
	navigator Navigator

	// mu guards accounts, session and cancelOp and serialises writes of
	// KeyAccounts.
	mu       sync.Mutex
	accounts models.Accounts
	// session is bumped by EndSession; writes started under an older value
	// are refused.
	session  uint64
	cancelOp context.CancelFunc

	// busy is held for the whole of a create or remove.
	busy     sync.Mutex
	progress atomic.Int32

	logger *logger.Logger
}

// NewAccountManager builds an [AccountManager] persisting through v.
func NewAccountManager(
	v AccountVault,
	provider wallet.Provider,
	prompter PasswordPrompter,
	confirmer Confirmer,
	navigator Navigator,
	log *logger.Logger,
) AccountManager {
	return &accountManager{
		vault:     v,
		provider:  provider,
		prompter:  prompter,
		confirmer: confirmer,
		navigator: navigator,
		accounts:  models.Accounts{},
		logger:    log.WithComponent("account_manager"),
	}
}

func (m *accountManager) Load(ctx context.Context) error {
	var loaded models.Accounts
	ok, err := m.vault.Get(ctx, KeyAccounts, &loaded)
	if err != nil {
		m.logger.Err(err).Str("func", "*accountManager.Load").Msg("error reading accounts")
		return fmt.Errorf("load accounts: %w", err)
	}
	if !ok || loaded == nil {
		return nil
	}

	m.mu.Lock()
	m.accounts = loaded
	m.mu.Unlock()

	m.logger.Debug().Str("func", "*accountManager.Load").Int("count", len(loaded)).Msg("accounts loaded")
	return nil
}

func (m *accountManager) Accounts() models.Accounts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts.Clone()
}

func (m *accountManager) Progress() int {
	return int(m.progress.Load())
}

func (m *accountManager) StartCreate(ctx context.Context) (*CreateTask, error) {
	if !m.busy.TryLock() {
		return nil, ErrBusy
	}

	opCtx, session, done := m.beginOp(ctx)
	task := newCreateTask()
	go func() {
		account, err := m.create(opCtx, session, task)
		done()

		// release before finish so a caller returning from Wait can start
		// the next create right away
		m.progress.Store(0)
		m.busy.Unlock()
		task.finish(account, err)
	}()

	return task, nil
}

func (m *accountManager) Create(ctx context.Context) (models.Account, error) {
	task, err := m.StartCreate(ctx)
	if err != nil {
		return models.Account{}, err
	}
	return task.Wait()
}

func (m *accountManager) create(ctx context.Context, session uint64, task *CreateTask) (models.Account, error) {
	password, err := m.prompter.PromptPassword(ctx)
	if err != nil {
		return models.Account{}, m.endedOr(session, err)
	}
	if password == "" {
		return models.Account{}, ErrDeclined
	}

	handle, err := m.provider.CreateRandom()
	if err != nil {
		m.logger.Err(err).Str("func", "*accountManager.create").Msg("wallet provider failed to create account")
		return models.Account{}, fmt.Errorf("create random wallet: %w", err)
	}

	address := handle.Address()
	if m.contains(address) {
		return models.Account{}, fmt.Errorf("%w: %s", ErrDuplicateAddress, address)
	}

	blob, err := handle.Encrypt(ctx, password, func(f float64) {
		if p, moved := task.report(f); moved {
			m.progress.Store(int32(p))
		}
	})
	if err != nil {
		if m.ended(session) {
			return models.Account{}, ErrSessionEnded
		}
		m.logger.Err(err).Str("func", "*accountManager.create").Msg("wallet keystore encryption failed")
		return models.Account{}, fmt.Errorf("encrypt wallet: %w", err)
	}
	m.progress.Store(0)

	account := models.Account{
		Address: address,
		Wallet:  blob,
		Balance: models.ZeroBalance,
	}

	err = m.mutate(ctx, session, func(accounts models.Accounts) (models.Accounts, error) {
		// the collection may have changed while the keystore was encrypted
		if accounts.Contains(address) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAddress, address)
		}
		return append(accounts, account), nil
	})
	if err != nil {
		return models.Account{}, err
	}

	task.setMnemonic(handle.Mnemonic())
	m.logger.Info().Str("func", "*accountManager.create").Str("address", address).Msg("account created")
	return account, nil
}

func (m *accountManager) Remove(ctx context.Context, address string) error {
	if !m.busy.TryLock() {
		return ErrBusy
	}
	defer m.busy.Unlock()

	opCtx, session, done := m.beginOp(ctx)
	defer done()

	if err := m.confirmer.Confirm(opCtx, fmt.Sprintf("Remove: %s?", address)); err != nil {
		return m.endedOr(session, err)
	}

	err := m.mutate(ctx, session, func(accounts models.Accounts) (models.Accounts, error) {
		kept := make(models.Accounts, 0, len(accounts))
		for _, a := range accounts {
			if a.Address != address {
				kept = append(kept, a)
			}
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	m.logger.Info().Str("func", "*accountManager.Remove").Str("address", address).Msg("account removed")
	return nil
}

func (m *accountManager) Rename(ctx context.Context, address, title string) error {
	return m.mutate(ctx, m.currentSession(), func(accounts models.Accounts) (models.Accounts, error) {
		for i := range accounts {
			if accounts[i].Address == address {
				t := title
				accounts[i].Title = &t
			}
		}
		return accounts, nil
	})
}

func (m *accountManager) Select(ctx context.Context, route models.Route, account models.Account) error {
	if _, err := m.vault.Set(ctx, KeySelected, account); err != nil {
		m.logger.Err(err).Str("func", "*accountManager.Select").Msg("error storing selected account")
		return fmt.Errorf("store selected account: %w", err)
	}

	m.navigator.Navigate(route)
	return nil
}

func (m *accountManager) Selected(ctx context.Context) (models.Account, bool, error) {
	var account models.Account
	ok, err := m.vault.Get(ctx, KeySelected, &account)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("read selected account: %w", err)
	}
	return account, ok, nil
}

func (m *accountManager) EndSession(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// a running create or remove must not write into the wiped session
	m.session++
	if m.cancelOp != nil {
		m.cancelOp()
		m.cancelOp = nil
	}

	if err := m.vault.Clear(ctx); err != nil {
		return fmt.Errorf("clear vault: %w", err)
	}
	m.accounts = models.Accounts{}

	m.logger.Info().Str("func", "*accountManager.EndSession").Msg("session ended")
	return nil
}

// mutate applies fn to a copy of the collection and persists the result.
// The in-memory collection only changes when the write succeeds. A mutation
// begun in an ended session fails with ErrSessionEnded.
func (m *accountManager) mutate(ctx context.Context, session uint64, fn func(models.Accounts) (models.Accounts, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session != m.session {
		return ErrSessionEnded
	}

	next, err := fn(m.accounts.Clone())
	if err != nil {
		return err
	}
	if next == nil {
		next = models.Accounts{}
	}

	if _, err = m.vault.Set(ctx, KeyAccounts, next); err != nil {
		m.logger.Err(err).Str("func", "*accountManager.mutate").Msg("error persisting accounts")
		return fmt.Errorf("persist accounts: %w", err)
	}

	m.accounts = next
	return nil
}

// beginOp derives the context of a create or remove. EndSession cancels it.
// done must be called when the operation returns.
func (m *accountManager) beginOp(ctx context.Context) (context.Context, uint64, func()) {
	opCtx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	session := m.session
	m.cancelOp = cancel
	m.mu.Unlock()

	return opCtx, session, func() {
		cancel()
		m.mu.Lock()
		if m.session == session {
			m.cancelOp = nil
		}
		m.mu.Unlock()
	}
}

func (m *accountManager) currentSession() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

func (m *accountManager) ended(session uint64) bool {
	return m.currentSession() != session
}

// endedOr reports ErrSessionEnded in place of err once the session is gone.
func (m *accountManager) endedOr(session uint64, err error) error {
	if m.ended(session) {
		return ErrSessionEnded
	}
	return err
}

func (m *accountManager) contains(address string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts.Contains(address)
}

// IsDeclined reports whether err is a user decline.
func IsDeclined(err error) bool {
	return errors.Is(err, ErrDeclined)
}
