package service

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

import (
	"context"
	"time"

	"github.com/MKhiriev/session-wallet/models"
)

// Vault keys owned by the account manager.
const (
	KeyAccounts = "accounts"
	KeySelected = "selected"
)

// AccountVault is the part of the vault the account manager writes through.
// *vault.Vault satisfies it.
type AccountVault interface {
	Get(ctx context.Context, key string, target any) (bool, error)
	Set(ctx context.Context, key string, value any) (bool, error)
	Clear(ctx context.Context) error
}

// AccountManager owns the session's wallet account collection. Every
// mutation rewrites the whole collection under [KeyAccounts].
type AccountManager interface {
	// Load replaces the in-memory collection with the stored one when it
	// exists. A missing entry leaves the collection untouched.
	Load(ctx context.Context) error

	// Accounts returns a copy of the collection in insertion order.
	Accounts() models.Accounts

	// Progress returns the running create's progress (0..100), 0 when idle.
	Progress() int

	// StartCreate prompts for a password and generates a new account in the
	// background. It returns ErrBusy while another create or remove runs.
	StartCreate(ctx context.Context) (*CreateTask, error)

	// Create is StartCreate followed by Wait.
	Create(ctx context.Context) (models.Account, error)

	// Remove asks for confirmation and drops every account with address.
	Remove(ctx context.Context, address string) error

	// Rename sets the title of the account with address and persists the
	// collection even when nothing matched.
	Rename(ctx context.Context, address, title string) error

	// Select stores account under [KeySelected], then navigates to route.
	Select(ctx context.Context, route models.Route, account models.Account) error

	// Selected reads back the account stored by Select.
	Selected(ctx context.Context) (models.Account, bool, error)

	// EndSession wipes the vault and forgets the in-memory collection.
	EndSession(ctx context.Context) error
}

// SessionEnder is what the idle job expires.
type SessionEnder interface {
	EndSession(ctx context.Context) error
}

// SessionJob ends the session after a period without user activity.
type SessionJob interface {
	// Start launches the idle watcher. Calling Start again restarts it.
	Start(ctx context.Context, idle time.Duration)

	// Touch records user activity.
	Touch()

	// Expired delivers a value each time the session has been ended for
	// inactivity.
	Expired() <-chan struct{}

	// Stop halts the watcher and waits for it to exit.
	Stop()
}
