package service

import (
	"github.com/MKhiriev/session-wallet/internal/logger"
	"github.com/MKhiriev/session-wallet/internal/wallet"
)

// Collaborators are the user-facing dependencies of the services, usually
// implemented by the terminal UI.
type Collaborators struct {
	Prompter  PasswordPrompter
	Confirmer Confirmer
	Navigator Navigator
}

type ClientServices struct {
	AccountManager AccountManager
	SessionJob     SessionJob
}

func NewClientServices(v AccountVault, provider wallet.Provider, c Collaborators, log *logger.Logger) *ClientServices {
	manager := NewAccountManager(v, provider, c.Prompter, c.Confirmer, c.Navigator, log)

	return &ClientServices{
		AccountManager: manager,
		SessionJob:     NewSessionJob(manager, log),
	}
}
