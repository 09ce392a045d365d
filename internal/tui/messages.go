package tui

import (
	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/models"
)

// NavigateTo switches the active page.
type NavigateTo struct {
	Page models.Route
}

// passwordRequestMsg opens the password overlay; the answer goes to reply.
type passwordRequestMsg struct {
	reply chan<- passwordReply
}

type passwordReply struct {
	password string
	declined bool
}

// confirmRequestMsg opens the confirmation overlay; the answer goes to reply.
type confirmRequestMsg struct {
	message string
	reply   chan<- bool
}

type accountsLoadedMsg struct {
	accounts models.Accounts
	err      error
}

type createStartedMsg struct {
	task *service.CreateTask
	err  error
}

type createProgressMsg struct {
	task    *service.CreateTask
	percent int
}

type createDoneMsg struct {
	account  models.Account
	mnemonic string
	err      error
}

type removeDoneMsg struct {
	address string
	err     error
}

type renameDoneMsg struct {
	err error
}

type selectDoneMsg struct {
	err error
}

type selectedLoadedMsg struct {
	account models.Account
	ok      bool
	err     error
}

// transferCheckedMsg carries the result of unlocking the sender's keystore.
type transferCheckedMsg struct {
	summary string
	err     error
}

type unlockDoneMsg struct {
	err error
}

// sessionEndedMsg is sent when the vault has been wiped, by the idle job or
// by the user.
type sessionEndedMsg struct {
	idle bool
}

// errorMsg opens the error overlay.
type errorMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
