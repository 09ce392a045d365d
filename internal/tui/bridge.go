package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/models"
)

// Bridge lets service goroutines talk to the user. Every call is turned
// into a message for the running program; the blocking calls then wait for
// the overlay's answer.
//
// Bridge methods must not be called from inside a model's Update: the
// program's event loop would be blocked on its own message.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewBridge returns a Bridge that is not attached to a program yet. Until
// Attach is called, prompts fail and navigation is dropped.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach routes the bridge's messages to p.
func (b *Bridge) Attach(p *tea.Program) {
	b.attach(p.Send)
}

func (b *Bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

func (b *Bridge) dispatch(msg tea.Msg) bool {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()

	if send == nil {
		return false
	}
	send(msg)
	return true
}

// PromptPassword implements [service.PasswordPrompter].
func (b *Bridge) PromptPassword(ctx context.Context) (string, error) {
	reply := make(chan passwordReply, 1)
	if !b.dispatch(passwordRequestMsg{reply: reply}) {
		return "", errBridgeDetached
	}

	select {
	case r := <-reply:
		if r.declined {
			return "", service.ErrDeclined
		}
		return r.password, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Confirm implements [service.Confirmer].
func (b *Bridge) Confirm(ctx context.Context, message string) error {
	reply := make(chan bool, 1)
	if !b.dispatch(confirmRequestMsg{message: message, reply: reply}) {
		return errBridgeDetached
	}

	select {
	case ok := <-reply:
		if !ok {
			return service.ErrDeclined
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Navigate implements [service.Navigator].
func (b *Bridge) Navigate(route models.Route) {
	b.dispatch(NavigateTo{Page: route})
}
