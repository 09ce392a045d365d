package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/models"
)

// attachedBridge returns a bridge whose messages land in the returned channel.
func attachedBridge(t *testing.T) (*Bridge, <-chan tea.Msg) {
	t.Helper()
	msgs := make(chan tea.Msg, 4)
	b := NewBridge()
	b.attach(func(msg tea.Msg) { msgs <- msg })
	return b, msgs
}

func TestBridge_Detached(t *testing.T) {
	b := NewBridge()

	_, err := b.PromptPassword(context.Background())
	assert.ErrorIs(t, err, errBridgeDetached)

	assert.ErrorIs(t, b.Confirm(context.Background(), "ok?"), errBridgeDetached)

	// навигация без программы просто теряется
	assert.NotPanics(t, func() { b.Navigate(models.RouteAccounts) })
}

func TestBridge_PromptPassword(t *testing.T) {
	tests := []struct {
		name    string
		reply   passwordReply
		want    string
		wantErr error
	}{
		{name: "entered", reply: passwordReply{password: "hunter2"}, want: "hunter2"},
		{name: "declined", reply: passwordReply{declined: true}, wantErr: service.ErrDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, msgs := attachedBridge(t)

			go func() {
				req := (<-msgs).(passwordRequestMsg)
				req.reply <- tt.reply
			}()

			got, err := b.PromptPassword(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBridge_PromptPassword_ContextCancelled(t *testing.T) {
	b, _ := attachedBridge(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := b.PromptPassword(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBridge_Confirm(t *testing.T) {
	for _, answer := range []bool{true, false} {
		b, msgs := attachedBridge(t)

		go func() {
			req := (<-msgs).(confirmRequestMsg)
			assert.Equal(t, "Remove: 0xAAA?", req.message)
			req.reply <- answer
		}()

		err := b.Confirm(context.Background(), "Remove: 0xAAA?")
		if answer {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, service.ErrDeclined)
		}
	}
}

func TestBridge_Navigate(t *testing.T) {
	b, msgs := attachedBridge(t)

	b.Navigate(models.RouteSend)

	assert.Equal(t, NavigateTo{Page: models.RouteSend}, <-msgs)
}
