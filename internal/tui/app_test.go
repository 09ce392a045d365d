package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/session-wallet/internal/mock/servicemock"
	"github.com/MKhiriev/session-wallet/models"
)

type testPages struct {
	unlock, accounts, send *stubPage
}

func newTestRoot(t *testing.T, job *servicemock.MockSessionJob) (RootModel, testPages) {
	t.Helper()
	p := testPages{
		unlock:   &stubPage{view: "unlock"},
		accounts: &stubPage{view: "accounts"},
		send:     &stubPage{view: "send"},
	}
	pages := map[models.Route]tea.Model{
		models.RouteUnlock:   p.unlock,
		models.RouteAccounts: p.accounts,
		models.RouteSend:     p.send,
	}

	var root RootModel
	if job == nil {
		root = NewRootModel(pages, models.RouteAccounts, nil, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"))
	} else {
		root = NewRootModel(pages, models.RouteAccounts, job, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"))
	}
	return root, p
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── Навигация ──

func TestRootModel_NavigateTo(t *testing.T) {
	root, pages := newTestRoot(t, nil)

	root, _ = update(t, root, NavigateTo{Page: models.RouteSend})

	assert.Equal(t, models.RouteSend, root.route)
	assert.Equal(t, 1, pages.send.inits)
	assert.Equal(t, "send", root.View())
}

func TestRootModel_NavigateToUnknownRoute(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	root, _ = update(t, root, NavigateTo{Page: models.Route("nowhere")})

	assert.Equal(t, models.RouteAccounts, root.route)
}

func TestRootModel_AccountResultsReachAccountsPage(t *testing.T) {
	root, pages := newTestRoot(t, nil)
	root, _ = update(t, root, NavigateTo{Page: models.RouteSend})

	msg := removeDoneMsg{address: "0xAAA"}
	_, _ = update(t, root, msg)

	assert.Contains(t, pages.accounts.msgs, tea.Msg(msg))
	assert.NotContains(t, pages.send.msgs, tea.Msg(msg))
}

// ── Горячие клавиши ──

func TestRootModel_CtrlCQuitsAndDeclinesPrompt(t *testing.T) {
	root, _ := newTestRoot(t, nil)
	reply := make(chan passwordReply, 1)
	root, _ = update(t, root, passwordRequestMsg{reply: reply})

	_, cmd := update(t, root, keyType(tea.KeyCtrlC))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, passwordReply{declined: true}, <-reply)
}

func TestRootModel_BuildInfo(t *testing.T) {
	root, pages := newTestRoot(t, nil)

	root, _ = update(t, root, keyRunes("v"))
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.0.0")

	root, _ = update(t, root, keyType(tea.KeyEsc))
	assert.False(t, root.showBuildInfo)

	// страница с полем ввода получает "v" как символ
	pages.accounts.capture = true
	root, _ = update(t, root, keyRunes("v"))
	assert.False(t, root.showBuildInfo)
	assert.Contains(t, pages.accounts.msgs, tea.Msg(keyRunes("v")))
}

func TestRootModel_KeysTouchSessionJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := servicemock.NewMockSessionJob(ctrl)
	job.EXPECT().Touch().Times(2)

	root, _ := newTestRoot(t, job)
	root, _ = update(t, root, keyRunes("x"))
	_, _ = update(t, root, keyType(tea.KeyDown))
}

// ── Оверлеи ──

func TestRootModel_ConfirmOverlay(t *testing.T) {
	root, pages := newTestRoot(t, nil)
	reply := make(chan bool, 1)

	root, _ = update(t, root, confirmRequestMsg{message: "Remove: 0xAAA?", reply: reply})
	assert.Contains(t, root.View(), "Remove: 0xAAA?")

	// пока открыт оверлей, страница клавиш не видит
	root, _ = update(t, root, keyRunes("x"))
	assert.Empty(t, pages.accounts.msgs)

	root, _ = update(t, root, keyRunes("y"))
	assert.True(t, <-reply)
	assert.Nil(t, root.confirm)
	assert.Equal(t, "accounts", root.View())
}

func TestRootModel_PasswordOverlay(t *testing.T) {
	root, _ := newTestRoot(t, nil)
	reply := make(chan passwordReply, 1)

	root, _ = update(t, root, passwordRequestMsg{reply: reply})
	require.NotNil(t, root.password)

	root, _ = update(t, root, keyType(tea.KeyEsc))

	assert.Nil(t, root.password)
	assert.Equal(t, passwordReply{declined: true}, <-reply)
}

func TestRootModel_ErrorOverlay(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	root, _ = update(t, root, errorMsg{err: errors.New("boom")})
	assert.Contains(t, root.View(), "boom")

	root, _ = update(t, root, keyType(tea.KeyEnter))
	assert.Nil(t, root.errOver)
}

// ── Завершение сессии ──

func TestRootModel_SessionEndedByIdleJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := servicemock.NewMockSessionJob(ctrl)
	expired := make(chan struct{})
	job.EXPECT().Expired().Return((<-chan struct{})(expired)).Times(1)

	root, pages := newTestRoot(t, job)
	confirmReply := make(chan bool, 1)
	root, _ = update(t, root, confirmRequestMsg{message: "Remove: 0xAAA?", reply: confirmReply})

	root, cmd := update(t, root, sessionEndedMsg{idle: true})

	assert.NotNil(t, cmd)
	assert.Equal(t, models.RouteUnlock, root.route)
	assert.Equal(t, 1, pages.unlock.inits)
	assert.Contains(t, pages.unlock.msgs, tea.Msg(sessionEndedMsg{idle: true}))
	assert.False(t, <-confirmReply)
	assert.Nil(t, root.confirm)
}

func TestRootModel_SessionEndedByUserDoesNotRearm(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := servicemock.NewMockSessionJob(ctrl)
	job.EXPECT().Expired().Times(0)

	root, _ := newTestRoot(t, job)
	root, _ = update(t, root, sessionEndedMsg{})

	assert.Equal(t, models.RouteUnlock, root.route)
}
