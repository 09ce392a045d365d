package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/models"
)

// inputCapturer is implemented by pages that may hold keyboard focus in a
// text field. Global single-letter hotkeys are ignored while it reports true.
type inputCapturer interface {
	capturesInput() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) shows the password, confirmation and error overlays
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[models.Route]tea.Model
	route   models.Route
	current tea.Model

	job       service.SessionJob
	buildInfo models.AppBuildInfo

	password *passwordModel
	confirm  *confirmModel
	errOver  *errorOverlayModel

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. job may be nil when
// the session never expires.
func NewRootModel(pages map[models.Route]tea.Model, startPage models.Route, job service.SessionJob, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		route:     startPage,
		current:   pages[startPage],
		job:       job,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.waitForExpiry()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if r.job != nil {
			r.job.Touch()
		}
		if msg.String() == "ctrl+c" {
			r.declinePending()
			return r, tea.Quit
		}
		return r.updateKey(msg)

	case passwordRequestMsg:
		p := newPasswordModel(msg)
		r.password = &p
		return r, nil

	case confirmRequestMsg:
		c := newConfirmModel(msg)
		r.confirm = &c
		return r, nil

	case errorMsg:
		r.errOver = &errorOverlayModel{message: humanizeError(msg.err)}
		return r, nil

	case NavigateTo:
		return r.navigate(msg.Page)

	case sessionEndedMsg:
		r.declinePending()
		cmds := []tea.Cmd{r.forward(models.RouteUnlock, msg)}
		if msg.idle {
			cmds = append(cmds, r.waitForExpiry())
		}
		next, navCmd := r.navigate(models.RouteUnlock)
		return next, tea.Batch(append(cmds, navCmd)...)

	case accountsLoadedMsg, createStartedMsg, createProgressMsg, createDoneMsg,
		removeDoneMsg, renameDoneMsg, selectDoneMsg:
		// Account results may arrive after the user left the page.
		return r, r.forward(models.RouteAccounts, msg)
	}

	// Cursor blink and similar ticks for the overlay input.
	if r.password != nil {
		p, _, overlayCmd := r.password.Update(msg)
		r.password = &p
		next, cmd := r.delegate(msg)
		return next, tea.Batch(overlayCmd, cmd)
	}

	return r.delegate(msg)
}

func (r RootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case r.errOver != nil:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			r.errOver = nil
		}
		return r, nil

	case r.confirm != nil:
		if r.confirm.Update(msg) {
			r.confirm = nil
		}
		return r, nil

	case r.password != nil:
		p, done, cmd := r.password.Update(msg)
		if done {
			r.password = nil
		} else {
			r.password = &p
		}
		return r, cmd

	case r.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			r.showBuildInfo = false
		}
		return r, nil
	}

	if key.Matches(msg, keys.version) && !r.capturesInput() {
		r.showBuildInfo = true
		return r, nil
	}

	return r.delegate(msg)
}

func (r RootModel) navigate(route models.Route) (tea.Model, tea.Cmd) {
	next, exists := r.pages[route]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.route = route
	r.current = next
	return r, r.current.Init()
}

// forward hands msg to the page registered for route, active or not.
func (r *RootModel) forward(route models.Route, msg tea.Msg) tea.Cmd {
	page, ok := r.pages[route]
	if !ok {
		return nil
	}
	updated, cmd := page.Update(msg)
	r.pages[route] = updated
	if route == r.route {
		r.current = updated
	}
	return cmd
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.route] = updated
	return r, cmd
}

// declinePending answers open overlays so that waiting service calls return.
func (r *RootModel) declinePending() {
	if r.password != nil {
		r.password.answer(passwordReply{declined: true})
		r.password = nil
	}
	if r.confirm != nil {
		r.confirm.answer(false)
		r.confirm = nil
	}
}

func (r RootModel) capturesInput() bool {
	c, ok := r.current.(inputCapturer)
	return ok && c.capturesInput()
}

func (r RootModel) waitForExpiry() tea.Cmd {
	if r.job == nil {
		return nil
	}
	expired := r.job.Expired()
	return func() tea.Msg {
		if _, ok := <-expired; !ok {
			return nil
		}
		return sessionEndedMsg{idle: true}
	}
}

func (r RootModel) View() string {
	switch {
	case r.errOver != nil:
		return r.errOver.View()
	case r.confirm != nil:
		return r.confirm.View()
	case r.password != nil:
		return r.password.View()
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("SESSION WALLET", "", "")
	}
	return r.current.View()
}
