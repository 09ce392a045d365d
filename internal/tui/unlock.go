package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/models"
)

// SecretHolder is the vault's session secret slot.
type SecretHolder interface {
	SetSecretKey(secret string)
	SecretKey() (string, bool)
}

// UnlockModel asks for the session secret the vault encrypts with. An empty
// secret keeps the session unencrypted.
type UnlockModel struct {
	ctx     context.Context
	secrets SecretHolder
	manager service.AccountManager

	input      textinput.Model
	submitting bool
	notice     string
	errMsg     string
}

// NewUnlockModel creates the unlock page.
func NewUnlockModel(ctx context.Context, secrets SecretHolder, manager service.AccountManager) *UnlockModel {
	in := textinput.New()
	in.Placeholder = "секрет сессии"
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'

	return &UnlockModel{
		ctx:     ctx,
		secrets: secrets,
		manager: manager,
		input:   in,
	}
}

// Init implements [tea.Model].
func (m *UnlockModel) Init() tea.Cmd {
	m.input.Reset()
	m.submitting = false
	m.errMsg = ""
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *UnlockModel) capturesInput() bool {
	return true
}

// Update implements [tea.Model].
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionEndedMsg:
		if msg.idle {
			m.notice = "Сессия завершена по неактивности, данные удалены"
		} else {
			m.notice = "Сессия завершена, данные удалены"
		}
		return m, nil
	case unlockDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.notice = ""
		return m, func() tea.Msg { return NavigateTo{Page: models.RouteAccounts} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		m.secrets.SetSecretKey(strings.TrimSpace(m.input.Value()))
		return m, m.cmdLoad()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}
	b.WriteString("Секрет │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")
	b.WriteString(helpStyle.Render("Пустой секрет — хранить без шифрования"))
	b.WriteString("\n")
	if m.submitting {
		b.WriteString("\nОткрытие...\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("ОТКРЫТИЕ СЕССИИ", strings.TrimRight(b.String(), "\n"), "enter: продолжить │ v: версия недоступна при вводе")
}

func (m *UnlockModel) cmdLoad() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		return unlockDoneMsg{err: manager.Load(ctx)}
	}
}
