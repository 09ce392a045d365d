package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/internal/wallet"
	"github.com/MKhiriev/session-wallet/models"
)

// TransferModel renders the send and receive pages. Both read the account
// handed over through the vault's "selected" entry when they open.
type TransferModel struct {
	ctx     context.Context
	manager service.AccountManager
	route   models.Route

	account models.Account
	found   bool
	loading bool

	inputs   []textinput.Model
	focus    int
	checking bool

	status string
	errMsg string
}

// NewTransferModel creates the page for route, which must be
// [models.RouteSend] or [models.RouteReceive].
func NewTransferModel(ctx context.Context, manager service.AccountManager, route models.Route) *TransferModel {
	recipient := textinput.New()
	recipient.Placeholder = "0x..."
	recipient.CharLimit = 42
	recipient.Width = 44

	amount := textinput.New()
	amount.Placeholder = "0.0"
	amount.CharLimit = 32
	amount.Width = 44

	password := textinput.New()
	password.Placeholder = "пароль аккаунта"
	password.CharLimit = 256
	password.Width = 44
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &TransferModel{
		ctx:     ctx,
		manager: manager,
		route:   route,
		inputs:  []textinput.Model{recipient, amount, password},
	}
}

// Init implements [tea.Model].
func (m *TransferModel) Init() tea.Cmd {
	m.loading = true
	m.status, m.errMsg = "", ""
	m.checking = false
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0

	if m.route != models.RouteSend {
		return m.cmdLoadSelected()
	}
	return tea.Batch(m.cmdLoadSelected(), m.inputs[0].Focus(), textinput.Blink)
}

func (m *TransferModel) capturesInput() bool {
	return m.route == models.RouteSend
}

// Update implements [tea.Model].
func (m *TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case selectedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.account, m.found = msg.account, msg.ok
		return m, nil
	case transferCheckedMsg:
		m.checking = false
		m.inputs[2].Reset()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = msg.summary
		return m, nil
	case copiedMsg:
		m.status = "Адрес скопирован"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = "Ошибка копирования: " + msg.err.Error()
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && key.Matches(keyMsg, keys.esc) {
		return m, func() tea.Msg { return NavigateTo{Page: models.RouteAccounts} }
	}

	if m.route == models.RouteReceive {
		if ok && key.Matches(keyMsg, keys.copy) && m.found {
			return m, cmdCopyToClipboard(m.account.Address)
		}
		return m, nil
	}

	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates the transfer draft and returns the command unlocking
// the sender's keystore with the typed password. Broadcasting is not
// available in a session-only wallet, so a signed-off draft is only
// summarised.
func (m *TransferModel) submit() tea.Cmd {
	if m.checking {
		return nil
	}
	m.status, m.errMsg = "", ""

	if !m.found {
		m.errMsg = "Аккаунт не выбран"
		return nil
	}

	to := strings.TrimSpace(m.inputs[0].Value())
	if !wallet.IsHexAddress(to) {
		m.errMsg = "Некорректный адрес получателя"
		return nil
	}
	if strings.EqualFold(to, m.account.Address) {
		m.errMsg = "Нельзя отправить самому себе"
		return nil
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[1].Value()), 64)
	if err != nil || amount <= 0 {
		m.errMsg = "Некорректная сумма"
		return nil
	}
	balance, _ := strconv.ParseFloat(m.account.Balance, 64)
	if amount > balance {
		m.errMsg = "Недостаточно средств: баланс " + m.account.Balance
		return nil
	}

	password := m.inputs[2].Value()
	if password == "" {
		m.errMsg = "Введите пароль аккаунта"
		return nil
	}

	m.checking = true
	summary := "Перевод " + strconv.FormatFloat(amount, 'f', -1, 64) + " на " + to + " подготовлен"
	return cmdCheckKeystore(m.account, password, summary)
}

// cmdCheckKeystore opens the account's keystore with password. The key must
// belong to the account's address.
func cmdCheckKeystore(account models.Account, password, summary string) tea.Cmd {
	return func() tea.Msg {
		priv, address, err := wallet.DecryptKeystore(account.Wallet, password)
		clear(priv)
		if err != nil {
			return transferCheckedMsg{err: err}
		}
		if !strings.EqualFold(address, account.Address) {
			return transferCheckedMsg{err: fmt.Errorf("%w: key belongs to %s", wallet.ErrUnsupportedFormat, address)}
		}
		return transferCheckedMsg{summary: summary}
	}
}

// View implements [tea.Model].
func (m *TransferModel) View() string {
	title := "ПОЛУЧЕНИЕ"
	hotKeys := "c: копировать адрес │ esc: назад"
	if m.route == models.RouteSend {
		title = "ОТПРАВКА"
		hotKeys = "enter: подготовить │ tab: поле │ esc: назад"
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case !m.found:
		b.WriteString("Аккаунт не выбран\n")
	default:
		b.WriteString("Аккаунт │ ")
		b.WriteString(m.account.DisplayName())
		b.WriteString("\nАдрес   │ ")
		b.WriteString(m.account.Address)
		b.WriteString("\nБаланс  │ ")
		b.WriteString(m.account.Balance)
		b.WriteString("\n")
	}

	if m.route == models.RouteSend {
		b.WriteString("\nПолучатель │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\nСумма      │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\nПароль     │ [")
		b.WriteString(m.inputs[2].View())
		b.WriteString("]\n")
		if m.checking {
			b.WriteString("\nПроверка пароля...\n")
		}
	}

	renderStatus(&b, m.status, m.errMsg)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *TransferModel) cmdLoadSelected() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		account, ok, err := manager.Selected(ctx)
		return selectedLoadedMsg{account: account, ok: ok, err: err}
	}
}
