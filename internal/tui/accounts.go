package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/models"
)

// AccountsModel is the account list page. Create, remove, rename and the
// send/receive actions run as commands so the user collaborators (password
// and confirmation overlays) can be answered while they wait.
type AccountsModel struct {
	ctx     context.Context
	manager service.AccountManager

	accounts models.Accounts
	idx      int
	loading  bool

	creating bool
	percent  int
	bar      progress.Model

	renaming    bool
	renameInput textinput.Model

	// mnemonic is the recovery phrase of the account just created. It is
	// kept only until the next key press.
	mnemonic string

	status string
	errMsg string
}

// NewAccountsModel creates the account list page.
func NewAccountsModel(ctx context.Context, manager service.AccountManager) *AccountsModel {
	rename := textinput.New()
	rename.Placeholder = "название"
	rename.CharLimit = 64
	rename.Width = 40

	return &AccountsModel{
		ctx:         ctx,
		manager:     manager,
		loading:     true,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		renameInput: rename,
	}
}

// Init implements [tea.Model]. Loads the stored collection.
func (m *AccountsModel) Init() tea.Cmd {
	m.loading = true
	m.mnemonic = ""
	return m.cmdLoad()
}

// capturesInput reports whether keys are typed into a text field.
func (m *AccountsModel) capturesInput() bool {
	return m.renaming
}

// Update implements [tea.Model].
func (m *AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setAccounts(msg.accounts)
		return m, nil

	case createStartedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.creating = true
		m.percent = 0
		m.status, m.errMsg = "", ""
		return m, waitForCreate(msg.task)

	case createProgressMsg:
		m.percent = msg.percent
		return m, waitForCreate(msg.task)

	case createDoneMsg:
		m.creating = false
		m.percent = 0
		switch {
		case service.IsDeclined(msg.err):
			m.status = "Создание аккаунта отменено"
		case errors.Is(msg.err, service.ErrSessionEnded):
			return m, nil
		case msg.err != nil:
			m.errMsg = humanizeError(msg.err)
		default:
			m.status = "Аккаунт создан: " + msg.account.Address
			m.mnemonic = msg.mnemonic
			m.setAccounts(m.manager.Accounts())
			m.idx = len(m.accounts) - 1
		}
		return m, cmdClearStatus()

	case removeDoneMsg:
		switch {
		case service.IsDeclined(msg.err):
			m.status = "Удаление отменено"
		case msg.err != nil:
			m.errMsg = humanizeError(msg.err)
		default:
			m.status = "Аккаунт удалён: " + msg.address
			m.setAccounts(m.manager.Accounts())
		}
		return m, cmdClearStatus()

	case renameDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Название сохранено"
		m.setAccounts(m.manager.Accounts())
		return m, cmdClearStatus()

	case selectDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil

	case copiedMsg:
		m.status = "Адрес скопирован"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if m.renaming {
		return m.updateRename(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// the recovery phrase is shown once; any key hides it for good
	if m.mnemonic != "" {
		m.mnemonic = ""
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.accounts)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		if m.creating {
			m.status = "Аккаунт уже создаётся"
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdStartCreate()
	case key.Matches(keyMsg, keys.lock):
		return m, m.cmdEndSession()
	}

	account, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.delete):
		m.errMsg = ""
		return m, m.cmdRemove(account.Address)
	case key.Matches(keyMsg, keys.edit):
		m.renaming = true
		m.renameInput.SetValue(valueOrEmpty(account.Title))
		m.renameInput.CursorEnd()
		return m, m.renameInput.Focus()
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(account.Address)
	case key.Matches(keyMsg, keys.send):
		return m, m.cmdSelect(models.RouteSend, account)
	case key.Matches(keyMsg, keys.receive), key.Matches(keyMsg, keys.enter):
		return m, m.cmdSelect(models.RouteReceive, account)
	}

	return m, nil
}

func (m *AccountsModel) updateRename(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.renaming = false
			m.renameInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.renaming = false
			m.renameInput.Blur()
			account, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdRename(account.Address, strings.TrimSpace(m.renameInput.Value()))
		}
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *AccountsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.accounts) == 0:
		b.WriteString("Аккаунтов пока нет. Нажмите n, чтобы создать.\n")
	default:
		m.renderTable(&b)
	}

	if m.creating {
		b.WriteString("\nСоздание аккаунта\n")
		b.WriteString(m.bar.ViewAs(float64(m.percent) / 100))
		b.WriteString("\n")
	}

	if m.mnemonic != "" {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render("Фраза восстановления. Запишите её, она больше не будет показана:\n\n" +
			m.mnemonic + "\n\nлюбая клавиша скрыть"))
		b.WriteString("\n")
	}

	if m.renaming {
		b.WriteString("\nНовое название │ [")
		b.WriteString(m.renameInput.View())
		b.WriteString("]\n")
	}

	renderStatus(&b, m.status, m.errMsg)

	hotKeys := "n: создать │ e: переименовать │ d: удалить │ c: копировать │ s: отправить │ r: получить │ l: завершить сессию │ v: версия"
	if m.renaming {
		hotKeys = "enter: сохранить │ esc: отмена"
	}
	return renderPage("АККАУНТЫ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *AccountsModel) renderTable(b *strings.Builder) {
	titleWidth := lipgloss.Width("Название")
	for _, a := range m.accounts {
		titleWidth = max(titleWidth, lipgloss.Width(fitText(valueOrDash(a.Title), 24)))
	}

	fmt.Fprintf(b, "  %-3s │ %-*s │ %-42s │ %s\n", "#", titleWidth, "Название", "Адрес", "Баланс")
	b.WriteString(strings.Repeat("─", 6))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", titleWidth+2))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 22))
	b.WriteString("\n")

	for i, a := range m.accounts {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %-3d │ %-*s │ %-42s │ %s",
			cursor, i+1, titleWidth, fitText(valueOrDash(a.Title), 24), a.Address, a.Balance)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func (m *AccountsModel) current() (models.Account, bool) {
	if len(m.accounts) == 0 || m.idx < 0 || m.idx >= len(m.accounts) {
		return models.Account{}, false
	}
	return m.accounts[m.idx], true
}

func (m *AccountsModel) setAccounts(accounts models.Accounts) {
	m.accounts = accounts
	if m.idx >= len(m.accounts) {
		m.idx = len(m.accounts) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *AccountsModel) cmdLoad() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		err := manager.Load(ctx)
		return accountsLoadedMsg{accounts: manager.Accounts(), err: err}
	}
}

func (m *AccountsModel) cmdStartCreate() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		task, err := manager.StartCreate(ctx)
		return createStartedMsg{task: task, err: err}
	}
}

// waitForCreate delivers the next progress value of task, or its result
// once the updates channel is closed.
func waitForCreate(task *service.CreateTask) tea.Cmd {
	return func() tea.Msg {
		if p, ok := <-task.Updates(); ok {
			return createProgressMsg{task: task, percent: p}
		}
		account, err := task.Wait()
		return createDoneMsg{account: account, mnemonic: task.Mnemonic(), err: err}
	}
}

func (m *AccountsModel) cmdRemove(address string) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		return removeDoneMsg{address: address, err: manager.Remove(ctx, address)}
	}
}

func (m *AccountsModel) cmdRename(address, title string) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		return renameDoneMsg{err: manager.Rename(ctx, address, title)}
	}
}

func (m *AccountsModel) cmdSelect(route models.Route, account models.Account) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		return selectDoneMsg{err: manager.Select(ctx, route, account)}
	}
}

func (m *AccountsModel) cmdEndSession() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		if err := manager.EndSession(ctx); err != nil {
			return errorMsg{err: err}
		}
		return sessionEndedMsg{}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
