package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel is the overlay asking for a new account password. The
// password is typed twice; esc skips account creation.
type passwordModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string
	reply  chan<- passwordReply
}

func newPasswordModel(req passwordRequestMsg) passwordModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 256
		in.Width = 40
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	inputs[0].Placeholder = "password"
	inputs[1].Placeholder = "repeat"
	inputs[0].Focus()

	return passwordModel{inputs: inputs, reply: req.reply}
}

// Update handles a message while the overlay is shown. done reports whether
// the overlay answered and should close.
func (m passwordModel) Update(msg tea.Msg) (passwordModel, bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.answer(passwordReply{declined: true})
			return m, true, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, false, nil
		case key.Matches(keyMsg, keys.enter):
			pass := m.inputs[0].Value()
			switch {
			case strings.TrimSpace(pass) == "":
				m.errMsg = "Пароль обязателен"
				return m, false, nil
			case pass != m.inputs[1].Value():
				m.errMsg = "Пароли не совпадают"
				return m, false, nil
			}
			m.answer(passwordReply{password: pass})
			return m, true, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, false, cmd
}

func (m passwordModel) answer(r passwordReply) {
	if m.reply == nil {
		return
	}
	select {
	case m.reply <- r:
	default:
	}
}

func (m passwordModel) View() string {
	var b strings.Builder
	b.WriteString("Пароль нового аккаунта\n\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Повтор  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\nenter создать    tab поле    esc пропустить")
	return overlayBoxStyle.Render(b.String())
}
