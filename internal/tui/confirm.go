package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is the yes/no overlay opened by [Bridge.Confirm].
type confirmModel struct {
	message string
	reply   chan<- bool
}

func newConfirmModel(req confirmRequestMsg) confirmModel {
	return confirmModel{message: req.message, reply: req.reply}
}

// Update answers the pending request on y / n / esc. done reports whether
// the overlay should close.
func (m confirmModel) Update(msg tea.KeyMsg) (done bool) {
	switch {
	case key.Matches(msg, keys.yes):
		m.answer(true)
		return true
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.answer(false)
		return true
	}
	return false
}

func (m confirmModel) answer(ok bool) {
	if m.reply == nil {
		return
	}
	select {
	case m.reply <- ok:
	default:
	}
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
