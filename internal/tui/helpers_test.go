package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// stubPage records what the router hands to it.
type stubPage struct {
	inits   int
	msgs    []tea.Msg
	capture bool
	view    string
}

func (s *stubPage) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}

func (s *stubPage) View() string {
	return s.view
}

func (s *stubPage) capturesInput() bool {
	return s.capture
}

// fakeSecrets is an in-memory SecretHolder.
type fakeSecrets struct {
	secret string
	set    int
}

func (f *fakeSecrets) SetSecretKey(secret string) {
	f.secret = secret
	f.set++
}

func (f *fakeSecrets) SecretKey() (string, bool) {
	return f.secret, f.secret != ""
}
