package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordChangeModel collects a new master password. The actual rotation is
// the caller's job; this screen only validates the pair of inputs.
type passwordChangeModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string

	newPassword string
	quitByUser  bool
}

func newPasswordChangeModel() passwordChangeModel {
	newInput := textinput.New()
	newInput.Placeholder = "new master password"
	newInput.CharLimit = 256
	newInput.Width = 48
	newInput.EchoMode = textinput.EchoPassword
	newInput.EchoCharacter = '*'
	newInput.Focus()

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat new password"
	confirmInput.CharLimit = 256
	confirmInput.Width = 48
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return passwordChangeModel{
		inputs: []textinput.Model{newInput, confirmInput},
	}
}

func (m passwordChangeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordChangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.tab):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		newPass := m.inputs[0].Value()
		confirm := m.inputs[1].Value()

		switch {
		case newPass == "":
			m.errMsg = "Password is required"
		case newPass != confirm:
			m.errMsg = "Passwords do not match"
		default:
			m.newPassword = newPass
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m passwordChangeModel) View() string {
	var b strings.Builder
	b.WriteString("New password     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CHANGE MASTER PASSWORD", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm")
}
