package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/legacykeep/legacy-vault/internal/service"
)

// recoveryDisplayModel shows a freshly minted recovery key exactly once.
// The key lives only in this model; after the user confirms they stored it,
// nothing keeps it.
type recoveryDisplayModel struct {
	result service.PasswordChangeResult

	statusMsg    string
	acknowledged bool
	quitByUser   bool
}

func newRecoveryDisplayModel(result service.PasswordChangeResult) recoveryDisplayModel {
	return recoveryDisplayModel{result: result}
}

func (m recoveryDisplayModel) Init() tea.Cmd {
	return nil
}

func (m recoveryDisplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			m.statusMsg = "Clipboard unavailable; copy the key by hand"
		} else {
			m.statusMsg = "Copied to clipboard"
		}
		return m, cmdClearStatusLater()

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyKey()
		case key.Matches(msg, keys.enter):
			m.acknowledged = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m recoveryDisplayModel) View() string {
	var b strings.Builder

	b.WriteString("Store this recovery key somewhere safe.\n")
	b.WriteString("It is shown ONCE and can unlock the vault without the password.\n\n")
	b.WriteString(recoveryKeyBox.Render(m.result.RecoveryKeyDisplay))
	b.WriteString("\n")

	if m.result.Invalidation.AffectedCount > 0 {
		b.WriteString(fmt.Sprintf("\n%d family share grant(s) lost their stored recovery material.\n", m.result.Invalidation.AffectedCount))
		b.WriteString("Those relatives keep access but will need this new key, or a re-issued grant.\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.statusMsg)
		b.WriteString("\n")
	}

	return renderPage("RECOVERY KEY", strings.TrimRight(b.String(), "\n"), "c: copy │ enter: I stored it")
}

func (m recoveryDisplayModel) cmdCopyKey() tea.Cmd {
	display := m.result.RecoveryKeyDisplay

	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(display)}
	}
}

func cmdClearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
