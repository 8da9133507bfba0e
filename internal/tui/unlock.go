package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/legacykeep/legacy-vault/internal/crypto"
	"github.com/legacykeep/legacy-vault/internal/service"
)

type unlockState int

const (
	stateAwaitingEntry unlockState = iota
	stateDecrypting
	stateUnlocked
	stateFailed
)

type unlockMode int

const (
	modePassword unlockMode = iota
	modeRecoveryKey
)

// unlockModel is the Bubble Tea model for the unlock screen. It takes either
// the account password or the hyphenated recovery key, dispatches an async
// decrypt command, and quits once the vault is open.
type unlockModel struct {
	ctx    context.Context
	unlock service.ClientUnlockService

	state unlockState
	mode  unlockMode

	input   textinput.Model
	spinner spinner.Model
	errMsg  string

	password   string
	vault      map[string]any
	quitByUser bool
}

func newUnlockModel(ctx context.Context, unlock service.ClientUnlockService) unlockModel {
	input := textinput.New()
	input.Placeholder = "master password"
	input.CharLimit = 256
	input.Width = 48
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return unlockModel{
		ctx:     ctx,
		unlock:  unlock,
		input:   input,
		spinner: s,
	}
}

func (m unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockDoneMsg:
		if msg.err != nil {
			m.state = stateFailed
			m.errMsg = humanizeUnlockError(msg.err, m.mode)
			return m, nil
		}
		m.state = stateUnlocked
		m.password = msg.password
		m.vault = msg.vault
		return m, tea.Quit

	case spinner.TickMsg:
		if m.state != stateDecrypting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	// a running decrypt cannot be interrupted from the keyboard
	if m.state == stateDecrypting {
		return m, nil
	}

	if m.state == stateFailed {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.state = stateAwaitingEntry
			m.errMsg = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		return m.toggleMode(), nil

	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			if m.mode == modeRecoveryKey {
				m.errMsg = "Recovery key is required"
			} else {
				m.errMsg = "Password is required"
			}
			return m, nil
		}

		m.errMsg = ""
		m.state = stateDecrypting
		return m, tea.Batch(m.spinner.Tick, m.cmdUnlock(value))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) toggleMode() unlockModel {
	m.errMsg = ""
	m.input.SetValue("")

	if m.mode == modePassword {
		m.mode = modeRecoveryKey
		m.input.Placeholder = "XXXX-XXXX-... recovery key"
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.mode = modePassword
		m.input.Placeholder = "master password"
		m.input.EchoMode = textinput.EchoPassword
	}

	return m
}

func (m unlockModel) cmdUnlock(value string) tea.Cmd {
	ctx := m.ctx
	unlock := m.unlock
	mode := m.mode

	return func() tea.Msg {
		vault := map[string]any{}

		if mode == modeRecoveryKey {
			password, err := unlock.RecoverWithKey(ctx, value, &vault)
			return unlockDoneMsg{password: password, vault: vault, err: err}
		}

		err := unlock.UnlockWithPassword(ctx, value, &vault)
		return unlockDoneMsg{password: value, vault: vault, err: err}
	}
}

func (m unlockModel) View() string {
	if m.state == stateDecrypting {
		return renderPage("UNLOCK VAULT", m.spinner.View()+" Decrypting...", "")
	}

	var b strings.Builder
	if m.mode == modeRecoveryKey {
		b.WriteString("Recovery key │ [")
	} else {
		b.WriteString("Password     │ [")
	}
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "tab: use recovery key │ enter: unlock"
	if m.mode == modeRecoveryKey {
		hotKeys = "tab: use password │ enter: unlock"
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// humanizeUnlockError keeps the wrong-password and corrupted-data cases
// indistinguishable on screen, same as they are at the crypto boundary.
func humanizeUnlockError(err error, mode unlockMode) string {
	switch {
	case errors.Is(err, crypto.ErrMalformedRecoveryKey):
		return "Recovery key must be 44 characters in 11 groups of 4"
	case errors.Is(err, service.ErrNoRecoveryBlob):
		return "This vault has no recovery blob; unlock with the password"
	case errors.Is(err, service.ErrVaultUnavailable):
		return "Server is unreachable and no local copy exists"
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		if mode == modeRecoveryKey {
			return "Recovery key does not match this vault"
		}
		return "Wrong password or corrupted vault"
	default:
		return err.Error()
	}
}
