package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/legacykeep/legacy-vault/internal/crypto"
	"github.com/legacykeep/legacy-vault/internal/mock/servicemock"
	"github.com/legacykeep/legacy-vault/internal/service"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestUnlockModel_EmptyPasswordIsRejected(t *testing.T) {
	m := newUnlockModel(context.Background(), nil)

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(unlockModel)

	assert.Nil(t, cmd)
	assert.Equal(t, stateAwaitingEntry, m.state)
	assert.Equal(t, "Password is required", m.errMsg)
}

func TestUnlockModel_TabTogglesRecoveryMode(t *testing.T) {
	m := newUnlockModel(context.Background(), nil)

	updated, _ := m.Update(keyMsg(tea.KeyTab))
	m = updated.(unlockModel)

	assert.Equal(t, modeRecoveryKey, m.mode)
	assert.Equal(t, textinput.EchoNormal, m.input.EchoMode)

	updated, _ = m.Update(keyMsg(tea.KeyTab))
	m = updated.(unlockModel)

	assert.Equal(t, modePassword, m.mode)
	assert.Equal(t, textinput.EchoPassword, m.input.EchoMode)
}

func TestUnlockModel_SubmitMovesToDecrypting(t *testing.T) {
	m := newUnlockModel(context.Background(), nil)
	m.input.SetValue("master-password")

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(unlockModel)

	assert.Equal(t, stateDecrypting, m.state)
	require.NotNil(t, cmd)
}

func TestUnlockModel_KeysIgnoredWhileDecrypting(t *testing.T) {
	m := newUnlockModel(context.Background(), nil)
	m.state = stateDecrypting

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(unlockModel)

	assert.Nil(t, cmd)
	assert.Equal(t, stateDecrypting, m.state)
}

func TestUnlockModel_SuccessQuitsWithVault(t *testing.T) {
	m := newUnlockModel(context.Background(), nil)
	m.state = stateDecrypting

	updated, cmd := m.Update(unlockDoneMsg{
		password: "master-password",
		vault:    map[string]any{"documents": "will.pdf"},
	})
	m = updated.(unlockModel)

	require.NotNil(t, cmd)
	assert.Equal(t, stateUnlocked, m.state)
	assert.Equal(t, "master-password", m.password)
	assert.Equal(t, "will.pdf", m.vault["documents"])
}

func TestUnlockModel_FailureShowsUniformError(t *testing.T) {
	m := newUnlockModel(context.Background(), nil)
	m.state = stateDecrypting

	updated, _ := m.Update(unlockDoneMsg{err: crypto.ErrAuthenticationFailed})
	m = updated.(unlockModel)

	assert.Equal(t, stateFailed, m.state)
	assert.Equal(t, "Wrong password or corrupted vault", m.errMsg)

	// enter leaves the failed state and allows another attempt
	updated, _ = m.Update(keyMsg(tea.KeyEnter))
	m = updated.(unlockModel)

	assert.Equal(t, stateAwaitingEntry, m.state)
	assert.Empty(t, m.errMsg)
}

func TestUnlockModel_MalformedRecoveryKeyMessage(t *testing.T) {
	m := newUnlockModel(context.Background(), nil)
	m.mode = modeRecoveryKey
	m.state = stateDecrypting

	updated, _ := m.Update(unlockDoneMsg{err: crypto.ErrMalformedRecoveryKey})
	m = updated.(unlockModel)

	assert.Equal(t, stateFailed, m.state)
	assert.Contains(t, m.errMsg, "44 characters")
}

func TestUnlockModel_CmdUnlock_PasswordPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unlock := servicemock.NewMockClientUnlockService(ctrl)
	unlock.EXPECT().
		UnlockWithPassword(gomock.Any(), "master-password", gomock.Any()).
		Return(nil)

	m := newUnlockModel(context.Background(), unlock)
	msg := m.cmdUnlock("master-password")()

	done, ok := msg.(unlockDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
	assert.Equal(t, "master-password", done.password)
}

func TestUnlockModel_CmdUnlock_RecoveryPathReturnsRecoveredPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unlock := servicemock.NewMockClientUnlockService(ctrl)
	unlock.EXPECT().
		RecoverWithKey(gomock.Any(), "AAAA-BBBB", gomock.Any()).
		Return("recovered-password", nil)

	m := newUnlockModel(context.Background(), unlock)
	m.mode = modeRecoveryKey
	msg := m.cmdUnlock("AAAA-BBBB")()

	done, ok := msg.(unlockDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
	assert.Equal(t, "recovered-password", done.password)
}

func TestRecoveryDisplay_EnterAcknowledges(t *testing.T) {
	m := newRecoveryDisplayModel(service.PasswordChangeResult{RecoveryKeyDisplay: "AAAA-BBBB-CCCC"})

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(recoveryDisplayModel)

	require.NotNil(t, cmd)
	assert.True(t, m.acknowledged)
}

func TestRecoveryDisplay_ClipboardFailureDegradesToHint(t *testing.T) {
	m := newRecoveryDisplayModel(service.PasswordChangeResult{RecoveryKeyDisplay: "AAAA-BBBB-CCCC"})

	updated, cmd := m.Update(copiedMsg{err: assert.AnError})
	m = updated.(recoveryDisplayModel)

	require.NotNil(t, cmd)
	assert.Contains(t, m.statusMsg, "Clipboard unavailable")
}
