package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// UnlockFlow runs the unlock screen until the vault opens or the user quits.
// It returns the decrypted payload together with the account password in use:
// after a recovery-key unlock that password came out of the recovery blob, so
// the caller can offer an immediate password change (usedRecovery reports
// which path opened the vault).
func (t *TUI) UnlockFlow(ctx context.Context) (password string, vault map[string]any, usedRecovery bool, err error) {
	model := newUnlockModel(ctx, t.services.UnlockService)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", nil, false, runErr
	}

	result, ok := finalModel.(unlockModel)
	if !ok {
		return "", nil, false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", nil, false, ErrUserQuit
	}

	return result.password, result.vault, result.mode == modeRecoveryKey, nil
}

// ChangePasswordFlow collects and confirms a new master password. It does not
// rotate anything itself.
func (t *TUI) ChangePasswordFlow() (string, error) {
	finalModel, err := tea.NewProgram(newPasswordChangeModel(), tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(passwordChangeModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.newPassword, nil
}

// ShowRecoveryKey runs the one-time recovery-key screen. The key is shown
// exactly once; once the user confirms they stored it, it is gone.
func (t *TUI) ShowRecoveryKey(result service.PasswordChangeResult) error {
	model := newRecoveryDisplayModel(result)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
