package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/legacykeep/legacy-vault/internal/adapter"
	"github.com/legacykeep/legacy-vault/internal/crypto"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/models"
)

// clientVaultService runs the vault lifecycle on the client. Plaintext and
// derived keys live only inside a single method call; the adapter carries
// ciphertext exclusively.
type clientVaultService struct {
	serverAdapter  adapter.ServerAdapter
	cipher         crypto.VaultCipher
	recoveryKeeper crypto.RecoveryKeeper
	pinKeeper      crypto.PinKeeper
	logger         *logger.Logger
}

// NewClientVaultService constructs a ClientVaultService over the given
// adapter and crypto engines.
func NewClientVaultService(
	serverAdapter adapter.ServerAdapter,
	cipher crypto.VaultCipher,
	recoveryKeeper crypto.RecoveryKeeper,
	pinKeeper crypto.PinKeeper,
	logger *logger.Logger,
) ClientVaultService {
	return &clientVaultService{
		serverAdapter:  serverAdapter,
		cipher:         cipher,
		recoveryKeeper: recoveryKeeper,
		pinKeeper:      pinKeeper,
		logger:         logger,
	}
}

// InitializeVault creates and uploads the user's first vault record.
func (c *clientVaultService) InitializeVault(ctx context.Context, password string, data any) (PasswordChangeResult, error) {
	if password == "" {
		return PasswordChangeResult{}, ErrInvalidDataProvided
	}

	record, recoveryKey, err := c.buildRecord(password, data)
	if err != nil {
		return PasswordChangeResult{}, err
	}

	if _, err = c.serverAdapter.PushVault(ctx, record); err != nil {
		c.logger.Err(err).Msg("vault upload failed")
		return PasswordChangeResult{}, fmt.Errorf("vault upload failed: %w", err)
	}

	return PasswordChangeResult{
		RecoveryKeyDisplay: c.recoveryKeeper.FormatRecoveryKey(recoveryKey),
	}, nil
}

// ChangePassword re-encrypts the vault under a new password and rotates it
// atomically with the share-grant invalidation. The old recovery key dies
// with the old password and every grant's wrapped copy of it is cleared,
// though the grants themselves stay active; the result carries the
// replacement recovery key for one-time display.
func (c *clientVaultService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (PasswordChangeResult, error) {
	if oldPassword == "" || newPassword == "" {
		return PasswordChangeResult{}, ErrInvalidDataProvided
	}

	current, err := c.serverAdapter.FetchVault(ctx)
	if err != nil {
		return PasswordChangeResult{}, fmt.Errorf("fetching vault failed: %w", err)
	}

	if !c.cipher.VerifyPassword(current.PasswordVerifier, oldPassword, current.PasswordSalt) {
		return PasswordChangeResult{}, ErrWrongPassword
	}

	var payload any
	if err = c.cipher.Decrypt(current.EncryptedVault, oldPassword, current.PasswordSalt, &payload); err != nil {
		return PasswordChangeResult{}, fmt.Errorf("decrypting vault failed: %w", err)
	}

	record, recoveryKey, err := c.buildRecord(newPassword, payload)
	if err != nil {
		return PasswordChangeResult{}, err
	}

	rotation, err := c.serverAdapter.RotateVault(ctx, record)
	if err != nil {
		c.logger.Err(err).Msg("vault rotation failed")
		return PasswordChangeResult{}, fmt.Errorf("vault rotation failed: %w", err)
	}

	return PasswordChangeResult{
		RecoveryKeyDisplay: c.recoveryKeeper.FormatRecoveryKey(recoveryKey),
		Invalidation:       rotation.Invalidation,
	}, nil
}

// CreateShareGrant wraps the account password under a PIN-derived key and
// registers the grant. The password is verified first so a typo cannot
// produce a grant that unwraps to garbage.
func (c *clientVaultService) CreateShareGrant(ctx context.Context, password, pin string) (models.ShareToken, error) {
	if password == "" || pin == "" {
		return models.ShareToken{}, ErrInvalidDataProvided
	}

	current, err := c.serverAdapter.FetchVault(ctx)
	if err != nil {
		return models.ShareToken{}, fmt.Errorf("fetching vault failed: %w", err)
	}
	if !c.cipher.VerifyPassword(current.PasswordVerifier, password, current.PasswordSalt) {
		return models.ShareToken{}, ErrWrongPassword
	}

	pinSalt, err := c.pinKeeper.GeneratePinSalt()
	if err != nil {
		return models.ShareToken{}, fmt.Errorf("generating pin salt failed: %w", err)
	}
	wrapped, err := c.pinKeeper.WrapPassword(password, pin, pinSalt)
	if err != nil {
		return models.ShareToken{}, fmt.Errorf("wrapping password failed: %w", err)
	}

	userID, err := c.serverAdapter.UserID()
	if err != nil {
		return models.ShareToken{}, fmt.Errorf("resolving user id failed: %w", err)
	}

	token := models.ShareToken{
		ID:                   uuid.NewString(),
		UserID:               userID,
		EncryptedRecoveryKey: &wrapped,
		PinSalt:              pinSalt,
	}

	created, err := c.serverAdapter.CreateShareGrant(ctx, token)
	if err != nil {
		c.logger.Err(err).Msg("share grant registration failed")
		return models.ShareToken{}, fmt.Errorf("share grant registration failed: %w", err)
	}

	return created, nil
}

// buildRecord assembles a complete vault record under password: fresh salt,
// encrypted payload, verifier, and a password-recovery blob under a newly
// minted recovery key. Returns the codec-encoded recovery key alongside.
func (c *clientVaultService) buildRecord(password string, data any) (models.VaultRecord, string, error) {
	salt, err := c.cipher.GenerateSalt()
	if err != nil {
		return models.VaultRecord{}, "", fmt.Errorf("generating salt failed: %w", err)
	}

	blob, err := c.cipher.Encrypt(data, password, salt)
	if err != nil {
		return models.VaultRecord{}, "", fmt.Errorf("encrypting vault failed: %w", err)
	}

	verifier, err := c.cipher.CreatePasswordVerifier(password, salt)
	if err != nil {
		return models.VaultRecord{}, "", fmt.Errorf("creating password verifier failed: %w", err)
	}

	recoveryKey, err := c.recoveryKeeper.GenerateRecoveryKey()
	if err != nil {
		return models.VaultRecord{}, "", fmt.Errorf("generating recovery key failed: %w", err)
	}

	recoveryBlob, err := c.recoveryKeeper.EncryptPassword(password, recoveryKey)
	if err != nil {
		return models.VaultRecord{}, "", fmt.Errorf("encrypting password recovery blob failed: %w", err)
	}

	return models.VaultRecord{
		PasswordSalt:              salt,
		EncryptedVault:            blob,
		PasswordVerifier:          verifier,
		EncryptedPasswordRecovery: recoveryBlob,
	}, recoveryKey, nil
}
