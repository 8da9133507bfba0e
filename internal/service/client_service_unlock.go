package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/legacykeep/legacy-vault/internal/adapter"
	"github.com/legacykeep/legacy-vault/internal/crypto"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/store"
	"github.com/legacykeep/legacy-vault/models"
)

// clientUnlockService opens the vault with either the account password or
// the recovery key. When the server cannot be reached it falls back to the
// local sqlite cache, which holds the same ciphertext-only record; the cache
// is refreshed only after a successful decrypt.
type clientUnlockService struct {
	serverAdapter  adapter.ServerAdapter
	cache          *store.ClientVaultCache
	cipher         crypto.VaultCipher
	recoveryKeeper crypto.RecoveryKeeper
	logger         *logger.Logger
}

// NewClientUnlockService constructs a ClientUnlockService. cache may be nil,
// in which case no offline fallback is available.
func NewClientUnlockService(
	serverAdapter adapter.ServerAdapter,
	cache *store.ClientVaultCache,
	cipher crypto.VaultCipher,
	recoveryKeeper crypto.RecoveryKeeper,
	logger *logger.Logger,
) ClientUnlockService {
	return &clientUnlockService{
		serverAdapter:  serverAdapter,
		cache:          cache,
		cipher:         cipher,
		recoveryKeeper: recoveryKeeper,
		logger:         logger,
	}
}

// UnlockWithPassword verifies the password against the verifier blob and
// decrypts the vault payload into target.
func (c *clientUnlockService) UnlockWithPassword(ctx context.Context, password string, target any) error {
	if password == "" {
		return ErrInvalidDataProvided
	}

	record, err := c.fetchRecord(ctx)
	if err != nil {
		return err
	}

	if !c.cipher.VerifyPassword(record.PasswordVerifier, password, record.PasswordSalt) {
		return ErrWrongPassword
	}

	if err = c.cipher.Decrypt(record.EncryptedVault, password, record.PasswordSalt, target); err != nil {
		return fmt.Errorf("decrypting vault failed: %w", err)
	}

	c.cacheRecord(ctx, record)
	return nil
}

// RecoverWithKey runs the post-mortem / forgotten-password flow: the
// hyphenated recovery key decrypts the stored account password, the password
// is confirmed against the verifier, and the vault payload lands in target.
// The recovered password is returned so the caller can offer an immediate
// password change.
func (c *clientUnlockService) RecoverWithKey(ctx context.Context, displayKey string, target any) (string, error) {
	recoveryKey, err := c.recoveryKeeper.ParseRecoveryKey(strings.TrimSpace(displayKey))
	if err != nil {
		return "", err
	}

	record, err := c.fetchRecord(ctx)
	if err != nil {
		return "", err
	}
	if record.EncryptedPasswordRecovery == "" {
		return "", ErrNoRecoveryBlob
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}

	password, err := c.recoveryKeeper.DecryptPassword(record.EncryptedPasswordRecovery, recoveryKey)
	if err != nil {
		return "", err
	}

	// The recovery blob and the verifier were written together, so a
	// recovered password that fails the verifier means corrupted state.
	// Surface it like any wrong key, without detail.
	if !c.cipher.VerifyPassword(record.PasswordVerifier, password, record.PasswordSalt) {
		return "", crypto.ErrAuthenticationFailed
	}

	if err = c.cipher.Decrypt(record.EncryptedVault, password, record.PasswordSalt, target); err != nil {
		return "", fmt.Errorf("decrypting vault failed: %w", err)
	}

	c.cacheRecord(ctx, record)
	return password, nil
}

// fetchRecord prefers the server and degrades to the local cache when the
// server is unreachable.
func (c *clientUnlockService) fetchRecord(ctx context.Context) (models.VaultRecord, error) {
	record, err := c.serverAdapter.FetchVault(ctx)
	if err == nil {
		return record, nil
	}
	c.logger.Err(err).Msg("server fetch failed, trying local cache")

	if c.cache == nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrVaultUnavailable, err)
	}

	userID, idErr := c.serverAdapter.UserID()
	if idErr != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrVaultUnavailable, err)
	}

	cached, cacheErr := c.cache.GetVault(ctx, userID)
	if cacheErr != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrVaultUnavailable, err)
	}

	return cached, nil
}

// cacheRecord refreshes the offline copy. Failures are logged and swallowed:
// a stale cache only matters the next time the server is down.
func (c *clientUnlockService) cacheRecord(ctx context.Context, record models.VaultRecord) {
	if c.cache == nil {
		return
	}

	if record.UserID == 0 {
		if userID, err := c.serverAdapter.UserID(); err == nil {
			record.UserID = userID
		} else {
			return
		}
	}

	if err := c.cache.PutVault(ctx, record); err != nil {
		c.logger.Err(err).Msg("caching vault record failed")
	}
}
