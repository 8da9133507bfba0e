package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// sqlite driver for the local vault cache.
	_ "github.com/mattn/go-sqlite3"

	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/models"
)

const (
	createCacheSchema = `CREATE TABLE IF NOT EXISTS vault_cache (
		user_id INTEGER PRIMARY KEY,
		password_salt TEXT NOT NULL,
		encrypted_vault TEXT NOT NULL,
		password_verifier TEXT NOT NULL,
		encrypted_password_recovery TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`

	getCachedVault = `SELECT user_id, password_salt, encrypted_vault, password_verifier, encrypted_password_recovery, updated_at
	FROM vault_cache
	WHERE user_id = ?;`

	putCachedVault = `INSERT INTO vault_cache (user_id, password_salt, encrypted_vault, password_verifier, encrypted_password_recovery, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (user_id) DO UPDATE
	SET password_salt = excluded.password_salt,
		encrypted_vault = excluded.encrypted_vault,
		password_verifier = excluded.password_verifier,
		encrypted_password_recovery = excluded.encrypted_password_recovery,
		updated_at = excluded.updated_at;`

	clearCachedVault = `DELETE FROM vault_cache WHERE user_id = ?;`
)

// ClientVaultCache is a local sqlite copy of the user's vault record, kept so
// the client can unlock offline. Every stored field is ciphertext or
// key-derivation material; the cache never sees a plaintext secret.
type ClientVaultCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewClientVaultCache opens (and if needed creates) the sqlite cache at path.
func NewClientVaultCache(ctx context.Context, path string, log *logger.Logger) (*ClientVaultCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening vault cache: %w", err)
	}

	if _, err = db.ExecContext(ctx, createCacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating vault cache schema: %w", err)
	}
	log.Debug().Str("path", path).Msg("opened local vault cache")

	return &ClientVaultCache{db: db, logger: log}, nil
}

// GetVault returns the cached record for userID or ErrVaultNotFound.
func (c *ClientVaultCache) GetVault(ctx context.Context, userID int64) (models.VaultRecord, error) {
	row := c.db.QueryRowContext(ctx, getCachedVault, userID)

	var record models.VaultRecord
	if err := scanVaultRecord(row, &record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultRecord{}, ErrVaultNotFound
		}
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// PutVault stores or replaces the cached record.
func (c *ClientVaultCache) PutVault(ctx context.Context, record models.VaultRecord) error {
	_, err := c.db.ExecContext(ctx, putCachedVault,
		record.UserID, record.PasswordSalt, record.EncryptedVault,
		record.PasswordVerifier, record.EncryptedPasswordRecovery, record.UpdatedAt)
	if err != nil {
		c.logger.Err(err).Str("func", "*ClientVaultCache.PutVault").Msg("error caching vault record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ClearVault drops the cached record for userID, if any.
func (c *ClientVaultCache) ClearVault(ctx context.Context, userID int64) error {
	if _, err := c.db.ExecContext(ctx, clearCachedVault, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// Close releases the underlying sqlite handle.
func (c *ClientVaultCache) Close() error {
	return c.db.Close()
}
