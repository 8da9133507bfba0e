package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. It handles the single-row-per-user "vaults" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// GetVault retrieves the vault record belonging to userID.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrVaultNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *vaultRepository) GetVault(ctx context.Context, userID int64) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getVault, userID)

	var record models.VaultRecord
	if err := scanVaultRecord(row, &record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultRecord{}, ErrVaultNotFound
		}
		log.Err(err).Str("func", "*vaultRepository.GetVault").Msg("error: scanning error")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// SaveVault inserts the vault record, replacing an existing one for the same
// user, and returns the canonical stored representation.
func (r *vaultRepository) SaveVault(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertVault,
		record.UserID, record.PasswordSalt, record.EncryptedVault,
		record.PasswordVerifier, record.EncryptedPasswordRecovery)

	var saved models.VaultRecord
	if err := scanVaultRecord(row, &saved); err != nil {
		log.Err(err).Str("func", "*vaultRepository.SaveVault").Msg("error: scanning error")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// RotateVault replaces the vault record and clears the recovery material
// from every recovery-capable share token of the same user in one
// transaction. A rotated vault is encrypted under a new password, so any
// wrapped copy of the old password is stale ciphertext that must be
// destroyed; the tokens themselves stay active.
func (r *vaultRepository) RotateVault(ctx context.Context, record models.VaultRecord) (models.VaultRecord, int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.RotateVault").Msg("error: failed to begin transaction")
		return models.VaultRecord{}, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, upsertVault,
		record.UserID, record.PasswordSalt, record.EncryptedVault,
		record.PasswordVerifier, record.EncryptedPasswordRecovery)

	var saved models.VaultRecord
	if err = scanVaultRecord(row, &saved); err != nil {
		log.Err(err).Str("func", "*vaultRepository.RotateVault").Msg("error: scanning error")
		return models.VaultRecord{}, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildInvalidateRecoverableQuery(record.UserID)
	if err != nil {
		return models.VaultRecord{}, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.RotateVault").Msg("error: invalidation statement failed")
		return models.VaultRecord{}, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	invalidated, err := result.RowsAffected()
	if err != nil {
		return models.VaultRecord{}, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.RotateVault").Msg("error: failed to commit transaction")
		return models.VaultRecord{}, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, invalidated, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultRecord(row rowScanner, record *models.VaultRecord) error {
	return row.Scan(
		&record.UserID,
		&record.PasswordSalt,
		&record.EncryptedVault,
		&record.PasswordVerifier,
		&record.EncryptedPasswordRecovery,
		&record.UpdatedAt,
	)
}
