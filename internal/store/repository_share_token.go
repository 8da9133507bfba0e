package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/models"
)

// shareTokenRepository is the PostgreSQL-backed implementation of
// [ShareTokenRepository].
type shareTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewShareTokenRepository constructs a [ShareTokenRepository] backed by the
// provided database connection and logger.
func NewShareTokenRepository(db *DB, logger *logger.Logger) ShareTokenRepository {
	logger.Debug().Msg("creating share token repository")
	return &shareTokenRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGrant persists a new share token and returns it with server-assigned
// timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrGrantAlreadyExists].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *shareTokenRepository) CreateGrant(ctx context.Context, token models.ShareToken) (models.ShareToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateGrantQuery(token.ID, token.UserID, token.EncryptedRecoveryKey, token.PinSalt)
	if err != nil {
		return models.ShareToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	token.IsActive = true
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&token.CreatedAt, &token.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*shareTokenRepository.CreateGrant").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.ShareToken{}, ErrGrantAlreadyExists
		default:
			return models.ShareToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return token, nil
}

// ListActiveGrants returns the user's active share tokens ordered newest
// first. An empty result is not an error.
func (r *shareTokenRepository) ListActiveGrants(ctx context.Context, userID int64) ([]models.ShareToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActiveGrantsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shareTokenRepository.ListActiveGrants").Msg("error: list query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tokens []models.ShareToken
	for rows.Next() {
		var token models.ShareToken
		if err = rows.Scan(
			&token.ID,
			&token.UserID,
			&token.IsActive,
			&token.EncryptedRecoveryKey,
			&token.PinSalt,
			&token.CreatedAt,
			&token.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "*shareTokenRepository.ListActiveGrants").Msg("error: scanning row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tokens = append(tokens, token)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tokens, nil
}

// CountRecoverable counts the active tokens of the user that carry a recovery
// grant. The predicate is shared with InvalidateRecoverable so the preview
// always matches what an invalidation would touch.
func (r *shareTokenRepository) CountRecoverable(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountRecoverableQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*shareTokenRepository.CountRecoverable").Msg("error: count query failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// InvalidateRecoverable clears the stored recovery material from every active
// recovery-capable token of the user with a single conditional UPDATE and
// reports the number of rows affected. The tokens themselves remain active:
// the holder keeps access but must enter the new recovery key manually.
func (r *shareTokenRepository) InvalidateRecoverable(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInvalidateRecoverableQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shareTokenRepository.InvalidateRecoverable").Msg("error: invalidation statement failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*shareTokenRepository.InvalidateRecoverable").Msg("error: reading affected rows failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}
