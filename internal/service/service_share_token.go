package service

import (
	"context"
	"fmt"

	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/store"
	"github.com/legacykeep/legacy-vault/models"
)

// shareTokenService is the concrete implementation of ShareTokenService.
type shareTokenService struct {
	shareTokenRepository store.ShareTokenRepository
	logger               *logger.Logger
}

// NewShareTokenService constructs a ShareTokenService over the given
// repository.
func NewShareTokenService(shareTokenRepository store.ShareTokenRepository, logger *logger.Logger) ShareTokenService {
	return &shareTokenService{
		shareTokenRepository: shareTokenRepository,
		logger:               logger,
	}
}

// CreateGrant validates and stores a new share grant. A grant carrying
// recovery material must also carry the PIN salt that produced it.
func (s *shareTokenService) CreateGrant(ctx context.Context, token models.ShareToken) (models.ShareToken, error) {
	log := logger.FromContext(ctx)

	if token.ID == "" || token.UserID == 0 {
		log.Error().Str("token_id", token.ID).Msg("invalid share token provided")
		return models.ShareToken{}, ErrInvalidDataProvided
	}
	if token.EncryptedRecoveryKey != nil && token.PinSalt == "" {
		log.Error().Str("token_id", token.ID).Msg("recovery material without pin salt")
		return models.ShareToken{}, ErrInvalidDataProvided
	}

	created, err := s.shareTokenRepository.CreateGrant(ctx, token)
	if err != nil {
		log.Err(err).Str("token_id", token.ID).Msg("share grant creation failed")
		return models.ShareToken{}, fmt.Errorf("share grant creation failed: %w", err)
	}

	return created, nil
}

// ListActiveGrants returns the user's active grants.
func (s *shareTokenService) ListActiveGrants(ctx context.Context, userID int64) ([]models.ShareToken, error) {
	log := logger.FromContext(ctx)

	tokens, err := s.shareTokenRepository.ListActiveGrants(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing share grants failed")
		return nil, fmt.Errorf("listing share grants failed: %w", err)
	}

	return tokens, nil
}

// CountAffectedShareTokens previews the invalidation. Unlike the invalidation
// itself this is a plain read, so a persistence failure is surfaced as an
// error for the caller to retry.
func (s *shareTokenService) CountAffectedShareTokens(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := s.shareTokenRepository.CountRecoverable(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("affected share token count failed")
		return 0, fmt.Errorf("affected share token count failed: %w", err)
	}

	return count, nil
}

// InvalidateShareTokenEncryption clears stale recovery material. Persistence
// failure degrades to a failed result instead of an error: reporting
// "nothing invalidated" is safe, reporting success wrongly is not.
func (s *shareTokenService) InvalidateShareTokenEncryption(ctx context.Context, userID int64) models.InvalidationResult {
	log := logger.FromContext(ctx)

	affected, err := s.shareTokenRepository.InvalidateRecoverable(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("share token invalidation failed")
		return models.InvalidationResult{Success: false, AffectedCount: 0}
	}
	log.Info().Int64("user_id", userID).Int64("affected", affected).Msg("share token recovery material invalidated")

	return models.InvalidationResult{Success: true, AffectedCount: affected}
}
