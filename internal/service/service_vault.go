package service

import (
	"context"
	"fmt"

	"github.com/legacykeep/legacy-vault/internal/crypto"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/store"
	"github.com/legacykeep/legacy-vault/models"
)

// vaultService is the concrete implementation of VaultService. It gatekeeps
// the vault table: records are accepted only when every payload field looks
// like ciphertext, so a buggy client cannot park plaintext on the server.
type vaultService struct {
	vaultRepository store.VaultRepository

	// cipher is used only for its IsEncryptedValue heuristic; the server
	// never derives keys or decrypts anything.
	cipher crypto.VaultCipher

	logger *logger.Logger
}

// NewVaultService constructs a VaultService over the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewVaultService(vaultRepository store.VaultRepository, cipher crypto.VaultCipher, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		cipher:          cipher,
		logger:          logger,
	}
}

// GetVault returns the stored vault record of the user.
func (v *vaultService) GetVault(ctx context.Context, userID int64) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	record, err := v.vaultRepository.GetVault(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("vault lookup failed")
		return models.VaultRecord{}, fmt.Errorf("vault lookup failed: %w", err)
	}

	return record, nil
}

// PutVault validates and stores a client-encrypted vault record.
func (v *vaultService) PutVault(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	if err := v.validateRecord(record); err != nil {
		log.Error().Int64("user_id", record.UserID).Msg("invalid vault record provided")
		return models.VaultRecord{}, err
	}

	saved, err := v.vaultRepository.SaveVault(ctx, record)
	if err != nil {
		log.Err(err).Int64("user_id", record.UserID).Msg("vault save failed")
		return models.VaultRecord{}, fmt.Errorf("vault save failed: %w", err)
	}

	return saved, nil
}

// RotateVault stores the re-encrypted record and invalidates stale share
// grants in one transaction.
func (v *vaultService) RotateVault(ctx context.Context, record models.VaultRecord) (models.RotationResult, error) {
	log := logger.FromContext(ctx)

	if err := v.validateRecord(record); err != nil {
		log.Error().Int64("user_id", record.UserID).Msg("invalid vault record provided for rotation")
		return models.RotationResult{}, err
	}

	saved, invalidated, err := v.vaultRepository.RotateVault(ctx, record)
	if err != nil {
		log.Err(err).Int64("user_id", record.UserID).Msg("vault rotation failed")
		return models.RotationResult{}, fmt.Errorf("vault rotation failed: %w", err)
	}
	log.Info().
		Int64("user_id", record.UserID).
		Int64("invalidated_grants", invalidated).
		Msg("vault rotated")

	return models.RotationResult{
		Vault:        saved,
		Invalidation: models.InvalidationResult{Success: true, AffectedCount: invalidated},
	}, nil
}

// validateRecord rejects records whose payload fields do not look like
// ciphertext. The salt is public randomness, so it only has to be present.
func (v *vaultService) validateRecord(record models.VaultRecord) error {
	if record.UserID == 0 || record.PasswordSalt == "" {
		return ErrInvalidDataProvided
	}

	for _, blob := range []string{record.EncryptedVault, record.PasswordVerifier, record.EncryptedPasswordRecovery} {
		if !v.cipher.IsEncryptedValue(blob) {
			return ErrInvalidDataProvided
		}
	}

	return nil
}
