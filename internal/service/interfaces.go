package service

import (
	"context"

	"github.com/legacykeep/legacy-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// VaultService is the server-side boundary over vault persistence. It never
// touches plaintext: every blob it accepts was encrypted on a client.
type VaultService interface {
	// GetVault returns the vault record of the user.
	GetVault(ctx context.Context, userID int64) (models.VaultRecord, error)

	// PutVault validates and stores a client-encrypted vault record.
	PutVault(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// RotateVault validates the re-encrypted record and commits it together
	// with the share-grant invalidation in one transaction.
	RotateVault(ctx context.Context, record models.VaultRecord) (models.RotationResult, error)
}

// ShareTokenService manages family-access share grants and the consistency
// rule between grants and the account password.
type ShareTokenService interface {
	// CreateGrant validates and stores a new PIN-protected grant.
	CreateGrant(ctx context.Context, token models.ShareToken) (models.ShareToken, error)

	// ListActiveGrants returns the user's active grants, newest first.
	ListActiveGrants(ctx context.Context, userID int64) ([]models.ShareToken, error)

	// CountAffectedShareTokens reports how many grants an invalidation would
	// touch. Returns 0 and an error when persistence is unavailable.
	CountAffectedShareTokens(ctx context.Context, userID int64) (int64, error)

	// InvalidateShareTokenEncryption clears stale recovery material from the
	// user's active grants. It never returns an error: a persistence failure
	// degrades to {Success:false, AffectedCount:0} so the caller can block
	// the password change instead of proceeding on a false success.
	InvalidateShareTokenEncryption(ctx context.Context, userID int64) models.InvalidationResult
}

// PasswordChangeResult is what a completed client-side password change hands
// back to the user interface.
type PasswordChangeResult struct {
	// RecoveryKeyDisplay is the freshly minted recovery key in hyphenated
	// display form. It exists only here; show it once and drop it.
	RecoveryKeyDisplay string

	// Invalidation reports how many share grants lost their recovery
	// material in the rotation.
	Invalidation models.InvalidationResult
}

// ClientVaultService runs the client-side vault lifecycle: all encryption
// happens here, and only ciphertext crosses the adapter.
type ClientVaultService interface {
	// InitializeVault creates the user's first vault: fresh salt, encrypted
	// payload, password verifier, recovery key and password-recovery blob.
	// Returns the one-time recovery key display.
	InitializeVault(ctx context.Context, password string, data any) (PasswordChangeResult, error)

	// ChangePassword verifies the old password, decrypts the vault,
	// re-encrypts it under the new password with a fresh salt, mints a fresh
	// recovery key and rotates everything atomically on the server.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (PasswordChangeResult, error)

	// CreateShareGrant verifies the password, wraps it under a PIN-derived
	// key and registers the grant on the server.
	CreateShareGrant(ctx context.Context, password, pin string) (models.ShareToken, error)
}

// ClientUnlockService opens the vault, either with the account password or
// with the recovery key after the owner's death or a forgotten password.
type ClientUnlockService interface {
	// UnlockWithPassword fetches the vault record, verifies the password and
	// decrypts the payload into target. The record is cached locally only
	// after a successful decrypt.
	UnlockWithPassword(ctx context.Context, password string, target any) error

	// RecoverWithKey parses the hyphenated recovery key, decrypts the stored
	// account password with it, verifies the password and decrypts the vault
	// into target. Returns the recovered password so the caller can offer an
	// immediate password change.
	RecoverWithKey(ctx context.Context, displayKey string, target any) (string, error)
}
