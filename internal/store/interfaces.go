package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/legacykeep/legacy-vault/models"
)

// VaultRepository persists the per-user encrypted vault record. Everything it
// stores is ciphertext or key-derivation material produced on the client.
type VaultRepository interface {
	// GetVault returns the vault record for userID or ErrVaultNotFound.
	GetVault(ctx context.Context, userID int64) (models.VaultRecord, error)

	// SaveVault inserts or replaces the vault record and returns the
	// canonical stored representation.
	SaveVault(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// RotateVault atomically replaces the vault record and clears the
	// recovery material from every recovery-capable share token of the same
	// user. Both effects commit together or not at all. The second return
	// value is the number of tokens whose material was cleared.
	RotateVault(ctx context.Context, record models.VaultRecord) (models.VaultRecord, int64, error)
}

// ShareTokenRepository persists family-access share tokens and their
// PIN-wrapped recovery grants.
type ShareTokenRepository interface {
	// CreateGrant inserts a share token row and returns it with
	// server-assigned timestamps.
	CreateGrant(ctx context.Context, token models.ShareToken) (models.ShareToken, error)

	// ListActiveGrants returns the user's active share tokens, newest first.
	ListActiveGrants(ctx context.Context, userID int64) ([]models.ShareToken, error)

	// CountRecoverable returns how many active tokens of the user carry a
	// recovery grant (non-null encrypted recovery key).
	CountRecoverable(ctx context.Context, userID int64) (int64, error)

	// InvalidateRecoverable nulls the encrypted recovery key of, in a single
	// statement, every active token of the user that carries a recovery
	// grant and returns the number of rows affected. The tokens stay active;
	// tokens without a grant are left untouched.
	InvalidateRecoverable(ctx context.Context, userID int64) (int64, error)
}
