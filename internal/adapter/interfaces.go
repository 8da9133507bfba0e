// Package adapter provides transport-layer abstractions for communicating
// with the legacy-vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrVaultNotFound] for 404).
package adapter

import (
	"context"

	"github.com/legacykeep/legacy-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// legacy-vault server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Tokens are issued by the external identity
	// provider; the adapter only carries them.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// UserID returns the user identifier carried in the stored token's "sub"
	// claim, without verifying the signature. Used only for local cache
	// addressing; the server performs the authoritative verification.
	UserID() (int64, error)

	// FetchVault retrieves the authenticated user's vault record: the public
	// salt and the three ciphertext blobs. Returns ErrVaultNotFound if the
	// user has no vault yet.
	FetchVault(ctx context.Context) (models.VaultRecord, error)

	// PushVault replaces the authenticated user's vault record and returns
	// the canonical stored representation.
	PushVault(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// RotateVault atomically replaces the vault record and invalidates every
	// recovery-capable share grant on the server.
	RotateVault(ctx context.Context, record models.VaultRecord) (models.RotationResult, error)

	// CountAffectedShareTokens previews how many grants a password change
	// would strip of recovery material.
	CountAffectedShareTokens(ctx context.Context) (int64, error)

	// InvalidateShareTokenEncryption explicitly clears stale recovery
	// material from the user's active grants.
	InvalidateShareTokenEncryption(ctx context.Context) (models.InvalidationResult, error)

	// CreateShareGrant registers a new PIN-protected share grant.
	CreateShareGrant(ctx context.Context, token models.ShareToken) (models.ShareToken, error)
}
