package models

import "time"

// ShareToken grants a relative decrypt access to a user's vault, gated by a
// PIN. The token row optionally carries recovery material: the account
// password wrapped under a PIN-derived key. That material is only valid for
// the password it was created under: when the password changes it must be
// cleared, never left dangling.
type ShareToken struct {
	// ID is the public identifier of the grant (UUID).
	ID string `json:"id"`

	// UserID is the vault owner this grant belongs to.
	UserID int64 `json:"user_id"`

	// IsActive reports whether the grant is currently usable.
	// Revoked grants keep their row for auditing but are excluded from
	// every consistency operation.
	IsActive bool `json:"is_active"`

	// EncryptedRecoveryKey is the owner's password wrapped under a key
	// derived from the relative's PIN, base64(IV ‖ ciphertext). Nil means
	// the grant has no one-click recovery material and the relative must
	// fall back to manual recovery-key entry.
	EncryptedRecoveryKey *string `json:"encrypted_recovery_key,omitempty"`

	// PinSalt is the codec-encoded salt used to stretch the relative's PIN.
	// Empty when EncryptedRecoveryKey is nil.
	PinSalt string `json:"pin_salt,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ShareToken model.
func (s ShareToken) TableName() string {
	return "share_tokens"
}

// InvalidationResult reports the outcome of clearing stale share-token
// recovery material after a password change.
//
// Success=false means the caller must assume the invalidation did not happen
// and escalate (block the password change or alert the user); undercounting
// is safer than falsely claiming the material was cleared.
type InvalidationResult struct {
	Success       bool  `json:"success"`
	AffectedCount int64 `json:"affected_count"`
}

// AffectedTokensPreview is the read-only precondition payload shown to a
// vault owner before a password change: how many grants would lose their
// recovery material.
type AffectedTokensPreview struct {
	AffectedCount int64 `json:"affected_count"`
}
