package models

import "time"

// VaultRecord is the per-user persistence unit of the zero-knowledge vault.
// Every payload field is either public randomness (PasswordSalt) or
// ciphertext produced on the client; the server never sees plaintext.
type VaultRecord struct {
	// UserID is the internal unique identifier of the vault owner.
	UserID int64 `json:"-"`

	// PasswordSalt is the per-user random salt, codec-encoded.
	// It is not a secret and is stored alongside the ciphertext; the same
	// salt is reused for every key derivation of this user.
	PasswordSalt string `json:"password_salt"`

	// EncryptedVault is the current vault payload: base64(IV ‖ ciphertext)
	// produced by the password-based encryption engine.
	EncryptedVault string `json:"encrypted_vault"`

	// PasswordVerifier is a small blob encrypting a fixed marker under the
	// account password. It lets the client confirm a password without
	// touching the real vault payload.
	PasswordVerifier string `json:"password_verifier"`

	// EncryptedPasswordRecovery is the account password encrypted under the
	// user-held recovery key. Compromise of this value alone reveals nothing:
	// the recovery key never reaches the server.
	EncryptedPasswordRecovery string `json:"encrypted_password_recovery"`

	// UpdatedAt is the server-side timestamp of the last replacement.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultRecord model.
func (v VaultRecord) TableName() string {
	return "vaults"
}

// RotationResult pairs the rotated vault record with the share-grant
// invalidation outcome committed in the same transaction.
type RotationResult struct {
	Vault        VaultRecord        `json:"vault"`
	Invalidation InvalidationResult `json:"invalidation"`
}
