package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries blobs that are not valid ciphertext.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied account password fails
	// verifier decryption.
	ErrWrongPassword = errors.New("wrong account password")

	// ErrVaultUnavailable is returned when neither the server nor the local
	// cache can produce the vault record.
	ErrVaultUnavailable = errors.New("vault is unavailable")

	// ErrNoRecoveryBlob is returned when the vault record carries no
	// password-recovery material, so recovery-key unlock is impossible.
	ErrNoRecoveryBlob = errors.New("vault has no password recovery material")
)
