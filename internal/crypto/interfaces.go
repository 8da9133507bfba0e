package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// VaultCipher is the password-based encryption engine of the zero-knowledge
// scheme. It derives a symmetric key from the account password and a per-user
// salt through a deliberately slow KDF and performs authenticated encryption
// of arbitrary JSON-serializable data.
//
// Scheme:
//
//	salt      = GenerateSalt()                      (once per user)
//	key       = PBKDF2-SHA256(password, salt)       (per call, never stored)
//	blob      = base64(IV ‖ AES-256-GCM(key, data))
//
// Every Encrypt call draws a fresh random IV, so equal inputs produce
// different ciphertexts that decrypt to the same plaintext. The derived key
// exists only for the duration of a single call.
type VaultCipher interface {
	// GenerateSalt produces 16 bytes from the OS CSPRNG, codec-encoded.
	// The salt is not a secret; it is stored on the server in the open and
	// reused for every derivation of the same user.
	GenerateSalt() (string, error)

	// Encrypt serializes data to JSON and encrypts it under the key derived
	// from (password, salt). Returns base64(IV ‖ ciphertext).
	Encrypt(data any, password, salt string) (string, error)

	// Decrypt reverses Encrypt and unmarshals the plaintext into target,
	// which must be a non-nil pointer as for [encoding/json.Unmarshal].
	// Any failure (wrong password, wrong salt, tampered or malformed blob)
	// surfaces uniformly as [ErrAuthenticationFailed].
	Decrypt(blob, password, salt string, target any) error

	// CreatePasswordVerifier encrypts a fixed known marker under the
	// password. Paired with VerifyPassword it confirms a password without
	// ever decrypting real vault data.
	CreatePasswordVerifier(password, salt string) (string, error)

	// VerifyPassword attempts to decrypt a verifier blob and reports whether
	// it succeeded. It never propagates an error: any failure means false.
	VerifyPassword(verifierBlob, password, salt string) bool

	// IsEncryptedValue is a best-effort heuristic: value is a string, is
	// valid base64, and decodes to more than IV-length + tag-length bytes.
	// Used to distinguish already-encrypted fields from not-yet-migrated
	// plaintext. Not a security boundary.
	IsEncryptedValue(value any) bool
}

// RecoveryKeeper implements account recovery via a high-entropy secret held
// only by the user. The recovery key is used directly as AES-GCM key
// material without stretching, since it already carries full entropy, and it
// encrypts the account password itself, not the vault data.
type RecoveryKeeper interface {
	// GenerateRecoveryKey produces 32 bytes from the OS CSPRNG,
	// codec-encoded. It is the sole method of account recovery and must be
	// shown to the user exactly once.
	GenerateRecoveryKey() (string, error)

	// EncryptPassword encrypts the account password under the recovery key.
	// Returns base64(IV ‖ ciphertext), safe to store server-side.
	EncryptPassword(password, recoveryKey string) (string, error)

	// DecryptPassword recovers the account password from a blob produced by
	// EncryptPassword. A wrong or malformed recovery key surfaces as
	// [ErrAuthenticationFailed].
	DecryptPassword(blob, recoveryKey string) (string, error)

	// FormatRecoveryKey splits the codec-encoded key into 4-character groups
	// joined by hyphens for human transcription. Purely presentational.
	FormatRecoveryKey(key string) string

	// ParseRecoveryKey strips the hyphens and validates the result as a
	// 32-byte codec-encoded key. Exact inverse of FormatRecoveryKey for any
	// key the formatter produced. The caller trims surrounding whitespace.
	ParseRecoveryKey(display string) (string, error)
}

// PinKeeper wraps the account password under a key derived from a relative's
// PIN for share grants. A PIN has far less entropy than a recovery key, so
// unlike [RecoveryKeeper] the PIN is stretched through the same slow-KDF
// discipline as the password engine.
type PinKeeper interface {
	// GeneratePinSalt produces a fresh codec-encoded 16-byte salt for one grant.
	GeneratePinSalt() (string, error)

	// WrapPassword encrypts the account password under the PIN-derived key.
	WrapPassword(password, pin, pinSalt string) (string, error)

	// UnwrapPassword reverses WrapPassword. A wrong PIN surfaces as
	// [ErrAuthenticationFailed].
	UnwrapPassword(blob, pin, pinSalt string) (string, error)
}
