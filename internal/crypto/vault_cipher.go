package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"github.com/legacykeep/legacy-vault/internal/codec"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltLen is the length of the per-user password salt in bytes.
	saltLen = 16

	// ivLen is the AES-GCM nonce length. The IV is prepended to the
	// ciphertext so the decryption side can split it out: blob = IV ‖ ct.
	ivLen = 12

	// keyLen is the derived-key length: 32 bytes (256 bits) for AES-256.
	keyLen = 32

	// kdfIterations is the PBKDF2-SHA256 iteration count. The stretch is the
	// one deliberately expensive step of the scheme: brute-forcing a captured
	// salt+ciphertext pair costs this many hash rounds per guess.
	kdfIterations = 100_000

	// gcmTagLen is the AES-GCM authentication tag length appended to every
	// ciphertext.
	gcmTagLen = 16

	// passwordVerifierMarker is the fixed plaintext encrypted by
	// CreatePasswordVerifier. Its exact value carries no secret; only the
	// fact that it decrypts correctly matters.
	passwordVerifierMarker = "legacy-vault/password-verifier/v1"
)

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct{}

// NewVaultCipher constructs a [VaultCipher] with the scheme's fixed
// parameters: PBKDF2-SHA256 with 100 000 iterations, 256-bit keys,
// AES-256-GCM with 12-byte IVs.
func NewVaultCipher() VaultCipher {
	return &vaultCipher{}
}

// GenerateSalt implements [VaultCipher]. It reads 16 random bytes from the
// OS CSPRNG and returns them codec-encoded. Returns an error if the random
// read fails.
func (v *vaultCipher) GenerateSalt() (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	return codec.BytesToText(salt), nil
}

// deriveKey stretches the password into a 256-bit AES key using
// PBKDF2-SHA256. Deterministic: the same (password, salt) always yields the
// same key. The result lives only on the caller's stack and is never
// persisted or cached.
func (v *vaultCipher) deriveKey(password, salt string) ([]byte, error) {
	saltBytes, err := codec.TextToBytes(salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}

	return pbkdf2.Key([]byte(password), saltBytes, kdfIterations, keyLen, sha256.New), nil
}

// Encrypt implements [VaultCipher].
func (v *vaultCipher) Encrypt(data any, password, salt string) (string, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	// 2. Derive the key fresh for this call
	key, err := v.deriveKey(password, salt)
	if err != nil {
		return "", err
	}

	return seal(plaintext, key)
}

// Decrypt implements [VaultCipher]. Every failure mode past salt decoding is
// collapsed into [ErrAuthenticationFailed] so that a wrong password is not
// distinguishable from a corrupted blob.
func (v *vaultCipher) Decrypt(blob, password, salt string, target any) error {
	key, err := v.deriveKey(password, salt)
	if err != nil {
		return err
	}

	plaintext, err := open(blob, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

// CreatePasswordVerifier implements [VaultCipher].
func (v *vaultCipher) CreatePasswordVerifier(password, salt string) (string, error) {
	return v.Encrypt(passwordVerifierMarker, password, salt)
}

// VerifyPassword implements [VaultCipher]. It attempts to decrypt the
// verifier blob and returns false on any failure instead of propagating,
// so a password can be checked without exposing vault data or error detail.
func (v *vaultCipher) VerifyPassword(verifierBlob, password, salt string) bool {
	var marker string
	if err := v.Decrypt(verifierBlob, password, salt, &marker); err != nil {
		return false
	}

	return marker == passwordVerifierMarker
}

// IsEncryptedValue implements [VaultCipher]. The threshold is IV length plus
// GCM tag length: anything shorter cannot be a blob this engine produced.
// A heuristic for migration detection only; it can false-positive on
// coincidentally base64-shaped plaintext.
func (v *vaultCipher) IsEncryptedValue(value any) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return false
	}

	decoded, err := codec.TextToBytes(s)
	if err != nil {
		return false
	}

	return len(decoded) > ivLen+gcmTagLen
}

// seal encrypts plaintext with AES-256-GCM under key, using a fresh random
// 12-byte IV, and returns the codec-encoded blob IV ‖ ciphertext.
func seal(plaintext, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	// Prepend the IV so the decryption side can split it out.
	ciphertext := gcm.Seal(nil, iv, plaintext, nil)
	return codec.BytesToText(append(iv, ciphertext...)), nil
}

// open reverses [seal]. All failures (malformed encoding, short blob, tag
// mismatch) return [ErrAuthenticationFailed] with no distinguishing detail.
func open(blob string, key []byte) ([]byte, error) {
	raw, err := codec.TextToBytes(blob)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	if len(raw) < gcm.NonceSize() {
		return nil, ErrAuthenticationFailed
	}
	iv, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}
