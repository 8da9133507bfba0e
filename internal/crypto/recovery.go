package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/legacykeep/legacy-vault/internal/codec"
)

// recoveryKeyLen is the raw recovery-key length in bytes. Full 256-bit
// entropy: the key is the sole method of account recovery and is used
// directly as AES key material without stretching.
const recoveryKeyLen = 32

// displayGroupLen is the size of the hyphenated groups shown to the user.
const displayGroupLen = 4

// recoveryKeeper is the private implementation of [RecoveryKeeper].
type recoveryKeeper struct{}

// NewRecoveryKeeper constructs a [RecoveryKeeper].
func NewRecoveryKeeper() RecoveryKeeper {
	return &recoveryKeeper{}
}

// GenerateRecoveryKey implements [RecoveryKeeper]. It reads 32 random bytes
// from the OS CSPRNG and returns them codec-encoded. Returns an error if the
// random read fails.
func (r *recoveryKeeper) GenerateRecoveryKey() (string, error) {
	key := make([]byte, recoveryKeyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate recovery key: %w", err)
	}

	return codec.BytesToText(key), nil
}

// EncryptPassword implements [RecoveryKeeper]. The recovery key bytes are
// imported directly as the AES-256-GCM key: no KDF, the key already carries
// full entropy.
func (r *recoveryKeeper) EncryptPassword(password, recoveryKey string) (string, error) {
	key, err := recoveryKeyBytes(recoveryKey)
	if err != nil {
		return "", err
	}

	return seal([]byte(password), key)
}

// DecryptPassword implements [RecoveryKeeper].
func (r *recoveryKeeper) DecryptPassword(blob, recoveryKey string) (string, error) {
	key, err := recoveryKeyBytes(recoveryKey)
	if err != nil {
		return "", err
	}

	password, err := open(blob, key)
	if err != nil {
		return "", err
	}

	return string(password), nil
}

// FormatRecoveryKey implements [RecoveryKeeper]. The codec-encoded key is
// split into 4-character groups joined by hyphens; the grouping is not part
// of the cryptographic material.
func (r *recoveryKeeper) FormatRecoveryKey(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i += displayGroupLen {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + displayGroupLen
		if end > len(key) {
			end = len(key)
		}
		b.WriteString(key[i:end])
	}

	return b.String()
}

// ParseRecoveryKey implements [RecoveryKeeper]. It strips the hyphens and
// validates that the remainder decodes to exactly 32 bytes. Whitespace and
// case handling are the caller's responsibility.
func (r *recoveryKeeper) ParseRecoveryKey(display string) (string, error) {
	key := strings.ReplaceAll(display, "-", "")

	raw, err := codec.TextToBytes(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedRecoveryKey, err)
	}
	if len(raw) != recoveryKeyLen {
		return "", fmt.Errorf("%w: decoded to %d bytes, want %d", ErrMalformedRecoveryKey, len(raw), recoveryKeyLen)
	}

	return key, nil
}

// recoveryKeyBytes decodes a codec-encoded recovery key and enforces its
// length. A key of the wrong shape is an input error, not an authentication
// failure: the blob was never touched.
func recoveryKeyBytes(recoveryKey string) ([]byte, error) {
	key, err := codec.TextToBytes(recoveryKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecoveryKey, err)
	}
	if len(key) != recoveryKeyLen {
		return nil, fmt.Errorf("%w: decoded to %d bytes, want %d", ErrMalformedRecoveryKey, len(key), recoveryKeyLen)
	}

	return key, nil
}
