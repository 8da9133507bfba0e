package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/legacykeep/legacy-vault/internal/codec"
	"golang.org/x/crypto/pbkdf2"
)

// pinKeeper is the private implementation of [PinKeeper].
//
// A PIN is short and guessable, so it goes through the same 100 000-round
// PBKDF2 stretch as the account password before it becomes key material.
// The wrapped value is the account password, mirroring [RecoveryKeeper]:
// the relative recovers the password, then unlocks the vault with it.
type pinKeeper struct{}

// NewPinKeeper constructs a [PinKeeper].
func NewPinKeeper() PinKeeper {
	return &pinKeeper{}
}

// GeneratePinSalt implements [PinKeeper]. Each grant gets its own salt so
// that equal PINs across grants derive different keys.
func (p *pinKeeper) GeneratePinSalt() (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate pin salt: %w", err)
	}

	return codec.BytesToText(salt), nil
}

// WrapPassword implements [PinKeeper].
func (p *pinKeeper) WrapPassword(password, pin, pinSalt string) (string, error) {
	key, err := derivePinKey(pin, pinSalt)
	if err != nil {
		return "", err
	}

	return seal([]byte(password), key)
}

// UnwrapPassword implements [PinKeeper]. A wrong PIN produces a wrong key and
// surfaces as [ErrAuthenticationFailed] from the GCM tag check.
func (p *pinKeeper) UnwrapPassword(blob, pin, pinSalt string) (string, error) {
	key, err := derivePinKey(pin, pinSalt)
	if err != nil {
		return "", err
	}

	password, err := open(blob, key)
	if err != nil {
		return "", err
	}

	return string(password), nil
}

// derivePinKey stretches the PIN into a 256-bit key with the same PBKDF2
// parameters as the password engine.
func derivePinKey(pin, pinSalt string) ([]byte, error) {
	saltBytes, err := codec.TextToBytes(pinSalt)
	if err != nil {
		return nil, fmt.Errorf("decode pin salt: %w", err)
	}

	return pbkdf2.Key([]byte(pin), saltBytes, kdfIterations, keyLen, sha256.New), nil
}
