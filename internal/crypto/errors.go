package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned whenever an authenticated
	// decryption does not produce a valid plaintext: wrong password, wrong
	// recovery key, wrong salt, or tampered ciphertext. The causes are
	// deliberately not distinguishable, neither by message nor by error
	// identity, because telling them apart would hand an attacker an oracle.
	ErrAuthenticationFailed = errors.New("authentication failed: invalid key or ciphertext")

	// ErrMalformedRecoveryKey is returned when user-entered recovery-key text
	// does not parse back into a 32-byte key. Unlike authentication failures
	// this is a plain input-validation error and is safe to surface precisely.
	ErrMalformedRecoveryKey = errors.New("malformed recovery key")
)
