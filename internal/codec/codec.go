// Package codec implements the byte-array ⟷ text conversion used by every
// other component of the encryption subsystem. All binary material that
// leaves the process (salts, keys, IV‖ciphertext blobs) travels through it.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned by [TextToBytes] when the input is not
// well-formed base64. It is an input-validation error with no security
// implication, so callers may surface it precisely.
var ErrInvalidEncoding = errors.New("invalid base64 encoding")

// BytesToText encodes an arbitrary byte sequence as base64 (standard
// encoding). It is total: every byte sequence has a text form, and
// [TextToBytes] recovers it exactly.
func BytesToText(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// TextToBytes decodes text produced by [BytesToText] back into bytes.
// Malformed input fails with an error wrapping [ErrInvalidEncoding].
func TextToBytes(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	return data, nil
}
