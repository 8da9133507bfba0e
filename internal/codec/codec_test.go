package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestBytesToText_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single zero byte", data: []byte{0}},
		{name: "ascii", data: []byte("hello vault")},
		{name: "full byte range", data: func() []byte {
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := BytesToText(tt.data)

			decoded, err := TextToBytes(text)
			if err != nil {
				t.Fatalf("TextToBytes error: %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Fatalf("round trip mismatch: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestTextToBytes_InvalidInput(t *testing.T) {
	for _, input := range []string{"not-base64!!", "%%%", "a"} {
		_, err := TextToBytes(input)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("TextToBytes(%q): expected ErrInvalidEncoding, got %v", input, err)
		}
	}
}
