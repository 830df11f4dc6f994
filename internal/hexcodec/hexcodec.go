// Package hexcodec converts between hex text and raw buffers at the command
// boundary.
package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrInputFormat reports a character outside [0-9a-fA-F].
	ErrInputFormat = errors.New("invalid hex input")
	// ErrSizeMismatch reports a decoded buffer of the wrong length.
	ErrSizeMismatch = errors.New("size mismatch")
)

// Decode parses case-insensitive hex. An odd-length string is read as if
// it had one leading '0'.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInputFormat, byte(invalid))
		}
		return nil, fmt.Errorf("%w: %v", ErrInputFormat, err)
	}
	return b, nil
}

// DecodeFixed decodes s and requires exactly size bytes.
func DecodeFixed(s string, size int) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrSizeMismatch, size, len(b))
	}
	return b, nil
}

// Encode returns lowercase hex, two digits per byte.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}
