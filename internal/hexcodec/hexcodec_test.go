package hexcodec

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr error
	}{
		{name: "Empty", input: "", want: []byte{}},
		{name: "Lowercase", input: "0aff", want: []byte{0x0a, 0xff}},
		{name: "Uppercase", input: "0AFF", want: []byte{0x0a, 0xff}},
		{name: "Mixed case", input: "aBcD", want: []byte{0xab, 0xcd}},
		{name: "Odd length is left padded", input: "abc", want: []byte{0x0a, 0xbc}},
		{name: "Single nibble", input: "f", want: []byte{0x0f}},
		{name: "Invalid character", input: "zz", wantErr: ErrInputFormat},
		{name: "Invalid after padding", input: "0g1", wantErr: ErrInputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeFixed(t *testing.T) {
	_, err := DecodeFixed(strings.Repeat("00", 63), 64)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = DecodeFixed(strings.Repeat("00", 65), 64)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = DecodeFixed(strings.Repeat("xy", 64), 64)
	assert.ErrorIs(t, err, ErrInputFormat)

	b, err := DecodeFixed(strings.Repeat("01", 64), 64)
	require.NoError(t, err)
	assert.Len(t, b, 64)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "00ff10ab", Encode([]byte{0x00, 0xff, 0x10, 0xab}))
	assert.Equal(t, "", Encode(nil))
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		buf := make([]byte, 64)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		got, err := Decode(Encode(buf))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(buf, got))
	}
}
