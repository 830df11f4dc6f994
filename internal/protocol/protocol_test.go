package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse("VERIFY aa bb\n")
	require.NoError(t, err)
	assert.Equal(t, CmdVerify, m.Command)
	assert.Equal(t, []string{"aa", "bb"}, m.Args)
	assert.Equal(t, "VERIFY aa bb", m.String())

	_, err = Parse("  \r\n")
	assert.Error(t, err)
}

func TestParseCreate(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    CreateRequest
		wantErr bool
	}{
		{name: "Valid", line: "CREATE abcd 256 5", want: CreateRequest{Challenge: "abcd", Limit: 256, TimeoutSeconds: 5}},
		{name: "Negative limit is accepted", line: "CREATE abcd -1 0", want: CreateRequest{Challenge: "abcd", Limit: -1}},
		{name: "Missing timeout", line: "CREATE abcd 256", wantErr: true},
		{name: "Non numeric limit", line: "CREATE abcd x 5", wantErr: true},
		{name: "Negative timeout", line: "CREATE abcd 1 -5", wantErr: true},
		{name: "Wrong command", line: "VERIFY abcd 1 5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.line)
			require.NoError(t, err)
			got, err := ParseCreate(m)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVerify(t *testing.T) {
	m, _ := Parse("VERIFY k c")
	req, err := ParseVerify(m)
	require.NoError(t, err)
	assert.Equal(t, VerifyRequest{Key: "k", Challenge: "c"}, req)

	m, _ = Parse("VERIFY k")
	_, err = ParseVerify(m)
	assert.Error(t, err)
}

func TestConstructors(t *testing.T) {
	create := NewCreate("00", 3, 7)
	assert.Equal(t, "CREATE 00 3 7", create.String())
	verify := NewVerify("aa", "bb")
	assert.Equal(t, "VERIFY aa bb", verify.String())
	key := NewKey("ff")
	assert.Equal(t, "KEY ff", key.String())
	bits := NewBits(12)
	assert.Equal(t, "BITS 12", bits.String())
	e := NewError("size mismatch:\nwant 64")
	assert.Equal(t, "ERROR size mismatch: want 64", e.String())
}
