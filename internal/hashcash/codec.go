package hashcash

import (
	"hashcash/internal/hexcodec"
)

// DecodeChallenge parses a hex challenge of exactly Size bytes.
func DecodeChallenge(s string) (Challenge, error) {
	var c Challenge
	b, err := hexcodec.DecodeFixed(s, Size)
	if err != nil {
		return c, err
	}
	copy(c[:], b)
	return c, nil
}

// DecodeKey parses a hex key of exactly Size bytes.
func DecodeKey(s string) (Key, error) {
	var k Key
	b, err := hexcodec.DecodeFixed(s, Size)
	if err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

func (k Key) String() string       { return hexcodec.Encode(k[:]) }
func (c Challenge) String() string { return hexcodec.Encode(c[:]) }
func (d Digest) String() string    { return hexcodec.Encode(d[:]) }
