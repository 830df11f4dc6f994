package hashcash

import (
	"bytes"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"math/bits"

	"golang.org/x/crypto/sha3"
)

// Size is the length in bytes of challenges, keys and digests.
const Size = 64

var (
	// ErrComputation wraps any failure of the digest computation or of
	// generator seeding. It is terminal for the call that hit it.
	ErrComputation = errors.New("hashcash computation failed")
	// ErrUnknownAlgorithm is returned by ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// Challenge is the value a proof is computed against.
type Challenge [Size]byte

// Key is a prefix that, hashed in front of a challenge, scores a proof.
type Key [Size]byte

// Digest is a hash output compared as a big-endian unsigned integer.
type Digest [Size]byte

// Algorithm names a 512-bit hash function.
type Algorithm string

const (
	SHA512   Algorithm = "sha512"
	SHA3_512 Algorithm = "sha3-512"
)

var algorithms = map[Algorithm]func() hash.Hash{
	SHA512:   sha512.New,
	SHA3_512: sha3.New512,
}

// ParseAlgorithm maps a configuration name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(name)
	if _, ok := algorithms[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Digest computes H(key || challenge).
func (a Algorithm) Digest(key Key, challenge Challenge) (Digest, error) {
	h, err := a.newHasher()
	if err != nil {
		return Digest{}, err
	}
	return h.sum(&key, &challenge)
}

// Verify returns the number of leading zero bits of H(key || challenge)
// under a.
func (a Algorithm) Verify(key Key, challenge Challenge) (int, error) {
	d, err := a.Digest(key, challenge)
	if err != nil {
		return 0, err
	}
	return d.LeadingZeroBits(), nil
}

// Verify scores key against challenge with SHA-512.
func Verify(key Key, challenge Challenge) (int, error) {
	return SHA512.Verify(key, challenge)
}

func (a Algorithm) newHasher() (*hasher, error) {
	newHash, ok := algorithms[a]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", ErrComputation, ErrUnknownAlgorithm, string(a))
	}
	h := newHash()
	if h.Size() != Size {
		return nil, fmt.Errorf("%w: %s produces %d-byte digests, want %d", ErrComputation, a, h.Size(), Size)
	}
	return &hasher{h: h}, nil
}

// hasher reuses one hash.Hash across the candidates of a search.
type hasher struct {
	h hash.Hash
}

func (s *hasher) sum(prefix *Key, challenge *Challenge) (Digest, error) {
	s.h.Reset()
	if _, err := s.h.Write(prefix[:]); err != nil {
		return Digest{}, fmt.Errorf("%w: %w", ErrComputation, err)
	}
	if _, err := s.h.Write(challenge[:]); err != nil {
		return Digest{}, fmt.Errorf("%w: %w", ErrComputation, err)
	}

	out := s.h.Sum(nil)
	if len(out) != Size {
		return Digest{}, fmt.Errorf("%w: got %d-byte digest", ErrComputation, len(out))
	}
	var d Digest
	copy(d[:], out)
	return d, nil
}

// Less reports whether d is strictly smaller than o, comparing bytes
// unsigned from index 0.
func (d Digest) Less(o Digest) bool {
	return bytes.Compare(d[:], o[:]) < 0
}

// LeadingZeroBits counts zero bits from the most significant bit of byte 0.
// The result is in [0, 512].
func (d Digest) LeadingZeroBits() int {
	n := 0
	for _, b := range d {
		if b != 0 {
			return n + bits.LeadingZeros8(b)
		}
		n += 8
	}
	return n
}
