package xorshift

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// StateWords is the number of 64-bit words in the generator state.
const StateWords = 64

const multiplier uint64 = 8372773778140471301

// Xorshift is a xorshift1024*-style generator over a circular 64-word state.
// It is not safe for concurrent use; every search owns its own instance.
type Xorshift struct {
	state [StateWords]uint64
	p     int
}

// New seeds a generator with 512 bytes from the system CSPRNG.
func New() (*Xorshift, error) {
	var seed [StateWords * 8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to seed generator: %w", err)
	}

	x := &Xorshift{}
	for i := range x.state {
		x.state[i] = binary.LittleEndian.Uint64(seed[i*8:])
	}
	return x, nil
}

// NewFromState builds a generator from a known state. Used to replay
// recorded traces in tests.
func NewFromState(state [StateWords]uint64) *Xorshift {
	return &Xorshift{state: state}
}

// Next returns the next 64-bit word.
func (x *Xorshift) Next() uint64 {
	s0 := x.state[x.p]
	x.p = (x.p + 1) & (StateWords - 1)
	s1 := x.state[x.p]

	s1 ^= s1 << 25
	s1 ^= s1 >> 3
	s0 ^= s0 >> 49

	x.state[x.p] = s0 ^ s1
	return x.state[x.p] * multiplier
}

// Source produces pseudo-random 64-bit words.
type Source interface {
	Next() uint64
}

// Fill writes one word from src per 4 bytes of buf, keeping only the low
// 32 bits of each word, stored little-endian in call order. A 64-byte
// buffer consumes 16 words.
func Fill(src Source, buf []byte) {
	for i := 0; i+4 <= len(buf); i += 4 {
		binary.LittleEndian.PutUint32(buf[i:], uint32(src.Next()))
	}
}
