package hashcash

import (
	"crypto/rand"
	"fmt"
)

// Sample mines a random challenge for timeoutSeconds and returns the score
// reached. It gives a rough measure of what a budget buys on this machine.
func Sample(m *Miner, timeoutSeconds int) (int, error) {
	var challenge Challenge
	if _, err := rand.Read(challenge[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrComputation, err)
	}

	key, err := m.Create(challenge, -1, timeoutSeconds)
	if err != nil {
		return 0, err
	}
	return m.Verify(key, challenge)
}
