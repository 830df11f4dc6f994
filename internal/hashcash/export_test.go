package hashcash

import "hash"

// RegisterAlgorithm installs a hash constructor for the duration of a test.
func RegisterAlgorithm(a Algorithm, fn func() hash.Hash) (restore func()) {
	prev, had := algorithms[a]
	algorithms[a] = fn
	return func() {
		if had {
			algorithms[a] = prev
		} else {
			delete(algorithms, a)
		}
	}
}
