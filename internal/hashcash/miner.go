package hashcash

import (
	"fmt"
	"time"

	"hashcash/internal/xorshift"
)

// Logger is the subset of the application logger the miner writes to.
type Logger interface {
	Debug(format string, v ...interface{})
}

// Stats receives per-call counters.
type Stats interface {
	AddSearch(candidates, improvements int64)
	IncVerifications()
}

// Candidate is one evaluated prefix and its digest.
type Candidate struct {
	Prefix Key
	Digest Digest
}

// Result describes a finished search.
type Result struct {
	Key    Key
	Digest Digest
	// Candidates counts every evaluated prefix, the initial one included.
	Candidates int64
	// Improvements counts replacements of the incumbent after the initial candidate.
	Improvements int64
	// Elapsed is the time seen at the last deadline check.
	Elapsed time.Duration
}

// Bits returns the score of the result's key.
func (r Result) Bits() int {
	return r.Digest.LeadingZeroBits()
}

// Miner runs searches and verifications. A Miner holds no per-search state
// and may be shared between goroutines.
type Miner struct {
	algorithm Algorithm
	newSource func() (xorshift.Source, error)
	now       func() time.Time
	logger    Logger
	stats     Stats
	observe   func(Candidate)
}

type Option func(*Miner)

// WithAlgorithm selects the hash function. Defaults to SHA512.
func WithAlgorithm(a Algorithm) Option {
	return func(m *Miner) { m.algorithm = a }
}

// WithSource replaces the securely seeded generator, e.g. to replay a
// recorded seed.
func WithSource(newSource func() (xorshift.Source, error)) Option {
	return func(m *Miner) { m.newSource = newSource }
}

// WithClock replaces time.Now for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(m *Miner) { m.now = now }
}

func WithLogger(l Logger) Option {
	return func(m *Miner) { m.logger = l }
}

func WithStats(s Stats) Option {
	return func(m *Miner) { m.stats = s }
}

// WithObserver is called with every evaluated candidate, in order.
func WithObserver(fn func(Candidate)) Option {
	return func(m *Miner) { m.observe = fn }
}

// NewMiner returns a SHA-512 miner seeded from crypto/rand.
func NewMiner(opts ...Option) *Miner {
	m := &Miner{
		algorithm: SHA512,
		newSource: func() (xorshift.Source, error) { return xorshift.New() },
		now:       time.Now,
		logger:    nopLogger{},
		stats:     nopStats{},
		observe:   func(Candidate) {},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Algorithm returns the configured hash function.
func (m *Miner) Algorithm() Algorithm {
	return m.algorithm
}

// Create searches for timeoutSeconds and returns the best key found.
// limit is accepted for compatibility and does not affect the search.
func (m *Miner) Create(challenge Challenge, limit, timeoutSeconds int) (Key, error) {
	m.logger.Debug("create: limit=%d timeout=%ds (limit is not used by the search)", limit, timeoutSeconds)

	res, err := m.Search(challenge, timeoutSeconds)
	if err != nil {
		return Key{}, err
	}
	return res.Key, nil
}

// Search keeps the candidate with the smallest digest seen until more than
// timeoutSeconds have elapsed. Ties keep the earlier candidate. With a
// timeout of zero or less only the initial candidate is evaluated.
func (m *Miner) Search(challenge Challenge, timeoutSeconds int) (Result, error) {
	src, err := m.newSource()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrComputation, err)
	}
	h, err := m.algorithm.newHasher()
	if err != nil {
		return Result{}, err
	}

	start := m.now()

	var res Result
	var cand Candidate
	if err := m.evaluate(src, h, &challenge, &cand); err != nil {
		return Result{}, err
	}
	res.Key, res.Digest = cand.Prefix, cand.Digest
	res.Candidates = 1

	if timeoutSeconds > 0 {
		timeout := time.Duration(timeoutSeconds) * time.Second
		for {
			if err := m.evaluate(src, h, &challenge, &cand); err != nil {
				return Result{}, err
			}
			res.Candidates++

			if cand.Digest.Less(res.Digest) {
				res.Key, res.Digest = cand.Prefix, cand.Digest
				res.Improvements++
			}

			res.Elapsed = m.now().Sub(start)
			if res.Elapsed > timeout {
				break
			}
		}
	}

	m.stats.AddSearch(res.Candidates, res.Improvements)
	m.logger.Debug("search finished: candidates=%d improvements=%d bits=%d elapsed=%s",
		res.Candidates, res.Improvements, res.Bits(), res.Elapsed)
	return res, nil
}

func (m *Miner) evaluate(src xorshift.Source, h *hasher, challenge *Challenge, cand *Candidate) error {
	xorshift.Fill(src, cand.Prefix[:])
	d, err := h.sum(&cand.Prefix, challenge)
	if err != nil {
		return err
	}
	cand.Digest = d
	m.observe(*cand)
	return nil
}

// Verify returns the number of leading zero bits of H(key || challenge).
// It applies no threshold.
func (m *Miner) Verify(key Key, challenge Challenge) (int, error) {
	bits, err := m.algorithm.Verify(key, challenge)
	if err != nil {
		return 0, err
	}
	m.stats.IncVerifications()
	return bits, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

type nopStats struct{}

func (nopStats) AddSearch(int64, int64) {}
func (nopStats) IncVerifications()      {}
