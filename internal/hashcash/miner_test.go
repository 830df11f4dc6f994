package hashcash_test

import (
	"encoding/hex"
	"errors"
	"hash"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashcash/internal/hashcash"
	"hashcash/internal/mocks"
	"hashcash/internal/xorshift"
)

func sequentialState() [xorshift.StateWords]uint64 {
	var st [xorshift.StateWords]uint64
	for i := range st {
		st[i] = uint64(i + 1)
	}
	return st
}

func replaySource(state [xorshift.StateWords]uint64) func() (xorshift.Source, error) {
	return func() (xorshift.Source, error) {
		return xorshift.NewFromState(state), nil
	}
}

// steppingClock advances by step on every call, starting at the first call.
func steppingClock(step time.Duration) func() time.Time {
	now := time.Unix(1700000000, 0)
	first := true
	return func() time.Time {
		if first {
			first = false
			return now
		}
		now = now.Add(step)
		return now
	}
}

type recorder struct {
	candidates []hashcash.Candidate
}

func (r *recorder) observe(c hashcash.Candidate) {
	r.candidates = append(r.candidates, c)
}

func TestMiner_KnownTrace(t *testing.T) {
	rec := &recorder{}
	m := hashcash.NewMiner(
		hashcash.WithSource(replaySource(sequentialState())),
		hashcash.WithClock(steppingClock(time.Second)),
		hashcash.WithObserver(rec.observe),
	)

	// elapsed is 1s, 2s, 3s after each loop pass: three passes for a 2s budget
	res, err := m.Search(hashcash.Challenge{}, 2)
	require.NoError(t, err)

	wantPrefixes := []string{
		"0fe0cde20000400b148052f305a0c4ee2360e0ca0000400b2da029b605a0c4ee32402ec40000400b41203c9e05a0c4ee46c040ac0000400b5a40138905a0c4ee",
		"55a08e7d0000400b6ec0257105a0c4ee6920a1650000400b87e0fc3305a0c4ee7800ef5e0000400b9b600f1c05a0c4ee8c8001470000400bb480e60605a0c4ee",
		"c36074de0000400ba000d42805a0c4eeafe061000000400be120d0b105a0c4eee6c0d4bf0000400bcda0bdd305a0c4eed240c2e10000400b0ec1b98405a0c4ee",
		"092135790000400bfa40a7a605a0c4eef5a0229b0000400b3b61a32f05a0c4ee2c81955a0000400b27e1905105a0c4ee1801837c0000400b68018d026da111e6",
	}
	wantDigestHeads := []string{"693ed6cb3858d281", "cf4383c7798fc25f", "36b326e81f984f2d", "74117d7c1183c6dd"}

	require.Len(t, rec.candidates, len(wantPrefixes))
	for i, c := range rec.candidates {
		assert.Equalf(t, wantPrefixes[i], hex.EncodeToString(c.Prefix[:]), "prefix %d", i)
		assert.Equalf(t, wantDigestHeads[i], hex.EncodeToString(c.Digest[:8]), "digest %d", i)
	}

	assert.Equal(t, wantPrefixes[2], hex.EncodeToString(res.Key[:]))
	assert.Equal(t, int64(4), res.Candidates)
	assert.Equal(t, int64(1), res.Improvements)
	assert.Equal(t, 2, res.Bits())
	assert.Equal(t, 3*time.Second, res.Elapsed)

	bits, err := m.Verify(res.Key, hashcash.Challenge{})
	require.NoError(t, err)
	assert.Equal(t, 2, bits)
}

func TestMiner_DeadlineIsSubSecond(t *testing.T) {
	m := hashcash.NewMiner(
		hashcash.WithSource(replaySource(sequentialState())),
		hashcash.WithClock(steppingClock(600*time.Millisecond)),
	)

	// 0.6s does not exceed the 1s budget, 1.2s does
	res, err := m.Search(hashcash.Challenge{}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Candidates)
	assert.Equal(t, 1200*time.Millisecond, res.Elapsed)
}

func TestMiner_ZeroTimeoutEvaluatesOneCandidate(t *testing.T) {
	rec := &recorder{}
	m := hashcash.NewMiner(
		hashcash.WithSource(replaySource(sequentialState())),
		hashcash.WithObserver(rec.observe),
	)

	res, err := m.Search(hashcash.Challenge{}, 0)
	require.NoError(t, err)

	require.Len(t, rec.candidates, 1)
	assert.Equal(t, rec.candidates[0].Prefix, res.Key)
	assert.Equal(t, int64(1), res.Candidates)
	assert.Equal(t, int64(0), res.Improvements)
}

func TestMiner_NegativeTimeoutActsAsZero(t *testing.T) {
	m := hashcash.NewMiner()

	res, err := m.Search(hashcash.Challenge{}, -5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Candidates)
}

func TestMiner_MonotonicImprovement(t *testing.T) {
	rec := &recorder{}
	m := hashcash.NewMiner(
		hashcash.WithClock(steppingClock(time.Millisecond)),
		hashcash.WithObserver(rec.observe),
	)

	var challenge hashcash.Challenge
	for i := range challenge {
		challenge[i] = byte(i)
	}

	// 1s of fake time at 1ms per check: about a thousand candidates
	res, err := m.Search(challenge, 1)
	require.NoError(t, err)
	require.Equal(t, int64(len(rec.candidates)), res.Candidates)
	require.Greater(t, len(rec.candidates), 1)

	for _, c := range rec.candidates {
		assert.False(t, c.Digest.Less(res.Digest), "a produced digest is smaller than the result")
	}

	// the key is one of the evaluated prefixes
	found := false
	for _, c := range rec.candidates {
		if c.Prefix == res.Key {
			found = true
			assert.Equal(t, c.Digest, res.Digest)
		}
	}
	assert.True(t, found)

	d, err := hashcash.SHA512.Digest(res.Key, challenge)
	require.NoError(t, err)
	assert.Equal(t, res.Digest, d)
}

// constantSource emits the same word forever, so every prefix is identical.
type constantSource uint64

func (c constantSource) Next() uint64 { return uint64(c) }

func TestMiner_DuplicatePrefixKeepsIncumbent(t *testing.T) {
	rec := &recorder{}
	m := hashcash.NewMiner(
		hashcash.WithSource(func() (xorshift.Source, error) { return constantSource(0xdeadbeef), nil }),
		hashcash.WithClock(steppingClock(time.Second)),
		hashcash.WithObserver(rec.observe),
	)

	res, err := m.Search(hashcash.Challenge{}, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(5), res.Candidates)
	assert.Equal(t, int64(0), res.Improvements)
	assert.Equal(t, rec.candidates[0].Prefix, res.Key)
}

// zeroHash always produces an all-zero 64-byte digest.
type zeroHash struct{}

func (zeroHash) Write(p []byte) (int, error) { return len(p), nil }
func (zeroHash) Sum(b []byte) []byte         { return append(b, make([]byte, hashcash.Size)...) }
func (zeroHash) Reset()                      {}
func (zeroHash) Size() int                   { return hashcash.Size }
func (zeroHash) BlockSize() int              { return 128 }

func TestMiner_TiesKeepFirstFound(t *testing.T) {
	restore := hashcash.RegisterAlgorithm("zero", func() hash.Hash { return zeroHash{} })
	defer restore()

	rec := &recorder{}
	m := hashcash.NewMiner(
		hashcash.WithAlgorithm("zero"),
		hashcash.WithSource(replaySource(sequentialState())),
		hashcash.WithClock(steppingClock(time.Second)),
		hashcash.WithObserver(rec.observe),
	)

	res, err := m.Search(hashcash.Challenge{}, 2)
	require.NoError(t, err)

	require.Len(t, rec.candidates, 4)
	assert.NotEqual(t, rec.candidates[0].Prefix, rec.candidates[1].Prefix)
	assert.Equal(t, rec.candidates[0].Prefix, res.Key)
	assert.Equal(t, int64(0), res.Improvements)
	assert.Equal(t, 512, res.Bits())
}

func TestMiner_SeedFailureIsComputationFailure(t *testing.T) {
	m := hashcash.NewMiner(hashcash.WithSource(func() (xorshift.Source, error) {
		return nil, errors.New("entropy unavailable")
	}))

	_, err := m.Create(hashcash.Challenge{}, 0, 1)
	assert.ErrorIs(t, err, hashcash.ErrComputation)
}

func TestMiner_UnknownAlgorithmFailsSearch(t *testing.T) {
	m := hashcash.NewMiner(hashcash.WithAlgorithm("whirlpool"))

	_, err := m.Search(hashcash.Challenge{}, 0)
	assert.ErrorIs(t, err, hashcash.ErrComputation)

	_, err = m.Verify(hashcash.Key{}, hashcash.Challenge{})
	assert.ErrorIs(t, err, hashcash.ErrComputation)
}

func TestMiner_VerifyIsDeterministic(t *testing.T) {
	m := hashcash.NewMiner()

	var key hashcash.Key
	var challenge hashcash.Challenge
	key[63] = 0x07
	challenge[0] = 0x42

	first, err := m.Verify(key, challenge)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := m.Verify(key, challenge)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.LessOrEqual(t, first, 512)
}

func TestMiner_ReportsToStatsAndLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mocks.NewMockMetricsCollector(ctrl)
	log := mocks.NewMockLogger(ctrl)

	stats.EXPECT().AddSearch(int64(1), int64(0))
	stats.EXPECT().IncVerifications()
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	m := hashcash.NewMiner(hashcash.WithStats(stats), hashcash.WithLogger(log))

	key, err := m.Create(hashcash.Challenge{}, 256, 0)
	require.NoError(t, err)
	_, err = m.Verify(key, hashcash.Challenge{})
	require.NoError(t, err)
}

func TestMiner_CreateIgnoresLimit(t *testing.T) {
	var keys []hashcash.Key
	for _, limit := range []int{-1, 0, 1, 512, 100000} {
		m := hashcash.NewMiner(hashcash.WithSource(replaySource(sequentialState())))
		key, err := m.Create(hashcash.Challenge{}, limit, 0)
		require.NoError(t, err)
		keys = append(keys, key)
	}
	for _, k := range keys[1:] {
		assert.Equal(t, keys[0], k)
	}
}

func TestMiner_CreateThenVerifyWithRealClock(t *testing.T) {
	if testing.Short() {
		t.Skip("runs for over a second")
	}

	m := hashcash.NewMiner()
	start := time.Now()
	res, err := m.Search(hashcash.Challenge{}, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)

	bits, err := m.Verify(res.Key, hashcash.Challenge{})
	require.NoError(t, err)
	assert.Equal(t, res.Bits(), bits)
}

func TestSample(t *testing.T) {
	m := hashcash.NewMiner(hashcash.WithAlgorithm(hashcash.SHA3_512))

	bits, err := hashcash.Sample(m, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bits, 0)
	assert.LessOrEqual(t, bits, 512)
}
