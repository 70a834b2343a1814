// Package randutil centralises how games derive their random sources so
// seeded runs replay exactly.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. Every game
// owns one of these; nothing in the module touches the global source.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Between returns a uniformly distributed int in the closed range [lo, hi].
// Reversed bounds are swapped; equal bounds return lo without consuming
// randomness.
func Between(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Reader adapts rng to io.Reader so byte-oriented consumers (game IDs) draw
// from the same seeded stream.
type Reader struct {
	rng *rand.Rand
}

// NewReader wraps rng.
func NewReader(rng *rand.Rand) *Reader {
	return &Reader{rng: rng}
}

// Read fills p with pseudo-random bytes. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
