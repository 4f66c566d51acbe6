package hexmap

import "math/rand"

// xorshiftSource is a xorshift64* generator seeded through splitmix64.
// It is used for terrain instead of the runtime's default source so the
// generated map for a given seed is documented and stable across Go
// releases.
type xorshiftSource struct {
	state uint64
}

// NewSource returns the terrain PRNG for seed.
func NewSource(seed int64) rand.Source64 {
	s := &xorshiftSource{}
	s.Seed(seed)
	return s
}

// NewRand wraps the terrain PRNG in a rand.Rand.
func NewRand(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Seed resets the state from seed with one splitmix64 round.
func (s *xorshiftSource) Seed(seed int64) {
	z := uint64(seed) + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	if z == 0 {
		// xorshift never leaves the all-zero state
		z = 0x9E3779B97F4A7C15
	}
	s.state = z
}

func (s *xorshiftSource) Uint64() uint64 {
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x
	return x * 0x2545F4914F6CDD1D
}

func (s *xorshiftSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
