// Package seeded holds the deterministic pseudo-random draws used for visual variety.
// Every draw is a pure function of its integer inputs; nothing here reads global
// random state or the wall clock.
package seeded

// Mix folds its inputs into one well-distributed 64-bit value (splitmix64 finalizer).
func Mix(keys ...uint64) uint64 {
	h := uint64(0x9e3779b97f4a7c15)
	for _, k := range keys {
		h ^= k + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
		h = finalize(h)
	}
	return h
}

// Float maps its inputs to a value in [0, 1).
func Float(keys ...uint64) float64 {
	return toUnit(Mix(keys...))
}

func finalize(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func toUnit(v uint64) float64 {
	return float64(v>>11) / (1 << 53)
}

// Stream is a seeded xorshift generator for draws that need a sequence
// rather than a keyed value.
type Stream struct {
	state uint64
}

// NewStream returns a stream positioned by seed. A zero seed is remapped
// since xorshift never leaves the zero state.
func NewStream(seed uint64) *Stream {
	s := finalize(seed)
	if s == 0 {
		s = 1
	}
	return &Stream{state: s}
}

// Next returns the next raw value.
func (s *Stream) Next() uint64 {
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.state = x
	return x
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() % uint64(n))
}

// Float returns a value in [0, 1).
func (s *Stream) Float() float64 {
	return toUnit(s.Next())
}
