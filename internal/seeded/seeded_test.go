package seeded

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestFloat_Deterministic(t *testing.T) {
	assert.Equal(t, Float(1, 2, 3), Float(1, 2, 3))
	assert.NotEqual(t, Float(1, 2, 3), Float(1, 3, 2))
	assert.NotEqual(t, Mix(0), Mix(1))
}

func TestFloat_Range(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("draws stay in [0,1)", prop.ForAll(
		func(a, b uint64) bool {
			v := Float(a, b)
			return v >= 0 && v < 1
		},
		gen.UInt64(),
		gen.UInt64(),
	))
	properties.TestingRun(t)
}

func TestFloat_RoughlyUniform(t *testing.T) {
	below := 0
	const n = 10000
	for i := uint64(0); i < n; i++ {
		if Float(7, i) < 0.3 {
			below++
		}
	}
	assert.InDelta(t, 0.3, float64(below)/n, 0.03)
}

func TestStream_Reproducible(t *testing.T) {
	a, b := NewStream(42), NewStream(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestStream_ZeroSeed(t *testing.T) {
	s := NewStream(0)
	assert.NotZero(t, s.Next())
}

func TestStream_Intn(t *testing.T) {
	s := NewStream(9)
	assert.Equal(t, 0, s.Intn(0))
	assert.Equal(t, 0, s.Intn(-3))
	for i := 0; i < 1000; i++ {
		v := s.Intn(5)
		assert.True(t, v >= 0 && v < 5)
		f := s.Float()
		assert.True(t, f >= 0 && f < 1)
	}
}
