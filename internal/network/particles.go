package network

import (
	"time"

	"github.com/Zachkp/portfolio/internal/seeded"
)

// DefaultParticleCount is the number of floating particles behind the graph.
const DefaultParticleCount = 15

const saltParticle uint64 = 0x9a27

// Particle drifts linearly from (FromX, FromY) to (ToX, ToY) over Duration, repeating.
type Particle struct {
	ID       int           `json:"id"`
	FromX    float64       `json:"fromX"`
	FromY    float64       `json:"fromY"`
	ToX      float64       `json:"toX"`
	ToY      float64       `json:"toY"`
	Duration time.Duration `json:"duration"`
}

// Particles scatters count particles over the viewport. Positions are stable
// fractions of the viewport, so a resize rescales without reshuffling.
func Particles(count int, width, height float64) ([]Particle, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if count < 0 {
		count = 0
	}
	out := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		id := uint64(i)
		secs := 10 + 10*seeded.Float(saltParticle, id, 4)
		out = append(out, Particle{
			ID:       i,
			FromX:    seeded.Float(saltParticle, id, 0) * width,
			FromY:    seeded.Float(saltParticle, id, 1) * height,
			ToX:      seeded.Float(saltParticle, id, 2) * width,
			ToY:      seeded.Float(saltParticle, id, 3) * height,
			Duration: time.Duration(secs * float64(time.Second)),
		})
	}
	return out, nil
}
