package pulse

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/clock"
	"github.com/Zachkp/portfolio/internal/network"
)

var heroLayers = []int{4, 6, 8, 6, 4}

func newScheduler(t *testing.T, cfg Config) (*Scheduler, *clock.Manual, *[][]int) {
	t.Helper()
	m := clock.NewManual()
	var sets [][]int
	s, err := New(m, cfg, func(active []int) { sets = append(sets, active) })
	require.NoError(t, err)
	return s, m, &sets
}

func TestNew_Validation(t *testing.T) {
	m := clock.NewManual()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no layers", Config{}},
		{"single layer", Config{Layers: []int{3}}},
		{"negative interval", Config{Layers: heroLayers, Interval: -time.Second}},
		{"inverted ambient", Config{Layers: heroLayers, MinAmbient: 5, MaxAmbient: 2}},
		{"negative ambient", Config{Layers: heroLayers, MinAmbient: -1, MaxAmbient: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(m, tt.cfg, nil)
			assert.ErrorIs(t, err, ErrConfig)
			assert.Nil(t, s)
		})
	}
}

func TestTargetLayer(t *testing.T) {
	tests := []struct {
		char, layers, want int
	}{
		{0, 5, 0},
		{3, 5, 0},
		{4, 5, 1},
		{8, 5, 2},
		{19, 5, 4},
		{20, 5, 0},
		{27, 5, 1},
		{7, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetLayer(tt.char, tt.layers), "char %d", tt.char)
	}
}

func TestOnCharacter_LightsTargetBandOnly(t *testing.T) {
	s, _, sets := newScheduler(t, Config{Layers: heroLayers})
	layerOf := network.LayerOf(heroLayers)

	for char := 0; char < 40; char++ {
		s.OnCharacter(char, 0)
		target := TargetLayer(char, len(heroLayers))
		for _, id := range s.Active() {
			d := layerOf[id] - target
			assert.True(t, d >= -1 && d <= 1, "char %d lit node %d in layer %d", char, id, layerOf[id])
		}
	}
	assert.Len(t, *sets, 40)
}

func TestOnCharacter_ReplacesPreviousBand(t *testing.T) {
	s, _, _ := newScheduler(t, Config{Layers: heroLayers})
	layerOf := network.LayerOf(heroLayers)

	// char 0 lights layers 0-1, char 16 lights layers 3-4.
	s.OnCharacter(0, 0)
	require.NotEmpty(t, s.Active())
	s.OnCharacter(16, 0)
	for _, id := range s.Active() {
		assert.GreaterOrEqual(t, layerOf[id], 3)
	}
}

func TestOnCharacter_Deterministic(t *testing.T) {
	a, _, _ := newScheduler(t, Config{Layers: heroLayers})
	b, _, _ := newScheduler(t, Config{Layers: heroLayers})
	for char := 0; char < 25; char++ {
		a.OnCharacter(char, 1)
		b.OnCharacter(char, 3)
		assert.Equal(t, a.Active(), b.Active())
	}
}

func TestAmbient_TicksOnInterval(t *testing.T) {
	s, m, sets := newScheduler(t, Config{Layers: heroLayers, Interval: 300 * time.Millisecond, Seed: 7})
	s.Start()
	s.Start()

	m.Advance(299 * time.Millisecond)
	assert.Empty(t, *sets)

	m.Advance(time.Millisecond)
	require.Len(t, *sets, 1)
	n := len((*sets)[0])
	assert.True(t, n >= 1 && n <= DefaultMaxAmbient, "got %d ambient nodes", n)

	m.Advance(900 * time.Millisecond)
	assert.Len(t, *sets, 4)
}

func TestAmbient_DoesNotAccumulate(t *testing.T) {
	s, m, _ := newScheduler(t, Config{Layers: []int{50, 50}, Seed: 3})
	s.Start()
	for i := 0; i < 50; i++ {
		m.Advance(DefaultInterval)
		assert.LessOrEqual(t, len(s.Active()), DefaultMaxAmbient)
	}
}

func TestAmbient_UnionWithBand(t *testing.T) {
	s, m, _ := newScheduler(t, Config{Layers: heroLayers, Seed: 11})
	s.OnCharacter(8, 0)
	band := s.Active()

	s.Start()
	m.Advance(DefaultInterval)
	active := s.Active()
	for _, id := range band {
		assert.Contains(t, active, id)
		assert.True(t, s.IsActive(id))
	}
	assert.GreaterOrEqual(t, len(active), len(band))
}

func TestStop_TearsDownAmbientTimer(t *testing.T) {
	s, m, sets := newScheduler(t, Config{Layers: heroLayers, Seed: 5})
	s.Start()
	m.Advance(DefaultInterval)
	require.Len(t, *sets, 1)
	before := s.Active()

	s.Stop()
	assert.True(t, s.Stopped())
	assert.Equal(t, 0, m.Pending())

	m.Advance(10 * DefaultInterval)
	s.OnCharacter(4, 0)
	assert.Len(t, *sets, 1)
	assert.Equal(t, before, s.Active())

	s.Start()
	assert.Equal(t, 0, m.Pending())
}

func TestActive_Containment(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("active ordinals are valid node ordinals", prop.ForAll(
		func(seed uint64, chars []int) bool {
			m := clock.NewManual()
			ok := true
			var s *Scheduler
			s, err := New(m, Config{Layers: heroLayers, Seed: seed}, func(active []int) {
				for _, id := range active {
					if id < 0 || id >= s.NodeCount() {
						ok = false
					}
				}
			})
			if err != nil {
				return false
			}
			s.Start()
			for _, c := range chars {
				s.OnCharacter(c, 0)
				m.Advance(DefaultInterval / 2)
			}
			return ok
		},
		gen.UInt64(),
		gen.SliceOf(gen.IntRange(0, 60)),
	))

	properties.TestingRun(t)
}
