// Package pulse decides which network nodes glow. Two signals feed it: typing
// progress, which lights a band of layers that sweeps across the graph, and an
// ambient timer that sprinkles a few random nodes.
package pulse

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Zachkp/portfolio/internal/clock"
	"github.com/Zachkp/portfolio/internal/network"
	"github.com/Zachkp/portfolio/internal/seeded"
)

var ErrConfig = errors.New("pulse: invalid configuration")

const (
	// CharSpan is how many typed characters it takes to sweep every layer once.
	CharSpan = 20
	// KeepProbability is the chance a node in the lit band is active.
	KeepProbability = 0.6

	DefaultInterval   = 300 * time.Millisecond
	DefaultMinAmbient = 3
	DefaultMaxAmbient = 7
)

const saltKeep uint64 = 0x6e3b

// Config describes the graph the scheduler activates and how the ambient
// signal behaves.
type Config struct {
	Layers     []int
	Interval   time.Duration
	MinAmbient int
	MaxAmbient int
	Seed       uint64
}

// Defaults fills zero fields.
func (c Config) Defaults() Config {
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.MinAmbient == 0 && c.MaxAmbient == 0 {
		c.MinAmbient, c.MaxAmbient = DefaultMinAmbient, DefaultMaxAmbient
	}
	return c
}

func (c Config) validate() error {
	if err := network.ValidateLayers(c.Layers); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval %v", ErrConfig, c.Interval)
	}
	if c.MinAmbient < 0 || c.MaxAmbient < c.MinAmbient {
		return fmt.Errorf("%w: ambient count %d..%d", ErrConfig, c.MinAmbient, c.MaxAmbient)
	}
	return nil
}

// Listener receives the sorted active set after every recomputation.
type Listener func(active []int)

// Scheduler owns the activation set. The active set is the union of the latest
// typing band and the latest ambient draw; each signal replaces its own part
// when it fires, so nothing accumulates across ticks.
//
// All methods must be called from the goroutine the clock.Scheduler runs
// callbacks on.
type Scheduler struct {
	sched    clock.Scheduler
	cfg      Config
	layerOf  []int
	layers   int
	listener Listener
	rng      *seeded.Stream

	band    map[int]bool
	ambient map[int]bool
	active  []int

	pending clock.Handle
	running bool
	stopped bool
}

// New validates cfg (after Defaults) and returns an idle scheduler with an
// empty active set. listener may be nil.
func New(sched clock.Scheduler, cfg Config, listener Listener) (*Scheduler, error) {
	cfg = cfg.Defaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.Layers = append([]int(nil), cfg.Layers...)
	return &Scheduler{
		sched:    sched,
		cfg:      cfg,
		layerOf:  network.LayerOf(cfg.Layers),
		layers:   len(cfg.Layers),
		listener: listener,
		rng:      seeded.NewStream(cfg.Seed),
		band:     map[int]bool{},
		ambient:  map[int]bool{},
	}, nil
}

// Start arms the ambient timer. Starting twice, or after Stop, does nothing.
func (s *Scheduler) Start() {
	if s.running || s.stopped {
		return
	}
	s.running = true
	s.pending = s.sched.After(s.cfg.Interval, s.tick)
}

// Stop cancels the ambient timer. The active set is frozen from then on.
func (s *Scheduler) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.running = false
	s.sched.Cancel(s.pending)
	s.pending = 0
}

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool { return s.stopped }

// NodeCount is the number of node ordinals the scheduler draws from.
func (s *Scheduler) NodeCount() int { return len(s.layerOf) }

// TargetLayer maps a character index to the layer at the center of the lit band.
func TargetLayer(charIndex, layerCount int) int {
	if layerCount <= 0 {
		return 0
	}
	t := (charIndex * layerCount / CharSpan) % layerCount
	if t < 0 {
		t += layerCount
	}
	return t
}

// OnCharacter recomputes the typing band. Its signature matches typing.Listener
// so it can be wired straight to an animator.
func (s *Scheduler) OnCharacter(charIndex, _ int) {
	if s.stopped {
		return
	}
	target := TargetLayer(charIndex, s.layers)
	band := make(map[int]bool)
	for id, layer := range s.layerOf {
		if layer < target-1 || layer > target+1 {
			continue
		}
		if seeded.Float(saltKeep, uint64(charIndex), uint64(id)) < KeepProbability {
			band[id] = true
		}
	}
	s.band = band
	s.recompute()
}

// Active returns the sorted active ordinals.
func (s *Scheduler) Active() []int {
	return append([]int(nil), s.active...)
}

// IsActive reports whether ordinal id is active.
func (s *Scheduler) IsActive(id int) bool {
	return s.band[id] || s.ambient[id]
}

func (s *Scheduler) tick() {
	if s.stopped {
		return
	}
	s.pending = 0

	n := len(s.layerOf)
	count := s.cfg.MinAmbient + s.rng.Intn(s.cfg.MaxAmbient-s.cfg.MinAmbient+1)
	ambient := make(map[int]bool, count)
	for i := 0; i < count; i++ {
		ambient[s.rng.Intn(n)] = true
	}
	s.ambient = ambient
	s.recompute()

	if !s.stopped {
		s.pending = s.sched.After(s.cfg.Interval, s.tick)
	}
}

func (s *Scheduler) recompute() {
	active := make([]int, 0, len(s.band)+len(s.ambient))
	for id := range s.band {
		active = append(active, id)
	}
	for id := range s.ambient {
		if !s.band[id] {
			active = append(active, id)
		}
	}
	sort.Ints(active)
	s.active = active
	if s.listener != nil {
		s.listener(s.Active())
	}
}
