// Package hero wires the typewriter and the network pulse together the way the
// landing page shows them: every typed or deleted character moves the lit band,
// and the ambient timer keeps the graph twinkling in between.
package hero

import (
	"sync"

	"github.com/Zachkp/portfolio/internal/clock"
	"github.com/Zachkp/portfolio/internal/network"
	"github.com/Zachkp/portfolio/internal/pulse"
	"github.com/Zachkp/portfolio/internal/typing"
)

// Config is everything a session needs at construction.
type Config struct {
	Typing typing.Config
	Pulse  pulse.Config
}

// DefaultConfig is the landing page's hero.
func DefaultConfig() Config {
	return Config{
		Typing: typing.Config{
			Phrases: []string{
				"Machine Learning Engineer",
				"Full Stack Developer",
				"Data Scientist",
				"AI Researcher",
			},
			TypingInterval:   typing.DefaultTypingInterval,
			DeletingInterval: typing.DefaultDeletingInterval,
			PauseDuration:    typing.DefaultPauseDuration,
		},
		Pulse: pulse.Config{
			Layers:     append([]int(nil), network.DefaultLayers...),
			Interval:   pulse.DefaultInterval,
			MinAmbient: pulse.DefaultMinAmbient,
			MaxAmbient: pulse.DefaultMaxAmbient,
		},
	}
}

// Frame is the visible hero state after one change.
type Frame struct {
	Seq         uint64 `json:"seq"`
	Text        string `json:"text"`
	Phrase      string `json:"phrase"`
	CharIndex   int    `json:"charIndex"`
	PhraseIndex int    `json:"phraseIndex"`
	Phase       string `json:"phase"`
	Active      []int  `json:"active"`
}

// Session owns one animator and one pulse scheduler on a shared clock.Scheduler.
type Session struct {
	animator *typing.Animator
	pulse    *pulse.Scheduler
	onFrame  func(Frame)

	mu     sync.RWMutex
	latest Frame
	seq    uint64
}

// NewSession builds both components. onFrame runs on the scheduler's goroutine
// after every change and may be nil.
func NewSession(sched clock.Scheduler, cfg Config, onFrame func(Frame)) (*Session, error) {
	s := &Session{onFrame: onFrame}

	p, err := pulse.New(sched, cfg.Pulse, func([]int) { s.publish() })
	if err != nil {
		return nil, err
	}
	s.pulse = p

	a, err := typing.New(sched, cfg.Typing, func(charIndex, phraseIndex int) {
		// The pulse listener publishes the frame.
		p.OnCharacter(charIndex, phraseIndex)
	})
	if err != nil {
		return nil, err
	}
	s.animator = a
	s.latest = s.frame()
	return s, nil
}

// Start begins animating.
func (s *Session) Start() {
	s.animator.Start()
	s.pulse.Start()
}

// Close stops both components; no frame is published afterwards.
func (s *Session) Close() {
	s.animator.Stop()
	s.pulse.Stop()
}

// Snapshot returns the latest frame. Safe from any goroutine.
func (s *Session) Snapshot() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.latest
	f.Active = append([]int{}, f.Active...)
	return f
}

// NodeCount is the number of node ordinals the pulse draws from.
func (s *Session) NodeCount() int {
	return s.pulse.NodeCount()
}

func (s *Session) frame() Frame {
	active := s.pulse.Active()
	if active == nil {
		active = []int{}
	}
	return Frame{
		Seq:         s.seq,
		Text:        s.animator.Text(),
		Phrase:      s.animator.Phrase(),
		CharIndex:   s.animator.CharIndex(),
		PhraseIndex: s.animator.PhraseIndex(),
		Phase:       s.animator.Phase().String(),
		Active:      active,
	}
}

func (s *Session) publish() {
	if s.animator.Stopped() {
		return
	}
	s.mu.Lock()
	s.seq++
	f := s.frame()
	s.latest = f
	s.mu.Unlock()

	if s.onFrame != nil {
		s.onFrame(f)
	}
}
