// Package typing drives the hero's typewriter effect: a looping cycle that types a
// phrase one character at a time, holds it, deletes it, and moves to the next phrase.
package typing

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Zachkp/portfolio/internal/clock"
)

var (
	ErrNoPhrases   = errors.New("typing: phrase list is empty")
	ErrEmptyPhrase = errors.New("typing: phrase is empty")
	ErrInterval    = errors.New("typing: intervals must be positive")
)

// Default timings used by the hero section.
const (
	DefaultTypingInterval   = 80 * time.Millisecond
	DefaultDeletingInterval = 40 * time.Millisecond
	DefaultPauseDuration    = 2000 * time.Millisecond
)

// Phase is the animator's current state.
type Phase int

const (
	Typing Phase = iota
	Paused
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Paused:
		return "paused"
	case Deleting:
		return "deleting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Config is the constructor-time configuration.
type Config struct {
	Phrases          []string      `yaml:"phrases" validate:"required,min=1,dive,required"`
	TypingInterval   time.Duration `yaml:"typing_interval" validate:"gt=0"`
	DeletingInterval time.Duration `yaml:"deleting_interval" validate:"gt=0"`
	PauseDuration    time.Duration `yaml:"pause_duration" validate:"gt=0"`
}

// Listener receives the new visible length and the phrase index on every
// visible text change.
type Listener func(charIndex, phraseIndex int)

var validate = validator.New()

// Validate reports the first configuration problem, wrapped around one of the
// package's sentinel errors.
func (c Config) Validate() error {
	if len(c.Phrases) == 0 {
		return ErrNoPhrases
	}
	for i, p := range c.Phrases {
		if p == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyPhrase, i)
		}
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInterval, err)
	}
	return nil
}

// Animator owns one phrase cycle. All methods must be called from the
// goroutine its Scheduler runs callbacks on.
type Animator struct {
	sched    clock.Scheduler
	phrases  [][]rune
	cfg      Config
	listener Listener

	phrase  int
	length  int
	phase   Phase
	pending clock.Handle
	running bool
	stopped bool
}

// New validates cfg and returns an animator at phrase 0 with empty text.
// listener may be nil.
func New(sched clock.Scheduler, cfg Config, listener Listener) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	phrases := make([][]rune, len(cfg.Phrases))
	for i, p := range cfg.Phrases {
		phrases[i] = []rune(p)
	}
	return &Animator{
		sched:    sched,
		phrases:  phrases,
		cfg:      cfg,
		listener: listener,
		phase:    Typing,
	}, nil
}

// Start schedules the first step. Starting twice, or after Stop, does nothing.
func (a *Animator) Start() {
	if a.running || a.stopped {
		return
	}
	a.running = true
	a.schedule()
}

// Stop cancels the pending step. No listener call happens after Stop returns.
func (a *Animator) Stop() {
	if a.stopped {
		return
	}
	a.stopped = true
	a.running = false
	a.sched.Cancel(a.pending)
	a.pending = 0
}

// Text returns the visible prefix of the current phrase.
func (a *Animator) Text() string {
	return string(a.phrases[a.phrase][:a.length])
}

// Phrase returns the full text of the current phrase.
func (a *Animator) Phrase() string {
	return string(a.phrases[a.phrase])
}

// PhraseIndex returns the index of the current phrase.
func (a *Animator) PhraseIndex() int { return a.phrase }

// CharIndex returns the visible length in characters.
func (a *Animator) CharIndex() int { return a.length }

// Phase returns the current state.
func (a *Animator) Phase() Phase { return a.phase }

// Stopped reports whether Stop has been called.
func (a *Animator) Stopped() bool { return a.stopped }

func (a *Animator) schedule() {
	a.pending = a.sched.After(a.interval(), a.step)
}

func (a *Animator) interval() time.Duration {
	switch a.phase {
	case Paused:
		return a.cfg.PauseDuration
	case Deleting:
		return a.cfg.DeletingInterval
	default:
		return a.cfg.TypingInterval
	}
}

func (a *Animator) step() {
	if a.stopped {
		return
	}
	a.pending = 0
	target := len(a.phrases[a.phrase])

	switch a.phase {
	case Typing:
		if a.length < target {
			a.length++
			a.emit()
		} else {
			a.phase = Paused
		}
	case Paused:
		a.phase = Deleting
	case Deleting:
		if a.length > 0 {
			a.length--
			a.emit()
		} else {
			a.phrase = (a.phrase + 1) % len(a.phrases)
			a.phase = Typing
		}
	}

	// The listener may have stopped us.
	if !a.stopped {
		a.schedule()
	}
}

func (a *Animator) emit() {
	if a.listener != nil {
		a.listener(a.length, a.phrase)
	}
}
