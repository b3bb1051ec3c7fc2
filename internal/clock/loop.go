package clock

import (
	"context"
	"sync"
	"time"
)

type job struct {
	handle Handle
	fn     func()
}

// Loop is a wall-clock Scheduler that runs every callback on a single goroutine.
// Timers fire on runtime goroutines but only enqueue work; Run executes it in
// arrival order, so callback code needs no locking of its own.
type Loop struct {
	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
	queue  chan job
	done   chan struct{}
	closed bool
}

// NewLoop creates a loop. Callbacks only run once Run is called.
func NewLoop() *Loop {
	return &Loop{
		timers: make(map[Handle]*time.Timer),
		queue:  make(chan job, 64),
		done:   make(chan struct{}),
	}
}

// After schedules fn on the loop goroutine after d. After Run has returned,
// After is a no-op and returns the zero Handle.
func (l *Loop) After(d time.Duration, fn func()) Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0
	}
	l.next++
	h := l.next
	l.timers[h] = time.AfterFunc(d, func() {
		select {
		case l.queue <- job{handle: h, fn: fn}:
		case <-l.done:
		}
	})
	return h
}

// Cancel stops a pending callback. A callback whose timer already fired but
// has not run yet is dropped as well.
func (l *Loop) Cancel(h Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.timers[h]; ok {
		t.Stop()
		delete(l.timers, h)
	}
}

// Do runs fn on the loop goroutine as soon as possible. It returns false if
// the loop has stopped.
func (l *Loop) Do(fn func()) bool {
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return false
	}
	select {
	case l.queue <- job{fn: fn}:
		return true
	case <-l.done:
		return false
	}
}

// Run executes callbacks until ctx is cancelled, then stops every pending timer.
func (l *Loop) Run(ctx context.Context) {
	defer l.shutdown()
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-l.queue:
			if j.handle != 0 && !l.claim(j.handle) {
				continue
			}
			j.fn()
		}
	}
}

// Pending reports how many timers are outstanding.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// claim removes a fired timer, reporting whether it was still live.
func (l *Loop) claim(h Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.timers[h]; !ok {
		return false
	}
	delete(l.timers, h)
	return true
}

func (l *Loop) shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	for h, t := range l.timers {
		t.Stop()
		delete(l.timers, h)
	}
	close(l.done)
}
