package hero

import (
	"context"
	"log"

	"github.com/Zachkp/portfolio/internal/clock"
)

// Runner drives a Session on its own clock.Loop goroutine in wall-clock time.
type Runner struct {
	loop    *clock.Loop
	session *Session
	cancel  context.CancelFunc
	done    chan struct{}
}

// Run starts a session. onFrame runs on the loop goroutine and must not block.
func Run(ctx context.Context, cfg Config, onFrame func(Frame)) (*Runner, error) {
	loop := clock.NewLoop()
	session, err := NewSession(loop, cfg, onFrame)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	r := &Runner{
		loop:    loop,
		session: session,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(r.done)
		loop.Run(ctx)
	}()
	loop.Do(session.Start)
	log.Printf("Hero session started: %d phrases, %d nodes", len(cfg.Typing.Phrases), session.NodeCount())
	return r, nil
}

// Snapshot returns the latest frame.
func (r *Runner) Snapshot() Frame {
	return r.session.Snapshot()
}

// NodeCount is the number of node ordinals in the hero graph.
func (r *Runner) NodeCount() int {
	return r.session.NodeCount()
}

// Close stops the session on its loop, then stops the loop and waits for it.
func (r *Runner) Close() {
	stopped := make(chan struct{})
	if r.loop.Do(func() {
		r.session.Close()
		close(stopped)
	}) {
		select {
		case <-stopped:
		case <-r.done:
		}
	}
	r.cancel()
	<-r.done
	log.Printf("Hero session stopped")
}
