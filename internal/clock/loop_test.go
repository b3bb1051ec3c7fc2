package clock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T) (*Loop, context.CancelFunc, chan struct{}) {
	t.Helper()
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(stopped)
	}()
	return l, cancel, stopped
}

func TestLoop_RunsCallback(t *testing.T) {
	l, cancel, stopped := startLoop(t)
	defer func() { cancel(); <-stopped }()

	fired := make(chan struct{})
	l.After(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
	assert.Equal(t, 0, l.Pending())
}

func TestLoop_CancelPreventsCallback(t *testing.T) {
	l, cancel, stopped := startLoop(t)
	defer func() { cancel(); <-stopped }()

	var fired atomic.Bool
	h := l.After(20*time.Millisecond, func() { fired.Store(true) })
	l.Cancel(h)

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestLoop_DoRunsOnLoop(t *testing.T) {
	l, cancel, stopped := startLoop(t)
	defer func() { cancel(); <-stopped }()

	done := make(chan int)
	require.True(t, l.Do(func() { done <- 42 }))
	assert.Equal(t, 42, <-done)
}

func TestLoop_ShutdownStopsTimers(t *testing.T) {
	l, cancel, stopped := startLoop(t)

	var fired atomic.Bool
	l.After(20*time.Millisecond, func() { fired.Store(true) })
	cancel()
	<-stopped

	time.Sleep(50 * time.Millisecond)
	assert.False(t, fired.Load())
	assert.Equal(t, 0, l.Pending())
	assert.Equal(t, Handle(0), l.After(time.Millisecond, func() {}))
	assert.False(t, l.Do(func() {}))
}
