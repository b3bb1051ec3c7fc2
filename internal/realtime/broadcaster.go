// Package realtime fans hero frames out to stream subscribers.
package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription is one subscriber's feed.
type Subscription[T any] struct {
	ID string
	C  <-chan T
	ch chan T
}

// Broadcaster publishes values to subscribers. Slow subscribers miss values
// rather than stalling the publisher.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[string]*Subscription[T]
	buffer int
	closed bool
}

// NewBroadcaster creates an empty broadcaster. buffer is each subscriber's channel capacity.
func NewBroadcaster[T any](buffer int) *Broadcaster[T] {
	if buffer < 1 {
		buffer = 1
	}
	return &Broadcaster[T]{
		subs:   make(map[string]*Subscription[T]),
		buffer: buffer,
	}
}

// Subscribe registers a new subscriber. After Close it returns a closed feed.
func (b *Broadcaster[T]) Subscribe() *Subscription[T] {
	ch := make(chan T, b.buffer)
	sub := &Subscription[T]{ID: uuid.NewString(), C: ch, ch: ch}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return sub
	}
	b.subs[sub.ID] = sub
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broadcaster[T]) Unsubscribe(sub *Subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub.ID]; ok {
		delete(b.subs, sub.ID)
		close(sub.ch)
	}
}

// Publish delivers v to every subscriber and returns how many were skipped
// because their buffer was full.
func (b *Broadcaster[T]) Publish(v T) (dropped int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		select {
		case sub.ch <- v:
		default:
			// Lagging; the next frame supersedes this one.
			dropped++
		}
	}
	return dropped
}

// Len returns the number of subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close closes every subscriber channel and rejects new subscribers.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
