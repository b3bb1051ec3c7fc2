// Package clock provides the scheduling capability the animation components run on.
//
// Components never read wall time or start goroutines themselves. They ask a
// Scheduler to call them back after a delay, and they keep the returned Handle
// so a pending wake-up can be invalidated on teardown.
package clock

import "time"

// Handle identifies a pending callback. The zero Handle is never returned by
// After and cancelling it is a no-op.
type Handle uint64

// Scheduler defers callbacks. Implementations run callbacks one at a time, never
// concurrently with each other, and never run a callback whose handle was cancelled.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
	Cancel(h Handle)
}
