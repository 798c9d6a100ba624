package sched

import "time"

// Scheduler runs fn once, no earlier than d from now.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
}

// Handle refers to a scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. It reports whether the
	// callback was still pending.
	Cancel() bool
}
