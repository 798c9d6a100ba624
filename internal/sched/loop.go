package sched

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	timerPending int32 = iota
	timerFired
	timerCanceled
)

// Loop serializes timer callbacks onto the goroutine that calls Run.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), 16),
		done:  make(chan struct{}),
	}
}

type loopTimer struct {
	timer *time.Timer
	state atomic.Int32
}

func (t *loopTimer) Cancel() bool {
	if t.timer != nil {
		t.timer.Stop()
	}
	return t.state.CompareAndSwap(timerPending, timerCanceled)
}

func (l *Loop) After(d time.Duration, fn func()) Handle {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		})
	})
	return t
}

// Post queues fn to run on the loop goroutine. Dropped once the loop has
// stopped.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Run executes posted callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}
