package sched

import (
	"context"
	"testing"
	"time"
)

func TestLoopRunsCallbacks(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	order := make([]int, 0, 2)
	l.After(20*time.Millisecond, func() { order = append(order, 2) })
	l.After(time.Millisecond, func() { order = append(order, 1) })
	l.After(40*time.Millisecond, func() {
		order = append(order, 3)
		cancel()
	})

	if err := l.Run(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("unexpected order %v", order)
	}
}

func TestLoopCancelledTimerNeverRuns(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	fired := false
	h := l.After(10*time.Millisecond, func() { fired = true })
	l.Post(func() {
		if !h.Cancel() {
			t.Error("expected pending timer to cancel")
		}
	})

	_ = l.Run(ctx)
	if fired {
		t.Error("cancelled callback ran")
	}
}

func TestLoopPostAfterStopDoesNotBlock(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = l.Run(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			l.Post(func() {})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("post blocked after loop stopped")
	}
}
