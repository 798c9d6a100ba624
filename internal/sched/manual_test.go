package sched

import (
	"testing"
	"time"
)

func TestManualFiresInOrder(t *testing.T) {
	m := NewManual()
	var got []int
	m.After(30*time.Millisecond, func() { got = append(got, 3) })
	m.After(10*time.Millisecond, func() { got = append(got, 1) })
	m.After(10*time.Millisecond, func() { got = append(got, 2) })

	if n := m.Advance(20 * time.Millisecond); n != 2 {
		t.Fatalf("expected 2 callbacks, got %d", n)
	}
	if n := m.Advance(20 * time.Millisecond); n != 1 {
		t.Fatalf("expected 1 callback, got %d", n)
	}

	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
	if m.Now() != 40*time.Millisecond {
		t.Errorf("expected clock at 40ms, got %v", m.Now())
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	fired := false
	h := m.After(time.Millisecond, func() { fired = true })

	if !h.Cancel() {
		t.Fatal("expected cancel of pending callback to report true")
	}
	if h.Cancel() {
		t.Error("second cancel should report false")
	}
	m.Advance(time.Second)
	if fired {
		t.Error("cancelled callback fired")
	}
	if m.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", m.Pending())
	}
}

func TestManualChainedCallbacks(t *testing.T) {
	m := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		m.After(10*time.Millisecond, tick)
	}
	m.After(10*time.Millisecond, tick)

	m.Advance(100 * time.Millisecond)
	if count != 10 {
		t.Errorf("expected 10 ticks, got %d", count)
	}
	if m.Pending() != 1 {
		t.Errorf("expected exactly one pending tick, got %d", m.Pending())
	}
}

func TestManualStep(t *testing.T) {
	m := NewManual()
	if m.Step() {
		t.Fatal("step on empty scheduler should report false")
	}
	m.After(250*time.Millisecond, func() {})
	d, ok := m.NextDelay()
	if !ok || d != 250*time.Millisecond {
		t.Fatalf("next delay = %v, %v", d, ok)
	}
	if !m.Step() {
		t.Fatal("expected a callback to fire")
	}
	if m.Now() != 250*time.Millisecond {
		t.Errorf("expected clock at 250ms, got %v", m.Now())
	}
}
