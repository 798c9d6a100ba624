package sched

import "time"

// Manual is a Scheduler on a virtual clock. Nothing fires until Advance or
// Step is called. Not safe for concurrent use.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	m    *Manual
	at   time.Duration
	seq  uint64
	fn   func()
	done bool
}

func (t *manualTimer) Cancel() bool {
	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of callbacks waiting to fire.
func (m *Manual) Pending() int { return len(m.timers) }

// NextDelay returns how far the earliest pending callback is from now.
func (m *Manual) NextDelay() (time.Duration, bool) {
	t := m.next()
	if t == nil {
		return 0, false
	}
	return t.at - m.now, true
}

// Advance moves the clock forward by d, firing every callback that falls due
// in time order. Callbacks scheduled while advancing fire too if they are due
// before the new time. Returns the number fired.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0
	for {
		t := m.next()
		if t == nil || t.at > target {
			break
		}
		m.fire(t)
		fired++
	}
	m.now = target
	return fired
}

// Step fires the earliest pending callback, moving the clock to its due
// time. Reports false when nothing is pending.
func (m *Manual) Step() bool {
	t := m.next()
	if t == nil {
		return false
	}
	m.fire(t)
	return true
}

func (m *Manual) fire(t *manualTimer) {
	m.remove(t)
	t.done = true
	if t.at > m.now {
		m.now = t.at
	}
	t.fn()
}

func (m *Manual) next() *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) remove(t *manualTimer) {
	for i, x := range m.timers {
		if x == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
