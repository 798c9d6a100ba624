package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/folio/internal/sched"
)

// fireMsg is delivered when a scheduled callback falls due.
type fireMsg struct{ id uint64 }

// teaScheduler turns scheduled callbacks into tea.Tick commands. Callbacks
// run inside Update, so they never race with View. Commands pile up until
// the next drain.
type teaScheduler struct {
	next    uint64
	pending map[uint64]func()
	cmds    []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[uint64]func())}
}

type teaHandle struct {
	s  *teaScheduler
	id uint64
}

func (h teaHandle) Cancel() bool {
	if _, ok := h.s.pending[h.id]; !ok {
		return false
	}
	delete(h.s.pending, h.id)
	return true
}

func (s *teaScheduler) After(d time.Duration, fn func()) sched.Handle {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg { return fireMsg{id: id} }))
	return teaHandle{s: s, id: id}
}

// fire runs the callback for id unless it was cancelled.
func (s *teaScheduler) fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

func (s *teaScheduler) drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// Pending is the number of live callbacks.
func (s *teaScheduler) Pending() int { return len(s.pending) }
