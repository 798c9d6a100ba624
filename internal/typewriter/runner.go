package typewriter

import "github.com/san-kum/folio/internal/sched"

// Runner drives a Rotator with a self-rescheduling timer chain: every tick
// steps once and schedules exactly one next tick with the phase delay.
type Runner struct {
	rot       *Rotator
	sched     sched.Scheduler
	pending   sched.Handle
	running   bool
	observers []func(string)
}

func NewRunner(rot *Rotator, s sched.Scheduler) *Runner {
	return &Runner{rot: rot, sched: s}
}

// OnChange registers fn to receive the text after every step.
func (r *Runner) OnChange(fn func(text string)) {
	r.observers = append(r.observers, fn)
}

func (r *Runner) Start() {
	if r.running {
		return
	}
	r.running = true
	r.schedule()
}

// Stop cancels the pending tick; the rotator is not touched afterwards.
func (r *Runner) Stop() {
	r.running = false
	if r.pending != nil {
		r.pending.Cancel()
		r.pending = nil
	}
}

func (r *Runner) Running() bool     { return r.running }
func (r *Runner) Rotator() *Rotator { return r.rot }

func (r *Runner) schedule() {
	r.pending = r.sched.After(r.rot.Delay(), r.tick)
}

func (r *Runner) tick() {
	r.pending = nil
	if !r.running {
		return
	}
	text := r.rot.Step()
	for _, fn := range r.observers {
		fn(text)
	}
	if r.running {
		r.schedule()
	}
}
