// Package typewriter cycles a headline through a list of phrases, typing
// and deleting one rune at a time with pauses in between.
package typewriter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoPhrases     = errors.New("typewriter: no phrases")
	ErrInvalidTiming = errors.New("typewriter: invalid timing")
)

type Phase int

const (
	Typing Phase = iota
	PausedAfterType
	Deleting
	PausedAfterDelete
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case PausedAfterType:
		return "paused-after-type"
	case Deleting:
		return "deleting"
	case PausedAfterDelete:
		return "paused-after-delete"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Timing is the delay before the next step in each phase.
type Timing struct {
	Type        time.Duration
	Delete      time.Duration
	HoldTyped   time.Duration
	HoldDeleted time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Type:        90 * time.Millisecond,
		Delete:      45 * time.Millisecond,
		HoldTyped:   1200 * time.Millisecond,
		HoldDeleted: 300 * time.Millisecond,
	}
}

func (t Timing) validate() error {
	if t.Type <= 0 || t.Delete <= 0 || t.HoldTyped < 0 || t.HoldDeleted < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidTiming, t)
	}
	return nil
}

// Rotator is the headline state machine. It has no terminal state.
type Rotator struct {
	phrases [][]rune
	timing  Timing
	index   int
	length  int
	phase   Phase
}

func New(phrases []string, timing Timing) (*Rotator, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	if err := timing.validate(); err != nil {
		return nil, err
	}
	r := &Rotator{
		phrases: make([][]rune, len(phrases)),
		timing:  timing,
	}
	for i, p := range phrases {
		r.phrases[i] = []rune(p)
	}
	return r, nil
}

// Delay is how long to wait before the next Step.
func (r *Rotator) Delay() time.Duration {
	switch r.phase {
	case PausedAfterType:
		return r.timing.HoldTyped
	case Deleting:
		return r.timing.Delete
	case PausedAfterDelete:
		return r.timing.HoldDeleted
	default:
		return r.timing.Type
	}
}

// Step performs one transition and returns the displayed text.
func (r *Rotator) Step() string {
	target := r.phrases[r.index]
	switch r.phase {
	case Typing:
		if r.length < len(target) {
			r.length++
		}
		if r.length >= len(target) {
			r.phase = PausedAfterType
		}
	case PausedAfterType:
		r.phase = Deleting
		if r.length == 0 {
			r.phase = PausedAfterDelete
		}
	case Deleting:
		if r.length > 0 {
			r.length--
		}
		if r.length == 0 {
			r.phase = PausedAfterDelete
		}
	case PausedAfterDelete:
		r.index = (r.index + 1) % len(r.phrases)
		r.length = 0
		r.phase = Typing
	}
	return r.Text()
}

func (r *Rotator) Text() string   { return string(r.phrases[r.index][:r.length]) }
func (r *Rotator) Phrase() string { return string(r.phrases[r.index]) }
func (r *Rotator) Index() int     { return r.index }
func (r *Rotator) Phase() Phase   { return r.phase }
func (r *Rotator) Len() int       { return len(r.phrases) }

// Cursor appends the blinking cursor glyph, or a space of the same width
// when the cursor is in its off state.
func (r *Rotator) Cursor(on bool) string {
	if on {
		return r.Text() + "|"
	}
	return r.Text() + " "
}

// Reset returns to the initial state.
func (r *Rotator) Reset() {
	r.index = 0
	r.length = 0
	r.phase = Typing
}
