// Package contact implements the visitor contact form. Submissions are
// simulated: nothing leaves the process.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/san-kum/folio/internal/sched"
)

const (
	DefaultSendDelay  = 1500 * time.Millisecond
	DefaultResetDelay = 3000 * time.Millisecond
)

var (
	ErrInvalidForm = errors.New("contact: invalid form")
	ErrBusy        = errors.New("contact: submission in progress")
)

var validate = validator.New()

type Form struct {
	Name    string `json:"name" binding:"required,max=120" validate:"required,max=120"`
	Email   string `json:"email" binding:"required,email" validate:"required,email"`
	Message string `json:"message" binding:"required,max=4000" validate:"required,max=4000"`
}

func (f Form) trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks that every field is present and the email is well formed.
func (f Form) Validate() error {
	err := validate.Struct(f.trimmed())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed %q", ErrInvalidForm, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}

type Status int

const (
	Idle Status = iota
	Submitting
	Sent
)

func (s Status) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Sent:
		return "sent"
	default:
		return "idle"
	}
}

// Submitter drives a form through submitting and sent on a scheduler.
type Submitter struct {
	s          sched.Scheduler
	sendDelay  time.Duration
	resetDelay time.Duration

	draft    Form
	status   Status
	pending  sched.Handle
	onChange func(Status)
	sent     int
}

func NewSubmitter(s sched.Scheduler) *Submitter {
	return &Submitter{s: s, sendDelay: DefaultSendDelay, resetDelay: DefaultResetDelay}
}

// WithDelays overrides the simulated send and reset durations.
func (sub *Submitter) WithDelays(send, reset time.Duration) *Submitter {
	sub.sendDelay = send
	sub.resetDelay = reset
	return sub
}

func (sub *Submitter) OnChange(fn func(Status)) { sub.onChange = fn }

// Draft is the form being edited.
func (sub *Submitter) Draft() *Form   { return &sub.draft }
func (sub *Submitter) Status() Status { return sub.status }

// Sent counts completed submissions.
func (sub *Submitter) Sent() int { return sub.sent }

// Submit validates the draft and starts the simulated send.
func (sub *Submitter) Submit() error {
	if sub.status == Submitting {
		return ErrBusy
	}
	if err := sub.draft.Validate(); err != nil {
		return err
	}
	if sub.pending != nil {
		sub.pending.Cancel()
	}
	sub.set(Submitting)
	sub.pending = sub.s.After(sub.sendDelay, sub.finish)
	return nil
}

func (sub *Submitter) finish() {
	sub.draft = Form{}
	sub.sent++
	sub.set(Sent)
	sub.pending = sub.s.After(sub.resetDelay, func() {
		sub.pending = nil
		sub.set(Idle)
	})
}

// Cancel drops any pending transition and returns to idle.
func (sub *Submitter) Cancel() {
	if sub.pending != nil {
		sub.pending.Cancel()
		sub.pending = nil
	}
	sub.status = Idle
}

func (sub *Submitter) set(st Status) {
	sub.status = st
	if sub.onChange != nil {
		sub.onChange(st)
	}
}
