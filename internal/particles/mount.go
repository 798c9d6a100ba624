package particles

import (
	"time"

	"github.com/san-kum/folio/internal/sched"
)

// DefaultFrameInterval approximates one display refresh.
const DefaultFrameInterval = time.Second / 60

// Mount runs a Field's render loop on a scheduler. It keeps at most one
// frame request outstanding, suspends while hidden and releases everything
// on Unmount.
type Mount struct {
	field    *Field
	surface  Surface
	sched    sched.Scheduler
	interval time.Duration

	pending  sched.Handle
	attached bool
	visible  bool
	frames   int
}

// NewMount acquires a surface and starts the loop by rendering the first
// frame immediately. When acquire fails the mount is inert: it never draws
// and never schedules.
func NewMount(field *Field, acquire func() (Surface, bool), s sched.Scheduler, interval time.Duration) *Mount {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	m := &Mount{field: field, sched: s, interval: interval}
	if field == nil || acquire == nil {
		return m
	}
	surface, ok := acquire()
	if !ok || surface == nil {
		return m
	}
	m.surface = surface
	m.attached = true
	m.visible = true
	m.animate()
	return m
}

func (m *Mount) animate() {
	m.pending = nil
	if !m.attached || !m.visible {
		return
	}
	m.field.Frame(m.surface)
	m.frames++
	m.pending = m.sched.After(m.interval, m.animate)
}

// Attached reports whether a surface was acquired and the mount is live.
func (m *Mount) Attached() bool { return m.attached }

// Running reports whether a frame request is outstanding.
func (m *Mount) Running() bool { return m.pending != nil }

func (m *Mount) Visible() bool { return m.visible }

// Frames is the number of frames rendered by this mount.
func (m *Mount) Frames() int { return m.frames }

func (m *Mount) Field() *Field { return m.field }

// SetVisible suspends the loop when hidden and restarts it once when shown.
func (m *Mount) SetVisible(visible bool) {
	if !m.attached {
		return
	}
	m.visible = visible
	if !visible {
		m.cancel()
		return
	}
	if m.pending == nil {
		m.animate()
	}
}

func (m *Mount) Resize(width, height, pixelRatio float64) {
	if !m.attached {
		return
	}
	m.field.Resize(width, height, pixelRatio)
}

func (m *Mount) PointerMove(x, y float64) {
	if !m.attached {
		return
	}
	m.field.PointerMove(x, y)
}

func (m *Mount) PointerLeave() {
	if !m.attached {
		return
	}
	m.field.PointerLeave()
}

// Blur is a window losing focus; the pointer is treated as gone.
func (m *Mount) Blur() { m.PointerLeave() }

// Unmount cancels the outstanding frame and detaches; later events are
// ignored.
func (m *Mount) Unmount() {
	m.cancel()
	m.attached = false
	m.visible = false
	m.surface = nil
}

func (m *Mount) cancel() {
	if m.pending != nil {
		m.pending.Cancel()
		m.pending = nil
	}
}
