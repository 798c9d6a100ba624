// Package tui is the terminal rendition of the portfolio page: the particle
// field fills the screen, sections are printed over it and the chat and
// contact panels open on top.
package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/folio/internal/chat"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/contact"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/sched"
	"github.com/san-kum/folio/internal/typewriter"
	"github.com/san-kum/folio/internal/viz"
)

const (
	headerRows  = 1
	footerRows  = 1
	blinkPeriod = 530 * time.Millisecond
	historySize = 60
)

type section int

const (
	sectionHome section = iota
	sectionAbout
	sectionProjects
	sectionCerts
	sectionContact
	sectionCount
)

var sectionNames = [...]string{"home", "about", "projects", "certifications", "contact"}

func (s section) String() string { return sectionNames[s] }

type focus int

const (
	focusPage focus = iota
	focusChat
	focusContact
)

type chatReplyMsg struct {
	reply string
	err   error
}

type contactField int

const (
	fieldName contactField = iota
	fieldEmail
	fieldMessage
	fieldCount
)

type Options struct {
	Config  *config.Config
	Content *content.Content
	Chat    chat.Generator
}

type Model struct {
	cfg     *config.Config
	content *content.Content
	theme   viz.Theme
	sched   *teaScheduler

	field  *particles.Field
	canvas *viz.Canvas
	mount  *particles.Mount
	scale  float64

	runner   *typewriter.Runner
	cursorOn bool
	blink    sched.Handle

	gen        chat.Generator
	session    *chat.Session
	chatOpen   bool
	chatInput  []rune
	submitter  *contact.Submitter
	formOpen   bool
	formField  contactField
	formErr    string
	focus      focus
	section    section
	category   int
	projectIdx int
	showHelp   bool

	width, height int
	focused       bool
	paused        bool
	frames        int
	links         []float64
	quitting      bool
}

func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := opts.Content
	if c == nil {
		c = content.Default()
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	field, err := particles.NewField(cfg.Options(), rng)
	if err != nil {
		return nil, err
	}

	phrases := cfg.Headline.Phrases
	if len(phrases) == 0 {
		phrases = c.Profile.Headlines
	}
	rot, err := typewriter.New(phrases, cfg.Headline.Timing())
	if err != nil {
		return nil, fmt.Errorf("headline: %w", err)
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = config.DefaultScale
	}

	s := newTeaScheduler()
	m := &Model{
		cfg:      cfg,
		content:  c,
		theme:    viz.GetTheme(cfg.Theme),
		sched:    s,
		field:    field,
		scale:    scale,
		runner:   typewriter.NewRunner(rot, s),
		gen:      opts.Chat,
		session:  chat.NewSession(opts.Chat, c.Profile.Assistant.Greeting),
		focused:  true,
		cursorOn: true,
	}
	m.submitter = contact.NewSubmitter(s)
	m.submitter.OnChange(func(st contact.Status) {
		if st == contact.Sent {
			m.formField = fieldName
		}
	})
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	m.runner.Start()
	m.scheduleBlink()
	return tea.Batch(tea.SetWindowTitle(m.content.Profile.Name), m.sched.drain())
}

func (m *Model) scheduleBlink() {
	m.blink = m.sched.After(blinkPeriod, func() {
		m.cursorOn = !m.cursorOn
		m.scheduleBlink()
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case fireMsg:
		before := m.mountFrames()
		m.sched.fire(msg.id)
		if after := m.mountFrames(); after != before {
			m.recordFrame()
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.pointer(msg)
	case tea.BlurMsg:
		m.focused = false
		if m.mount != nil {
			m.mount.Blur()
		}
		m.syncVisibility()
	case tea.FocusMsg:
		m.focused = true
		m.syncVisibility()
	case chatReplyMsg:
		m.session.Finish(msg.reply, msg.err)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.sched.drain())
}

func (m *Model) mountFrames() int {
	if m.mount == nil {
		return 0
	}
	return m.mount.Frames()
}

func (m *Model) recordFrame() {
	m.frames++
	m.links = append(m.links, float64(m.field.Stats().Links))
	if len(m.links) > historySize {
		m.links = m.links[len(m.links)-historySize:]
	}
}

func (m *Model) canvasRows(height int) int {
	return height - headerRows - footerRows
}

// resize creates the mount on the first usable size and resizes it after.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	rows := m.canvasRows(height)
	if width <= 0 || rows <= 0 {
		return
	}

	if m.canvas == nil {
		m.canvas = viz.NewCanvas(width, rows)
	} else {
		m.canvas.Resize(width, rows)
	}
	sw, sh := m.canvas.SubSize()
	vw, vh := float64(sw)*m.scale, float64(sh)*m.scale

	if m.mount == nil {
		m.field.Resize(vw, vh, 1)
		surface := viz.Scaled{Surface: m.canvas, Factor: 1 / m.scale}
		m.mount = particles.NewMount(m.field, func() (particles.Surface, bool) {
			return surface, true
		}, m.sched, m.cfg.FrameInterval())
		if m.mount.Frames() > 0 {
			m.recordFrame()
		}
		m.syncVisibility()
		return
	}
	m.mount.Resize(vw, vh, 1)
}

// pointer maps a terminal cell onto the centre of its braille block in
// viewport units.
func (m *Model) pointer(msg tea.MouseMsg) {
	if m.mount == nil {
		return
	}
	row := msg.Y - headerRows
	if row < 0 || row >= m.canvas.Height || msg.X < 0 || msg.X >= m.canvas.Width {
		m.mount.PointerLeave()
		return
	}
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		x := (float64(msg.X)*2 + 1) * m.scale
		y := (float64(row)*4 + 2) * m.scale
		m.mount.PointerMove(x, y)
	}
}

func (m *Model) syncVisibility() {
	if m.mount != nil {
		m.mount.SetVisible(m.focused && !m.paused)
	}
}

func (m *Model) sendChat() tea.Cmd {
	text, ok := m.session.Begin(string(m.chatInput))
	if !ok {
		return nil
	}
	m.chatInput = m.chatInput[:0]
	gen := m.gen
	return func() tea.Msg {
		if gen == nil {
			return chatReplyMsg{err: chat.ErrNoAPIKey}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		reply, err := gen.Generate(ctx, text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

// teardown releases every timer the page owns.
func (m *Model) teardown() {
	if m.mount != nil {
		m.mount.Unmount()
	}
	m.runner.Stop()
	m.submitter.Cancel()
	if m.blink != nil {
		m.blink.Cancel()
	}
	m.quitting = true
}
