package tui

import (
	"context"
	"sort"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/folio/internal/chat"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/contact"
	"github.com/san-kum/folio/internal/content"
)

type stubGen struct{ reply string }

func (g stubGen) Generate(context.Context, string) (string, error) { return g.reply, nil }

func newModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 7
	m, err := New(Options{Config: cfg, Content: content.Default(), Chat: stubGen{reply: "Flutter, mostly."}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	m.Init()
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(key(" "))
			continue
		}
		m.Update(key(string(r)))
	}
}

// fireAll delivers every callback pending right now, in id order.
func fireAll(m *Model) {
	ids := make([]uint64, 0, len(m.sched.pending))
	for id := range m.sched.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		m.Update(fireMsg{id: id})
	}
}

func TestMountIsCreatedOnFirstResize(t *testing.T) {
	m := newModel(t)
	if m.mount != nil {
		t.Fatal("mount should wait for a window size")
	}
	if !strings.Contains(m.View(), "loading") {
		t.Error("expected loading view before the first size")
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.mount == nil || !m.mount.Attached() {
		t.Fatal("mount not attached")
	}
	if m.canvas.Width != 80 || m.canvas.Height != 22 {
		t.Errorf("canvas %dx%d", m.canvas.Width, m.canvas.Height)
	}
	w, h := m.field.Viewport()
	if w != 160*config.DefaultScale || h != 88*config.DefaultScale {
		t.Errorf("viewport %gx%g", w, h)
	}
	if m.field.Stats().Frames != 1 {
		t.Errorf("first frame should render immediately, got %d", m.field.Stats().Frames)
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	w, _ = m.field.Viewport()
	if w != 200*config.DefaultScale {
		t.Errorf("viewport width after resize = %g", w)
	}
}

func TestFrameChainAdvances(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	for i := 0; i < 3; i++ {
		fireAll(m)
	}
	if got := m.field.Stats().Frames; got != 4 {
		t.Errorf("expected 4 frames, got %d", got)
	}
	if len(m.links) != 4 {
		t.Errorf("link history length %d", len(m.links))
	}
}

func TestBlurFreezesAndFocusResumes(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	if !m.field.Pointer().Active {
		t.Fatal("pointer should be active after motion")
	}

	m.Update(tea.BlurMsg{})
	if m.field.Pointer().Active {
		t.Error("blur should clear the pointer")
	}
	if m.mount.Running() {
		t.Error("hidden mount must not have a frame pending")
	}
	frames := m.field.Stats().Frames
	fireAll(m)
	fireAll(m)
	if m.field.Stats().Frames != frames {
		t.Error("frames rendered while hidden")
	}

	m.Update(tea.FocusMsg{})
	if m.field.Stats().Frames != frames+1 {
		t.Errorf("focus should render exactly one frame, got %d", m.field.Stats().Frames-frames)
	}
	if !m.mount.Running() {
		t.Error("loop should be running again")
	}
}

func TestPointerMapsCellsToViewport(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	p := m.field.Pointer()
	if p.X != 21*config.DefaultScale || p.Y != 18*config.DefaultScale {
		t.Errorf("pointer at (%g, %g)", p.X, p.Y)
	}

	m.Update(tea.MouseMsg{X: 10, Y: 0, Action: tea.MouseActionMotion})
	if m.field.Pointer().Active {
		t.Error("pointer over the header should leave the field")
	}
}

func TestPauseToggle(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(key(" "))
	if m.mount.Running() || !m.paused {
		t.Error("space should pause the field")
	}
	m.Update(key(" "))
	if !m.mount.Running() {
		t.Error("space again should resume")
	}
}

func TestSectionsAndProjects(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(key("3"))
	if m.section != sectionProjects {
		t.Fatalf("section = %v", m.section)
	}
	m.Update(key("down"))
	if m.projectIdx != 1 {
		t.Errorf("project index = %d", m.projectIdx)
	}
	m.Update(key("f"))
	if m.categoryName() != "Web Application" || m.projectIdx != 0 {
		t.Errorf("filter = %q idx %d", m.categoryName(), m.projectIdx)
	}
	if len(m.projects()) != 2 {
		t.Errorf("expected 2 web projects, got %d", len(m.projects()))
	}
	if !strings.Contains(m.View(), "Fuel Management System") {
		t.Error("project list not rendered")
	}

	m.Update(key("tab"))
	if m.section != sectionCerts {
		t.Errorf("tab should move to certifications, got %v", m.section)
	}
}

func TestThemeCycles(t *testing.T) {
	m := newModel(t)
	before := m.theme.Name
	m.Update(key("t"))
	if m.theme.Name == before {
		t.Error("theme did not change")
	}
}

func TestHomeShowsHeadline(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	if !strings.Contains(view, "Hi, I'm") {
		t.Error("greeting missing")
	}
	for i := 0; i < 5; i++ {
		fireAll(m)
	}
	if m.runner.Rotator().Text() == "" {
		t.Error("headline should have typed something")
	}
	if !strings.Contains(m.View(), "> "+m.runner.Rotator().Text()) {
		t.Error("headline not rendered")
	}
}

func TestChatRoundTrip(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(key("c"))
	if !m.chatOpen || m.focus != focusChat {
		t.Fatal("chat should open with focus")
	}

	typeText(m, "what stack")
	cmd := m.handleKey(key("enter"))
	if cmd == nil {
		t.Fatal("enter should start a request")
	}
	if !m.session.Loading() || len(m.chatInput) != 0 {
		t.Error("input should be consumed and loading set")
	}
	m.Update(cmd())

	msgs := m.session.Messages()
	if len(msgs) != 3 {
		t.Fatalf("messages = %+v", msgs)
	}
	if msgs[1].Text != "what stack" || msgs[2].Text != "Flutter, mostly." {
		t.Errorf("unexpected conversation %+v", msgs)
	}
	if !strings.Contains(m.View(), "AI Assistant") {
		t.Error("chat panel not rendered")
	}

	m.Update(key("esc"))
	if m.chatOpen || m.focus != focusPage {
		t.Error("esc should close the chat")
	}
}

func TestChatWithoutGeneratorFallsBack(t *testing.T) {
	m, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	m.Update(key("c"))
	typeText(m, "hello")
	cmd := m.handleKey(key("enter"))
	m.Update(cmd())
	msgs := m.session.Messages()
	if got := msgs[len(msgs)-1].Text; got != chat.FallbackReply {
		t.Errorf("reply = %q", got)
	}
}

func TestChatAndContactAreIndependent(t *testing.T) {
	m := newModel(t)
	m.Update(key("c"))
	m.Update(key("esc"))
	m.Update(key("m"))
	if !m.formOpen || m.chatOpen {
		t.Fatalf("form %v chat %v", m.formOpen, m.chatOpen)
	}
	m.Update(key("esc"))
	m.Update(key("c"))
	m.Update(key("tab"))
	if m.focus != focusChat {
		t.Error("tab from chat should stay when the form is closed")
	}
}

func TestContactSubmit(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(key("m"))
	typeText(m, "Ada")
	m.Update(key("tab"))
	typeText(m, "ada@example.com")
	m.Update(key("tab"))
	typeText(m, "Hello there")
	m.Update(key("enter"))
	if m.formErr != "" {
		t.Fatalf("unexpected form error %q", m.formErr)
	}
	if m.submitter.Status() != contact.Submitting {
		t.Fatalf("status = %v", m.submitter.Status())
	}
	if !strings.Contains(m.View(), "sending") {
		t.Error("sending state not rendered")
	}
}

func TestContactValidationError(t *testing.T) {
	m := newModel(t)
	m.Update(key("m"))
	m.Update(key("enter"))
	if m.formErr == "" {
		t.Error("empty form should report an error")
	}
	if m.submitter.Status() != contact.Idle {
		t.Error("invalid form must not submit")
	}
}

func TestQuitReleasesTimers(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(key("m"))
	typeText(m, "Ada")
	m.Update(key("tab"))
	typeText(m, "ada@example.com")
	m.Update(key("tab"))
	typeText(m, "hi")
	m.Update(key("enter"))

	_, cmd := m.Update(key("ctrl+c"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if n := m.sched.Pending(); n != 0 {
		t.Errorf("%d callbacks still pending after quit", n)
	}
	if m.mount.Attached() || m.runner.Running() {
		t.Error("mount and runner should be stopped")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrap = %q", got)
	}
	long := wrap("abcdefghijkl", 5)
	if strings.Join(long, "|") != "abcde|fghij|kl" {
		t.Errorf("long word wrap = %q", long)
	}
}
