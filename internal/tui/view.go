package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/folio/internal/chat"
	"github.com/san-kum/folio/internal/contact"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/viz"
)

const (
	marginLeft = 4
	panelMax   = 46
)

func (m *Model) projects() []content.Project {
	return m.content.ByCategory(m.categoryName())
}

func (m *Model) categoryName() string {
	cats := m.content.Categories()
	if m.category == 0 || m.category > len(cats) {
		return ""
	}
	return cats[m.category-1]
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.canvas == nil {
		return "\n  loading…\n"
	}

	var labels []viz.Label
	if !m.formOpen {
		labels = append(labels, m.sectionLabels()...)
	}
	if m.formOpen {
		labels = append(labels, m.contactPanel()...)
	}
	if m.chatOpen {
		labels = append(labels, m.chatPanel()...)
	}
	if m.showHelp {
		labels = append(labels, m.helpPanel()...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.canvas.Render(labels...),
		m.footer(),
	)
}

func (m *Model) header() string {
	t := m.theme
	name := viz.GradientText(m.content.Profile.Name, t.Primary, t.Secondary)
	tabs := make([]string, 0, sectionCount)
	for i := section(0); i < sectionCount; i++ {
		label := fmt.Sprintf("%d %s", i+1, i)
		if i == m.section {
			tabs = append(tabs, t.Highlight().Render(label))
		} else {
			tabs = append(tabs, t.Dim().Render(label))
		}
	}
	return truncate(" "+name+"  "+strings.Join(tabs, "  "), m.width)
}

func (m *Model) footer() string {
	t := m.theme
	stats := m.field.Stats()
	status := viz.StatusRunning.Render("●")
	switch {
	case m.paused:
		status = viz.StatusPaused.Render("‖ paused")
	case !m.focused:
		status = viz.StatusPaused.Render("○ hidden")
	}
	left := fmt.Sprintf(" %s %s %s  %s %s ",
		status,
		viz.MetricLabel.Render("nodes"), viz.MetricValue.Render(fmt.Sprint(len(m.field.Nodes()))),
		viz.MetricLabel.Render("links"), viz.MetricValue.Render(fmt.Sprint(stats.Links)),
	)
	spark := viz.SparklineChart(m.links, 20)
	hints := t.Dim().Render("  tab section  c chat  m message  t theme  space pause  ? help  q quit")
	return truncate(left+spark+hints, m.width)
}

// block lays lines out from (col, row) downwards.
func block(col, row int, style lipgloss.Style, lines ...string) []viz.Label {
	out := make([]viz.Label, 0, len(lines))
	for i, l := range lines {
		out = append(out, viz.Label{Col: col, Row: row + i, Text: l, Style: style})
	}
	return out
}

func (m *Model) textWidth() int {
	w := m.canvas.Width - 2*marginLeft
	if m.chatOpen {
		w -= m.panelWidth() + 2
	}
	return max(min(w, 72), 16)
}

func (m *Model) sectionLabels() []viz.Label {
	switch m.section {
	case sectionAbout:
		return m.aboutLabels()
	case sectionProjects:
		return m.projectLabels()
	case sectionCerts:
		return m.certLabels()
	case sectionContact:
		return m.contactLabels()
	}
	return m.homeLabels()
}

func (m *Model) homeLabels() []viz.Label {
	t := m.theme
	p := m.content.Profile
	w := m.textWidth()
	row := max(m.canvas.Height/3-2, 1)
	rot := m.runner.Rotator()

	var out []viz.Label
	out = append(out, block(marginLeft, row, t.Dim(), "Hi, I'm")...)
	out = append(out, block(marginLeft, row+1, t.Title(), p.Name)...)
	out = append(out, block(marginLeft, row+3, t.Highlight(), "> "+rot.Text()+rot.Cursor(m.cursorOn))...)
	out = append(out, block(marginLeft, row+5, t.Body(), wrap(p.Tagline, w)...)...)
	if p.ResumeURL != "" {
		out = append(out, block(marginLeft, row+6+len(wrap(p.Tagline, w)), t.Dim(), "cv: "+p.ResumeURL)...)
	}
	return out
}

func (m *Model) aboutLabels() []viz.Label {
	t := m.theme
	c := m.content
	w := m.textWidth()
	row := 1

	var out []viz.Label
	add := func(style lipgloss.Style, lines ...string) {
		out = append(out, block(marginLeft, row, style, lines...)...)
		row += len(lines)
	}

	add(t.Title(), "About")
	add(t.Body(), c.Education.Degree, c.Education.University)
	row++
	add(t.Highlight(), "Experience")
	for _, e := range c.Experience {
		add(t.Body(), wrap(e.Role, w)...)
		add(t.Dim(), "  "+e.Company+" · "+e.Period)
	}
	row++
	skills := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		skills[i] = s.Name
	}
	add(t.Highlight(), "Skills")
	add(t.Body(), wrap(strings.Join(skills, " · "), w)...)
	row++
	add(t.Highlight(), "Specializations")
	add(t.Body(), wrap(strings.Join(c.Specializations, " · "), w)...)
	return out
}

func (m *Model) projectLabels() []viz.Label {
	t := m.theme
	w := m.textWidth()
	row := 1
	var out []viz.Label
	add := func(style lipgloss.Style, lines ...string) {
		out = append(out, block(marginLeft, row, style, lines...)...)
		row += len(lines)
	}

	filter := "all"
	if name := m.categoryName(); name != "" {
		filter = name
	}
	add(t.Title(), "Projects")
	add(t.Dim(), "filter: "+filter+"  (f to change, ↑↓ to browse)")
	row++

	list := m.projects()
	if len(list) == 0 {
		add(t.Dim(), "nothing here yet")
		return out
	}
	idx := min(m.projectIdx, len(list)-1)
	for i, p := range list {
		if i == idx {
			add(t.Highlight(), "▸ "+p.Title)
		} else {
			add(t.Body(), "  "+p.Title)
		}
	}
	row++

	p := list[idx]
	add(t.Dim(), p.Category)
	add(t.Body(), wrap(p.LongDescription, w)...)
	add(t.Highlight(), wrap(strings.Join(p.Tags, " · "), w)...)
	stats := make([]string, len(p.Stats))
	for i, s := range p.Stats {
		stats[i] = s.Label + ": " + s.Value
	}
	add(t.Dim(), strings.Join(stats, "   "))
	if p.HasLink() {
		add(t.Dim(), p.Link)
	}
	return out
}

func (m *Model) certLabels() []viz.Label {
	t := m.theme
	w := m.textWidth()
	row := 1
	var out []viz.Label
	add := func(style lipgloss.Style, lines ...string) {
		out = append(out, block(marginLeft, row, style, lines...)...)
		row += len(lines)
	}
	add(t.Title(), "Certifications")
	row++
	for _, c := range m.content.Certifications {
		add(t.Highlight(), wrap(c.Title, w)...)
		add(t.Dim(), "  "+c.Issuer+" · "+c.Date)
	}
	return out
}

func (m *Model) contactLabels() []viz.Label {
	t := m.theme
	p := m.content.Profile
	w := m.textWidth()
	row := 1
	var out []viz.Label
	add := func(style lipgloss.Style, lines ...string) {
		out = append(out, block(marginLeft, row, style, lines...)...)
		row += len(lines)
	}
	add(t.Title(), "Get in touch")
	add(t.Body(), wrap(p.Bio, w)...)
	row++
	add(t.Highlight(), "email    "+p.Email)
	if p.Phone != "" {
		add(t.Highlight(), "phone    "+p.Phone)
	}
	add(t.Highlight(), "location "+p.Location)
	row++
	for _, s := range p.Socials {
		add(t.Dim(), fmt.Sprintf("%-10s %s", s.Name, s.URL))
	}
	row++
	add(t.Body(), "press m to write a message")
	return out
}

func (m *Model) panelWidth() int {
	return max(min(panelMax, m.canvas.Width/2-2), 20)
}

// panel pads lines to a fixed width so the field does not show through.
func panel(col, row, width int, style lipgloss.Style, lines ...string) []viz.Label {
	padded := make([]string, len(lines))
	for i, l := range lines {
		padded[i] = pad(l, width)
	}
	return block(col, row, style, padded...)
}

func (m *Model) chatPanel() []viz.Label {
	t := m.theme
	w := m.panelWidth()
	col := m.canvas.Width - w - 2
	inner := w - 2
	maxRows := m.canvas.Height - 2

	var body []string
	for _, msg := range m.session.Messages() {
		prefix := "bot  "
		if msg.Role == chat.RoleUser {
			prefix = "you  "
		}
		for i, line := range wrap(msg.Text, inner-len(prefix)) {
			if i > 0 {
				prefix = "     "
			}
			body = append(body, " "+prefix+line)
		}
	}
	if m.session.Loading() {
		body = append(body, " bot  "+viz.AnimatedSpinner(m.frames)+" thinking")
	}

	cursor := " "
	if m.focus == focusChat && m.cursorOn {
		cursor = "▌"
	}
	input := string(m.chatInput)
	if r := []rune(input); len(r) > inner-4 {
		input = string(r[len(r)-(inner-4):])
	}

	keep := maxRows - 4
	if keep > 0 && len(body) > keep {
		body = body[len(body)-keep:]
	}

	out := panel(col, 1, w, t.Title(), " AI Assistant ● online")
	out = append(out, panel(col, 2, w, t.Body(), body...)...)
	out = append(out, panel(col, 2+len(body), w, t.Dim(), "")...)
	out = append(out, panel(col, 3+len(body), w, t.Highlight(), " > "+input+cursor)...)
	out = append(out, panel(col, 4+len(body), w, t.Dim(), " enter send · esc close")...)
	return out
}

func (m *Model) contactPanel() []viz.Label {
	t := m.theme
	w := m.panelWidth()
	col := marginLeft
	draft := m.submitter.Draft()

	field := func(f contactField, label, value string) string {
		marker := "  "
		if m.focus == focusContact && m.formField == f {
			marker = "▸ "
			if m.cursorOn {
				value += "▌"
			}
		}
		return marker + fmt.Sprintf("%-8s", label) + value
	}

	out := panel(col, 1, w, t.Title(), " Send a message")
	out = append(out, panel(col, 3, w, t.Body(),
		field(fieldName, "name", draft.Name),
		field(fieldEmail, "email", draft.Email),
	)...)
	msgLines := wrap(field(fieldMessage, "message", draft.Message), w-2)
	out = append(out, panel(col, 5, w, t.Body(), msgLines...)...)

	row := 6 + len(msgLines)
	switch m.submitter.Status() {
	case contact.Submitting:
		out = append(out, panel(col, row, w, viz.StatusPaused, " "+viz.AnimatedSpinner(m.frames)+" sending…")...)
	case contact.Sent:
		out = append(out, panel(col, row, w, viz.StatusRunning, " ✓ message sent, thank you!")...)
	default:
		if m.formErr != "" {
			out = append(out, panel(col, row, w, lipgloss.NewStyle().Foreground(t.Error), " "+m.formErr)...)
		} else {
			out = append(out, panel(col, row, w, t.Dim(), " tab next field · enter send · esc close")...)
		}
	}
	return out
}

func (m *Model) helpPanel() []viz.Label {
	lines := []string{
		" keys",
		" 1-5 / tab   switch section",
		" ↑↓ f        browse and filter projects",
		" c           toggle assistant chat",
		" m           toggle contact form",
		" t           next theme (" + m.theme.Name + ")",
		" space       pause the field",
		" q           quit",
	}
	w := 42
	col := max((m.canvas.Width-w)/2, 0)
	row := max((m.canvas.Height-len(lines))/2, 0)
	return panel(col, row, w, m.theme.Body(), lines...)
}

// wrap breaks text on spaces into lines no wider than width runes.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(line) == 0:
			line = append(line, w...)
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = append(line[:0], w...)
		}
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}
	return lines
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
