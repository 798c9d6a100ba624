package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/folio/internal/viz"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.teardown()
		return nil
	}
	switch m.focus {
	case focusChat:
		return m.chatKey(msg)
	case focusContact:
		m.contactKey(msg)
		return nil
	}
	m.pageKey(msg)
	return nil
}

func (m *Model) pageKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "q":
		m.teardown()
	case "1", "2", "3", "4", "5":
		m.section = section(msg.String()[0] - '1')
	case "tab", "right", "l":
		m.section = (m.section + 1) % sectionCount
	case "shift+tab", "left", "h":
		m.section = (m.section + sectionCount - 1) % sectionCount
	case "up", "k":
		if m.section == sectionProjects && m.projectIdx > 0 {
			m.projectIdx--
		}
	case "down", "j":
		if m.section == sectionProjects && m.projectIdx < len(m.projects())-1 {
			m.projectIdx++
		}
	case "f":
		if m.section == sectionProjects {
			m.category = (m.category + 1) % (len(m.content.Categories()) + 1)
			m.projectIdx = 0
		}
	case "c":
		m.chatOpen = !m.chatOpen
		if m.chatOpen {
			m.focus = focusChat
		}
	case "m":
		m.formOpen = !m.formOpen
		if m.formOpen {
			m.focus = focusContact
			m.formErr = ""
		}
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
	case " ":
		m.paused = !m.paused
		m.syncVisibility()
	case "?":
		m.showHelp = !m.showHelp
	}
}

func (m *Model) chatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.chatOpen = false
		m.focus = m.nextFocus()
	case tea.KeyTab:
		if m.formOpen {
			m.focus = focusContact
		}
	case tea.KeyEnter:
		return m.sendChat()
	case tea.KeyBackspace:
		if n := len(m.chatInput); n > 0 {
			m.chatInput = m.chatInput[:n-1]
		}
	case tea.KeySpace:
		m.chatInput = append(m.chatInput, ' ')
	case tea.KeyRunes:
		m.chatInput = append(m.chatInput, msg.Runes...)
	}
	return nil
}

func (m *Model) contactKey(msg tea.KeyMsg) {
	draft := m.submitter.Draft()
	target := &draft.Name
	switch m.formField {
	case fieldEmail:
		target = &draft.Email
	case fieldMessage:
		target = &draft.Message
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.formOpen = false
		m.focus = m.nextFocus()
	case tea.KeyTab, tea.KeyDown:
		m.formField = (m.formField + 1) % fieldCount
	case tea.KeyShiftTab, tea.KeyUp:
		m.formField = (m.formField + fieldCount - 1) % fieldCount
	case tea.KeyEnter:
		if err := m.submitter.Submit(); err != nil {
			m.formErr = err.Error()
		} else {
			m.formErr = ""
		}
	case tea.KeyBackspace:
		if r := []rune(*target); len(r) > 0 {
			*target = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		*target += " "
	case tea.KeyRunes:
		*target += string(msg.Runes)
	}
}

// nextFocus picks which open panel keeps the keyboard after one closes.
func (m *Model) nextFocus() focus {
	switch {
	case m.chatOpen:
		return focusChat
	case m.formOpen:
		return focusContact
	}
	return focusPage
}
