package tui

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the program on the alternate screen with mouse motion and
// focus reporting. FOLIO_DEBUG names a log file for the session.
func Run(opts Options) error {
	if path := os.Getenv("FOLIO_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "folio")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	return err
}
