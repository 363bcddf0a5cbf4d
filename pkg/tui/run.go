package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Run starts the explorer on the controlling terminal and blocks until the
// user quits. Without a terminal on stdout colors are disabled.
func Run(m *Model) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		if w, _, err := term.GetSize(fd); err == nil {
			m.width = w
		}
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
