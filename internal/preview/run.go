package preview

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the preview program and blocks until the user quits
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
