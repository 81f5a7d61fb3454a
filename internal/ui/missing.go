package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// missingLogModel reports that the log could not be opened and waits for any
// key before exiting.
type missingLogModel struct {
	path  string
	theme Theme
	width int
	done  bool
}

func newMissingLogModel(path string) missingLogModel {
	return missingLogModel{path: path, theme: DefaultTheme()}
}

func (m missingLogModel) Init() tea.Cmd {
	return nil
}

func (m missingLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m missingLogModel) View() string {
	if m.done {
		return ""
	}
	return m.theme.Header.Render(truncate(headerTitle, m.width)) + "\n\n" +
		m.theme.Danger.Render(truncate(fmt.Sprintf("Log file not found: %s", m.path), m.width))
}

// RunMissingLog shows the missing-log screen until a key is pressed.
func RunMissingLog(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(newMissingLogModel(path), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
