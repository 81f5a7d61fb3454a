package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/sdrdash/internal/state"
)

// truncate cuts s to width cells. Before the first WindowSizeMsg the width
// is unknown and s is returned unchanged.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "")
}

func (m Model) truncate(s string) string {
	return truncate(s, m.width)
}

func (m Model) renderHeader() string {
	return m.theme.Header.Render(m.truncate(headerTitle))
}

// renderStatus renders the second header row: source file, counters and the
// live/idle state. Read and export failures replace the counters.
func (m Model) renderStatus() string {
	if m.readErr != nil {
		return m.theme.Danger.Render(m.truncate(fmt.Sprintf("read error: %v", m.readErr)))
	}
	if err := m.dash.LastExportErr(); err != nil {
		return m.theme.Danger.Render(m.truncate(fmt.Sprintf("export error: %v", err)))
	}

	source := "-"
	if m.source != nil {
		source = filepath.Base(m.source.Path())
	}
	parts := []string{
		source,
		fmt.Sprintf("%d talkgroups", m.dash.TalkgroupCount()),
		fmt.Sprintf("%d calls", m.dash.Calls()),
	}
	if m.dash.Idle() {
		parts = append(parts, "idle")
	} else {
		parts = append(parts, "live")
	}
	return m.theme.Status.Render(m.truncate(strings.Join(parts, "  •  ")))
}

func (m Model) renderRow(row state.Row) string {
	return m.theme.BucketStyle(row.Bucket).Render(m.truncate(row.Text))
}
