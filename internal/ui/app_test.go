package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sdrdash/internal/state"
	"github.com/five82/sdrdash/internal/talkgroup"
)

type fakeSource struct {
	lines []string
	err   error
	calls int
}

func (s *fakeSource) Next(context.Context) (string, bool, error) {
	s.calls++
	if s.err != nil {
		return "", false, s.err
	}
	if len(s.lines) == 0 {
		return "", false, nil
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true, nil
}

func (s *fakeSource) Path() string { return "/logs/rdio-20240601.log" }

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newTestModel(t *testing.T, src *fakeSource) (Model, *state.Dashboard, *testClock, string) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
	exportPath := filepath.Join(t.TempDir(), "status.txt")
	dash := state.New(state.Options{
		Talkgroups: talkgroup.Map{"383": "Fire Dispatch"},
		Exporter:   state.FileExporter{Path: exportPath},
		IdleAfter:  10 * time.Second,
		Now:        clock.Now,
	})
	m := New(Options{
		Dashboard:  dash,
		Source:     src,
		RetryAfter: time.Millisecond,
		Now:        clock.Now,
	})
	return m, dash, clock, exportPath
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		m, _, _, _ := newTestModel(t, &fakeSource{})
		m, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%v: no command returned, want quit", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%v: command did not quit", msg)
		}
		if m.View() != "" {
			t.Fatalf("%v: View after quit = %q, want empty", msg, m.View())
		}
	}
}

func TestUpdate_OtherKeysIgnored(t *testing.T) {
	m, _, _, _ := newTestModel(t, &fakeSource{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Fatal("non-quit key returned a command")
	}
}

func TestInit_PullsFromSource(t *testing.T) {
	src := &fakeSource{lines: []string{"hello"}}
	m, _, _, _ := newTestModel(t, src)
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init returned nil command")
	}
	msg, ok := cmd().(followMsg)
	if !ok || !msg.ok || msg.line != "hello" {
		t.Fatalf("Init command = %#v, want followMsg hello", msg)
	}
}

func TestFollow_RecordsCall(t *testing.T) {
	src := &fakeSource{}
	m, dash, _, exportPath := newTestModel(t, src)

	m, cmd := update(t, m, followMsg{line: "2024-06-01 12:00:01 newcall: talkgroup=383 file=/rec/001.mp3", ok: true})
	rows := dash.Rows()
	if len(rows) != 1 {
		t.Fatalf("Rows has %d entries, want 1", len(rows))
	}
	if rows[0].Bucket != talkgroup.BucketGreen {
		t.Fatalf("Bucket = %v, want green", rows[0].Bucket)
	}
	if !strings.Contains(rows[0].Text, "Fire Dispatch") {
		t.Fatalf("Text = %q, want Fire Dispatch", rows[0].Text)
	}
	got, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != rows[0].Text+"\n" {
		t.Fatalf("export = %q, want %q", got, rows[0].Text+"\n")
	}

	if cmd == nil {
		t.Fatal("no follow command after a line")
	}
	if _, ok := cmd().(followMsg); !ok || src.calls != 1 {
		t.Fatalf("follow command did not read the source (calls=%d)", src.calls)
	}
	if !strings.Contains(m.View(), "TG:383 - Fire Dispatch") {
		t.Fatalf("View missing row:\n%s", m.View())
	}
}

func TestFollow_IgnoresNonCalls(t *testing.T) {
	m, dash, _, exportPath := newTestModel(t, &fakeSource{})
	_, cmd := update(t, m, followMsg{line: "2024-06-01 12:00:01 upload: done", ok: true})
	if len(dash.Rows()) != 0 {
		t.Fatal("non-call line added a row")
	}
	if _, err := os.Stat(exportPath); !os.IsNotExist(err) {
		t.Fatalf("export written for a non-call line: %v", err)
	}
	if cmd == nil {
		t.Fatal("no follow command after a non-call line")
	}
}

func TestFollow_UnknownTalkgroup(t *testing.T) {
	m, dash, _, _ := newTestModel(t, &fakeSource{})
	update(t, m, followMsg{line: "2024-06-01 12:00:01 newcall: talkgroup=999 file=/rec/001.mp3", ok: true})
	rows := dash.Rows()
	if len(rows) != 1 || rows[0].Bucket != talkgroup.BucketDefault {
		t.Fatalf("Rows = %#v, want one default row", rows)
	}
	if !strings.HasSuffix(rows[0].Text, "TG:999 - Unknown") {
		t.Fatalf("Text = %q, want Unknown label", rows[0].Text)
	}
}

func TestFollow_PendingTicksIdle(t *testing.T) {
	m, dash, clock, exportPath := newTestModel(t, &fakeSource{})

	clock.t = clock.t.Add(11 * time.Second)
	m, cmd := update(t, m, followMsg{})
	if cmd == nil {
		t.Fatal("no follow command after pending")
	}
	if !dash.Idle() {
		t.Fatal("dashboard not idle after threshold")
	}
	got, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != state.IdleMarker+"\n" {
		t.Fatalf("export = %q, want idle marker", got)
	}
	if !strings.Contains(m.View(), "idle") {
		t.Fatalf("View does not show idle:\n%s", m.View())
	}
}

func TestFollow_ReadErrorRetries(t *testing.T) {
	m, _, _, _ := newTestModel(t, &fakeSource{})
	m, cmd := update(t, m, followMsg{err: errors.New("input/output error")})
	if !strings.Contains(m.View(), "read error: input/output error") {
		t.Fatalf("View missing read error:\n%s", m.View())
	}
	if cmd == nil {
		t.Fatal("no retry command after read error")
	}
	if _, ok := cmd().(retryMsg); !ok {
		t.Fatal("read error did not schedule a retry")
	}

	m, cmd = update(t, m, retryMsg{})
	if cmd == nil {
		t.Fatal("retry did not resume following")
	}
	m, _ = update(t, m, followMsg{})
	if strings.Contains(m.View(), "read error") {
		t.Fatal("read error still shown after a successful read")
	}
}

func TestFollow_StopsOnCancel(t *testing.T) {
	m, _, _, _ := newTestModel(t, &fakeSource{})
	_, cmd := update(t, m, followMsg{err: context.Canceled})
	if cmd != nil {
		t.Fatal("follow continued after context cancellation")
	}
}

func TestWindowSize_BoundsRows(t *testing.T) {
	m, dash, _, _ := newTestModel(t, &fakeSource{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 5})

	for _, tg := range []string{"290", "383", "201", "231", "999"} {
		m, _ = update(t, m, followMsg{line: "2024-06-01 12:00:01 newcall: talkgroup=" + tg, ok: true})
	}
	rows := dash.Rows()
	if len(rows) != 5-HeaderRows {
		t.Fatalf("Rows has %d entries, want %d", len(rows), 5-HeaderRows)
	}
	if !strings.Contains(rows[len(rows)-1].Text, "TG:999") {
		t.Fatalf("newest row = %q, want TG:999", rows[len(rows)-1].Text)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("View has %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line %d width = %d, want <= 30: %q", i, w, line)
		}
	}
}

func TestView_HeaderFirst(t *testing.T) {
	m, _, _, _ := newTestModel(t, &fakeSource{})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != HeaderRows {
		t.Fatalf("empty View has %d lines, want %d", len(lines), HeaderRows)
	}
	if !strings.Contains(lines[0], headerTitle) {
		t.Fatalf("first line = %q, want header", lines[0])
	}
	if !strings.Contains(lines[1], "rdio-20240601.log") || !strings.Contains(lines[1], "1 talkgroups") {
		t.Fatalf("status line = %q", lines[1])
	}
}

func TestRun_RequiresDependencies(t *testing.T) {
	if err := Run(Options{Source: &fakeSource{}}); err == nil {
		t.Fatal("Run without dashboard returned nil error")
	}
	if err := Run(Options{Dashboard: state.New(state.Options{})}); err == nil {
		t.Fatal("Run without source returned nil error")
	}
}
