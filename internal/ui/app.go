package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sdrdash/internal/event"
	"github.com/five82/sdrdash/internal/state"
)

// LineSource yields lines appended to the watched log.
type LineSource interface {
	Next(ctx context.Context) (string, bool, error)
	Path() string
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Dashboard  *state.Dashboard
	Source     LineSource
	RetryAfter time.Duration    // fixed wait after a read error; zero uses DefaultRetryAfter
	Now        func() time.Time // nil uses time.Now
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	dash       *state.Dashboard
	source     LineSource
	retryAfter time.Duration
	now        func() time.Time

	keys  keyMap
	theme Theme

	width    int
	height   int
	readErr  error
	quitting bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	retry := opts.RetryAfter
	if retry <= 0 {
		retry = DefaultRetryAfter
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return Model{
		ctx:        ctx,
		dash:       opts.Dashboard,
		source:     opts.Source,
		retryAfter: retry,
		now:        now,
		keys:       DefaultKeyMap(),
		theme:      DefaultTheme(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.followCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dash.SetLimit(m.height - HeaderRows)
		return m, nil

	case followMsg:
		return m.handleFollow(msg)

	case retryMsg:
		return m, m.followCmd()
	}

	return m, nil
}

// handleFollow runs one iteration of the follow loop: record the line if it
// is a call, refresh idle state, then ask for the next line.
func (m Model) handleFollow(msg followMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) || errors.Is(msg.err, context.DeadlineExceeded) {
			return m, nil
		}
		log.Printf("follow %s: %v", m.source.Path(), msg.err)
		m.readErr = msg.err
		m.dash.Tick(m.now())
		return m, retryCmd(m.retryAfter)
	}

	m.readErr = nil
	if msg.ok {
		if ev, ok := event.Parse(msg.line); ok {
			m.dash.RecordEvent(ev)
		}
	}
	m.dash.Tick(m.now())
	return m, m.followCmd()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	for _, row := range m.dash.Rows() {
		b.WriteString("\n")
		b.WriteString(m.renderRow(row))
	}
	return b.String()
}

// Messages

type followMsg struct {
	line string
	ok   bool
	err  error
}

type retryMsg struct{}

// Commands

// followCmd pulls one line. Only one followCmd is in flight at a time, so
// the source is never read concurrently.
func (m Model) followCmd() tea.Cmd {
	if m.source == nil {
		return nil
	}
	ctx, src := m.ctx, m.source
	return func() tea.Msg {
		line, ok, err := src.Next(ctx)
		return followMsg{line: line, ok: ok, err: err}
	}
}

func retryCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return retryMsg{}
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Dashboard == nil {
		return errors.New("ui requires a dashboard")
	}
	if opts.Source == nil {
		return errors.New("ui requires a line source")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
