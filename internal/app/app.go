package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sdrdash/internal/config"
	"github.com/five82/sdrdash/internal/event"
	"github.com/five82/sdrdash/internal/logtail"
	"github.com/five82/sdrdash/internal/state"
	"github.com/five82/sdrdash/internal/talkgroup"
	"github.com/five82/sdrdash/internal/ui"
)

// ErrLogMissing is returned when today's uploader log does not exist.
var ErrLogMissing = errors.New("log file not found")

// Options configure the dashboard.
type Options struct {
	ConfigPath string
	Now        func() time.Time // nil uses time.Now; picks the dated log file
}

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog := setupLogging(cfg.DebugLog)
	defer closeLog()

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logPath := cfg.LogPath(now())

	dash := state.New(state.Options{
		Talkgroups: loadTalkgroups(cfg.TalkgroupsPath),
		Classifier: talkgroup.NewClassifier(cfg.Rules),
		Exporter:   newExporter(cfg.ExportPath),
		IdleAfter:  cfg.IdleAfter,
	})
	if cfg.Backfill > 0 {
		if err := backfill(dash, logPath, cfg.Backfill); err != nil {
			log.Printf("backfill skipped: %v", err)
		}
	}

	follower, err := logtail.Open(logPath, logtail.WithPollInterval(cfg.PollEvery))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if uiErr := ui.RunMissingLog(ctx, logPath); uiErr != nil {
				log.Printf("missing log screen: %v", uiErr)
			}
			return fmt.Errorf("%w: %s", ErrLogMissing, logPath)
		}
		return err
	}
	defer follower.Close()

	return ui.Run(ui.Options{
		Context:    ctx,
		Dashboard:  dash,
		Source:     follower,
		RetryAfter: cfg.PollEvery,
	})
}

// setupLogging sends log output to path while the TUI owns the terminal.
// Logging is discarded when the file cannot be opened.
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := tea.LogToFile(path, "sdrdash")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { _ = f.Close() }
}

func loadTalkgroups(path string) talkgroup.Map {
	m, err := talkgroup.Load(path)
	if err != nil {
		log.Printf("talkgroups unavailable: %v", err)
	}
	return m
}

func newExporter(path string) state.Exporter {
	if path == "" {
		return state.Discard{}
	}
	return state.FileExporter{Path: path}
}

// backfill seeds the dashboard with calls from the last lines of the log.
func backfill(dash *state.Dashboard, path string, lines int) error {
	recent, err := logtail.Read(path, lines)
	if err != nil {
		return err
	}
	for _, line := range recent {
		if ev, ok := event.Parse(line); ok {
			dash.Seed(ev)
		}
	}
	return nil
}
