package state

import (
	"fmt"
	"log"
	"time"

	"github.com/five82/sdrdash/internal/event"
	"github.com/five82/sdrdash/internal/talkgroup"
)

// IdleMarker is exported once no call has been seen for the idle threshold.
const IdleMarker = "📻 idle"

const (
	defaultIdleAfter = 10 * time.Second
	defaultLimit     = 50
)

// Options configure a Dashboard.
type Options struct {
	Talkgroups talkgroup.Map
	Classifier *talkgroup.Classifier // nil uses the built-in table
	Exporter   Exporter              // nil discards exports
	IdleAfter  time.Duration         // zero uses 10s
	Limit      int                   // initial row capacity; zero uses 50
	Now        func() time.Time      // nil uses time.Now
}

// Dashboard owns the visible call rows, the idle timer and the status export.
// It is not safe for concurrent use.
type Dashboard struct {
	talkgroups talkgroup.Map
	classifier *talkgroup.Classifier
	exporter   Exporter
	idleAfter  time.Duration
	now        func() time.Time

	buffer       *Buffer
	lastActivity time.Time
	idle         bool
	calls        int
	lastExport   string
	exportErr    error
}

// New builds a Dashboard. The idle timer starts at construction.
func New(opts Options) *Dashboard {
	d := &Dashboard{
		talkgroups: opts.Talkgroups,
		classifier: opts.Classifier,
		exporter:   opts.Exporter,
		idleAfter:  opts.IdleAfter,
		now:        opts.Now,
	}
	if d.classifier == nil {
		d.classifier = talkgroup.NewClassifier(talkgroup.DefaultRules())
	}
	if d.exporter == nil {
		d.exporter = Discard{}
	}
	if d.idleAfter <= 0 {
		d.idleAfter = defaultIdleAfter
	}
	if d.now == nil {
		d.now = time.Now
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	d.buffer = NewBuffer(limit)
	d.lastActivity = d.now()
	return d
}

// FormatRow renders a call as shown on screen and in the status export.
func FormatRow(ev event.Event, label string) string {
	code := ev.Talkgroup
	if code == "" {
		code = "-"
	}
	return fmt.Sprintf("🕒 %s  🔊 TG:%s - %s", ev.Timestamp, code, label)
}

func (d *Dashboard) row(ev event.Event) Row {
	return Row{
		Text:   FormatRow(ev, d.talkgroups.Label(ev.Talkgroup)),
		Bucket: d.classifier.Classify(ev.Talkgroup),
	}
}

// RecordEvent adds a call to the display, resets the idle timer and exports
// the rendered line.
func (d *Dashboard) RecordEvent(ev event.Event) Row {
	r := d.row(ev)
	d.buffer.Push(r)
	d.calls++
	d.lastActivity = d.now()
	d.idle = false
	d.export(r.Text)
	return r
}

// Seed adds a historical call to the display without touching the idle
// timer or the export.
func (d *Dashboard) Seed(ev event.Event) Row {
	r := d.row(ev)
	d.buffer.Push(r)
	return r
}

// Tick exports the idle marker once the time since the last call exceeds the
// idle threshold. The marker is written once per idle period; a failed write
// is retried on the next tick.
func (d *Dashboard) Tick(now time.Time) {
	if d.idle {
		return
	}
	if now.Sub(d.lastActivity) <= d.idleAfter {
		return
	}
	if d.export(IdleMarker) {
		d.idle = true
	}
}

func (d *Dashboard) export(text string) bool {
	if err := d.exporter.Export(text); err != nil {
		d.exportErr = err
		log.Printf("status export failed: %v", err)
		return false
	}
	d.exportErr = nil
	d.lastExport = text
	return true
}

// SetLimit resizes the row buffer.
func (d *Dashboard) SetLimit(limit int) {
	d.buffer.SetLimit(limit)
}

// Rows returns the visible rows, oldest first.
func (d *Dashboard) Rows() []Row {
	return d.buffer.Rows()
}

// Idle reports whether the idle marker is the current export.
func (d *Dashboard) Idle() bool {
	return d.idle
}

// Calls returns the number of calls recorded since start.
func (d *Dashboard) Calls() int {
	return d.calls
}

// LastExport returns the last successfully exported text.
func (d *Dashboard) LastExport() string {
	return d.lastExport
}

// LastExportErr returns the error from the most recent export attempt.
func (d *Dashboard) LastExportErr() error {
	return d.exportErr
}

// LastActivity returns when the last call was recorded.
func (d *Dashboard) LastActivity() time.Time {
	return d.lastActivity
}

// TalkgroupCount returns the number of labels loaded.
func (d *Dashboard) TalkgroupCount() int {
	return len(d.talkgroups)
}
