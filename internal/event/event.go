// Package event extracts call records from rdio-scanner uploader log lines.
//
// A recognised line looks like:
//
//	2024-06-01 12:00:01 newcall: talkgroup=383 file=/rec/001.mp3
//
// Only lines containing Marker are events. Fields are whitespace separated;
// the first two form the timestamp and the rest are scanned for key=value
// tokens. Missing tokens leave the matching field empty.
package event

import "strings"

// Marker identifies a new-call record.
const Marker = "newcall:"

const (
	talkgroupKey = "talkgroup="
	fileKey      = "file="
)

// Event is a single parsed call. Empty Talkgroup or File means the token was
// not present.
type Event struct {
	Timestamp string
	Talkgroup string
	File      string
}

// HasTalkgroup reports whether the line carried a talkgroup code.
func (e Event) HasTalkgroup() bool {
	return e.Talkgroup != ""
}

// Parse returns the event carried by line and true, or false when line is
// not a new-call record.
func Parse(line string) (Event, bool) {
	if !strings.Contains(line, Marker) {
		return Event{}, false
	}
	fields := strings.Fields(line)

	return Event{
		Timestamp: strings.Join(fields[:min(2, len(fields))], " "),
		Talkgroup: tokenValue(fields, talkgroupKey),
		File:      tokenValue(fields, fileKey),
	}, true
}

func tokenValue(fields []string, prefix string) string {
	for _, f := range fields {
		if v, ok := strings.CutPrefix(f, prefix); ok {
			return v
		}
	}
	return ""
}
