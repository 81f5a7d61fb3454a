package logtail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DefaultPollInterval is how long Next waits for new data before reporting
// that nothing is pending.
const DefaultPollInterval = 200 * time.Millisecond

// Follower reads lines appended to a file after it was opened. It is not
// safe for concurrent use.
//
// Rotation and truncation are not detected: if the file is replaced or
// shrunk underneath an open Follower, it keeps reading the old handle.
type Follower struct {
	path    string
	file    *os.File
	reader  *bufio.Reader
	partial strings.Builder
	wait    time.Duration
}

// Option configures a Follower.
type Option func(*Follower)

// WithPollInterval overrides DefaultPollInterval. Non-positive values are
// ignored.
func WithPollInterval(d time.Duration) Option {
	return func(f *Follower) {
		if d > 0 {
			f.wait = d
		}
	}
}

// Open opens path and positions the cursor at its current end. The error
// wraps os.ErrNotExist when the file is missing.
func Open(path string, opts ...Option) (*Follower, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("seek log: %w", err)
	}
	f := &Follower{
		path:   path,
		file:   file,
		reader: bufio.NewReader(file),
		wait:   DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Path returns the file being followed.
func (f *Follower) Path() string {
	return f.path
}

// PollInterval returns the wait Next applies when no line is ready.
func (f *Follower) PollInterval() time.Duration {
	return f.wait
}

// TryNext returns the next complete line without waiting. ok is false when
// no complete line has been appended yet. Bytes of an unfinished line are
// held until its newline arrives.
func (f *Follower) TryNext() (line string, ok bool, err error) {
	part, err := f.reader.ReadString('\n')
	if err == nil {
		f.partial.WriteString(part)
		line = strings.TrimRight(f.partial.String(), "\r\n")
		f.partial.Reset()
		return line, true, nil
	}
	if errors.Is(err, io.EOF) {
		f.partial.WriteString(part)
		return "", false, nil
	}
	return "", false, fmt.Errorf("read log: %w", err)
}

// Next returns the next complete line. When none is available it waits one
// poll interval, tries again and reports ok=false if the file is still
// quiet. It never blocks longer than a single poll interval.
func (f *Follower) Next(ctx context.Context) (string, bool, error) {
	line, ok, err := f.TryNext()
	if ok || err != nil {
		return line, ok, err
	}

	timer := time.NewTimer(f.wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case <-timer.C:
	}
	return f.TryNext()
}

// Close releases the underlying file.
func (f *Follower) Close() error {
	return f.file.Close()
}
