// Package logtail reads the rdio-scanner log the dashboard watches.
//
// # Overview
//
// Two entry points are provided:
//
//  1. Follower: a pull cursor over lines appended to a live file
//  2. Read: the last N lines of a file, used to backfill the display
//
// # Following
//
// Open seeks to the end of the file once, so only lines written after the
// dashboard starts are seen. Each call to TryNext returns at most one
// complete line or reports that nothing is pending; it never blocks. Next
// adds a bounded wait (DefaultPollInterval, 200ms) before giving up, which
// lets the caller service keyboard input and idle timers during quiet
// periods without spinning.
//
//	f, err := logtail.Open(path)
//	if errors.Is(err, os.ErrNotExist) {
//		// log has not been created yet
//	}
//	for {
//		line, ok, err := f.Next(ctx)
//		...
//	}
//
// A line written in several chunks is assembled internally and returned only
// once its terminating newline is on disk. Trailing "\r\n" is stripped.
//
// # Ring Buffer Read
//
// Read scans the file once and keeps the last maxLines in a circular
// buffer, so memory stays O(maxLines) regardless of file size. A missing
// file returns nil, nil.
//
// # Limitations
//
// No log rotation handling. The uploader starts a new rdio-YYYYMMDD.log at
// midnight; a running Follower keeps reading the previous day's file. If the
// file is truncated in place the Follower stalls until the file grows past
// its old offset.
package logtail
