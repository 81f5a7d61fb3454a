// Package app wires configuration, the log follower, dashboard state and the
// UI into the running program.
//
// # Startup
//
//  1. Load config (defaults when ~/.config/sdrdash/config.toml is missing)
//  2. Redirect log output to the debug log file
//  3. Load the talkgroup table (missing file means every label is "Unknown")
//  4. Optionally seed the display from the tail of today's log
//  5. Open today's rdio-YYYYMMDD.log at its end
//  6. Run the Bubble Tea UI until 'q' or SIGINT/SIGTERM
//
// If today's log does not exist, a one-line error screen is shown until a
// key is pressed and Run returns ErrLogMissing. The command exits non-zero
// in that case.
//
// # Error Handling
//
// Only config errors and a missing or unreadable log stop the program.
// Talkgroup table problems, backfill failures and status export failures are
// logged and otherwise ignored.
package app
