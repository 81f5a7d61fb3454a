// Package config resolves where the dashboard reads its log and lookup table
// and where it writes the status export.
//
// # Configuration Discovery
//
// Load follows this order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/sdrdash/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Fields that are missing or empty keep their default
//
// # Default Values
//
//   - Log directory: ~/SDRTrunk/logs
//   - Daily log: <log_dir>/rdio-YYYYMMDD.log
//   - Talkgroup table: <log_dir>/talkgroups.tsv
//   - Status export: $TMPDIR/sdrdash-status.txt
//   - Debug log: $TMPDIR/sdrdash-debug.log
//   - Idle after: 10s
//   - Poll interval: 200ms
//   - Backfill: 0 (start at end of log)
//
// # TOML Format
//
//	log_dir = "~/SDRTrunk/logs"
//	talkgroups = "~/SDRTrunk/logs/talkgroups.tsv"
//	export_path = "/tmp/sdrdash-status.txt"
//	idle_seconds = 10
//	poll_millis = 200
//	backfill = 20
//
//	[[colors]]
//	bucket = "cyan"
//	codes = ["100", "110-119"]
//
// Color rules from the file are appended after the built-in table, so they
// only apply to codes the built-in table does not already claim. Set
// replace_default_colors = true to use the file's rules alone.
//
// # Error Handling
//
// Load returns errors for home directory lookup failures, unreadable files,
// invalid TOML and bad color rules. A missing file is not an error.
package config
