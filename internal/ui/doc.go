// Package ui draws the call list and drives the follow loop.
//
// # Screen Layout
//
//	📻 SDRTrunk Dashboard - Press 'q' to quit      header (magenta, bold)
//	rdio-20240601.log  •  42 talkgroups  •  7 calls  •  live
//	🕒 2024-06-01 12:00:01  🔊 TG:383 - Fire Dispatch
//	🕒 2024-06-01 12:00:09  🔊 TG:999 - Unknown
//	...
//
// Rows are drawn oldest first, each cut to the terminal width and colored by
// its talkgroup bucket. The dashboard keeps height minus HeaderRows rows.
//
// # Loop
//
// Model is a Bubble Tea model. Every update runs on the program's single
// event loop:
//
//  1. tea.KeyMsg: 'q' or ctrl+c quits
//  2. followMsg: a line (or nothing) from the LineSource; calls are recorded
//     in the dashboard, then Dashboard.Tick runs and the next read is issued
//  3. View: full redraw from Dashboard.Rows
//
// Exactly one read command is outstanding at any time. The LineSource bounds
// each read to its poll interval, so idle detection keeps running while the
// log is quiet. Read errors are shown in the status row and the read is
// retried after a fixed delay.
//
// # Missing Log
//
// RunMissingLog shows "Log file not found: <path>" and exits on any key.
package ui
