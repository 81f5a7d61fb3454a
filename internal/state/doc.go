// Package state holds everything the dashboard shows between redraws.
//
// # Overview
//
// Dashboard is the single owner of the visible call rows, the idle timer and
// the side-channel status export. The UI calls into it from its update loop
// only, so it carries no locks:
//
//	 follower line
//	      │
//	 event.Parse ──→ Dashboard.RecordEvent ──→ Buffer.Push
//	                        │                      │
//	                        ├──→ Exporter.Export   │
//	                        ↓                      ↓
//	                 lastActivity reset     View() reads Rows()
//
//	 every loop iteration: Dashboard.Tick(now)
//
// # Buffer
//
// Buffer is a bounded FIFO. Its limit tracks the terminal height minus the
// header rows; pushing into a full buffer evicts exactly the oldest row, and
// shrinking the limit drops the oldest rows first.
//
// # Idle Detection
//
// Tick compares now against the time of the last recorded call (or the
// dashboard's creation). Once the gap exceeds the idle threshold the
// IdleMarker is exported. The next call clears the idle state and exports
// its own line.
//
// # Status Export
//
// FileExporter overwrites one small file on every call and idle transition
// so a status bar can show the latest activity. Readers are not
// synchronised with the writer and may observe a partially written file.
// Export failures are logged and kept in LastExportErr; they never stop the
// dashboard.
package state
