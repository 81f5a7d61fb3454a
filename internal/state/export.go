package state

import (
	"fmt"
	"os"
)

// Exporter publishes the latest status line for external consumers.
type Exporter interface {
	Export(text string) error
}

// FileExporter overwrites Path with the status line on every export.
type FileExporter struct {
	Path string
}

// Export replaces the file contents with text and a trailing newline.
func (e FileExporter) Export(text string) error {
	if err := os.WriteFile(e.Path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write status export: %w", err)
	}
	return nil
}

// Discard drops every export.
type Discard struct{}

// Export implements Exporter.
func (Discard) Export(string) error { return nil }
