package talkgroup

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// UnknownLabel is shown for codes missing from the lookup table.
const UnknownLabel = "Unknown"

// Map resolves talkgroup codes to human-readable labels.
type Map map[string]string

// Label returns the label for code, or UnknownLabel.
func (m Map) Label(code string) string {
	if code == "" {
		return UnknownLabel
	}
	if label, ok := m[code]; ok {
		return label
	}
	return UnknownLabel
}

// Load reads a tab-separated code/label file. Blank lines and lines starting
// with '#' are skipped, as are lines with fewer than two columns. A missing
// file yields an empty map.
func Load(path string) (Map, error) {
	m := Map{}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return m, fmt.Errorf("open talkgroups: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		m[parts[0]] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return Map{}, fmt.Errorf("read talkgroups: %w", err)
	}
	return m, nil
}
