package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sdrdash/internal/talkgroup"
)

// Theme maps talkgroup buckets and chrome to terminal colors.
type Theme struct {
	Header  lipgloss.Style
	Status  lipgloss.Style
	Danger  lipgloss.Style
	Buckets map[talkgroup.Bucket]lipgloss.Style
}

// DefaultTheme uses the basic ANSI palette plus 256-color brown and orange,
// so it renders on any color terminal and follows the terminal background.
func DefaultTheme() Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Theme{
		Header: fg("5").Bold(true),
		Status: fg("8"),
		Danger: fg("1").Bold(true),
		Buckets: map[talkgroup.Bucket]lipgloss.Style{
			talkgroup.BucketRed:     fg("1"),
			talkgroup.BucketGreen:   fg("2"),
			talkgroup.BucketBrown:   fg("94"),
			talkgroup.BucketOrange:  fg("208"),
			talkgroup.BucketWhite:   fg("7"),
			talkgroup.BucketYellow:  fg("3"),
			talkgroup.BucketCyan:    fg("6"),
			talkgroup.BucketMagenta: fg("5"),
		},
	}
}

// BucketStyle returns the row style for b. BucketDefault is unstyled.
func (t Theme) BucketStyle(b talkgroup.Bucket) lipgloss.Style {
	if s, ok := t.Buckets[b]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
