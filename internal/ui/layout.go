package ui

import "time"

// HeaderRows is the number of screen rows above the call list.
const HeaderRows = 2

// DefaultRetryAfter is the pause before reading again after a read error.
const DefaultRetryAfter = time.Second

const headerTitle = "📻 SDRTrunk Dashboard - Press 'q' to quit"
