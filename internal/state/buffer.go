package state

import "github.com/five82/sdrdash/internal/talkgroup"

// Row is one rendered line of the call list.
type Row struct {
	Text   string
	Bucket talkgroup.Bucket
}

// Buffer keeps the most recent rows up to a limit, oldest first.
type Buffer struct {
	rows  []Row
	limit int
}

// NewBuffer returns a buffer holding at most limit rows. Limits below one
// are raised to one.
func NewBuffer(limit int) *Buffer {
	return &Buffer{limit: max(limit, 1)}
}

// Push appends r, evicting the oldest row when the buffer is full.
func (b *Buffer) Push(r Row) {
	b.rows = append(b.rows, r)
	b.trim()
}

// SetLimit changes the capacity, dropping the oldest rows if the buffer now
// holds too many.
func (b *Buffer) SetLimit(limit int) {
	b.limit = max(limit, 1)
	b.trim()
}

// Limit returns the current capacity.
func (b *Buffer) Limit() int {
	return b.limit
}

// Len returns the number of rows held.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// Rows returns a copy of the rows, oldest first.
func (b *Buffer) Rows() []Row {
	if len(b.rows) == 0 {
		return nil
	}
	dup := make([]Row, len(b.rows))
	copy(dup, b.rows)
	return dup
}

func (b *Buffer) trim() {
	if overflow := len(b.rows) - b.limit; overflow > 0 {
		b.rows = append([]Row(nil), b.rows[overflow:]...)
	}
}
