package state

import (
	"fmt"
	"testing"

	"github.com/five82/sdrdash/internal/talkgroup"
)

func rowN(n int) Row {
	return Row{Text: fmt.Sprintf("row %d", n), Bucket: talkgroup.BucketDefault}
}

func TestBuffer_EvictsOldest(t *testing.T) {
	b := NewBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Push(rowN(i))
		if b.Len() > 3 {
			t.Fatalf("Len = %d after push %d, want <= 3", b.Len(), i)
		}
	}

	rows := b.Rows()
	want := []string{"row 3", "row 4", "row 5"}
	if len(rows) != len(want) {
		t.Fatalf("Rows has %d entries, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Text != w {
			t.Errorf("Rows[%d] = %q, want %q", i, rows[i].Text, w)
		}
	}
}

func TestBuffer_SetLimitShrinks(t *testing.T) {
	b := NewBuffer(5)
	for i := 1; i <= 5; i++ {
		b.Push(rowN(i))
	}
	b.SetLimit(2)
	rows := b.Rows()
	if len(rows) != 2 || rows[0].Text != "row 4" || rows[1].Text != "row 5" {
		t.Fatalf("Rows after shrink = %#v, want rows 4 and 5", rows)
	}

	b.SetLimit(10)
	b.Push(rowN(6))
	if b.Len() != 3 {
		t.Fatalf("Len after grow = %d, want 3", b.Len())
	}
}

func TestBuffer_MinimumLimit(t *testing.T) {
	b := NewBuffer(0)
	if b.Limit() != 1 {
		t.Fatalf("Limit = %d, want 1", b.Limit())
	}
	b.SetLimit(-4)
	if b.Limit() != 1 {
		t.Fatalf("Limit = %d, want 1", b.Limit())
	}
	b.Push(rowN(1))
	b.Push(rowN(2))
	if rows := b.Rows(); len(rows) != 1 || rows[0].Text != "row 2" {
		t.Fatalf("Rows = %#v, want only row 2", rows)
	}
}

func TestBuffer_RowsIsCopy(t *testing.T) {
	b := NewBuffer(2)
	if b.Rows() != nil {
		t.Fatal("empty buffer Rows should be nil")
	}
	b.Push(rowN(1))
	rows := b.Rows()
	rows[0].Text = "changed"
	if b.Rows()[0].Text != "row 1" {
		t.Fatal("Rows should return a copy")
	}
}
