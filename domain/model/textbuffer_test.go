package model

import (
	"testing"

	"github.com/A1-Triard/xelicon/domain/value"
)

func TestNewTextBufferRejectsEmptySeparator(t *testing.T) {
	if _, err := NewTextBuffer("abc", ""); err == nil {
		t.Fatal("expected error for empty line_break")
	}
}

func TestNewTextBufferRejectsRepeatingSeparator(t *testing.T) {
	if _, err := NewTextBuffer("abc", "aa"); err == nil {
		t.Fatal("expected error for repeating-character line_break")
	}
}

func TestTextBufferLineCount(t *testing.T) {
	b, err := NewTextBuffer(scenarioContent, lineBreak)
	if err != nil {
		t.Fatal(err)
	}
	if n := b.LineCount(); n != 3 {
		t.Errorf("LineCount() = %d, want 3", n)
	}
}

func TestTextBufferViewAndCursorRegistries(t *testing.T) {
	b, err := NewTextBuffer(scenarioContent, lineBreak)
	if err != nil {
		t.Fatal(err)
	}
	id, v := b.NewView(0, 2, value.NewColumnRange(0, 20))
	if b.View(id) != v {
		t.Fatal("View(id) did not return the registered view")
	}
	b.RemoveView(id)
	if b.View(id) != nil {
		t.Fatal("View(id) should be nil after RemoveView")
	}

	cid, c := b.NewCursorAt(0, 0, 0)
	if b.Cursor(cid) != c {
		t.Fatal("Cursor(id) did not return the registered cursor")
	}
	clone := c.Clone()
	cloneID := b.AddCursor(clone)
	if cloneID == cid {
		t.Fatal("cloned cursor must get a distinct id")
	}
	b.RemoveCursor(cid)
	if b.Cursor(cid) != nil {
		t.Fatal("Cursor(id) should be nil after RemoveCursor")
	}
}

func TestTextBufferColumnOf(t *testing.T) {
	b, err := NewTextBuffer(scenarioContent, lineBreak)
	if err != nil {
		t.Fatal(err)
	}
	// Line 1 is "二 line.\r\n"; byte index 3 is right after the wide grapheme.
	idx := b.LineStart(1) + len("二")
	if col := b.ColumnOf(1, idx); col != 2 {
		t.Errorf("ColumnOf(1, after 二) = %d, want 2", col)
	}
}
