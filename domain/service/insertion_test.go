package service

import (
	"errors"
	"testing"

	"github.com/A1-Triard/xelicon/domain/model"
	"github.com/A1-Triard/xelicon/domain/value"
)

func TestInsertionScenario4(t *testing.T) {
	content := "First line.\r\nThe 二 line.\r\nThird line.\r\n"
	buf, err := model.NewTextBuffer(content, navLineBreak)
	if err != nil {
		t.Fatal(err)
	}

	_, c1 := buf.NewCursorAt(1, 4, 17)
	_, c2 := buf.NewCursorAt(1, 7, 21)
	_, c3 := buf.NewCursorAt(1, 13, 26)
	c3.Spaces = 1
	_, c4 := buf.NewCursorAt(2, 13, 39)
	c4.Spaces = 2

	ins := NewInsertionService()
	if err := ins.Insert(buf, c1, "XXX"); err != nil {
		t.Fatalf("insert XXX: %v", err)
	}

	if c1.Column != 4 || c1.Index != 17 {
		t.Fatalf("C1 = (col %d, idx %d), want (4, 17)", c1.Column, c1.Index)
	}
	if text := buf.Content()[c1.Index : c1.Index+1]; text != "X" {
		t.Fatalf("C1 sits over %q, want \"X\"", text)
	}
	if c2.Column != 10 {
		t.Fatalf("C2.Column = %d, want 10", c2.Column)
	}
	if c3.Column != 16 || c3.Spaces != 1 {
		t.Fatalf("C3 = (col %d, spaces %d), want (16, 1)", c3.Column, c3.Spaces)
	}
	if c4.Line != 2 || c4.Column != 13 {
		t.Fatalf("C4 = (line %d, col %d), want (2, 13)", c4.Line, c4.Column)
	}

	if err := ins.Insert(buf, c3, "二"); err != nil {
		t.Fatalf("insert 二: %v", err)
	}
	if c3.Column != 16 || c3.Spaces != 0 {
		t.Fatalf("after second insert, C3 = (col %d, spaces %d), want (16, 0)", c3.Column, c3.Spaces)
	}
	if text := buf.Content()[c3.Index : c3.Index+len("二")]; text != "二" {
		t.Fatalf("C3 sits over %q, want \"二\"", text)
	}
	if c4.Column != 13 || c4.Spaces != 2 {
		t.Fatalf("C4 after second insert = (col %d, spaces %d), want (13, 2) unchanged", c4.Column, c4.Spaces)
	}
}

func TestInsertionRejectsLineBreakInText(t *testing.T) {
	buf, err := model.NewTextBuffer("abc\r\n", navLineBreak)
	if err != nil {
		t.Fatal(err)
	}
	_, c := buf.NewCursorAt(0, 0, 0)
	ins := NewInsertionService()
	if err := ins.Insert(buf, c, "a\r\nb"); err == nil {
		t.Fatal("expected error inserting text containing the line_break")
	}
}

func TestInsertionRollbackOnOom(t *testing.T) {
	buf, err := model.NewTextBuffer("abc\r\n", navLineBreak)
	if err != nil {
		t.Fatal(err)
	}
	_, c := buf.NewCursorAt(0, 0, 0)
	otherID, other := buf.NewCursorAt(0, value.MaxPos, 2)

	before := buf.Content()
	cSnapshot := *c
	otherSnapshot := *other

	ins := NewInsertionService()
	err = ins.Insert(buf, c, "x")
	if !errors.Is(err, value.ErrOom) {
		t.Fatalf("expected ErrOom, got %v", err)
	}
	if buf.Content() != before {
		t.Fatal("content mutated despite Oom")
	}
	if *c != cSnapshot {
		t.Fatal("inserting cursor mutated despite Oom")
	}
	if got := buf.Cursor(otherID); *got != otherSnapshot {
		t.Fatal("other cursor mutated despite Oom")
	}
}

func TestInsertionUpdatesView(t *testing.T) {
	content := "First line.\r\n二 line.\r\nThird line.\r\n"
	buf, err := model.NewTextBuffer(content, navLineBreak)
	if err != nil {
		t.Fatal(err)
	}
	_, v := buf.NewView(0, 3, value.NewColumnRange(0, 20))
	_, c := buf.NewCursorAt(0, 0, 0)

	ins := NewInsertionService()
	if err := ins.Insert(buf, c, "Hi"); err != nil {
		t.Fatal(err)
	}
	_, text := v.DisplayLine(0, buf.Content())
	if text != "HiFirst line." {
		t.Fatalf("line0 after insert = %q, want \"HiFirst line.\"", text)
	}
	_, text1 := v.DisplayLine(1, buf.Content())
	if text1 != "二 line." {
		t.Fatalf("line1 after insert = %q, want \"二 line.\" (shifted, unchanged text)", text1)
	}
}

// TestInsertionDistinguishesVirtualCursorsSharingAnIndex covers two cursors
// both past the end of a short real line ("ab", contentEnd at byte 2): their
// Index is identical (the line's contentEnd), but their Column/Spaces differ.
// The broadcast must tell them apart by Column, not by Index.
func TestInsertionDistinguishesVirtualCursorsSharingAnIndex(t *testing.T) {
	buf, err := model.NewTextBuffer("ab\r\n", navLineBreak)
	if err != nil {
		t.Fatal(err)
	}
	_, cA := buf.NewCursorAt(0, 3, 2)
	cA.Spaces = 1
	_, cB := buf.NewCursorAt(0, 5, 2)
	cB.Spaces = 3

	ins := NewInsertionService()
	if err := ins.Insert(buf, cA, "X"); err != nil {
		t.Fatal(err)
	}

	if cB.Column != 7 || cB.Index != 4 || cB.Spaces != 3 {
		t.Fatalf("cB = (col %d, idx %d, spaces %d), want (7, 4, 3)", cB.Column, cB.Index, cB.Spaces)
	}
}
