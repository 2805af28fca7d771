package model

// Cursor is a position in a TextBuffer expressed four ways at once: the
// logical line number, the column (cell count) within that line, the byte
// index of the grapheme it sits on, and the "sticky column" bookkeeping
// needed to survive vertical motion through shorter lines (spec.md §3, §4.5).
type Cursor struct {
	Line   int
	Column int
	Index  int
	// Spaces is the count of virtual trailing spaces left of the cursor,
	// beyond the line's last real grapheme. Zero when sitting on real text.
	Spaces int
	// Offset is the sticky-column remainder: after a vertical move that
	// landed inside a wide grapheme, the cells between Column (that
	// grapheme's first cell) and the column the cursor was aiming for.
	// Preserved across vertical moves and reset to 0 by any horizontal move.
	Offset int
}

// NewCursor creates a Cursor at the start of line 0, byte index 0.
func NewCursor() *Cursor {
	return &Cursor{}
}

// Clone duplicates the cursor's record. The copy is an independent Cursor;
// the caller is responsible for registering it with a TextBuffer so it
// receives subsequent broadcast updates.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	return &clone
}

// DesiredColumn is the sticky target column for vertical motion:
// column + offset (spec.md §4.5).
func (c *Cursor) DesiredColumn() int {
	return c.Column + c.Offset
}
