// Package xelicon is a unicode-aware text buffer for terminal editors:
// multiple independent Views (a line window clipped to a column range) and
// Cursors (column/index duality, virtual trailing spaces) attach to one
// shared TextBuffer. Editing funnels through TextBuffer.Insert, which keeps
// every live View and Cursor consistent without rebuilding them.
//
// The terminal rendering port, the window tree, the input event loop, and
// control-character glyph policy are all external collaborators: this
// package exposes only a line iterator over displayable substrings,
// per-cell offset/padding information, and cursor/insertion/move
// primitives.
package xelicon

import (
	"github.com/A1-Triard/xelicon/domain/model"
	"github.com/A1-Triard/xelicon/domain/service"
	"github.com/A1-Triard/xelicon/domain/value"
)

// Columns is a half-open column (cell) range, e.g. NewColumns(0, 80).
type Columns = value.ColumnRange

// NewColumns creates a Columns range [start, end).
func NewColumns(start, end int) Columns {
	return value.NewColumnRange(start, end)
}

// TextBuffer owns the content bytes and every View and Cursor attached to
// them. The zero value is not usable; construct with NewTextBuffer.
type TextBuffer struct {
	buf *model.TextBuffer
	ins *service.InsertionService
}

// NewTextBuffer creates a TextBuffer over content, splitting lines on
// lineBreak.
//
// lineBreak must be non-empty with pairwise-distinct characters; a
// malformed separator is a caller-supplied precondition violation, so it
// is reported as an error here rather than a panic.
func NewTextBuffer(content string, lineBreak string) (*TextBuffer, error) {
	b, err := model.NewTextBuffer(content, lineBreak)
	if err != nil {
		return nil, err
	}
	return &TextBuffer{
		buf: b,
		ins: service.NewInsertionService(),
	}, nil
}

// Content returns the buffer's current bytes.
func (t *TextBuffer) Content() string {
	return t.buf.Content()
}

// LineCount returns the number of real (non-dummy) logical lines.
func (t *TextBuffer) LineCount() int {
	return t.buf.LineCount()
}

// NewView attaches a new View to this buffer: a window of height
// consecutive logical lines starting at linesStart, clipped to columns.
func (t *TextBuffer) NewView(linesStart int, height int, columns Columns) *View {
	id, v := t.buf.NewView(linesStart, height, columns)
	return &View{buf: t.buf, id: id, v: v}
}

// NewCursor attaches a new Cursor at the start of the buffer (line 0,
// column 0, byte index 0).
func (t *TextBuffer) NewCursor() *Cursor {
	id, c := t.buf.NewCursorAt(0, 0, 0)
	return &Cursor{buf: t.buf, id: id, c: c}
}

// Insert inserts text at cursor's position. text must not contain the
// buffer's line_break. On Oom, the buffer and every attached View and
// Cursor are left exactly as they were before the call.
func (t *TextBuffer) Insert(cursor *Cursor, text string) error {
	return t.ins.Insert(t.buf, cursor.c, text)
}

// View is a window of consecutive logical lines, horizontally clipped to a
// column range, attached to a TextBuffer.
type View struct {
	buf *model.TextBuffer
	id  int
	v   *model.View
}

// Lines reports the live logical-line range [start, end) this view covers.
func (v *View) Lines() (start, end int) {
	return v.v.LineRange()
}

// PrepareDisplay builds the display cache of every line in the view.
func (v *View) PrepareDisplay() {
	v.v.PrepareDisplay(v.buf.Content())
}

// DisplayLine returns the (offset, rendered text) pair for logical line n:
// offset is the cells of left-truncation on the first grapheme, text
// contains rendered graphemes including control glyphs.
func (v *View) DisplayLine(n int) (offset int, text string) {
	return v.v.DisplayLine(n, v.buf.Content())
}

// Columns returns the view's current column range.
func (v *View) Columns() Columns {
	return v.v.Columns
}

// SetColumns re-aligns every line in the view to the new column range.
func (v *View) SetColumns(columns Columns) {
	v.v.SetColumns(columns, v.buf.Content(), v.buf.LineBreak())
}

// ScrollLines moves the window so its first line becomes lineStart.
func (v *View) ScrollLines(lineStart int) error {
	return v.v.ScrollLines(lineStart, v.buf.Content(), v.buf.LineBreak())
}

// ResizeLines changes the window height.
func (v *View) ResizeLines(height int) error {
	return v.v.ResizeLines(height, v.buf.Content(), v.buf.LineBreak())
}

// Drop detaches the view from its buffer; it will no longer receive
// updates from future inserts.
func (v *View) Drop() {
	v.buf.RemoveView(v.id)
}

// Cursor is a position in a TextBuffer: logical line, column, and byte
// index, plus the bookkeeping needed to survive vertical motion through
// shorter lines and insertions elsewhere in the buffer.
type Cursor struct {
	buf *model.TextBuffer
	id  int
	c   *model.Cursor
}

// Line returns the cursor's logical line number.
func (c *Cursor) Line() int {
	return c.c.Line
}

// Column returns the cursor's column (cell count) within its line.
func (c *Cursor) Column() int {
	return c.c.Column
}

// navSvc is stateless; every Cursor shares one instance.
var navSvc = service.NewNavigationService()

// MoveRight advances the cursor by one grapheme, or by one virtual space
// past the end of the line. Fails Oom only on counter overflow.
func (c *Cursor) MoveRight() error {
	return navSvc.MoveRight(c.buf, c.c)
}

// MoveLeft retreats the cursor by one virtual space or grapheme. Reports
// false without moving if already at the start of its line.
func (c *Cursor) MoveLeft() bool {
	return navSvc.MoveLeft(c.buf, c.c)
}

// MoveDown moves to the next line, landing on the sticky column. Reports
// false without moving if there is no next line.
func (c *Cursor) MoveDown() (bool, error) {
	return navSvc.MoveDown(c.buf, c.c)
}

// MoveUp moves to the previous line, landing on the sticky column. Reports
// false without moving if already on line 0.
func (c *Cursor) MoveUp() bool {
	return navSvc.MoveUp(c.buf, c.c)
}

// Clone duplicates the cursor; the clone receives subsequent insert
// broadcasts independently of the original.
func (c *Cursor) Clone() *Cursor {
	clone := c.c.Clone()
	id := c.buf.AddCursor(clone)
	return &Cursor{buf: c.buf, id: id, c: clone}
}

// Drop detaches the cursor from its buffer; it will no longer receive
// updates from future inserts.
func (c *Cursor) Drop() {
	c.buf.RemoveCursor(c.id)
}
