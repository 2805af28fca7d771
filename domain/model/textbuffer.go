package model

import (
	"fmt"

	"github.com/A1-Triard/xelicon/domain/value"
	"github.com/A1-Triard/xelicon/internal/grapheme"
)

// TextBuffer is the aggregate root: it exclusively owns the content bytes
// and the registries of every live View and Cursor attached to them.
// Unlike the immutable, copy-on-write aggregate this package is modeled
// after, TextBuffer and everything it owns are mutated in place — see
// DESIGN.md for why insert's broadcast requirement rules out copy-on-write.
type TextBuffer struct {
	content   string
	lineBreak string

	views        map[int]*View
	cursors      map[int]*Cursor
	nextViewID   int
	nextCursorID int
}

// NewTextBuffer creates a TextBuffer over content, splitting lines on
// lineBreak. lineBreak must be non-empty with pairwise-distinct characters.
//
// This deviates from a literal panicking constructor: the teacher's
// aggregate constructors return (*T, error) for caller-supplied
// preconditions, and a malformed separator is exactly that — reported here
// the same way.
func NewTextBuffer(content string, lineBreak string) (*TextBuffer, error) {
	if lineBreak == "" {
		return nil, fmt.Errorf("xelicon: line_break must not be empty")
	}
	seen := make(map[rune]bool, len(lineBreak))
	for _, r := range lineBreak {
		if seen[r] {
			return nil, fmt.Errorf("xelicon: line_break %q repeats character %q", lineBreak, r)
		}
		seen[r] = true
	}
	return &TextBuffer{
		content:   content,
		lineBreak: lineBreak,
		views:     make(map[int]*View),
		cursors:   make(map[int]*Cursor),
	}, nil
}

// Content returns the buffer's current bytes.
func (b *TextBuffer) Content() string {
	return b.content
}

// LineBreak returns the configured line separator.
func (b *TextBuffer) LineBreak() string {
	return b.lineBreak
}

// LineCount returns the number of real (non-dummy) logical lines.
func (b *TextBuffer) LineCount() int {
	return LineCount(b.content, b.lineBreak)
}

// LineRangeAt returns the byte range of logical line n.
func (b *TextBuffer) LineRangeAt(n int) (value.ByteRange, bool) {
	return LineRangeAt(b.content, b.lineBreak, n)
}

// NewView registers and returns a new View over this buffer, keyed by a
// freshly allocated id stable for the View's lifetime.
func (b *TextBuffer) NewView(linesStart int, height int, columns value.ColumnRange) (int, *View) {
	v := NewView(linesStart, height, columns, b.content, b.lineBreak)
	id := b.nextViewID
	b.nextViewID++
	b.views[id] = v
	return id, v
}

// View returns the View registered under id, or nil if none is.
func (b *TextBuffer) View(id int) *View {
	return b.views[id]
}

// RemoveView drops the View registered under id.
func (b *TextBuffer) RemoveView(id int) {
	delete(b.views, id)
}

// Views returns every live View, keyed by its registration id. Iteration
// order is not meaningful.
func (b *TextBuffer) Views() map[int]*View {
	return b.views
}

// NewCursorAt registers and returns a new Cursor at (line, column, index),
// keyed by a freshly allocated id stable for the Cursor's lifetime.
func (b *TextBuffer) NewCursorAt(line, column, index int) (int, *Cursor) {
	c := &Cursor{Line: line, Column: column, Index: index}
	id := b.nextCursorID
	b.nextCursorID++
	b.cursors[id] = c
	return id, c
}

// AddCursor registers an already-built Cursor (e.g. a Clone) and returns its
// freshly allocated id.
func (b *TextBuffer) AddCursor(c *Cursor) int {
	id := b.nextCursorID
	b.nextCursorID++
	b.cursors[id] = c
	return id
}

// Cursor returns the Cursor registered under id, or nil if none is.
func (b *TextBuffer) Cursor(id int) *Cursor {
	return b.cursors[id]
}

// RemoveCursor drops the Cursor registered under id.
func (b *TextBuffer) RemoveCursor(id int) {
	delete(b.cursors, id)
}

// Cursors returns every live Cursor, keyed by its registration id.
// Iteration order is not meaningful.
func (b *TextBuffer) Cursors() map[int]*Cursor {
	return b.cursors
}

// SetContent replaces the buffer's content wholesale. It is used only by
// the insertion protocol, which is responsible for keeping every cursor and
// view consistent with the new bytes; no other caller should reach for it.
func (b *TextBuffer) SetContent(content string) {
	b.content = content
}

// LineStart returns the byte index of the first byte of logical line n, or
// len(content) if n is past the last real line.
func (b *TextBuffer) LineStart(n int) int {
	rng, ok := LineRangeAt(b.content, b.lineBreak, n)
	if !ok {
		return len(b.content)
	}
	return rng.Start
}

// ColumnOf returns the column (cell count) of byte index idx within
// logical line: sum(width(g)) for every grapheme strictly before idx on
// that line (spec.md I1).
func (b *TextBuffer) ColumnOf(line int, idx int) int {
	start := b.LineStart(line)
	col := 0
	slice := b.content[start:idx]
	for slice != "" {
		c, ok := grapheme.Next(slice)
		if !ok {
			break
		}
		col += grapheme.Width(c.Text)
		slice = slice[c.Len:]
	}
	return col
}
