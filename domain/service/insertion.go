package service

import (
	"fmt"
	"strings"

	"github.com/A1-Triard/xelicon/domain/model"
	"github.com/A1-Triard/xelicon/domain/value"
	"github.com/A1-Triard/xelicon/internal/grapheme"
)

// InsertionService performs the coordinated insert protocol of spec.md
// §4.6: it mutates the buffer's content, then broadcasts the resulting
// byte-shift and column-shift to every cursor and every view so that each
// keeps referencing the same logical (line, column, grapheme) it did
// before, up to the explicit shift on positions at or after the edit.
type InsertionService struct{}

// NewInsertionService creates an insertion service. It holds no state;
// every call takes the buffer and cursor it operates on.
func NewInsertionService() *InsertionService {
	return &InsertionService{}
}

// Insert inserts s at cursor's position. s must not contain the buffer's
// line_break. On success, cursor (and every other live cursor and view on
// the buffer) is left pointing at the same logical content it did before,
// shifted as required by the edit. On Oom, the buffer, cursors, and views
// are left bitwise unchanged (I6).
func (s *InsertionService) Insert(buf *model.TextBuffer, cursor *model.Cursor, text string) error {
	if strings.Contains(text, buf.LineBreak()) {
		return fmt.Errorf("xelicon: insert text must not contain the line_break separator")
	}

	// Step 1: snapshot.
	line := cursor.Line
	column := cursor.Column
	index := cursor.Index
	spaces := cursor.Spaces

	// Step 2: reserve capacity.
	deltaBytes, ok := value.CheckedAdd(spaces, len(text))
	if !ok {
		return fmt.Errorf("insert: %w", value.ErrOom)
	}
	newLen, ok := value.CheckedAdd(len(buf.Content()), deltaBytes)
	if !ok || newLen > value.MaxPos {
		return fmt.Errorf("insert: %w", value.ErrOom)
	}

	// Step 3: build the candidate content without committing it yet.
	content := buf.Content()
	var b strings.Builder
	b.Grow(newLen)
	b.WriteString(content[:index])
	b.WriteString(text)
	b.WriteString(strings.Repeat(" ", spaces))
	b.WriteString(content[index:])
	newContent := b.String()

	// Step 4: recompute the new line width and validate before committing
	// anything.
	lineBreak := buf.LineBreak()
	oldRange, _ := buf.LineRangeAt(line)
	oldWidth := lineWidth(content, lineBreak, oldRange)
	newRange := value.NewByteRange(oldRange.Start, oldRange.End+deltaBytes)
	newWidth := lineWidth(newContent, lineBreak, newRange)
	if newWidth > value.MaxPos {
		return fmt.Errorf("insert: %w", value.ErrOom)
	}
	deltaCols := newWidth - oldWidth
	for _, c := range buf.Cursors() {
		if c.Line != line || c.Column <= column {
			continue
		}
		if _, ok := value.CheckedAdd(c.Column, deltaCols); !ok {
			return fmt.Errorf("insert: %w", value.ErrOom)
		}
	}

	// Commit: nothing above mutated buf, any cursor, or any view.
	buf.SetContent(newContent)

	// Step 5: broadcast to cursors. Two distinct cursors in virtual-spaces
	// mode on the same line share one byte Index (the line's contentEnd), so
	// the partition must go by Column, never by Index: Column is what tells
	// cA (spaces 1) and cB (spaces 3) apart at the same real position.
	for _, c := range buf.Cursors() {
		switch {
		case c.Line == line && c.Column == column:
			// At the insertion point (this includes cursor itself): its
			// own virtual spaces are now real, materialized bytes: it
			// stays logically put, pointing at the start of the new text.
			c.Spaces = 0
		case c.Line == line && c.Column > column:
			c.Column += deltaCols
			c.Index += deltaBytes
		case c.Line > line:
			c.Index += deltaBytes
		}
	}

	// Step 6: broadcast to views.
	for _, v := range buf.Views() {
		start, end := v.LineRange()
		switch {
		case line >= start && line < end:
			idx := line - start
			v.Lines[idx] = model.NewLine(newRange, v.Columns, newContent, lineBreak)
			for i := idx + 1; i < len(v.Lines); i++ {
				v.Lines[i].Shift(deltaBytes)
			}
			v.Range.End += deltaBytes
		case start > line:
			v.Shift(deltaBytes)
		}
	}

	return nil
}

// lineWidth sums the display width of every grapheme in rng's content,
// excluding a trailing line_break.
func lineWidth(content string, lineBreak string, rng value.ByteRange) int {
	end := model.ContentEnd(content, lineBreak, rng)
	w := 0
	slice := content[rng.Start:end]
	for slice != "" {
		c, ok := grapheme.Next(slice)
		if !ok {
			break
		}
		w += grapheme.Width(c.Text)
		slice = slice[c.Len:]
	}
	return w
}
