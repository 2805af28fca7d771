// Package model holds the mutable, pointer-receiver domain types of the
// text core: Line, View, Cursor, and the TextBuffer aggregate that owns
// them. Unlike a copy-on-write domain model, these types are mutated in
// place — see DESIGN.md for why this domain cannot be copy-on-write.
package model

import (
	"strings"

	"github.com/A1-Triard/xelicon/domain/value"
	"github.com/A1-Triard/xelicon/internal/grapheme"
)

// Line is one visible row owned by a View: the full logical line's byte
// range, the horizontally clipped sub-range actually on screen, the left
// offset into a partially-clipped leading grapheme, the right padding in
// cells, and a lazily built display cache.
type Line struct {
	Range  value.ByteRange // full logical line, including trailing separator if present
	View   value.ByteRange // clipped, on-screen byte range; always a sub-range of Range
	Offset int             // cells of the first clipped grapheme left of the window
	Spaces int             // right-padding cells after the last visible grapheme

	cache *string
}

// NewLine builds a Line for range, clipped to columns, against content and
// lineBreak. It starts empty-visible, expands right to columns.End cells,
// then shrinks from the left to columns.Start cells (spec.md §4.2).
func NewLine(rng value.ByteRange, columns value.ColumnRange, content string, lineBreak string) *Line {
	l := &Line{
		Range: rng,
		View:  value.ByteRange{Start: rng.Start, End: rng.Start},
	}
	l.ExpandRight(columns.End, content, lineBreak)
	l.ShrinkFromLeft(columns.Start, content, lineBreak)
	return l
}

// contentEnd returns the byte offset marking the end of this line's actual
// grapheme content, excluding a trailing line-break separator.
func (l *Line) contentEnd(content string, lineBreak string) int {
	return ContentEnd(content, lineBreak, l.Range)
}

// invalidate drops the display cache; call after any mutation of View,
// Offset, or Spaces.
func (l *Line) invalidate() {
	l.cache = nil
}

// ExpandRight consumes graphemes from View.End towards the end of the line
// while they fit in w+Spaces cells; the unused remainder becomes the new
// Spaces.
func (l *Line) ExpandRight(w int, content string, lineBreak string) {
	end := l.contentEnd(content, lineBreak)
	remaining := w + l.Spaces
	for l.View.End < end {
		cluster, ok := grapheme.Next(content[l.View.End:end])
		if !ok {
			break
		}
		cw := grapheme.Width(cluster.Text)
		if cw > remaining {
			break
		}
		l.View.End += cluster.Len
		remaining -= cw
	}
	l.Spaces = remaining
	l.invalidate()
}

// ExpandLeft consumes graphemes from View.Start backwards while they fit
// in w+Offset cells. If Offset alone already covers w, only Offset shrinks.
// A grapheme that straddles the boundary is consumed whole and leaves a
// residual Offset.
func (l *Line) ExpandLeft(w int, content string, lineBreak string) {
	if l.Offset >= w {
		l.Offset -= w
		l.invalidate()
		return
	}
	w -= l.Offset
	l.Offset = 0
	for l.View.Start > l.Range.Start && w > 0 {
		cluster, ok := grapheme.Prev(content[l.Range.Start:l.View.Start])
		if !ok {
			break
		}
		cw := grapheme.Width(cluster.Text)
		l.View.Start -= cluster.Len
		if cw <= w {
			w -= cw
			continue
		}
		l.Offset = cw - w
		w = 0
	}
	// A blank line (no grapheme ever sits between Range.Start and View.Start)
	// has nothing on its left to reveal; the whole window still has to grow
	// by the leftover w, so it lands in Spaces instead.
	if w > 0 {
		l.Spaces += w
	}
	l.invalidate()
}

// ShrinkFromRight removes w cells from the right of the view. Spaces are
// consumed first; once exhausted, whole graphemes are dropped from the
// right, with any excess width they carried re-materializing as Spaces.
func (l *Line) ShrinkFromRight(w int, content string, lineBreak string) {
	if l.Spaces >= w {
		l.Spaces -= w
		l.invalidate()
		return
	}
	w -= l.Spaces
	l.Spaces = 0
	for l.View.End > l.View.Start && w > 0 {
		cluster, ok := grapheme.Prev(content[l.View.Start:l.View.End])
		if !ok {
			break
		}
		cw := grapheme.Width(cluster.Text)
		l.View.End -= cluster.Len
		if cw >= w {
			l.Spaces = cw - w
			w = 0
		} else {
			w -= cw
		}
	}
	l.invalidate()
}

// ShrinkFromLeft removes w cells from the left of the view. Offset is
// consumed first; once exhausted, whole graphemes are dropped from the
// left, with any excess width they carried re-materializing as Offset.
func (l *Line) ShrinkFromLeft(w int, content string, lineBreak string) {
	if l.Offset >= w {
		l.Offset -= w
		l.invalidate()
		return
	}
	w -= l.Offset
	l.Offset = 0
	for l.View.Start < l.View.End && w > 0 {
		cluster, ok := grapheme.Next(content[l.View.Start:l.View.End])
		if !ok {
			break
		}
		cw := grapheme.Width(cluster.Text)
		if cw > w {
			// This grapheme straddles the new left edge: its bytes stay
			// in View (so a later ExpandLeft can reveal it again without
			// re-deriving anything), but it renders as skipped while
			// Offset != 0.
			l.Offset = cw - w
			w = 0
			break
		}
		l.View.Start += cluster.Len
		w -= cw
	}
	// A blank line has no grapheme left to drop; its whole width lives in
	// Spaces, so the remaining shrink comes out of there instead. A dummy
	// (past-EOF) line also reports that remaining shrink as its Offset.
	if w > 0 {
		if l.IsDummy() {
			l.Offset = w
		}
		l.Spaces -= w
		if l.Spaces < 0 {
			l.Spaces = 0
		}
	}
	l.invalidate()
}

// PrepareDisplay renders the View slice and caches the result: NFC text for
// real graphemes, "^X" for ASCII controls, the substitute glyph for
// everything else zero-width. The first grapheme is skipped when Offset != 0
// — it is partially off-screen and its cell cost is already charged to
// Offset. Returns (Offset, rendered text).
func (l *Line) PrepareDisplay(content string) (int, string) {
	if l.cache != nil {
		return l.Offset, *l.cache
	}

	var b strings.Builder
	slice := content[l.View.Start:l.View.End]
	first := true
	for slice != "" {
		cluster, ok := grapheme.Next(slice)
		if !ok {
			break
		}
		slice = slice[cluster.Len:]
		if first && l.Offset != 0 {
			first = false
			continue
		}
		first = false
		b.WriteString(grapheme.Render(cluster.Text))
	}

	rendered := b.String()
	l.cache = &rendered
	return l.Offset, rendered
}

// Shift offsets both Range and View by delta bytes, invalidating the cache
// only when the view's own bytes moved is left to the caller — Shift is
// used for lines entirely after an edit, whose visible text does not
// change, so the cache is preserved.
func (l *Line) Shift(delta int) {
	l.Range = l.Range.Shift(delta)
	l.View = l.View.Shift(delta)
}

// Width reports the total cells this line currently occupies:
// Offset + sum(width of View) + Spaces, where the first grapheme of View is
// left out of the sum when Offset != 0 (its visible cells are Offset, as in
// PrepareDisplay). Used by property tests (I3).
func (l *Line) Width(content string) int {
	w := l.Offset + l.Spaces
	slice := content[l.View.Start:l.View.End]
	first := true
	for slice != "" {
		cluster, ok := grapheme.Next(slice)
		if !ok {
			break
		}
		slice = slice[cluster.Len:]
		if first && l.Offset != 0 {
			first = false
			continue
		}
		first = false
		w += grapheme.Width(cluster.Text)
	}
	return w
}

// IsDummy reports whether this Line represents a past-EOF row: an empty
// Range with no real bytes behind it.
func (l *Line) IsDummy() bool {
	return l.Range.IsEmpty()
}
