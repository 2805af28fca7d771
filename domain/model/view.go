package model

import (
	"fmt"

	"github.com/A1-Triard/xelicon/domain/value"
)

// View is a window of consecutive logical lines, horizontally clipped to a
// column range. Lines past the end of content are represented as dummy
// (empty-range) Lines rather than special-cased geometry, so scroll and
// resize arithmetic never branches on "are we near EOF" (spec.md §9).
type View struct {
	Range      value.ByteRange
	LinesStart int
	Lines      []*Line
	// DummyStart is the index into Lines of the first dummy (past-EOF)
	// line; DummyEnd is always len(Lines) in this implementation, since a
	// view's window can only run past the end of content, never before its
	// start — lines_start is never negative.
	DummyStart int
	Columns    value.ColumnRange
}

// NewView builds a View starting at logical line linesStart, height lines
// tall, clipped to columns, against content and lineBreak.
func NewView(linesStart int, height int, columns value.ColumnRange, content string, lineBreak string) *View {
	v := &View{
		LinesStart: linesStart,
		Columns:    columns,
	}
	v.Lines = make([]*Line, height)
	v.DummyStart = height
	ranges := LineRangesFrom(content, lineBreak, linesStart, height)
	for i := 0; i < height; i++ {
		if i >= len(ranges) {
			if v.DummyStart == height {
				v.DummyStart = i
			}
			pos := len(content)
			v.Lines[i] = NewLine(value.NewByteRange(pos, pos), columns, content, lineBreak)
			continue
		}
		rng := ranges[i]
		if i == 0 {
			v.Range.Start = rng.Start
		}
		v.Range.End = rng.End
		v.Lines[i] = NewLine(rng, columns, content, lineBreak)
	}
	if height == 0 {
		v.Range = value.ByteRange{}
	} else if v.DummyStart == 0 {
		// Every line is past EOF: anchor the (empty) range at content's end.
		v.Range = value.NewByteRange(len(content), len(content))
	}
	return v
}

// LineRange reports the live logical-line range [LinesStart, LinesStart+len).
func (v *View) LineRange() (int, int) {
	return v.LinesStart, v.LinesStart + len(v.Lines)
}

// PrepareDisplay builds the display cache of every Line in the view.
func (v *View) PrepareDisplay(content string) {
	for _, l := range v.Lines {
		l.PrepareDisplay(content)
	}
}

// DisplayLine returns the (offset, rendered text) pair for logical line n,
// which must lie within the view's current line range.
func (v *View) DisplayLine(n int, content string) (int, string) {
	i := n - v.LinesStart
	if i < 0 || i >= len(v.Lines) {
		panic(fmt.Sprintf("model: line %d out of view range [%d,%d)", n, v.LinesStart, v.LinesStart+len(v.Lines)))
	}
	return v.Lines[i].PrepareDisplay(content)
}

// SetColumns re-aligns every Line to the new column range, following the
// four-step ordering from spec.md §4.4: expand-left, expand-right,
// shrink-left, shrink-right. The ordering keeps at least one real grapheme
// visible on every Line throughout the transition.
func (v *View) SetColumns(newColumns value.ColumnRange, content string, lineBreak string) {
	old := v.Columns
	if newColumns.Start < old.Start {
		for _, l := range v.Lines {
			l.ExpandLeft(old.Start-newColumns.Start, content, lineBreak)
		}
	}
	if newColumns.End > old.End {
		for _, l := range v.Lines {
			l.ExpandRight(newColumns.End-old.End, content, lineBreak)
		}
	}
	if newColumns.Start > old.Start {
		for _, l := range v.Lines {
			l.ShrinkFromLeft(newColumns.Start-old.Start, content, lineBreak)
		}
	}
	if newColumns.End < old.End {
		for _, l := range v.Lines {
			l.ShrinkFromRight(old.End-newColumns.End, content, lineBreak)
		}
	}
	v.Columns = newColumns
}

// ScrollLines moves the window so its first line becomes newStart, reusing
// any overlapping Lines in place and constructing only the newly uncovered
// ones (real or dummy) against content and lineBreak.
func (v *View) ScrollLines(newStart int, content string, lineBreak string) error {
	height := len(v.Lines)
	if _, ok := value.CheckedAdd(newStart, height); !ok {
		return fmt.Errorf("scroll_lines(%d): %w", newStart, value.ErrOom)
	}
	if newStart == v.LinesStart {
		return nil
	}

	rebuilt := make([]*Line, height)
	oldStart := v.LinesStart

	// [oldStart, oldStart+height) and [newStart, newStart+height) are both
	// contiguous, so the portion of the new window still covered by the old
	// one is itself one contiguous run of indices, not a scattered set; the
	// uncovered indices are therefore at most one run at the front of the
	// new window and one at the back, each fillable with a single sweep.
	overlapLo := oldStart - newStart
	if overlapLo < 0 {
		overlapLo = 0
	}
	if overlapLo > height {
		overlapLo = height
	}
	overlapHi := oldStart - newStart + height
	if overlapHi < 0 {
		overlapHi = 0
	}
	if overlapHi > height {
		overlapHi = height
	}
	if overlapHi < overlapLo {
		overlapHi = overlapLo
	}

	for i := overlapLo; i < overlapHi; i++ {
		rebuilt[i] = v.Lines[newStart+i-oldStart]
	}

	fillUncovered := func(lo, hi int) {
		if lo >= hi {
			return
		}
		ranges := LineRangesFrom(content, lineBreak, newStart+lo, hi-lo)
		for i := lo; i < hi; i++ {
			if i-lo < len(ranges) {
				rebuilt[i] = NewLine(ranges[i-lo], v.Columns, content, lineBreak)
			} else {
				rebuilt[i] = NewLine(value.NewByteRange(len(content), len(content)), v.Columns, content, lineBreak)
			}
		}
	}
	fillUncovered(0, overlapLo)
	fillUncovered(overlapHi, height)

	v.Lines = rebuilt
	v.LinesStart = newStart
	v.DummyStart = height
	for i, l := range v.Lines {
		if l.IsDummy() {
			v.DummyStart = i
			break
		}
	}
	if height > 0 {
		if v.DummyStart == 0 {
			v.Range = value.NewByteRange(len(content), len(content))
		} else {
			v.Range = value.NewByteRange(v.Lines[0].Range.Start, v.Lines[v.DummyStart-1].Range.End)
		}
	} else {
		v.Range = value.ByteRange{}
	}
	return nil
}

// ResizeLines changes the window height to newLen, truncating or appending
// Lines (real or dummy) as needed against content and lineBreak.
func (v *View) ResizeLines(newLen int, content string, lineBreak string) error {
	if _, ok := value.CheckedAdd(v.LinesStart, newLen); !ok {
		return fmt.Errorf("resize_lines(%d): %w", newLen, value.ErrOom)
	}
	if newLen == len(v.Lines) {
		return nil
	}
	if newLen < len(v.Lines) {
		v.Lines = v.Lines[:newLen]
	} else {
		added := newLen - len(v.Lines)
		ranges := LineRangesFrom(content, lineBreak, v.LinesStart+len(v.Lines), added)
		for i := 0; i < added; i++ {
			if i < len(ranges) {
				v.Lines = append(v.Lines, NewLine(ranges[i], v.Columns, content, lineBreak))
			} else {
				v.Lines = append(v.Lines, NewLine(value.NewByteRange(len(content), len(content)), v.Columns, content, lineBreak))
			}
		}
	}
	v.DummyStart = newLen
	for i, l := range v.Lines {
		if l.IsDummy() {
			v.DummyStart = i
			break
		}
	}
	if newLen > 0 {
		if v.DummyStart == 0 {
			v.Range = value.NewByteRange(len(content), len(content))
		} else {
			v.Range = value.NewByteRange(v.Lines[0].Range.Start, v.Lines[v.DummyStart-1].Range.End)
		}
	} else {
		v.Range = value.ByteRange{}
	}
	return nil
}

// Shift offsets the view's Range and every Line's Range/View by delta bytes;
// used when an insertion elsewhere in the buffer falls entirely before this
// view's window.
func (v *View) Shift(delta int) {
	v.Range = v.Range.Shift(delta)
	for _, l := range v.Lines {
		l.Shift(delta)
	}
}
