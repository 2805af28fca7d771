// Package value provides small immutable value objects shared by the
// domain model and domain service packages.
package value

import "fmt"

// ByteRange is a half-open byte interval [Start, End) into a TextBuffer's
// content. It is a value object: immutable, comparable by value.
type ByteRange struct {
	Start int
	End   int
}

// NewByteRange creates a ByteRange, panicking if end < start — this is a
// programmer error (mis-ordered arguments), not a runtime condition callers
// should recover from, so it is not reported via Oom.
func NewByteRange(start, end int) ByteRange {
	if end < start {
		panic(fmt.Sprintf("value: invalid byte range [%d, %d)", start, end))
	}
	return ByteRange{Start: start, End: end}
}

// Len returns End - Start.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range contains no bytes.
func (r ByteRange) IsEmpty() bool {
	return r.Start == r.End
}

// Slice returns content[r.Start:r.End].
func (r ByteRange) Slice(content []byte) []byte {
	return content[r.Start:r.End]
}

// SliceString returns content[r.Start:r.End] for a string.
func (r ByteRange) SliceString(content string) string {
	return content[r.Start:r.End]
}

// Shift returns a new ByteRange with both bounds offset by delta.
func (r ByteRange) Shift(delta int) ByteRange {
	return ByteRange{Start: r.Start + delta, End: r.End + delta}
}

// ColumnRange is a half-open column (cell) interval [Start, End). It is a
// value object: immutable, comparable by value.
type ColumnRange struct {
	Start int
	End   int
}

// NewColumnRange creates a ColumnRange, panicking if end < start.
func NewColumnRange(start, end int) ColumnRange {
	if end < start {
		panic(fmt.Sprintf("value: invalid column range [%d, %d)", start, end))
	}
	return ColumnRange{Start: start, End: end}
}

// Width returns End - Start, the number of cells the range covers.
func (r ColumnRange) Width() int {
	return r.End - r.Start
}
