package model

import (
	"strings"

	"github.com/A1-Triard/xelicon/domain/value"
)

// LineRangeAt returns the byte range of the n-th (0-based) logical line in
// content, including its trailing separator when one is present. It reports
// ok=false when n is past the last real line — a trailing separator never
// introduces an empty trailing line (spec.md §3).
func LineRangeAt(content string, lineBreak string, n int) (value.ByteRange, bool) {
	pos := 0
	for i := 0; ; i++ {
		if pos > len(content) {
			return value.ByteRange{}, false
		}
		idx := strings.Index(content[pos:], lineBreak)
		if idx < 0 {
			if pos == len(content) {
				return value.ByteRange{}, false
			}
			if i == n {
				return value.NewByteRange(pos, len(content)), true
			}
			return value.ByteRange{}, false
		}
		end := pos + idx + len(lineBreak)
		if i == n {
			return value.NewByteRange(pos, end), true
		}
		pos = end
	}
}

// LineRangesFrom walks content once, forward from byte 0, and returns the
// byte ranges of up to count consecutive real logical lines starting at the
// from-th line. The returned slice is shorter than count when content runs
// out of real lines first; callers fill the remainder with dummy lines.
// This is the single-sweep counterpart to calling LineRangeAt count times:
// View's window-building and scrolling walk a contiguous run of lines, and
// re-walking content from byte 0 for every one of them would turn a window
// rebuild into one full content scan per uncovered line.
func LineRangesFrom(content string, lineBreak string, from int, count int) []value.ByteRange {
	if count <= 0 {
		return nil
	}
	ranges := make([]value.ByteRange, 0, count)
	pos := 0
	for i := 0; i < from+count; i++ {
		if pos > len(content) {
			break
		}
		idx := strings.Index(content[pos:], lineBreak)
		var rng value.ByteRange
		if idx < 0 {
			if pos == len(content) {
				break
			}
			rng = value.NewByteRange(pos, len(content))
			pos = len(content) + 1
		} else {
			end := pos + idx + len(lineBreak)
			rng = value.NewByteRange(pos, end)
			pos = end
		}
		if i >= from {
			ranges = append(ranges, rng)
			if len(ranges) == count {
				break
			}
		}
	}
	return ranges
}

// ContentEnd returns the byte offset marking the end of rng's actual
// grapheme content, excluding a trailing line_break separator — the same
// rule Line.contentEnd applies, exposed for callers (navigation) that only
// have a byte range, not a Line.
func ContentEnd(content string, lineBreak string, rng value.ByteRange) int {
	end := rng.End
	if lineBreak != "" && end-len(lineBreak) >= rng.Start &&
		content[end-len(lineBreak):end] == lineBreak {
		return end - len(lineBreak)
	}
	return end
}

// LineCount returns the number of real (non-dummy) logical lines in content.
func LineCount(content string, lineBreak string) int {
	if content == "" {
		return 0
	}
	n := 0
	pos := 0
	for pos < len(content) {
		idx := strings.Index(content[pos:], lineBreak)
		if idx < 0 {
			pos = len(content)
		} else {
			pos += idx + len(lineBreak)
		}
		n++
	}
	return n
}
