package model

import (
	"testing"

	"github.com/A1-Triard/xelicon/domain/value"
)

const lineIndexContent = "First line.\r\nThe 二 line.\r\nThird line.\r\n"

func TestLineRangesFromMatchesLineRangeAt(t *testing.T) {
	for from := 0; from < 5; from++ {
		for count := 0; count < 5; count++ {
			got := LineRangesFrom(lineIndexContent, lineBreak, from, count)
			want := make([]value.ByteRange, 0, count)
			for n := from; n < from+count; n++ {
				rng, ok := LineRangeAt(lineIndexContent, lineBreak, n)
				if !ok {
					break
				}
				want = append(want, rng)
			}
			if len(got) != len(want) {
				t.Fatalf("from=%d count=%d: got %d ranges, want %d", from, count, len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("from=%d count=%d index=%d: got %v, want %v", from, count, i, got[i], want[i])
				}
			}
		}
	}
}

func TestLineRangesFromStopsPastLastRealLine(t *testing.T) {
	got := LineRangesFrom(lineIndexContent, lineBreak, 1, 10)
	if len(got) != 2 {
		t.Fatalf("got %d ranges, want 2 (only lines 1 and 2 are real)", len(got))
	}
}

func TestLineRangesFromZeroCount(t *testing.T) {
	if got := LineRangesFrom(lineIndexContent, lineBreak, 0, 0); got != nil {
		t.Fatalf("count=0: got %v, want nil", got)
	}
}
