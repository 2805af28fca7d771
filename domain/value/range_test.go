package value

import "testing"

func TestByteRange(t *testing.T) {
	r := NewByteRange(2, 5)
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	shifted := r.Shift(10)
	if shifted != (ByteRange{Start: 12, End: 15}) {
		t.Errorf("Shift(10) = %+v, want {12 15}", shifted)
	}
	if got := r.SliceString("abcdefgh"); got != "cde" {
		t.Errorf("SliceString() = %q, want %q", got, "cde")
	}
}

func TestByteRangeEmpty(t *testing.T) {
	r := NewByteRange(3, 3)
	if !r.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestByteRangePanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on inverted range")
		}
	}()
	NewByteRange(5, 2)
}

func TestColumnRangeWidth(t *testing.T) {
	r := NewColumnRange(1, 9)
	if r.Width() != 8 {
		t.Errorf("Width() = %d, want 8", r.Width())
	}
}
