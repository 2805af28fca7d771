// Package grapheme is the sole source of truth for grapheme segmentation,
// display width, and on-screen rendering used by the line/view/cursor
// machinery in the parent module. No other package may roll its own
// cluster scanner or width table.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
	"golang.org/x/text/unicode/norm"
)

// substituteGlyph is U+2426 SYMBOL FOR SUBSTITUTE FORM TWO, the stand-in
// glyph for any zero/undefined-width grapheme that is not an ASCII control.
const substituteGlyph = '␦'

// Cluster is one grapheme cluster sliced out of a larger string, carrying
// its byte length so callers can advance through content without
// re-segmenting.
type Cluster struct {
	Text string // raw bytes of the cluster, as they appear in content
	Len  int    // len(Text); kept alongside Text so callers don't recompute it
}

// Next segments the first grapheme cluster off the front of s. It reports
// ok=false only when s is empty.
func Next(s string) (c Cluster, ok bool) {
	if s == "" {
		return Cluster{}, false
	}
	gr := uniseg.NewGraphemes(s)
	if !gr.Next() {
		return Cluster{}, false
	}
	text := gr.Str()
	return Cluster{Text: text, Len: len(text)}, true
}

// Prev segments the last grapheme cluster off the back of s. It reports
// ok=false only when s is empty.
func Prev(s string) (c Cluster, ok bool) {
	if s == "" {
		return Cluster{}, false
	}
	var last Cluster
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		last = Cluster{Text: gr.Str(), Len: len(gr.Str())}
	}
	return last, true
}

// Width returns the display width, in terminal cells, of a single grapheme
// cluster under spec.md's policy:
//  1. the natural East-Asian-aware width, if nonzero;
//  2. 2, if the cluster is a single ASCII control codepoint (<= 0x7F, zero
//     natural width) — it will be rendered as "^X";
//  3. otherwise, the width of U+2426 (normally 1) — it will be rendered as
//     a single substitute glyph.
func Width(cluster string) int {
	if cluster == "" {
		return 0
	}

	runes := []rune(cluster)
	natural := naturalWidth(runes)
	if natural > 0 {
		return natural
	}
	if isASCIIControl(runes) {
		return 2
	}
	return uniwidth.RuneWidth(substituteGlyph)
}

// IsASCIIControl reports whether cluster is a single ASCII control
// codepoint, i.e. the case spec.md §4.1 renders as "^X".
func IsASCIIControl(cluster string) bool {
	return isASCIIControl([]rune(cluster))
}

// Render returns the exact on-screen text for one grapheme cluster, per
// spec.md §4.2 prepare_display: NFC-normalized text when the cluster has
// positive width and is not a control character, "^" + the caret-notation
// letter for ASCII controls, or the substitute glyph otherwise.
func Render(cluster string) string {
	if cluster == "" {
		return ""
	}
	runes := []rune(cluster)
	if isASCIIControl(runes) {
		return string([]rune{'^', caretLetter(runes[0])})
	}
	if naturalWidth(runes) > 0 {
		return norm.NFC.String(cluster)
	}
	return string(substituteGlyph)
}

// naturalWidth returns the East-Asian-aware width of a cluster's runes
// using the same tiering the Unicode service in the wider ecosystem uses:
// a fast path for the common single/simple-rune case, and uniseg-consistent
// "first rune wins" accounting for multi-rune clusters (combining marks,
// emoji modifiers, ZWJ sequences all contribute their own zero width).
func naturalWidth(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	if len(runes) == 1 {
		return uniwidth.RuneWidth(runes[0])
	}
	if isZeroWidth(runes[0]) {
		// A cluster should never start on a combining mark, but if
		// segmentation ever hands us one, it has no width of its own.
		return 0
	}
	if len(runes) >= 2 && (runes[1] == 0xFE0E || runes[1] == 0xFE0F) {
		// Variation selectors change presentation (text vs. emoji) and
		// therefore the width of the whole cluster; let uniwidth resolve it.
		return uniwidth.StringWidth(string(runes))
	}
	return uniwidth.RuneWidth(runes[0])
}

func isZeroWidth(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc, unicode.Cf)
}

func isASCIIControl(runes []rune) bool {
	if len(runes) != 1 {
		return false
	}
	r := runes[0]
	return r <= 0x7F && naturalWidth(runes) == 0
}

// caretLetter returns the caret-notation letter for an ASCII control
// codepoint, e.g. NUL -> '@', ESC -> '[', DEL -> '?'.
func caretLetter(r rune) rune {
	return rune(int(r)^0x40) & 0x7F
}
