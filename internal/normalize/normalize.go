package normalize

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode canonical composition (NFC) to text and,
// when preserveVedicAccents is false, strips Vedic pitch-accent marks
// from the composed result. The returned string is the canonical input
// from which every downstream offset is measured (§4.1).
//
// Normalize is idempotent for a fixed preserveVedicAccents value:
// Normalize(Normalize(s, p), p) == Normalize(s, p).
func Normalize(text string, preserveVedicAccents bool) string {
	composed := norm.NFC.String(text)
	if preserveVedicAccents {
		return composed
	}
	var b strings.Builder
	b.Grow(len(composed))
	for _, r := range composed {
		if IsVedicAccent(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RawToken is a half-open byte span [Start, End) over a normalized
// string, tagged with the character class shared by every code point
// in the span (§3).
type RawToken struct {
	Start int
	End   int
	Class Class
	Text  string
}

// Segment walks normalized (already the output of Normalize) and
// produces a sequence of RawTokens by coalescing runs of grapheme
// clusters sharing the same runClass. Using grapheme clusters rather
// than bare runes keeps a combining Vedic accent mark attached to its
// base letter instead of being sliced off into its own span, since
// clusters is exactly the set of combining-character attachments
// rivo/uniseg exists to compute correctly.
//
// Invariant: concatenation of all returned RawTokens' Text equals
// normalized exactly (no gaps, no overlap) — see §4.1 and §8 property 2.
func Segment(normalized string) []RawToken {
	if normalized == "" {
		return nil
	}

	var tokens []RawToken
	gr := uniseg.NewGraphemes(normalized)

	var curClass runClass
	var curStart, curEnd int
	have := false

	flush := func() {
		if have {
			tokens = append(tokens, RawToken{
				Start: curStart,
				End:   curEnd,
				Class: curClass.public(),
				Text:  normalized[curStart:curEnd],
			})
		}
	}

	for gr.Next() {
		start, end := gr.Positions()
		cluster := gr.Runes()
		// A grapheme cluster is classified by its leading rune; any
		// trailing combining marks (e.g. a Vedic accent riding on a
		// vowel sign) share the base's class by construction.
		cls := classify(cluster[0])

		if have && cls == curClass {
			curEnd = end
			continue
		}
		flush()
		curClass, curStart, curEnd, have = cls, start, end, true
	}
	flush()

	return tokens
}
