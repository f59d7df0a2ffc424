// Package analyzer matches the inflectional and derivational patterns
// from the Grammar Knowledge Base against a candidate word, returning
// every match rather than picking a single "best" one (§4.3, §4.4): the
// scorer, not the analyzer, decides what a full match is worth.
package analyzer

import (
	"unicode/utf8"

	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/kb"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/normalize"
)

// InflectionMatch pairs a recognized stem with the case/number/gender
// pattern its ending matched (§3).
type InflectionMatch struct {
	Stem    string
	Pattern kb.InflectionPattern
}

// DerivationMatch pairs a recognized stem with the suffix pattern that
// matched it (§3).
type DerivationMatch struct {
	Stem    string
	Pattern kb.DerivationPattern
}

// Inflections returns every InflectionPattern in base whose ending
// matches a suffix of word, longest ending first (kb.MatchInflections
// already orders them that way), paired with the stem left over once
// the ending is removed. A word too short for a given ending to leave a
// non-empty stem is skipped, and so is a pattern whose StemClass
// disagrees with the stripped stem's final-character shape (§4.3):
// two patterns can share the same literal ending (an a-stem and a
// u-stem can both end a word in "ः", say) and this is what tells them
// apart.
func Inflections(base *kb.KB, word string) []InflectionMatch {
	var out []InflectionMatch
	for _, p := range base.MatchInflections(word) {
		stem := word[:len(word)-len(p.Ending)]
		if stem == "" {
			continue
		}
		if shape, ok := stemShape(stem); ok && shape != p.StemClass {
			continue
		}
		out = append(out, InflectionMatch{Stem: stem, Pattern: p})
	}
	return out
}

// stemShape classifies the final-character shape of stem: a bare
// consonant carries Devanāgarī's implicit inherent "a", a vowel sign or
// independent vowel letter names its own vowel class directly, and a
// virāma marks an explicit consonant-final stem. It reports false when
// the final code point doesn't correspond to any StemClass (e.g. an
// e/o/ai/au vowel, which §3's StemClass enumeration has no member
// for), in which case the caller should not filter on stem class at
// all rather than reject every pattern.
func stemShape(stem string) (kb.StemClass, bool) {
	r, _ := utf8.DecodeLastRuneInString(stem)
	switch {
	case normalize.IsVirama(r):
		return kb.StemConsonant, true
	case normalize.IsVowelSign(r):
		return vowelSignStemClass(r)
	case normalize.IsIndependentVowel(r):
		return independentVowelStemClass(r)
	case normalize.IsConsonant(r):
		return kb.StemA, true
	default:
		return "", false
	}
}

func vowelSignStemClass(r rune) (kb.StemClass, bool) {
	switch r {
	case 0x093E: // ा
		return kb.StemLongA, true
	case 0x093F: // ि
		return kb.StemI, true
	case 0x0940: // ी
		return kb.StemLongI, true
	case 0x0941: // ु
		return kb.StemU, true
	case 0x0942: // ू
		return kb.StemLongU, true
	case 0x0943, 0x0944: // ृ, ॄ
		return kb.StemR, true
	default:
		return "", false
	}
}

func independentVowelStemClass(r rune) (kb.StemClass, bool) {
	switch r {
	case 0x0905: // अ
		return kb.StemA, true
	case 0x0906: // आ
		return kb.StemLongA, true
	case 0x0907: // इ
		return kb.StemI, true
	case 0x0908: // ई
		return kb.StemLongI, true
	case 0x0909: // उ
		return kb.StemU, true
	case 0x090A: // ऊ
		return kb.StemLongU, true
	case 0x090B, 0x0960: // ऋ, ॠ
		return kb.StemR, true
	default:
		return "", false
	}
}

// Derivations returns every DerivationPattern in base whose suffix
// matches a suffix of word, longest suffix first. An empty result is
// legitimate: most words carry no recognizable derivational suffix
// (§4.4).
func Derivations(base *kb.KB, word string) []DerivationMatch {
	var out []DerivationMatch
	for _, p := range base.MatchDerivations(word) {
		stem := word[:len(word)-len(p.Suffix)]
		if stem == "" {
			continue
		}
		out = append(out, DerivationMatch{Stem: stem, Pattern: p})
	}
	return out
}
