package vedictok

import (
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/analyzer"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/kb"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/normalize"
)

// Class is the character classification of a RawToken's span (§3).
type Class = normalize.Class

const (
	ClassWord        = normalize.ClassWord
	ClassWhitespace  = normalize.ClassWhitespace
	ClassPunctuation = normalize.ClassPunctuation
	ClassDigit       = normalize.ClassDigit
	ClassOther       = normalize.ClassOther
)

// RawToken is a byte span of normalized text sharing one character
// class, before any sandhi splitting or morphological analysis (§3).
type RawToken struct {
	Start int
	End   int
	Class Class
	Text  string
}

// InflectionMatch is a recognized case/number/gender analysis of a
// Token part (§3).
type InflectionMatch struct {
	Stem   string
	Case   int
	Number string
	Gender string
}

// DerivationMatch is a recognized derivational-suffix analysis of a
// Token part (§3).
type DerivationMatch struct {
	Stem     string
	Kind     string
	Category string
}

// Candidate is one hypothesized split of a word-class RawToken, with
// its morphological analyses and composite score attached (§3).
type Candidate struct {
	Parts        []string
	RuleID       string
	Inflections  [][]InflectionMatch
	Derivations  [][]DerivationMatch
	RuleScore    float64
	FreqScore    float64
	GrammarScore float64
	Score        float64
}

// Token is one emitted unit of a Tokenize call: either a whole
// word-class RawToken that needed no splitting, or the winning
// Candidate's parts for one that did (§3). Non-word-class RawTokens
// (whitespace, punctuation, digits, other) pass through as
// single-part Tokens with Class set accordingly, RuleID and Candidates
// left empty, and Winner set to -1.
type Token struct {
	Parts      []string
	Class      Class
	RuleID     string
	Candidates []Candidate
	Winner     int // index into Candidates of the winning candidate; -1 when no candidate was scored (non-word token, splitting disabled, or fallback)
}

// Text returns the concatenation of t's parts, i.e. the surface text
// this Token covers.
func (t Token) Text() string {
	var s string
	for _, p := range t.Parts {
		s += p
	}
	return s
}

func toInflectionMatches(ms []analyzer.InflectionMatch) []InflectionMatch {
	out := make([]InflectionMatch, 0, len(ms))
	for _, m := range ms {
		out = append(out, InflectionMatch{
			Stem:   m.Stem,
			Case:   m.Pattern.Case,
			Number: string(m.Pattern.Number),
			Gender: string(m.Pattern.Gender),
		})
	}
	return out
}

func toDerivationMatches(ms []analyzer.DerivationMatch) []DerivationMatch {
	out := make([]DerivationMatch, 0, len(ms))
	for _, m := range ms {
		out = append(out, DerivationMatch{
			Stem:     m.Stem,
			Kind:     string(m.Pattern.Kind),
			Category: m.Pattern.Category,
		})
	}
	return out
}

// analyzeParts runs the inflection and (if enabled) derivation
// analyzers over every part of a candidate split.
func analyzeParts(base *kb.KB, parts []string, enableDerivation bool) ([][]InflectionMatch, [][]DerivationMatch) {
	infl := make([][]InflectionMatch, len(parts))
	deriv := make([][]DerivationMatch, len(parts))
	for i, p := range parts {
		infl[i] = toInflectionMatches(analyzer.Inflections(base, p))
		if enableDerivation {
			deriv[i] = toDerivationMatches(analyzer.Derivations(base, p))
		}
	}
	return infl, deriv
}
