// Package splitter generates candidate word splits by four independent
// strategies (§4.5): rule-driven reverse sandhi application, a
// left-greedy lexical scan, a right-greedy lexical scan, and the
// trivial no-split candidate. The scorer, not this package, picks a
// winner.
package splitter

import (
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/kb"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/lexicon"
)

// Candidate is one hypothesized split of a word, pre-scoring. Parts
// must re-join to the original surface word: for RuleID == "" by plain
// concatenation, otherwise by kb.ForwardApply(rule, Parts[0], Parts[1])
// (§4.5's re-joinability constraint).
type Candidate struct {
	Parts  []string
	RuleID string
}

// runeBoundaries returns every byte offset at which a rune starts in s,
// plus len(s) itself, in ascending order.
func runeBoundaries(s string) []int {
	bounds := make([]int, 0, len(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(s))
	return bounds
}

// RuleDriven proposes a split for every position where a reverse-eligible
// sandhi rule's Result is found ending at that position, reconstructing
// the pre-sandhi parts and verifying they forward-apply back to word
// exactly (§4.5.1).
func RuleDriven(base *kb.KB, word string) []Candidate {
	var out []Candidate
	for _, end := range runeBoundaries(word) {
		if end == 0 || end > len(word) {
			continue
		}
		for _, r := range base.ReverseRulesEndingAt(word, end) {
			split := end - len(r.Result)
			if split < 0 {
				continue
			}
			left := word[:split]
			if !r.ImplicitFinalA {
				left += r.LeftPattern
			}
			right := r.RightPattern + word[end:]
			if left == "" || right == "" {
				continue
			}
			merged, err := kb.ForwardApply(r, left, right)
			if err != nil || merged != word {
				continue
			}
			out = append(out, Candidate{Parts: []string{left, right}, RuleID: r.ID})
		}
	}
	return out
}

// LexicalLeftGreedy finds the longest lexicon-recognized prefix of word
// shorter than word itself and proposes splitting there (§4.5.2). It
// returns nil if no such prefix exists.
func LexicalLeftGreedy(lex *lexicon.Lexicon, word string) []Candidate {
	bounds := runeBoundaries(word)
	for i := len(bounds) - 2; i >= 0; i-- { // skip the full-word boundary
		k := bounds[i]
		if k == 0 {
			continue
		}
		if lex.Contains(word[:k]) {
			return []Candidate{{Parts: []string{word[:k], word[k:]}}}
		}
	}
	return nil
}

// LexicalRightGreedy finds the longest lexicon-recognized suffix of word
// shorter than word itself and proposes splitting there (§4.5.3). It
// returns nil if no such suffix exists.
func LexicalRightGreedy(lex *lexicon.Lexicon, word string) []Candidate {
	bounds := runeBoundaries(word)
	for i := 1; i < len(bounds); i++ { // skip the zero-length-suffix boundary
		k := bounds[i]
		if k >= len(word) {
			continue
		}
		if lex.Contains(word[k:]) {
			return []Candidate{{Parts: []string{word[:k], word[k:]}}}
		}
	}
	return nil
}

// NoSplit is the always-available fallback candidate: the word taken
// whole (§4.5.4).
func NoSplit(word string) Candidate {
	return Candidate{Parts: []string{word}}
}

// Generate runs all four strategies and merges their output, removing
// duplicates that share both the same parts and the same rule id
// (§4.5: "candidates are merged and deduplicated"). Capping to
// Config.MaxCandidates is done by the engine, once the scorer has
// ranked every candidate by composite score.
func Generate(base *kb.KB, lex *lexicon.Lexicon, word string) []Candidate {
	var all []Candidate
	all = append(all, RuleDriven(base, word)...)
	all = append(all, LexicalLeftGreedy(lex, word)...)
	all = append(all, LexicalRightGreedy(lex, word)...)
	all = append(all, NoSplit(word))

	seen := make(map[string]bool, len(all))
	out := make([]Candidate, 0, len(all))
	for _, c := range all {
		key := c.RuleID + "\x00"
		for _, p := range c.Parts {
			key += p + "\x00"
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
