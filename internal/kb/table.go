package kb

import "sort"

// KB is the immutable, load-once Grammar Knowledge Base (§4.2). All
// lookup methods are read-only and safe for concurrent use by any number
// of Engines sharing the same KB.
type KB struct {
	sandhiRules  []SandhiRule
	sandhiByRune map[rune][]SandhiRule

	inflections []InflectionPattern
	derivations []DerivationPattern
}

// SandhiRules returns every loaded sandhi rule, in file order. Callers
// must not assume any particular count (§9: the rule table is whatever
// the embedded data provides, not a fixed number).
func (kb *KB) SandhiRules() []SandhiRule {
	return kb.sandhiRules
}

// RuleByID returns the sandhi rule with the given id, or false if none
// exists.
func (kb *KB) RuleByID(id string) (SandhiRule, bool) {
	for _, r := range kb.sandhiRules {
		if r.ID == id {
			return r, true
		}
	}
	return SandhiRule{}, false
}

// ReverseRulesEndingAt returns every reverse-eligible sandhi rule whose
// Result could end exactly at byte offset end within word (i.e.
// word[end-len(Result):end] == Result), ordered by descending Result
// length (longest, most specific match first) and then by Priority.
func (kb *KB) ReverseRulesEndingAt(word string, end int) []SandhiRule {
	if end == 0 || end > len(word) {
		return nil
	}
	last := lastRune(word[:end])
	candidates := kb.sandhiByRune[last]
	if len(candidates) == 0 {
		return nil
	}
	var out []SandhiRule
	for _, r := range candidates {
		if !r.AllowsReverse() {
			continue
		}
		start := end - len(r.Result)
		if start < 0 {
			continue
		}
		if word[start:end] == r.Result {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Result) != len(out[j].Result) {
			return len(out[i].Result) > len(out[j].Result)
		}
		return out[i].Priority > out[j].Priority
	})
	return out
}

// lastRune returns the final rune of s, or 0 for an empty string.
func lastRune(s string) rune {
	var r rune
	for _, c := range s {
		r = c
	}
	return r
}

// InflectionPatterns returns every loaded inflectional ending pattern,
// longest ending first (§4.3: longest-match-first policy).
func (kb *KB) InflectionPatterns() []InflectionPattern {
	return kb.inflections
}

// MatchInflections returns every pattern whose Ending is a suffix of
// word, longest ending first.
func (kb *KB) MatchInflections(word string) []InflectionPattern {
	var out []InflectionPattern
	for _, p := range kb.inflections {
		if hasSuffixRunes(word, p.Ending) {
			out = append(out, p)
		}
	}
	return out
}

// DerivationPatterns returns every loaded derivational suffix pattern,
// longest suffix first.
func (kb *KB) DerivationPatterns() []DerivationPattern {
	return kb.derivations
}

// MatchDerivations returns every pattern whose Suffix is a suffix of
// word, longest suffix first. An empty result is a legitimate outcome
// (§4.4): most words have no derivational analysis.
func (kb *KB) MatchDerivations(word string) []DerivationPattern {
	var out []DerivationPattern
	for _, p := range kb.derivations {
		if hasSuffixRunes(word, p.Suffix) {
			out = append(out, p)
		}
	}
	return out
}

func hasSuffixRunes(word, suffix string) bool {
	if suffix == "" || len(suffix) > len(word) {
		return false
	}
	return word[len(word)-len(suffix):] == suffix
}
