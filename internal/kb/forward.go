package kb

import (
	"fmt"
	"strings"
)

// ForwardApply reconstructs the surface (sandhi-merged) string that rule
// would produce from the two un-merged parts, the same operation the
// splitter must invert when it proposes a rule-driven split (§4.5.1).
//
// left must end with rule.LeftPattern unless rule.ImplicitFinalA is set,
// in which case the inherent "a" is understood to follow left with no
// visible glyph of its own. right must start with rule.RightPattern.
func ForwardApply(rule SandhiRule, left, right string) (string, error) {
	if !rule.ImplicitFinalA {
		if !strings.HasSuffix(left, rule.LeftPattern) {
			return "", fmt.Errorf("kb: %q does not end with left_pattern %q of rule %s", left, rule.LeftPattern, rule.ID)
		}
		left = left[:len(left)-len(rule.LeftPattern)]
	}
	if !strings.HasPrefix(right, rule.RightPattern) {
		return "", fmt.Errorf("kb: %q does not start with right_pattern %q of rule %s", right, rule.RightPattern, rule.ID)
	}
	right = right[len(rule.RightPattern):]
	return left + rule.Result + right, nil
}

// ForwardApplyRule looks up ruleID in base and forward-applies it to
// left/right, the convenience form callers outside this package use
// once they only have a rule id (e.g. a Candidate) rather than a
// SandhiRule value in hand.
func ForwardApplyRule(base *KB, ruleID, left, right string) (string, error) {
	rule, ok := base.RuleByID(ruleID)
	if !ok {
		return "", fmt.Errorf("kb: unknown rule id %q", ruleID)
	}
	return ForwardApply(rule, left, right)
}
