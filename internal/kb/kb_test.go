package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSucceedsAndIsNonEmpty(t *testing.T) {
	k, err := Load()
	require.NoError(t, err)
	require.NotNil(t, k)
	assert.NotEmpty(t, k.SandhiRules())
	assert.NotEmpty(t, k.InflectionPatterns())
	assert.NotEmpty(t, k.DerivationPatterns())
	// Deliberately not asserting any specific count: the table is
	// whatever the embedded data provides.
}

func TestSandhiRuleIDsAreUnique(t *testing.T) {
	k, err := Load()
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, r := range k.SandhiRules() {
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestForwardApplyEveryLoadedRule(t *testing.T) {
	k, err := Load()
	require.NoError(t, err)
	for _, r := range k.SandhiRules() {
		left := "राम"
		if !r.ImplicitFinalA {
			left += r.LeftPattern
		}
		right := r.RightPattern + "अत्र"
		merged, err := ForwardApply(r, left, right)
		require.NoError(t, err, "rule %s", r.ID)
		assert.Contains(t, merged, r.Result, "rule %s result must appear in merged form", r.ID)
	}
}

func TestReverseRulesEndingAtFindsVS05(t *testing.T) {
	k, err := Load()
	require.NoError(t, err)
	// सुरोत्तमः = सुर + ो + त्तमः, rule VS05 (a+u->o) licenses the split.
	word := "सुर" + "ो" + "त्तमः"
	end := len("सुर" + "ो")
	rules := k.ReverseRulesEndingAt(word, end)
	require.NotEmpty(t, rules)
	var found bool
	for _, r := range rules {
		if r.ID == "VS05" {
			found = true
		}
	}
	assert.True(t, found, "expected VS05 among reverse matches, got %+v", rules)
}

func TestMatchInflectionsLongestFirst(t *testing.T) {
	k, err := Load()
	require.NoError(t, err)
	matches := k.MatchInflections("रामस्य")
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, len(matches[i-1].Ending), len(matches[i].Ending))
	}
}

func TestMatchDerivationsEmptyIsLegitimate(t *testing.T) {
	k, err := Load()
	require.NoError(t, err)
	assert.Empty(t, k.MatchDerivations("षट्"))
}

func TestBuildRejectsDuplicateID(t *testing.T) {
	rules := []SandhiRule{
		{ID: "X", Category: CategoryVowel, ImplicitFinalA: true, RightPattern: "अ", Result: "ा", Priority: 5, Directions: []Direction{DirectionForward}},
		{ID: "X", Category: CategoryVowel, ImplicitFinalA: true, RightPattern: "इ", Result: "े", Priority: 5, Directions: []Direction{DirectionForward}},
	}
	_, err := build(rules, nil, nil)
	require.Error(t, err)
	var ie *IntegrityError
	require.ErrorAs(t, err, &ie)
}

func TestBuildRejectsOutOfRangePriority(t *testing.T) {
	rules := []SandhiRule{
		{ID: "X", Category: CategoryVowel, ImplicitFinalA: true, RightPattern: "अ", Result: "ा", Priority: 99, Directions: []Direction{DirectionForward}},
	}
	_, err := build(rules, nil, nil)
	require.Error(t, err)
}

func TestBuildRejectsImplicitFinalAWithLeftPattern(t *testing.T) {
	rules := []SandhiRule{
		{ID: "X", Category: CategoryVowel, ImplicitFinalA: true, LeftPattern: "ा", RightPattern: "अ", Result: "ा", Priority: 5, Directions: []Direction{DirectionForward}},
	}
	_, err := build(rules, nil, nil)
	require.Error(t, err)
}

func TestBuildRejectsEmptyLeftPatternWithoutImplicitFlag(t *testing.T) {
	rules := []SandhiRule{
		{ID: "X", Category: CategoryVowel, RightPattern: "अ", Result: "ा", Priority: 5, Directions: []Direction{DirectionForward}},
	}
	_, err := build(rules, nil, nil)
	require.Error(t, err)
}

func TestBuildRejectsUnknownDirection(t *testing.T) {
	rules := []SandhiRule{
		{ID: "X", Category: CategoryVowel, ImplicitFinalA: true, RightPattern: "अ", Result: "ा", Priority: 5, Directions: []Direction{"sideways"}},
	}
	_, err := build(rules, nil, nil)
	require.Error(t, err)
}

func TestBuildRejectsInflectionCaseOutOfRange(t *testing.T) {
	_, err := build(nil, []InflectionPattern{{Ending: "अः", Case: 9, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 1}}, nil)
	require.Error(t, err)
}

func TestBuildRejectsUnknownNumber(t *testing.T) {
	_, err := build(nil, []InflectionPattern{{Ending: "अः", Case: 1, Number: "quad", Gender: GenderMasculine, StemClass: StemA, Priority: 1}}, nil)
	require.Error(t, err)
	var ie *IntegrityError
	require.ErrorAs(t, err, &ie)
}

func TestBuildRejectsUnknownGender(t *testing.T) {
	_, err := build(nil, []InflectionPattern{{Ending: "अः", Case: 1, Number: NumberSingular, Gender: "epicene", StemClass: StemA, Priority: 1}}, nil)
	require.Error(t, err)
}

func TestBuildRejectsUnknownStemClass(t *testing.T) {
	_, err := build(nil, []InflectionPattern{{Ending: "अः", Case: 1, Number: NumberSingular, Gender: GenderMasculine, StemClass: "diphthong", Priority: 1}}, nil)
	require.Error(t, err)
}

func TestBuildAcceptsWellFormedMinimalTables(t *testing.T) {
	k, err := build(
		[]SandhiRule{{ID: "X", Category: CategoryVowel, ImplicitFinalA: true, RightPattern: "अ", Result: "ा", Priority: 5, Directions: []Direction{DirectionForward, DirectionReverse}}},
		[]InflectionPattern{{Ending: "अः", Case: 1, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 1}},
		[]DerivationPattern{{Suffix: "त", Kind: KindKrt, Category: "past_passive_participle"}},
	)
	require.NoError(t, err)
	assert.Len(t, k.SandhiRules(), 1)
}
