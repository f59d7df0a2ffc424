package vedictok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/kb"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/lexicon"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/normalize"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewDefault()
	require.NoError(t, err)
	return e
}

func TestTokenizeRoundTripsExactly(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{
		"राम सीता",
		"धर्मक्षेत्रे कुरुक्षेत्रे।",
		"रामः अत्र",
		"सुरोत्तमः गच्छति",
		"123 राम",
		"",
		"   ",
		"hello राम world",
	}
	for _, s := range inputs {
		tokens := e.Tokenize(s)
		got := Detokenize(tokens)
		want := normalize.Normalize(s, true)
		assert.Equal(t, want, got, "round trip for %q", s)
	}
}

func TestTokenizeEmptyInputReturnsNoTokens(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.Tokenize(""))
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	e := newTestEngine(t)
	tokens := e.Tokenize("   ")
	require.Len(t, tokens, 1)
	assert.Equal(t, ClassWhitespace, tokens[0].Class)
}

func TestTokenizeDigitsOnly(t *testing.T) {
	e := newTestEngine(t)
	tokens := e.Tokenize("१२३")
	require.Len(t, tokens, 1)
	assert.Equal(t, ClassDigit, tokens[0].Class)
}

func TestTokenizeMixedScript(t *testing.T) {
	e := newTestEngine(t)
	tokens := e.Tokenize("राम hello")
	var sawOther bool
	for _, tok := range tokens {
		if tok.Class == ClassOther {
			sawOther = true
		}
	}
	assert.True(t, sawOther)
}

func TestPreserveWhitespaceFalseDropsWhitespaceTokens(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreserveWhitespace = false
	base, err := kb.Load()
	require.NoError(t, err)
	e, err := New(base, lexicon.Load(), &cfg)
	require.NoError(t, err)

	tokens := e.Tokenize("राम सीता")
	for _, tok := range tokens {
		assert.NotEqual(t, ClassWhitespace, tok.Class)
	}
}

func TestEnableSandhiSplittingFalseNeverSplits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableSandhiSplitting = false
	base, err := kb.Load()
	require.NoError(t, err)
	e, err := New(base, lexicon.Load(), &cfg)
	require.NoError(t, err)

	tokens := e.Tokenize("सुरोत्तमः")
	for _, tok := range tokens {
		if tok.Class == ClassWord {
			assert.Len(t, tok.Parts, 1)
			assert.Equal(t, -1, tok.Winner)
		}
	}
}

func TestAnalyzeWordReturnsCandidatesBestFirst(t *testing.T) {
	e := newTestEngine(t)
	candidates := e.AnalyzeWord("सुरोत्तमः")
	require.NotEmpty(t, candidates)
	for i := 1; i < len(candidates); i++ {
		assert.LessOrEqual(t, candidates[i].Score, candidates[i-1].Score)
	}
}

func TestAnalyzeWordEmptyInputReturnsEmpty(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.AnalyzeWord(""))
}

func TestMaxCandidatesIsRespected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCandidates = 1
	base, err := kb.Load()
	require.NoError(t, err)
	e, err := New(base, lexicon.Load(), &cfg)
	require.NoError(t, err)

	candidates := e.AnalyzeWord("सुरोत्तमः")
	assert.LessOrEqual(t, len(candidates), 1)
}

func TestStatisticsTracksWordsProcessed(t *testing.T) {
	e := newTestEngine(t)
	before := e.Statistics().TotalWords
	e.Tokenize("राम सीता धर्म")
	after := e.Statistics().TotalWords
	assert.Greater(t, after, before)
}

func TestMissingLexiconIsNonFatal(t *testing.T) {
	base, err := kb.Load()
	require.NoError(t, err)
	e, err := New(base, nil, nil)
	require.NoError(t, err)
	tokens := e.Tokenize("राम")
	assert.Equal(t, "राम", Detokenize(tokens))
}

func TestNewRejectsInvalidWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = ScoreWeights{Rule: 0.5, Freq: 0.5, Grammar: 0.5}
	base, err := kb.Load()
	require.NoError(t, err)
	_, err = New(base, lexicon.Load(), &cfg)
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
}

func TestNewRejectsInvalidLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = "not-a-real-language-code"
	base, err := kb.Load()
	require.NoError(t, err)
	_, err = New(base, lexicon.Load(), &cfg)
	require.Error(t, err)
}

func TestLanguageResolvesToISO6393(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, "san", e.Language())
}

func TestEveryLoadedSandhiRuleRoundTripsThroughTokenize(t *testing.T) {
	e := newTestEngine(t)
	base, err := kb.Load()
	require.NoError(t, err)

	for _, r := range base.SandhiRules() {
		left := "राम"
		if !r.ImplicitFinalA {
			left += r.LeftPattern
		}
		right := r.RightPattern + "अत्र"
		merged, err := kb.ForwardApply(r, left, right)
		require.NoError(t, err, "rule %s", r.ID)

		tokens := e.Tokenize(merged)
		assert.Equal(t, merged, Detokenize(tokens), "rule %s round trip", r.ID)
	}
}
