package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIsNonEmptyAndRecognizesKnownWords(t *testing.T) {
	l := Load()
	require.Positive(t, l.Len())
	assert.True(t, l.Contains("राम"))
	assert.False(t, l.Contains("नास्तिशब्दः"))
}

func TestFreqScoreRange(t *testing.T) {
	l := Load()
	f, ok := l.Frequency("राम")
	require.True(t, ok)
	require.Positive(t, f)

	score := l.FreqScore("राम", 10000)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)

	assert.Equal(t, 0.0, l.FreqScore("not-a-word", 10000))
}

func TestFreqScoreClampedAtReference(t *testing.T) {
	l := Load()
	// A tiny reference frequency should still clamp to at most 1.
	score := l.FreqScore("च", 1)
	assert.LessOrEqual(t, score, 1.0)
}

func TestEmptyLexiconAlwaysMisses(t *testing.T) {
	l := Empty()
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains("राम"))
	assert.Equal(t, 0.0, l.FreqScore("राम", 10000))
}

func TestNewSkipsMalformedEntries(t *testing.T) {
	l := New([]Entry{
		{Surface: "", Frequency: 10},
		{Surface: "valid", Frequency: 0},
		{Surface: "valid", Frequency: -5},
		{Surface: "ठीक", Frequency: 42},
	})
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Contains("ठीक"))
}
