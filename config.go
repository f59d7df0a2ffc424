package vedictok

import (
	"fmt"
	"math"

	iso "github.com/barbashov/iso639-3"
)

// Config holds the tunable behavior of an Engine. Zero-valued Configs are
// not meaningful; start from DefaultConfig and override only what you
// need, or let New(kb, lexicon, nil) apply the defaults for you.
type Config struct {
	// Language is an ISO 639 code (any part) identifying the language the
	// engine is tokenizing. Defaults to "san" (Sanskrit). Validated and
	// normalized to its ISO 639-3 form at construction time.
	Language string

	// PreserveWhitespace, when true (default), emits whitespace runs as
	// their own tokens. Setting it to false drops them from the output
	// and breaks the reversibility invariant (§6); callers that disable
	// it accept that detokenize(tokenize(s)) != normalize(s).
	PreserveWhitespace bool

	// PreserveVedicAccents, when true (default), keeps Vedic accent
	// marks attached to their base characters. Setting it to false
	// strips them and, like PreserveWhitespace=false, breaks
	// reversibility.
	PreserveVedicAccents bool

	// EnableSandhiSplitting, when false, emits every word-class RawToken
	// as a single Token with no splitting attempted (§6).
	EnableSandhiSplitting bool

	// EnableDerivationAnalysis toggles attaching derivation analyses to
	// candidate parts (§6). Inflection analysis always runs, and the
	// scorer's grammar score consults derivation patterns either way.
	EnableDerivationAnalysis bool

	// MaxCandidates caps the number of candidates kept per word after
	// merging and scoring (§4.5). Must be positive.
	MaxCandidates int

	// Weights controls the composite score mix (§4.6). Must sum to 1
	// within 1e-9.
	Weights ScoreWeights

	// FrequencyReference is the F_ref constant used to scale the
	// frequency score (§4.6). Must be positive.
	FrequencyReference float64
}

// ScoreWeights is the rule/frequency/grammar mix used by the scorer.
type ScoreWeights struct {
	Rule    float64
	Freq    float64
	Grammar float64
}

// DefaultConfig returns the documented default configuration (§6).
func DefaultConfig() Config {
	return Config{
		Language:                 "san",
		PreserveWhitespace:       true,
		PreserveVedicAccents:     true,
		EnableSandhiSplitting:    true,
		EnableDerivationAnalysis: true,
		MaxCandidates:            8,
		Weights:                  ScoreWeights{Rule: 0.40, Freq: 0.30, Grammar: 0.30},
		FrequencyReference:       10000,
	}
}

// validate checks the Config for internal consistency, returning the
// resolved ISO 639-3 language code on success. Called once at New.
func (c Config) validate() (lang string, err error) {
	if c.MaxCandidates <= 0 {
		return "", &ConfigError{Field: "MaxCandidates", Reason: "must be positive"}
	}
	sum := c.Weights.Rule + c.Weights.Freq + c.Weights.Grammar
	if math.Abs(sum-1.0) > 1e-9 {
		return "", &ConfigError{Field: "Weights", Reason: fmt.Sprintf("must sum to 1, got %v", sum)}
	}
	if c.Weights.Rule < 0 || c.Weights.Freq < 0 || c.Weights.Grammar < 0 {
		return "", &ConfigError{Field: "Weights", Reason: "components must be non-negative"}
	}
	if c.FrequencyReference <= 0 {
		return "", &ConfigError{Field: "FrequencyReference", Reason: "must be positive"}
	}
	code := iso.FromAnyCode(c.Language)
	if code == nil {
		return "", &ConfigError{Field: "Language", Reason: fmt.Sprintf("not a valid ISO 639 code: %q", c.Language)}
	}
	return code.Part3, nil
}
