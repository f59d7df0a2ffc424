// Package lexicon is the frequency-annotated word list the scorer
// consults for freq_score (§4.6) and the splitter consults for
// lexical-scan candidates (§4.5.2, §4.5.3).
package lexicon

import (
	"embed"
	"math"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v2"
)

//go:embed data/lexicon.yaml
var defaultData embed.FS

// Entry is one lexicon row (§3: LexiconEntry).
type Entry struct {
	Surface   string  `yaml:"surface"`
	Frequency float64 `yaml:"frequency"`
}

type lexiconFile struct {
	Entries []Entry `yaml:"entries"`
}

// Lexicon is an immutable surface-form -> frequency table. A Lexicon
// with zero entries is valid (§4.9: lexicon load failure is
// non-fatal) — every lookup simply returns "not found" and freq_score
// becomes 0 for every candidate.
type Lexicon struct {
	freq    map[string]float64
	maxFreq float64
}

// Load builds the default embedded lexicon. Unlike kb.Load, a problem
// here is never fatal: a read or parse failure yields an empty,
// always-miss Lexicon instead of an error, matching §4.9's "missing or
// corrupt lexicon" failure semantics.
func Load() *Lexicon {
	raw, err := defaultData.ReadFile("data/lexicon.yaml")
	if err != nil {
		return Empty()
	}
	var lf lexiconFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return Empty()
	}
	return New(lf.Entries)
}

// Empty returns a Lexicon with no entries.
func Empty() *Lexicon {
	return &Lexicon{freq: map[string]float64{}}
}

// New builds a Lexicon from entries, skipping any entry whose surface
// form is empty, not NFC-normalized, or has a non-positive frequency —
// such rows are silently dropped rather than treated as fatal, since a
// partially-malformed lexicon is still useful (§4.9).
func New(entries []Entry) *Lexicon {
	l := &Lexicon{freq: make(map[string]float64, len(entries))}
	for _, e := range entries {
		if e.Surface == "" || e.Frequency <= 0 || !norm.NFC.IsNormalString(e.Surface) {
			continue
		}
		l.freq[e.Surface] = e.Frequency
		if e.Frequency > l.maxFreq {
			l.maxFreq = e.Frequency
		}
	}
	return l
}

// Frequency returns the raw frequency of surface and whether it was
// found.
func (l *Lexicon) Frequency(surface string) (float64, bool) {
	f, ok := l.freq[surface]
	return f, ok
}

// Contains reports whether surface is a lexicon entry.
func (l *Lexicon) Contains(surface string) bool {
	_, ok := l.freq[surface]
	return ok
}

// Len returns the number of entries in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.freq)
}

// FreqScore computes the frequency component of the composite score
// (§4.6): log-scaled and clamped to [0, 1] against ref, the
// Config.FrequencyReference ceiling. A part absent from the lexicon
// scores 0.
func (l *Lexicon) FreqScore(surface string, ref float64) float64 {
	f, ok := l.freq[surface]
	if !ok || f <= 0 {
		return 0
	}
	score := math.Log(1+f) / math.Log(1+ref)
	if score > 1 {
		return 1
	}
	return score
}
