package vedictok

import (
	"sync/atomic"

	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/kb"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/lexicon"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/normalize"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/scorer"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/splitter"
	"github.com/shi-vo/vedic-tokenizer-zero-error/internal/verify"
)

// Engine is a configured tokenizer. Engines are immutable once
// constructed and safe for concurrent use by any number of goroutines
// (§5): Tokenize and AnalyzeWord hold no mutable state but the
// Statistics counters, which are themselves concurrency-safe.
type Engine struct {
	base *kb.KB
	lex  *lexicon.Lexicon
	cfg  Config
	lang string

	counters        verify.Counters
	totalCandidates atomic.Int64
	ruleMatches     map[string]*atomic.Int64
}

// New constructs an Engine from a Grammar Knowledge Base, a Lexicon,
// and an optional Config (nil selects DefaultConfig). Every error New
// can return is a construction-time error: a *ConfigError describing
// the first invalid field found (§7).
func New(base *kb.KB, lex *lexicon.Lexicon, cfg *Config) (*Engine, error) {
	resolved := DefaultConfig()
	if cfg != nil {
		resolved = *cfg
	}
	lang, err := resolved.validate()
	if err != nil {
		return nil, err
	}
	if lex == nil {
		lex = lexicon.Empty()
	}

	ruleMatches := make(map[string]*atomic.Int64, len(base.SandhiRules()))
	for _, r := range base.SandhiRules() {
		ruleMatches[r.ID] = new(atomic.Int64)
	}

	return &Engine{
		base:        base,
		lex:         lex,
		cfg:         resolved,
		lang:        lang,
		ruleMatches: ruleMatches,
	}, nil
}

// NewDefault loads the embedded Grammar Knowledge Base and Lexicon and
// constructs an Engine with DefaultConfig. It returns a *KBError only
// if the embedded rule tables are themselves inconsistent, which
// indicates a packaging defect rather than anything a caller did.
func NewDefault() (*Engine, error) {
	base, err := kb.Load()
	if err != nil {
		if ie, ok := err.(*kb.IntegrityError); ok {
			return nil, &KBError{RuleID: ie.RuleID, Reason: ie.Reason}
		}
		return nil, &KBError{Reason: err.Error()}
	}
	return New(base, lexicon.Load(), nil)
}

// Language returns the resolved ISO 639-3 language code this Engine was
// configured with.
func (e *Engine) Language() string {
	return e.lang
}

// Tokenize segments text into Tokens. The byte-exact reversibility
// invariant (§8 property 1) always holds: if the scored splitting
// pipeline ever produces output that doesn't reconstruct the original
// word-class span — including if it panics — Tokenize silently falls
// back to emitting that span as a single, unsplit Token and counts the
// fallback in Statistics (§4.8). Tokenize never returns an error.
func (e *Engine) Tokenize(text string) []Token {
	normalized := normalize.Normalize(text, e.cfg.PreserveVedicAccents)
	raw := normalize.Segment(normalized)

	tokens := make([]Token, 0, len(raw))
	for _, rt := range raw {
		if rt.Class != ClassWord || !e.cfg.EnableSandhiSplitting {
			tokens = append(tokens, Token{Parts: []string{rt.Text}, Class: rt.Class, Winner: -1})
			continue
		}
		tokens = append(tokens, e.tokenizeWordSafe(rt.Text))
	}

	if !e.cfg.PreserveWhitespace {
		tokens = filterWhitespace(tokens)
	}
	return tokens
}

func filterWhitespace(tokens []Token) []Token {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t.Class == ClassWhitespace {
			continue
		}
		out = append(out, t)
	}
	return out
}

// tokenizeWordSafe runs the scored splitting pipeline behind a panic
// guard and a round-trip check, falling back to trivial emission on
// any anomaly.
func (e *Engine) tokenizeWordSafe(word string) Token {
	var tok Token
	panicked := verify.Guard(func() {
		tok = e.tokenizeWord(word)
	})
	if panicked || !verify.RoundTripOK(tok.Text(), word) {
		e.counters.RecordFallback()
		logger.Debug().Str("word", word).Bool("panicked", panicked).Msg("tokenize: falling back to trivial emission")
		return Token{Parts: []string{word}, Class: ClassWord, Winner: -1}
	}
	e.counters.RecordSuccess()
	return tok
}

// tokenizeWord runs the full candidate-generation, scoring and
// analysis pipeline for one word-class span and returns its winning
// Token.
func (e *Engine) tokenizeWord(word string) Token {
	candidates := e.rankedCandidates(word)
	winner := candidates[0]

	if winner.RuleID != "" {
		if counter, ok := e.ruleMatches[winner.RuleID]; ok {
			counter.Add(1)
		}
	}
	e.totalCandidates.Add(int64(len(candidates)))

	return Token{
		Parts:      winner.Parts,
		Class:      ClassWord,
		RuleID:     winner.RuleID,
		Candidates: candidates,
		Winner:     0,
	}
}

// rankedCandidates generates, scores and analyzes every candidate split
// of word, capped to Config.MaxCandidates, best-first.
func (e *Engine) rankedCandidates(word string) []Candidate {
	raw := splitter.Generate(e.base, e.lex, word)
	weights := scorer.Weights{Rule: e.cfg.Weights.Rule, Freq: e.cfg.Weights.Freq, Grammar: e.cfg.Weights.Grammar}
	ranked := scorer.Rank(e.base, e.lex, e.cfg.FrequencyReference, weights, raw)

	if len(ranked) > e.cfg.MaxCandidates {
		ranked = ranked[:e.cfg.MaxCandidates]
	}

	out := make([]Candidate, len(ranked))
	for i, r := range ranked {
		infl, deriv := analyzeParts(e.base, r.Candidate.Parts, e.cfg.EnableDerivationAnalysis)
		out[i] = Candidate{
			Parts:        r.Candidate.Parts,
			RuleID:       r.Candidate.RuleID,
			Inflections:  infl,
			Derivations:  deriv,
			RuleScore:    r.Scores.Rule,
			FreqScore:    r.Scores.Freq,
			GrammarScore: r.Scores.Grammar,
			Score:        r.Scores.Composite,
		}
	}
	return out
}

// AnalyzeWord runs the candidate pipeline over word directly, without
// segmenting it out of a larger text first, and returns every retained
// candidate best-first (§6). Unlike Tokenize, a malformed call here is
// allowed to reflect errors: an empty word returns an empty slice.
func (e *Engine) AnalyzeWord(word string) []Candidate {
	if word == "" {
		return nil
	}
	return e.rankedCandidates(word)
}

// Detokenize reconstructs the original (normalized) text from tokens by
// concatenating every part of every Token in order (§6). For any slice
// returned by Tokenize, Detokenize(Tokenize(s)) == normalize(s) as long
// as PreserveWhitespace and PreserveVedicAccents were both left at
// their default true (§8 property 1).
func Detokenize(tokens []Token) string {
	var s string
	for _, t := range tokens {
		s += t.Text()
	}
	return s
}

// Statistics is a point-in-time snapshot of an Engine's running counts
// (§6).
type Statistics struct {
	TotalWords               int64
	FallbackCount            int64
	AverageCandidatesPerWord float64
	RuleMatchCounts          map[string]int64
}

// Statistics returns a snapshot of this Engine's counters since
// construction.
func (e *Engine) Statistics() Statistics {
	total, fallback := e.counters.Snapshot()
	avg := 0.0
	if total > 0 {
		avg = float64(e.totalCandidates.Load()) / float64(total)
	}
	counts := make(map[string]int64, len(e.ruleMatches))
	for id, c := range e.ruleMatches {
		if n := c.Load(); n > 0 {
			counts[id] = n
		}
	}
	return Statistics{
		TotalWords:               total,
		FallbackCount:            fallback,
		AverageCandidatesPerWord: avg,
		RuleMatchCounts:          counts,
	}
}
