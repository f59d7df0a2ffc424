package kb

import (
	"embed"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v2"
)

//go:embed data/sandhi_rules.yaml data/inflection_patterns.yaml data/derivation_patterns.yaml
var defaultData embed.FS

type sandhiFile struct {
	Rules []SandhiRule `yaml:"rules"`
}

type inflectionFile struct {
	Patterns []InflectionPattern `yaml:"patterns"`
}

type derivationFile struct {
	Patterns []DerivationPattern `yaml:"patterns"`
}

// Load builds the default embedded Grammar Knowledge Base, running the
// startup self-consistency checks described in §4.2 and §7 (Construction
// errors). Any inconsistency is a fatal *IntegrityError — there is no
// degraded-KB mode.
func Load() (*KB, error) {
	sandhiRaw, err := defaultData.ReadFile("data/sandhi_rules.yaml")
	if err != nil {
		return nil, &IntegrityError{Reason: fmt.Sprintf("reading embedded sandhi rules: %v", err)}
	}
	inflectionRaw, err := defaultData.ReadFile("data/inflection_patterns.yaml")
	if err != nil {
		return nil, &IntegrityError{Reason: fmt.Sprintf("reading embedded inflection patterns: %v", err)}
	}
	derivationRaw, err := defaultData.ReadFile("data/derivation_patterns.yaml")
	if err != nil {
		return nil, &IntegrityError{Reason: fmt.Sprintf("reading embedded derivation patterns: %v", err)}
	}

	var sf sandhiFile
	if err := yaml.Unmarshal(sandhiRaw, &sf); err != nil {
		return nil, &IntegrityError{Reason: fmt.Sprintf("parsing sandhi rules: %v", err)}
	}
	var inf inflectionFile
	if err := yaml.Unmarshal(inflectionRaw, &inf); err != nil {
		return nil, &IntegrityError{Reason: fmt.Sprintf("parsing inflection patterns: %v", err)}
	}
	var der derivationFile
	if err := yaml.Unmarshal(derivationRaw, &der); err != nil {
		return nil, &IntegrityError{Reason: fmt.Sprintf("parsing derivation patterns: %v", err)}
	}

	return build(sf.Rules, inf.Patterns, der.Patterns)
}

// build validates the three raw tables and assembles the indexed KB. It
// never asserts a specific rule count (§9): whatever the tables provide,
// once internally consistent, is the knowledge base.
func build(rules []SandhiRule, inflections []InflectionPattern, derivations []DerivationPattern) (*KB, error) {
	seen := make(map[string]bool, len(rules))
	byRune := make(map[rune][]SandhiRule)

	for _, r := range rules {
		if r.ID == "" {
			return nil, &IntegrityError{Reason: "sandhi rule with empty id"}
		}
		if seen[r.ID] {
			return nil, &IntegrityError{RuleID: r.ID, Reason: "duplicate sandhi rule id"}
		}
		seen[r.ID] = true

		switch r.Category {
		case CategoryVowel, CategoryConsonant, CategoryVisarga, CategorySpecial:
		default:
			return nil, &IntegrityError{RuleID: r.ID, Reason: fmt.Sprintf("unknown category %q", r.Category)}
		}

		if r.ImplicitFinalA && r.LeftPattern != "" {
			return nil, &IntegrityError{RuleID: r.ID, Reason: "implicit_final_a rules must not also set left_pattern"}
		}
		if !r.ImplicitFinalA && r.LeftPattern == "" {
			return nil, &IntegrityError{RuleID: r.ID, Reason: "left_pattern must be non-empty unless implicit_final_a is set"}
		}
		if r.RightPattern == "" {
			return nil, &IntegrityError{RuleID: r.ID, Reason: "right_pattern must be non-empty"}
		}
		if r.Result == "" {
			return nil, &IntegrityError{RuleID: r.ID, Reason: "result must be non-empty"}
		}
		for _, s := range []string{r.LeftPattern, r.RightPattern, r.Result} {
			if !norm.NFC.IsNormalString(s) {
				return nil, &IntegrityError{RuleID: r.ID, Reason: fmt.Sprintf("pattern %q is not in NFC", s)}
			}
		}
		if r.Priority < 1 || r.Priority > 10 {
			return nil, &IntegrityError{RuleID: r.ID, Reason: fmt.Sprintf("priority %d out of range [1,10]", r.Priority)}
		}
		if len(r.Directions) == 0 {
			return nil, &IntegrityError{RuleID: r.ID, Reason: "must set at least one direction"}
		}
		for _, d := range r.Directions {
			if d != DirectionForward && d != DirectionReverse {
				return nil, &IntegrityError{RuleID: r.ID, Reason: fmt.Sprintf("unknown direction %q", d)}
			}
		}

		// Self-consistency: forward application of the rule's own
		// patterns must round-trip without structural error. "क" and
		// "ङ" below are throwaway stand-ins used only to exercise
		// the pattern arithmetic (suffix/prefix stripping), not to
		// assert any particular linguistic outcome.
		probeLeft := "क" + r.LeftPattern
		if r.ImplicitFinalA {
			probeLeft = "क"
		}
		probeRight := r.RightPattern + "ङ"
		if _, err := ForwardApply(r, probeLeft, probeRight); err != nil {
			return nil, &IntegrityError{RuleID: r.ID, Reason: fmt.Sprintf("self-consistency check failed: %v", err)}
		}

		byRune[lastRune(r.Result)] = append(byRune[lastRune(r.Result)], r)
	}

	for _, p := range inflections {
		if p.Ending == "" {
			return nil, &IntegrityError{Reason: "inflection pattern with empty ending"}
		}
		if p.Case < 1 || p.Case > 8 {
			return nil, &IntegrityError{Reason: fmt.Sprintf("inflection ending %q has case %d out of range [1,8]", p.Ending, p.Case)}
		}
		if !norm.NFC.IsNormalString(p.Ending) {
			return nil, &IntegrityError{Reason: fmt.Sprintf("inflection ending %q is not in NFC", p.Ending)}
		}
		switch p.Number {
		case NumberSingular, NumberDual, NumberPlural:
		default:
			return nil, &IntegrityError{Reason: fmt.Sprintf("inflection ending %q has unknown number %q", p.Ending, p.Number)}
		}
		switch p.Gender {
		case GenderMasculine, GenderFeminine, GenderNeuter, GenderUnknown:
		default:
			return nil, &IntegrityError{Reason: fmt.Sprintf("inflection ending %q has unknown gender %q", p.Ending, p.Gender)}
		}
		switch p.StemClass {
		case StemA, StemLongA, StemI, StemLongI, StemU, StemLongU, StemR, StemConsonant:
		default:
			return nil, &IntegrityError{Reason: fmt.Sprintf("inflection ending %q has unknown stem_class %q", p.Ending, p.StemClass)}
		}
	}
	sort.SliceStable(inflections, func(i, j int) bool {
		return len(inflections[i].Ending) > len(inflections[j].Ending)
	})

	for _, p := range derivations {
		if p.Suffix == "" {
			return nil, &IntegrityError{Reason: "derivation pattern with empty suffix"}
		}
		if !norm.NFC.IsNormalString(p.Suffix) {
			return nil, &IntegrityError{Reason: fmt.Sprintf("derivation suffix %q is not in NFC", p.Suffix)}
		}
	}
	sort.SliceStable(derivations, func(i, j int) bool {
		return len(derivations[i].Suffix) > len(derivations[j].Suffix)
	})

	return &KB{
		sandhiRules:  rules,
		sandhiByRune: byRune,
		inflections:  inflections,
		derivations:  derivations,
	}, nil
}
