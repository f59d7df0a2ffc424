// Package kb is the Grammar Knowledge Base: an immutable, load-once store
// of sandhi rules, inflectional-ending patterns and derivational-suffix
// patterns (§4.2), each indexed for the lookups the splitter and
// analyzers need.
package kb

// SandhiCategory classifies a SandhiRule (§3).
type SandhiCategory string

const (
	CategoryVowel     SandhiCategory = "vowel"
	CategoryConsonant SandhiCategory = "consonant"
	CategoryVisarga   SandhiCategory = "visarga"
	CategorySpecial   SandhiCategory = "special"
)

// Direction is one member of a SandhiRule's allowed application
// directions.
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

// SandhiRule describes one phonetic-junction transformation (§3).
//
// LeftPattern is the final substring of the left word before the rule
// applies and RightPattern is the initial substring of the right word;
// Result is the substring that stands in their place once sandhi has
// merged them. Devanāgarī consonants carry an inherent, orthographically
// invisible "a" vowel when written without a vowel sign or virāma,
// so a rule describing an inherent-a left context has no visible glyph
// to put in LeftPattern — those rules set ImplicitFinalA instead of
// giving LeftPattern a (false) literal value. Every other pattern field
// is a non-empty, NFC-normalized literal substring.
type SandhiRule struct {
	ID             string         `yaml:"id"`
	Category       SandhiCategory `yaml:"category"`
	LeftPattern    string         `yaml:"left_pattern"`
	ImplicitFinalA bool           `yaml:"implicit_final_a"`
	RightPattern   string         `yaml:"right_pattern"`
	Result         string         `yaml:"result"`
	Priority       int            `yaml:"priority"`
	Directions     []Direction    `yaml:"directions"`
	Citation       string         `yaml:"citation,omitempty"`
	VedicOnly      bool           `yaml:"vedic_only,omitempty"`
}

// AllowsReverse reports whether this rule may license a split hypothesis
// (§3: "if reverse is set, seeing result at a word-internal junction
// licenses a split hypothesis").
func (r SandhiRule) AllowsReverse() bool {
	for _, d := range r.Directions {
		if d == DirectionReverse {
			return true
		}
	}
	return false
}

// StemClass is the final-phonetic-element classification of a noun or
// adjective stem (§3).
type StemClass string

const (
	StemA          StemClass = "a"
	StemLongA      StemClass = "ā"
	StemI          StemClass = "i"
	StemLongI      StemClass = "ī"
	StemU          StemClass = "u"
	StemLongU      StemClass = "ū"
	StemR          StemClass = "ṛ"
	StemConsonant  StemClass = "consonant"
)

// Number is the grammatical number of an InflectionMatch (§3).
type Number string

const (
	NumberSingular Number = "sg"
	NumberDual     Number = "du"
	NumberPlural   Number = "pl"
)

// Gender is the grammatical gender of an InflectionMatch (§3).
type Gender string

const (
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
	GenderNeuter    Gender = "n"
	GenderUnknown   Gender = "unknown"
)

// InflectionPattern matches a case ending against the end of a surface
// word (§3, §4.3).
type InflectionPattern struct {
	Ending     string    `yaml:"ending"`
	Case       int       `yaml:"case"` // 1..8
	Number     Number    `yaml:"number"`
	Gender     Gender    `yaml:"gender"`
	StemClass  StemClass `yaml:"stem_class"`
	Priority   int       `yaml:"priority"`
}

// DerivationKind is the broad morphological family a DerivationPattern
// belongs to (§3).
type DerivationKind string

const (
	KindKrt      DerivationKind = "kṛt"
	KindTaddhita DerivationKind = "taddhita"
	KindStri     DerivationKind = "strī"
)

// DerivationPattern matches a derivational suffix against the end of a
// surface word (§3, §4.4).
type DerivationPattern struct {
	Suffix   string         `yaml:"suffix"`
	Kind     DerivationKind `yaml:"kind"`
	Category string         `yaml:"category"`
}
