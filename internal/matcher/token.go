// Package matcher implements the regular-expression engine: tokenizer, group
// numberer, backtracking matcher, and scanner.
package matcher

// Kind discriminates the variant a Token holds.
type Kind int

const (
	KindLiteral Kind = iota
	KindDigit
	KindWord
	KindWildcard
	KindCharGroup
	KindNegCharGroup
	KindStartAnchor
	KindEndAnchor
	KindAlternation
	KindCaptureGroup
	KindBackReference
	KindQuantifier
	KindExactRepetition
	KindRangeRepetition
)

// Quant is the repetition kind carried by a Quantifier token.
type Quant int

const (
	QuantOneOrMore Quant = iota
	QuantZeroOrOne
	QuantZeroOrMore
)

// Token is a single node of a compiled pattern. Only the fields relevant to
// Kind are populated; the rest are zero values. This is the conventional Go
// rendering of the tagged union described by the spec's Token table — no
// interface dispatch is needed since the matcher already switches on Kind.
type Token struct {
	Kind Kind

	Literal rune   // KindLiteral
	Chars   []rune // KindCharGroup, KindNegCharGroup

	Branches [][]Token // KindAlternation

	Group int     // KindCaptureGroup (assigned by AssignGroupNumbers), KindBackReference
	Inner []Token // KindCaptureGroup

	Quant    Quant  // KindQuantifier
	Wrapped  *Token // KindQuantifier, KindExactRepetition, KindRangeRepetition
	Count    int    // KindExactRepetition
	Min      int    // KindRangeRepetition
	Max      int    // KindRangeRepetition, valid only if HasMax
	HasMax   bool   // KindRangeRepetition
}

// Match describes one successful find_all hit, as character offsets into the
// searched line (not byte offsets — callers slicing a multibyte string must
// convert, see internal/render).
type Match struct {
	Start int
	End   int
}
