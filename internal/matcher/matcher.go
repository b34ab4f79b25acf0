package matcher

import (
	"fmt"

	"github.com/dkessler-oss/grepx/internal/diag"
)

// Captures is a dense, zero-based vector of optional capture strings; entry i
// holds the substring captured by group i+1 for the current match attempt.
type Captures []*string

func snapshot(c Captures) Captures {
	cp := make(Captures, len(c))
	copy(cp, c)
	return cp
}

func (c *Captures) set(group int, value string) {
	idx := group - 1
	if idx >= len(*c) {
		grown := make(Captures, idx+1)
		copy(grown, *c)
		*c = grown
	}
	(*c)[idx] = &value
}

// matchFrom is the core recursive backtracking matcher: it reports whether
// tokens matches at input[pos:] and, if so, how many runes it consumed.
// caps is mutated in place and restored by every backtracking branch before
// it tries an alternative, so a returned (0, false) always leaves caps
// exactly as it found them.
func matchFrom(input []rune, tokens []Token, pos int, caps *Captures) (int, bool) {
	if len(tokens) == 0 {
		return 0, true
	}

	tok := &tokens[0]
	diag.Step(func() string {
		return fmt.Sprintf("pos=%d kind=%d remaining=%d", pos, tok.Kind, len(tokens))
	})

	switch tok.Kind {
	case KindStartAnchor:
		if pos != 0 {
			return 0, false
		}
		return matchFrom(input, tokens[1:], pos, caps)

	case KindEndAnchor:
		if pos != len(input) {
			return 0, false
		}
		return matchFrom(input, tokens[1:], pos, caps)

	case KindQuantifier:
		return matchQuantifier(input, tok, tokens, pos, caps)

	case KindExactRepetition:
		return matchExactRepetition(input, tok, tokens, pos, caps)

	case KindRangeRepetition:
		return matchRangeRepetition(input, tok, tokens, pos, caps)

	case KindAlternation:
		return matchAlternation(input, tok, tokens, pos, caps)

	case KindCaptureGroup:
		return matchCaptureGroup(input, tok, tokens, pos, caps)

	case KindBackReference:
		return matchBackReference(input, tok, tokens, pos, caps)

	default:
		if pos >= len(input) || !singleMatches(input[pos], tok) {
			return 0, false
		}
		if restLen, ok := matchFrom(input, tokens[1:], pos+1, caps); ok {
			return 1 + restLen, true
		}
		return 0, false
	}
}

// singleMatches reports whether ch satisfies a one-character token.
func singleMatches(ch rune, tok *Token) bool {
	switch tok.Kind {
	case KindDigit:
		return ch >= '0' && ch <= '9'
	case KindWord:
		return isWord(ch)
	case KindLiteral:
		return ch == tok.Literal
	case KindWildcard:
		return ch != '\n'
	case KindCharGroup:
		return runeIn(ch, tok.Chars)
	case KindNegCharGroup:
		return !runeIn(ch, tok.Chars)
	default:
		return false
	}
}

func isWord(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func runeIn(r rune, set []rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}

// matchSingle matches tok alone (as a length-one token sequence) at pos.
func matchSingle(input []rune, tok *Token, pos int, caps *Captures) (int, bool) {
	return matchFrom(input, []Token{*tok}, pos, caps)
}

func matchAlternation(input []rune, tok *Token, tokens []Token, pos int, caps *Captures) (int, bool) {
	for _, branch := range tok.Branches {
		combined := make([]Token, 0, len(branch)+len(tokens)-1)
		combined = append(combined, branch...)
		combined = append(combined, tokens[1:]...)

		saved := snapshot(*caps)
		if length, ok := matchFrom(input, combined, pos, caps); ok {
			return length, true
		}
		*caps = saved
	}
	return 0, false
}

// matchQuantifier implements the greedy +, ?, * quantifiers: collect every
// stop position reachable by repeated inner matches, then try the tail from
// longest to shortest.
func matchQuantifier(input []rune, tok *Token, tokens []Token, pos int, caps *Captures) (int, bool) {
	entry := snapshot(*caps)
	positions := []int{pos}
	cur := pos
	for {
		if tok.Quant == QuantZeroOrOne && len(positions) > 1 {
			break
		}
		length, ok := matchSingle(input, tok.Wrapped, cur, caps)
		if !ok {
			break
		}
		cur += length
		positions = append(positions, cur)
		if length == 0 {
			break // guard against an infinite loop on a zero-width inner match
		}
	}

	if tok.Quant == QuantOneOrMore && len(positions) < 2 {
		*caps = entry
		return 0, false
	}

	for k := len(positions) - 1; k >= 0; k-- {
		p := positions[k]
		if tok.Quant == QuantOneOrMore && p == pos {
			continue // 0 matches is not enough for +
		}
		saved := snapshot(*caps)
		if restLen, ok := matchFrom(input, tokens[1:], p, caps); ok {
			return (p - pos) + restLen, true
		}
		*caps = saved
	}
	*caps = entry
	return 0, false
}

func matchExactRepetition(input []rune, tok *Token, tokens []Token, pos int, caps *Captures) (int, bool) {
	saved := snapshot(*caps)
	cur := pos
	for i := 0; i < tok.Count; i++ {
		length, ok := matchSingle(input, tok.Wrapped, cur, caps)
		if !ok {
			*caps = saved
			return 0, false
		}
		cur += length
	}
	if restLen, ok := matchFrom(input, tokens[1:], cur, caps); ok {
		return (cur - pos) + restLen, true
	}
	*caps = saved
	return 0, false
}

// matchRangeRepetition implements {n,m} and {n,}. Unlike the reference
// implementation this backtracks the extension count: if the greedy maximum
// extension causes the tail to fail, it retries with fewer repetitions down
// to the mandatory minimum, per the spec's resolved REDESIGN FLAG.
func matchRangeRepetition(input []rune, tok *Token, tokens []Token, pos int, caps *Captures) (int, bool) {
	saved := snapshot(*caps)
	cur := pos
	for i := 0; i < tok.Min; i++ {
		length, ok := matchSingle(input, tok.Wrapped, cur, caps)
		if !ok {
			*caps = saved
			return 0, false
		}
		cur += length
	}

	positions := []int{cur}
	count := tok.Min
	for !tok.HasMax || count < tok.Max {
		length, ok := matchSingle(input, tok.Wrapped, cur, caps)
		if !ok {
			break
		}
		cur += length
		count++
		positions = append(positions, cur)
		if length == 0 {
			break
		}
	}

	for k := len(positions) - 1; k >= 0; k-- {
		p := positions[k]
		snap := snapshot(*caps)
		if restLen, ok := matchFrom(input, tokens[1:], p, caps); ok {
			return (p - pos) + restLen, true
		}
		*caps = snap
	}
	*caps = saved
	return 0, false
}

// matchCaptureGroup enumerates every length the inner tokens can consume
// starting at pos (longest first), records the capture, and requires the
// tail to match from the resulting offset — backtracking to a shorter
// capture length when it doesn't.
func matchCaptureGroup(input []rune, tok *Token, tokens []Token, pos int, caps *Captures) (int, bool) {
	saved := snapshot(*caps)
	lengths := collectMatchLengths(input, tok.Inner, pos, *caps)

	for k := len(lengths) - 1; k >= 0; k-- {
		length := lengths[k]
		attempt := snapshot(saved)
		attempt.set(tok.Group, string(input[pos:pos+length]))

		if _, ok := matchFrom(input, tok.Inner, pos, &attempt); !ok {
			continue
		}
		if restLen, ok := matchFrom(input, tokens[1:], pos+length, &attempt); ok {
			*caps = attempt
			return length + restLen, true
		}
	}
	*caps = saved
	return 0, false
}

func matchBackReference(input []rune, tok *Token, tokens []Token, pos int, caps *Captures) (int, bool) {
	idx := tok.Group - 1
	if idx < 0 || idx >= len(*caps) || (*caps)[idx] == nil {
		return 0, false
	}
	captured := []rune(*(*caps)[idx])
	if pos+len(captured) > len(input) {
		return 0, false
	}
	for i, c := range captured {
		if input[pos+i] != c {
			return 0, false
		}
	}
	if restLen, ok := matchFrom(input, tokens[1:], pos+len(captured), caps); ok {
		return len(captured) + restLen, true
	}
	return 0, false
}

// collectMatchLengths returns, in ascending sorted order with duplicates
// removed, every total length that tokens could consume from pos — mirroring
// matchFrom's structure but aggregating all successful paths instead of
// returning the first. Used only by matchCaptureGroup to drive backtracking
// over capture boundaries; it never mutates the caller's captures.
func collectMatchLengths(input []rune, tokens []Token, pos int, caps Captures) []int {
	if len(tokens) == 0 {
		return []int{0}
	}

	tok := &tokens[0]
	var result []int

	switch tok.Kind {
	case KindStartAnchor:
		if pos == 0 {
			return collectMatchLengths(input, tokens[1:], pos, caps)
		}
		return nil

	case KindEndAnchor:
		if pos == len(input) {
			return collectMatchLengths(input, tokens[1:], pos, caps)
		}
		return nil

	case KindQuantifier:
		positions := []int{pos}
		if tok.Quant == QuantOneOrMore {
			positions = nil
		}
		cur := pos
		dummy := Captures(nil)
		for {
			if tok.Quant == QuantZeroOrOne && len(positions) > 1 {
				break
			}
			length, ok := matchSingle(input, tok.Wrapped, cur, &dummy)
			if !ok {
				break
			}
			cur += length
			positions = append(positions, cur)
			if length == 0 {
				break
			}
		}
		for _, p := range positions {
			for _, restLen := range collectMatchLengths(input, tokens[1:], p, caps) {
				result = append(result, (p-pos)+restLen)
			}
		}

	case KindAlternation:
		for _, branch := range tok.Branches {
			combined := make([]Token, 0, len(branch)+len(tokens)-1)
			combined = append(combined, branch...)
			combined = append(combined, tokens[1:]...)
			result = append(result, collectMatchLengths(input, combined, pos, caps)...)
		}

	case KindCaptureGroup:
		for _, innerLen := range collectMatchLengths(input, tok.Inner, pos, caps) {
			temp := snapshot(caps)
			temp.set(tok.Group, string(input[pos:pos+innerLen]))
			matchFrom(input, tok.Inner, pos, &temp)
			for _, restLen := range collectMatchLengths(input, tokens[1:], pos+innerLen, temp) {
				result = append(result, innerLen+restLen)
			}
		}

	case KindBackReference:
		idx := tok.Group - 1
		if idx >= 0 && idx < len(caps) && caps[idx] != nil {
			captured := []rune(*caps[idx])
			if pos+len(captured) <= len(input) && string(input[pos:pos+len(captured)]) == *caps[idx] {
				for _, restLen := range collectMatchLengths(input, tokens[1:], pos+len(captured), caps) {
					result = append(result, len(captured)+restLen)
				}
			}
		}

	case KindExactRepetition:
		cur := pos
		dummy := Captures(nil)
		ok := true
		for i := 0; i < tok.Count; i++ {
			length, matched := matchSingle(input, tok.Wrapped, cur, &dummy)
			if !matched {
				ok = false
				break
			}
			cur += length
		}
		if ok {
			for _, restLen := range collectMatchLengths(input, tokens[1:], cur, caps) {
				result = append(result, (cur-pos)+restLen)
			}
		}

	case KindRangeRepetition:
		cur := pos
		dummy := Captures(nil)
		ok := true
		for i := 0; i < tok.Min; i++ {
			length, matched := matchSingle(input, tok.Wrapped, cur, &dummy)
			if !matched {
				ok = false
				break
			}
			cur += length
		}
		if ok {
			positions := []int{cur}
			count := tok.Min
			for !tok.HasMax || count < tok.Max {
				length, matched := matchSingle(input, tok.Wrapped, cur, &dummy)
				if !matched {
					break
				}
				cur += length
				count++
				positions = append(positions, cur)
				if length == 0 {
					break
				}
			}
			for _, p := range positions {
				for _, restLen := range collectMatchLengths(input, tokens[1:], p, caps) {
					result = append(result, (p-pos)+restLen)
				}
			}
		}

	default:
		if pos < len(input) && singleMatches(input[pos], tok) {
			for _, restLen := range collectMatchLengths(input, tokens[1:], pos+1, caps) {
				result = append(result, 1+restLen)
			}
		}
	}

	return sortedUnique(result)
}

func sortedUnique(lengths []int) []int {
	if len(lengths) == 0 {
		return lengths
	}
	seen := make(map[int]struct{}, len(lengths))
	for _, l := range lengths {
		seen[l] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
