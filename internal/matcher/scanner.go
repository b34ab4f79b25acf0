package matcher

import "github.com/dkessler-oss/grepx/internal/diag"

// Search reports whether tokens match anywhere in input. If tokens begin
// with a start anchor, only offset 0 is tried; otherwise every offset from 0
// through len(input) is tried in order, so an end-anchored empty pattern can
// still match at the very end of the line.
func Search(input string, tokens []Token) bool {
	diag.ResetIterations()
	runes := []rune(input)

	anchored := len(tokens) > 0 && tokens[0].Kind == KindStartAnchor
	limit := len(runes)
	if anchored {
		limit = 0
	}

	for start := 0; start <= limit; start++ {
		caps := make(Captures, 0)
		if _, ok := matchFrom(runes, tokens, start, &caps); ok {
			return true
		}
	}
	return false
}

// FindAll returns every non-overlapping match of tokens in input, as
// character offsets, scanning left to right. After a match it resumes
// searching from the match's end; after a zero-width match it advances by
// one rune so the scan always makes progress.
func FindAll(input string, tokens []Token) []Match {
	diag.ResetIterations()
	runes := []rune(input)

	anchored := len(tokens) > 0 && tokens[0].Kind == KindStartAnchor

	var matches []Match
	pos := 0
	for pos <= len(runes) {
		caps := make(Captures, 0)
		length, ok := matchFrom(runes, tokens, pos, &caps)
		if ok {
			matches = append(matches, Match{Start: pos, End: pos + length})
			if length == 0 {
				pos++
			} else {
				pos += length
			}
			if anchored {
				break
			}
			continue
		}
		if anchored {
			break
		}
		pos++
	}
	return matches
}
