package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkessler-oss/grepx/internal/matcher"
)

func TestHighlightWrapsMatchInAnsiRed(t *testing.T) {
	matches := []matcher.Match{{Start: 2, End: 5}}
	out := Highlight("a catdog", matches, true)
	assert.Equal(t, "a "+ansiRed+"cat"+ansiReset+"dog", out)
}

func TestHighlightNoColorReturnsLineUnchanged(t *testing.T) {
	matches := []matcher.Match{{Start: 0, End: 3}}
	out := Highlight("cat", matches, false)
	assert.Equal(t, "cat", out)
}

func TestHighlightMultibyteOffsets(t *testing.T) {
	line := "café bar"
	matches := []matcher.Match{{Start: 0, End: 4}}
	out := Highlight(line, matches, true)
	assert.Equal(t, ansiRed+"café"+ansiReset+" bar", out)
}

func TestOnlyMatchingExtractsSubstrings(t *testing.T) {
	line := "a1 b22 c333"
	matches := []matcher.Match{{Start: 1, End: 2}, {Start: 4, End: 6}, {Start: 8, End: 11}}
	out := OnlyMatching(line, matches)
	assert.Equal(t, []string{"1", "22", "333"}, out)
}

func TestLineAddsPrefixOnlyWhenGiven(t *testing.T) {
	assert.Equal(t, "text", Line("", "text", false))
	assert.Equal(t, "path.txt:text", Line("path.txt", "text", false))
}
