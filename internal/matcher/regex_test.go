package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func search(t *testing.T, pattern, line string) bool {
	t.Helper()
	return Compile(pattern).Search(line)
}

func TestSearchLiteralsAndClasses(t *testing.T) {
	assert.True(t, search(t, "cat", "a cat sat"))
	assert.False(t, search(t, "dog", "a cat sat"))
	assert.True(t, search(t, `\d`, "room 42"))
	assert.False(t, search(t, `\d`, "no digits here"))
	assert.True(t, search(t, `\w`, "_underscore"))
	assert.True(t, search(t, `c.t`, "cat"))
	assert.True(t, search(t, `c.t`, "cot"))
}

func TestSearchAnchors(t *testing.T) {
	assert.True(t, search(t, `^log`, "log start"))
	assert.False(t, search(t, `^log`, "a log"))
	assert.True(t, search(t, `end$`, "the end"))
	assert.False(t, search(t, `end$`, "end of road"))
}

func TestSearchCharGroups(t *testing.T) {
	assert.True(t, search(t, `[abc]at`, "bat"))
	assert.False(t, search(t, `[abc]at`, "hat"))
	assert.True(t, search(t, `[^abc]at`, "hat"))
	assert.False(t, search(t, `[^abc]at`, "cat"))
}

func TestSearchAlternation(t *testing.T) {
	assert.True(t, search(t, `(cat|dog)`, "I have a dog"))
	assert.True(t, search(t, `(cat|dog)`, "I have a cat"))
	assert.False(t, search(t, `(cat|dog)`, "I have a fish"))
}

func TestSearchQuantifiers(t *testing.T) {
	assert.True(t, search(t, `ca+ts`, "caats"))
	assert.False(t, search(t, `ca+ts`, "cts"))
	assert.True(t, search(t, `ca*ts`, "cts"))
	assert.True(t, search(t, `colou?r`, "color"))
	assert.True(t, search(t, `colou?r`, "colour"))
}

func TestSearchExactAndRangeRepetition(t *testing.T) {
	assert.True(t, search(t, `a{3}`, "aaa"))
	assert.False(t, search(t, `a{3}`, "aa"))
	assert.True(t, search(t, `a{2,4}`, "aaa"))
	assert.False(t, search(t, `^a{2,4}$`, "a"))
	assert.True(t, search(t, `^a{2,}$`, "aaaaaa"))
}

func TestSearchCaptureGroupsAndBackreferences(t *testing.T) {
	assert.True(t, search(t, `(\w+) \1`, "hello hello"))
	assert.False(t, search(t, `(\w+) \1`, "hello world"))
	assert.True(t, search(t, `(\d+)-(\d+)`, "12-34"))
}

func TestSearchNestedCaptureBacktracking(t *testing.T) {
	// the outer group must give up its greedy length to let the backreference match
	assert.True(t, search(t, `^(a+)(a+)\1$`, "aaaa"))
}

func TestSearchRangeRepetitionBacktracksExtensionCount(t *testing.T) {
	// a{1,3}a requires a{1,3} to give back one repetition so the trailing a matches
	assert.True(t, search(t, `^a{1,3}a$`, "aaa"))
	assert.False(t, search(t, `^a{1,3}a$`, "a"))
}

func TestFindAllReturnsEveryNonOverlappingMatch(t *testing.T) {
	matches := Compile(`\d+`).FindAll("a1 b22 c333")
	require.Len(t, matches, 3)
	assert.Equal(t, "1", "a1 b22 c333"[matches[0].Start:matches[0].End])
}

func TestFindAllAnchoredStopsAtOneMatch(t *testing.T) {
	matches := Compile(`^\w+`).FindAll("hello world")
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Start)
}

func TestFindAllZeroWidthAdvancesByOneRune(t *testing.T) {
	matches := Compile(`a*`).FindAll("bab")
	// matches at every position; zero-width hits must not loop forever
	require.NotEmpty(t, matches)
}

func TestCapturesRestoredOnBacktrackFailure(t *testing.T) {
	// (a)(b) fails against "ac", and must not leave a stale capture for group 1
	re := Compile(`(a)(b)`)
	assert.False(t, re.Search("ac"))

	caps := make(Captures, 0)
	_, ok := matchFrom([]rune("ac"), re.tokens, 0, &caps)
	assert.False(t, ok)
	assert.Empty(t, caps)
}
