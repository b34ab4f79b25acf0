package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignGroupNumbersSequential(t *testing.T) {
	toks := Tokenize(`(a)(b(c))`)
	AssignGroupNumbers(toks)
	require.Len(t, toks, 2)
	assert.Equal(t, 1, toks[0].Group)
	assert.Equal(t, 2, toks[1].Group)
	require.Len(t, toks[1].Inner, 2)
	assert.Equal(t, 3, toks[1].Inner[1].Group)
}

func TestAssignGroupNumbersAllAlternationBranches(t *testing.T) {
	toks := Tokenize(`((a)|(b))`)
	AssignGroupNumbers(toks)
	require.Len(t, toks, 1)
	assert.Equal(t, 1, toks[0].Group)
	require.Len(t, toks[0].Inner, 1)
	alt := toks[0].Inner[0]
	require.Equal(t, KindAlternation, alt.Kind)
	require.Len(t, alt.Branches, 2)
	assert.Equal(t, 2, alt.Branches[0][0].Group)
	assert.Equal(t, 3, alt.Branches[1][0].Group)
}

func TestAssignGroupNumbersInsideQuantifier(t *testing.T) {
	toks := Tokenize(`(a)+(b)`)
	AssignGroupNumbers(toks)
	require.Len(t, toks, 2)
	require.Equal(t, KindQuantifier, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Wrapped.Group)
	assert.Equal(t, 2, toks[1].Group)
}
