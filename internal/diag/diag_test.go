package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepNeverPanicsWhenDisabled(t *testing.T) {
	ResetIterations()
	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			Step(func() string { return "line" })
		}
	})
}

func TestResetIterationsZeroesCounter(t *testing.T) {
	ResetIterations()
	Step(func() string { return "x" })
	assert.Equal(t, uint64(1), iterations)
	ResetIterations()
	assert.Equal(t, uint64(0), iterations)
}
