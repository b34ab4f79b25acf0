// Package diag provides the matcher's diagnostic logging: a process-wide
// iteration counter that bounds debug output volume without ever affecting
// match results, backed by a logrus logger.
package diag

import (
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// MaxIterations caps the number of debug lines the matcher will emit per
// top-level Search/FindAll call (see ResetIterations), mirroring the spec's
// iteration budget (~2000).
const MaxIterations = 2000

var (
	iterations uint64
	logger     = logrus.New()
	enabled    bool
)

func init() {
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// Enable turns on debug logging to the given file path (truncated at
// process start, appended to thereafter), raising the logger to DebugLevel.
func Enable(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	enabled = true
	return nil
}

// ResetIterations zeroes the counter; called once per top-level Search/FindAll
// match attempt so the budget applies per call, not across a whole run.
func ResetIterations() {
	atomic.StoreUint64(&iterations, 0)
}

// Step increments the iteration counter and, only while under budget and with
// debug logging enabled, logs msg(). msg is lazily evaluated so disabled runs
// pay no formatting cost. The counter's sole purpose is bounding diagnostic
// volume — it is never consulted for match correctness.
func Step(msg func() string) {
	n := atomic.AddUint64(&iterations, 1)
	if !enabled || n > MaxIterations {
		return
	}
	logger.Debug(msg())
}
