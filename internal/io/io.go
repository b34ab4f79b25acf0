// Package io provides the line-reading and file-opening helpers shared by
// stdin and file-based search.
package io

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadLines returns a Scanner over reader, one line per Scan/Text call.
func ReadLines(reader io.Reader) *bufio.Scanner {
	return bufio.NewScanner(reader)
}

// ReadFile opens path for reading, wrapping any error with the path so the
// caller can print a useful "<path>: <cause>" message.
func ReadFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}
