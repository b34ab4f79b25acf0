// Package render turns matcher.Match offsets into the terminal output
// grepx actually prints: a highlighted line, or just the matched text for
// --only-matching.
package render

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/dkessler-oss/grepx/internal/cli"
	"github.com/dkessler-oss/grepx/internal/matcher"
)

const (
	ansiRed   = "\x1b[1;31m"
	ansiReset = "\x1b[0m"
)

// ShouldColor resolves a ColorMode against the given output stream.
func ShouldColor(mode cli.ColorMode, out *os.File) bool {
	switch mode {
	case cli.ColorAlways:
		return true
	case cli.ColorNever:
		return false
	default:
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}
}

// Highlight wraps every match in line in bold red, using character offsets
// from matches converted to byte offsets so multibyte runes slice cleanly.
func Highlight(line string, matches []matcher.Match, colorize bool) string {
	if len(matches) == 0 || !colorize {
		return line
	}

	runes := []rune(line)
	offsets := make([]int, len(runes)+1)
	byteOffset := 0
	for i, r := range runes {
		offsets[i] = byteOffset
		byteOffset += len(string(r))
	}
	offsets[len(runes)] = byteOffset

	var b []byte
	prev := 0
	for _, m := range matches {
		start, end := offsets[m.Start], offsets[m.End]
		b = append(b, line[prev:start]...)
		b = append(b, ansiRed...)
		b = append(b, line[start:end]...)
		b = append(b, ansiReset...)
		prev = end
	}
	b = append(b, line[prev:]...)
	return string(b)
}

// OnlyMatching returns just the matched substrings from line, one per match,
// in the order FindAll produced them.
func OnlyMatching(line string, matches []matcher.Match) []string {
	runes := []rune(line)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, string(runes[m.Start:m.End]))
	}
	return out
}

// Line formats one line of output, applying an optional "<prefix>:"; when
// colorize is true the prefix is colored magenta via fatih/color. The text
// itself is passed through unchanged (see Highlight).
func Line(prefix, text string, colorize bool) string {
	if prefix == "" {
		return text
	}
	label := prefix
	if colorize {
		label = color.New(color.FgMagenta).Sprint(prefix)
	}
	return fmt.Sprintf("%s:%s", label, text)
}
