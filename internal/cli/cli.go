// Package cli parses grepx's command line: a small pflag-based flag set
// followed by a mandatory "-E <pattern>" and a trailing list of filenames
// taken verbatim.
package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ColorMode selects when match highlighting is emitted.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Config holds one parsed invocation.
type Config struct {
	Pattern      string
	Files        []string
	Recursive    bool
	OnlyMatching bool
	MultiLine    bool
	Debug        bool
	Color        ColorMode
}

// ParseArgs parses args (excluding the program name, i.e. os.Args[1:]).
// A returned error is a usage error; the caller should print it to stderr
// and exit with status 2, matching the teacher's main.go convention.
func ParseArgs(args []string) (*Config, error) {
	splitAt := -1
	for i, a := range args {
		if a == "-E" {
			splitAt = i
			break
		}
	}
	if splitAt == -1 {
		return nil, fmt.Errorf("usage: grepx [--color[=WHEN]] [-r] [-o [-P]] [--debug] -E <pattern> [file...]")
	}
	if splitAt+1 >= len(args) {
		return nil, fmt.Errorf("-E requires a pattern argument")
	}

	flagArgs := args[:splitAt]
	pattern := args[splitAt+1]
	files := args[splitAt+2:]

	fs := pflag.NewFlagSet("grepx", pflag.ContinueOnError)
	fs.Usage = func() {}

	// "never" is the no-flag default, matching original_source/'s
	// parse_args — --color=auto must be requested explicitly, it is not
	// the implicit behavior of omitting the flag.
	colorFlag := fs.String("color", "never", "")
	fs.Lookup("color").NoOptDefVal = "always"
	recursive := fs.BoolP("recursive", "r", false, "")
	onlyMatching := fs.BoolP("only-matching", "o", false, "")
	perlMode := fs.BoolP("perl-regexp", "P", false, "")
	debug := fs.Bool("debug", false, "")

	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}

	cfg := &Config{
		Pattern:      pattern,
		Files:        files,
		Recursive:    *recursive,
		OnlyMatching: *onlyMatching,
		Debug:        *debug,
	}
	// -P only takes effect when -o is already set, matching original_source/.
	cfg.MultiLine = *perlMode && *onlyMatching

	switch *colorFlag {
	case "always":
		cfg.Color = ColorAlways
	case "never":
		cfg.Color = ColorNever
	case "auto":
		cfg.Color = ColorAuto
	default:
		return nil, fmt.Errorf("invalid --color value %q (want always, never, or auto)", *colorFlag)
	}

	return cfg, nil
}

// ShouldPrefix reports whether output lines should be prefixed with
// "<filename>:", which happens whenever more than one file could produce
// output — either multiple names were given, or -r makes the file count
// unpredictable up front.
func (c *Config) ShouldPrefix() bool {
	return len(c.Files) > 1 || c.Recursive
}
