// Command grepx is a line-oriented grep -E-style search tool whose engine is
// a backtracking regular-expression matcher (internal/matcher).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dkessler-oss/grepx/internal/cli"
	"github.com/dkessler-oss/grepx/internal/diag"
	"github.com/dkessler-oss/grepx/internal/engine"
	ggio "github.com/dkessler-oss/grepx/internal/io"
	"github.com/dkessler-oss/grepx/internal/matcher"
	"github.com/dkessler-oss/grepx/internal/render"
	"github.com/dkessler-oss/grepx/internal/walk"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	cfg, err := cli.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if cfg.Debug {
		if err := diag.Enable("debug.log"); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	re := matcher.Compile(cfg.Pattern)
	colorize := render.ShouldColor(cfg.Color, stdout)

	if len(cfg.Files) == 0 {
		matched, err := searchReader(os.Stdin, "", re, cfg, colorize, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return exitCode(matched)
	}

	files, err := walk.Collect(cfg.Files, cfg.Recursive)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	prefix := cfg.ShouldPrefix()
	eng := engine.New(0)
	for _, path := range files {
		eng.AddTask(&searchTask{path: path, re: re, cfg: cfg, colorize: colorize, prefix: prefix})
	}

	results, err := eng.Run(context.Background())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	anyMatch := false
	for _, res := range results {
		if res.Matched {
			anyMatch = true
		}
		for _, line := range res.Output {
			fmt.Fprintln(stdout, line)
		}
	}
	return exitCode(anyMatch)
}

func exitCode(matched bool) int {
	if matched {
		return 0
	}
	return 1
}

// searchTask runs the compiled pattern against one file, implementing
// engine.Task so it can be scheduled on the worker pool.
type searchTask struct {
	path     string
	re       *matcher.Regex
	cfg      *cli.Config
	colorize bool
	prefix   bool
}

func (t *searchTask) Execute(ctx context.Context) (engine.Result, error) {
	f, err := ggio.ReadFile(t.path)
	if err != nil {
		return engine.Result{Path: t.path}, err
	}
	defer f.Close()

	label := ""
	if t.prefix {
		label = t.path
	}

	var out []string
	matched := false
	scanner := ggio.ReadLines(f)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return engine.Result{Path: t.path, Matched: matched, Output: out}, ctx.Err()
		default:
		}

		line := scanner.Text()
		matches := t.re.FindAll(line)
		if len(matches) == 0 {
			continue
		}
		matched = true
		out = append(out, formatLine(label, line, matches, t.cfg, t.colorize)...)
	}
	if err := scanner.Err(); err != nil {
		return engine.Result{Path: t.path, Matched: matched, Output: out}, err
	}
	return engine.Result{Path: t.path, Matched: matched, Output: out}, nil
}

func searchReader(f *os.File, label string, re *matcher.Regex, cfg *cli.Config, colorize bool, stdout *os.File) (bool, error) {
	matched := false
	scanner := ggio.ReadLines(f)
	for scanner.Scan() {
		line := scanner.Text()
		matches := re.FindAll(line)
		if len(matches) == 0 {
			continue
		}
		matched = true
		for _, out := range formatLine(label, line, matches, cfg, colorize) {
			fmt.Fprintln(stdout, out)
		}
	}
	return matched, scanner.Err()
}

func formatLine(label, line string, matches []matcher.Match, cfg *cli.Config, colorize bool) []string {
	if cfg.OnlyMatching {
		parts := render.OnlyMatching(line, matches)
		if !cfg.MultiLine && len(parts) > 1 {
			parts = parts[:1] // without -P, only the first match per line
		}
		out := make([]string, len(parts))
		for i, p := range parts {
			out[i] = render.Line(label, p, colorize)
		}
		return out
	}
	return []string{render.Line(label, render.Highlight(line, matches, colorize), colorize)}
}
