package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zephyrtronium/shunt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errEval marks that at least one expression failed to evaluate.
var errEval = errors.New("evaluation failed")

// run is the whole program. It returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		inname, verb     string
		nl, timed, debug bool
	)
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", "%g", "result formatting string")
	fs.BoolVar(&nl, "n", false, "evaluate every input line instead of only the first")
	fs.BoolVar(&timed, "time", true, "print evaluation time in nanoseconds after each result")
	fs.BoolVar(&debug, "v", false, "log debug information")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	var srcs []string
	if inname != "" || fs.NArg() == 0 {
		in, closer, err := infile(inname, stdin)
		if err != nil {
			logger.Error("opening input", "file", inname, "err", err)
			return 1
		}
		lines, err := readLines(in, nl)
		closer()
		if err != nil {
			logger.Error("reading input", "err", err)
			return 1
		}
		srcs = append(srcs, lines...)
	}
	srcs = append(srcs, fs.Args()...)

	c := calc{out: stdout, verb: verb + "\n", timed: timed, log: logger}
	status := 0
	for _, src := range srcs {
		if err := c.eval(src); err != nil {
			if !errors.Is(err, errEval) {
				logger.Error("writing output", "err", err)
				return 1
			}
			logger.Debug("invalid expression", "err", err)
			status = 1
		}
	}
	return status
}

// calc evaluates expressions and writes their results.
type calc struct {
	out   io.Writer
	verb  string
	timed bool
	log   *slog.Logger
}

// eval evaluates one expression and prints its result or error. The returned
// error wraps errEval if the expression was invalid.
func (c *calc) eval(src string) error {
	toks := shunt.Fields(src)
	begin := time.Now()
	r, err := shunt.Evaluate(toks)
	elapsed := time.Since(begin)
	c.log.Debug("evaluated", "tokens", len(toks), "elapsed", elapsed, "err", err)
	if err != nil {
		if _, werr := fmt.Fprintln(c.out, err); werr != nil {
			return werr
		}
		return fmt.Errorf("%w: %q: %v", errEval, src, err)
	}
	if _, err := fmt.Fprintf(c.out, c.verb, r); err != nil {
		return err
	}
	if c.timed {
		if _, err := fmt.Fprintln(c.out, elapsed.Nanoseconds()); err != nil {
			return err
		}
	}
	return nil
}

// readLines reads the expressions in an input. Unless all is set, only the
// first line is used. Blank lines are skipped.
func readLines(in io.Reader, all bool) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if !all {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}
	return lines, nil
}

func infile(inname string, stdin io.Reader) (io.Reader, func(), error) {
	if inname == "" || inname == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
