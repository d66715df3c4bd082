// Command lam is the lambda-calculus interpreter CLI.
//
//	lam run <file>       reduce each non-blank line of a source file
//	lam calc <a> <op> <b>  Church-numeral arithmetic (+, *, monus -)
//	lam repl             interactive prompt
//	lam version          print the version
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lam "github.com/lam-lang/lam"
)

const (
	appName     = "lam"
	historyFile = ".lam_history"
	prompt      = "==> "
)

var banner = fmt.Sprintf("lam %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", lam.Version)

const helpText = `
REPL commands:
  :quit        Exit the REPL
  :trace       Toggle printing every contraction
  :limit <n>   Set the reduction step bound
`

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "calc":
		os.Exit(cmdCalc(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(lam.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`lam %s (built %s)

Usage:
  %s run <file> [-limit n] [-k]    Reduce each non-blank line of a file.
  %s calc <int> <op> <int>         Church arithmetic; op is +, * or - (monus).
  %s repl                          Start the REPL.
  %s version                       Print the version.

run flags:
  -limit n   Step bound per expression (default %d).
  -k         Keep going past failing lines; exit nonzero if any failed.

`, lam.Version, lam.BuildDate, appName, appName, appName, appName, lam.MaxSteps)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

type runOpts struct {
	limit     int
	keepGoing bool
}

func cmdRun(args []string) int {
	opts := runOpts{limit: lam.MaxSteps}
	var file string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-limit", "--limit":
			i++
			if i >= len(args) {
				fmt.Fprintf(os.Stderr, "%s run: -limit needs a value\n", appName)
				return 2
			}
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				fmt.Fprintf(os.Stderr, "%s run: bad -limit %q\n", appName, args[i])
				return 2
			}
			opts.limit = n
		case "-k", "--keep-going":
			opts.keepGoing = true
		default:
			if file != "" {
				fmt.Fprintf(os.Stderr, "usage: %s run <file> [-limit n] [-k]\n", appName)
				return 2
			}
			file = a
		}
	}
	if file == "" {
		fmt.Fprintf(os.Stderr, "usage: %s run <file> [-limit n] [-k]\n", appName)
		return 2
	}

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}
	return runLines(filepath.Base(file), string(src), opts, os.Stdout, os.Stderr)
}

// runLines processes each non-blank line of src independently: parse, reduce,
// print. Successes go to stdout in input order, one line per expression;
// diagnostics go to stderr. The exit code is zero only if every expression
// succeeded. Without keepGoing the run stops at the first failure; with it,
// later lines are still processed.
func runLines(name, src string, opts runOpts, stdout, stderr io.Writer) int {
	reducer := lam.Reducer{Limit: opts.limit}
	failed := false
	for _, line := range strings.Split(src, "\n") {
		term, err := lam.Parse(line)
		if err == nil && term == nil {
			continue // blank line: no output, no error
		}
		if err == nil {
			var nf lam.Term
			nf, err = reducer.Reduce(term)
			if err == nil {
				fmt.Fprintln(stdout, nf)
				continue
			}
		}
		fmt.Fprintln(stderr, lam.WrapErrorWithName(err, name, line))
		if !opts.keepGoing {
			return 1
		}
		failed = true
	}
	if failed {
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// calc
// -----------------------------------------------------------------------------

func cmdCalc(args []string) int {
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s calc <int> <op> <int>\n", appName)
		return 2
	}
	a, errA := strconv.Atoi(args[0])
	b, errB := strconv.Atoi(args[2])
	if errA != nil || errB != nil {
		fmt.Fprintf(os.Stderr, "%s calc: operands must be integers\n", appName)
		return 2
	}
	term, err := lam.Arith(a, args[1], b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s calc: %v\n", appName, err)
		return 2
	}
	nf, err := lam.Reduce(term)
	if err != nil {
		fmt.Fprintln(os.Stderr, lam.WrapErrorWithName(err, "", term.String()))
		return 1
	}
	fmt.Println(nf)
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	limit := lam.MaxSteps
	trace := false

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			fields := strings.Fields(code)
			switch strings.ToLower(fields[0]) {
			case ":quit":
				return 0
			case ":trace":
				trace = !trace
				fmt.Printf("trace %v\n", trace)
			case ":limit":
				if len(fields) == 2 {
					if n, convErr := strconv.Atoi(fields[1]); convErr == nil && n > 0 {
						limit = n
						fmt.Printf("limit %d\n", limit)
						continue
					}
				}
				fmt.Printf("usage: :limit <positive int>\n")
			default:
				fmt.Print(helpText)
			}
			continue
		}

		reducer := lam.Reducer{Limit: limit}
		if trace {
			reducer.Trace = func(step int, t lam.Term) {
				fmt.Printf("%4d  %s\n", step, t)
			}
		}

		term, perr := lam.Parse(line)
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(lam.WrapErrorWithSource(perr, line).Error()))
			continue
		}
		if term == nil {
			continue
		}
		nf, rerr := reducer.Reduce(term)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, red(lam.WrapErrorWithSource(rerr, line).Error()))
			continue
		}
		fmt.Println(blue(nf.String()))
		ln.AppendHistory(line)
	}
}
