// SPDX-License-Identifier: BSD-2-Clause

// Command scc strips C and C++ comments from its input, or (with -c)
// extracts the comments alone, while correctly stepping over quoted
// literals, raw strings, and numeric literals.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pborman/getopt"

	"github.com/jleffler/scc-snapshots/diag"
	"github.com/jleffler/scc-snapshots/lexer"
)

// sinkAdapter lets a diag.Sink satisfy lexer.DiagnosticSink: the two
// Diagnostic types are structurally identical but, being distinct named
// types in distinct packages, are not assignable to each other's method
// sets without this small bridge. Keeping diag free of any import of
// lexer (and vice versa) is deliberate: the diagnostic sink shouldn't
// need to know it is specifically a lexer's sink.
type sinkAdapter struct{ sink diag.Sink }

func (a sinkAdapter) Warn(d lexer.Diagnostic) {
	a.sink.Warn(diag.Diagnostic{File: d.File, Line: d.Line, Message: d.Message})
}

func main() {
	program := filepath.Base(os.Args[0])

	var (
		cflag  bool
		nflag  bool
		wflag  bool
		fflag  bool
		hflag  bool
		vflag  bool
		stdArg = "C11"
		sRep   string
		qRep   string
	)

	getopt.BoolVarLong(&cflag, "comments", 'c', "print comments and not the code")
	getopt.BoolVarLong(&fflag, "features", 'f', "print the resolved feature set and continue")
	getopt.BoolVarLong(&hflag, "help", 'h', "print this help and exit")
	getopt.BoolVarLong(&nflag, "keep-newlines", 'n', "keep newlines in comments")
	getopt.StringVarLong(&sRep, "string-replace", 's', "replace the body of string literals with REP", "REP")
	getopt.StringVarLong(&qRep, "char-replace", 'q', "replace the body of character literals with REP", "REP")
	getopt.BoolVarLong(&wflag, "warn-nested", 'w', "warn about nested C-style comments")
	getopt.StringVarLong(&stdArg, "standard", 'S', "language standard (C, C++, C89, C90, C94, C99, C11, C++98, C++03, C++11, C++14, C++17)", "STD")
	getopt.BoolVarLong(&vflag, "version", 'V', "print version information and exit")
	getopt.SetParameters("[file ...]")

	getopt.Parse()

	if hflag {
		getopt.CommandLine.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if vflag {
		printVersion(os.Stdout, program)
		os.Exit(0)
	}

	std, err := lexer.ParseStandard(stdArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", program, err)
		os.Exit(1)
	}

	cfg := lexer.NewConfig(std)
	cfg.EmitComments = cflag
	cfg.KeepNewlines = nflag
	cfg.WarnNestedComments = wflag
	if sRep != "" {
		b := sRep[0]
		cfg.StringReplacement = &b
	}
	if qRep != "" {
		b := qRep[0]
		cfg.QuoteReplacement = &b
	}

	if fflag {
		printFeatures(os.Stdout, cfg)
	}

	files, err := expandArgs(getopt.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", program, err)
		os.Exit(1)
	}

	sink := diag.NewSink(program, os.Stderr)
	scanner := lexer.New(cfg, sinkAdapter{sink})

	var runErr *multierror.Error
	for _, name := range files {
		runErr = runFile(scanner, name, runErr)
	}

	if runErr.ErrorOrNil() != nil {
		fmt.Fprintf(os.Stderr, "%s: %s", program, runErr)
		os.Exit(1)
	}
}

// runFile scans one named file (or standard input, for "-" or an empty
// name), appending any failure to accumulated. A file that cannot be
// opened does not stop the run; it is recorded and the next file is
// tried, matching the original filter() driver's "report and continue"
// discipline.
func runFile(scanner *lexer.Scanner, name string, accumulated *multierror.Error) *multierror.Error {
	var (
		r       io.Reader
		display = name
	)
	switch name {
	case "", "-":
		r = os.Stdin
		display = "(standard input)"
	default:
		f, err := os.Open(name)
		if err != nil {
			return multierror.Append(accumulated, fmt.Errorf("cannot open %s: %w", name, err))
		}
		defer f.Close()
		r = f
	}

	if err := scanner.Scan(r, os.Stdout, display); err != nil {
		return multierror.Append(accumulated, fmt.Errorf("%s: %w", display, err))
	}
	return accumulated
}

// expandArgs turns the positional arguments into a concrete, ordered
// file list: plain file names and "-" pass through unchanged, and any
// argument naming a directory is expanded (see walk.go) into its
// contained C/C++ source files, sorted. If no arguments are given at
// all, the result is a single-element slice holding "-" (standard
// input), matching the original tool's behavior.
func expandArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"-"}, nil
	}
	var files []string
	for _, arg := range args {
		if arg == "-" {
			files = append(files, arg)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			files = append(files, arg) // let the open error surface per-file
			continue
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := expandDirectory(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}
