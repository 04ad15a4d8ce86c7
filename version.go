// SPDX-License-Identifier: BSD-2-Clause
package main

import (
	"fmt"
	"io"

	"github.com/jleffler/scc-snapshots/lexer"
)

const version = "7.0"

// printVersion writes the one-line version banner for -V:
// "program: version N".
func printVersion(w io.Writer, program string) {
	fmt.Fprintf(w, "%s: version %s\n", program, version)
}

// printFeatures writes the resolved standard and feature set for -f, in
// the same order the original tool's print_features did.
func printFeatures(w io.Writer, cfg lexer.Config) {
	fmt.Fprintf(w, "Standard: %s\n", cfg.Standard)
	if cfg.Features.DoubleSlash {
		fmt.Fprintln(w, "Feature:  // comments")
	}
	if cfg.Features.RawString {
		fmt.Fprintln(w, "Feature:  Raw strings")
	}
	if cfg.Features.UnicodeLiteral {
		fmt.Fprintln(w, `Feature:  Unicode strings (u"A", U"A", u8"A")`)
	}
	if cfg.Features.BinaryLiteral {
		fmt.Fprintln(w, "Feature:  Binary constants 0b0101")
	}
	if cfg.Features.HexFloat {
		fmt.Fprintln(w, "Feature:  Hexadecimal floats 0x2.34P-12")
	}
	if cfg.Features.NumPunct {
		fmt.Fprintln(w, "Feature:  Numeric punctuation 0x1234'5678")
	}
	if cfg.Features.UniversalCharNames {
		fmt.Fprintln(w, `Feature:  Universal character names \uXXXX and \Uxxxxxxxx`)
	}
}
