// Package lexer implements the byte-oriented comment-stripping transducer
// at the core of scc: it reads a C or C++ source file and writes either
// the code with comments removed, or the comments alone, while correctly
// stepping over quoted literals, raw strings, and numeric literals so
// that comment-like or quote-like bytes inside them are not mistaken for
// real delimiters.
package lexer

import (
	"fmt"
	"strings"
)

// Standard identifies a C or C++ language revision. The zero value is C,
// which is not the tool's default (see NewConfig) but is a harmless zero
// value for a variable that is always explicitly set before use.
type Standard int

const (
	StdC Standard = iota
	StdC89
	StdC90
	StdC94
	StdC99
	StdC11
	StdCPP
	StdCPP98
	StdCPP03
	StdCPP11
	StdCPP14
	StdCPP17
)

var standardNames = map[Standard]string{
	StdC:     "C",
	StdC89:   "C89",
	StdC90:   "C90",
	StdC94:   "C94",
	StdC99:   "C99",
	StdC11:   "C11",
	StdCPP:   "C++",
	StdCPP98: "C++98",
	StdCPP03: "C++03",
	StdCPP11: "C++11",
	StdCPP14: "C++14",
	StdCPP17: "C++17",
}

func (s Standard) String() string {
	if name, ok := standardNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Standard(%d)", int(s))
}

var standardsByName = func() map[string]Standard {
	m := make(map[string]Standard, len(standardNames))
	for std, name := range standardNames {
		m[strings.ToUpper(name)] = std
	}
	return m
}()

// ParseStandard maps a -S argument (case-insensitively) to a Standard.
func ParseStandard(name string) (Standard, error) {
	std, ok := standardsByName[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("unrecognized standard name %q", name)
	}
	return std, nil
}

// Features is the set of optional lexical capabilities a Standard may or
// may not support. It is deliberately a plain struct of bools, not a
// bitmask or a sealed enum: callers are free to start from FeaturesFor
// and then flip individual fields.
type Features struct {
	DoubleSlash        bool // // comments
	RawString          bool // R"delim(...)delim"
	UnicodeLiteral     bool // u"x", U"x", u8"x", u'x', U'x'
	BinaryLiteral      bool // 0b0101
	HexFloat           bool // 0x2.34p-12
	NumPunct           bool // 0x1234'5678
	UniversalCharNames bool // \uXXXX, \UXXXXXXXX
}

// FeaturesFor resolves the feature set implied by a Standard, following
// the same case-group structure as the table in the Glossary.
func FeaturesFor(std Standard) Features {
	var f Features
	switch std {
	case StdC89, StdC90, StdC94:
		// no optional features
	case StdC, StdC11:
		f.UnicodeLiteral = true
		fallthrough
	case StdC99:
		f.HexFloat = true
		f.UniversalCharNames = true
		f.DoubleSlash = true
	case StdCPP17:
		f.HexFloat = true
		fallthrough
	case StdCPP14:
		f.BinaryLiteral = true
		f.NumPunct = true
		fallthrough
	case StdCPP, StdCPP11:
		f.RawString = true
		f.UnicodeLiteral = true
		fallthrough
	case StdCPP98, StdCPP03:
		f.UniversalCharNames = true
		f.DoubleSlash = true
	}
	return f
}

// Config controls a Scanner's output shape and feature warnings.
type Config struct {
	EmitComments       bool // -c: emit the comment channel instead of the code channel
	KeepNewlines       bool // -n: mirror newlines onto the inactive channel too
	WarnNestedComments bool // -w: warn about nested/stray comment markers

	// QuoteReplacement and StringReplacement, when non-nil, replace every
	// body byte of character constants and string literals respectively
	// (the delimiters themselves are passed through unchanged).
	QuoteReplacement  *byte
	StringReplacement *byte

	Standard Standard
	Features Features
}

// NewConfig returns a Config for std with Features resolved by
// FeaturesFor. The original tool's default standard is C11.
func NewConfig(std Standard) Config {
	return Config{Standard: std, Features: FeaturesFor(std)}
}
