package lexer

import (
	"fmt"
	"io"
)

// Mode is the top-level comment state.
type Mode int

const (
	ModeNonComment Mode = iota
	ModeCComment
	ModeCppComment
)

// Diagnostic is a single warning tagged with the file and line it came
// from.
type Diagnostic struct {
	File    string
	Line    int
	Message string
}

// DiagnosticSink receives warnings as a Scanner runs. It never aborts a
// scan; callers that want fatal-on-warning behavior implement that in
// their own Warn method.
type DiagnosticSink interface {
	Warn(Diagnostic)
}

// Scanner strips, or extracts, comments from a single byte stream at a
// time. A Scanner may be reused across files by calling Scan repeatedly;
// all per-file state is reset at the start of each call.
type Scanner struct {
	cfg  Config
	sink DiagnosticSink

	filename string
	src      *byteSource
	emit     *emitter

	lastWarnNestLine int
	lastWarnCEndLine int
}

// New returns a Scanner that warns through sink (which may be nil, in
// which case diagnostics are silently discarded).
func New(cfg Config, sink DiagnosticSink) *Scanner {
	return &Scanner{cfg: cfg, sink: sink}
}

// Scan transduces r onto w and reports any warnings against filename. It
// returns only I/O errors from the writer side; lexical problems are
// reported as warnings, never as an error return.
func (s *Scanner) Scan(r io.Reader, w io.Writer, filename string) error {
	s.filename = filename
	s.src = newByteSource(r)
	s.emit = newEmitter(w, s.cfg.EmitComments, s.cfg.KeepNewlines)
	s.lastWarnNestLine = 0
	s.lastWarnCEndLine = 0

	var oc byte
	mode := ModeNonComment
	for {
		c, ok := s.src.get()
		if !ok {
			break
		}
		switch mode {
		case ModeCComment:
			mode = s.cComment(c)
		case ModeCppComment:
			mode = s.cppComment(c, oc)
		default:
			mode = s.nonComment(c)
		}
		oc = c
	}
	// A // comment is always implicitly closed by EOF; only an unclosed
	// /* ... */ is a real anomaly worth reporting.
	if mode == ModeCComment {
		s.warn("unterminated C-style comment")
	}
	return s.emit.Flush()
}

func (s *Scanner) nonComment(c byte) Mode {
	if c == '*' && s.cfg.WarnNestedComments {
		if pc, ok := s.src.peek(); ok && pc == '/' {
			if s.lastWarnCEndLine != s.src.line {
				s.warn("C-style comment end marker not in a comment")
			}
			s.lastWarnCEndLine = s.src.line
		}
	}

	switch {
	case c == '\'':
		s.emit.PutCode(c)
		s.endQuote(c, "character constant")
		return ModeNonComment
	case c == '"':
		s.emit.PutCode(c)
		s.endQuote(c, "string literal")
		return ModeNonComment
	case c == '/':
		return s.slashTransition()
	case isDecDigit(c) || (c == '.' && s.peekIsDigit()):
		s.scanNumber(c)
		return ModeNonComment
	case isAlnum(c) || c == '_':
		s.scanIdentifier(c)
		return ModeNonComment
	case c == '\\':
		if pc, ok := s.src.peek(); ok && (pc == 'u' || pc == 'U') {
			nbytes := 4
			if pc == 'U' {
				nbytes = 8
			}
			s.scanUCN(pc, nbytes)
			return ModeNonComment
		}
		s.emit.PutCode(c)
		return ModeNonComment
	default:
		s.emit.PutCode(c)
		return ModeNonComment
	}
}

func (s *Scanner) slashTransition() Mode {
	bsnl := readBSNL(s.src)
	pc, ok := s.src.peek()
	switch {
	case ok && pc == '*':
		s.src.get()
		s.emit.PutComment('/')
		writeBSNL(bsnl, s.emit.PutComment)
		s.emit.PutComment('*')
		return ModeCComment
	case ok && pc == '/' && !s.cfg.Features.DoubleSlash:
		s.warnStdFeature("Double slash comment")
		s.src.get()
		s.emit.PutCode('/')
		writeBSNL(bsnl, s.emit.PutCode)
		s.emit.PutCode('/')
		return ModeNonComment
	case ok && pc == '/':
		s.src.get()
		s.emit.PutComment('/')
		writeBSNL(bsnl, s.emit.PutComment)
		s.emit.PutComment('/')
		return ModeCppComment
	default:
		s.emit.PutCode('/')
		writeBSNL(bsnl, s.emit.PutCode)
		return ModeNonComment
	}
}

func (s *Scanner) cComment(c byte) Mode {
	if c == '*' {
		bsnl := readBSNL(s.src)
		if pc, ok := s.src.peek(); ok && pc == '/' {
			s.src.get()
			s.emit.PutComment('*')
			writeBSNL(bsnl, s.emit.PutComment)
			s.emit.PutComment('/')
			s.emit.PutCode(' ')
			return ModeNonComment
		}
		s.emit.PutComment(c)
		writeBSNL(bsnl, s.emit.PutComment)
		return ModeCComment
	}
	if s.cfg.WarnNestedComments && c == '/' {
		if pc, ok := s.src.peek(); ok && pc == '*' {
			if s.lastWarnNestLine != s.src.line {
				s.warn("nested C-style comment")
			}
			s.lastWarnNestLine = s.src.line
		}
	}
	s.emit.PutComment(c)
	return ModeCComment
}

func (s *Scanner) cppComment(c, oc byte) Mode {
	if c == '\n' && oc != '\\' {
		s.emit.PutCode(c)
		return ModeNonComment
	}
	s.emit.PutComment(c)
	return ModeCppComment
}

func (s *Scanner) peekIsDigit() bool {
	pc, ok := s.src.peek()
	return ok && isDecDigit(pc)
}

func (s *Scanner) warn(msg string) {
	s.warnAt(s.src.line, "%s", msg)
}

func (s *Scanner) warnf(format string, args ...interface{}) {
	s.warnAt(s.src.line, format, args...)
}

func (s *Scanner) warnAt(line int, format string, args ...interface{}) {
	if s.sink == nil {
		return
	}
	s.sink.Warn(Diagnostic{File: s.filename, Line: line, Message: fmt.Sprintf(format, args...)})
}

func (s *Scanner) warnStdFeature(name string) {
	s.warnf("%s used but not supported in %s", name, s.cfg.Standard)
}

// putQuoteChar emits a single body byte of a quoted literal, applying
// the configured replacement character if one is set for that quote
// kind.
func (s *Scanner) putQuoteChar(q, c byte) {
	switch {
	case q == '\'' && s.cfg.QuoteReplacement != nil:
		s.emit.PutCode(*s.cfg.QuoteReplacement)
	case q == '"' && s.cfg.StringReplacement != nil:
		s.emit.PutCode(*s.cfg.StringReplacement)
	default:
		s.emit.PutCode(c)
	}
}

func isDecDigit(c byte) bool { return c >= '0' && c <= '9' }
func isOctDigit(c byte) bool { return c >= '0' && c <= '7' }
func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlnum(c byte) bool { return isAlpha(c) || isDecDigit(c) }
