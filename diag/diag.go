// Package diag implements the diagnostic sink scc's driver hands to the
// lexer: a place warnings go that knows how to format and where to send
// them, but has no opinion about lexical analysis itself.
package diag

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Diagnostic mirrors lexer.Diagnostic; it is redeclared here rather than
// imported so that this package has no dependency on lexer, only a
// structural one satisfied at the call site in scc.go.
type Diagnostic struct {
	File    string
	Line    int
	Message string
}

// Sink receives diagnostics as a scan runs.
type Sink interface {
	Warn(Diagnostic)
}

// lineFormatter renders log entries the way a traditional Unix filter
// reports trouble: "program: file:line: message", not logrus's default
// "level=warning msg=...". This keeps scc's warnings parseable by
// editors and build tools that expect a leading file:line.
type lineFormatter struct {
	program string
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	file, _ := e.Data["file"].(string)
	line, _ := e.Data["line"].(int)
	msg := fmt.Sprintf("%s: %s:%d: %s\n", f.program, file, line, e.Message)
	return []byte(msg), nil
}

type logrusSink struct {
	log *logrus.Logger
}

// NewSink returns a Sink that writes warnings to w, tagging them with
// program (ordinarily the invoked program's base name).
func NewSink(program string, w io.Writer) Sink {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&lineFormatter{program: program})
	l.SetLevel(logrus.WarnLevel)
	return &logrusSink{log: l}
}

func (s *logrusSink) Warn(d Diagnostic) {
	s.log.WithFields(logrus.Fields{"file": d.File, "line": d.Line}).Warn(d.Message)
}
