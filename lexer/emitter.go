package lexer

import (
	"bufio"
	"io"
)

// emitter routes output bytes to one of two logical channels: code
// (non-comment text) and comment (comment text, including delimiters).
// Exactly one channel is "active" (selected by emitComments); newline
// bytes are additionally mirrored onto the inactive channel when
// keepNewlines is set, so that both channels stay line-count-compatible
// with the input regardless of which one is selected for a given run.
type emitter struct {
	w            *bufio.Writer
	emitComments bool
	keepNewlines bool
}

func newEmitter(w io.Writer, emitComments, keepNewlines bool) *emitter {
	return &emitter{w: bufio.NewWriter(w), emitComments: emitComments, keepNewlines: keepNewlines}
}

// PutCode emits a code-channel byte.
func (e *emitter) PutCode(c byte) {
	if !e.emitComments || (e.keepNewlines && c == '\n') {
		e.w.WriteByte(c)
	}
}

// PutComment emits a comment-channel byte.
func (e *emitter) PutComment(c byte) {
	if e.emitComments || (e.keepNewlines && c == '\n') {
		e.w.WriteByte(c)
	}
}

func (e *emitter) PutCodeString(s string) {
	for i := 0; i < len(s); i++ {
		e.PutCode(s[i])
	}
}

func (e *emitter) Flush() error {
	return e.w.Flush()
}
