package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	diags []Diagnostic
}

func (r *recordingSink) Warn(d Diagnostic) { r.diags = append(r.diags, d) }

func scanString(t *testing.T, cfg Config, sink DiagnosticSink, input string) string {
	t.Helper()
	var out strings.Builder
	sc := New(cfg, sink)
	require.NoError(t, sc.Scan(strings.NewReader(input), &out, "test.cc"))
	return out.String()
}

func TestIdentityOnCommentFreeInput(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	input := "int main(void) { return 0; }\n"
	assert.Equal(t, input, scanString(t, cfg, nil, input))
}

func TestStripsBlockComment(t *testing.T) {
	cfg := NewConfig(StdC11)
	out := scanString(t, cfg, nil, "int x; /* comment */ int y;\n")
	assert.Equal(t, "int x;   int y;\n", out)
}

func TestStripsLineComment(t *testing.T) {
	cfg := NewConfig(StdCPP11)
	out := scanString(t, cfg, nil, "int x; // trailing\nint y;\n")
	assert.Equal(t, "int x; \nint y;\n", out)
}

func TestEmitCommentsChannel(t *testing.T) {
	cfg := NewConfig(StdC11)
	cfg.EmitComments = true
	out := scanString(t, cfg, nil, "int x; /* hi */ int y;\n")
	assert.Equal(t, "/* hi */", out)
}

func TestKeepNewlinesMirrorsLineCount(t *testing.T) {
	cfg := NewConfig(StdC11)
	cfg.EmitComments = true
	cfg.KeepNewlines = true
	input := "a\n/* one\ntwo */\nb\n"
	out := scanString(t, cfg, nil, input)
	assert.Equal(t, strings.Count(input, "\n"), strings.Count(out, "\n"))
}

func TestStringLiteralHidesCommentMarkers(t *testing.T) {
	cfg := NewConfig(StdC11)
	out := scanString(t, cfg, nil, `char *s = "/* not a comment */";` + "\n")
	assert.Equal(t, `char *s = "/* not a comment */";`+"\n", out)
}

func TestCharLiteralWithEscapedQuote(t *testing.T) {
	cfg := NewConfig(StdC11)
	out := scanString(t, cfg, nil, `char c = '\'';` + "\n")
	assert.Equal(t, `char c = '\'';`+"\n", out)
}

func TestBackslashNewlineInsideCommentOpener(t *testing.T) {
	cfg := NewConfig(StdC11)
	cfg.KeepNewlines = true
	input := "/\\\n* comment *\\\n/\n"
	out := scanString(t, cfg, nil, input)
	assert.Equal(t, "\n\n \n", out)
}

func TestCppCommentImplicitlyClosedAtEOF(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	sink := &recordingSink{}
	out := scanString(t, cfg, sink, "// trailing comment with no newline")
	assert.Equal(t, "", out)
	for _, d := range sink.diags {
		assert.NotContains(t, d.Message, "unterminated")
	}
}

func TestUnterminatedCCommentWarns(t *testing.T) {
	cfg := NewConfig(StdC11)
	sink := &recordingSink{}
	scanString(t, cfg, sink, "int x; /* never closed")
	require.Len(t, sink.diags, 1)
	assert.Contains(t, sink.diags[0].Message, "unterminated C-style comment")
}

func TestDoubleSlashWarnsWhenUnsupported(t *testing.T) {
	cfg := NewConfig(StdC89)
	sink := &recordingSink{}
	scanString(t, cfg, sink, "int x; // comment\n")
	require.Len(t, sink.diags, 1)
	assert.Contains(t, sink.diags[0].Message, "Double slash comment used but not supported in C89")
}

func TestStrayCommentEndWarnsOnce(t *testing.T) {
	cfg := NewConfig(StdC11)
	cfg.WarnNestedComments = true
	sink := &recordingSink{}
	scanString(t, cfg, sink, "x = a */ b */ c;\n")
	require.Len(t, sink.diags, 1)
	assert.Contains(t, sink.diags[0].Message, "C-style comment end marker not in a comment")
}

func TestNestedCommentWarnsOnce(t *testing.T) {
	cfg := NewConfig(StdC11)
	cfg.WarnNestedComments = true
	sink := &recordingSink{}
	scanString(t, cfg, sink, "/* outer /* inner /* again */\n")
	require.Len(t, sink.diags, 1)
	assert.Contains(t, sink.diags[0].Message, "nested C-style comment")
}

func TestStringReplacement(t *testing.T) {
	cfg := NewConfig(StdC11)
	rep := byte('X')
	cfg.StringReplacement = &rep
	out := scanString(t, cfg, nil, `puts("hello, world");`+"\n")
	assert.Equal(t, `puts("XXXXXXXXXXXX");`+"\n", out)
}

func TestCharReplacement(t *testing.T) {
	cfg := NewConfig(StdC11)
	rep := byte('Q')
	cfg.QuoteReplacement = &rep
	out := scanString(t, cfg, nil, `char c = 'a';`+"\n")
	assert.Equal(t, `char c = 'Q';`+"\n", out)
}

func TestUCNPassesThroughAndWarnsWhenUnsupported(t *testing.T) {
	cfg := NewConfig(StdC89)
	sink := &recordingSink{}
	input := `int ` + "\\" + `u00e9 = 1;` + "\n"
	out := scanString(t, cfg, sink, input)
	assert.Equal(t, input, out)
	require.Len(t, sink.diags, 1)
	assert.Contains(t, sink.diags[0].Message, "Universal character names used but not supported in C89")
}

func TestUnicodeStringPrefix(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	out := scanString(t, cfg, nil, `auto s = u8"hi";`+"\n")
	assert.Equal(t, `auto s = u8"hi";`+"\n", out)
}

func TestIdempotence(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	input := "int x; /* one */\n// two\nint y = \"a /* b */ c\";\n"
	once := scanString(t, cfg, nil, input)
	twice := scanString(t, cfg, nil, once)
	assert.Equal(t, once, twice)
}
