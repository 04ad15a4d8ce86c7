package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawStringEmptyDelimiterPassthrough(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	input := `auto s = R"(hello)";` + "\n"
	assert.Equal(t, input, scanString(t, cfg, nil, input))
}

func TestRawStringUnsupportedWarns(t *testing.T) {
	cfg := NewConfig(StdCPP03)
	sink := &recordingSink{}
	input := `auto s = R"(x)";` + "\n"
	out := scanString(t, cfg, sink, input)
	assert.Equal(t, input, out)
	require.Len(t, sink.diags, 1)
	assert.Contains(t, sink.diags[0].Message, "Raw string used but not supported in C++03")
}

func TestRawStringFalseStartEmitsEveryByte(t *testing.T) {
	// The marker is "ab". The body contains a false start: ")ac" looks
	// like it might be starting the closer but mismatches on the second
	// marker byte. The original C scanner drops the mismatching byte
	// ('c') in this situation; this port must not.
	cfg := NewConfig(StdCPP17)
	input := `auto s = R"ab(foo)acd)ab";` + "\n"
	out := scanString(t, cfg, nil, input)
	assert.Equal(t, input, out)
}

func TestRawStringForbiddenDelimiterFallsBackToOrdinaryString(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	sink := &recordingSink{}
	input := `R" (x)";` + "\n"
	out := scanString(t, cfg, sink, input)
	assert.Equal(t, input, out)
	require.NotEmpty(t, sink.diags)
	assert.Contains(t, sink.diags[0].Message, "Invalid mark character")
}

func TestRawStringUnterminatedWarnsAtStartLine(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	sink := &recordingSink{}
	input := "auto s = R\"(abc\nmore text"
	scanString(t, cfg, sink, input)
	require.Len(t, sink.diags, 1)
	assert.Equal(t, 1, sink.diags[0].Line)
	assert.Contains(t, sink.diags[0].Message, "Unexpected EOF in raw string")
}
