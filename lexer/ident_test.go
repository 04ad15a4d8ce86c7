package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainIdentifierPassthrough(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	input := "int underscore_name2;\n"
	assert.Equal(t, input, scanString(t, cfg, nil, input))
}

func TestWideCharLiteralPrefix(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	input := `wchar_t c = L'x';` + "\n"
	assert.Equal(t, input, scanString(t, cfg, nil, input))
}

func TestRawPrefixFollowedByCharQuoteIsNotTreatedAsRaw(t *testing.T) {
	// Followed by a single quote, prefix validity is irrelevant: the
	// prefix text is printed and the quote scanned as an ordinary
	// character constant.
	cfg := NewConfig(StdCPP17)
	input := `auto c = R'x';` + "\n"
	assert.Equal(t, input, scanString(t, cfg, nil, input))
}

func TestInvalidDQPrefixFallsBackToPlainString(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	input := `auto s = LU"x";` + "\n"
	assert.Equal(t, input, scanString(t, cfg, nil, input))
}

func TestIdentifierLongerThanPrefixCandidate(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	input := "int Uranium = 1;\n"
	assert.Equal(t, input, scanString(t, cfg, nil, input))
}

func TestInvalidUCNWarns(t *testing.T) {
	cfg := NewConfig(StdCPP17)
	sink := &recordingSink{}
	input := `int x = ` + "\\" + `u12;` + "\n"
	out := scanString(t, cfg, sink, input)
	assert.Equal(t, input, out)
	require.Len(t, sink.diags, 1)
	assert.Contains(t, sink.diags[0].Message, "Invalid UCN")
}
