package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A test helper function that just aggregates tokens into a slice for easier
// assertions.
func getTokens(expr string) ([]token, error) {
	tokens := []token{}
	lex := newLexer(expr)
	for {
		tok, done, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func requireTok(t *testing.T, actual token, typ tokenType, value float64, line int, col int) {
	require.Equal(t, typ, actual.tokType, "token type")
	require.Equal(t, value, actual.value, "token value")
	require.Equal(t, line, actual.location.line, "token line")
	require.Equal(t, col, actual.location.col, "token col")
}

func TestLexerSingleNumber(t *testing.T) {
	tokens, err := getTokens("1")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeNumber, 1, 1, 1)
	requireTok(t, tokens[1], tokenTypeEOF, 0, 1, 2)
}

func TestLexerIntNumber(t *testing.T) {
	tokens, err := getTokens("1234567890")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeNumber, 1234567890, 1, 1)
}

func TestLexerFloatNumber(t *testing.T) {
	tokens, err := getTokens("1234567890.1234567890")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeNumber, 1234567890.123456789, 1, 1)
}

func TestLexerSimpleSum(t *testing.T) {
	tokens, err := getTokens("1+2")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	requireTok(t, tokens[0], tokenTypeNumber, 1, 1, 1)
	requireTok(t, tokens[1], tokenTypePlus, 0, 1, 2)
	requireTok(t, tokens[2], tokenTypeNumber, 2, 1, 3)
	requireTok(t, tokens[3], tokenTypeEOF, 0, 1, 4)
}

func TestLexerWhitespace(t *testing.T) {
	tokens, err := getTokens(" 10 + 20")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	requireTok(t, tokens[0], tokenTypeNumber, 10, 1, 2)
	requireTok(t, tokens[1], tokenTypePlus, 0, 1, 5)
	requireTok(t, tokens[2], tokenTypeNumber, 20, 1, 7)
}

func TestLexerAllOperators(t *testing.T) {
	tokens, err := getTokens("(1+2-3*4/5^6)")
	require.NoError(t, err)
	require.Len(t, tokens, 14)
	require.Equal(t, tokenTypeLParen, tokens[0].tokType)
	require.Equal(t, tokenTypePlus, tokens[2].tokType)
	require.Equal(t, tokenTypeMinus, tokens[4].tokType)
	require.Equal(t, tokenTypeAsterisk, tokens[6].tokType)
	require.Equal(t, tokenTypeSlash, tokens[8].tokType)
	require.Equal(t, tokenTypeCaret, tokens[10].tokType)
	require.Equal(t, tokenTypeRParen, tokens[12].tokType)
	require.Equal(t, tokenTypeEOF, tokens[13].tokType)
}

func TestLexerMultiLine(t *testing.T) {
	tokens, err := getTokens("1+\n2")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	requireTok(t, tokens[0], tokenTypeNumber, 1, 1, 1)
	requireTok(t, tokens[1], tokenTypePlus, 0, 1, 2)
	requireTok(t, tokens[2], tokenTypeNumber, 2, 2, 1)
}

func TestLexerDoneAfterEOF(t *testing.T) {
	lex := newLexer("7")

	tok, done, err := lex.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, tokenTypeNumber, tok.tokType)

	tok, done, err = lex.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, tokenTypeEOF, tok.tokType)

	_, done, err = lex.Next()
	require.NoError(t, err)
	require.True(t, done)

	_, done, err = lex.Next()
	require.NoError(t, err)
	require.True(t, done)
}

func TestLexerUnrecognizedCharacter(t *testing.T) {
	_, err := getTokens("1+$")
	require.Error(t, err)
	require.True(t, ErrUnableToParse.Is(err))
}

func TestLexerMultipleDecimals(t *testing.T) {
	_, err := getTokens("1.2.3")
	require.Error(t, err)
	require.True(t, ErrInvalidNumber.Is(err))
}

func TestLexerTrailingDecimal(t *testing.T) {
	tokens, err := getTokens("1.")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeNumber, 1, 1, 1)
}
