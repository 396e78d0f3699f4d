package dotparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Tokenize([]byte(src))
	require.NoError(t, err)
	return tokens
}

func TestLexerPunctuation(t *testing.T) {
	tokens := collectTokens(t, "{ } [ ] = , ; :")
	expected := []TokenKind{
		TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket,
		TokenEquals, TokenComma, TokenSemicolon, TokenColon, TokenEOF,
	}
	require.Len(t, tokens, len(expected))
	for i, tok := range tokens {
		assert.Equal(t, expected[i], tok.Kind, "token %d", i)
	}
}

func TestLexerEdgeOperators(t *testing.T) {
	tokens := collectTokens(t, "->")
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenArrow, tokens[0].Kind)
	assert.Equal(t, "->", tokens[0].Literal)

	tokens = collectTokens(t, "--")
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenDashDash, tokens[0].Kind)
	assert.Equal(t, "--", tokens[0].Literal)
}

func TestLexerIdentifiers(t *testing.T) {
	cases := []string{"foo", "_bar", "Plan123", "A_b_C"}
	for _, id := range cases {
		tokens := collectTokens(t, id)
		require.Len(t, tokens, 2, "input: %s", id) // identifier + EOF
		assert.Equal(t, TokenIdentifier, tokens[0].Kind, "input: %s", id)
		assert.Equal(t, id, tokens[0].Literal, "input: %s", id)
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"strict", TokenStrict},
		{"digraph", TokenDigraph},
		{"graph", TokenGraph},
		{"node", TokenNode},
		{"edge", TokenEdge},
		{"subgraph", TokenSubgraph},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, tt.kind, tokens[0].Kind, "input: %s", tt.input)
	}
}

func TestLexerKeywordPrefixIsIdentifier(t *testing.T) {
	// Keyword recognition is exact and case sensitive.
	for _, id := range []string{"nodeX", "Strict", "digraphs", "GRAPH"} {
		tokens := collectTokens(t, id)
		require.Len(t, tokens, 2, "input: %s", id)
		assert.Equal(t, TokenIdentifier, tokens[0].Kind, "input: %s", id)
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"say \"hi\""`, `say "hi"`},
		{`"a\\b"`, `a\b`},
		{`"with spaces and -> punctuation"`, "with spaces and -> punctuation"},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, TokenString, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.literal, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexerUnknownEscapeDropsBackslash(t *testing.T) {
	// Only \" and \\ are escape sequences; for anything else the backslash
	// is dropped and the next character kept verbatim.
	tests := []struct {
		input   string
		literal string
	}{
		{`"a\nb"`, "anb"},
		{`"a\qb"`, "aqb"},
		{"\"a\\\nb\"", "a\nb"}, // escaped real newline keeps the newline
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, tt.literal, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := Tokenize([]byte(`"hello`))
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)

	_, err = Tokenize([]byte(`"trailing escape\`))
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
}

func TestLexerNumbers(t *testing.T) {
	tests := []string{"0", "42", "12345", "-42", "3.14", "-3.14", "0.5", ".5", "-.5", "1."}
	for _, input := range tests {
		tokens := collectTokens(t, input)
		require.Len(t, tokens, 2, "input: %s", input)
		assert.Equal(t, TokenNumber, tokens[0].Kind, "input: %s", input)
		assert.Equal(t, input, tokens[0].Literal, "input: %s", input)
	}
}

func TestLexerMalformedNumber(t *testing.T) {
	for _, input := range []string{".", "-."} {
		_, err := Tokenize([]byte(input))
		require.Error(t, err, "input: %s", input)
		assert.IsType(t, &LexError{}, err, "input: %s", input)
	}
}

func TestLexerNumberFollowedByAlpha(t *testing.T) {
	// "5mm" lexes as number "5" then identifier "mm".
	tokens := collectTokens(t, "5mm")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, "5", tokens[0].Literal)
	assert.Equal(t, TokenIdentifier, tokens[1].Kind)
	assert.Equal(t, "mm", tokens[1].Literal)
}

func TestLexerLineComments(t *testing.T) {
	tokens := collectTokens(t, "A // comment\nB")
	require.Len(t, tokens, 3) // A, B, EOF
	assert.Equal(t, "A", tokens[0].Literal)
	assert.Equal(t, "B", tokens[1].Literal)
}

func TestLexerBlockComments(t *testing.T) {
	tokens := collectTokens(t, "A /* block\ncomment */ B")
	require.Len(t, tokens, 3) // A, B, EOF
	assert.Equal(t, "A", tokens[0].Literal)
	assert.Equal(t, "B", tokens[1].Literal)
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	lex := NewLexer([]byte("A /* unterminated"))
	_, err := lex.Next() // gets A
	require.NoError(t, err)
	_, err = lex.Next() // should fail
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
}

func TestLexerPosition(t *testing.T) {
	tokens := collectTokens(t, "A\nB C")
	require.Len(t, tokens, 4) // A, B, C, EOF
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 2, tokens[1].Pos.Line)
	assert.Equal(t, 1, tokens[1].Pos.Column)
	assert.Equal(t, 2, tokens[2].Pos.Line)
	assert.Equal(t, 3, tokens[2].Pos.Column)
}

func TestLexerArrowVsNegativeNumber(t *testing.T) {
	tokens := collectTokens(t, "A->B")
	require.Len(t, tokens, 4) // A, ->, B, EOF
	assert.Equal(t, TokenIdentifier, tokens[0].Kind)
	assert.Equal(t, TokenArrow, tokens[1].Kind)
	assert.Equal(t, TokenIdentifier, tokens[2].Kind)

	tokens = collectTokens(t, "weight=-2")
	require.Len(t, tokens, 4) // weight, =, -2, EOF
	assert.Equal(t, TokenNumber, tokens[2].Kind)
	assert.Equal(t, "-2", tokens[2].Literal)
}

func TestLexerBareDashIsError(t *testing.T) {
	_, err := Tokenize([]byte("a - b"))
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
}

func TestLexerEmpty(t *testing.T) {
	tokens := collectTokens(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)
}

func TestLexerInvalidChar(t *testing.T) {
	_, err := Tokenize([]byte("@"))
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
}

func TestLexerFullStatement(t *testing.T) {
	tokens := collectTokens(t, `start:out:se [shape=Mdiamond, label="Start"]`)
	expected := []TokenKind{
		TokenIdentifier, TokenColon, TokenIdentifier, TokenColon, TokenIdentifier,
		TokenLBracket,
		TokenIdentifier, TokenEquals, TokenIdentifier, TokenComma,
		TokenIdentifier, TokenEquals, TokenString,
		TokenRBracket, TokenEOF,
	}
	require.Len(t, tokens, len(expected))
	for i, tok := range tokens {
		assert.Equal(t, expected[i], tok.Kind, "token %d: %s", i, tok.Literal)
	}
	assert.Equal(t, "start", tokens[0].Literal)
	assert.Equal(t, "out", tokens[2].Literal)
	assert.Equal(t, "se", tokens[4].Literal)
	assert.Equal(t, "Start", tokens[12].Literal)
}

func TestLexerPeek(t *testing.T) {
	lex := NewLexer([]byte("A B"))

	// Peek should not advance
	tok, err := lex.Peek()
	require.NoError(t, err)
	assert.Equal(t, "A", tok.Literal)

	// Peek again returns the same token
	tok2, err := lex.Peek()
	require.NoError(t, err)
	assert.Equal(t, tok, tok2)

	// Next consumes the peeked token
	tok3, err := lex.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", tok3.Literal)

	// Next should now return B
	tok4, err := lex.Next()
	require.NoError(t, err)
	assert.Equal(t, "B", tok4.Literal)
}
