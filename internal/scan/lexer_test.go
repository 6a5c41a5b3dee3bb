package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(input string) []Token {
	lex := NewLexer(NewReader([]byte(input)))
	var toks []Token
	for {
		tok := lex.Next()
		if tok.Type == TokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexerIdentifiers(t *testing.T) {
	toks := lexAll("message Foo_1")

	require.Len(t, toks, 2)
	assert.Equal(t, TokenIdent, toks[0].Type)
	assert.Equal(t, "message", toks[0].Text)
	assert.Equal(t, "Foo_1", toks[1].Text)
}

func TestLexerPunctuation(t *testing.T) {
	toks := lexAll("{ } ; . =")

	require.Len(t, toks, 5)
	for i, c := range []byte{'{', '}', ';', '.', '='} {
		assert.Equal(t, TokenPunct, toks[i].Type)
		assert.Equal(t, c, toks[i].Char)
	}
}

func TestLexerDiscardsIrrelevantCharacters(t *testing.T) {
	toks := lexAll("rpc GetFoo (Req) returns (Resp);")

	var texts []string
	for _, tok := range toks {
		if tok.Type == TokenIdent {
			texts = append(texts, tok.Text)
		}
	}
	assert.Equal(t, []string{"rpc", "GetFoo", "Req", "returns", "Resp"}, texts)

	// the parens are dropped entirely, only the semicolon survives
	require.Equal(t, TokenPunct, toks[len(toks)-1].Type)
	assert.Equal(t, byte(';'), toks[len(toks)-1].Char)
}

func TestLexerIdentifierTerminatedByPunct(t *testing.T) {
	toks := lexAll("foo.bar")

	require.Len(t, toks, 3)
	assert.Equal(t, "foo", toks[0].Text)
	assert.True(t, toks[1].IsPunct('.'))
	assert.Equal(t, "bar", toks[2].Text)
}

func TestLexerNumbersAreIdentifiers(t *testing.T) {
	toks := lexAll("x = 12")

	require.Len(t, toks, 3)
	assert.Equal(t, "x", toks[0].Text)
	assert.True(t, toks[1].IsPunct('='))
	assert.Equal(t, "12", toks[2].Text)
}

func TestLexerCommentsAndStringsInvisible(t *testing.T) {
	toks := lexAll(`foo/*hidden*/bar "quoted text" baz`)

	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"foo", "bar", "baz"}, texts)
}

func TestLexerEmptyInput(t *testing.T) {
	assert.Empty(t, lexAll(""))
	assert.Empty(t, lexAll("   \t\n  "))
	assert.Empty(t, lexAll("// only a comment"))
}

func TestTokenHelpers(t *testing.T) {
	tok := Token{Type: TokenIdent, Text: "option"}
	assert.True(t, tok.IsKeyword("option"))
	assert.False(t, tok.IsKeyword("package"))
	assert.False(t, tok.IsPunct('{'))

	tok = Token{Type: TokenPunct, Char: '{'}
	assert.True(t, tok.IsPunct('{'))
	assert.False(t, tok.IsKeyword("option"))
}
