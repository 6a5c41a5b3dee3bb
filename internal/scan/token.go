package scan

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenPunct
)

// Token is a single lexed unit. Only identifiers and the punctuation
// characters the scanner cares about ({ } ; . =) are ever produced;
// everything else is discarded by the lexer.
type Token struct {
	Type TokenType
	Text string
	Char byte
}

func (t Token) IsPunct(c byte) bool {
	return t.Type == TokenPunct && t.Char == c
}

func (t Token) IsKeyword(keyword string) bool {
	return t.Type == TokenIdent && t.Text == keyword
}
