package scan

import (
	"strings"
)

// Lexer turns the character stream into tokens. It owns its cursor state;
// callers only ever see returned Token values.
type Lexer struct {
	r *Reader
}

func NewLexer(r *Reader) *Lexer {
	return &Lexer{r: r}
}

// Next advances past anything that is not an identifier or interesting
// punctuation and returns the next token.
func (l *Lexer) Next() Token {
	for {
		c := l.r.GetChar()

		if c <= 0 {
			return Token{Type: TokenEOF}
		}

		if c == '{' || c == '}' || c == ';' || c == '.' || c == '=' {
			return Token{Type: TokenPunct, Char: byte(c)}
		}

		if isIdentChar(c) {
			var sb strings.Builder
			for c > 0 && isIdentChar(c) {
				sb.WriteByte(byte(c))
				c = l.r.GetChar()
			}
			l.r.UngetChar(c)
			return Token{Type: TokenIdent, Text: sb.String()}
		}

		// anything else is not important for this scanner
	}
}

func isIdentChar(c int) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '_'
}
