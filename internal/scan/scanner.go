package scan

import (
	"strings"
)

// Tag is a single extracted symbol, handed to the sink in document order.
type Tag struct {
	Name string
	Kind Kind
	Line int
}

// Sink receives extracted tags. Kind filtering is the sink's concern; the
// scanner reports everything it recognizes.
type Sink interface {
	Emit(tag Tag)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(tag Tag)

func (f SinkFunc) Emit(tag Tag) {
	f(tag)
}

var keywordKinds = map[string]Kind{
	"package":  KindPackage,
	"message":  KindMessage,
	"enum":     KindEnum,
	"repeated": KindField,
	"optional": KindField,
	"required": KindField,
	"service":  KindService,
	"rpc":      KindRpc,
}

// Scanner extracts named symbols from a single protobuf definition source.
// It is a non-validating single pass: malformed input is never an error,
// the scanner just skips ahead to the next statement boundary.
type Scanner struct {
	lex  *Lexer
	r    *Reader
	sink Sink
	tok  Token
}

func NewScanner(r *Reader, sink Sink) *Scanner {
	return &Scanner{
		lex:  NewLexer(r),
		r:    r,
		sink: sink,
	}
}

// Scan runs a fresh scanner over src, reporting tags to sink.
func Scan(src []byte, sink Sink) {
	NewScanner(NewReader(src), sink).Run()
}

// Run consumes the whole input. Each loop iteration makes forward progress
// even when no keyword matches, so the scan always terminates.
func (s *Scanner) Run() {
	s.next()

	for s.tok.Type != TokenEOF {
		if kind, ok := keywordKinds[s.tok.Text]; ok && s.tok.Type == TokenIdent {
			s.parseStatement(kind)
		}

		s.skipUntil(";{}")
		s.next()
	}
}

func (s *Scanner) next() {
	s.tok = s.lex.Next()
}

func (s *Scanner) skipUntil(punctuation string) {
	for s.tok.Type != TokenEOF {
		if s.tok.Type == TokenPunct && strings.IndexByte(punctuation, s.tok.Char) >= 0 {
			return
		}
		s.next()
	}
}

func (s *Scanner) emit(name string, kind Kind) {
	s.sink.Emit(Tag{
		Name: name,
		Kind: kind,
		Line: s.r.Line(),
	})
}

// parseStatement consumes one declaration whose keyword implied kind. A
// missing name aborts the statement silently; the outer loop resynchronizes.
func (s *Scanner) parseStatement(kind Kind) {
	s.next()

	if kind == KindField {
		// skip the field's type, a possibly dotted path
		for {
			if s.tok.IsPunct('.') {
				s.next()
			}
			if s.tok.Type != TokenIdent {
				return
			}
			s.next()
			if !s.tok.IsPunct('.') {
				break
			}
		}
	}

	if s.tok.Type != TokenIdent {
		return
	}

	s.emit(s.tok.Text, kind)
	s.next()

	if kind == KindEnum {
		s.parseEnumConstants()
	}
}

// parseEnumConstants walks an enum body, recognizing constants by the
// "identifier followed by =" pattern. Values and trailing options are
// swallowed without inspection.
func (s *Scanner) parseEnumConstants() {
	if !s.tok.IsPunct('{') {
		return
	}
	s.next()

	for s.tok.Type != TokenEOF && !s.tok.IsPunct('}') {
		if s.tok.Type == TokenIdent && !s.tok.IsKeyword("option") {
			name := s.tok.Text
			s.next()
			if s.tok.IsPunct('=') {
				s.emit(name, KindEnumConstant)
			}
		}

		s.skipUntil(";}")

		if s.tok.IsPunct(';') {
			s.next()
		}
	}
}
