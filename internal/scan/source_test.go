package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func readAll(r *Reader) string {
	res := ""
	for {
		c := r.GetChar()
		if c <= 0 {
			return res
		}
		res += string(rune(c))
	}
}

func TestReaderPlainText(t *testing.T) {
	r := NewReader([]byte("abc"))
	assert.Equal(t, "abc", readAll(r))
	assert.Equal(t, -1, r.GetChar())
}

func TestReaderLineComment(t *testing.T) {
	r := NewReader([]byte("a// comment\nb"))
	assert.Equal(t, "a b", readAll(r))
}

func TestReaderBlockComment(t *testing.T) {
	r := NewReader([]byte("a/* multi\nline */b"))
	assert.Equal(t, "a b", readAll(r))
}

func TestReaderBlockCommentDoesNotNest(t *testing.T) {
	r := NewReader([]byte("a/* /* */b"))
	assert.Equal(t, "a b", readAll(r))
}

func TestReaderUnterminatedComment(t *testing.T) {
	r := NewReader([]byte("a/* never closed"))
	assert.Equal(t, "a ", readAll(r))
}

func TestReaderDoubleQuotedString(t *testing.T) {
	r := NewReader([]byte(`a"message enum"b`))
	assert.Equal(t, "a b", readAll(r))
}

func TestReaderSingleQuotedString(t *testing.T) {
	r := NewReader([]byte("a'x'b"))
	assert.Equal(t, "a b", readAll(r))
}

func TestReaderStringEscapes(t *testing.T) {
	r := NewReader([]byte(`a"he said \"hi\""b`))
	assert.Equal(t, "a b", readAll(r))
}

func TestReaderUnterminatedString(t *testing.T) {
	r := NewReader([]byte(`a"never closed`))
	assert.Equal(t, "a ", readAll(r))
}

func TestReaderLoneSlash(t *testing.T) {
	r := NewReader([]byte("a/b"))
	assert.Equal(t, "a/b", readAll(r))
}

func TestReaderUngetChar(t *testing.T) {
	r := NewReader([]byte("ab"))
	c := r.GetChar()
	assert.Equal(t, int('a'), c)

	r.UngetChar(c)
	assert.Equal(t, int('a'), r.GetChar())
	assert.Equal(t, int('b'), r.GetChar())
}

func TestReaderLineTracking(t *testing.T) {
	r := NewReader([]byte("a\nb\nc"))

	assert.Equal(t, int('a'), r.GetChar())
	assert.Equal(t, 1, r.Line())

	r.GetChar() // newline
	assert.Equal(t, int('b'), r.GetChar())
	assert.Equal(t, 2, r.Line())

	// pushing back a newline rewinds the line count
	c := r.GetChar()
	assert.Equal(t, int('\n'), c)
	assert.Equal(t, 3, r.Line())
	r.UngetChar(c)
	assert.Equal(t, 2, r.Line())
	r.GetChar()
	assert.Equal(t, 3, r.Line())

	assert.Equal(t, int('c'), r.GetChar())
}

func TestReaderLineTrackingAcrossComments(t *testing.T) {
	r := NewReader([]byte("/* one\ntwo\n*/x"))
	assert.Equal(t, int(' '), r.GetChar())
	assert.Equal(t, int('x'), r.GetChar())
	assert.Equal(t, 3, r.Line())
}
