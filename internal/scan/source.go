package scan

// Reader feeds characters of a protobuf definition file to the lexer with
// comment bodies and quoted-string contents already elided, so no token can
// ever span either. Both C and C++ style comments are recognized; an elided
// comment or string literal is replaced by a single space so that it still
// terminates an adjacent identifier.
type Reader struct {
	src         []byte
	pos         int
	line        int
	pushback    int
	hasPushback bool
}

func NewReader(src []byte) *Reader {
	return &Reader{
		src:  src,
		line: 1,
	}
}

// Line is the 1-based line number of the most recently read character.
func (r *Reader) Line() int {
	return r.line
}

// GetChar returns the next character code, or -1 at end of input.
func (r *Reader) GetChar() int {
	if r.hasPushback {
		r.hasPushback = false
		if r.pushback == '\n' {
			r.line++
		}
		return r.pushback
	}

	c := r.raw()

	switch {
	case c == '/' && r.peek() == '/':
		for c > 0 && c != '\n' {
			c = r.raw()
		}
		return ' '

	case c == '/' && r.peek() == '*':
		r.raw()
		for {
			c = r.raw()
			if c <= 0 {
				break
			}
			if c == '*' && r.peek() == '/' {
				r.raw()
				break
			}
		}
		return ' '

	case c == '"' || c == '\'':
		quote := c
		for {
			c = r.raw()
			if c <= 0 || c == quote {
				break
			}
			if c == '\\' {
				r.raw()
			}
		}
		return ' '
	}

	return c
}

// UngetChar pushes back exactly one character; the next GetChar returns it.
func (r *Reader) UngetChar(c int) {
	r.pushback = c
	r.hasPushback = true
	if c == '\n' {
		r.line--
	}
}

func (r *Reader) raw() int {
	if r.pos >= len(r.src) {
		return -1
	}
	c := r.src[r.pos]
	r.pos++
	if c == '\n' {
		r.line++
	}
	return int(c)
}

func (r *Reader) peek() int {
	if r.pos >= len(r.src) {
		return -1
	}
	return int(r.src[r.pos])
}
