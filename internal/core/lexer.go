package core

// Lexer scans a license expression left to right, classifying one token per
// call to Next. The offset only moves forward; a fresh scan needs a fresh
// Lexer.
type Lexer struct {
	src string
	off int
}

// NewLexer returns a lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token in the expression. ok is false once the input
// is exhausted.
func (l *Lexer) Next() (tok Token, ok bool) {
	if l.off >= len(l.src) {
		return Token{}, false
	}
	start := l.off
	kind, width := l.classify()
	if width <= 0 {
		// Every pattern below consumes at least one byte; a zero-width
		// match means the lexer itself is broken, not the input.
		panic("spdx: lexer failed to advance")
	}
	l.off += width
	return Token{Kind: kind, Text: l.src[start : start+width], Offset: start}, true
}

// classify matches the text at the current offset against the token patterns
// in fixed priority order and returns the first hit.
func (l *Lexer) classify() (TokenKind, int) {
	rest := l.src[l.off:]

	switch rest[0] {
	case '(':
		return OpenParen, 1
	case ')':
		return CloseParen, 1
	}
	if n := matchWordFold(rest, "or"); n > 0 {
		return Operator, n
	}
	if n := matchWordFold(rest, "and"); n > 0 {
		return Operator, n
	}
	if n := matchWord(rest, "NONE"); n > 0 {
		return SentinelIdentifier, n
	}
	if n := matchWord(rest, "NOASSERTION"); n > 0 {
		return SentinelIdentifier, n
	}
	if n := matchLicenseRef(rest); n > 0 {
		return LicenseRefIdentifier, n
	}
	if n := matchIdentRun(rest); n >= minIdentLen {
		return LicenseIdentifier, n
	}
	if n := matchSpaceRun(rest); n > 0 {
		return Whitespace, n
	}
	return Unrecognized, 1
}

// Identifier candidates shorter than this fall through to Unrecognized.
const minIdentLen = 3

func isIdentByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '+' || b == '.' || b == '_' || b == '-':
		return true
	}
	return false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// matchWord matches word at the start of s as a whole word: the match must
// not be followed by another identifier character.
func matchWord(s, word string) int {
	if len(s) < len(word) || s[:len(word)] != word {
		return 0
	}
	if len(s) > len(word) && isIdentByte(s[len(word)]) {
		return 0
	}
	return len(word)
}

// matchWordFold is matchWord with ASCII case folding. word must be lower case.
func matchWordFold(s, word string) int {
	if len(s) < len(word) {
		return 0
	}
	for i := 0; i < len(word); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return 0
		}
	}
	if len(s) > len(word) && isIdentByte(s[len(word)]) {
		return 0
	}
	return len(word)
}

// matchLicenseRef matches "LicenseRef-" followed by one or more digits.
func matchLicenseRef(s string) int {
	const prefix = "LicenseRef-"
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
		return 0
	}
	n := len(prefix)
	for n < len(s) && isDigitByte(s[n]) {
		n++
	}
	if n == len(prefix) {
		return 0
	}
	return n
}

// matchIdentRun matches a maximal run of identifier characters.
func matchIdentRun(s string) int {
	n := 0
	for n < len(s) && isIdentByte(s[n]) {
		n++
	}
	return n
}

// matchSpaceRun matches a maximal run of whitespace characters.
func matchSpaceRun(s string) int {
	n := 0
	for n < len(s) && isSpaceByte(s[n]) {
		n++
	}
	return n
}
