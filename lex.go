package floatexpr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer scans tokens from an expression on demand. The zero Lexer scans the
// empty expression, and its current token is EOF. A Lexer is not safe for
// concurrent use.
type Lexer struct {
	src string
	pos int
	tok Token
	// novars makes identifiers other than keywords an error instead of
	// variables.
	novars bool
}

// NewLexer creates a lexer over src. Until the first call to Next, the current
// token is EOF.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, tok: eofToken}
}

// DisallowVariables causes the lexer to report an error for identifiers which
// are not keywords, rather than scanning them as variables.
func (l *Lexer) DisallowVariables() {
	l.novars = true
}

// Token returns the current token.
func (l *Lexer) Token() Token {
	if l.tok.Len == 0 {
		// Only the zero Lexer has an empty token.
		return eofToken
	}
	return l.tok
}

// Pos returns the byte offset at which the next scan begins.
func (l *Lexer) Pos() int {
	return l.pos
}

// Text returns the source text of a token. The text of EOF is empty.
func (l *Lexer) Text(tok Token) string {
	if tok.Start < 0 {
		return ""
	}
	return l.src[tok.Start : tok.Start+tok.Len]
}

// Next scans the next token from the input and makes it the current token.
// Once the input is exhausted, the current token is EOF for every subsequent
// call. If the next lexeme is invalid, the result is a *LexError, the cursor
// moves past the lexeme, and the current token is unchanged.
func (l *Lexer) Next() error {
	for l.pos < len(l.src) && l.src[l.pos] == ' ' {
		l.pos++
	}
	if l.pos >= len(l.src) {
		l.tok = eofToken
		return nil
	}
	start := l.pos
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	switch {
	case unicode.IsLetter(r):
		return l.scanWord(start)
	case '0' <= r && r <= '9', r == '.':
		return l.scanNum(start)
	}
	l.pos += sz
	k := strings.IndexRune(Operators, r)
	if k < 0 {
		return l.error(start, "")
	}
	l.tok = Token{Kind: opkinds[k], Start: start, Len: sz}
	return nil
}

// scanWord scans a maximal run of letters as a keyword or variable.
func (l *Lexer) scanWord(start int) error {
	for l.pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		l.pos += sz
	}
	text := l.src[start:l.pos]
	kind, ok := keywords[text]
	if !ok {
		if l.novars {
			return l.error(start, "keyword")
		}
		kind = TokenVariable
	}
	l.tok = Token{Kind: kind, Start: start, Len: l.pos - start}
	return nil
}

// scanNum scans a maximal run of digits and dots. Whether the run is a valid
// number is left to the parser, except that it must contain a digit.
func (l *Lexer) scanNum(start int) error {
	dig := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' {
			l.pos++
			continue
		}
		if c < '0' || '9' < c {
			break
		}
		dig = true
		l.pos++
	}
	if !dig {
		return l.error(start, "number")
	}
	l.tok = Token{Kind: TokenNumber, Start: start, Len: l.pos - start}
	return nil
}

func (l *Lexer) error(start int, kind string) error {
	return &LexError{
		Text: l.src[start:l.pos],
		Kind: kind,
		Col:  start + 1,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the invalid lexeme: a single character, or an entire run of
	// letters or of digits and dots.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "keyword", or the empty string for a single character that is not an
	// operator.
	Kind string
	// Col is the 1-based byte column at which the lexeme starts.
	Col int
}

func (err *LexError) Error() string {
	switch err.Kind {
	case "":
		return errpos(err.Col, "unrecognized token '"+err.Text+"'")
	case "keyword":
		return errpos(err.Col, "unrecognized keyword '"+err.Text+"'")
	default:
		return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
	}
}

func (err *LexError) Pos() int {
	return err.Col
}
