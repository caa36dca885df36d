package floatexpr

import "strconv"

// TokenKind classifies a lexical unit.
type TokenKind int8

const (
	// TokenNumber is a run of digits and dots.
	TokenNumber TokenKind = iota
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenLParen
	TokenRParen
	TokenCaret
	TokenMod
	TokenLog
	TokenSqrt
	TokenSin
	TokenCos
	TokenTan
	TokenPi
	TokenEuler
	// TokenVariable is an identifier that is not a keyword.
	TokenVariable
	// TokenEOF indicates the end of the input.
	TokenEOF
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Token is a classified fragment of the source text.
type Token struct {
	Kind TokenKind
	// Start is the byte offset of the token in the source. It is -1 for EOF.
	Start int
	// Len is the length of the token in bytes. It is -1 for EOF.
	Len int
}

func (t Token) String() string {
	return t.Kind.String() + "@" + strconv.Itoa(t.Start) + "+" + strconv.Itoa(t.Len)
}

// eofToken is the synthetic token at the end of every input.
var eofToken = Token{Kind: TokenEOF, Start: -1, Len: -1}

// Operators contains the characters which are single-character tokens.
const Operators = "+-*/%^()"

// opkinds maps each byte of Operators to its token kind.
var opkinds = [...]TokenKind{
	TokenPlus,
	TokenMinus,
	TokenMul,
	TokenDiv,
	TokenMod,
	TokenCaret,
	TokenLParen,
	TokenRParen,
}

// keywords maps each reserved identifier to its token kind. Keywords are
// case-sensitive.
var keywords = map[string]TokenKind{
	"log":  TokenLog,
	"pi":   TokenPi,
	"e":    TokenEuler,
	"sqrt": TokenSqrt,
	"sin":  TokenSin,
	"cos":  TokenCos,
	"tan":  TokenTan,
}
