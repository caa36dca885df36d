package floatexpr

import (
	"errors"
	"reflect"
	"regexp"
	"testing"
)

// tokenBad marks a position where the lexer returned an error.
const tokenBad TokenKind = -1

// lexAll scans src to EOF, recording errors as tokenBad tokens spanning the
// invalid lexeme.
func lexAll(t *testing.T, scan *Lexer, src string) []Token {
	t.Helper()
	var toks []Token
	// Every scan consumes at least one byte, so this bounds the loop.
	for i := 0; i <= len(src)+1; i++ {
		err := scan.Next()
		if err != nil {
			var le *LexError
			if !errors.As(err, &le) {
				t.Fatalf("scanning %q: error %#v is not *LexError", src, err)
			}
			toks = append(toks, Token{Kind: tokenBad, Start: le.Col - 1, Len: len(le.Text)})
			continue
		}
		tok := scan.Token()
		if tok.Kind == TokenEOF {
			if tok != eofToken {
				t.Errorf("scanning %q: bad EOF token %v", src, tok)
			}
			return toks
		}
		toks = append(toks, tok)
	}
	t.Fatalf("scanning %q: no EOF after %v", src, toks)
	return nil
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", "   ", nil},
		// numbers
		{"digit", "1", []Token{{TokenNumber, 0, 1}}},
		{"digits", "9876543210", []Token{{TokenNumber, 0, 10}}},
		{"spaced", "1 0", []Token{{TokenNumber, 0, 1}, {TokenNumber, 2, 1}}},
		{"decimal", "1.23", []Token{{TokenNumber, 0, 4}}},
		{"leadingdot", ".45", []Token{{TokenNumber, 0, 3}}},
		{"trailingdot", "1.", []Token{{TokenNumber, 0, 2}}},
		{"dots", "1.2.3", []Token{{TokenNumber, 0, 5}}},
		{"nosign", "-1", []Token{{TokenMinus, 0, 1}, {TokenNumber, 1, 1}}},
		{"noexp", "1e5", []Token{{TokenNumber, 0, 1}, {TokenEuler, 1, 1}, {TokenNumber, 2, 1}}},
		{"dot", ".", []Token{{tokenBad, 0, 1}}},
		{"dotdot", "..", []Token{{tokenBad, 0, 2}}},
		// keywords
		{"log", "log", []Token{{TokenLog, 0, 3}}},
		{"sqrt", "sqrt", []Token{{TokenSqrt, 0, 4}}},
		{"sin", "sin", []Token{{TokenSin, 0, 3}}},
		{"cos", "cos", []Token{{TokenCos, 0, 3}}},
		{"tan", "tan", []Token{{TokenTan, 0, 3}}},
		{"pi", "pi", []Token{{TokenPi, 0, 2}}},
		{"e", "e", []Token{{TokenEuler, 0, 1}}},
		{"lognum", "log3", []Token{{TokenLog, 0, 3}, {TokenNumber, 3, 1}}},
		{"numlog", "2log", []Token{{TokenNumber, 0, 1}, {TokenLog, 1, 3}}},
		// variables
		{"var", "x", []Token{{TokenVariable, 0, 1}}},
		{"longvar", "ex", []Token{{TokenVariable, 0, 2}}},
		{"case", "Pi", []Token{{TokenVariable, 0, 2}}},
		{"unicode", "π", []Token{{TokenVariable, 0, 2}}},
		{"keywordrun", "sinx", []Token{{TokenVariable, 0, 4}}},
		// operators
		{"ops", "+-*/%^()", []Token{
			{TokenPlus, 0, 1},
			{TokenMinus, 1, 1},
			{TokenMul, 2, 1},
			{TokenDiv, 3, 1},
			{TokenMod, 4, 1},
			{TokenCaret, 5, 1},
			{TokenLParen, 6, 1},
			{TokenRParen, 7, 1},
		}},
		{"sum", " 1 + 2 ", []Token{{TokenNumber, 1, 1}, {TokenPlus, 3, 1}, {TokenNumber, 5, 1}}},
		{"diff", " 1.23 - log3 ", []Token{{TokenNumber, 1, 4}, {TokenMinus, 6, 1}, {TokenLog, 8, 3}, {TokenNumber, 11, 1}}},
		{"call", "sqrt(e * pi) ", []Token{
			{TokenSqrt, 0, 4},
			{TokenLParen, 4, 1},
			{TokenEuler, 5, 1},
			{TokenMul, 7, 1},
			{TokenPi, 9, 2},
			{TokenRParen, 11, 1},
		}},
		{"sequence", "1.2 log * ", []Token{{TokenNumber, 0, 3}, {TokenLog, 4, 3}, {TokenMul, 8, 1}}},
		// erroneous symbols
		{"amp", "&", []Token{{tokenBad, 0, 1}}},
		{"tab", "\t1", []Token{{tokenBad, 0, 1}, {TokenNumber, 1, 1}}},
		{"newline", "1\n", []Token{{TokenNumber, 0, 1}, {tokenBad, 1, 1}}},
		{"badmid", "1 & 2", []Token{{TokenNumber, 0, 1}, {tokenBad, 2, 1}, {TokenNumber, 4, 1}}},
		{"baddouble", "$$", []Token{{tokenBad, 0, 1}, {tokenBad, 1, 1}}},
		{"badrune", "1€", []Token{{TokenNumber, 0, 1}, {tokenBad, 1, 3}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := lexAll(t, NewLexer(c.src), c.src)
			if !reflect.DeepEqual(got, c.tokens) {
				t.Errorf("scanning %q:\n\twant %v\n\tgot  %v", c.src, c.tokens, got)
			}
		})
	}
}

func TestLexDisallowVariables(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		{"var", "x", []Token{{tokenBad, 0, 1}}},
		{"word", "invalid", []Token{{tokenBad, 0, 7}}},
		{"keywords", "log pi e", []Token{{TokenLog, 0, 3}, {TokenPi, 4, 2}, {TokenEuler, 7, 1}}},
		{"mixed", "2 * y + 1", []Token{{TokenNumber, 0, 1}, {TokenMul, 2, 1}, {tokenBad, 4, 1}, {TokenPlus, 6, 1}, {TokenNumber, 8, 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := NewLexer(c.src)
			scan.DisallowVariables()
			got := lexAll(t, scan, c.src)
			if !reflect.DeepEqual(got, c.tokens) {
				t.Errorf("scanning %q:\n\twant %v\n\tgot  %v", c.src, c.tokens, got)
			}
		})
	}
}

func TestLexEOFIdempotent(t *testing.T) {
	scan := NewLexer(" 1 ")
	if tok := scan.Token(); tok != eofToken {
		t.Errorf("unprimed lexer has token %v", tok)
	}
	if err := scan.Next(); err != nil {
		t.Fatal(err)
	}
	if tok := scan.Token(); tok != (Token{TokenNumber, 1, 1}) {
		t.Fatalf("wrong first token %v", tok)
	}
	for i := 0; i < 3; i++ {
		if err := scan.Next(); err != nil {
			t.Fatalf("scan %d: %v", i, err)
		}
		if tok := scan.Token(); tok != eofToken {
			t.Errorf("scan %d: want EOF, got %v", i, tok)
		}
		if p := scan.Pos(); p != 3 {
			t.Errorf("scan %d: cursor moved to %d", i, p)
		}
	}
}

func TestLexZero(t *testing.T) {
	var scan Lexer
	if tok := scan.Token(); tok != eofToken {
		t.Errorf("zero lexer has token %v", tok)
	}
	if err := scan.Next(); err != nil {
		t.Fatal(err)
	}
	if tok := scan.Token(); tok != eofToken {
		t.Errorf("zero lexer scanned %v", tok)
	}
}

func TestLexText(t *testing.T) {
	scan := NewLexer("sqrt 1.25")
	var texts []string
	for {
		if err := scan.Next(); err != nil {
			t.Fatal(err)
		}
		tok := scan.Token()
		texts = append(texts, scan.Text(tok))
		if tok.Kind == TokenEOF {
			break
		}
	}
	want := []string{"sqrt", "1.25", ""}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("want %q, got %q", want, texts)
	}
}

func TestLexErrorText(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		strict bool
		kind   string
		re     string
	}{
		{"char", "&", false, "", `^1: unrecognized token '&'$`},
		{"dot", ".", false, "number", `^1: invalid number token "\."$`},
		{"keyword", "2 invalid", true, "keyword", `^3: unrecognized keyword 'invalid'$`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := NewLexer(c.src)
			if c.strict {
				scan.DisallowVariables()
			}
			var err error
			for i := 0; i <= len(c.src) && err == nil; i++ {
				err = scan.Next()
			}
			var le *LexError
			if !errors.As(err, &le) {
				t.Fatalf("scanning %q: want *LexError, got %#v", c.src, err)
			}
			if le.Kind != c.kind {
				t.Errorf("scanning %q: want kind %q, got %q", c.src, c.kind, le.Kind)
			}
			if !regexp.MustCompile(c.re).MatchString(err.Error()) {
				t.Errorf("scanning %q: error message %q does not match %s", c.src, err.Error(), c.re)
			}
		})
	}
}

func TestOperatorsHaveKinds(t *testing.T) {
	if len(Operators) != len(opkinds) {
		t.Fatalf("%d operators but %d kinds", len(Operators), len(opkinds))
	}
	for i := 0; i < len(Operators); i++ {
		scan := NewLexer(Operators[i : i+1])
		if err := scan.Next(); err != nil {
			t.Errorf("%c: %v", Operators[i], err)
			continue
		}
		if k := scan.Token().Kind; k != opkinds[i] {
			t.Errorf("%c lexed as %v, want %v", Operators[i], k, opkinds[i])
		}
	}
}
