package floatexpr

import (
	"errors"
	"strconv"
)

// Expr   = Term { ('+' | '-') Term }
// Term   = Factor { ('*' | '/' | '^' | '%') Factor }
// Factor = num | var | 'pi' | 'e'
//        | ('+' | '-') Factor
//        | ('log' | 'sqrt' | 'sin' | 'cos' | 'tan') Factor
//        | '(' Expr ')'

// Parse parses an expression into a tree that can be evaluated with any
// variable bindings. The given options are applied in order. The first
// invalid token aborts parsing; the result is then nil with an error
// implementing InputError.
func Parse(src string, opts ...ParseOption) (*Node, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := NewLexer(src)
	if p.novars {
		scan.DisallowVariables()
	}
	if err := scan.Next(); err != nil {
		return nil, err
	}
	n, err := parseexpr(scan)
	if err != nil {
		return nil, err
	}
	if p.end {
		if tok := scan.Token(); tok.Kind != TokenEOF {
			return nil, &TrailingError{Col: col(tok), Text: scan.Text(tok)}
		}
	}
	return n, nil
}

// parseexpr parses a sequence of terms joined by addition or subtraction. The
// scanner's current token must be the first token of the expression. On
// success, the current token is the first one that is not part of it.
func parseexpr(scan *Lexer) (*Node, error) {
	n, err := parseterm(scan)
	if err != nil {
		return nil, err
	}
	for {
		op := scan.Token().Kind
		if op != TokenPlus && op != TokenMinus {
			return n, nil
		}
		if err := scan.Next(); err != nil {
			return nil, err
		}
		rhs, err := parseterm(scan)
		if err != nil {
			return nil, err
		}
		n = &Node{kind: binops[op], left: n, right: rhs}
	}
}

// parseterm parses a sequence of factors joined by multiplication, division,
// exponentiation, or remainder. All four associate to the left.
func parseterm(scan *Lexer) (*Node, error) {
	n, err := parsefactor(scan)
	if err != nil {
		return nil, err
	}
	for {
		op := scan.Token().Kind
		switch op {
		case TokenMul, TokenDiv, TokenCaret, TokenMod:
		default:
			return n, nil
		}
		if err := scan.Next(); err != nil {
			return nil, err
		}
		rhs, err := parsefactor(scan)
		if err != nil {
			return nil, err
		}
		n = &Node{kind: binops[op], left: n, right: rhs}
	}
}

// parsefactor parses a single factor. Unary signs and functions apply to the
// factor that follows them, so they bind tighter than any binary operator.
func parsefactor(scan *Lexer) (*Node, error) {
	tok := scan.Token()
	switch tok.Kind {
	case TokenNumber:
		text := scan.Text(tok)
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// Out of range literals are ±Inf, which ParseFloat already
			// returns with ErrRange.
			return nil, &NumberError{Col: col(tok), Text: text, Err: err}
		}
		if err := scan.Next(); err != nil {
			return nil, err
		}
		return &Node{kind: NodeNum, num: v}, nil
	case TokenVariable:
		name := scan.Text(tok)
		if err := scan.Next(); err != nil {
			return nil, err
		}
		return &Node{kind: NodeVar, name: name}, nil
	case TokenPi, TokenEuler:
		if err := scan.Next(); err != nil {
			return nil, err
		}
		return &Node{kind: tokennodes[tok.Kind]}, nil
	case TokenPlus, TokenMinus, TokenLog, TokenSqrt, TokenSin, TokenCos, TokenTan:
		if err := scan.Next(); err != nil {
			return nil, err
		}
		x, err := parsefactor(scan)
		if err != nil {
			return nil, err
		}
		return &Node{kind: tokennodes[tok.Kind], left: x}, nil
	case TokenLParen:
		if err := scan.Next(); err != nil {
			return nil, err
		}
		n, err := parseexpr(scan)
		if err != nil {
			return nil, err
		}
		end := scan.Token()
		if end.Kind != TokenRParen {
			return nil, &BracketError{Col: col(end), Open: col(tok), Found: scan.Text(end)}
		}
		if err := scan.Next(); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, &FactorError{Col: col(tok), Kind: tok.Kind, Text: scan.Text(tok)}
	}
}

// col gets the 1-based column of a token, or 0 for EOF.
func col(tok Token) int {
	return tok.Start + 1
}
