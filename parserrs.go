package floatexpr

import "strconv"

// FactorError is an error indicating a token that cannot begin a factor, such
// as a binary operator, a close parenthesis, or the end of the input. It
// implements InputError.
type FactorError struct {
	// Col is the position of the token. It is 0 for the end of the input.
	Col int
	// Kind is the kind of the token that was found.
	Kind TokenKind
	// Text is the token's text.
	Text string
}

func (err *FactorError) Error() string {
	return errpos(err.Col, "invalid factor token '"+err.Kind.String()+"'")
}

func (err *FactorError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a number token that is not valid decimal
// syntax, such as "1.2.3". It implements InputError and unwraps to the
// *strconv.NumError describing the conversion failure.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the number token.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open parenthesis without a matching
// close parenthesis. It implements InputError.
type BracketError struct {
	// Col is the position of the token found where the close parenthesis was
	// expected, or 0 for the end of the input.
	Col int
	// Open is the position of the unmatched open parenthesis.
	Open int
	// Found is the text of the token found instead. It is empty at the end of
	// the input.
	Found string
}

func (err *BracketError) Error() string {
	msg := "open bracket ( at " + strconv.Itoa(err.Open) + " with no close bracket"
	if err.Found != "" {
		msg += ", found " + strconv.Quote(err.Found)
	}
	return errpos(err.Col, msg)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating tokens after a complete expression.
// Parsing only reports it with the RequireEnd option. It implements
// InputError.
type TrailingError struct {
	// Col is the position of the first token after the expression.
	Col int
	// Text is the first token after the expression.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return "end: " + msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based byte column of
	// the token that caused it, or 0 if the error is at the end of the input.
	Pos() int
}

var (
	_ InputError = (*FactorError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*LexError)(nil)
)
