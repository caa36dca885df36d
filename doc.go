// Package floatexpr parses and evaluates arithmetic expressions in
// double-precision floating point.
//
// An expression is built from decimal numbers, the constants pi and e, free
// variables, the binary operators + - * / % ^, parentheses, and the unary
// functions log, sqrt, sin, cos, and tan. Multiplication, division,
// exponentiation, and remainder share one precedence level and associate to
// the left, so "2^3^2" is "(2^3)^2". Unary signs and functions bind tighter
// than any binary operator and apply to a single factor: "-2^2" is
// "(-2)^2", and "log sin 2" is "log(sin(2))".
//
// Parse an expression once to get a tree that can be evaluated any number of
// times, concurrently if needed, with different variable bindings. Math
// domain problems like division by zero or the square root of a negative
// number are not errors; they produce Inf or NaN as IEEE-754 arithmetic does.
// Unbound variables evaluate to zero.
//
package floatexpr
