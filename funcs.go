package floatexpr

import "math"

// unaryfuncs holds the function applied by each unary node kind.
var unaryfuncs = [...]func(float64) float64{
	NodeLog:  math.Log,
	NodeSqrt: math.Sqrt,
	NodeSin:  math.Sin,
	NodeCos:  math.Cos,
	NodeTan:  math.Tan,
	NodePlus: func(x float64) float64 { return x },
	NodeNeg:  func(x float64) float64 { return -x },
}

// binaryfuncs holds the operation applied by each binary node kind.
var binaryfuncs = [...]func(x, y float64) float64{
	NodeAdd: func(x, y float64) float64 { return x + y },
	NodeSub: func(x, y float64) float64 { return x - y },
	NodeMul: func(x, y float64) float64 { return x * y },
	NodeDiv: func(x, y float64) float64 { return x / y },
	NodeMod: math.Mod,
	NodePow: math.Pow,
}

// constants holds the value of each constant node kind.
var constants = [...]float64{
	NodePi: math.Pi,
	NodeE:  math.E,
}

// tokennodes maps the token starting each unary or constant factor to the
// node kind it produces.
var tokennodes = map[TokenKind]NodeKind{
	TokenPlus:  NodePlus,
	TokenMinus: NodeNeg,
	TokenLog:   NodeLog,
	TokenSqrt:  NodeSqrt,
	TokenSin:   NodeSin,
	TokenCos:   NodeCos,
	TokenTan:   NodeTan,
	TokenPi:    NodePi,
	TokenEuler: NodeE,
}

// binops maps each binary operator token to the node kind it produces.
var binops = map[TokenKind]NodeKind{
	TokenPlus:  NodeAdd,
	TokenMinus: NodeSub,
	TokenMul:   NodeMul,
	TokenDiv:   NodeDiv,
	TokenMod:   NodeMod,
	TokenCaret: NodePow,
}
