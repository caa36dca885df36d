package floatexpr

// Binding is a value for a variable during evaluation.
type Binding struct {
	Name  string
	Value float64
}

// Bind is a shortcut to create a Binding.
func Bind(name string, value float64) Binding {
	return Binding{Name: name, Value: value}
}

// Eval evaluates the tree with the given variable bindings. Each variable
// takes the value of the first binding with its name, or 0 if there is none.
// Evaluation never fails: division by zero, logarithms of non-positive
// numbers, and other domain problems produce Inf or NaN.
//
// Eval does not modify n, so it is safe to call concurrently.
func (n *Node) Eval(vars ...Binding) float64 {
	switch n.kind {
	case NodeNum:
		return n.num
	case NodePi, NodeE:
		return constants[n.kind]
	case NodeVar:
		for _, v := range vars {
			if v.Name == n.name {
				return v.Value
			}
		}
		return 0
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodeMod, NodePow:
		l := n.left.Eval(vars...)
		r := n.right.Eval(vars...)
		return binaryfuncs[n.kind](l, r)
	case NodeLog, NodeSqrt, NodeSin, NodeCos, NodeTan, NodePlus, NodeNeg:
		return unaryfuncs[n.kind](n.left.Eval(vars...))
	default:
		panic("floatexpr: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and evaluate it with the given
// variable bindings.
func Eval(src string, vars ...Binding) (float64, error) {
	return EvalWith(src, nil, vars...)
}

// EvalWith is like Eval but applies parsing options.
func EvalWith(src string, opts []ParseOption, vars ...Binding) (float64, error) {
	n, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return n.Eval(vars...), nil
}
