package floatexpr

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/segmentio/fasthash/fnv1a"
)

// Node is a node in the abstract syntax tree of an expression. Nodes are
// immutable once built, and each node exclusively owns its children, so a
// tree may be evaluated concurrently.
type Node struct {
	kind NodeKind

	num  float64
	name string

	// left is the operand of unary nodes.
	left  *Node
	right *Node
}

// NodeKind identifies the variant of a Node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeNum // literal num
	NodePi  // math.Pi
	NodeE   // math.E
	NodeVar // lookup(name)

	NodeAdd // left + right
	NodeSub // left - right
	NodeMul // left * right
	NodeDiv // left / right
	NodeMod // remainder of left / right with the sign of left
	NodePow // left ^ right

	NodeLog  // natural log of left
	NodeSqrt // square root of left
	NodeSin  // sine of left in radians
	NodeCos  // cosine of left in radians
	NodeTan  // tangent of left in radians
	NodePlus // left
	NodeNeg  // -left
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=NodeKind -trimprefix=Node

// IsBinary reports whether nodes of kind k have two operands.
func (k NodeKind) IsBinary() bool {
	return NodeAdd <= k && k <= NodePow
}

// IsUnary reports whether nodes of kind k have one operand.
func (k NodeKind) IsUnary() bool {
	return NodeLog <= k && k <= NodeNeg
}

// NewNum creates a literal node.
func NewNum(v float64) *Node {
	return &Node{kind: NodeNum, num: v}
}

// NewVar creates a variable node. Panics if name is not a run of letters or
// is a keyword, since such a variable could not be written in an expression.
func NewVar(name string) *Node {
	if !isVarName(name) {
		panic("floatexpr: invalid variable name " + strconv.Quote(name))
	}
	return &Node{kind: NodeVar, name: name}
}

// isVarName reports whether name scans as a single variable token.
func isVarName(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := keywords[name]; ok {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// NewConst creates a constant node. Panics if k is not NodePi or NodeE.
func NewConst(k NodeKind) *Node {
	if k != NodePi && k != NodeE {
		panic("floatexpr: " + k.String() + " is not a constant")
	}
	return &Node{kind: k}
}

// NewUnary creates a unary operator or function node. Panics if k is not a
// unary kind or x is nil.
func NewUnary(k NodeKind, x *Node) *Node {
	if !k.IsUnary() {
		panic("floatexpr: " + k.String() + " is not unary")
	}
	if x == nil {
		panic("floatexpr: nil operand to " + k.String())
	}
	return &Node{kind: k, left: x}
}

// NewBinary creates a binary operator node. Panics if k is not a binary kind
// or either operand is nil.
func NewBinary(k NodeKind, l, r *Node) *Node {
	if !k.IsBinary() {
		panic("floatexpr: " + k.String() + " is not binary")
	}
	if l == nil || r == nil {
		panic("floatexpr: nil operand to " + k.String())
	}
	return &Node{kind: k, left: l, right: r}
}

// Kind returns the node's variant.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Value returns the value of a literal node, or 0 for other nodes.
func (n *Node) Value() float64 {
	return n.num
}

// Name returns the name of a variable node, or the empty string for other
// nodes.
func (n *Node) Name() string {
	return n.name
}

// Left returns the left operand of a binary node or the operand of a unary
// node. The result is nil for leaves.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right operand of a binary node, or nil for other nodes.
func (n *Node) Right() *Node {
	return n.right
}

// String formats the tree as text with every node parenthesized. Parsing the
// result gives a tree equal to n, provided every literal is finite and has a
// clear sign bit. Variable names always survive, since NewVar and Parse only
// create variables whose names scan as variables.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case NodeNum:
		switch {
		case math.IsNaN(n.num):
			b.WriteString("0/0")
		case math.IsInf(n.num, 1):
			b.WriteString("1/0")
		case math.IsInf(n.num, -1):
			b.WriteString("-1/0")
		default:
			b.WriteString(strconv.FormatFloat(n.num, 'f', -1, 64))
		}
	case NodePi:
		b.WriteString("pi")
	case NodeE:
		b.WriteString("e")
	case NodeVar:
		b.WriteString(n.name)
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodeMod, NodePow:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(opsyms[n.kind])
		b.WriteByte(' ')
		n.right.fmt(b)
	case NodeLog, NodeSqrt, NodeSin, NodeCos, NodeTan, NodePlus, NodeNeg:
		b.WriteString(opsyms[n.kind])
		n.left.fmt(b)
	default:
		// Invalid nodes use invalid characters.
		b.WriteString("$" + n.kind.String() + "$")
	}
}

// opsyms is the text of each operator and function.
var opsyms = map[NodeKind]string{
	NodeAdd:  "+",
	NodeSub:  "-",
	NodeMul:  "*",
	NodeDiv:  "/",
	NodeMod:  "%",
	NodePow:  "^",
	NodeLog:  "log",
	NodeSqrt: "sqrt",
	NodeSin:  "sin",
	NodeCos:  "cos",
	NodeTan:  "tan",
	NodePlus: "+",
	NodeNeg:  "-",
}

// Equal reports whether two trees have the same structure. Literals are equal
// if they have the same bits, so NaN literals can be equal.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.kind != m.kind {
		return false
	}
	switch n.kind {
	case NodeNum:
		return math.Float64bits(n.num) == math.Float64bits(m.num)
	case NodeVar:
		return n.name == m.name
	}
	return n.left.Equal(m.left) && n.right.Equal(m.right)
}

// Hash returns a structural hash of the tree. Equal trees have equal hashes.
func (n *Node) Hash() uint64 {
	return n.hash(fnv1a.Init64)
}

func (n *Node) hash(h uint64) uint64 {
	if n == nil {
		return fnv1a.AddUint64(h, uint64(NodeNone))
	}
	h = fnv1a.AddUint64(h, uint64(n.kind))
	switch n.kind {
	case NodeNum:
		return fnv1a.AddUint64(h, math.Float64bits(n.num))
	case NodeVar:
		return fnv1a.AddString64(h, n.name)
	}
	if n.left != nil {
		h = n.left.hash(h)
	}
	if n.right != nil {
		h = n.right.hash(h)
	}
	return h
}

// Vars returns the sorted names of the variables the tree uses.
func (n *Node) Vars() []string {
	seen := make(map[string]bool)
	n.vars(seen)
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

func (n *Node) vars(seen map[string]bool) {
	if n == nil {
		return
	}
	if n.kind == NodeVar {
		seen[n.name] = true
		return
	}
	n.left.vars(seen)
	n.right.vars(seen)
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
