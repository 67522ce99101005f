package eval

import (
	"fmt"

	"github.com/expr-lang/expr/ast"
)

// The checker is a second pass over the parsed tree, independent of
// compilation: every node's type and operator must be in the allow-sets
// below or the expression is rejected. A grammar addition therefore has to
// be allow-listed here AND survive compilation, or it fails closed.

var allowedUnaryOps = map[string]bool{
	"-": true, "+": true, "not": true, "!": true,
}

var allowedBinaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"**": true, "^": true,
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"and": true, "&&": true, "or": true, "||": true,
}

// checker walks the AST recording the first disallowed element it sees.
type checker struct {
	err error
}

func (c *checker) Visit(node *ast.Node) {
	if c.err != nil {
		return
	}
	switch n := (*node).(type) {
	case *ast.NilNode, *ast.IdentifierNode, *ast.IntegerNode,
		*ast.FloatNode, *ast.BoolNode, *ast.StringNode, *ast.ArrayNode:
		// literals, identifiers and list literals
	case *ast.UnaryNode:
		if !allowedUnaryOps[n.Operator] {
			c.err = fmt.Errorf("disallowed unary operator %q", n.Operator)
		}
	case *ast.BinaryNode:
		if !allowedBinaryOps[n.Operator] {
			c.err = fmt.Errorf("disallowed operator %q", n.Operator)
		}
	default:
		// Member access, calls, builtins, closures, maps, slices,
		// ranges, conditionals — anything not allow-listed above.
		c.err = fmt.Errorf("disallowed expression element %T", *node)
	}
}

// check verifies every node in the tree is allow-listed. Any unrecognized
// node anywhere in the tree, nested included, fails closed.
func check(node *ast.Node) error {
	c := &checker{}
	ast.Walk(node, c)
	return c.err
}
