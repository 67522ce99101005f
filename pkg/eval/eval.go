package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/parser"

	"github.com/ormasoftchile/ikp/pkg/value"
)

// ExpressionError reports a parse failure, a disallowed construct, or a
// runtime fault in Evaluate. Direct callers receive it; the action
// interpreter catches it and degrades the condition to false.
type ExpressionError struct {
	Expr string
	Msg  string
	Err  error
}

func (e *ExpressionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("expression %q: %s: %v", e.Expr, e.Msg, e.Err)
	}
	return fmt.Sprintf("expression %q: %s", e.Expr, e.Msg)
}

func (e *ExpressionError) Unwrap() error { return e.Err }

// Evaluate runs a restricted arithmetic/boolean/comparison expression
// against a variable snapshot and returns its typed result.
//
// The source is interpolated against the snapshot first, so "${x} > 3"
// works the same whether the caller pre-interpolates or not. An empty or
// whitespace-only expression evaluates to false — the safe default for an
// absent condition. Everything else goes through three stages:
//
//  1. parse into the expression AST
//  2. allow-list walk over the tree (see checker.go)
//  3. compile and run with all builtin functions disabled, so only the
//     snapshot bindings are reachable
//
// Failure at any stage returns a *ExpressionError.
func Evaluate(src string, vars value.Snapshot) (value.Value, error) {
	text := strings.TrimSpace(Interpolate(src, vars))
	if text == "" {
		return value.NewBool(false), nil
	}

	tree, err := parser.Parse(text)
	if err != nil {
		return value.Absent, &ExpressionError{Expr: text, Msg: "parse error", Err: err}
	}
	if err := check(&tree.Node); err != nil {
		return value.Absent, &ExpressionError{Expr: text, Msg: "unsafe expression", Err: err}
	}

	env := buildEnv(vars)
	program, err := expr.Compile(text, expr.Env(env), expr.DisableAllBuiltins())
	if err != nil {
		return value.Absent, &ExpressionError{Expr: text, Msg: "compile error", Err: err}
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return value.Absent, &ExpressionError{Expr: text, Msg: "evaluation error", Err: err}
	}

	switch out.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return value.FromAny(out), nil
	default:
		// A list literal is a legal operand but has no scalar Value form
		// as a top-level result.
		return value.Absent, &ExpressionError{
			Expr: text,
			Msg:  fmt.Sprintf("result %T is not a scalar", out),
		}
	}
}

// buildEnv converts a snapshot into the evaluation environment. Stored raw
// strings are coerced so "5" compares as a number and "true" as a boolean;
// strings that don't parse stay opaque tokens and fail only if mixed into
// arithmetic. No other bindings — and no builtins — are reachable.
func buildEnv(vars value.Snapshot) map[string]any {
	env := make(map[string]any, len(vars))
	for name, v := range vars {
		if v.Kind == value.KindString {
			env[name] = value.Coerce(v.Str).Native()
			continue
		}
		env[name] = v.Native()
	}
	return env
}
