package action

import (
	"strconv"
	"strings"

	"github.com/ormasoftchile/ikp/pkg/eval"
	"github.com/ormasoftchile/ikp/pkg/value"
)

// maxDepth bounds Conditional nesting so a malformed document cannot grow
// the stack without limit.
const maxDepth = 64

// Context bundles the host callbacks an action may invoke. Every field is
// optional: a nil callback makes the corresponding action a no-op — the
// host declares "I don't support this action kind" by omission.
type Context struct {
	// Navigate switches to the named scene. Whether the scene exists is
	// the host's concern, checked at render time.
	Navigate func(target string)

	// SetVar stores a variable value.
	SetVar func(name string, val any)

	// SetProgress stores a progress value, usually a float64.
	SetProgress func(name string, val any)

	// Snapshot returns the current variable state for one interpolation
	// or evaluation pass. The result is not retained.
	Snapshot func() value.Snapshot

	// Fallback receives the raw payload of actions the core does not
	// understand.
	Fallback func(raw any)
}

func (c *Context) snapshot() value.Snapshot {
	if c.Snapshot == nil {
		return nil
	}
	return c.Snapshot()
}

// Execute parses and runs one action against the host context. It never
// fails: faults inside interpolation, evaluation or numeric coercion
// degrade to safe defaults (empty string, false, raw pass-through) so a
// broken action cannot abort the surrounding flow.
func Execute(raw any, ctx *Context) {
	if ctx == nil {
		ctx = &Context{}
	}
	execute(Parse(raw), ctx, 0)
}

func execute(a Action, ctx *Context, depth int) {
	if a == nil || depth > maxDepth {
		return
	}

	switch act := a.(type) {
	case Goto:
		if act.Target != "" && ctx.Navigate != nil {
			ctx.Navigate(act.Target)
		}

	case SetVar:
		if ctx.SetVar == nil || act.Name == "" {
			return
		}
		// Interpolation reads the state *before* this action mutates it.
		ctx.SetVar(act.Name, eval.InterpolateAny(act.Value, ctx.snapshot()))

	case SetProgress:
		if ctx.SetProgress == nil || act.Name == "" {
			return
		}
		val := eval.InterpolateAny(act.Value, ctx.snapshot())
		if f, ok := toFloat(val); ok {
			ctx.SetProgress(act.Name, f)
			return
		}
		ctx.SetProgress(act.Name, val) // unconvertible: pass through, don't drop

	case Conditional:
		snap := ctx.snapshot()
		ok := false
		if v, err := eval.Evaluate(act.Condition, snap); err == nil {
			ok = v.Truthy()
		}
		branch := act.Else
		if ok {
			branch = act.Then
		}
		for _, sub := range branch {
			execute(sub, ctx, depth+1)
		}

	case Unknown:
		if ctx.Fallback != nil {
			ctx.Fallback(act.Raw)
		}
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case value.Value:
		if v.Kind == value.KindNumber {
			return v.Num, true
		}
		return 0, false
	default:
		return 0, false
	}
}
