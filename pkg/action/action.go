// Package action defines the IKP action variants and the recursive
// interpreter that executes them against a host context.
//
// Actions arrive either as structured mappings decoded from a document
// (type: goto / set / progress / if) or as legacy call-style strings.
// Both forms parse into the same tagged variants; anything unrecognized
// becomes Unknown and is handed to the host's fallback untouched.
package action

// Action is a parsed, immutable action. Implementations are the five
// variants below; nothing else satisfies the interface.
type Action interface {
	act()
}

// Goto switches the current scene.
type Goto struct {
	Target string
}

// SetVar assigns a variable. A string Value is interpolated against the
// pre-action snapshot before the host sees it.
type SetVar struct {
	Name  string
	Value any
}

// SetProgress assigns a progress value. String values interpolate like
// SetVar, then convert to a float; values that won't convert pass through
// raw rather than being dropped.
type SetProgress struct {
	Name  string
	Value any
}

// Conditional evaluates its condition and runs one branch. A nil branch
// is a no-op.
type Conditional struct {
	Condition string
	Then      []Action
	Else      []Action
}

// Unknown wraps an action mapping whose type the core does not understand.
// Raw is the original decoded payload, forwarded verbatim to the host.
type Unknown struct {
	Raw any
}

func (Goto) act()        {}
func (SetVar) act()      {}
func (SetProgress) act() {}
func (Conditional) act() {}
func (Unknown) act()     {}

// Parse turns a raw action value — a decoded mapping, a legacy string, or
// an already-parsed Action — into an Action. It returns nil for empty
// actions, strings matching no legacy pattern, and non-mapping values:
// those are no-ops, not errors.
func Parse(raw any) Action {
	switch a := raw.(type) {
	case nil:
		return nil
	case Action:
		return a
	case string:
		return ParseLegacy(a)
	case map[string]any:
		return parseMapping(a)
	default:
		return nil
	}
}

func parseMapping(m map[string]any) Action {
	typ, _ := m["type"].(string)
	switch typ {
	case "goto":
		target, _ := m["target"].(string)
		return Goto{Target: target}
	case "set":
		name, _ := m["var"].(string)
		return SetVar{Name: name, Value: m["value"]}
	case "progress":
		name, _ := m["target"].(string)
		if name == "" {
			name, _ = m["var"].(string)
		}
		val, ok := m["value"]
		if !ok {
			val = 0
		}
		return SetProgress{Name: name, Value: val}
	case "if":
		cond, _ := m["condition"].(string)
		return Conditional{
			Condition: cond,
			Then:      parseBranch(m["then"]),
			Else:      parseBranch(m["else"]),
		}
	default:
		return Unknown{Raw: m}
	}
}

// parseBranch normalizes a branch to a slice: a single action, a sequence
// of actions, or absent (nil). Elements may themselves be legacy strings.
func parseBranch(raw any) []Action {
	switch b := raw.(type) {
	case nil:
		return nil
	case []any:
		var out []Action
		for _, item := range b {
			if a := Parse(item); a != nil {
				out = append(out, a)
			}
		}
		return out
	default:
		if a := Parse(raw); a != nil {
			return []Action{a}
		}
		return nil
	}
}
