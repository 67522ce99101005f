// Package runtime provides a reference host for the IKP core: a headless
// session holding the loaded document, the current scene, and the variable
// and progress stores. GUI hosts implement the same callbacks against
// their widget state; the session is what tests and the CLI run against.
package runtime

import (
	"sort"

	"github.com/ormasoftchile/ikp/pkg/action"
	"github.com/ormasoftchile/ikp/pkg/schema"
	"github.com/ormasoftchile/ikp/pkg/value"
)

// Session is the execution state for one loaded document. All state is
// per-session; the core retains nothing between calls.
type Session struct {
	Doc      *schema.Document
	Scene    string
	Vars     map[string]value.Value
	Progress map[string]float64

	// OnNavigate, if set, observes every successful scene change.
	OnNavigate func(scene string)
	// OnUnknown, if set, receives action payloads the core does not
	// understand. Unset, they are dropped.
	OnUnknown func(raw any)
}

// NewSession creates a session for a document with empty stores. Call
// Start to enter the opening scene.
func NewSession(doc *schema.Document) *Session {
	return &Session{
		Doc:      doc,
		Vars:     make(map[string]value.Value),
		Progress: make(map[string]float64),
	}
}

// Start enters the document's start scene (or the lexically first scene
// when start is unset or dangling).
func (s *Session) Start() {
	s.Navigate(s.Doc.StartScene())
}

// Navigate switches the current scene. Unknown scene names are ignored:
// target validation is a render-time concern and a headless session has
// nothing better to do than stay put.
func (s *Session) Navigate(name string) {
	if _, ok := s.Doc.Scenes[name]; !ok {
		return
	}
	s.Scene = name
	if s.OnNavigate != nil {
		s.OnNavigate(name)
	}
}

// SetVar stores a variable, narrowing it to a core Value.
func (s *Session) SetVar(name string, val any) {
	s.Vars[name] = value.FromAny(val)
}

// SetProgress stores a progress value. Non-numeric values are ignored; the
// interpreter already passes through anything it could not convert, and a
// bare store has no use for them.
func (s *Session) SetProgress(name string, val any) {
	if f, ok := value.FromAny(val).Native().(float64); ok {
		s.Progress[name] = f
	}
}

// Snapshot returns a point-in-time copy of the variable store.
func (s *Session) Snapshot() value.Snapshot {
	snap := make(value.Snapshot, len(s.Vars))
	for name, v := range s.Vars {
		snap[name] = v
	}
	return snap
}

// Context builds the action context wired to this session.
func (s *Session) Context() *action.Context {
	return &action.Context{
		Navigate:    s.Navigate,
		SetVar:      s.SetVar,
		SetProgress: s.SetProgress,
		Snapshot:    s.Snapshot,
		Fallback:    s.OnUnknown,
	}
}

// Dispatch executes one raw action (structured mapping, legacy string, or
// parsed Action) against the session.
func (s *Session) Dispatch(raw any) {
	action.Execute(raw, s.Context())
}

// VarNames returns the variable names in sorted order, for deterministic
// reporting.
func (s *Session) VarNames() []string {
	names := make([]string, 0, len(s.Vars))
	for name := range s.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
