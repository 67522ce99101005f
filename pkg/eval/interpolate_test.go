package eval

import (
	"testing"

	"github.com/ormasoftchile/ikp/pkg/value"
)

func TestInterpolate(t *testing.T) {
	snap := value.Snapshot{
		"x":    value.NewNumber(5),
		"name": value.NewString("Ada"),
		"ok":   value.NewBool(true),
		"gone": value.Absent,
	}
	cases := []struct {
		in   string
		want string
	}{
		{"${x}", "5"},
		{"hello ${name}!", "hello Ada!"},
		{"${ok}", "true"},
		{"${missing}", ""},
		{"${gone}", ""},
		{"no tokens here", "no tokens here"},
		{"${x}${x}", "55"},
		{"${not-an-identifier}", "${not-an-identifier}"}, // dash: not a token
		{"$x {x}", "$x {x}"},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, snap); got != c.want {
			t.Errorf("Interpolate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// A substituted value is never re-scanned: a variable holding "${y}"
// produces the literal text, not y's value.
func TestInterpolateSinglePass(t *testing.T) {
	snap := value.Snapshot{
		"a": value.NewString("${b}"),
		"b": value.NewString("boom"),
	}
	if got := Interpolate("${a}", snap); got != "${b}" {
		t.Errorf("Interpolate(\"${a}\") = %q, want \"${b}\"", got)
	}
}

func TestInterpolateAnyPassthrough(t *testing.T) {
	if got := InterpolateAny(42, nil); got != 42 {
		t.Errorf("InterpolateAny(42) = %v, want 42", got)
	}
	if got := InterpolateAny(nil, nil); got != nil {
		t.Errorf("InterpolateAny(nil) = %v, want nil", got)
	}
	snap := value.Snapshot{"x": value.NewNumber(1)}
	if got := InterpolateAny("${x}", snap); got != "1" {
		t.Errorf("InterpolateAny(\"${x}\") = %v, want \"1\"", got)
	}
}
