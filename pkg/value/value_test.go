package value

import "testing"

func TestCoerceBooleans(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"  True  ", true},
		{"FALSE", false},
	}
	for _, c := range cases {
		v := Coerce(c.in)
		if v.Kind != KindBool || v.Bool != c.want {
			t.Errorf("Coerce(%q) = %+v, want bool %v", c.in, v, c.want)
		}
	}
}

func TestCoerceNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"-5", -5},
		{"+5", 5},
		{"3.25", 3.25},
		{"-0.5", -0.5},
		{"1.5e3", 1500}, // has a dot, so the float path applies
		{" 42 ", 42},
	}
	for _, c := range cases {
		v := Coerce(c.in)
		if v.Kind != KindNumber || v.Num != c.want {
			t.Errorf("Coerce(%q) = %+v, want number %v", c.in, v, c.want)
		}
	}
}

func TestCoerceFallsThroughToString(t *testing.T) {
	for _, in := range []string{"hello", "1e3", "1.2.3", "", "12px"} {
		v := Coerce(in)
		if v.Kind != KindString || v.Str != in {
			t.Errorf("Coerce(%q) = %+v, want string passthrough", in, v)
		}
	}
}

// Coercing "True" and re-stringifying yields the canonical "true",
// not the original casing.
func TestCoerceRoundTripCanonicalizes(t *testing.T) {
	if got := Coerce("True").Text(); got != "true" {
		t.Errorf("Coerce(\"True\").Text() = %q, want \"true\"", got)
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NewNumber(5), "5"},
		{NewNumber(2.5), "2.5"},
		{NewNumber(-0.5), "-0.5"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewString("x"), "x"},
		{Absent, ""},
	}
	for _, c := range cases {
		if got := c.v.Text(); got != c.want {
			t.Errorf("Text(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFromAny(t *testing.T) {
	if v := FromAny(nil); !v.IsAbsent() {
		t.Errorf("FromAny(nil) = %+v, want Absent", v)
	}
	if v := FromAny(7); v.Kind != KindNumber || v.Num != 7 {
		t.Errorf("FromAny(7) = %+v", v)
	}
	if v := FromAny(int64(-2)); v.Kind != KindNumber || v.Num != -2 {
		t.Errorf("FromAny(int64(-2)) = %+v", v)
	}
	if v := FromAny(true); v.Kind != KindBool || !v.Bool {
		t.Errorf("FromAny(true) = %+v", v)
	}
	if v := FromAny("s"); v.Kind != KindString || v.Str != "s" {
		t.Errorf("FromAny(\"s\") = %+v", v)
	}
	// Unrecognized types stringify rather than error.
	if v := FromAny([]int{1}); v.Kind != KindString {
		t.Errorf("FromAny(slice) = %+v, want string", v)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Absent, false},
		{NewBool(true), true},
		{NewBool(false), false},
		{NewNumber(0), false},
		{NewNumber(-1), true},
		{NewString(""), false},
		{NewString("no"), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("Truthy(%+v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := Snapshot{"x": NewNumber(1)}
	if v := snap.Lookup("x"); v.Num != 1 {
		t.Errorf("Lookup(x) = %+v", v)
	}
	if v := snap.Lookup("missing"); !v.IsAbsent() {
		t.Errorf("Lookup(missing) = %+v, want Absent", v)
	}
	var nilSnap Snapshot
	if v := nilSnap.Lookup("x"); !v.IsAbsent() {
		t.Errorf("nil snapshot Lookup = %+v, want Absent", v)
	}
}
