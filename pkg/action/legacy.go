package action

import (
	"regexp"
	"strings"
)

// Legacy call-style actions predate the structured mapping form. Exactly
// three patterns are recognized, case-insensitively:
//
//	set(name, value)
//	progress(name, value)
//	goto(target)
//
// They translate into the corresponding structured variant and execute
// identically. Anything else is a no-op.
var (
	legacySetRe      = regexp.MustCompile(`(?i)^\s*set\(\s*([^,]+?)\s*,\s*(.+?)\s*\)\s*$`)
	legacyProgressRe = regexp.MustCompile(`(?i)^\s*progress\(\s*([^,]+?)\s*,\s*([0-9.\-]+)\s*\)\s*$`)
	legacyGotoRe     = regexp.MustCompile(`(?i)^\s*goto\(\s*(.+?)\s*\)\s*$`)
)

// ParseLegacy parses a legacy action string. Returns nil when no pattern
// matches.
func ParseLegacy(s string) Action {
	if m := legacySetRe.FindStringSubmatch(s); m != nil {
		name := strings.TrimSpace(m[1])
		val := strings.TrimSpace(m[2])
		val = strings.Trim(val, `"`)
		val = strings.Trim(val, `'`)
		return SetVar{Name: name, Value: val}
	}
	if m := legacyProgressRe.FindStringSubmatch(s); m != nil {
		// The value stays a raw string here; the interpreter's float
		// conversion (with raw pass-through on failure) applies.
		return SetProgress{Name: strings.TrimSpace(m[1]), Value: m[2]}
	}
	if m := legacyGotoRe.FindStringSubmatch(s); m != nil {
		return Goto{Target: strings.TrimSpace(m[1])}
	}
	return nil
}
