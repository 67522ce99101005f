// Package eval implements the two expression surfaces of the IKP core:
// ${name} string interpolation and the sandboxed condition evaluator.
package eval

import (
	"regexp"
	"strings"

	"github.com/ormasoftchile/ikp/pkg/value"
)

// tokenRe matches interpolation tokens: ${identifier}, where identifier is
// one or more ASCII alphanumerics or underscores.
var tokenRe = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)

// Interpolate substitutes ${name} tokens in template with the canonical
// text of the named variable. Missing or absent variables substitute the
// empty string. The scan is a single pass: substituted text is never
// re-scanned for further tokens, so interpolation is O(len) and a variable
// holding "${x}" cannot trigger another round.
func Interpolate(template string, vars value.Snapshot) string {
	if !strings.Contains(template, "${") {
		return template // fast path for literals
	}
	return tokenRe.ReplaceAllStringFunc(template, func(tok string) string {
		name := tok[2 : len(tok)-1]
		return vars.Lookup(name).Text()
	})
}

// InterpolateAny interpolates string inputs and passes everything else
// through unchanged. Non-string templates are identity, not an error.
func InterpolateAny(template any, vars value.Snapshot) any {
	if s, ok := template.(string); ok {
		return Interpolate(s, vars)
	}
	return template
}
