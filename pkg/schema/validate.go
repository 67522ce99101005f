package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// Report collects validation findings. Errors make the document unusable;
// warnings flag usable-but-incomplete documents (e.g. a scene without a
// ui list). Findings are data, never panics or errors.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the document is usable (no errors; warnings allowed).
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate runs the structural rules over a generic decoded document tree
// (the result of LoadAny). The two root-level checks short-circuit; past
// them every scene is examined so one pass surfaces every problem.
func Validate(doc any) *Report {
	report := &Report{}

	root, ok := doc.(map[string]any)
	if !ok {
		report.errorf("root must be a mapping (YAML dictionary)")
		return report
	}
	scenes, ok := root["scenes"].(map[string]any)
	if !ok || len(scenes) == 0 {
		report.errorf("`scenes` must be a mapping with at least one scene")
		return report
	}

	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		scene, ok := scenes[name].(map[string]any)
		if !ok {
			report.errorf("scene %q must be a mapping", name)
			continue
		}
		rawUI, present := scene["ui"]
		if !present || rawUI == nil {
			report.warnf("scene %q has no `ui` list", name)
			continue
		}
		ui, ok := rawUI.([]any)
		if !ok {
			report.errorf("scene %q: `ui` must be a list", name)
			continue
		}
		for i, item := range ui {
			node, ok := item.(map[string]any)
			if !ok {
				report.errorf("scene %q ui[%d] must be a mapping", name, i)
				continue
			}
			if _, hasType := node["type"]; !hasType {
				report.errorf("scene %q ui[%d] missing required field 'type'", name, i)
			}
		}
	}
	return report
}

// ValidateBytes runs the full pipeline on raw document text: generic
// decode, structural rules, then strict typed decode and JSON Schema
// semantic validation. The typed document is returned when the structural
// phase passes, even if semantic findings were added.
func ValidateBytes(data []byte) (*Document, *Report) {
	tree, err := LoadAny(data)
	if err != nil {
		return nil, &Report{Errors: []string{err.Error()}}
	}
	report := Validate(tree)
	if !report.OK() {
		return nil, report
	}

	doc, err := Load(bytes.NewReader(data))
	if err != nil {
		report.errorf("%v", err)
		return nil, report
	}
	for _, msg := range validateSemantic(doc) {
		report.errorf("%s", msg)
	}
	return doc, report
}

// ValidateFile is ValidateBytes over a file on disk.
func ValidateFile(path string) (*Document, *Report) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Report{Errors: []string{err.Error()}}
	}
	return ValidateBytes(data)
}

// validateSemantic checks the typed document against the generated JSON
// Schema. Findings come back as plain messages for the report.
func validateSemantic(doc *Document) []string {
	data, err := json.Marshal(doc)
	if err != nil {
		return []string{fmt.Sprintf("marshal for schema validation: %v", err)}
	}

	schemaJSON, err := GenerateJSONSchema()
	if err != nil {
		return []string{fmt.Sprintf("generate schema: %v", err)}
	}
	var schemaDoc any
	if err := json.Unmarshal(schemaJSON, &schemaDoc); err != nil {
		return []string{fmt.Sprintf("unmarshal schema: %v", err)}
	}

	c := sjsonschema.NewCompiler()
	if err := c.AddResource("ikp-v0.json", schemaDoc); err != nil {
		return []string{fmt.Sprintf("add schema resource: %v", err)}
	}
	sch, err := c.Compile("ikp-v0.json")
	if err != nil {
		return []string{fmt.Sprintf("compile schema: %v", err)}
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return []string{fmt.Sprintf("unmarshal document: %v", err)}
	}
	err = sch.Validate(instance)
	if err == nil {
		return nil
	}

	ve, ok := err.(*sjsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}
	var msgs []string
	for _, cause := range flattenValidationErrors(ve) {
		loc := strings.Join(cause.InstanceLocation, "/")
		msgs = append(msgs, fmt.Sprintf("schema: %s: %v", loc, cause.ErrorKind))
	}
	return msgs
}

// flattenValidationErrors recursively collects all leaf validation errors.
func flattenValidationErrors(ve *sjsonschema.ValidationError) []*sjsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*sjsonschema.ValidationError{ve}
	}
	var flat []*sjsonschema.ValidationError
	for _, cause := range ve.Causes {
		flat = append(flat, flattenValidationErrors(cause)...)
	}
	return flat
}
