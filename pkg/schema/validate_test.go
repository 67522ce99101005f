package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `
version: "0.4"
start: Hello
scenes:
  Hello:
    ui:
      - type: label
        text: "Hello ${name}!"
      - type: button
        text: Next
        action:
          type: goto
          target: Form
  Form:
    ui:
      - type: input
        var: name
`

func mustTree(t *testing.T, text string) any {
	t.Helper()
	tree, err := LoadAny([]byte(text))
	if err != nil {
		t.Fatalf("LoadAny: %v", err)
	}
	return tree
}

func TestValidateValidDocument(t *testing.T) {
	report := Validate(mustTree(t, sampleDoc))
	if diff := cmp.Diff(&Report{}, report); diff != "" {
		t.Errorf("unexpected findings (-want +got):\n%s", diff)
	}
}

func TestValidateRootNotMapping(t *testing.T) {
	report := Validate(mustTree(t, "- just\n- a\n- list\n"))
	if len(report.Errors) != 1 || len(report.Warnings) != 0 {
		t.Fatalf("report = %+v, want exactly one error", report)
	}
	if !strings.Contains(report.Errors[0], "mapping") {
		t.Errorf("error = %q", report.Errors[0])
	}
}

func TestValidateMissingScenes(t *testing.T) {
	report := Validate(mustTree(t, "version: \"1\"\n"))
	if len(report.Errors) != 1 || len(report.Warnings) != 0 {
		t.Fatalf("report = %+v, want exactly one error and no warnings", report)
	}
	if !strings.Contains(report.Errors[0], "scenes") {
		t.Errorf("error = %q", report.Errors[0])
	}
}

func TestValidateEmptyScenes(t *testing.T) {
	report := Validate(mustTree(t, "scenes: {}\n"))
	if len(report.Errors) != 1 {
		t.Fatalf("report = %+v, want one error", report)
	}
}

func TestValidateSceneNotMapping(t *testing.T) {
	report := Validate(mustTree(t, "scenes:\n  Bad: 42\n  Good:\n    ui: []\n"))
	if len(report.Errors) != 1 || !strings.Contains(report.Errors[0], `"Bad"`) {
		t.Errorf("report = %+v", report)
	}
}

func TestValidateSceneWithoutUIWarns(t *testing.T) {
	report := Validate(mustTree(t, "scenes:\n  Empty: {}\n"))
	if len(report.Errors) != 0 || len(report.Warnings) != 1 {
		t.Fatalf("report = %+v, want one warning", report)
	}
	if !strings.Contains(report.Warnings[0], "ui") {
		t.Errorf("warning = %q", report.Warnings[0])
	}
}

func TestValidateUINotList(t *testing.T) {
	report := Validate(mustTree(t, "scenes:\n  S:\n    ui: nope\n"))
	if len(report.Errors) != 1 || !strings.Contains(report.Errors[0], "list") {
		t.Errorf("report = %+v", report)
	}
}

func TestValidateUIItems(t *testing.T) {
	report := Validate(mustTree(t, `
scenes:
  S:
    ui:
      - not-a-mapping
      - text: "no type field"
      - type: label
`))
	if len(report.Errors) != 2 {
		t.Fatalf("report = %+v, want two errors", report)
	}
	if !strings.Contains(report.Errors[0], "ui[0]") {
		t.Errorf("errors[0] = %q", report.Errors[0])
	}
	if !strings.Contains(report.Errors[1], "ui[1]") || !strings.Contains(report.Errors[1], "'type'") {
		t.Errorf("errors[1] = %q", report.Errors[1])
	}
}

// Past the root checks the validator never stops early: problems in every
// scene show up in one pass, in scene-name order.
func TestValidateAccumulatesAcrossScenes(t *testing.T) {
	report := Validate(mustTree(t, `
scenes:
  A:
    ui: 42
  B: []
  C: {}
`))
	if len(report.Errors) != 2 || len(report.Warnings) != 1 {
		t.Fatalf("report = %+v, want two errors and one warning", report)
	}
	if !strings.Contains(report.Errors[0], `"A"`) || !strings.Contains(report.Errors[1], `"B"`) {
		t.Errorf("errors = %v, want scene-name order", report.Errors)
	}
}

func TestValidateBytesPipeline(t *testing.T) {
	doc, report := ValidateBytes([]byte(sampleDoc))
	if !report.OK() {
		t.Fatalf("report = %+v", report)
	}
	if doc == nil || len(doc.Scenes) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.StartScene() != "Hello" {
		t.Errorf("StartScene = %q", doc.StartScene())
	}
}

func TestValidateFileSample(t *testing.T) {
	doc, report := ValidateFile("testdata/sample.yaml")
	if !report.OK() {
		t.Fatalf("report = %+v", report)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("warnings = %v", report.Warnings)
	}
	if doc.StartScene() != "Hello" {
		t.Errorf("StartScene = %q", doc.StartScene())
	}
}

func TestValidateFileMissing(t *testing.T) {
	doc, report := ValidateFile("testdata/does-not-exist.yaml")
	if doc != nil || report.OK() {
		t.Errorf("doc = %v, report = %+v", doc, report)
	}
}

func TestValidateBytesStructuralFailure(t *testing.T) {
	doc, report := ValidateBytes([]byte("version: \"1\"\n"))
	if doc != nil {
		t.Errorf("doc = %+v, want nil", doc)
	}
	if report.OK() {
		t.Error("report unexpectedly clean")
	}
}
