// Package main provides the ikp binary: validate, evaluate, and run IKP
// documents headlessly.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ormasoftchile/ikp/pkg/eval"
	"github.com/ormasoftchile/ikp/pkg/runtime"
	"github.com/ormasoftchile/ikp/pkg/schema"
	"github.com/ormasoftchile/ikp/pkg/value"
)

// Version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ikp",
	Short: "IKP document engine",
	Long:  "ikp — validator, sandboxed expression evaluator and headless runner for IKP scene documents.",
}

// --- validate ---

var validateCmd = &cobra.Command{
	Use:   "validate [document.yaml]",
	Short: "Validate an IKP document",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	doc, report := schema.ValidateFile(args[0])
	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "  ⚠ %s\n", w)
	}
	if !report.OK() {
		fmt.Fprintf(os.Stderr, "Validation failed: %d error(s)\n\n", len(report.Errors))
		for i, e := range report.Errors {
			fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(report.Errors))
	}
	fmt.Printf("✓ %s is valid (%d scenes)\n", args[0], len(doc.Scenes))
	return nil
}

// --- eval ---

var evalVars []string

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate a sandboxed expression",
	Long:  "Evaluate a restricted arithmetic/boolean/comparison expression, e.g.\n  ikp eval '${x} > 3' --var x=5",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	snap := value.Snapshot{}
	for _, pair := range evalVars {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --var %q, want name=value", pair)
		}
		snap[name] = value.Coerce(raw)
	}
	result, err := eval.Evaluate(args[0], snap)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", result.Text(), result.Kind)
	return nil
}

// --- run ---

var (
	runStart   string
	runActions []string
	runVars    []string
)

var runCmd = &cobra.Command{
	Use:   "run [document.yaml]",
	Short: "Run a document headlessly and print the resulting state",
	Long: "Load and validate a document, start a session, dispatch the given\n" +
		"actions in order, and print the final scene and variables.\n" +
		"Actions are YAML: structured mappings or legacy strings, e.g.\n" +
		"  ikp run doc.yaml --action 'goto(Form)' --action '{type: set, var: x, value: \"1\"}'",
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	doc, report := schema.ValidateFile(args[0])
	if !report.OK() {
		for _, e := range report.Errors {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return fmt.Errorf("document is not valid")
	}

	sess := runtime.NewSession(doc)
	sess.OnNavigate = func(scene string) {
		fmt.Printf("→ scene %s\n", scene)
	}
	sess.OnUnknown = func(raw any) {
		fmt.Fprintf(os.Stderr, "  ⚠ unhandled action: %v\n", raw)
	}

	for _, pair := range runVars {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --var %q, want name=value", pair)
		}
		sess.SetVar(name, raw)
	}

	sess.Start()
	if runStart != "" {
		sess.Navigate(runStart)
	}

	for _, text := range runActions {
		var raw any
		if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
			return fmt.Errorf("parse action %q: %w", text, err)
		}
		sess.Dispatch(raw)
	}

	fmt.Printf("\nscene: %s\n", sess.Scene)
	for _, name := range sess.VarNames() {
		fmt.Printf("  %s = %s\n", name, sess.Vars[name].Text())
	}
	return nil
}

// --- schema ---

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the IKP document JSON Schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := schema.GenerateJSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

// --- fmt ---

var fmtCmd = &cobra.Command{
	Use:   "fmt [document.yaml]",
	Short: "Re-encode a document as canonical YAML on stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := schema.LoadFile(args[0])
		if err != nil {
			return err
		}
		out, err := schema.Dump(doc)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

// --- version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ikp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ikp %s\n", version)
	},
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "variable binding name=value (repeatable)")
	runCmd.Flags().StringVar(&runStart, "start", "", "override the start scene")
	runCmd.Flags().StringArrayVar(&runActions, "action", nil, "action to dispatch, YAML (repeatable)")
	runCmd.Flags().StringArrayVar(&runVars, "var", nil, "initial variable name=value (repeatable)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}
