package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cglogic/internal/ast"
	"cglogic/internal/diag"
	"cglogic/internal/diagfmt"
	"cglogic/internal/driver"
	"cglogic/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|->",
	Short: "Parse a CGIF or CL expression and print its tree",
	Long: `Parse reads one CGIF or CL expression from a file, stdin ('-') or --expr
and prints the tree, its canonical text, or a JSON document with both.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|text)")
	parseCmd.Flags().String("expr", "", "parse the given expression instead of a file")
	parseCmd.Flags().String("diagnostics", "", "diagnostics format (pretty|json|short)")
}

// resultOutput: JSON-форма ast.Result для parse и translate.
type resultOutput struct {
	Success     bool                     `json:"success"`
	Notation    string                   `json:"notation"`
	Text        string                   `json:"text,omitempty"`
	Tree        *diagfmt.NodeOutput      `json:"tree,omitempty"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics"`
}

func runParse(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	switch format {
	case "pretty", "json", "text":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	diagFormat, err := diagnosticsFormat(cmd, s)
	if err != nil {
		return err
	}
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	opts := s.driverOptions()
	var result *driver.ParseResult
	if in.inMemory() {
		result = driver.ParseSource(cmd.Context(), in.name, in.text, opts)
	} else if result, err = driver.ParseFile(cmd.Context(), in.path, opts); err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if format == "json" {
		out := newResultOutput(result.Notation.String(), ast.NewResult(result.Tree, result.Bag.Items(), result.Text()), result.FileSet)
		if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
		if !result.Success() {
			return errFailed
		}
		return nil
	}

	if result.Bag.Len() > 0 {
		if err := printDiagnostics(cmd.ErrOrStderr(), diagFormat, result.Bag.Items(), result.FileSet, s); err != nil {
			return err
		}
	}
	if !result.Success() {
		return errFailed
	}
	return printTree(cmd.OutOrStdout(), format, result.Tree, result.Text())
}

// printTree prints a successful tree as an outline or as canonical text.
func printTree(w io.Writer, format string, tree ast.Node, text string) error {
	if format == "text" {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return diagfmt.FormatTreePretty(w, tree)
}

func newResultOutput(notation string, res ast.Result, fs *source.FileSet) resultOutput {
	out := resultOutput{
		Success:  res.Success,
		Notation: notation,
		Text:     res.Text,
	}
	// частичное дерево в вывод не попадает
	if res.Success && !ast.IsNil(res.Tree) {
		tree := diagfmt.BuildNodeOutput(res.Tree)
		out.Tree = &tree
	}
	out.Diagnostics = diagfmt.BuildDiagnosticsOutput(sortedCopy(res.Errors), fs, diagfmt.JSONOpts{
		IncludePositions:   true,
		PathMode:           diagfmt.PathModeRelative,
		IncludeSuggestions: true,
	}).Diagnostics
	return out
}

func sortedCopy(diags []diag.Diagnostic) []diag.Diagnostic {
	bag := diag.NewBag(len(diags))
	for _, d := range diags {
		bag.Add(d)
	}
	bag.Sort()
	return bag.Items()
}
