package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cglogic/internal/diag"
	"cglogic/internal/diagfmt"
	"cglogic/internal/observ"
	"cglogic/internal/source"
)

// diagnosticsFormat returns --format if the command has it and it was set,
// otherwise output.format from cglogic.toml.
func diagnosticsFormat(cmd *cobra.Command, s *settings) (string, error) {
	format := s.cfg.Output.Format
	if f := cmd.Flags().Lookup("diagnostics"); f != nil && f.Changed {
		format = f.Value.String()
	}
	format = strings.ToLower(format)
	switch format {
	case "pretty", "json", "short":
		return format, nil
	}
	return "", fmt.Errorf("unsupported diagnostics format %q (must be pretty, json or short)", format)
}

// printDiagnostics writes diags in the chosen format. Quiet mode drops
// everything below errors.
func printDiagnostics(w io.Writer, format string, diags []diag.Diagnostic, fs *source.FileSet, s *settings) error {
	if s.quiet {
		diags = onlyErrors(diags)
	}
	switch format {
	case "json":
		return writeJSON(w, diagfmt.BuildDiagnosticsOutput(diags, fs, diagfmt.JSONOpts{
			IncludePositions:   true,
			PathMode:           diagfmt.PathModeRelative,
			IncludeSuggestions: true,
		}))
	case "short":
		if len(diags) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, diag.FormatShort(diags, fs))
		return err
	default:
		diagfmt.PrettyList(w, diags, fs, diagfmt.PrettyOpts{
			Color:           s.color,
			Context:         1,
			PathMode:        diagfmt.PathModeAuto,
			ShowSuggestions: true,
		})
		return nil
	}
}

func onlyErrors(diags []diag.Diagnostic) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.Severity >= diag.SevError {
			out = append(out, d)
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTimings выводит таблицу фаз; пустой таймер ничего не печатает.
func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	if len(timer.Report().Phases) == 0 {
		return
	}
	if _, err := io.WriteString(out, timer.Summary()); err != nil {
		panic(err)
	}
}
