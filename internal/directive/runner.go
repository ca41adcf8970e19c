package directive

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"cglogic/internal/diag"
	"cglogic/internal/source"
)

// RunnerConfig configures directive execution.
type RunnerConfig struct {
	// Filter limits execution to specific namespaces (empty = all).
	Filter []string

	// Output is where to write execution status; nil discards it.
	Output io.Writer
}

// RunResult contains the outcome of running directives.
type RunResult struct {
	Total  int
	Passed int
	Failed int
	// Unexpected counts errors in files with expect directives that no
	// directive claimed.
	Unexpected int
}

// OK reports whether every scenario passed and nothing was unexpected.
func (r RunResult) OK() bool {
	return r.Failed == 0 && r.Unexpected == 0
}

// Runner matches directive scenarios against reported diagnostics.
type Runner struct {
	config   RunnerConfig
	registry *Registry
}

// NewRunner creates a directive runner.
func NewRunner(registry *Registry, config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = io.Discard
	}
	return &Runner{
		config:   config,
		registry: registry,
	}
}

// located: диагностика с уже разрешёнными путём и строкой
type located struct {
	path    string
	line    uint32
	d       diag.Diagnostic
	claimed bool
}

// Run checks all matching scenarios against diags.
// Each diagnostic satisfies at most one expected code.
func (r *Runner) Run(diags []diag.Diagnostic, fs *source.FileSet) RunResult {
	scenarios := r.registry.FilterByNamespace(r.config.Filter)
	slices.SortStableFunc(scenarios, func(a, b Scenario) int {
		if c := strings.Compare(a.SourceFile, b.SourceFile); c != 0 {
			return c
		}
		return int(a.Line) - int(b.Line)
	})

	items := locate(diags, fs)
	result := RunResult{Total: len(scenarios)}
	expectFiles := make(map[string]bool)
	out := r.config.Output

	for i := range scenarios {
		s := &scenarios[i]
		var missing []string
		switch s.Namespace {
		case NamespaceExpect:
			expectFiles[s.SourceFile] = true
			for _, code := range s.Codes {
				if !claim(items, s.SourceFile, s.Line, code) {
					missing = append(missing, code)
				}
			}
		case NamespaceClean:
			for _, it := range items {
				if it.path == s.SourceFile && it.d.Severity >= diag.SevError {
					missing = append(missing, it.d.Code.ID())
				}
			}
		}
		if len(missing) == 0 {
			fmt.Fprintf(out, "%s %s:%d ... ok\n", s.Namespace, s.SourceFile, s.Line)
			result.Passed++
			continue
		}
		if s.Namespace == NamespaceClean {
			fmt.Fprintf(out, "%s %s ... FAILED (reported %s)\n", s.Namespace, s.SourceFile, strings.Join(missing, ", "))
		} else {
			fmt.Fprintf(out, "%s %s:%d ... FAILED (missing %s)\n", s.Namespace, s.SourceFile, s.Line, strings.Join(missing, ", "))
		}
		result.Failed++
	}

	for _, it := range items {
		if it.claimed || !expectFiles[it.path] || it.d.Severity < diag.SevError {
			continue
		}
		fmt.Fprintf(out, "unexpected %s:%d %s %s\n", it.path, it.line, it.d.Code.ID(), it.d.Message)
		result.Unexpected++
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Directive summary: %d total, %d passed, %d failed, %d unexpected\n",
		result.Total, result.Passed, result.Failed, result.Unexpected)
	return result
}

func locate(diags []diag.Diagnostic, fs *source.FileSet) []*located {
	out := make([]*located, 0, len(diags))
	for _, d := range diags {
		it := &located{line: d.Pos.Line, d: d}
		if fs != nil && int(d.Primary.File) < fs.Len() {
			it.path = fs.Get(d.Primary.File).Path
			if !d.Pos.IsValid() {
				it.line = fs.Position(d.Primary).Line
			}
		}
		out = append(out, it)
	}
	return out
}

func claim(items []*located, path string, line uint32, code string) bool {
	for _, it := range items {
		if !it.claimed && it.path == path && it.line == line && it.d.Code.ID() == code {
			it.claimed = true
			return true
		}
	}
	return false
}
