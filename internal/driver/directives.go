package driver

import (
	"cglogic/internal/directive"
	"cglogic/internal/lexer"
)

// CollectDirectives re-lexes every checked file and gathers its
// "expect:"/"clean" directive comments.
func CollectDirectives(report *CheckReport) *directive.Registry {
	reg := directive.NewRegistry()
	if report == nil || report.FileSet == nil {
		return reg
	}
	for _, f := range report.Files {
		file := report.FileSet.Get(f.FileID)
		reg.CollectFromTokens(file, lexer.Tokenize(file, lexer.Options{Notation: f.Notation}))
	}
	return reg
}

// VerifyDirectives runs the directives of report against its diagnostics.
func VerifyDirectives(report *CheckReport, cfg directive.RunnerConfig) directive.RunResult {
	runner := directive.NewRunner(CollectDirectives(report), cfg)
	return runner.Run(report.Diagnostics(), report.FileSet)
}
