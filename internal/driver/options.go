package driver

import (
	"cglogic/internal/dialect"
	"cglogic/internal/observ"
	"cglogic/internal/project"
)

// Options управляет одним прогоном tokenize/parse/check.
type Options struct {
	// Notation forces the notation; Unknown resolves it per file
	// from the extension and then from the content.
	Notation       dialect.Notation
	MaxDiagnostics int
	Validate       bool
	// Translate additionally runs the CGIF→CL translation for CGIF inputs.
	Translate bool
	// Suggest attaches correction hints to every reported diagnostic.
	Suggest bool
	Jobs    int      // 0 = GOMAXPROCS
	Exclude []string // имена каталогов, пропускаемых при обходе
	BaseDir string

	Timer    *observ.Timer
	Cache    *DiskCache
	Progress ProgressSink
	Observer PhaseObserver
}

// OptionsFromConfig maps cglogic.toml settings onto Options.
// Timer, Cache and Progress are left for the caller.
func OptionsFromConfig(cfg project.Config) Options {
	return Options{
		Notation:       cfg.Notation(),
		MaxDiagnostics: cfg.Check.MaxDiagnostics,
		Validate:       cfg.Check.Validate,
		Jobs:           cfg.Check.Jobs,
		Exclude:        cfg.Check.Exclude,
	}
}
