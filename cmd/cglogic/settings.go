package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cglogic/internal/dialect"
	"cglogic/internal/driver"
	"cglogic/internal/observ"
	"cglogic/internal/prof"
	"cglogic/internal/project"
)

// settings: итоговые настройки команды: cglogic.toml, поверх него явные флаги.
type settings struct {
	cfg      project.Config
	color    bool
	quiet    bool
	timings  bool
	notation dialect.Notation
	timer    *observ.Timer
	cleanup  func()
}

type settingsKey struct{}

// active: настройки выполняемой команды, для finish после Execute
var active *settings

// prepare runs before every subcommand: it loads the configuration,
// applies flag overrides and installs the tracer.
func prepare(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	session, err := startProfiling(cmd)
	if err != nil {
		cleanup()
		return err
	}
	s.cleanup = func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "profile: %v\n", err)
		}
		cleanup()
	}
	active = s
	cmd.SetContext(context.WithValue(cmd.Context(), settingsKey{}, s))
	return nil
}

// finish flushes the tracer and prints timings after the command ran.
func finish() {
	s := active
	if s == nil {
		return
	}
	if s.timings && s.timer != nil {
		printTimings(os.Stderr, s.timer)
	}
	if s.cleanup != nil {
		s.cleanup()
	}
}

// startProfiling запускает pprof-профили из флагов; без флагов вернёт nil.
func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil, nil
	}
	return prof.Start(cfg)
}

func settingsFrom(cmd *cobra.Command) *settings {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
			return s
		}
	}
	return &settings{cfg: project.Default(), timer: observ.NewTimer()}
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg project.Config
	if cfgPath != "" {
		cfg, err = project.Load(cfgPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			cfg, err = project.Discover(wd)
		}
	}
	if err != nil {
		return nil, err
	}

	if flags.Changed("max-diagnostics") {
		if cfg.Check.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("notation") {
		if cfg.Check.Notation, err = flags.GetString("notation"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return nil, err
		}
	}

	s := &settings{cfg: cfg, timer: observ.NewTimer()}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, err
	}

	s.notation = dialect.Unknown
	if n := strings.ToLower(cfg.Check.Notation); n != "auto" {
		parsed, ok := dialect.ParseNotation(n)
		if !ok {
			return nil, fmt.Errorf("invalid notation %q (expected cgif|cl|auto)", cfg.Check.Notation)
		}
		s.notation = parsed
	}

	switch cfg.Output.Color {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto":
		s.color = isTerminal(os.Stderr)
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", cfg.Output.Color)
	}
	color.NoColor = !s.color
	return s, nil
}

// driverOptions maps the settings onto driver.Options.
func (s *settings) driverOptions() driver.Options {
	opts := driver.OptionsFromConfig(s.cfg)
	opts.Notation = s.notation
	opts.Timer = s.timer
	if wd, err := os.Getwd(); err == nil {
		opts.BaseDir = wd
	}
	return opts
}
