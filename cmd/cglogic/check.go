package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"cglogic/internal/directive"
	"cglogic/internal/driver"
	"cglogic/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [paths...]",
	Short: "Check CGIF and CL files for syntax and reference errors",
	Long: `Check parses every .cgif/.cg/.cl/.clif file under the given paths (default: .)
in parallel, optionally validates and translates them, and reports all diagnostics.
Results are cached on disk keyed by content and options.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("validate", true, "run structural validation after parsing (default from cglogic.toml)")
	checkCmd.Flags().Bool("translate", false, "also translate CGIF files and report translation errors")
	checkCmd.Flags().Bool("suggest", true, "attach correction hints to diagnostics")
	checkCmd.Flags().Bool("cache", false, "reuse results from the on-disk cache (default from cglogic.toml)")
	checkCmd.Flags().Bool("clear-cache", false, "drop the on-disk cache before checking")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().String("diagnostics", "", "diagnostics format (pretty|json|short)")
	checkCmd.Flags().Bool("expect", false, "verify 'expect:'/'clean' directive comments instead of printing diagnostics")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)
	flags := cmd.Flags()

	// флаги перекрывают cglogic.toml только если заданы явно
	var err error
	if flags.Changed("jobs") {
		if s.cfg.Check.Jobs, err = flags.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Changed("validate") {
		if s.cfg.Check.Validate, err = flags.GetBool("validate"); err != nil {
			return fmt.Errorf("failed to get validate flag: %w", err)
		}
	}
	if flags.Changed("cache") {
		if s.cfg.Check.Cache, err = flags.GetBool("cache"); err != nil {
			return fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	translate, err := flags.GetBool("translate")
	if err != nil {
		return fmt.Errorf("failed to get translate flag: %w", err)
	}
	suggest, err := flags.GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	clearCache, err := flags.GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	expect, err := flags.GetBool("expect")
	if err != nil {
		return fmt.Errorf("failed to get expect flag: %w", err)
	}
	diagFormat, err := diagnosticsFormat(cmd, s)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	opts := s.driverOptions()
	opts.Translate = translate
	opts.Suggest = suggest
	if s.cfg.Check.Cache || clearCache {
		cache, cacheErr := driver.OpenDiskCache("cglogic")
		if cacheErr != nil {
			// без кэша проверка всё равно работает
			if !s.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache disabled: %v\n", cacheErr)
			}
		} else {
			if clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("failed to clear cache: %w", err)
				}
			}
			if s.cfg.Check.Cache {
				opts.Cache = cache
			}
		}
	}

	files, err := driver.ListSourceFiles(args, opts.Exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !s.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "no CGIF or CL files found")
		}
		return nil
	}

	var report *driver.CheckReport
	if shouldUseTUI(mode, len(files)) {
		report, err = ui.RunCheck("cglogic check", files, os.Stdout, func(sink driver.ProgressSink) (*driver.CheckReport, error) {
			withSink := opts
			withSink.Progress = sink
			return driver.CheckPaths(cmd.Context(), files, withSink)
		})
	} else {
		report, err = driver.CheckPaths(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	for _, loadErr := range multierr.Errors(report.LoadErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", loadErr)
	}
	if expect {
		res := driver.VerifyDirectives(report, directive.RunnerConfig{Output: cmd.OutOrStdout()})
		if !res.OK() || report.LoadErr != nil {
			return errFailed
		}
		return nil
	}
	if err := printDiagnostics(cmd.OutOrStdout(), diagFormat, report.Diagnostics(), report.FileSet, s); err != nil {
		return err
	}
	if !s.quiet && diagFormat == "pretty" {
		printCheckSummary(cmd, report)
	}
	if report.Failed() {
		return errFailed
	}
	return nil
}

func printCheckSummary(cmd *cobra.Command, report *driver.CheckReport) {
	failed, cached := 0, 0
	for _, f := range report.Files {
		if f.Failed() {
			failed++
		}
		if f.Cached {
			cached++
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "checked %d file(s): %d failed, %d cached\n", len(report.Files), failed, cached)
}
