package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cglogic/internal/dialect"
	"cglogic/internal/driver"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] <file|->",
	Short: "Translate between CGIF and Common Logic",
	Long: `Translate parses an expression and prints it in the other notation.
By default CGIF input becomes a CL sentence: defining coreference labels become
existentially quantified variables. With --to cgif a CL sentence becomes a
conceptual graph; not, or, if and iff are written with nested negations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().String("format", "text", "output format (text|tree|json)")
	translateCmd.Flags().String("expr", "", "translate the given expression instead of a file")
	translateCmd.Flags().String("diagnostics", "", "diagnostics format (pretty|json|short)")
	translateCmd.Flags().String("to", "cl", "target notation (cl|cgif)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	switch format {
	case "text", "tree", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	toFlag, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	to, ok := dialect.ParseNotation(toFlag)
	if !ok {
		return fmt.Errorf("unknown target notation: %s", toFlag)
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
	var result *driver.TranslateResult
	if in.inMemory() {
		result, err = driver.TranslateSource(cmd.Context(), in.name, in.text, to, opts)
	} else {
		result, err = driver.TranslateFile(cmd.Context(), in.path, to, opts)
	}
	if err != nil {
		if errors.Is(err, driver.ErrSameNotation) {
			return err
		}
		return fmt.Errorf("translation failed: %w", err)
	}

	res := result.Result
	fs := result.Parse.FileSet
	if format == "json" {
		if err := writeJSON(cmd.OutOrStdout(), newResultOutput(to.String(), res, fs)); err != nil {
			return err
		}
		if !res.Success {
			return errFailed
		}
		return nil
	}

	if len(res.Errors) > 0 {
		if err := printDiagnostics(cmd.ErrOrStderr(), diagFormat, sortedCopy(res.Errors), fs, s); err != nil {
			return err
		}
	}
	if !res.Success {
		return errFailed
	}
	if format == "tree" {
		return printTree(cmd.OutOrStdout(), "pretty", res.Tree, res.Text)
	}
	return printTree(cmd.OutOrStdout(), "text", res.Tree, res.Text)
}
