package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cglogic/internal/diagfmt"
	"cglogic/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file|-",
	Short: "Tokenize a CGIF or CL source file",
	Long:  `Tokenize breaks a CGIF or CL source into tokens with their positions and leading trivia`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("expr", "", "tokenize the given expression instead of a file")
	tokenizeCmd.Flags().String("diagnostics", "", "diagnostics format (pretty|json|short)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
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
	var result *driver.TokenizeResult
	if in.inMemory() {
		result = driver.TokenizeText(in.name, in.text, opts)
	} else if result, err = driver.Tokenize(in.path, opts); err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностику в stderr, токены в stdout
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		if err := printDiagnostics(cmd.ErrOrStderr(), diagFormat, result.Bag.Items(), result.FileSet, s); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "pretty":
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errFailed
	}
	return nil
}
