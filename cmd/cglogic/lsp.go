package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"cglogic/internal/lsp"
	"cglogic/internal/trace"
	"cglogic/internal/version"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the cglogic language server over stdio",
	Long: `Run a Language Server Protocol server on stdin/stdout. It publishes diagnostics
for open .cgif and .cl documents and answers hover, folding and formatting requests.`,
	Args: cobra.NoArgs,
	RunE: runLSP,
}

func init() {
	lspCmd.Flags().IntP("verbose", "v", 0, "server log verbosity (0 = errors only)")
	lspCmd.Flags().String("log-file", "", "write the server log to a file instead of stderr")
}

func runLSP(cmd *cobra.Command, _ []string) error {
	s := settingsFrom(cmd)

	verbosity, err := cmd.Flags().GetInt("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return fmt.Errorf("failed to get log-file flag: %w", err)
	}
	// stdout занят протоколом, лог только в stderr или файл
	var logPath *string
	if logFile != "" {
		logPath = &logFile
	}
	commonlog.Configure(verbosity, logPath)

	server := lsp.NewServer(lsp.ServerOptions{
		Version: version.Version,
		Driver:  s.driverOptions(),
		Tracer:  trace.FromContext(cmd.Context()),
	})
	return server.RunStdio()
}
