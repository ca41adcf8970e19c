package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// input: то, что разбирает команда: файл на диске или буфер из stdin/--expr.
type input struct {
	path string // пусто для буфера
	name string
	text []byte
}

func (in input) inMemory() bool { return in.path == "" }

// readInput resolves the positional argument. "-" reads stdin, --expr (when
// the command has it) takes the expression from the command line.
func readInput(cmd *cobra.Command, args []string) (input, error) {
	if f := cmd.Flags().Lookup("expr"); f != nil && f.Changed {
		if len(args) > 0 {
			return input{}, fmt.Errorf("--expr and a file argument are mutually exclusive")
		}
		return input{name: "<expr>", text: []byte(f.Value.String())}, nil
	}
	if len(args) != 1 {
		return input{}, fmt.Errorf("expected exactly one file argument (or '-' for stdin)")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return input{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return input{name: "<stdin>", text: data}, nil
	}
	return input{path: args[0], name: args[0]}, nil
}
