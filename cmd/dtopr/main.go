// Package main is the entry point for the dtopr CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/dtopr/cmd/dtopr/commands"
	"github.com/thoreinstein/dtopr/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	if !errors.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if s := errors.Suggestion(err); s != "" {
			fmt.Fprintln(os.Stderr, s)
		}
	}
	os.Exit(errors.ExitCode(err))
}
