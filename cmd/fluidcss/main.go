// Command fluidcss computes fluid type and space scales and emits them
// as CSS clamp() expressions.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/fluidcss/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
