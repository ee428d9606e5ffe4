// Command mojifix repairs double-encoded emoji and symbols in text files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jankowskaweronika/mojifix/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	if err := cli.Execute(args, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
