package main

import (
	"fmt"
	"os"

	"github.com/AshishBinoy/traindesk/internal/cli"
)

// main stays thin: all logic lives in internal/cli. Exit code 0 on normal
// completion, 1 on authentication failure or any command error.
func main() {
	if err := cli.BuildCLI().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
