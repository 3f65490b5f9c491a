// Command latchc compiles persisted workflow graphs into deployable
// Temporal Python applications.
package main

import (
	"os"

	"github.com/latchflow/latchc/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
