// Command hdldump reads a design file and drives a target module over it,
// by default the stub target compiled into the binary.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jumppad-labs/hdltarget/errors"
	"github.com/jumppad-labs/hdltarget/plugins"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps target status codes to a positive process exit code
func exitCode(err error) int {
	if errors.KindOf(err) == "" {
		return 1
	}

	return -plugins.Status(err)
}
