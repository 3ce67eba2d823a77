// SPDX-License-Identifier: MIT

// Command tmatrix applies vector and square-matrix arithmetic to operands
// given as whitespace-separated text.
//
//	echo "1 2 4 5 1 4" | tmatrix matrix apply -n 2 - -
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dynmat/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tmatrix:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
