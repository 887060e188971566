// Command numtower parses, compares and computes with numeric literals.
package main

import (
	"os"

	"github.com/Neumenon/numtower/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
