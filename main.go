package main

import (
	"github.com/ducanhdangcode/visualize-pylint/cmd"
)

// main is the entry point for the visualize-pylint CLI.
func main() {
	// Execute the root command defined in the cmd package.
	// It handles command-line parsing, configuration, and execution.
	cmd.Execute()
}
