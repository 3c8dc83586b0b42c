// Package main provides the wav2c CLI tool.
//
// Usage:
//
//	wav2c [flags] <input.wav>
//
// The input is converted to an 8-bit mono table and written as a C header,
// sample_data.h by default. Settings can also come from a YAML file passed
// with --config; flags given on the command line take precedence.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/wav2c/cmd/wav2c/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
