// Hueseed - A colour scheme generator
//
// Hueseed grows a balanced colour scheme from a single seed colour, taken
// from the command line, an image, a random draw or a text prompt.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/hueseed/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
