package main

import (
	"fmt"
	"os"

	"github.com/lamchakchan/devtools-pro/internal/platform"
)

// version is set via -ldflags at build time
var version = "dev"

func main() {
	platform.InitColor()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
