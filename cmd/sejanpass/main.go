package main

import (
	"os"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
