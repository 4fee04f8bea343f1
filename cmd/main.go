package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
