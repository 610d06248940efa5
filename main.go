package main

import (
	"os"

	"github.com/conneroisu/hop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
