package main

import (
	"os"

	"github.com/stephenmfriend/tally/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
