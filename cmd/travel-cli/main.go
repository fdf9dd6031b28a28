package main

import (
	"os"

	"github.com/handiism/travel-discovery/cmd/travel-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
