package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/travel-discovery/internal/config"
	"github.com/handiism/travel-discovery/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		baseURLFlag = flag.String("base-url", "", "API base URL (overrides config)")
	)

	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *baseURLFlag != "" {
		settings.BaseURL = *baseURLFlag
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
