package main

import (
	"fmt"
	"os"

	"task-tracker/internal/cli"
	"task-tracker/internal/config"
)

func main() {
	// Load configuration from defaults and environment; command-line
	// flags are applied by the root command before any subcommand runs
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg)
	defer root.Close()

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
