package main

import (
	stdio "io"
	"log"
	"os"

	"exercises/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}

	logger := log.New(stdio.Discard, "exercises: ", 0)
	if cfg.Verbose {
		logger.SetOutput(os.Stderr)
	}

	root := newRootCmd(&app{cfg: cfg, logger: logger})
	if err := root.Execute(); err != nil {
		config.Exitf("%v", err)
	}
}
