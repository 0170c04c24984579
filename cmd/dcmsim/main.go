package main

import (
	"errors"
	"os"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
