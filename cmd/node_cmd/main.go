package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mosaicdao/mosaic-node/cmd"
	"github.com/mosaicdao/mosaic-node/config"
	"github.com/mosaicdao/mosaic-node/logconfig"
)

const (
	ENV_LOG_LEVEL = "MOSAIC_LOG_LEVEL"
)

func main() {
	// Tool to read environment variables
	viper.AutomaticEnv()

	// Pick the logger preset ("debug" or production).
	logconfig.Select(viper.GetString(ENV_LOG_LEVEL))

	// Make the configuration (falls back to defaults, never fails today).
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Printf("Error loading mosaic node configuration: %s\n", err)
		os.Exit(1)
	}

	// Run the single pass and surface any chain error as a non-zero exit.
	if err := cmd.StartNode(cfg); err != nil {
		os.Exit(1)
	}
}
