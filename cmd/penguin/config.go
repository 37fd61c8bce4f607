package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-flap/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the config
file search and the difficulty preset. Use it as a starting point for a
custom --config file.

Examples:
  penguin config > my-penguin.yaml
  penguin config --difficulty hard
  penguin config --defaults`,
	Run: runConfig,
}

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := applyGameFlags()
	if err != nil {
		fatal("%v", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fatal("cannot encode config: %v", err)
	}
	os.Stdout.Write(out)
}
