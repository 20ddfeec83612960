package main

import (
	"github.com/spf13/cobra"

	"github.com/H4wk507/terminal-flappy-bird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

Copy the output to ~/.flappy/configs/flappy.yaml or ./configs/flappy.yaml
and edit it to change the tuning.

Examples:
  flappy config
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
