package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a flight would use, after the search path,
--config and --difficulty have been applied. The output is valid input for
--config.

Search order:
  --config path -> ~/.lander/configs/lander.yaml -> ./configs/lander.yaml -> built-in

Examples:
  lander config
  lander config --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
