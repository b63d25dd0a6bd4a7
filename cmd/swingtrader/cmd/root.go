package cmd

import (
	"log"
	"os"

	"github.com/rustyeddy/swingtrader/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swingtrader",
	Short: "Replay daily stock history and trade it with hindsight",
	Long: `Swingtrader replays a directory of daily stock histories and builds the
sequence of buy-low / sell-high and intraday buy-low / sell-close trades
that grows a small starting balance.

It provides tools for:
  - Running the simulation in small or large mode
  - Writing the transaction sequence and valuation history
  - Journaling runs to SQLite and org-mode
  - Charting the valuation history`,
	SilenceUsage: true,
}

var configPath string

// stdout carries load messages and the per-transaction log.
var stdout = log.New(os.Stdout, "", 0)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "", "config file (YAML or JSON); defaults apply when empty")
}

// loadConfig reads --config, or returns the defaults when none was given.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(configPath)
}
