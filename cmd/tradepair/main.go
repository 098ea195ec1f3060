package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cli "tradepair-network/cmd/cli"
	config "tradepair-network/cmd/config"
	core "tradepair-network/core"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig(os.Getenv("TRADEPAIR_ENV"))

	logger := log.New()
	if lvl, err := log.ParseLevel(config.AppConfig.Logging.Level); err == nil {
		logger.SetLevel(lvl)
	}

	store := core.NewMemoryState()
	ledger := core.NewMemoryLedger()
	runtime := core.NewSimpleRuntime(core.Hash{})
	sink := core.NewEventLog(logger)
	core.InitEngine(store, ledger, runtime, sink, logger)

	rootCmd := &cobra.Command{Use: "tradepair"}
	rootCmd.AddCommand(cli.PairCmd)
	rootCmd.AddCommand(cli.LiquidityCmd)
	rootCmd.AddCommand(cli.SwapCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
