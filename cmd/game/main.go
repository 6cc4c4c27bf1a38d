package main

import (
	"fmt"
	"os"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/config"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/engine"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/logger"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/tui"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Debug, "game.log")
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	bal, err := config.LoadBalance(cfg.BalanceFile)
	if err != nil {
		fmt.Printf("Error loading balance file: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(cfg.Seed, bal)
	ctrl := engine.NewController(eng)

	if err := tui.Run(ctrl, log); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
