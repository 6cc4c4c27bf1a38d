// Headless season driver: plays a full season with a simple automated
// strategy and logs the ledger. Useful for balance tuning without the TUI.
package main

import (
	"errors"
	"log"

	"go.uber.org/zap"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/config"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/engine"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/logger"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

func main() {
	cfg := config.Load()
	zlog, err := logger.New(true, "")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	bal, err := config.LoadBalance(cfg.BalanceFile)
	if err != nil {
		log.Fatalf("Failed to load balance: %v", err)
	}

	ctrl := engine.NewController(engine.New(cfg.Seed, bal))
	if err := ctrl.Start("AutoPlayer", "daredevil"); err != nil {
		log.Fatalf("Failed to start season: %v", err)
	}
	zlog.Info("season started", zap.Int64("seed", cfg.Seed))

	for cycle := 1; ctrl.Phase() != engine.PhaseSeasonOver; cycle++ {
		state := ctrl.Snapshot()
		zlog.Info("cycle",
			zap.Int("race", state.CurrentRace),
			zap.Int("money", state.PlayerMoney),
			zap.Int("debt", state.LoanAmount))

		// Accept free offers, decline everything else.
		if ev, _, awaiting := ctrl.PendingEvent(); awaiting {
			if ev.Cost == 0 {
				if msg, err := ctrl.AcceptEvent(); err == nil {
					zlog.Info("event accepted", zap.String("event", ev.ID), zap.String("result", msg))
				}
			} else {
				ctrl.DismissEvent()
			}
		}

		// Rest when worn down, otherwise push speed while money allows.
		h := state.PlayerHorse
		switch {
		case h.Recovery < 35:
			ctrl.SelectTraining(models.TrainingRest)
		case state.PlayerMoney > 2500:
			ctrl.SelectTraining(models.TrainingSpeed)
		}

		// Bet modestly on the shortest-odds competitor.
		if state.PlayerMoney > 800 {
			bestID, bestOdds := "", 100.0
			for _, c := range state.Competitors {
				if c.MissNextRace {
					continue
				}
				if o := ctrl.Odds(c.ID); o < bestOdds {
					bestID, bestOdds = c.ID, o
				}
			}
			if bestID != "" {
				if err := ctrl.PlaceBet(bestID, 200); err == nil {
					zlog.Info("bet placed", zap.String("horse", bestID), zap.Float64("odds", bestOdds))
				}
			}
		}

		if state.PlayerMoney < 600 {
			if msg, err := ctrl.TakeLoan(); err == nil {
				zlog.Info("loan", zap.String("result", msg))
			}
		}

		report, err := ctrl.StartRace(true)
		if err != nil {
			if errors.Is(err, engine.ErrWrongPhase) {
				break
			}
			log.Fatalf("Race failed: %v", err)
		}
		for _, res := range report.Results {
			if res.Position <= 3 {
				zlog.Info("podium",
					zap.Int("position", res.Position),
					zap.String("horse", res.HorseName),
					zap.Float64("performance", res.FinalSpeed))
			}
		}
		for _, msg := range report.Messages {
			zlog.Debug("race message", zap.String("msg", msg))
		}

		if ctrl.Phase() == engine.PhaseShowingResults {
			if err := ctrl.ContinueSeason(); err != nil {
				log.Fatalf("Failed to continue: %v", err)
			}
		}
	}

	sum := ctrl.Summary()
	zlog.Info("season over",
		zap.Bool("won", sum.Won),
		zap.Bool("bankrupt", sum.Bankrupt),
		zap.Int("net_worth", sum.NetWorth),
		zap.Int("goal", sum.Goal),
		zap.Int("loan_repaid", sum.LoanRepaid))
}
