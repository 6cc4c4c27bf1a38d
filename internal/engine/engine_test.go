package engine

import (
	"fmt"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/config"
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

func testEngine(seed int64) *Engine {
	return New(seed, config.DefaultBalance())
}

// testHorse builds a flat 50-stat horse for predictable arithmetic.
func testHorse(id string) *models.Horse {
	h := &models.Horse{
		ID:             id,
		Name:           id,
		DisplayedSpeed: 50,
		Control:        50,
		Recovery:       50,
		Endurance:      50,
		InjuryType:     models.InjuryNone,
	}
	h.RecomputeActualSpeed()
	h.InitialStats = h.Snapshot()
	return h
}

func testState(competitors int) *models.GameState {
	s := &models.GameState{
		PlayerName:    "Tester",
		PlayerMoney:   2000,
		SeasonGoal:    12000,
		CurrentRace:   1,
		TotalRaces:    15,
		PlayerHorse:   testHorse("player"),
		TrainingsUsed: make(map[models.TrainingType]int),
	}
	for i := 0; i < competitors; i++ {
		s.Competitors = append(s.Competitors, testHorse(fmt.Sprintf("comp-%d", i)))
	}
	return s
}

func withTrait(h *models.Horse, kind models.TraitKind) *models.Horse {
	h.Attributes = append(h.Attributes, models.Trait{
		Kind: kind, Name: string(kind), Polarity: models.PolarityPositive,
	})
	return h
}
