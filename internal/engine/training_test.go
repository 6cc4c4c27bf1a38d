package engine

import (
	"testing"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

func TestSpeedTrainingScenario(t *testing.T) {
	e := testEngine(1)
	s := testState(0)

	next, _, err := e.ApplyTraining(s, models.TrainingSpeed)
	if err != nil {
		t.Fatalf("ApplyTraining failed: %v", err)
	}

	h := next.PlayerHorse
	if h.DisplayedSpeed != 58 {
		t.Errorf("Expected displayed speed 58, got %d", h.DisplayedSpeed)
	}
	if h.Control != 47 {
		t.Errorf("Expected control 47, got %d", h.Control)
	}
	if h.Endurance != 47 {
		t.Errorf("Expected endurance 47, got %d", h.Endurance)
	}
	if h.Recovery != 35 {
		t.Errorf("Expected recovery 35, got %d", h.Recovery)
	}
	if got := 2000 - next.PlayerMoney; got != 800 {
		t.Errorf("Expected first speed training to cost 800, got %d", got)
	}

	wantActual := 58.0 * (0.8 + 0.2*47.0/100.0)
	if h.ActualSpeed != wantActual {
		t.Errorf("Expected actual speed %v, got %v", wantActual, h.ActualSpeed)
	}
}

func TestTrainingCostMonotonic(t *testing.T) {
	e := testEngine(1)
	for _, tt := range []models.TrainingType{models.TrainingGeneral, models.TrainingSpeed, models.TrainingSync} {
		for used := 0; used < 6; used++ {
			lo, hi := e.TrainingCost(tt, used), e.TrainingCost(tt, used+1)
			if hi <= lo {
				t.Errorf("%s: cost(%d)=%d not greater than cost(%d)=%d", tt, used+1, hi, used, lo)
			}
		}
	}
	for used := 0; used < 6; used++ {
		if cost := e.TrainingCost(models.TrainingRest, used); cost != 0 {
			t.Errorf("Rest should always be free, got %d at use %d", cost, used)
		}
	}
}

func TestTrainingResistantHalvesDeltas(t *testing.T) {
	e := testEngine(1)
	s := testState(0)
	s.PlayerHorse.Attributes = append(s.PlayerHorse.Attributes, models.Trait{
		Kind: models.TraitTrainingResistant, Name: "Training Resistant",
		Polarity: models.PolarityNegative,
	})

	next, _, err := e.ApplyTraining(s, models.TrainingSpeed)
	if err != nil {
		t.Fatalf("ApplyTraining failed: %v", err)
	}

	h := next.PlayerHorse
	if h.DisplayedSpeed != 54 {
		t.Errorf("Expected displayed speed 54 (+8 halved), got %d", h.DisplayedSpeed)
	}
	if h.Recovery != 43 {
		t.Errorf("Expected recovery 43 (-15 halved to -7), got %d", h.Recovery)
	}
}

func TestTrainingDoesNotMutateInput(t *testing.T) {
	e := testEngine(1)
	s := testState(0)

	if _, _, err := e.ApplyTraining(s, models.TrainingSpeed); err != nil {
		t.Fatalf("ApplyTraining failed: %v", err)
	}

	if s.PlayerHorse.DisplayedSpeed != 50 || s.PlayerMoney != 2000 {
		t.Errorf("Input state was mutated: speed=%d money=%d",
			s.PlayerHorse.DisplayedSpeed, s.PlayerMoney)
	}
	if s.TrainingsUsed[models.TrainingSpeed] != 0 {
		t.Errorf("Input training counter was mutated")
	}
}

func TestUnknownTrainingRejected(t *testing.T) {
	e := testEngine(1)
	s := testState(0)
	if _, _, err := e.ApplyTraining(s, models.TrainingType("yoga")); err == nil {
		t.Fatal("Expected error for unknown training type")
	}
}
