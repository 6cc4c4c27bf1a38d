package models

import "testing"

func sampleHorse() *Horse {
	h := &Horse{
		ID:             "h1",
		Name:           "Midnight Arrow",
		DisplayedSpeed: 60,
		Control:        55,
		Recovery:       50,
		Endurance:      70,
		InjuryType:     InjuryNone,
		Attributes: []Trait{
			{Kind: TraitSprinter, Name: "Sprinter", Polarity: PolarityPositive},
			{Kind: TraitFragile, Name: "Fragile", Polarity: PolarityNegative},
		},
		RaceHistory: []FinishRecord{{Position: 3, RaceNumber: 1}},
	}
	h.RecomputeActualSpeed()
	h.InitialStats = h.Snapshot()
	return h
}

func TestRecomputeActualSpeed(t *testing.T) {
	h := sampleHorse()
	// 60 * (0.8 + 0.2*70/100) = 60 * 0.94
	if want := 60 * 0.94; h.ActualSpeed != want {
		t.Errorf("Expected actual speed %v, got %v", want, h.ActualSpeed)
	}

	h.Endurance = 100
	h.RecomputeActualSpeed()
	if h.ActualSpeed != 60 {
		t.Errorf("Full endurance should make actual equal displayed, got %v", h.ActualSpeed)
	}
}

func TestClampStats(t *testing.T) {
	h := &Horse{DisplayedSpeed: 2, Control: -5, Recovery: 150, Endurance: 101}
	h.ClampStats()

	if h.DisplayedSpeed != SpeedFloor {
		t.Errorf("Speed must clamp to its floor, got %d", h.DisplayedSpeed)
	}
	if h.Control != StatFloor {
		t.Errorf("Control must clamp to the stat floor, got %d", h.Control)
	}
	if h.Recovery != StatCeiling || h.Endurance != StatCeiling {
		t.Errorf("Ceiling breach: recovery=%d endurance=%d", h.Recovery, h.Endurance)
	}
}

func TestTraitVisibility(t *testing.T) {
	h := sampleHorse()

	if !h.HasTrait(TraitSprinter) || h.HasTrait(TraitIronHorse) {
		t.Errorf("HasTrait lookup wrong")
	}
	if h.HasRevealed(TraitSprinter) {
		t.Errorf("Nothing is revealed yet")
	}
	if got := len(h.HiddenTraits()); got != 2 {
		t.Errorf("Expected 2 hidden traits, got %d", got)
	}

	h.RevealedAttributes = append(h.RevealedAttributes, h.Attributes[0])
	if !h.HasRevealed(TraitSprinter) {
		t.Errorf("Revealed trait not reported")
	}
	if got := len(h.HiddenTraits()); got != 1 {
		t.Errorf("Expected 1 hidden trait after reveal, got %d", got)
	}
}

func TestHorseCloneIsDeep(t *testing.T) {
	h := sampleHorse()
	snap := h.Snapshot()
	h.ScoutedStats = &snap

	c := h.Clone()
	c.Attributes[0].Kind = TraitMudRunner
	c.RaceHistory[0].Position = 9
	c.ScoutedStats.DisplayedSpeed = 1
	c.DisplayedSpeed = 99

	if h.Attributes[0].Kind != TraitSprinter {
		t.Errorf("Clone shares the attributes slice")
	}
	if h.RaceHistory[0].Position != 3 {
		t.Errorf("Clone shares the race history slice")
	}
	if h.ScoutedStats.DisplayedSpeed != 60 {
		t.Errorf("Clone shares the scouted snapshot")
	}
	if h.DisplayedSpeed != 60 {
		t.Errorf("Clone shares scalar fields")
	}
}

func TestGameStateCloneIsDeep(t *testing.T) {
	s := &GameState{
		PlayerName:    "Tester",
		PlayerMoney:   2000,
		PlayerHorse:   sampleHorse(),
		Competitors:   []*Horse{sampleHorse()},
		RaceResults:   []RaceResult{{HorseID: "h1", Position: 1}},
		LastBet:       &Bet{HorseID: "h1", Amount: 100},
		TrainingsUsed: map[TrainingType]int{TrainingSpeed: 2},
	}
	s.Competitors[0].ID = "c1"

	c := s.Clone()
	c.PlayerHorse.DisplayedSpeed = 1
	c.Competitors[0].Name = "Changed"
	c.RaceResults[0].Position = 5
	c.LastBet.Amount = 999
	c.TrainingsUsed[TrainingSpeed] = 9

	if s.PlayerHorse.DisplayedSpeed != 60 {
		t.Errorf("Clone shares the player horse")
	}
	if s.Competitors[0].Name == "Changed" {
		t.Errorf("Clone shares the competitor slice")
	}
	if s.RaceResults[0].Position != 1 {
		t.Errorf("Clone shares the results slice")
	}
	if s.LastBet.Amount != 100 {
		t.Errorf("Clone shares the bet")
	}
	if s.TrainingsUsed[TrainingSpeed] != 2 {
		t.Errorf("Clone shares the trainings map")
	}
}

func TestStateLookups(t *testing.T) {
	s := &GameState{
		PlayerHorse: sampleHorse(),
		Competitors: []*Horse{{ID: "c1"}, {ID: "c2", MissNextRace: true}},
	}

	if s.HorseByID("h1") != s.PlayerHorse {
		t.Errorf("HorseByID must find the player horse")
	}
	if s.HorseByID("c2") != s.Competitors[1] {
		t.Errorf("HorseByID must find competitors")
	}
	if s.HorseByID("ghost") != nil {
		t.Errorf("Unknown id must return nil")
	}

	if got := len(s.AllHorses()); got != 3 {
		t.Errorf("Expected 3 horses, got %d", got)
	}
	if got := len(s.ActiveHorses()); got != 2 {
		t.Errorf("Sidelined horses must be excluded, got %d", got)
	}
}

func TestMostUsedTraining(t *testing.T) {
	s := &GameState{TrainingsUsed: map[TrainingType]int{}}
	if got := s.MostUsedTraining(); got != "" {
		t.Errorf("No training yet must return empty, got %q", got)
	}

	s.TrainingsUsed[TrainingSpeed] = 3
	s.TrainingsUsed[TrainingRest] = 1
	if got := s.MostUsedTraining(); got != TrainingSpeed {
		t.Errorf("Expected speed, got %q", got)
	}
}
