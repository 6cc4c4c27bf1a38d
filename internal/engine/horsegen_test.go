package engine

import (
	"strings"
	"testing"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

func TestGeneratedHorsesStayInBounds(t *testing.T) {
	e := testEngine(17)
	for i := 0; i < 200; i++ {
		h := e.GenerateHorse(i%2 == 0)

		if h.DisplayedSpeed < models.SpeedGenMin || h.DisplayedSpeed > models.SpeedGenMax {
			t.Fatalf("Speed out of generation bounds: %d", h.DisplayedSpeed)
		}
		for name, v := range map[string]int{
			"control": h.Control, "recovery": h.Recovery, "endurance": h.Endurance,
		} {
			if v < models.OtherGenMin || v > models.OtherGenMax {
				t.Fatalf("%s out of generation bounds: %d", name, v)
			}
		}

		wantActual := float64(h.DisplayedSpeed) * (0.8 + 0.2*float64(h.Endurance)/100.0)
		if h.ActualSpeed != wantActual {
			t.Fatalf("Actual speed not derived from formula: want %v got %v", wantActual, h.ActualSpeed)
		}
		if len(h.Attributes) > 4 {
			t.Fatalf("Too many traits: %d", len(h.Attributes))
		}
		if len(h.RevealedAttributes) != 0 {
			t.Fatalf("Freshly generated horses must have no revealed traits")
		}
		if h.ID == "" || h.Name == "" {
			t.Fatalf("Missing identity: id=%q name=%q", h.ID, h.Name)
		}
		if h.InitialStats != h.Snapshot() {
			t.Fatalf("Initial stat snapshot must match creation stats")
		}
	}
}

func TestPlayerAlwaysGetsRareTrait(t *testing.T) {
	e := testEngine(23)
	rareKinds := map[models.TraitKind]bool{
		models.TraitComebackKing:  true,
		models.TraitMiracleHealer: true,
		models.TraitLightningBolt: true,
	}

	for i := 0; i < 50; i++ {
		h := e.GenerateHorse(true)
		found := false
		for _, tr := range h.Attributes {
			if rareKinds[tr.Kind] {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Player horse %d missing its rare trait: %+v", i, h.Attributes)
		}
	}
}

func TestDrawTraitsForcesNegativeAtThreePlus(t *testing.T) {
	e := testEngine(31)
	for i := 0; i < 500; i++ {
		traits := e.drawTraits()
		if len(traits) < 3 {
			continue
		}
		negatives := 0
		seen := map[models.TraitKind]bool{}
		for _, tr := range traits {
			if tr.Polarity == models.PolarityNegative {
				negatives++
			}
			if seen[tr.Kind] {
				t.Fatalf("Duplicate trait drawn: %s", tr.Kind)
			}
			seen[tr.Kind] = true
		}
		if negatives == 0 {
			t.Fatalf("Three or more traits require at least one negative: %+v", traits)
		}
		if negatives > 1 {
			t.Fatalf("Only one negative should be placed per draw: %+v", traits)
		}
	}
}

func TestGeneratedNamesHaveTwoParts(t *testing.T) {
	e := testEngine(3)
	for i := 0; i < 20; i++ {
		name := e.generateName()
		if len(strings.Fields(name)) != 2 {
			t.Errorf("Expected a two-part name, got %q", name)
		}
	}
}
