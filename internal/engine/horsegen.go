package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

var nameAdjectives = []string{
	"Midnight", "Thunder", "Silver", "Crimson", "Golden", "Shadow",
	"Northern", "Wild", "Iron", "Velvet", "Stormy", "Lucky",
	"Blazing", "Silent", "Copper", "Royal", "Dusty", "Winter",
}

var nameNouns = []string{
	"Arrow", "Whisper", "Comet", "Dancer", "Baron", "Mirage",
	"Ember", "Tempest", "Drifter", "Legend", "Gallop", "Fortune",
	"Spirit", "Runner", "Monarch", "Breeze", "Strider", "Flame",
}

// Stat budget and weight tuning. The speed weight is sampled from a
// narrower, lower band so raw speed stays scarce relative to the
// supporting stats.
const (
	playerBudgetMin     = 295
	playerBudgetMax     = 315
	competitorBudgetMin = 280
	competitorBudgetMax = 330

	rareTraitChance = 0.01
)

// GenerateHorse creates a horse from weighted-random distributions. Player
// horses draw from a tighter budget and always receive one rare trait.
func (e *Engine) GenerateHorse(isPlayer bool) *models.Horse {
	budget := e.drawBudget(isPlayer)

	speedW := 0.6 + e.rng.Float64()*0.3
	controlW := 0.8 + e.rng.Float64()*0.6
	recoveryW := 0.8 + e.rng.Float64()*0.6
	enduranceW := 0.8 + e.rng.Float64()*0.6
	sum := speedW + controlW + recoveryW + enduranceW

	share := func(w float64) float64 { return float64(budget) * w / sum }

	h := &models.Horse{
		ID:             uuid.NewString(),
		Name:           e.generateName(),
		DisplayedSpeed: clamp(int(share(speedW)*0.95)+12, models.SpeedGenMin, models.SpeedGenMax),
		Control:        clamp(int(share(controlW)*0.9)+14, models.OtherGenMin, models.OtherGenMax),
		Recovery:       clamp(int(share(recoveryW)*0.9)+14, models.OtherGenMin, models.OtherGenMax),
		Endurance:      clamp(int(share(enduranceW)*0.9)+14, models.OtherGenMin, models.OtherGenMax),
		InjuryType:     models.InjuryNone,
	}
	h.RecomputeActualSpeed()
	h.InitialStats = h.Snapshot()

	h.Attributes = e.drawTraits()
	if isPlayer || e.rng.Float64() < rareTraitChance {
		rare := rareTraits[e.rng.Intn(len(rareTraits))]
		if len(h.Attributes) > 0 {
			h.Attributes[e.rng.Intn(len(h.Attributes))] = rare
		} else {
			h.Attributes = append(h.Attributes, rare)
		}
	}

	// All traits start hidden, the player's own included; scouting is the
	// only way to surface them.
	h.RevealedAttributes = nil
	return h
}

func (e *Engine) drawBudget(isPlayer bool) int {
	if isPlayer {
		return playerBudgetMin + e.rng.Intn(playerBudgetMax-playerBudgetMin+1)
	}
	return competitorBudgetMin + e.rng.Intn(competitorBudgetMax-competitorBudgetMin+1)
}

// drawTraits rolls the trait count (5% none, 50% one, 30% two, 13% three,
// 2% four) and fills the slots without replacement. Three or more traits
// guarantee at least one negative; once a negative is placed the remaining
// slots draw from the positive-only pool.
func (e *Engine) drawTraits() []models.Trait {
	roll := e.rng.Intn(100)
	var count int
	switch {
	case roll < 5:
		count = 0
	case roll < 55:
		count = 1
	case roll < 85:
		count = 2
	case roll < 98:
		count = 3
	default:
		count = 4
	}
	if count == 0 {
		return nil
	}

	owned := make(map[models.TraitKind]bool, count)
	var out []models.Trait
	negativePlaced := false

	for len(out) < count {
		mustForceNegative := count >= 3 && !negativePlaced && len(out) == count-1

		var pool []models.Trait
		switch {
		case mustForceNegative:
			pool = negativeStandardTraits()
		case negativePlaced:
			pool = positiveStandardTraits()
		default:
			pool = standardTraits
		}

		pool = withoutOwned(pool, owned)
		if len(pool) == 0 {
			break
		}
		t := pool[e.rng.Intn(len(pool))]
		owned[t.Kind] = true
		out = append(out, t)
		if t.Polarity == models.PolarityNegative {
			negativePlaced = true
		}
	}
	return out
}

func withoutOwned(pool []models.Trait, owned map[models.TraitKind]bool) []models.Trait {
	var out []models.Trait
	for _, t := range pool {
		if !owned[t.Kind] {
			out = append(out, t)
		}
	}
	return out
}

func (e *Engine) generateName() string {
	adj := nameAdjectives[e.rng.Intn(len(nameAdjectives))]
	noun := nameNouns[e.rng.Intn(len(nameNouns))]
	return fmt.Sprintf("%s %s", adj, noun)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
