package engine

import (
	"fmt"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// AdvanceSeason applies recovery loss, stat decay, injury downgrades and
// simulated competitor training to every horse after a race, then clears
// the per-race loan lock. Called once per cycle, after SimulateRace has
// advanced the clock.
func (e *Engine) AdvanceSeason(s *models.GameState) (*models.GameState, []string) {
	next := s.Clone()
	raceJustRun := next.CurrentRace - 1
	var messages []string

	for _, h := range next.AllHorses() {
		e.decayHorse(h, next, raceJustRun, &messages)
	}

	for _, h := range next.Competitors {
		e.simulateAITraining(h, raceJustRun, next.TotalRaces)
	}

	next.HasUsedLoanThisRace = false
	return next, messages
}

// decayHorse is the post-race effect site for fatigue and jockey traits.
func (e *Engine) decayHorse(h *models.Horse, s *models.GameState, raceJustRun int, messages *[]string) {
	recoveryLoss := 10 - h.Endurance/15
	if recoveryLoss < 1 {
		recoveryLoss = 1
	}
	h.Recovery -= recoveryLoss
	if h.Recovery < models.RecoveryMin {
		h.Recovery = models.RecoveryMin
	}

	degradation := 8 - h.Recovery/15
	if degradation < 0 {
		degradation = 0
	}

	lateSeasonPenalty := h.HasTrait(models.TraitOneShotSpecialist) && raceJustRun > 10
	if lateSeasonPenalty {
		degradation *= 2
	}

	if degradation > 0 {
		speedLoss := float64(degradation) * 0.5
		controlLoss := float64(degradation) * 0.7
		enduranceLoss := float64(degradation) * 0.3

		if h.HasTrait(models.TraitSlipperyTactics) {
			speedLoss *= 1.1
		}
		if h.HasTrait(models.TraitExtremeTraining) {
			enduranceLoss *= 1.4
		}

		h.DisplayedSpeed -= int(speedLoss)
		h.Control -= int(controlLoss)
		h.Endurance -= int(enduranceLoss)
	}
	if lateSeasonPenalty {
		h.DisplayedSpeed -= 5
	}

	h.ClampStats()
	h.RecomputeActualSpeed()

	// Scheduled trait unlock from the Extreme Training regimen. The clock
	// has already advanced, so the grant lands once the upcoming race
	// number reaches the scheduled one.
	if h.TraitRevealRace > 0 && s.CurrentRace >= h.TraitRevealRace {
		if granted, ok := e.grantNewPositiveTrait(h); ok {
			*messages = append(*messages,
				fmt.Sprintf("%s's brutal training unlocked a new talent: %s.", h.Name, granted.Name))
		}
		h.TraitRevealRace = 0
	}

	e.downgradeInjury(h, raceJustRun)
}

// downgradeInjury steps an injury down one level per race. A fresh injury
// from the race just run keeps its full severity into the next cycle, so a
// major injury actually costs the horse its next start.
func (e *Engine) downgradeInjury(h *models.Horse, raceJustRun int) {
	if !h.HasInjury || h.InjuredAtRace >= raceJustRun {
		return
	}
	switch h.InjuryType {
	case models.InjuryMajor:
		h.InjuryType = models.InjuryMild
		h.MissNextRace = false
	case models.InjuryMild:
		h.InjuryType = models.InjuryNone
		h.HasInjury = false
	}
}

// simulateAITraining keeps the field competitive: a 70% chance of a small
// boost to one random stat, larger past mid-season.
func (e *Engine) simulateAITraining(h *models.Horse, raceJustRun, totalRaces int) {
	if e.rng.Float64() >= 0.7 {
		return
	}
	boost := 2 + e.rng.Intn(3)
	if raceJustRun > totalRaces/2 {
		boost = 3 + e.rng.Intn(4)
	}
	switch e.rng.Intn(4) {
	case 0:
		h.DisplayedSpeed += boost
	case 1:
		h.Control += boost
	case 2:
		h.Recovery += boost
	case 3:
		h.Endurance += boost
	}
	h.ClampStats()
	h.RecomputeActualSpeed()
}

// grantNewPositiveTrait attaches a random positive standard trait the horse
// does not already own, revealed immediately.
func (e *Engine) grantNewPositiveTrait(h *models.Horse) (models.Trait, bool) {
	var candidates []models.Trait
	for _, t := range positiveStandardTraits() {
		if !h.HasTrait(t.Kind) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return models.Trait{}, false
	}
	t := candidates[e.rng.Intn(len(candidates))]
	h.Attributes = append(h.Attributes, t)
	h.RevealedAttributes = append(h.RevealedAttributes, t)
	return t, true
}
