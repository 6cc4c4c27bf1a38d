package engine

import (
	"errors"
	"fmt"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// ErrUnknownJockey is returned when a jockey id is not in the roster.
var ErrUnknownJockey = errors.New("unknown jockey")

// Jockey is an archetype applied once at season start. The stat deltas are
// permanent, and the attached trait is always revealed; its ongoing effect
// is consulted by the race, loan, post-race and payout code.
type Jockey struct {
	ID          string
	Name        string
	Description string

	SpeedDelta     int
	ControlDelta   int
	RecoveryDelta  int
	EnduranceDelta int

	Trait models.TraitKind

	// SchedulesReveal marks the archetype that sets traitRevealRace to a
	// random race in [4,8].
	SchedulesReveal bool
}

// Jockeys is the fixed roster of selectable archetypes.
var Jockeys = []Jockey{
	{
		ID: "iron_will", Name: "Mara \"Iron Will\" Kovacs",
		Description:    "Slow and careful. Your horse will never be injured.",
		SpeedDelta:     -7,
		ControlDelta:   10,
		Trait:          models.TraitUninjurable,
	},
	{
		ID: "steady_hand", Name: "Elio the Steady Hand",
		Description:    "Trades raw pace for total command of the track.",
		SpeedDelta:     -5,
		ControlDelta:   15,
		RecoveryDelta:  10,
		EnduranceDelta: -5,
		Trait:          models.TraitCrowdFavorite,
	},
	{
		ID: "daredevil", Name: "Rix Daredevil Quinn",
		Description:    "Pushes hard for bursts of speed, injuries be damned.",
		SpeedDelta:     10,
		ControlDelta:   -10,
		RecoveryDelta:  -5,
		Trait:          models.TraitRiskTaker,
	},
	{
		ID: "one_shot", Name: "Old Ferro",
		Description:    "One big race left in him. Race 10 is everything.",
		SpeedDelta:     5,
		EnduranceDelta: -3,
		Trait:          models.TraitOneShotSpecialist,
	},
	{
		ID: "slippery", Name: "Nina the Eel",
		Description:    "Finds gaps nobody else sees. Sometimes after the line.",
		ControlDelta:   5,
		RecoveryDelta:  3,
		Trait:          models.TraitSlipperyTactics,
	},
	{
		ID: "drillmaster", Name: "Sergeant Vex",
		Description:     "A brutal regimen that eventually unlocks hidden talent.",
		SpeedDelta:      8,
		RecoveryDelta:   -5,
		EnduranceDelta:  -5,
		Trait:           models.TraitExtremeTraining,
		SchedulesReveal: true,
	},
	{
		ID: "fixer", Name: "The Fixer",
		Description:    "Knows people. Loans cost more, but losing can pay.",
		SpeedDelta:     5,
		ControlDelta:   -3,
		Trait:          models.TraitUnderhandedTactics,
	},
	{
		ID: "celebrity", Name: "Cassia Starling",
		Description:    "A household name. Appearance money every race, smaller purses.",
		ControlDelta:   3,
		RecoveryDelta:  3,
		Trait:          models.TraitCelebrityStatus,
	},
}

// JockeyByID looks up an archetype by id.
func JockeyByID(id string) (Jockey, bool) {
	for _, j := range Jockeys {
		if j.ID == id {
			return j, true
		}
	}
	return Jockey{}, false
}

// ApplyJockey mutates the horse in place with the archetype's one-time
// adjustment. The season controller guarantees a single application.
func (e *Engine) ApplyJockey(h *models.Horse, jockeyID string) error {
	j, ok := JockeyByID(jockeyID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownJockey, jockeyID)
	}

	h.DisplayedSpeed += j.SpeedDelta
	h.Control += j.ControlDelta
	h.Recovery += j.RecoveryDelta
	h.Endurance += j.EnduranceDelta
	h.ClampStats()
	h.RecomputeActualSpeed()

	trait, ok := jockeyTraits[j.Trait]
	if !ok {
		return fmt.Errorf("%w: %q has no trait entry", ErrUnknownJockey, jockeyID)
	}
	if !h.HasTrait(trait.Kind) {
		h.Attributes = append(h.Attributes, trait)
	}
	if !h.HasRevealed(trait.Kind) {
		h.RevealedAttributes = append(h.RevealedAttributes, trait)
	}

	if j.SchedulesReveal {
		h.TraitRevealRace = 4 + e.rng.Intn(5)
	}
	return nil
}
