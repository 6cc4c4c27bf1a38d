package engine

import (
	"errors"
	"fmt"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// ErrUnknownHorse is returned when a horse id is not in the current roster.
var ErrUnknownHorse = errors.New("unknown horse")

// ScoutCompetitor refreshes the target's scouted stat snapshot and stamps
// the observation race. Deep scouting additionally reveals one hidden trait
// at random; if every trait is already known the fee is still charged and
// nothing new is learned.
func (e *Engine) ScoutCompetitor(s *models.GameState, horseID string, depth models.ScoutDepth) (*models.GameState, string, error) {
	next := s.Clone()
	h := next.HorseByID(horseID)
	if h == nil {
		return s, "", fmt.Errorf("%w: %q", ErrUnknownHorse, horseID)
	}

	fee := e.bal.ScoutBasicCost
	if depth == models.ScoutDeep {
		fee = e.bal.ScoutDeepCost
	}
	next.PlayerMoney -= fee

	snap := h.Snapshot()
	h.ScoutedStats = &snap
	h.LastUpdated = next.CurrentRace

	msg := fmt.Sprintf("Fresh report on %s.", h.Name)
	if depth == models.ScoutDeep {
		if revealed, ok := e.revealRandomTrait(h); ok {
			msg = fmt.Sprintf("Fresh report on %s. Discovered trait: %s.", h.Name, revealed.Name)
		} else {
			msg = fmt.Sprintf("Fresh report on %s. No new traits discovered.", h.Name)
		}
	}
	return next, msg, nil
}

// ScoutOwn reveals one hidden trait on the player's own horse. Stats need
// no refresh since the player always sees true values; this is the only
// way to learn the horse's hidden traits.
func (e *Engine) ScoutOwn(s *models.GameState) (*models.GameState, string, error) {
	next := s.Clone()
	h := next.PlayerHorse
	next.PlayerMoney -= e.bal.ScoutOwnCost

	if revealed, ok := e.revealRandomTrait(h); ok {
		return next, fmt.Sprintf("Your trainer noticed something: %s has %s.", h.Name, revealed.Name), nil
	}
	return next, "No new traits discovered.", nil
}

func (e *Engine) revealRandomTrait(h *models.Horse) (models.Trait, bool) {
	hidden := h.HiddenTraits()
	if len(hidden) == 0 {
		return models.Trait{}, false
	}
	t := hidden[e.rng.Intn(len(hidden))]
	h.RevealedAttributes = append(h.RevealedAttributes, t)
	return t, true
}
