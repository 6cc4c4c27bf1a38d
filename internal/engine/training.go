package engine

import (
	"errors"
	"fmt"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// ErrUnknownTraining is returned for a training type outside the catalog.
var ErrUnknownTraining = errors.New("unknown training type")

type trainingDelta struct {
	speed     int
	control   int
	recovery  int
	endurance int
}

var trainingDeltas = map[models.TrainingType]trainingDelta{
	models.TrainingGeneral: {speed: 3, control: 2, recovery: -8, endurance: 2},
	models.TrainingSpeed:   {speed: 8, control: -3, recovery: -15, endurance: -3},
	models.TrainingRest:    {speed: -1, control: -1, recovery: 25, endurance: 0},
	models.TrainingSync:    {speed: 0, control: 6, recovery: -5, endurance: 1},
}

// TrainingCost returns the escalating cost of a category given how often it
// has been used this season: floor(base * (1 + used*0.2)). Rest stays free.
func (e *Engine) TrainingCost(t models.TrainingType, used int) int {
	base := e.bal.TrainingBaseCosts[string(t)]
	return int(float64(base) * (1.0 + float64(used)*0.2))
}

// ApplyTraining runs one training session on the player's horse. The cost
// is deducted unconditionally; affordability gating is the caller's
// responsibility. Returns the new state and a display message.
func (e *Engine) ApplyTraining(s *models.GameState, t models.TrainingType) (*models.GameState, string, error) {
	delta, ok := trainingDeltas[t]
	if !ok {
		return s, "", fmt.Errorf("%w: %q", ErrUnknownTraining, t)
	}

	next := s.Clone()
	h := next.PlayerHorse

	cost := e.TrainingCost(t, next.TrainingsUsed[t])
	next.TrainingsUsed[t]++
	next.PlayerMoney -= cost

	if h.HasTrait(models.TraitTrainingResistant) {
		delta = trainingDelta{
			speed:     delta.speed / 2,
			control:   delta.control / 2,
			recovery:  delta.recovery / 2,
			endurance: delta.endurance / 2,
		}
	}

	h.DisplayedSpeed += delta.speed
	h.Control += delta.control
	h.Recovery += delta.recovery
	h.Endurance += delta.endurance
	h.ClampStats()
	h.RecomputeActualSpeed()

	msg := fmt.Sprintf("%s completed %s training (cost %d).", h.Name, t, cost)
	if cost == 0 {
		msg = fmt.Sprintf("%s took a rest day.", h.Name)
	}
	return next, msg, nil
}
