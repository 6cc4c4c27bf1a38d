package engine

import (
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

const (
	oddsFloor   = 1.2
	oddsCeiling = 15.0
)

// OddsStrategy prices a horse against the rest of the field. Two models
// ship with the game; FieldAverageOdds is the default.
type OddsStrategy interface {
	Odds(h *models.Horse, field []*models.Horse) float64
}

// FieldAverageOdds prices on relative effective speed: slower than the
// field average means longer odds, discounted for high control and
// recovery, with a crowd-favorite haircut.
type FieldAverageOdds struct{}

func (FieldAverageOdds) Odds(h *models.Horse, field []*models.Horse) float64 {
	if len(field) == 0 || h.ActualSpeed <= 0 {
		return oddsCeiling
	}
	var sum float64
	for _, f := range field {
		sum += f.ActualSpeed
	}
	avg := sum / float64(len(field))

	odds := (avg / h.ActualSpeed) * 2.0
	odds -= 0.5 * float64(h.Control) / 100.0
	odds -= 0.3 * float64(h.Recovery) / 100.0
	if h.HasTrait(models.TraitCrowdFavorite) {
		odds *= 0.8
	}
	return clampOdds(odds)
}

// RecentFormOdds prices on the average finishing position over the last
// three races, with streak multipliers: a run of podiums shortens the
// price, a run of tail-end finishes lengthens it. Horses without history
// are priced at a neutral book.
type RecentFormOdds struct{}

func (RecentFormOdds) Odds(h *models.Horse, field []*models.Horse) float64 {
	history := h.RaceHistory
	if len(history) == 0 {
		return clampOdds(3.0)
	}
	start := len(history) - 3
	if start < 0 {
		start = 0
	}
	recent := history[start:]

	var sum int
	for _, r := range recent {
		sum += r.Position
	}
	avgPos := float64(sum) / float64(len(recent))

	odds := 1.0 + avgPos*0.35

	if len(recent) == 3 {
		podiums, stragglers := 0, 0
		for _, r := range recent {
			if r.Position <= 3 {
				podiums++
			}
			if r.Position >= 7 {
				stragglers++
			}
		}
		if podiums == 3 {
			odds *= 0.7
		} else if stragglers == 3 {
			odds *= 1.3
		}
	}

	if h.HasTrait(models.TraitCrowdFavorite) {
		odds *= 0.8
	}
	return clampOdds(odds)
}

func clampOdds(o float64) float64 {
	if o < oddsFloor {
		return oddsFloor
	}
	if o > oddsCeiling {
		return oddsCeiling
	}
	return o
}
