package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// RaceReport is the structured outcome of one simulated race, returned to
// the caller instead of being pushed at the presentation layer.
type RaceReport struct {
	Results    []models.RaceResult
	Messages   []string
	BetPayout  int
	PrizeMoney int
}

var standardFlavorEvents = []string{
	"stumbled at the gate",
	"got boxed in on the turn",
	"found a gap on the rail",
	"surged in the final stretch",
	"drifted wide",
}

var rareFlavorEvents = []string{
	"caught in a collision",
	"spooked by the crowd",
}

// raceContext carries field-wide values the trait modifiers consult.
type raceContext struct {
	currentRace   int
	totalRaces    int
	top3AvgSpeed  float64
	displayedRank map[string]int
}

// runner is the working copy of a horse's stats for one race. Trait
// modifiers mutate the runner, never the horse (injury state excepted).
type runner struct {
	horse      *models.Horse
	speed      float64
	control    float64
	recovery   float64
	multiplier float64
	events     []string
	final      float64
}

// SimulateRace computes every active horse's performance, ranks the field,
// resolves the bet and prize money, and advances the season clock. The
// input state is never mutated.
func (e *Engine) SimulateRace(s *models.GameState) (*models.GameState, *RaceReport) {
	next := s.Clone()
	report := &RaceReport{}

	active := next.ActiveHorses()
	ctx := e.buildRaceContext(next, active)

	// Odds are priced against the pre-race field, before any working-copy
	// adjustments.
	var betOdds float64
	if next.LastBet != nil {
		if betHorse := findHorse(active, next.LastBet.HorseID); betHorse != nil {
			betOdds = e.odds.Odds(betHorse, active)
		}
	}

	runners := make([]*runner, 0, len(active))
	for _, h := range active {
		runners = append(runners, e.runHorse(h, ctx))
	}

	e.rankRunners(runners)
	e.applySlipperySwap(next, runners, report)

	results := make([]models.RaceResult, len(runners))
	for i, r := range runners {
		results[i] = models.RaceResult{
			HorseID:    r.horse.ID,
			HorseName:  r.horse.Name,
			FinalSpeed: r.final,
			Position:   i + 1,
			RaceEvents: r.events,
		}
		r.horse.RaceHistory = append(r.horse.RaceHistory, models.FinishRecord{
			Position:   i + 1,
			RaceNumber: next.CurrentRace,
		})
	}
	next.RaceResults = results

	e.resolveBet(next, results, betOdds, report)
	e.resolvePrizes(next, results, report)

	next.CurrentRace++
	next.LastBet = nil
	return next, report
}

func (e *Engine) buildRaceContext(s *models.GameState, active []*models.Horse) raceContext {
	ctx := raceContext{
		currentRace:   s.CurrentRace,
		totalRaces:    s.TotalRaces,
		displayedRank: make(map[string]int, len(active)),
	}

	byDisplayed := append([]*models.Horse(nil), active...)
	sort.SliceStable(byDisplayed, func(i, j int) bool {
		return byDisplayed[i].DisplayedSpeed > byDisplayed[j].DisplayedSpeed
	})
	for i, h := range byDisplayed {
		ctx.displayedRank[h.ID] = i + 1
	}

	byActual := append([]*models.Horse(nil), active...)
	sort.SliceStable(byActual, func(i, j int) bool {
		return byActual[i].ActualSpeed > byActual[j].ActualSpeed
	})
	top := byActual
	if len(top) > 3 {
		top = top[:3]
	}
	var sum float64
	for _, h := range top {
		sum += h.ActualSpeed
	}
	if len(top) > 0 {
		ctx.top3AvgSpeed = sum / float64(len(top))
	}
	return ctx
}

// runHorse executes steps 1-7 of the per-horse performance pipeline.
func (e *Engine) runHorse(h *models.Horse, ctx raceContext) *runner {
	r := &runner{
		horse:      h,
		speed:      h.ActualSpeed,
		control:    float64(h.Control),
		recovery:   float64(h.Recovery),
		multiplier: 1.0,
	}

	// Trait modifiers run in trait list order.
	for _, t := range h.Attributes {
		e.applyRaceTrait(r, t, ctx)
	}

	uninjurable := h.HasTrait(models.TraitUninjurable)

	// Carry-over penalty from an existing injury.
	if h.HasInjury && !uninjurable {
		switch h.InjuryType {
		case models.InjuryMild:
			r.multiplier *= 0.7
		case models.InjuryMajor:
			r.multiplier *= 0.5
		}
	}

	minSpeed := r.speed - (60.0 - r.control/2.0) + r.recovery/10.0
	maxSpeed := r.speed + r.control/10.0
	if minSpeed < 10 {
		minSpeed = 10
	}
	if maxSpeed < minSpeed+1 {
		maxSpeed = minSpeed + 1
	}

	if !uninjurable {
		roll := e.rng.Float64() * 100.0
		switch injuryOutcome(roll, h) {
		case models.InjuryMajor:
			h.HasInjury = true
			h.InjuryType = models.InjuryMajor
			h.MissNextRace = true
			h.InjuredAtRace = ctx.currentRace
			r.multiplier *= 0.5
			r.events = append(r.events, "suffered a major injury")
		case models.InjuryMild:
			h.HasInjury = true
			h.InjuryType = models.InjuryMild
			h.InjuredAtRace = ctx.currentRace
			r.multiplier *= 0.7
			r.events = append(r.events, "picked up a mild injury")
		}
	}

	// Flavor roll only when no trait or injury already tagged the race.
	if len(r.events) == 0 && e.rng.Float64() < 0.15 {
		if e.rng.Float64() < 0.2 {
			r.events = append(r.events, rareFlavorEvents[e.rng.Intn(len(rareFlavorEvents))])
		} else {
			r.events = append(r.events, standardFlavorEvents[e.rng.Intn(len(standardFlavorEvents))])
		}
	}

	r.final = (minSpeed + e.rng.Float64()*(maxSpeed-minSpeed)) * r.multiplier
	return r
}

// applyRaceTrait is the race-performance effect site. Kinds with no
// race-time effect are listed explicitly so a new trait kind has to be
// placed somewhere deliberate.
func (e *Engine) applyRaceTrait(r *runner, t models.Trait, ctx raceContext) {
	switch t.Kind {
	case models.TraitStrongFinisher:
		if ctx.currentRace > ctx.totalRaces/2 {
			r.speed += 5
		}
	case models.TraitDarkHorse:
		if gap := ctx.top3AvgSpeed - r.speed; gap > 0 {
			r.speed += gap * 0.5
			r.events = append(r.events, "came out of nowhere")
		}
	case models.TraitPoorStarter:
		if ctx.currentRace <= ctx.totalRaces/2 {
			r.speed -= 5
		}
	case models.TraitNervousRunner:
		r.control -= 5 + e.rng.Float64()*10
	case models.TraitUnpredictable:
		r.control += e.rng.Float64()*20 - 10
		r.recovery += e.rng.Float64()*20 - 10
	case models.TraitMudRunner:
		if e.rng.Float64() < 0.3 {
			r.speed += 6
			r.events = append(r.events, "relished the heavy going")
		}
	case models.TraitSprinter:
		r.speed += 3
	case models.TraitLateBloomer:
		if ctx.currentRace > 8 {
			r.speed += 10
			r.control += 10
			r.recovery += 10
		}
	case models.TraitOverachiever:
		if e.rng.Float64() < 0.2 {
			r.speed += 15
			r.events = append(r.events, "ran the race of its life")
		}
	case models.TraitInconsistent:
		r.speed += e.rng.Float64()*30 - 15
	case models.TraitSpotlightShy:
		if ctx.displayedRank[r.horse.ID] <= 3 {
			r.speed -= 10
		}
	case models.TraitComebackKing:
		if r.horse.Recovery < 30 {
			r.speed += 20
			r.events = append(r.events, "dug impossibly deep")
		}
	case models.TraitMiracleHealer:
		if r.horse.HasInjury && e.rng.Float64() < 0.3 {
			r.horse.HasInjury = false
			r.horse.InjuryType = models.InjuryNone
			r.horse.MissNextRace = false
			r.events = append(r.events, "shook off its injury")
		}
	case models.TraitLightningBolt:
		if e.rng.Float64() < 0.05 {
			r.multiplier *= 1.3
			r.events = append(r.events, "struck like lightning")
		}
	case models.TraitRiskTaker:
		if e.rng.Float64() < 0.25 {
			r.speed += 12
			r.events = append(r.events, "took a reckless line")
		}
	case models.TraitOneShotSpecialist:
		if ctx.currentRace == 10 {
			r.speed += 10
		}
	case models.TraitTrainingResistant,
		models.TraitIronHorse,
		models.TraitFragile,
		models.TraitCrowdFavorite,
		models.TraitUninjurable,
		models.TraitSlipperyTactics,
		models.TraitExtremeTraining,
		models.TraitUnderhandedTactics,
		models.TraitCelebrityStatus:
		// No race-performance effect; consulted at other sites.
	}
}

// injuryOutcome maps an injury roll in [0,100] to a severity for the given
// horse. Threshold 90 by default, 95 for Iron Horse, 85 for Fragile or
// Risk Taker; above the major threshold (97, or 95 for Risk Taker) the
// injury is major.
func injuryOutcome(roll float64, h *models.Horse) models.InjuryType {
	threshold := 90.0
	if h.HasTrait(models.TraitIronHorse) {
		threshold = 95.0
	}
	if h.HasTrait(models.TraitFragile) || h.HasTrait(models.TraitRiskTaker) {
		threshold = 85.0
	}
	if roll <= threshold {
		return models.InjuryNone
	}
	major := 97.0
	if h.HasTrait(models.TraitRiskTaker) {
		major = 95.0
	}
	if roll > major {
		return models.InjuryMajor
	}
	return models.InjuryMild
}

// rankRunners sorts by performance descending, then breaks ties within one
// unit by higher recovery. The adjacency passes keep the tie-break
// deterministic without feeding a non-transitive comparator to sort.
func (e *Engine) rankRunners(runners []*runner) {
	sort.SliceStable(runners, func(i, j int) bool {
		return runners[i].final > runners[j].final
	})
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i+1 < len(runners); i++ {
			a, b := runners[i], runners[i+1]
			if math.Abs(a.final-b.final) <= 1.0 && b.recovery > a.recovery {
				runners[i], runners[i+1] = b, a
				swapped = true
			}
		}
	}
}

// applySlipperySwap gives a Slippery Tactics player a 20% chance, evaluated
// once after ranking, to trade places with the horse directly ahead.
func (e *Engine) applySlipperySwap(s *models.GameState, runners []*runner, report *RaceReport) {
	if s.PlayerHorse == nil || !s.PlayerHorse.HasTrait(models.TraitSlipperyTactics) {
		return
	}
	idx := -1
	for i, r := range runners {
		if r.horse.ID == s.PlayerHorse.ID {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return
	}
	if e.rng.Float64() < 0.2 {
		runners[idx-1], runners[idx] = runners[idx], runners[idx-1]
		runners[idx-1].events = append(runners[idx-1].events, "slipped through after the line")
		report.Messages = append(report.Messages, "Your jockey found a way past at the post.")
	}
}

// resolveBet pays out the player's wager, if any. Betting on a horse that
// sat out the race (or an unknown id) resolves to no payout.
func (e *Engine) resolveBet(s *models.GameState, results []models.RaceResult, odds float64, report *RaceReport) {
	bet := s.LastBet
	if bet == nil {
		return
	}
	payout := betPayout(bet, results, odds)
	if payout > 0 {
		s.PlayerMoney += payout
		report.BetPayout = payout
		report.Messages = append(report.Messages, fmt.Sprintf("Your bet paid out %d.", payout))
	} else {
		report.Messages = append(report.Messages, "Your bet did not win.")
	}
}

// betPayout implements the payout law: position 1 pays floor(amount*odds),
// position 2 pays a flat 50% consolation, anything else pays nothing.
func betPayout(bet *models.Bet, results []models.RaceResult, odds float64) int {
	if bet == nil {
		return 0
	}
	for _, res := range results {
		if res.HorseID != bet.HorseID {
			continue
		}
		switch res.Position {
		case 1:
			return int(math.Floor(float64(bet.Amount) * odds))
		case 2:
			return int(math.Floor(float64(bet.Amount) * 0.5))
		default:
			return 0
		}
	}
	return 0
}

// resolvePrizes awards prize money for the player horse's finish and the
// trait-conditional bonuses layered on top of it.
func (e *Engine) resolvePrizes(s *models.GameState, results []models.RaceResult, report *RaceReport) {
	player := s.PlayerHorse
	if player == nil {
		return
	}
	celebrity := player.HasTrait(models.TraitCelebrityStatus)

	prize := 0
	position := 0
	for _, res := range results {
		if res.HorseID == player.ID {
			position = res.Position
			break
		}
	}

	switch position {
	case 1:
		prize = e.bal.PrizeFirst
	case 2:
		prize = e.bal.PrizeSecond
	case 3:
		prize = e.bal.PrizeThird
	}
	if celebrity {
		prize /= 2
		prize += 300
	}

	if player.HasTrait(models.TraitUnderhandedTactics) && position == len(results) && position > 0 {
		prize += 1000
		report.Messages = append(report.Messages, "A brown envelope arrives: 1000 for a convincing loss.")
	}
	if player.HasTrait(models.TraitOneShotSpecialist) && s.CurrentRace == 10 && position >= 1 && position <= 3 {
		prize += 1000
		report.Messages = append(report.Messages, "The big one. Race 10 bonus: 1000.")
	}

	if prize > 0 {
		s.PlayerMoney += prize
		report.PrizeMoney = prize
		report.Messages = append(report.Messages, fmt.Sprintf("Prize money: %d.", prize))
	}

	if !s.SyncBonusGranted && position >= 1 && position <= 3 &&
		s.MostUsedTraining() == models.TrainingSync {
		player.Control += 3
		player.ClampStats()
		s.SyncBonusGranted = true
		report.Messages = append(report.Messages, "All that sync work paid off: +3 control, permanently.")
	}
}

func findHorse(horses []*models.Horse, id string) *models.Horse {
	for _, h := range horses {
		if h.ID == id {
			return h
		}
	}
	return nil
}
