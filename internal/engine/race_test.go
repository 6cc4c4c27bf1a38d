package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

func TestInjuryOutcomeThresholds(t *testing.T) {
	plain := testHorse("plain")
	iron := withTrait(testHorse("iron"), models.TraitIronHorse)
	fragile := withTrait(testHorse("fragile"), models.TraitFragile)
	risky := withTrait(testHorse("risky"), models.TraitRiskTaker)

	cases := []struct {
		name  string
		horse *models.Horse
		roll  float64
		want  models.InjuryType
	}{
		{"below default threshold", plain, 90, models.InjuryNone},
		{"just above default", plain, 91, models.InjuryMild},
		{"major above 97", plain, 98, models.InjuryMajor},
		{"iron horse shrugs off 94", iron, 94, models.InjuryNone},
		{"iron horse mild at 96", iron, 96, models.InjuryMild},
		{"fragile hurt at 86", fragile, 86, models.InjuryMild},
		{"risk taker hurt at 86", risky, 86, models.InjuryMild},
		{"risk taker major at 96", risky, 96, models.InjuryMajor},
	}
	for _, tc := range cases {
		if got := injuryOutcome(tc.roll, tc.horse); got != tc.want {
			t.Errorf("%s: roll %.0f gave %s, want %s", tc.name, tc.roll, got, tc.want)
		}
	}
}

func TestBetPayoutLaw(t *testing.T) {
	results := []models.RaceResult{
		{HorseID: "a", Position: 1},
		{HorseID: "b", Position: 2},
		{HorseID: "c", Position: 3},
	}

	if got := betPayout(&models.Bet{HorseID: "a", Amount: 100}, results, 2.5); got != 250 {
		t.Errorf("Winner payout: expected floor(100*2.5)=250, got %d", got)
	}
	if got := betPayout(&models.Bet{HorseID: "a", Amount: 333}, results, 1.3); got != 432 {
		t.Errorf("Winner payout: expected floor(333*1.3)=432, got %d", got)
	}
	if got := betPayout(&models.Bet{HorseID: "b", Amount: 101}, results, 9.9); got != 50 {
		t.Errorf("Runner-up payout: expected floor(101*0.5)=50, got %d", got)
	}
	if got := betPayout(&models.Bet{HorseID: "c", Amount: 100}, results, 2.0); got != 0 {
		t.Errorf("Third place should pay nothing, got %d", got)
	}
	if got := betPayout(nil, results, 2.0); got != 0 {
		t.Errorf("No bet should pay nothing, got %d", got)
	}
	if got := betPayout(&models.Bet{HorseID: "ghost", Amount: 100}, results, 2.0); got != 0 {
		t.Errorf("Unknown horse should resolve to no payout, got %d", got)
	}
}

func TestRankRunnersTieBreak(t *testing.T) {
	e := testEngine(1)

	a := &runner{horse: testHorse("a"), final: 80.5, recovery: 20}
	b := &runner{horse: testHorse("b"), final: 80.0, recovery: 90}
	c := &runner{horse: testHorse("c"), final: 70.0, recovery: 100}

	runners := []*runner{a, b, c}
	e.rankRunners(runners)

	if runners[0] != b {
		t.Errorf("Within 1 unit, higher recovery should rank first; got %s", runners[0].horse.ID)
	}
	if runners[1] != a {
		t.Errorf("Expected a second, got %s", runners[1].horse.ID)
	}
	if runners[2] != c {
		t.Errorf("Performances >1 apart must keep strict order; got %s last", runners[2].horse.ID)
	}
}

func TestSimulateRaceDeterminism(t *testing.T) {
	run := func() []models.RaceResult {
		e := testEngine(42)
		s := testState(9)
		// Vary the field a little so ordering is non-trivial.
		for i, c := range s.Competitors {
			c.DisplayedSpeed = 45 + i*3
			c.RecomputeActualSpeed()
		}
		next, _ := e.SimulateRace(s)
		return next.RaceResults
	}

	first, second := run(), run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Identical seeds must produce identical race results")
	}
}

func TestSimulateRaceAdvancesClockAndClearsBet(t *testing.T) {
	e := testEngine(7)
	s := testState(3)
	s.LastBet = &models.Bet{HorseID: "comp-0", Amount: 100}

	next, _ := e.SimulateRace(s)

	if next.CurrentRace != 2 {
		t.Errorf("Expected current race 2, got %d", next.CurrentRace)
	}
	if next.LastBet != nil {
		t.Errorf("Bet must be cleared after the race")
	}
	if len(next.RaceResults) != 4 {
		t.Errorf("Expected 4 results, got %d", len(next.RaceResults))
	}
	for i, res := range next.RaceResults {
		if res.Position != i+1 {
			t.Errorf("Positions must be 1-indexed ranks; index %d has position %d", i, res.Position)
		}
	}
}

func TestInjuredHorseSitsOut(t *testing.T) {
	e := testEngine(7)
	s := testState(3)
	s.Competitors[1].MissNextRace = true

	next, _ := e.SimulateRace(s)

	if len(next.RaceResults) != 3 {
		t.Fatalf("Expected 3 results with one horse out, got %d", len(next.RaceResults))
	}
	for _, res := range next.RaceResults {
		if res.HorseID == "comp-1" {
			t.Errorf("A horse flagged to miss the race must not appear in results")
		}
	}
}

func TestBetOnSidelinedHorsePaysNothing(t *testing.T) {
	e := testEngine(7)
	s := testState(3)
	s.Competitors[0].MissNextRace = true
	s.LastBet = &models.Bet{HorseID: "comp-0", Amount: 500}
	moneyBefore := s.PlayerMoney

	next, report := e.SimulateRace(s)

	if report.BetPayout != 0 {
		t.Errorf("Bet on a sidelined horse must pay nothing, got %d", report.BetPayout)
	}
	// Prize money for the player horse may still land; subtract it out.
	if next.PlayerMoney-report.PrizeMoney != moneyBefore {
		t.Errorf("Money changed beyond prize payout: before=%d after=%d prize=%d",
			moneyBefore, next.PlayerMoney, report.PrizeMoney)
	}
}

func TestRaceHistoryRecorded(t *testing.T) {
	e := testEngine(3)
	s := testState(2)

	next, _ := e.SimulateRace(s)

	for _, h := range next.AllHorses() {
		if len(h.RaceHistory) != 1 {
			t.Fatalf("%s: expected one history entry, got %d", h.ID, len(h.RaceHistory))
		}
		rec := h.RaceHistory[0]
		if rec.RaceNumber != 1 || rec.Position < 1 || rec.Position > 3 {
			t.Errorf("%s: bad history record %+v", h.ID, rec)
		}
	}
}

func TestPerformanceBandIsSane(t *testing.T) {
	// Low control widens the band downward but the floor holds at 10.
	h := testHorse("weak")
	h.Control = 10
	h.Recovery = 10
	h.DisplayedSpeed = 40
	h.Endurance = 10
	h.RecomputeActualSpeed()

	e := testEngine(11)
	ctx := raceContext{currentRace: 1, totalRaces: 15, displayedRank: map[string]int{"weak": 1}}
	for i := 0; i < 50; i++ {
		r := e.runHorse(h.Clone(), ctx)
		if r.final < 0 || math.IsNaN(r.final) {
			t.Fatalf("Performance must never be negative or NaN, got %v", r.final)
		}
	}
}
