package engine

import (
	"errors"
	"fmt"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// Phase is the controller's position in the per-race cycle.
type Phase string

const (
	PhaseNotStarted     Phase = "not_started"
	PhaseAwaitingPrep   Phase = "awaiting_prep"
	PhaseRaceInProgress Phase = "race_in_progress"
	PhaseShowingResults Phase = "showing_results"
	PhaseSeasonOver     Phase = "season_over"
)

var (
	// ErrWrongPhase is returned when an action arrives outside its phase.
	ErrWrongPhase = errors.New("action not allowed in current phase")
	// ErrBetNotPlaced intercepts a race start while a horse is selected for
	// betting but no bet has been placed. Callers confirm or place the bet.
	ErrBetNotPlaced = errors.New("a horse is selected but no bet was placed")
	// ErrTrainingUsed enforces the one-training-per-race rule.
	ErrTrainingUsed = errors.New("training already selected this race")
	// ErrBetPlaced enforces the one-bet-per-race rule.
	ErrBetPlaced = errors.New("a bet has already been placed this race")
	// ErrNoPendingChoice is returned when there is no choice event to resolve.
	ErrNoPendingChoice = errors.New("no choice event awaiting a decision")
)

// SeasonSummary is the season-end settlement report.
type SeasonSummary struct {
	FinalMoney   int
	LoanRepaid   int
	InterestRate float64
	NetWorth     int
	Goal         int
	Won          bool
	Bankrupt     bool
}

// Controller sequences the engines across the season and owns the root
// game state, which it replaces wholesale on every transition.
type Controller struct {
	eng   *Engine
	state *models.GameState
	phase Phase

	pendingEvent   *models.RandomEvent
	choiceResolved bool

	trainingSelected bool
	betPlaced        bool
	selectedHorseID  string

	bankrupt bool
	summary  SeasonSummary
	history  []*models.GameState
}

// NewController wraps an engine in an unstarted season.
func NewController(eng *Engine) *Controller {
	return &Controller{eng: eng, phase: PhaseNotStarted}
}

// Start creates the season: player horse (renamed after the player),
// competitor roster, optional jockey application, and the first event.
func (c *Controller) Start(playerName, jockeyID string) error {
	if c.phase != PhaseNotStarted {
		return fmt.Errorf("%w: season already started", ErrWrongPhase)
	}

	bal := c.eng.Balance()
	player := c.eng.GenerateHorse(true)
	player.Name = fmt.Sprintf("%s's %s", playerName, player.Name)

	state := &models.GameState{
		PlayerName:    playerName,
		PlayerMoney:   bal.StartingMoney,
		SeasonGoal:    bal.SeasonGoal,
		CurrentRace:   1,
		TotalRaces:    bal.TotalRaces,
		PlayerHorse:   player,
		TrainingsUsed: make(map[models.TrainingType]int),
	}
	for i := 0; i < bal.Competitors; i++ {
		state.Competitors = append(state.Competitors, c.eng.GenerateHorse(false))
	}

	if jockeyID != "" {
		if err := c.eng.ApplyJockey(state.PlayerHorse, jockeyID); err != nil {
			return err
		}
		state.SelectedJockeyID = jockeyID
	}

	c.state = state
	c.drawEvent()
	c.phase = PhaseAwaitingPrep
	return nil
}

// Phase returns the controller's current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Snapshot returns a read-only copy of the current game state.
func (c *Controller) Snapshot() *models.GameState {
	if c.state == nil {
		return nil
	}
	return c.state.Clone()
}

// PendingEvent returns the live event, whether it is a passive swing held
// for after the race, and whether it still awaits a player decision.
func (c *Controller) PendingEvent() (ev models.RandomEvent, pendingPassive, awaitingChoice bool) {
	if c.pendingEvent == nil {
		return models.RandomEvent{}, false, false
	}
	ev = *c.pendingEvent
	if ev.Category == models.EventPassive {
		return ev, true, false
	}
	return ev, false, !c.choiceResolved
}

// SelectTraining runs the chosen training program, at most once per race.
func (c *Controller) SelectTraining(t models.TrainingType) (string, error) {
	if c.phase != PhaseAwaitingPrep {
		return "", ErrWrongPhase
	}
	if c.trainingSelected {
		return "", ErrTrainingUsed
	}
	next, msg, err := c.eng.ApplyTraining(c.state, t)
	if err != nil {
		return "", err
	}
	c.replace(next)
	c.trainingSelected = true
	return msg, nil
}

// Scout runs a competitor scouting action. Any number are allowed per race.
func (c *Controller) Scout(horseID string, depth models.ScoutDepth) (string, error) {
	if c.phase != PhaseAwaitingPrep {
		return "", ErrWrongPhase
	}
	next, msg, err := c.eng.ScoutCompetitor(c.state, horseID, depth)
	if err != nil {
		return "", err
	}
	c.replace(next)
	return msg, nil
}

// ScoutOwn pays for a look at the player horse's own hidden traits.
func (c *Controller) ScoutOwn() (string, error) {
	if c.phase != PhaseAwaitingPrep {
		return "", ErrWrongPhase
	}
	next, msg, err := c.eng.ScoutOwn(c.state)
	if err != nil {
		return "", err
	}
	c.replace(next)
	return msg, nil
}

// SelectHorse marks a horse as the betting candidate without committing.
func (c *Controller) SelectHorse(horseID string) error {
	if c.phase != PhaseAwaitingPrep {
		return ErrWrongPhase
	}
	if c.state.HorseByID(horseID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownHorse, horseID)
	}
	c.selectedHorseID = horseID
	return nil
}

// PlaceBet commits the single wager of this race cycle.
func (c *Controller) PlaceBet(horseID string, amount int) error {
	if c.phase != PhaseAwaitingPrep {
		return ErrWrongPhase
	}
	if c.betPlaced {
		return ErrBetPlaced
	}
	if c.state.HorseByID(horseID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownHorse, horseID)
	}
	next := c.state.Clone()
	next.PlayerMoney -= amount
	next.LastBet = &models.Bet{HorseID: horseID, Amount: amount}
	c.replace(next)
	c.betPlaced = true
	return nil
}

// TakeLoan requests the per-race credit line.
func (c *Controller) TakeLoan() (string, error) {
	if c.phase != PhaseAwaitingPrep {
		return "", ErrWrongPhase
	}
	next, msg := c.eng.TakeLoan(c.state)
	c.replace(next)
	return msg, nil
}

// Odds prices a horse with the engine's configured strategy.
func (c *Controller) Odds(horseID string) float64 {
	h := c.state.HorseByID(horseID)
	if h == nil {
		return 0
	}
	return c.eng.odds.Odds(h, c.state.ActiveHorses())
}

// AcceptEvent applies the pending choice event's effect.
func (c *Controller) AcceptEvent() (string, error) {
	if c.phase != PhaseAwaitingPrep {
		return "", ErrWrongPhase
	}
	if c.pendingEvent == nil || c.pendingEvent.Category != models.EventChoice || c.choiceResolved {
		return "", ErrNoPendingChoice
	}
	next, msg := c.eng.ApplyChoiceEvent(c.state, *c.pendingEvent)
	c.replace(next)
	c.choiceResolved = true
	return msg, nil
}

// DismissEvent declines the pending choice event. Declining has no effect
// on the game state.
func (c *Controller) DismissEvent() error {
	if c.phase != PhaseAwaitingPrep {
		return ErrWrongPhase
	}
	if c.pendingEvent == nil || c.pendingEvent.Category != models.EventChoice || c.choiceResolved {
		return ErrNoPendingChoice
	}
	c.choiceResolved = true
	return nil
}

// StartRace runs the full race cycle: simulation, post-race decay, pending
// passive event settlement, terminal checks, and the next event draw. If a
// horse was selected for betting without a bet, the call is intercepted
// with ErrBetNotPlaced until the caller either bets or confirms.
func (c *Controller) StartRace(confirmNoBet bool) (*RaceReport, error) {
	if c.phase != PhaseAwaitingPrep {
		return nil, ErrWrongPhase
	}
	if c.selectedHorseID != "" && !c.betPlaced && !confirmNoBet {
		return nil, ErrBetNotPlaced
	}
	c.phase = PhaseRaceInProgress

	// An unresolved choice event lapses when the gates open.
	if c.pendingEvent != nil && c.pendingEvent.Category == models.EventChoice {
		c.choiceResolved = true
	}

	next, report := c.eng.SimulateRace(c.state)
	next, decayMessages := c.eng.AdvanceSeason(next)
	report.Messages = append(report.Messages, decayMessages...)

	// Passive swings settle only once the race they preceded has run.
	if c.pendingEvent != nil && c.pendingEvent.Category == models.EventPassive {
		settled, msg := c.eng.ApplyPassiveEvent(next, *c.pendingEvent)
		next = settled
		report.Messages = append(report.Messages, msg)
	}
	c.pendingEvent = nil

	c.replace(next)
	c.trainingSelected = false
	c.betPlaced = false
	c.selectedHorseID = ""

	if c.state.PlayerMoney < c.eng.Balance().BankruptcyFloor {
		st := c.state.Clone()
		st.PlayerMoney = 0
		c.replace(st)
		c.bankrupt = true
		c.summary = SeasonSummary{
			Goal:     c.state.SeasonGoal,
			Bankrupt: true,
		}
		c.phase = PhaseSeasonOver
		return report, nil
	}
	if IsGameOver(c.state) {
		c.settleSeason()
		c.phase = PhaseSeasonOver
		return report, nil
	}

	c.drawEvent()
	c.phase = PhaseShowingResults
	return report, nil
}

// ContinueSeason acknowledges the results screen and opens the next cycle.
func (c *Controller) ContinueSeason() error {
	if c.phase != PhaseShowingResults {
		return ErrWrongPhase
	}
	c.phase = PhaseAwaitingPrep
	return nil
}

// Summary reports the season-end settlement. Meaningful once the phase is
// PhaseSeasonOver.
func (c *Controller) Summary() SeasonSummary { return c.summary }

// settleSeason repays the outstanding loan with interest and records the
// settlement report.
func (c *Controller) settleSeason() {
	rate := c.eng.LoanInterestRate(c.state)
	repaid := int(float64(c.state.LoanAmount) * rate)

	st := c.state.Clone()
	st.PlayerMoney = c.eng.SettleDebt(st)
	st.LoanAmount = 0
	c.replace(st)

	c.summary = SeasonSummary{
		FinalMoney:   c.state.PlayerMoney,
		LoanRepaid:   repaid,
		InterestRate: rate,
		NetWorth:     c.state.PlayerMoney,
		Goal:         c.state.SeasonGoal,
		Won:          IsGameWon(c.state),
	}
}

func (c *Controller) drawEvent() {
	ev := c.eng.NextEvent()
	c.pendingEvent = &ev
	c.choiceResolved = false
}

// replace installs a new root state, keeping the previous one for
// history-style flows.
func (c *Controller) replace(next *models.GameState) {
	if c.state != nil {
		c.history = append(c.history, c.state)
	}
	c.state = next
}

// IsGameOver reports season completion: the clock has run past the final
// race. Pure predicate over the state.
func IsGameOver(s *models.GameState) bool {
	return s.CurrentRace > s.TotalRaces
}

// IsGameWon reports whether the player's money meets the season goal.
// Independent of IsGameOver; the controller only consults it at terminal
// states.
func IsGameWon(s *models.GameState) bool {
	return s.PlayerMoney >= s.SeasonGoal
}
