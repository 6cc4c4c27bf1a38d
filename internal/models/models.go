package models

// TrainingType selects one of the four training programs.
type TrainingType string

const (
	TrainingGeneral TrainingType = "general"
	TrainingSpeed   TrainingType = "speed"
	TrainingRest    TrainingType = "rest"
	TrainingSync    TrainingType = "sync"
)

// ScoutDepth selects how much a scouting action reveals.
type ScoutDepth string

const (
	ScoutBasic ScoutDepth = "basic"
	ScoutDeep  ScoutDepth = "deep"
)

// InjuryType is the current injury severity of a horse.
type InjuryType string

const (
	InjuryNone  InjuryType = "none"
	InjuryMild  InjuryType = "mild"
	InjuryMajor InjuryType = "major"
)

// Polarity marks a trait as helpful or harmful.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// TraitKind identifies a trait's behavior. Every effect site switches on
// this enum rather than matching display names.
type TraitKind string

const (
	// Standard pool.
	TraitStrongFinisher    TraitKind = "strong_finisher"
	TraitDarkHorse         TraitKind = "dark_horse"
	TraitPoorStarter       TraitKind = "poor_starter"
	TraitNervousRunner     TraitKind = "nervous_runner"
	TraitUnpredictable     TraitKind = "unpredictable"
	TraitMudRunner         TraitKind = "mud_runner"
	TraitSprinter          TraitKind = "sprinter"
	TraitLateBloomer       TraitKind = "late_bloomer"
	TraitOverachiever      TraitKind = "overachiever"
	TraitInconsistent      TraitKind = "inconsistent"
	TraitSpotlightShy      TraitKind = "spotlight_shy"
	TraitTrainingResistant TraitKind = "training_resistant"
	TraitIronHorse         TraitKind = "iron_horse"
	TraitFragile           TraitKind = "fragile"
	TraitCrowdFavorite     TraitKind = "crowd_favorite"

	// Rare pool: low draw odds, large conditional swings.
	TraitComebackKing  TraitKind = "comeback_king"
	TraitMiracleHealer TraitKind = "miracle_healer"
	TraitLightningBolt TraitKind = "lightning_bolt"

	// Jockey-granted, always revealed.
	TraitUninjurable        TraitKind = "uninjurable"
	TraitRiskTaker          TraitKind = "risk_taker"
	TraitOneShotSpecialist  TraitKind = "one_shot_specialist"
	TraitSlipperyTactics    TraitKind = "slippery_tactics"
	TraitExtremeTraining    TraitKind = "extreme_training"
	TraitUnderhandedTactics TraitKind = "underhanded_tactics"
	TraitCelebrityStatus    TraitKind = "celebrity_status"
)

// Trait is an immutable catalog entry copied onto horses by value.
type Trait struct {
	Kind        TraitKind `yaml:"kind"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Polarity    Polarity  `yaml:"polarity"`
}

// StatSnapshot freezes the public stats of a horse at a point in time.
type StatSnapshot struct {
	DisplayedSpeed int `yaml:"displayed_speed"`
	Control        int `yaml:"control"`
	Recovery       int `yaml:"recovery"`
	Endurance      int `yaml:"endurance"`
}

// FinishRecord is one entry in a horse's season race history.
type FinishRecord struct {
	Position   int `yaml:"position"`
	RaceNumber int `yaml:"race_number"`
}

// Stat bounds. Displayed speed never drops below its generation floor; the
// remaining stats share a common floor. Generation uses tighter ceilings.
const (
	SpeedFloor  = 40
	StatFloor   = 10
	StatCeiling = 100
	RecoveryMin = 10
	SpeedGenMin = 40
	SpeedGenMax = 85
	OtherGenMin = 30
	OtherGenMax = 90
)

// Horse is a mutable entity owned exclusively by the season state.
type Horse struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	DisplayedSpeed int     `yaml:"displayed_speed"`
	ActualSpeed    float64 `yaml:"actual_speed"`
	Control        int     `yaml:"control"`
	Recovery       int     `yaml:"recovery"`
	Endurance      int     `yaml:"endurance"`

	Attributes         []Trait `yaml:"attributes"`
	RevealedAttributes []Trait `yaml:"revealed_attributes"`

	HasInjury     bool       `yaml:"has_injury"`
	InjuryType    InjuryType `yaml:"injury_type"`
	MissNextRace  bool       `yaml:"miss_next_race"`
	InjuredAtRace int        `yaml:"injured_at_race"`

	LastUpdated  int           `yaml:"last_updated"`
	ScoutedStats *StatSnapshot `yaml:"scouted_stats,omitempty"`
	InitialStats StatSnapshot  `yaml:"initial_stats"`

	RaceHistory     []FinishRecord `yaml:"race_history"`
	TraitRevealRace int            `yaml:"trait_reveal_race"`
}

// RecomputeActualSpeed re-derives the effective speed from displayed speed
// and endurance. Must be called after any change to either input.
func (h *Horse) RecomputeActualSpeed() {
	h.ActualSpeed = float64(h.DisplayedSpeed) * (0.8 + 0.2*float64(h.Endurance)/100.0)
}

// ClampStats enforces the per-stat floors and ceilings.
func (h *Horse) ClampStats() {
	h.DisplayedSpeed = clampInt(h.DisplayedSpeed, SpeedFloor, StatCeiling)
	h.Control = clampInt(h.Control, StatFloor, StatCeiling)
	h.Recovery = clampInt(h.Recovery, RecoveryMin, StatCeiling)
	h.Endurance = clampInt(h.Endurance, StatFloor, StatCeiling)
}

// HasTrait reports whether the horse owns a trait of the given kind.
func (h *Horse) HasTrait(kind TraitKind) bool {
	for _, t := range h.Attributes {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// HasRevealed reports whether a trait of the given kind is visible to the player.
func (h *Horse) HasRevealed(kind TraitKind) bool {
	for _, t := range h.RevealedAttributes {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// HiddenTraits returns the owned traits not yet in RevealedAttributes.
func (h *Horse) HiddenTraits() []Trait {
	var hidden []Trait
	for _, t := range h.Attributes {
		if !h.HasRevealed(t.Kind) {
			hidden = append(hidden, t)
		}
	}
	return hidden
}

// Snapshot captures the current public stats.
func (h *Horse) Snapshot() StatSnapshot {
	return StatSnapshot{
		DisplayedSpeed: h.DisplayedSpeed,
		Control:        h.Control,
		Recovery:       h.Recovery,
		Endurance:      h.Endurance,
	}
}

// Clone returns a deep copy of the horse.
func (h *Horse) Clone() *Horse {
	c := *h
	c.Attributes = append([]Trait(nil), h.Attributes...)
	c.RevealedAttributes = append([]Trait(nil), h.RevealedAttributes...)
	c.RaceHistory = append([]FinishRecord(nil), h.RaceHistory...)
	if h.ScoutedStats != nil {
		snap := *h.ScoutedStats
		c.ScoutedStats = &snap
	}
	return &c
}

// Bet is the player's wager on the upcoming race.
type Bet struct {
	HorseID string `yaml:"horse_id"`
	Amount  int    `yaml:"amount"`
}

// RaceResult is an immutable per-horse record for one race.
type RaceResult struct {
	HorseID    string   `yaml:"horse_id"`
	HorseName  string   `yaml:"horse_name"`
	FinalSpeed float64  `yaml:"final_speed"`
	Position   int      `yaml:"position"`
	RaceEvents []string `yaml:"race_events,omitempty"`
}

// EventCategory distinguishes auto-applied money swings from player decisions.
type EventCategory string

const (
	EventPassive EventCategory = "passive"
	EventChoice  EventCategory = "choice"
)

// ChoiceKind identifies a choice event's accept-effect.
type ChoiceKind string

const (
	ChoiceNone             ChoiceKind = ""
	ChoiceExperimentalDiet ChoiceKind = "experimental_diet"
	ChoiceHypnotherapy     ChoiceKind = "hypnotherapy"
	ChoiceShadyTipster     ChoiceKind = "shady_tipster"
	ChoicePremiumFeed      ChoiceKind = "premium_feed"
	ChoiceNightTraining    ChoiceKind = "night_training"
	ChoicePhotoShoot       ChoiceKind = "photo_shoot"
)

// RandomEvent is either a passive money delta (applied after the next race
// concludes) or a choice scenario awaiting accept/decline.
type RandomEvent struct {
	ID          string        `yaml:"id"`
	Category    EventCategory `yaml:"category"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	MoneyDelta  int           `yaml:"money_delta,omitempty"` // passive only
	Choice      ChoiceKind    `yaml:"choice,omitempty"`      // choice only
	Cost        int           `yaml:"cost,omitempty"`        // choice only
}

// GameState is the single root of mutable world state. It is replaced
// wholesale (Clone then mutate) on every transition.
type GameState struct {
	PlayerName  string `yaml:"player_name"`
	PlayerMoney int    `yaml:"player_money"`
	SeasonGoal  int    `yaml:"season_goal"`

	CurrentRace int `yaml:"current_race"`
	TotalRaces  int `yaml:"total_races"`

	PlayerHorse *Horse   `yaml:"player_horse"`
	Competitors []*Horse `yaml:"competitors"`

	RaceResults []RaceResult `yaml:"race_results"`
	LastBet     *Bet         `yaml:"last_bet,omitempty"`

	LoanAmount          int  `yaml:"loan_amount"`
	HasUsedLoanThisRace bool `yaml:"has_used_loan_this_race"`

	TrainingsUsed    map[TrainingType]int `yaml:"trainings_used"`
	SelectedJockeyID string               `yaml:"selected_jockey_id"`
	SyncBonusGranted bool                 `yaml:"sync_bonus_granted"`
}

// Clone returns a deep copy of the game state.
func (s *GameState) Clone() *GameState {
	c := *s
	if s.PlayerHorse != nil {
		c.PlayerHorse = s.PlayerHorse.Clone()
	}
	c.Competitors = make([]*Horse, len(s.Competitors))
	for i, h := range s.Competitors {
		c.Competitors[i] = h.Clone()
	}
	c.RaceResults = append([]RaceResult(nil), s.RaceResults...)
	if s.LastBet != nil {
		bet := *s.LastBet
		c.LastBet = &bet
	}
	c.TrainingsUsed = make(map[TrainingType]int, len(s.TrainingsUsed))
	for k, v := range s.TrainingsUsed {
		c.TrainingsUsed[k] = v
	}
	return &c
}

// HorseByID finds a horse (player or competitor) by id. Returns nil if absent.
func (s *GameState) HorseByID(id string) *Horse {
	if s.PlayerHorse != nil && s.PlayerHorse.ID == id {
		return s.PlayerHorse
	}
	for _, h := range s.Competitors {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// AllHorses returns the player horse followed by every competitor.
func (s *GameState) AllHorses() []*Horse {
	horses := make([]*Horse, 0, len(s.Competitors)+1)
	if s.PlayerHorse != nil {
		horses = append(horses, s.PlayerHorse)
	}
	horses = append(horses, s.Competitors...)
	return horses
}

// ActiveHorses returns the horses running in the upcoming race.
func (s *GameState) ActiveHorses() []*Horse {
	var active []*Horse
	for _, h := range s.AllHorses() {
		if !h.MissNextRace {
			active = append(active, h)
		}
	}
	return active
}

// MostUsedTraining returns the training category with the highest use count,
// or "" when no training has happened yet.
func (s *GameState) MostUsedTraining() TrainingType {
	var best TrainingType
	bestCount := 0
	for _, t := range []TrainingType{TrainingGeneral, TrainingSpeed, TrainingRest, TrainingSync} {
		if n := s.TrainingsUsed[t]; n > bestCount {
			best, bestCount = t, n
		}
	}
	return best
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
