package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds the tuning constants of the season simulation. Defaults
// match the shipped game; a YAML file can override any subset for
// balancing experiments.
type Balance struct {
	TotalRaces    int `yaml:"total_races"`
	Competitors   int `yaml:"competitors"`
	StartingMoney int `yaml:"starting_money"`
	// SeasonGoal is 3x the average horse value of 4000.
	SeasonGoal int `yaml:"season_goal"`

	BankruptcyFloor int `yaml:"bankruptcy_floor"`

	TrainingBaseCosts map[string]int `yaml:"training_base_costs"`

	ScoutBasicCost int `yaml:"scout_basic_cost"`
	ScoutDeepCost  int `yaml:"scout_deep_cost"`
	ScoutOwnCost   int `yaml:"scout_own_cost"`

	LoanBase             int     `yaml:"loan_base"`
	LoanFraction         float64 `yaml:"loan_fraction"`
	InterestStandard     float64 `yaml:"interest_standard"`
	InterestUnderhanded  float64 `yaml:"interest_underhanded"`
	UnderhandedLoanScale float64 `yaml:"underhanded_loan_scale"`

	PrizeFirst  int `yaml:"prize_first"`
	PrizeSecond int `yaml:"prize_second"`
	PrizeThird  int `yaml:"prize_third"`
}

// DefaultBalance returns the shipped tuning values.
func DefaultBalance() Balance {
	return Balance{
		TotalRaces:      15,
		Competitors:     9,
		StartingMoney:   2000,
		SeasonGoal:      12000,
		BankruptcyFloor: 100,
		TrainingBaseCosts: map[string]int{
			"general": 500,
			"speed":   800,
			"rest":    0,
			"sync":    600,
		},
		ScoutBasicCost:       300,
		ScoutDeepCost:        700,
		ScoutOwnCost:         900,
		LoanBase:             200,
		LoanFraction:         0.5,
		InterestStandard:     1.25,
		InterestUnderhanded:  1.40,
		UnderhandedLoanScale: 0.893,
		PrizeFirst:           2000,
		PrizeSecond:          1000,
		PrizeThird:           500,
	}
}

// LoadBalance reads a YAML balance file over the defaults. An empty path
// returns the defaults unchanged.
func LoadBalance(path string) (Balance, error) {
	bal := DefaultBalance()
	if path == "" {
		return bal, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return bal, fmt.Errorf("read balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, &bal); err != nil {
		return bal, fmt.Errorf("parse balance file: %w", err)
	}
	if err := bal.validate(); err != nil {
		return bal, err
	}
	return bal, nil
}

func (b Balance) validate() error {
	if b.TotalRaces < 1 {
		return fmt.Errorf("balance: total_races must be at least 1, got %d", b.TotalRaces)
	}
	if b.Competitors < 1 {
		return fmt.Errorf("balance: competitors must be at least 1, got %d", b.Competitors)
	}
	for _, t := range []string{"general", "speed", "rest", "sync"} {
		if _, ok := b.TrainingBaseCosts[t]; !ok {
			return fmt.Errorf("balance: missing training base cost for %q", t)
		}
	}
	return nil
}
