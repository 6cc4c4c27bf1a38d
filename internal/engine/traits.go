package engine

import (
	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// standardTraits is the common draw pool for horse generation. The tables
// are constructed once and never mutated; horses carry value copies.
var standardTraits = []models.Trait{
	{Kind: models.TraitStrongFinisher, Name: "Strong Finisher", Polarity: models.PolarityPositive,
		Description: "Gains speed in the second half of the season."},
	{Kind: models.TraitDarkHorse, Name: "Dark Horse", Polarity: models.PolarityPositive,
		Description: "Closes part of the gap to the front-runners."},
	{Kind: models.TraitPoorStarter, Name: "Poor Starter", Polarity: models.PolarityNegative,
		Description: "Loses speed in the first half of the season."},
	{Kind: models.TraitNervousRunner, Name: "Nervous Runner", Polarity: models.PolarityNegative,
		Description: "Loses a random amount of control every race."},
	{Kind: models.TraitUnpredictable, Name: "Unpredictable", Polarity: models.PolarityNegative,
		Description: "Control and recovery wander randomly each race."},
	{Kind: models.TraitMudRunner, Name: "Mud Runner", Polarity: models.PolarityPositive,
		Description: "Sometimes finds extra grip on a heavy track."},
	{Kind: models.TraitSprinter, Name: "Sprinter", Polarity: models.PolarityPositive,
		Description: "A small but reliable burst of pace."},
	{Kind: models.TraitLateBloomer, Name: "Late Bloomer", Polarity: models.PolarityPositive,
		Description: "All stats surge after race 8."},
	{Kind: models.TraitOverachiever, Name: "Overachiever", Polarity: models.PolarityPositive,
		Description: "Occasionally runs far above its class."},
	{Kind: models.TraitInconsistent, Name: "Inconsistent", Polarity: models.PolarityNegative,
		Description: "Wild speed variance from race to race."},
	{Kind: models.TraitSpotlightShy, Name: "Spotlight Shy", Polarity: models.PolarityNegative,
		Description: "Underperforms when rated among the favorites."},
	{Kind: models.TraitTrainingResistant, Name: "Training Resistant", Polarity: models.PolarityNegative,
		Description: "Training effects are halved."},
	{Kind: models.TraitIronHorse, Name: "Iron Horse", Polarity: models.PolarityPositive,
		Description: "Harder to injure than most."},
	{Kind: models.TraitFragile, Name: "Fragile", Polarity: models.PolarityNegative,
		Description: "Easier to injure than most."},
	{Kind: models.TraitCrowdFavorite, Name: "Crowd Favorite", Polarity: models.PolarityPositive,
		Description: "The bookmakers shave its odds."},
}

// rareTraits are drawn separately from the standard pool.
var rareTraits = []models.Trait{
	{Kind: models.TraitComebackKing, Name: "Comeback King", Polarity: models.PolarityPositive,
		Description: "Runs far above itself when exhausted."},
	{Kind: models.TraitMiracleHealer, Name: "Miracle Healer", Polarity: models.PolarityPositive,
		Description: "Sometimes shakes off an injury on race day."},
	{Kind: models.TraitLightningBolt, Name: "Lightning Bolt", Polarity: models.PolarityPositive,
		Description: "A rare chance of an unbeatable run."},
}

// jockeyTraits are attached by jockey archetypes, never drawn at generation.
var jockeyTraits = map[models.TraitKind]models.Trait{
	models.TraitUninjurable: {Kind: models.TraitUninjurable, Name: "Uninjurable", Polarity: models.PolarityPositive,
		Description: "Never injured while this jockey rides."},
	models.TraitRiskTaker: {Kind: models.TraitRiskTaker, Name: "Risk Taker", Polarity: models.PolarityPositive,
		Description: "Chases bursts of speed at the cost of safety."},
	models.TraitOneShotSpecialist: {Kind: models.TraitOneShotSpecialist, Name: "One Shot Specialist", Polarity: models.PolarityPositive,
		Description: "Everything is built around race 10."},
	models.TraitSlipperyTactics: {Kind: models.TraitSlipperyTactics, Name: "Slippery Tactics", Polarity: models.PolarityPositive,
		Description: "Sometimes steals a place after the line."},
	models.TraitExtremeTraining: {Kind: models.TraitExtremeTraining, Name: "Extreme Training", Polarity: models.PolarityPositive,
		Description: "Punishing regimen that eventually unlocks a new talent."},
	models.TraitUnderhandedTactics: {Kind: models.TraitUnderhandedTactics, Name: "Underhanded Tactics", Polarity: models.PolarityNegative,
		Description: "Shady money: worse loans, but losing pays."},
	models.TraitCelebrityStatus: {Kind: models.TraitCelebrityStatus, Name: "Celebrity Status", Polarity: models.PolarityPositive,
		Description: "Appearance fees every race, but smaller purses."},
	models.TraitCrowdFavorite: {Kind: models.TraitCrowdFavorite, Name: "Crowd Favorite", Polarity: models.PolarityPositive,
		Description: "The bookmakers shave its odds."},
}

func init() {
	// Catalog invariants are asserted at construction time, not per draw.
	if len(standardTraits) == 0 || len(rareTraits) == 0 {
		panic("engine: trait catalog must not be empty")
	}
	hasNegative := false
	for _, t := range standardTraits {
		if t.Polarity == models.PolarityNegative {
			hasNegative = true
			break
		}
	}
	if !hasNegative {
		panic("engine: standard trait pool needs at least one negative trait")
	}
}

func positiveStandardTraits() []models.Trait {
	var out []models.Trait
	for _, t := range standardTraits {
		if t.Polarity == models.PolarityPositive {
			out = append(out, t)
		}
	}
	return out
}

func negativeStandardTraits() []models.Trait {
	var out []models.Trait
	for _, t := range standardTraits {
		if t.Polarity == models.PolarityNegative {
			out = append(out, t)
		}
	}
	return out
}
