package engine

import (
	"fmt"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// passiveEvents are flat money swings. They are drawn before a race but
// applied only after it concludes, so a swing never retroactively changes
// a bet placed against the pre-event balance.
var passiveEvents = []models.RandomEvent{
	{ID: "sponsor_bonus", Category: models.EventPassive, Title: "Sponsor Bonus",
		Description: "A feed company wants its logo on your silks.", MoneyDelta: 500},
	{ID: "vet_bill", Category: models.EventPassive, Title: "Vet Bill",
		Description: "A routine checkup turns into an expensive afternoon.", MoneyDelta: -400},
	{ID: "stable_repair", Category: models.EventPassive, Title: "Stable Repair",
		Description: "The storm took half the roof with it.", MoneyDelta: -300},
	{ID: "merchandise", Category: models.EventPassive, Title: "Merchandise Sales",
		Description: "The gift shop cannot keep your horse's plush in stock.", MoneyDelta: 350},
	{ID: "tax_rebate", Category: models.EventPassive, Title: "Tax Rebate",
		Description: "The racing commission owes you from last season.", MoneyDelta: 200},
	{ID: "feed_spike", Category: models.EventPassive, Title: "Feed Price Spike",
		Description: "Oat futures are through the roof.", MoneyDelta: -250},
	{ID: "exhibition_fee", Category: models.EventPassive, Title: "Exhibition Fee",
		Description: "A county fair pays handsomely for a parade lap.", MoneyDelta: 600},
	{ID: "transport", Category: models.EventPassive, Title: "Transport Breakdown",
		Description: "The horse box died on the motorway.", MoneyDelta: -350},
	{ID: "fan_donation", Category: models.EventPassive, Title: "Fan Donation",
		Description: "An anonymous admirer sends a gift for the stable.", MoneyDelta: 150},
	{ID: "insurance", Category: models.EventPassive, Title: "Insurance Premium",
		Description: "The underwriters have reassessed your risk profile.", MoneyDelta: -200},
}

// choiceEvents require an explicit accept or decline. Declining has no
// effect; accepting runs the effect in ApplyChoiceEvent.
var choiceEvents = []models.RandomEvent{
	{ID: "experimental_diet", Category: models.EventChoice, Choice: models.ChoiceExperimentalDiet,
		Title:       "Experimental Diet",
		Description: "A nutritionist offers an unproven high-protein regimen.", Cost: 400},
	{ID: "hypnotherapy", Category: models.EventChoice, Choice: models.ChoiceHypnotherapy,
		Title:       "Equine Hypnotherapy",
		Description: "A calm horse is a controllable horse. Allegedly.", Cost: 350},
	{ID: "shady_tipster", Category: models.EventChoice, Choice: models.ChoiceShadyTipster,
		Title:       "Shady Tipster",
		Description: "A man in a long coat claims to know where money sleeps.", Cost: 250},
	{ID: "premium_feed", Category: models.EventChoice, Choice: models.ChoicePremiumFeed,
		Title:       "Premium Feed",
		Description: "Imported, organic, and absurdly expensive.", Cost: 500},
	{ID: "night_training", Category: models.EventChoice, Choice: models.ChoiceNightTraining,
		Title:       "Night Training",
		Description: "Free track time after hours, at the cost of sleep.", Cost: 0},
	{ID: "photo_shoot", Category: models.EventChoice, Choice: models.ChoicePhotoShoot,
		Title:       "Magazine Photo Shoot",
		Description: "A glossy spread pays a flat fee up front.", Cost: 0},
}

func init() {
	if len(passiveEvents) == 0 || len(choiceEvents) == 0 {
		panic("engine: event catalogs must not be empty")
	}
}

// NextEvent draws the live event for the coming race cycle: 70% passive,
// 30% choice.
func (e *Engine) NextEvent() models.RandomEvent {
	if e.rng.Float64() < 0.7 {
		return passiveEvents[e.rng.Intn(len(passiveEvents))]
	}
	return choiceEvents[e.rng.Intn(len(choiceEvents))]
}

// ApplyPassiveEvent settles a pending passive event's money delta.
func (e *Engine) ApplyPassiveEvent(s *models.GameState, ev models.RandomEvent) (*models.GameState, string) {
	next := s.Clone()
	next.PlayerMoney += ev.MoneyDelta
	if ev.MoneyDelta >= 0 {
		return next, fmt.Sprintf("%s: +%d.", ev.Title, ev.MoneyDelta)
	}
	return next, fmt.Sprintf("%s: %d.", ev.Title, ev.MoneyDelta)
}

// ApplyChoiceEvent runs an accepted choice event's effect. This is the
// third trait-free effect site: each kind is a deterministic or
// probabilistic stat/money mutation plus a result message.
func (e *Engine) ApplyChoiceEvent(s *models.GameState, ev models.RandomEvent) (*models.GameState, string) {
	next := s.Clone()
	h := next.PlayerHorse
	next.PlayerMoney -= ev.Cost

	var msg string
	switch ev.Choice {
	case models.ChoiceExperimentalDiet:
		if e.rng.Float64() < 0.6 {
			h.Endurance += 5
			msg = "The diet works: +5 endurance."
		} else {
			h.Recovery -= 3
			msg = "The diet backfires: -3 recovery."
		}
	case models.ChoiceHypnotherapy:
		if e.rng.Float64() < 0.5 {
			h.Control += 4
			msg = "Eerily effective: +4 control."
		} else {
			h.Control -= 2
			msg = "Your horse now fears pocket watches: -2 control."
		}
	case models.ChoiceShadyTipster:
		if e.rng.Float64() < 0.4 {
			next.PlayerMoney += 700
			msg = "The tip was good: +700."
		} else {
			msg = "The tip was nonsense. The coat was nice, though."
		}
	case models.ChoicePremiumFeed:
		h.Endurance += 3
		h.Recovery += 3
		msg = "Glossy coat, deep sleep: +3 endurance, +3 recovery."
	case models.ChoiceNightTraining:
		h.DisplayedSpeed += 4
		h.Recovery -= 6
		msg = "Faster, but exhausted: +4 speed, -6 recovery."
	case models.ChoicePhotoShoot:
		next.PlayerMoney += 450
		msg = "The camera loves your horse: +450."
	default:
		msg = "Nothing came of it."
	}

	h.ClampStats()
	h.RecomputeActualSpeed()
	return next, msg
}
