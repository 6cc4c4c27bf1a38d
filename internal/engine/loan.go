package engine

import (
	"fmt"
	"math"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

// AvailableLoan returns the credit line the bank offers right now.
func (e *Engine) AvailableLoan(s *models.GameState) int {
	return int(math.Floor(float64(s.PlayerMoney)*e.bal.LoanFraction)) + e.bal.LoanBase
}

// TakeLoan disburses the available credit line, adding it to both cash and
// cumulative debt. One loan per race cycle: a second call before the lock
// resets is a strict no-op. Under the Underhanded Tactics trait the
// disbursement is trimmed to pre-account for the 40% season-end interest.
func (e *Engine) TakeLoan(s *models.GameState) (*models.GameState, string) {
	if s.HasUsedLoanThisRace {
		return s, "The bank has already paid out this race."
	}

	next := s.Clone()
	amount := e.AvailableLoan(next)
	if next.PlayerHorse.HasTrait(models.TraitUnderhandedTactics) {
		amount = int(float64(amount) * e.bal.UnderhandedLoanScale)
	}

	next.PlayerMoney += amount
	next.LoanAmount += amount
	next.HasUsedLoanThisRace = true
	return next, fmt.Sprintf("Loan approved: %d added to your balance.", amount)
}

// LoanInterestRate returns the season-end multiplier applied to the
// outstanding debt.
func (e *Engine) LoanInterestRate(s *models.GameState) float64 {
	if s.PlayerHorse != nil && s.PlayerHorse.HasTrait(models.TraitUnderhandedTactics) {
		return e.bal.InterestUnderhanded
	}
	return e.bal.InterestStandard
}

// SettleDebt computes the season-end repayment and returns the player's net
// worth after interest.
func (e *Engine) SettleDebt(s *models.GameState) int {
	return s.PlayerMoney - int(float64(s.LoanAmount)*e.LoanInterestRate(s))
}
