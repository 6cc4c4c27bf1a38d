package engine

import (
	"testing"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/models"
)

func TestLoanAmountFormula(t *testing.T) {
	e := testEngine(1)
	s := testState(0)
	s.PlayerMoney = 1000

	next, _ := e.TakeLoan(s)

	// floor(1000 * 0.5) + 200 = 700
	if next.PlayerMoney != 1700 {
		t.Errorf("Expected money 1700 after loan, got %d", next.PlayerMoney)
	}
	if next.LoanAmount != 700 {
		t.Errorf("Expected outstanding debt 700, got %d", next.LoanAmount)
	}
	if !next.HasUsedLoanThisRace {
		t.Errorf("Loan lock must be set after disbursement")
	}
}

func TestLoanIdempotentPerCycle(t *testing.T) {
	e := testEngine(1)
	s := testState(0)

	first, _ := e.TakeLoan(s)
	second, _ := e.TakeLoan(first)

	if second.PlayerMoney != first.PlayerMoney {
		t.Errorf("Second loan in one cycle changed money: %d vs %d",
			second.PlayerMoney, first.PlayerMoney)
	}
	if second.LoanAmount != first.LoanAmount {
		t.Errorf("Second loan in one cycle changed debt: %d vs %d",
			second.LoanAmount, first.LoanAmount)
	}
}

func TestUnderhandedLoanTrimmedAndRateRaised(t *testing.T) {
	e := testEngine(1)
	s := testState(0)
	s.PlayerMoney = 1000
	s.PlayerHorse.Attributes = append(s.PlayerHorse.Attributes, models.Trait{
		Kind: models.TraitUnderhandedTactics, Name: "Underhanded Tactics",
		Polarity: models.PolarityNegative,
	})

	next, _ := e.TakeLoan(s)

	// floor(700 * 0.893) = 625
	if next.LoanAmount != 625 {
		t.Errorf("Expected trimmed disbursement 625, got %d", next.LoanAmount)
	}
	if rate := e.LoanInterestRate(next); rate != 1.40 {
		t.Errorf("Expected underhanded interest rate 1.40, got %v", rate)
	}
	if rate := e.LoanInterestRate(testState(0)); rate != 1.25 {
		t.Errorf("Expected standard interest rate 1.25, got %v", rate)
	}
}

func TestSettleDebt(t *testing.T) {
	e := testEngine(1)
	s := testState(0)
	s.PlayerMoney = 5000
	s.LoanAmount = 1000

	if got := e.SettleDebt(s); got != 3750 {
		t.Errorf("Expected net worth 5000 - 1000*1.25 = 3750, got %d", got)
	}
}
