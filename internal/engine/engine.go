// Package engine implements the month-by-month amortization simulation for
// a fixed-rate loan whose payments are subject to two independent ceilings:
// an absolute monthly payment cap and an annual cap on voluntary
// overpayment expressed as a percentage of the balance outstanding at the
// start of each year.
package engine

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// Terms holds the immutable parameters of one loan configuration.
type Terms struct {
	Name                        string
	Principal                   float64
	TermYears                   int
	InterestRate                float64 // nominal annual rate as a percentage
	MaxMonthlyPayment           float64
	AnnualOverpaymentPercentage float64 // percentage of the year-start balance
}

// InvalidTermsError reports a loan parameter that violates the construction
// contract.
type InvalidTermsError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidTermsError) Error() string {
	return fmt.Sprintf("invalid loan terms: %s = %v %s", e.Field, e.Value, e.Reason)
}

// InvalidArgumentError reports an invalid simulation argument.
type InvalidArgumentError struct {
	Argument string
	Value    int
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s = %d %s", e.Argument, e.Value, e.Reason)
}

// MonthRecord holds the values for a single simulated month. Overpayment is
// the portion of the payment above the base monthly payment and can be
// negative when the monthly cap holds the payment below the base.
type MonthRecord struct {
	Month            int // 1-based
	Payment          float64
	Interest         float64
	Principal        float64
	RemainingBalance float64
	Overpayment      float64
	LimitedByAnnual  float64
}

// PeriodResult holds the schedule and aggregate statistics for one
// simulation run.
type PeriodResult struct {
	Name                 string
	TermYears            int
	BaseMonthlyPayment   float64
	TotalInterest        float64
	TotalPaid            float64
	RemainingBalance     float64
	EquityBuilt          float64
	Months               []MonthRecord
	TotalOverpayments    float64
	TotalLimitedByAnnual float64
	AnalysisYears        int
}

// simulationState carries the mutable loop state for one Simulate run.
type simulationState struct {
	remainingBalance       float64
	annualOverpaymentLimit float64
	currentYearOverpayment float64
	totalInterest          float64
	totalPaid              float64
	totalOverpayments      float64
	totalLimitedByAnnual   float64
}

// Engine computes payment schedules for a single loan configuration. The
// base monthly payment is derived once at construction and the engine holds
// no other state, so one engine may run any number of simulations.
type Engine struct {
	terms              Terms
	monthlyRate        float64
	baseMonthlyPayment float64
	logger             *zap.Logger
}

// CalculateBaseMonthlyPayment calculates the level payment that fully
// amortizes the principal over the term using the standard annuity formula.
func CalculateBaseMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if annualInterestRate == 0 {
		// The annuity formula is degenerate at zero rate; divide evenly.
		return principal / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	return principal * periodicInterestRate * power / (power - 1.00)
}

// New validates the loan terms and returns an engine with the base monthly
// payment precomputed. A max monthly payment below the base payment is
// tolerated; such a loan simply never amortizes within its term.
func New(logger *zap.Logger, terms Terms) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if terms.Principal <= 0 {
		return nil, &InvalidTermsError{Field: "principal", Value: terms.Principal, Reason: "must be positive"}
	}
	if terms.TermYears <= 0 {
		return nil, &InvalidTermsError{Field: "termYears", Value: float64(terms.TermYears), Reason: "must be positive"}
	}
	if terms.InterestRate < 0 {
		return nil, &InvalidTermsError{Field: "interestRate", Value: terms.InterestRate, Reason: "must not be negative"}
	}
	if terms.MaxMonthlyPayment <= 0 {
		return nil, &InvalidTermsError{Field: "maxMonthlyPayment", Value: terms.MaxMonthlyPayment, Reason: "must be positive"}
	}
	if terms.AnnualOverpaymentPercentage < 0 {
		return nil, &InvalidTermsError{Field: "annualOverpaymentPercentage", Value: terms.AnnualOverpaymentPercentage, Reason: "must not be negative"}
	}

	return &Engine{
		terms:              terms,
		monthlyRate:        terms.InterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear),
		baseMonthlyPayment: CalculateBaseMonthlyPayment(terms.Principal, terms.InterestRate, terms.TermYears*constants.MonthsPerYear),
		logger:             logger,
	}, nil
}

// Terms returns the loan terms the engine was constructed with.
func (e *Engine) Terms() Terms {
	return e.terms
}

// BaseMonthlyPayment returns the precomputed base monthly payment.
func (e *Engine) BaseMonthlyPayment() float64 {
	return e.baseMonthlyPayment
}

// Simulate runs the monthly amortization loop over the given horizon, which
// may be shorter or longer than the loan term, and returns the schedule
// with aggregate statistics.
//
// The loop does not stop when the loan pays off early: past full payoff it
// keeps applying the same capped-payment arithmetic to a non-positive
// balance, which yields negative interest and an oscillating balance for
// the remaining months. This matches the legacy calculator this engine
// replaces; see DESIGN.md before changing it.
func (e *Engine) Simulate(analysisYears int) (*PeriodResult, error) {
	if analysisYears <= 0 {
		return nil, &InvalidArgumentError{Argument: "analysisYears", Value: analysisYears, Reason: "must be positive"}
	}

	totalMonths := analysisYears * constants.MonthsPerYear
	result := &PeriodResult{
		Name:               e.terms.Name,
		TermYears:          e.terms.TermYears,
		BaseMonthlyPayment: e.baseMonthlyPayment,
		Months:             make([]MonthRecord, 0, totalMonths),
		AnalysisYears:      analysisYears,
	}

	state := simulationState{remainingBalance: e.terms.Principal}

	for month := 1; month <= totalMonths; month++ {
		// The annual overpayment allowance is recomputed from the balance
		// as it stands at the first month of each year.
		if (month-1)%constants.MonthsPerYear == 0 {
			state.annualOverpaymentLimit = mathutil.ApplyPercentage(state.remainingBalance, e.terms.AnnualOverpaymentPercentage)
			state.currentYearOverpayment = 0
			e.logger.Debug(fmt.Sprintf("month %d: annual overpayment limit set to %.2f for loan %s",
				month, state.annualOverpaymentLimit, e.terms.Name),
				zap.String("op", "engine.Simulate"),
			)
		}

		monthlyInterest := state.remainingBalance * e.monthlyRate

		// The payment that would retire the loan this month, before caps.
		idealPayment := state.remainingBalance + monthlyInterest
		paymentAfterMonthlyLimit := mathutil.Min(e.terms.MaxMonthlyPayment, idealPayment)

		overpayment := mathutil.Max(0, paymentAfterMonthlyLimit-e.baseMonthlyPayment)
		actualPayment := paymentAfterMonthlyLimit
		limitedByAnnual := 0.00
		if state.currentYearOverpayment+overpayment > state.annualOverpaymentLimit {
			allowedOverpayment := mathutil.Max(0, state.annualOverpaymentLimit-state.currentYearOverpayment)
			actualPayment = e.baseMonthlyPayment + allowedOverpayment
			limitedByAnnual = paymentAfterMonthlyLimit - actualPayment
			state.totalLimitedByAnnual += limitedByAnnual
			e.logger.Debug(fmt.Sprintf("month %d: overpayment clamped by annual limit, payment %.2f curtailed by %.2f",
				month, actualPayment, limitedByAnnual),
				zap.String("op", "engine.Simulate"),
			)
		}

		actualOverpayment := actualPayment - e.baseMonthlyPayment
		if actualOverpayment > 0 {
			state.currentYearOverpayment += actualOverpayment
		}
		if month%constants.MonthsPerYear == 0 {
			state.totalOverpayments += state.currentYearOverpayment
		}

		state.remainingBalance = state.remainingBalance + monthlyInterest - actualPayment
		state.totalInterest += monthlyInterest
		state.totalPaid += actualPayment

		result.Months = append(result.Months, MonthRecord{
			Month:            month,
			Payment:          actualPayment,
			Interest:         monthlyInterest,
			Principal:        actualPayment - monthlyInterest,
			RemainingBalance: state.remainingBalance,
			Overpayment:      actualOverpayment,
			LimitedByAnnual:  limitedByAnnual,
		})
	}

	result.TotalInterest = state.totalInterest
	result.TotalPaid = state.totalPaid
	result.RemainingBalance = state.remainingBalance
	result.EquityBuilt = e.terms.Principal - state.remainingBalance
	result.TotalOverpayments = state.totalOverpayments
	result.TotalLimitedByAnnual = state.totalLimitedByAnnual

	return result, nil
}
