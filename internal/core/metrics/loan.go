package metrics

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"hrdesk/internal/core/domain"
)

// ComputeLoanAmortization returns the fixed monthly payment rounded to cents.
// A zero rate splits the principal evenly.
func ComputeLoanAmortization(principal float64, durationMonths int, annualInterestRatePercent float64) (float64, error) {
	if err := checkLoanArgs(principal, durationMonths, annualInterestRatePercent); err != nil {
		return 0, err
	}
	payment, err := monthlyPayment(principal, durationMonths, annualInterestRatePercent)
	if err != nil {
		return 0, err
	}
	return payment.InexactFloat64(), nil
}

// MaxLoanMonths is the longest accepted repayment term
const MaxLoanMonths = 600

func checkLoanArgs(principal float64, months int, rate float64) error {
	switch {
	case months <= 0 || months > MaxLoanMonths:
		return fmt.Errorf("duration %d months: %w", months, domain.ErrInvalidArgument)
	case math.IsNaN(principal) || math.IsInf(principal, 0) || principal < 0:
		return fmt.Errorf("principal %v: %w", principal, domain.ErrInvalidArgument)
	case math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0:
		return fmt.Errorf("rate %v: %w", rate, domain.ErrInvalidArgument)
	}
	return nil
}

func monthlyPayment(principal float64, months int, rate float64) (decimal.Decimal, error) {
	p := decimal.NewFromFloat(principal)
	if rate == 0 {
		return p.Div(decimal.NewFromInt(int64(months))).Round(2), nil
	}

	r := rate / 1200
	growth := math.Pow(1+r, float64(months))
	payment := principal * r * growth / (growth - 1)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return decimal.Zero, fmt.Errorf("principal %v over %d months at %v%%: %w", principal, months, rate, domain.ErrInvalidArgument)
	}
	return decimal.NewFromFloat(payment).Round(2), nil
}

// ScheduleRow is one month of a repayment schedule
type ScheduleRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// LoanSchedule lists every monthly installment. The final row absorbs
// rounding so the balance ends at exactly zero.
func LoanSchedule(principal float64, durationMonths int, annualInterestRatePercent float64) ([]ScheduleRow, error) {
	if err := checkLoanArgs(principal, durationMonths, annualInterestRatePercent); err != nil {
		return nil, err
	}

	payment, err := monthlyPayment(principal, durationMonths, annualInterestRatePercent)
	if err != nil {
		return nil, err
	}
	monthlyRate := decimal.NewFromFloat(annualInterestRatePercent).Div(decimal.NewFromInt(1200))
	balance := decimal.NewFromFloat(principal)

	rows := make([]ScheduleRow, 0, durationMonths)
	for m := 1; m <= durationMonths; m++ {
		interest := balance.Mul(monthlyRate).Round(2)
		pay := payment
		if m == durationMonths {
			pay = balance.Add(interest)
		}
		princ := pay.Sub(interest)
		balance = balance.Sub(princ)

		rows = append(rows, ScheduleRow{
			Month:     m,
			Payment:   pay.InexactFloat64(),
			Interest:  interest.InexactFloat64(),
			Principal: princ.InexactFloat64(),
			Balance:   balance.InexactFloat64(),
		})
	}
	return rows, nil
}
