package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/metrics"
	"hrdesk/internal/pkg/logger"
)

// LoanService handles employee loan requests
type LoanService struct {
	backend     Backend
	defaultRate float64
	log         *logger.Logger
}

// NewLoanService creates a new loan service. defaultRate is the annual
// percentage applied to quotes and pending-loan schedules.
func NewLoanService(backend Backend, defaultRate float64, log *logger.Logger) *LoanService {
	if log == nil {
		log = logger.Nop()
	}
	return &LoanService{backend: backend, defaultRate: defaultRate, log: log}
}

// LoanRequestInput represents a new loan application
type LoanRequestInput struct {
	Amount         float64 `json:"amount"`
	DurationMonths int     `json:"duration_months"`
	Purpose        string  `json:"purpose"`
}

// LoanQuote is the repayment preview for an amount
type LoanQuote struct {
	Principal      float64 `json:"principal"`
	DurationMonths int     `json:"duration_months"`
	InterestRate   float64 `json:"interest_rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// DefaultRate is the configured annual interest rate
func (s *LoanService) DefaultRate() float64 { return s.defaultRate }

// List refreshes the employee's loans
func (s *LoanService) List(ctx context.Context, ws *Workspace) ([]domain.LoanRequest, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	employeeID := sess.EmployeeID
	if sess.IsSuperAdmin() {
		employeeID = ""
	}
	loans, err := s.backend.ListLoans(ctx, sess.Token, employeeID)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplaceLoans(loans)
	return loans, nil
}

// Request records a pending loan with a fresh loan number and submits it
func (s *LoanService) Request(ctx context.Context, ws *Workspace, input LoanRequestInput) (domain.LoanRequest, error) {
	sess, err := ws.Session()
	if err != nil {
		return domain.LoanRequest{}, err
	}

	v := &domain.ValidationError{}
	if !(input.Amount > 0) || math.IsInf(input.Amount, 0) {
		v.Add("amount", "positive")
	}
	if input.DurationMonths <= 0 {
		v.Add("duration_months", "positive")
	} else if input.DurationMonths > metrics.MaxLoanMonths {
		v.Add("duration_months", "max")
	}
	if err := v.OrNil(); err != nil {
		return domain.LoanRequest{}, err
	}

	loan := ws.Store.AddLoan(domain.LoanRequest{
		EmployeeID:     sess.EmployeeID,
		Amount:         input.Amount,
		DurationMonths: input.DurationMonths,
		Purpose:        strings.TrimSpace(input.Purpose),
	})

	if _, err := s.backend.CreateLoan(ctx, sess.Token, loan); err != nil {
		ws.Store.RemoveLoan(loan.LoanNumber)
		s.log.Warn().Err(err).Str("loan_number", loan.LoanNumber).Msg("create loan failed")
		return domain.LoanRequest{}, err
	}

	s.log.Info().Str("loan_number", loan.LoanNumber).Float64("amount", loan.Amount).Msg("loan requested")
	return loan, nil
}

// Approve computes and stores the monthly payment once. Superadmin only.
// rate < 0 selects the default rate.
func (s *LoanService) Approve(ctx context.Context, ws *Workspace, number string, rate float64) (domain.LoanRequest, error) {
	sess, err := ws.Session()
	if err != nil {
		return domain.LoanRequest{}, err
	}
	if !sess.IsSuperAdmin() {
		return domain.LoanRequest{}, domain.ErrForbidden
	}
	if rate < 0 {
		rate = s.defaultRate
	}

	prev, ok := ws.Store.LoanByNumber(number)
	if !ok {
		if _, err := s.List(ctx, ws); err != nil {
			return domain.LoanRequest{}, err
		}
		if prev, ok = ws.Store.LoanByNumber(number); !ok {
			return domain.LoanRequest{}, fmt.Errorf("loan %s: %w", number, domain.ErrNotFound)
		}
	}

	approved, err := ws.Store.ApproveLoan(number, rate)
	if err != nil {
		return approved, err
	}

	if _, err := s.backend.UpdateLoan(ctx, sess.Token, approved); err != nil {
		ws.Store.PutLoan(prev)
		s.log.Warn().Err(err).Str("loan_number", number).Msg("approve loan failed")
		return prev, err
	}

	s.log.Info().Str("loan_number", number).Float64("monthly_payment", *approved.MonthlyPayment).Msg("loan approved")
	return approved, nil
}

// Quote previews the repayment of principal over months at rate (default when rate < 0)
func (s *LoanService) Quote(principal float64, months int, rate float64) (LoanQuote, error) {
	if rate < 0 {
		rate = s.defaultRate
	}
	payment, err := metrics.ComputeLoanAmortization(principal, months, rate)
	if err != nil {
		return LoanQuote{}, err
	}

	total := decimal.NewFromFloat(payment).Mul(decimal.NewFromInt(int64(months)))
	interest := total.Sub(decimal.NewFromFloat(principal))
	if interest.IsNegative() {
		interest = decimal.Zero
	}

	return LoanQuote{
		Principal:      principal,
		DurationMonths: months,
		InterestRate:   rate,
		MonthlyPayment: payment,
		TotalPayment:   total.Round(2).InexactFloat64(),
		TotalInterest:  interest.Round(2).InexactFloat64(),
	}, nil
}

// Schedule lists the installments of a loan. Pending loans use the default rate.
func (s *LoanService) Schedule(ctx context.Context, ws *Workspace, number string) ([]metrics.ScheduleRow, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}

	loan, ok := ws.Store.LoanByNumber(number)
	if !ok {
		if _, err := s.List(ctx, ws); err != nil {
			return nil, err
		}
		if loan, ok = ws.Store.LoanByNumber(number); !ok {
			return nil, fmt.Errorf("loan %s: %w", number, domain.ErrNotFound)
		}
	}
	if loan.EmployeeID != sess.EmployeeID && !sess.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	rate := loan.InterestRate
	if loan.Status != domain.LoanApproved {
		rate = s.defaultRate
	}
	return metrics.LoanSchedule(loan.Amount, loan.DurationMonths, rate)
}
