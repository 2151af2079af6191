package handlers

import (
	"strconv"

	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// ApproveLoanRequest optionally overrides the interest rate
type ApproveLoanRequest struct {
	InterestRate *float64 `json:"interest_rate"`
}

// List returns the caller's loans (all loans for superadmin)
// @Summary List loans
// @Tags Loans
// @Produce json
// @Success 200 {object} response.Response
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	list, err := h.loanService.List(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []domain.LoanRequest{}
	}
	return response.Success(c, "", list)
}

// Request files a new loan request
// @Summary Request loan
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.LoanRequestInput true "Loan request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Request(c *fiber.Ctx) error {
	var req services.LoanRequestInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	loan, err := h.loanService.Request(c.UserContext(), middleware.CurrentWorkspace(c), req)
	if err != nil {
		return fail(c, err)
	}

	return response.Created(c, "Loan request submitted", loan)
}

// Approve approves a pending loan and fixes its monthly payment
// @Summary Approve loan
// @Tags Loans
// @Accept json
// @Produce json
// @Param number path string true "Loan number"
// @Param body body ApproveLoanRequest false "Rate override"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{number}/approve [put]
func (h *LoanHandler) Approve(c *fiber.Ctx) error {
	var req ApproveLoanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
	}

	rate := -1.0
	if req.InterestRate != nil {
		if *req.InterestRate < 0 {
			return fail(c, domain.NewValidationError("interest_rate", "non_negative"))
		}
		rate = *req.InterestRate
	}

	loan, err := h.loanService.Approve(c.UserContext(), middleware.CurrentWorkspace(c), c.Params("number"), rate)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Loan approved", loan)
}

// Quote previews monthly repayment without filing a request
// @Summary Loan quote
// @Tags Loans
// @Produce json
// @Param amount query number true "Principal"
// @Param months query int true "Duration in months"
// @Param rate query number false "Annual rate in percent"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /loans/quote [get]
func (h *LoanHandler) Quote(c *fiber.Ctx) error {
	v := &domain.ValidationError{}
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		v.Add("amount", "format")
	}
	months, err := strconv.Atoi(c.Query("months"))
	if err != nil {
		v.Add("months", "format")
	}
	rate := -1.0
	if raw := c.Query("rate"); raw != "" {
		if rate, err = strconv.ParseFloat(raw, 64); err != nil || rate < 0 {
			v.Add("rate", "format")
		}
	}
	if err := v.OrNil(); err != nil {
		return fail(c, err)
	}

	quote, err := h.loanService.Quote(amount, months, rate)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "", quote)
}

// Schedule lists the installments of a loan
// @Summary Loan schedule
// @Tags Loans
// @Produce json
// @Param number path string true "Loan number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /loans/{number}/schedule [get]
func (h *LoanHandler) Schedule(c *fiber.Ctx) error {
	rows, err := h.loanService.Schedule(c.UserContext(), middleware.CurrentWorkspace(c), c.Params("number"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "", rows)
}
