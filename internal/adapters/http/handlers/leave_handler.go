package handlers

import (
	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LeaveHandler handles leave endpoints
type LeaveHandler struct {
	leaveService *services.LeaveService
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaveService *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// DecideLeaveRequest carries an approval decision
type DecideLeaveRequest struct {
	Status domain.LeaveStatus `json:"status"`
}

// List returns the employee's leave requests starting within a date range
// @Summary List leave
// @Tags Leave
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /leave [get]
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	from, err := dateQuery(c, "from")
	if err != nil {
		return fail(c, err)
	}
	to, err := dateQuery(c, "to")
	if err != nil {
		return fail(c, err)
	}

	list, err := h.leaveService.List(c.UserContext(), middleware.CurrentWorkspace(c), from, to)
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []domain.LeaveRequest{}
	}

	return response.Success(c, "", list)
}

// Submit files a new leave request
// @Summary Request leave
// @Tags Leave
// @Accept json
// @Produce json
// @Param body body services.SubmitLeaveInput true "Leave request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /leave [post]
func (h *LeaveHandler) Submit(c *fiber.Ctx) error {
	var req services.SubmitLeaveInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	created, err := h.leaveService.Submit(c.UserContext(), middleware.CurrentWorkspace(c), req)
	if err != nil {
		return fail(c, err)
	}

	return response.Created(c, "Leave request submitted", created)
}

// Decide approves or rejects a pending request
// @Summary Decide leave
// @Tags Leave
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param body body DecideLeaveRequest true "Decision"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /leave/{id}/status [put]
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	var req DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	updated, err := h.leaveService.Decide(c.UserContext(), middleware.CurrentWorkspace(c), c.Params("id"), req.Status)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Leave request updated", updated)
}

// Cancel withdraws the caller's own pending request
// @Summary Cancel leave
// @Tags Leave
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /leave/{id} [delete]
func (h *LeaveHandler) Cancel(c *fiber.Ctx) error {
	if err := h.leaveService.Cancel(c.UserContext(), middleware.CurrentWorkspace(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Leave request cancelled", nil)
}

// Balance returns remaining leave overall and per type
// @Summary Leave balance
// @Tags Leave
// @Produce json
// @Success 200 {object} response.Response
// @Router /leave/balance [get]
func (h *LeaveHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.leaveService.Remaining(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "", balance)
}
