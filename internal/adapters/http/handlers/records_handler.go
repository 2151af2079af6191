package handlers

import (
	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/pagination"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RecordsHandler serves payroll, training, performance, notifications and the employee directory
type RecordsHandler struct {
	recordsService *services.RecordsService
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(recordsService *services.RecordsService) *RecordsHandler {
	return &RecordsHandler{recordsService: recordsService}
}

// Payroll godoc
// @Summary Payroll history
// @Tags Records
// @Produce json
// @Success 200 {object} response.Response
// @Router /payroll [get]
func (h *RecordsHandler) Payroll(c *fiber.Ctx) error {
	list, err := h.recordsService.Payroll(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "", pagination.Slice(list, pagination.GetParams(c)))
}

// Training godoc
// @Summary Training records
// @Tags Records
// @Produce json
// @Success 200 {object} response.Response
// @Router /training [get]
func (h *RecordsHandler) Training(c *fiber.Ctx) error {
	list, err := h.recordsService.Training(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "", pagination.Slice(list, pagination.GetParams(c)))
}

// Performance godoc
// @Summary Performance series
// @Tags Records
// @Produce json
// @Success 200 {object} response.Response
// @Router /performance [get]
func (h *RecordsHandler) Performance(c *fiber.Ctx) error {
	list, err := h.recordsService.Performance(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "", list)
}

// Notifications godoc
// @Summary Notifications
// @Tags Records
// @Produce json
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *RecordsHandler) Notifications(c *fiber.Ctx) error {
	list, err := h.recordsService.Notifications(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "", pagination.Slice(list, pagination.GetParams(c)))
}

// MarkNotificationRead godoc
// @Summary Mark notification read
// @Tags Records
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [put]
func (h *RecordsHandler) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.recordsService.MarkNotificationRead(c.UserContext(), middleware.CurrentWorkspace(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Notification marked as read", nil)
}

// Employees godoc
// @Summary Employee directory (superadmin)
// @Tags Records
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /employees [get]
func (h *RecordsHandler) Employees(c *fiber.Ctx) error {
	list, err := h.recordsService.Employees(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "", pagination.Slice(list, pagination.GetParams(c)))
}

// Employee godoc
// @Summary Employee detail
// @Tags Records
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /employees/{id} [get]
func (h *RecordsHandler) Employee(c *fiber.Ctx) error {
	emp, err := h.recordsService.Employee(c.UserContext(), middleware.CurrentWorkspace(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "", emp)
}
