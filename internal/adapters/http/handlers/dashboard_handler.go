package handlers

import (
	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetEmployeeDashboard returns the signed-in employee's overview
// @Summary Employee Dashboard
// @Description Attendance, leave, performance, loans and the next event for the signed-in employee
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /dashboard/employee [get]
func (h *DashboardHandler) GetEmployeeDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.Employee(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Employee dashboard retrieved successfully", data)
}

// GetAdminDashboard returns admin dashboard data
// @Summary Admin Dashboard
// @Description Get admin dashboard with organisation overview (superadmin only)
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /dashboard/admin [get]
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.Admin(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Admin dashboard retrieved successfully", data)
}

// GetNextEvent returns the nearest upcoming announcement
// @Summary Next event
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Router /events/next [get]
func (h *DashboardHandler) GetNextEvent(c *fiber.Ctx) error {
	event, err := h.dashboardService.NextEvent(c.UserContext(), middleware.CurrentWorkspace(c))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "", event)
}
