package handlers

import (
	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List returns attendance records in a date range with their metrics
// @Summary Attendance report
// @Tags Attendance
// @Produce json
// @Param employee_id query string false "Employee (approvers only for others)"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	from, err := dateQuery(c, "from")
	if err != nil {
		return fail(c, err)
	}
	to, err := dateQuery(c, "to")
	if err != nil {
		return fail(c, err)
	}

	report, err := h.attendanceService.Range(c.UserContext(), middleware.CurrentWorkspace(c), c.Query("employee_id"), from, to)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "", report)
}
