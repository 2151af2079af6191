package services

import (
	"context"
	"time"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/metrics"
)

// AttendanceService serves filtered attendance with its metrics
type AttendanceService struct {
	backend Backend
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(backend Backend) *AttendanceService {
	return &AttendanceService{backend: backend}
}

// AttendanceReport is a date-filtered attendance view
type AttendanceReport struct {
	Records          []domain.AttendanceRecord `json:"records"`
	Metrics          metrics.AttendanceMetrics `json:"metrics"`
	TotalHoursWorked string                    `json:"total_hours_worked"`
}

// Range refreshes attendance and keeps records within [from, to]. Approvers
// may pass another employeeID; empty means the signed-in employee.
func (s *AttendanceService) Range(ctx context.Context, ws *Workspace, employeeID string, from, to time.Time) (*AttendanceReport, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	if employeeID == "" {
		employeeID = sess.EmployeeID
	}
	if employeeID != sess.EmployeeID && !isApprover(sess) {
		return nil, domain.ErrForbidden
	}

	records, err := s.backend.ListAttendance(ctx, sess.Token, employeeID)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplaceAttendance(records)

	filtered, err := metrics.FilterByDateRange(ws.Store.Attendance(), from, to, metrics.AttendanceDate)
	if err != nil {
		return nil, err
	}

	m := metrics.ComputeAttendanceMetrics(filtered)
	return &AttendanceReport{
		Records:          filtered,
		Metrics:          m,
		TotalHoursWorked: metrics.FormatHMS(m.TotalHoursWorkedSeconds),
	}, nil
}
