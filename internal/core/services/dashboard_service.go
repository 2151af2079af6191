package services

import (
	"context"
	"time"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/metrics"
	"hrdesk/internal/pkg/clock"
	"hrdesk/internal/pkg/logger"
)

// LeaveConfig is the leave allowance policy
type LeaveConfig struct {
	TotalAllowance int
	ByType         map[string]int
	Policy         metrics.LeavePolicy
}

// DashboardService builds dashboard summaries from backend data
type DashboardService struct {
	backend Backend
	leave   LeaveConfig
	clock   clock.Clock
	log     *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(backend Backend, leave LeaveConfig, clk clock.Clock, log *logger.Logger) *DashboardService {
	if clk == nil {
		clk = clock.Real()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardService{backend: backend, leave: leave, clock: clk, log: log}
}

// ============================================================
// Employee Dashboard
// ============================================================

// EmployeeDashboard represents the signed-in employee's summary
type EmployeeDashboard struct {
	Profile             domain.Profile            `json:"profile"`
	Attendance          metrics.AttendanceMetrics `json:"attendance"`
	TotalHoursWorked    string                    `json:"total_hours_worked"`
	RemainingLeave      int                       `json:"remaining_leave"`
	LeaveBalanceByType  map[string]int            `json:"leave_balance_by_type"`
	Performance         metrics.Trend             `json:"performance"`
	NextEvent           *domain.Event             `json:"next_event"`
	ActiveLoans         []domain.LoanRequest      `json:"active_loans"`
	LatestPayroll       *domain.PayrollRecord     `json:"latest_payroll"`
	TrainingCompleted   int                       `json:"training_completed"`
	TrainingTotal       int                       `json:"training_total"`
	UnreadNotifications int                       `json:"unread_notifications"`
}

// Employee refreshes the workspace's volatile slices and summarises them
func (s *DashboardService) Employee(ctx context.Context, ws *Workspace) (*EmployeeDashboard, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	if err := s.refreshEmployee(ctx, ws, sess); err != nil {
		return nil, err
	}

	st := ws.Store
	data := &EmployeeDashboard{
		Attendance:          metrics.ComputeAttendanceMetrics(st.Attendance()),
		Performance:         metrics.ComputePerformanceTrend(metrics.Scores(st.Performance())),
		UnreadNotifications: st.UnreadNotifications(),
		ActiveLoans:         []domain.LoanRequest{},
	}
	data.Profile, _ = st.Profile()
	data.TotalHoursWorked = metrics.FormatHMS(data.Attendance.TotalHoursWorkedSeconds)

	leave := st.Leave()
	data.RemainingLeave = metrics.RemainingLeave(s.leave.TotalAllowance, leave, s.leave.Policy)
	data.LeaveBalanceByType = metrics.ComputeLeaveBalanceByType(s.leave.ByType, leave, s.leave.Policy)

	if next, ok := metrics.FindNextUpcomingEvent(st.Announcements(), s.clock.Now()); ok {
		data.NextEvent = &next
	}

	for _, l := range st.Loans() {
		if l.Status != domain.LoanRejected {
			data.ActiveLoans = append(data.ActiveLoans, l)
		}
	}

	if payroll := st.Payroll(); len(payroll) > 0 {
		latest := payroll[len(payroll)-1]
		data.LatestPayroll = &latest
	}

	for _, t := range st.Training() {
		data.TrainingTotal++
		if t.CompletedAt != nil {
			data.TrainingCompleted++
		}
	}

	return data, nil
}

func (s *DashboardService) refreshEmployee(ctx context.Context, ws *Workspace, sess *domain.Session) error {
	token, id := sess.Token, sess.EmployeeID
	st := ws.Store

	attendance, err := s.backend.ListAttendance(ctx, token, id)
	if err != nil {
		return err
	}
	st.ReplaceAttendance(attendance)

	leave, err := s.backend.ListLeave(ctx, token, id)
	if err != nil {
		return err
	}
	st.ReplaceLeave(leave)

	performance, err := s.backend.ListPerformance(ctx, token, id)
	if err != nil {
		return err
	}
	st.ReplacePerformance(performance)

	announcements, err := s.backend.ListAnnouncements(ctx, token)
	if err != nil {
		return err
	}
	st.ReplaceAnnouncements(announcements)

	loans, err := s.backend.ListLoans(ctx, token, id)
	if err != nil {
		return err
	}
	st.ReplaceLoans(loans)

	payroll, err := s.backend.ListPayroll(ctx, token, id)
	if err != nil {
		return err
	}
	st.ReplacePayroll(payroll)

	training, err := s.backend.ListTraining(ctx, token, id)
	if err != nil {
		return err
	}
	st.ReplaceTraining(training)

	notifications, err := s.backend.ListNotifications(ctx, token, id)
	if err != nil {
		return err
	}
	st.ReplaceNotifications(notifications)

	return nil
}

// ============================================================
// Admin Dashboard
// ============================================================

// AdminDashboard represents the organisation-wide summary
type AdminDashboard struct {
	Headcount        int                       `json:"headcount"`
	Attendance       metrics.AttendanceMetrics `json:"attendance"`
	TotalHoursWorked string                    `json:"total_hours_worked"`
	PendingLeave     int                       `json:"pending_leave"`
	OnLeaveToday     int                       `json:"on_leave_today"`
	PendingLoans     []domain.LoanRequest      `json:"pending_loans"`
	ApprovedLoans    int                       `json:"approved_loans"`
	NextEvent        *domain.Event             `json:"next_event"`
}

// Admin summarises every employee. Superadmin only.
func (s *DashboardService) Admin(ctx context.Context, ws *Workspace) (*AdminDashboard, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	if !sess.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	token := sess.Token
	st := ws.Store

	employees, err := s.backend.ListEmployees(ctx, token)
	if err != nil {
		return nil, err
	}
	st.ReplaceEmployees(employees)

	attendance, err := s.backend.ListAttendance(ctx, token, "")
	if err != nil {
		return nil, err
	}
	leave, err := s.backend.ListLeave(ctx, token, "")
	if err != nil {
		return nil, err
	}
	loans, err := s.backend.ListLoans(ctx, token, "")
	if err != nil {
		return nil, err
	}
	announcements, err := s.backend.ListAnnouncements(ctx, token)
	if err != nil {
		return nil, err
	}
	st.ReplaceAnnouncements(announcements)

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	data := &AdminDashboard{
		Headcount:    len(employees),
		Attendance:   metrics.ComputeAttendanceMetrics(attendance),
		PendingLoans: []domain.LoanRequest{},
	}
	data.TotalHoursWorked = metrics.FormatHMS(data.Attendance.TotalHoursWorkedSeconds)

	for _, l := range leave {
		if l.Status == domain.LeavePending {
			data.PendingLeave++
		}
		if l.Status == domain.LeaveApproved && !today.Before(l.StartDate.Time) && !today.After(l.EndDate.Time) {
			data.OnLeaveToday++
		}
	}
	for _, l := range loans {
		switch l.Status {
		case domain.LoanPending:
			data.PendingLoans = append(data.PendingLoans, l)
		case domain.LoanApproved:
			data.ApprovedLoans++
		}
	}
	if next, ok := metrics.FindNextUpcomingEvent(announcements, now); ok {
		data.NextEvent = &next
	}

	return data, nil
}

// NextEvent returns the closest upcoming announcement
func (s *DashboardService) NextEvent(ctx context.Context, ws *Workspace) (*domain.Event, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	announcements, err := s.backend.ListAnnouncements(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplaceAnnouncements(announcements)

	next, ok := metrics.FindNextUpcomingEvent(announcements, s.clock.Now())
	if !ok {
		return nil, nil
	}
	return &next, nil
}
