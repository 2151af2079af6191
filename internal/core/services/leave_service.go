package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/metrics"
	"hrdesk/internal/pkg/clock"
	"hrdesk/internal/pkg/logger"
)

// LeaveService handles leave requests
type LeaveService struct {
	backend Backend
	cfg     LeaveConfig
	clock   clock.Clock
	log     *logger.Logger
}

// NewLeaveService creates a new leave service
func NewLeaveService(backend Backend, cfg LeaveConfig, clk clock.Clock, log *logger.Logger) *LeaveService {
	if clk == nil {
		clk = clock.Real()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LeaveService{backend: backend, cfg: cfg, clock: clk, log: log}
}

// SubmitLeaveInput represents a new leave request
type SubmitLeaveInput struct {
	Type      string      `json:"type"`
	StartDate domain.Date `json:"start_date"`
	EndDate   domain.Date `json:"end_date"`
	Reason    string      `json:"reason"`
}

// LeaveBalance is the remaining allowance of the signed-in employee
type LeaveBalance struct {
	Total     int            `json:"total"`
	Remaining int            `json:"remaining"`
	ByType    map[string]int `json:"by_type"`
	Policy    string         `json:"policy"`
}

// List refreshes the employee's leave history and keeps requests starting within [from, to].
// Zero bounds are open.
func (s *LeaveService) List(ctx context.Context, ws *Workspace, from, to time.Time) ([]domain.LeaveRequest, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	leave, err := s.backend.ListLeave(ctx, sess.Token, sess.EmployeeID)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplaceLeave(leave)

	return metrics.FilterByDateRange(leave, from, to, metrics.LeaveStartDate)
}

// Submit creates a pending leave request for the signed-in employee
func (s *LeaveService) Submit(ctx context.Context, ws *Workspace, input SubmitLeaveInput) (domain.LeaveRequest, error) {
	sess, err := ws.Session()
	if err != nil {
		return domain.LeaveRequest{}, err
	}

	req := domain.LeaveRequest{
		EmployeeID: sess.EmployeeID,
		Type:       strings.TrimSpace(input.Type),
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     domain.LeavePending,
		Reason:     strings.TrimSpace(input.Reason),
		CreatedAt:  s.clock.Now(),
	}
	if err := req.Validate(); err != nil {
		return domain.LeaveRequest{}, err
	}

	created, err := s.backend.CreateLeave(ctx, sess.Token, req)
	if err != nil {
		s.log.Warn().Err(err).Str("employee_id", sess.EmployeeID).Msg("create leave failed")
		return domain.LeaveRequest{}, err
	}
	ws.Store.UpsertLeave(created)

	s.log.Info().Str("leave_id", created.ID).Int("days", metrics.LeaveDays(created.StartDate.Time, created.EndDate.Time)).Msg("leave requested")
	return created, nil
}

// Decide approves or rejects a pending request. Approver roles only.
func (s *LeaveService) Decide(ctx context.Context, ws *Workspace, id string, to domain.LeaveStatus) (domain.LeaveRequest, error) {
	sess, err := ws.Session()
	if err != nil {
		return domain.LeaveRequest{}, err
	}
	if !isApprover(sess) {
		return domain.LeaveRequest{}, domain.ErrForbidden
	}

	current, ok := ws.Store.LeaveByID(id)
	if !ok {
		all, err := s.backend.ListLeave(ctx, sess.Token, "")
		if err != nil {
			return domain.LeaveRequest{}, err
		}
		ws.Store.ReplaceLeave(all)
		if current, ok = ws.Store.LeaveByID(id); !ok {
			return domain.LeaveRequest{}, fmt.Errorf("leave %s: %w", id, domain.ErrNotFound)
		}
	}

	if current.EmployeeID == sess.EmployeeID {
		return current, domain.ErrForbidden
	}

	next := current
	if err := next.Transition(to); err != nil {
		return current, err
	}

	updated, err := s.backend.UpdateLeave(ctx, sess.Token, next)
	if err != nil {
		return current, err
	}
	ws.Store.UpsertLeave(updated)

	s.log.Info().Str("leave_id", id).Str("status", string(updated.Status)).Str("by", sess.EmployeeID).Msg("leave decided")
	return updated, nil
}

// Cancel withdraws the employee's own pending request
func (s *LeaveService) Cancel(ctx context.Context, ws *Workspace, id string) error {
	sess, err := ws.Session()
	if err != nil {
		return err
	}
	current, ok := ws.Store.LeaveByID(id)
	if !ok {
		return fmt.Errorf("leave %s: %w", id, domain.ErrNotFound)
	}
	if current.EmployeeID != sess.EmployeeID {
		return domain.ErrForbidden
	}
	if current.Status != domain.LeavePending {
		return domain.ErrInvalidTransition
	}

	if err := s.backend.DeleteLeave(ctx, sess.Token, id); err != nil {
		return err
	}
	ws.Store.RemoveLeave(id)
	return nil
}

// Remaining computes the balance from the stored requests under the configured policy
func (s *LeaveService) Remaining(ctx context.Context, ws *Workspace) (LeaveBalance, error) {
	if _, err := s.List(ctx, ws, time.Time{}, time.Time{}); err != nil {
		return LeaveBalance{}, err
	}
	leave := ws.Store.Leave()
	return LeaveBalance{
		Total:     s.cfg.TotalAllowance,
		Remaining: metrics.RemainingLeave(s.cfg.TotalAllowance, leave, s.cfg.Policy),
		ByType:    metrics.ComputeLeaveBalanceByType(s.cfg.ByType, leave, s.cfg.Policy),
		Policy:    s.cfg.Policy.String(),
	}, nil
}
