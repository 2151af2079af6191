package services

import (
	"context"
	"fmt"
	"slices"

	"hrdesk/internal/core/domain"
)

// RecordsService serves the read-mostly HR slices
type RecordsService struct {
	backend Backend
}

// NewRecordsService creates a new records service
func NewRecordsService(backend Backend) *RecordsService {
	return &RecordsService{backend: backend}
}

// Payroll refreshes and returns the employee's payroll records
func (s *RecordsService) Payroll(ctx context.Context, ws *Workspace) ([]domain.PayrollRecord, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	list, err := s.backend.ListPayroll(ctx, sess.Token, sess.EmployeeID)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplacePayroll(list)
	return list, nil
}

// Training refreshes and returns the employee's training records
func (s *RecordsService) Training(ctx context.Context, ws *Workspace) ([]domain.TrainingRecord, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	list, err := s.backend.ListTraining(ctx, sess.Token, sess.EmployeeID)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplaceTraining(list)
	return list, nil
}

// Performance refreshes and returns the employee's performance series
func (s *RecordsService) Performance(ctx context.Context, ws *Workspace) ([]domain.PerformancePoint, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	list, err := s.backend.ListPerformance(ctx, sess.Token, sess.EmployeeID)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplacePerformance(list)
	return list, nil
}

// Notifications refreshes and returns the employee's notifications
func (s *RecordsService) Notifications(ctx context.Context, ws *Workspace) ([]domain.Notification, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	list, err := s.backend.ListNotifications(ctx, sess.Token, sess.EmployeeID)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplaceNotifications(list)
	return list, nil
}

// MarkNotificationRead marks one notification read
func (s *RecordsService) MarkNotificationRead(ctx context.Context, ws *Workspace, id string) error {
	sess, err := ws.Session()
	if err != nil {
		return err
	}
	list := ws.Store.Notifications()
	i := slices.IndexFunc(list, func(n domain.Notification) bool { return n.ID == id })
	if i < 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	if list[i].Read {
		return nil
	}

	if err := s.backend.MarkNotificationRead(ctx, sess.Token, id); err != nil {
		return err
	}
	list[i].Read = true
	ws.Store.ReplaceNotifications(list)
	return nil
}

// Employees lists every employee. Superadmin only.
func (s *RecordsService) Employees(ctx context.Context, ws *Workspace) ([]domain.Employee, error) {
	sess, err := ws.Session()
	if err != nil {
		return nil, err
	}
	if !sess.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	list, err := s.backend.ListEmployees(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	ws.Store.ReplaceEmployees(list)
	return list, nil
}

// Employee returns one employee. Employees may read only themselves.
func (s *RecordsService) Employee(ctx context.Context, ws *Workspace, id string) (domain.Employee, error) {
	sess, err := ws.Session()
	if err != nil {
		return domain.Employee{}, err
	}
	if id != sess.EmployeeID && !isApprover(sess) {
		return domain.Employee{}, domain.ErrForbidden
	}
	return s.backend.GetEmployee(ctx, sess.Token, id)
}
