// Package store holds one client workspace's state. All mutation goes through
// action methods; readers always receive copies.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/metrics"
	"hrdesk/internal/pkg/clock"
)

// Persister saves the persisted slices of a store under a key.
// Load returns domain.ErrNotFound when nothing was saved.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// persisted is the only part of the store written to the Persister
type persisted struct {
	Auth    *domain.Session `json:"auth"`
	Profile *domain.Profile `json:"profile"`
}

// Store is the central state container of a client workspace
type Store struct {
	mu        sync.RWMutex
	key       string
	persister Persister
	clock     clock.Clock

	auth          *domain.Session
	profile       *domain.Profile
	employees     []domain.Employee
	attendance    []domain.AttendanceRecord
	leave         []domain.LeaveRequest
	loans         []domain.LoanRequest
	payroll       []domain.PayrollRecord
	performance   []domain.PerformancePoint
	training      []domain.TrainingRecord
	announcements []domain.Event
	notifications []domain.Notification
}

// New creates a store whose persisted slices live under "<namespace>:<workspaceID>".
// persister may be nil, in which case nothing survives the process.
func New(namespace, workspaceID string, persister Persister, clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.Real()
	}
	return &Store{
		key:       namespace + ":" + workspaceID,
		persister: persister,
		clock:     clk,
	}
}

// Key is the persistence key
func (s *Store) Key() string { return s.key }

// ============================================================
// auth & profile (persisted)
// ============================================================

// Session returns a copy of the current session or nil
func (s *Store) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.auth == nil {
		return nil
	}
	cp := *s.auth
	cp.Roles = slices.Clone(s.auth.Roles)
	return &cp
}

// SetSession replaces the session
func (s *Store) SetSession(sess domain.Session) {
	sess.Roles = slices.Clone(sess.Roles)
	s.mu.Lock()
	s.auth = &sess
	s.mu.Unlock()
}

// SetActiveRole records the role chosen during role selection
func (s *Store) SetActiveRole(role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auth == nil {
		return domain.ErrNotAuthenticated
	}
	if !slices.Contains(s.auth.Roles, role) {
		return domain.ErrRoleNotGranted
	}
	s.auth.ActiveRole = role
	return nil
}

// ClearSession drops the session and profile
func (s *Store) ClearSession() {
	s.mu.Lock()
	s.auth = nil
	s.profile = nil
	s.mu.Unlock()
}

// Profile returns the signed-in employee's profile
func (s *Store) Profile() (domain.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return domain.Profile{}, false
	}
	return *s.profile, true
}

// SetProfile replaces the profile
func (s *Store) SetProfile(p domain.Profile) {
	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()
}

// Persist writes the auth and profile slices
func (s *Store) Persist(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	s.mu.RLock()
	snapshot := persisted{Auth: s.auth, Profile: s.profile}
	data, err := json.Marshal(snapshot)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode persisted state: %w", err)
	}

	if snapshot.Auth == nil && snapshot.Profile == nil {
		return s.persister.Delete(ctx, s.key)
	}
	return s.persister.Save(ctx, s.key, data)
}

// Hydrate restores the auth and profile slices. A missing entry is not an error.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	data, err := s.persister.Load(ctx, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load persisted state: %w", err)
	}

	var snapshot persisted
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode persisted state: %w", err)
	}

	s.mu.Lock()
	s.auth = snapshot.Auth
	s.profile = snapshot.Profile
	s.mu.Unlock()
	return nil
}

// Reset clears every slice and removes the persisted entry
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.auth = nil
	s.profile = nil
	s.employees = nil
	s.attendance = nil
	s.leave = nil
	s.loans = nil
	s.payroll = nil
	s.performance = nil
	s.training = nil
	s.announcements = nil
	s.notifications = nil
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}
	return s.persister.Delete(ctx, s.key)
}

// ============================================================
// volatile slices
// ============================================================

// Employees returns the employee directory
func (s *Store) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.employees)
}

// ReplaceEmployees swaps the employee directory
func (s *Store) ReplaceEmployees(list []domain.Employee) {
	s.mu.Lock()
	s.employees = slices.Clone(list)
	s.mu.Unlock()
}

// FindEmployee looks an identifier up among the loaded employees
func (s *Store) FindEmployee(identifier string) (domain.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.HasContact(identifier) {
			return e, true
		}
	}
	return domain.Employee{}, false
}

// Attendance returns the loaded attendance records
func (s *Store) Attendance() []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.attendance)
}

// ReplaceAttendance swaps attendance records, zeroing hours on absent days
func (s *Store) ReplaceAttendance(list []domain.AttendanceRecord) {
	normalized := make([]domain.AttendanceRecord, len(list))
	for i, r := range list {
		normalized[i] = r.Normalize()
	}
	s.mu.Lock()
	s.attendance = normalized
	s.mu.Unlock()
}

// Leave returns the loaded leave requests
func (s *Store) Leave() []domain.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.leave)
}

// ReplaceLeave swaps leave requests
func (s *Store) ReplaceLeave(list []domain.LeaveRequest) {
	s.mu.Lock()
	s.leave = slices.Clone(list)
	s.mu.Unlock()
}

// UpsertLeave inserts or replaces a leave request by ID
func (s *Store) UpsertLeave(req domain.LeaveRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leave {
		if s.leave[i].ID == req.ID {
			s.leave[i] = req
			return
		}
	}
	s.leave = append(s.leave, req)
}

// RemoveLeave drops a leave request by ID
func (s *Store) RemoveLeave(id string) {
	s.mu.Lock()
	s.leave = slices.DeleteFunc(s.leave, func(l domain.LeaveRequest) bool { return l.ID == id })
	s.mu.Unlock()
}

// LeaveByID finds a leave request
func (s *Store) LeaveByID(id string) (domain.LeaveRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leave {
		if l.ID == id {
			return l, true
		}
	}
	return domain.LeaveRequest{}, false
}

// TransitionLeave moves a pending request to a terminal status
func (s *Store) TransitionLeave(id string, to domain.LeaveStatus) (domain.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leave {
		if s.leave[i].ID != id {
			continue
		}
		next := s.leave[i]
		if err := next.Transition(to); err != nil {
			return s.leave[i], err
		}
		s.leave[i] = next
		return next, nil
	}
	return domain.LeaveRequest{}, fmt.Errorf("leave %s: %w", id, domain.ErrNotFound)
}

// Loans returns the loaded loan requests
func (s *Store) Loans() []domain.LoanRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.loans)
}

// ReplaceLoans swaps loan requests
func (s *Store) ReplaceLoans(list []domain.LoanRequest) {
	s.mu.Lock()
	s.loans = slices.Clone(list)
	s.mu.Unlock()
}

// AddLoan records a new pending loan and assigns its unique loan number
func (s *Store) AddLoan(req domain.LoanRequest) domain.LoanRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for {
		req.LoanNumber = NewLoanNumber(now)
		if !s.hasLoanLocked(req.LoanNumber) {
			break
		}
	}
	req.Status = domain.LoanPending
	req.RequestedAt = now
	req.MonthlyPayment = nil
	req.RemainingBalance = nil
	req.ApprovedAt = nil

	s.loans = append(s.loans, req)
	return req
}

// PutLoan inserts or replaces a loan by number
func (s *Store) PutLoan(loan domain.LoanRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.loans {
		if s.loans[i].LoanNumber == loan.LoanNumber {
			s.loans[i] = loan
			return
		}
	}
	s.loans = append(s.loans, loan)
}

// RemoveLoan drops a loan, used when the backend refused to store it
func (s *Store) RemoveLoan(number string) {
	s.mu.Lock()
	s.loans = slices.DeleteFunc(s.loans, func(l domain.LoanRequest) bool { return l.LoanNumber == number })
	s.mu.Unlock()
}

// LoanByNumber finds a loan
func (s *Store) LoanByNumber(number string) (domain.LoanRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.loans {
		if l.LoanNumber == number {
			return l, true
		}
	}
	return domain.LoanRequest{}, false
}

// ApproveLoan computes and stores the monthly payment once
func (s *Store) ApproveLoan(number string, annualRatePercent float64) (domain.LoanRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.loans {
		if s.loans[i].LoanNumber != number {
			continue
		}
		if s.loans[i].Status == domain.LoanApproved {
			return s.loans[i], domain.ErrLoanAlreadyApproved
		}
		payment, err := metrics.ComputeLoanAmortization(s.loans[i].Amount, s.loans[i].DurationMonths, annualRatePercent)
		if err != nil {
			return s.loans[i], err
		}
		next := s.loans[i]
		if err := next.Approve(annualRatePercent, payment, s.clock.Now()); err != nil {
			return s.loans[i], err
		}
		s.loans[i] = next
		return next, nil
	}
	return domain.LoanRequest{}, fmt.Errorf("loan %s: %w", number, domain.ErrNotFound)
}

func (s *Store) hasLoanLocked(number string) bool {
	for _, l := range s.loans {
		if l.LoanNumber == number {
			return true
		}
	}
	return false
}

// NewLoanNumber builds "LN-YYYYMMDD-XXXXXXXX"
func NewLoanNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "LN-" + at.Format("20060102") + "-" + suffix
}

// Payroll returns payroll records
func (s *Store) Payroll() []domain.PayrollRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.payroll)
}

// ReplacePayroll swaps payroll records
func (s *Store) ReplacePayroll(list []domain.PayrollRecord) {
	s.mu.Lock()
	s.payroll = slices.Clone(list)
	s.mu.Unlock()
}

// Performance returns the performance series
func (s *Store) Performance() []domain.PerformancePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.performance)
}

// ReplacePerformance swaps the performance series
func (s *Store) ReplacePerformance(list []domain.PerformancePoint) {
	s.mu.Lock()
	s.performance = slices.Clone(list)
	s.mu.Unlock()
}

// Training returns training records
func (s *Store) Training() []domain.TrainingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.training)
}

// ReplaceTraining swaps training records
func (s *Store) ReplaceTraining(list []domain.TrainingRecord) {
	s.mu.Lock()
	s.training = slices.Clone(list)
	s.mu.Unlock()
}

// Announcements returns announcements and calendar events
func (s *Store) Announcements() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.announcements)
}

// ReplaceAnnouncements swaps announcements
func (s *Store) ReplaceAnnouncements(list []domain.Event) {
	s.mu.Lock()
	s.announcements = slices.Clone(list)
	s.mu.Unlock()
}

// Notifications returns notifications
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notifications)
}

// ReplaceNotifications swaps notifications
func (s *Store) ReplaceNotifications(list []domain.Notification) {
	s.mu.Lock()
	s.notifications = slices.Clone(list)
	s.mu.Unlock()
}

// UnreadNotifications counts unread notifications
func (s *Store) UnreadNotifications() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, note := range s.notifications {
		if !note.Read {
			n++
		}
	}
	return n
}
