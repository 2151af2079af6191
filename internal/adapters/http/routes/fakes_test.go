package routes_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"hrdesk/internal/core/domain"
)

// stubIdentity accepts the passwords it holds and one fixed code
type stubIdentity struct {
	mu        sync.Mutex
	passwords map[string]string
	code      string
}

func (s *stubIdentity) PasswordSignIn(_ context.Context, identifier, secret string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pw, ok := s.passwords[strings.ToLower(identifier)]; !ok || pw != secret {
		return "", domain.ErrAuth
	}
	return "tok-" + identifier, nil
}

func (s *stubIdentity) SendCode(context.Context, string, domain.OTPPurpose) error { return nil }

func (s *stubIdentity) VerifyCode(_ context.Context, identifier, code string, _ domain.OTPPurpose) (string, error) {
	if code != s.code {
		return "", domain.ErrInvalidOTP
	}
	return "tok-" + identifier, nil
}

func (s *stubIdentity) SendPasswordReset(context.Context, string) error { return nil }

func (s *stubIdentity) ConfirmPasswordReset(_ context.Context, identifier, code, newPassword string) error {
	if code != s.code {
		return domain.ErrInvalidOTP
	}
	s.mu.Lock()
	s.passwords[strings.ToLower(identifier)] = newPassword
	s.mu.Unlock()
	return nil
}

func (s *stubIdentity) SetPassword(_ context.Context, token, newPassword string) error {
	s.mu.Lock()
	s.passwords[strings.ToLower(strings.TrimPrefix(token, "tok-"))] = newPassword
	s.mu.Unlock()
	return nil
}

func (s *stubIdentity) ValidateToken(_ context.Context, token string) (string, error) {
	if !strings.HasPrefix(token, "tok-") {
		return "", domain.ErrAuth
	}
	return strings.TrimPrefix(token, "tok-"), nil
}

// stubBackend keeps the HR API in memory
type stubBackend struct {
	mu        sync.Mutex
	employees []domain.Employee
	leave     []domain.LeaveRequest
	loans     []domain.LoanRequest
	nextID    int
}

func (b *stubBackend) FindByContact(_ context.Context, identifier string) (domain.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.employees {
		if e.HasContact(identifier) {
			return e, nil
		}
	}
	return domain.Employee{}, domain.ErrNotFound
}

func (b *stubBackend) ListEmployees(context.Context, string) ([]domain.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Employee(nil), b.employees...), nil
}

func (b *stubBackend) GetEmployee(_ context.Context, _, id string) (domain.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, &domain.APIError{Failed: true, Message: "employee not found", Status: 404}
}

func (b *stubBackend) ListAttendance(context.Context, string, string) ([]domain.AttendanceRecord, error) {
	return nil, nil
}

func (b *stubBackend) ListLeave(_ context.Context, _, employeeID string) ([]domain.LeaveRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.LeaveRequest
	for _, r := range b.leave {
		if employeeID == "" || r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (b *stubBackend) CreateLeave(_ context.Context, _ string, req domain.LeaveRequest) (domain.LeaveRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	req.ID = fmt.Sprintf("lv-%d", b.nextID)
	b.leave = append(b.leave, req)
	return req, nil
}

func (b *stubBackend) UpdateLeave(_ context.Context, _ string, req domain.LeaveRequest) (domain.LeaveRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.leave {
		if b.leave[i].ID == req.ID {
			b.leave[i] = req
			return req, nil
		}
	}
	return domain.LeaveRequest{}, &domain.APIError{Failed: true, Message: "leave not found", Status: 404}
}

func (b *stubBackend) DeleteLeave(_ context.Context, _, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.leave {
		if b.leave[i].ID == id {
			b.leave = append(b.leave[:i], b.leave[i+1:]...)
			return nil
		}
	}
	return &domain.APIError{Failed: true, Message: "leave not found", Status: 404}
}

func (b *stubBackend) ListLoans(_ context.Context, _, employeeID string) ([]domain.LoanRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.LoanRequest
	for _, l := range b.loans {
		if employeeID == "" || l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (b *stubBackend) CreateLoan(_ context.Context, _ string, req domain.LoanRequest) (domain.LoanRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loans = append(b.loans, req)
	return req, nil
}

func (b *stubBackend) UpdateLoan(_ context.Context, _ string, req domain.LoanRequest) (domain.LoanRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.loans {
		if b.loans[i].LoanNumber == req.LoanNumber {
			b.loans[i] = req
			return req, nil
		}
	}
	return domain.LoanRequest{}, &domain.APIError{Failed: true, Message: "loan not found", Status: 404}
}

func (b *stubBackend) ListPayroll(context.Context, string, string) ([]domain.PayrollRecord, error) {
	return nil, nil
}

func (b *stubBackend) ListPerformance(context.Context, string, string) ([]domain.PerformancePoint, error) {
	return nil, nil
}

func (b *stubBackend) ListTraining(context.Context, string, string) ([]domain.TrainingRecord, error) {
	return nil, nil
}

func (b *stubBackend) ListAnnouncements(context.Context, string) ([]domain.Event, error) {
	return nil, nil
}

func (b *stubBackend) ListNotifications(context.Context, string, string) ([]domain.Notification, error) {
	return nil, nil
}

func (b *stubBackend) MarkNotificationRead(context.Context, string, string) error { return nil }
