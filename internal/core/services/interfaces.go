package services

import (
	"context"

	"hrdesk/internal/core/domain"
)

// IdentityProvider is the external identity collaborator. Implementations
// return domain.ErrAuth for bad credentials, domain.ErrInvalidOTP for a wrong
// or expired code and wrap domain.ErrNetwork when unreachable.
type IdentityProvider interface {
	PasswordSignIn(ctx context.Context, identifier, secret string) (token string, err error)
	SendCode(ctx context.Context, identifier string, purpose domain.OTPPurpose) error
	VerifyCode(ctx context.Context, identifier, code string, purpose domain.OTPPurpose) (token string, err error)
	SendPasswordReset(ctx context.Context, identifier string) error
	ConfirmPasswordReset(ctx context.Context, identifier, code, newPassword string) error
	SetPassword(ctx context.Context, token, newPassword string) error
	ValidateToken(ctx context.Context, token string) (identifier string, err error)
}

// EmployeeDirectory resolves identifiers against provisioned employees.
// FindByContact returns domain.ErrNotFound for unknown identifiers.
type EmployeeDirectory interface {
	FindByContact(ctx context.Context, identifier string) (domain.Employee, error)
}

// Backend is the HR REST API. token is the caller's session token.
type Backend interface {
	EmployeeDirectory

	ListEmployees(ctx context.Context, token string) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, token, id string) (domain.Employee, error)

	ListAttendance(ctx context.Context, token, employeeID string) ([]domain.AttendanceRecord, error)

	ListLeave(ctx context.Context, token, employeeID string) ([]domain.LeaveRequest, error)
	CreateLeave(ctx context.Context, token string, req domain.LeaveRequest) (domain.LeaveRequest, error)
	UpdateLeave(ctx context.Context, token string, req domain.LeaveRequest) (domain.LeaveRequest, error)
	DeleteLeave(ctx context.Context, token, id string) error

	ListLoans(ctx context.Context, token, employeeID string) ([]domain.LoanRequest, error)
	CreateLoan(ctx context.Context, token string, req domain.LoanRequest) (domain.LoanRequest, error)
	UpdateLoan(ctx context.Context, token string, req domain.LoanRequest) (domain.LoanRequest, error)

	ListPayroll(ctx context.Context, token, employeeID string) ([]domain.PayrollRecord, error)
	ListPerformance(ctx context.Context, token, employeeID string) ([]domain.PerformancePoint, error)
	ListTraining(ctx context.Context, token, employeeID string) ([]domain.TrainingRecord, error)
	ListAnnouncements(ctx context.Context, token string) ([]domain.Event, error)
	ListNotifications(ctx context.Context, token, employeeID string) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, token, id string) error
}
