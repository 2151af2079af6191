package services_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"hrdesk/internal/core/domain"
)

type fakeIdentity struct {
	mu        sync.Mutex
	passwords map[string]string
	code      string
	calls     map[string]int
	failWith  error
	gate      chan struct{}
	entered   chan struct{}
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		passwords: map[string]string{},
		code:      "123456",
		calls:     map[string]int{},
	}
}

func (f *fakeIdentity) record(name string) error {
	f.mu.Lock()
	f.calls[name]++
	gate, entered, err := f.gate, f.entered, f.failWith
	f.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return err
}

func (f *fakeIdentity) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeIdentity) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeIdentity) PasswordSignIn(_ context.Context, identifier, secret string) (string, error) {
	if err := f.record("PasswordSignIn"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if pw, ok := f.passwords[strings.ToLower(identifier)]; !ok || pw != secret {
		return "", domain.ErrAuth
	}
	return "tok-" + identifier, nil
}

func (f *fakeIdentity) SendCode(_ context.Context, _ string, _ domain.OTPPurpose) error {
	return f.record("SendCode")
}

func (f *fakeIdentity) VerifyCode(_ context.Context, identifier, code string, _ domain.OTPPurpose) (string, error) {
	if err := f.record("VerifyCode"); err != nil {
		return "", err
	}
	if code != f.code {
		return "", domain.ErrInvalidOTP
	}
	return "tok-" + identifier, nil
}

func (f *fakeIdentity) SendPasswordReset(_ context.Context, _ string) error {
	return f.record("SendPasswordReset")
}

func (f *fakeIdentity) ConfirmPasswordReset(_ context.Context, identifier, code, newPassword string) error {
	if err := f.record("ConfirmPasswordReset"); err != nil {
		return err
	}
	if code != f.code {
		return domain.ErrInvalidOTP
	}
	f.mu.Lock()
	f.passwords[strings.ToLower(identifier)] = newPassword
	f.mu.Unlock()
	return nil
}

func (f *fakeIdentity) SetPassword(_ context.Context, token, newPassword string) error {
	if err := f.record("SetPassword"); err != nil {
		return err
	}
	f.mu.Lock()
	f.passwords[strings.ToLower(strings.TrimPrefix(token, "tok-"))] = newPassword
	f.mu.Unlock()
	return nil
}

func (f *fakeIdentity) ValidateToken(_ context.Context, token string) (string, error) {
	if err := f.record("ValidateToken"); err != nil {
		return "", err
	}
	if !strings.HasPrefix(token, "tok-") {
		return "", domain.ErrAuth
	}
	return strings.TrimPrefix(token, "tok-"), nil
}

// fakeBackend is an in-memory HR API
type fakeBackend struct {
	mu            sync.Mutex
	employees     []domain.Employee
	attendance    []domain.AttendanceRecord
	leave         []domain.LeaveRequest
	loans         []domain.LoanRequest
	payroll       []domain.PayrollRecord
	performance   []domain.PerformancePoint
	training      []domain.TrainingRecord
	announcements []domain.Event
	notifications []domain.Notification
	calls         map[string]int
	failWith      error
	nextID        int
}

func newFakeBackend(employees ...domain.Employee) *fakeBackend {
	return &fakeBackend{employees: employees, calls: map[string]int{}}
}

func (b *fakeBackend) hit(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[name]++
	return b.failWith
}

func (b *fakeBackend) count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[name]
}

func (b *fakeBackend) FindByContact(_ context.Context, identifier string) (domain.Employee, error) {
	if err := b.hit("FindByContact"); err != nil {
		return domain.Employee{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.employees {
		if e.HasContact(identifier) {
			return e, nil
		}
	}
	return domain.Employee{}, domain.ErrNotFound
}

func (b *fakeBackend) ListEmployees(context.Context, string) ([]domain.Employee, error) {
	if err := b.hit("ListEmployees"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Employee(nil), b.employees...), nil
}

func (b *fakeBackend) GetEmployee(_ context.Context, _, id string) (domain.Employee, error) {
	if err := b.hit("GetEmployee"); err != nil {
		return domain.Employee{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, &domain.APIError{Failed: true, Message: "employee not found", Status: 404}
}

func (b *fakeBackend) ListAttendance(_ context.Context, _, employeeID string) ([]domain.AttendanceRecord, error) {
	if err := b.hit("ListAttendance"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.AttendanceRecord
	for _, r := range b.attendance {
		if employeeID == "" || r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (b *fakeBackend) ListLeave(_ context.Context, _, employeeID string) ([]domain.LeaveRequest, error) {
	if err := b.hit("ListLeave"); err != nil {
		return nil, err
	}
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

func (b *fakeBackend) CreateLeave(_ context.Context, _ string, req domain.LeaveRequest) (domain.LeaveRequest, error) {
	if err := b.hit("CreateLeave"); err != nil {
		return domain.LeaveRequest{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	req.ID = fmt.Sprintf("lv-%d", b.nextID)
	b.leave = append(b.leave, req)
	return req, nil
}

func (b *fakeBackend) UpdateLeave(_ context.Context, _ string, req domain.LeaveRequest) (domain.LeaveRequest, error) {
	if err := b.hit("UpdateLeave"); err != nil {
		return domain.LeaveRequest{}, err
	}
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

func (b *fakeBackend) DeleteLeave(_ context.Context, _, id string) error {
	if err := b.hit("DeleteLeave"); err != nil {
		return err
	}
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

func (b *fakeBackend) ListLoans(_ context.Context, _, employeeID string) ([]domain.LoanRequest, error) {
	if err := b.hit("ListLoans"); err != nil {
		return nil, err
	}
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

func (b *fakeBackend) CreateLoan(_ context.Context, _ string, req domain.LoanRequest) (domain.LoanRequest, error) {
	if err := b.hit("CreateLoan"); err != nil {
		return domain.LoanRequest{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loans = append(b.loans, req)
	return req, nil
}

func (b *fakeBackend) UpdateLoan(_ context.Context, _ string, req domain.LoanRequest) (domain.LoanRequest, error) {
	if err := b.hit("UpdateLoan"); err != nil {
		return domain.LoanRequest{}, err
	}
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

func (b *fakeBackend) ListPayroll(context.Context, string, string) ([]domain.PayrollRecord, error) {
	if err := b.hit("ListPayroll"); err != nil {
		return nil, err
	}
	return b.payroll, nil
}

func (b *fakeBackend) ListPerformance(context.Context, string, string) ([]domain.PerformancePoint, error) {
	if err := b.hit("ListPerformance"); err != nil {
		return nil, err
	}
	return b.performance, nil
}

func (b *fakeBackend) ListTraining(context.Context, string, string) ([]domain.TrainingRecord, error) {
	if err := b.hit("ListTraining"); err != nil {
		return nil, err
	}
	return b.training, nil
}

func (b *fakeBackend) ListAnnouncements(context.Context, string) ([]domain.Event, error) {
	if err := b.hit("ListAnnouncements"); err != nil {
		return nil, err
	}
	return b.announcements, nil
}

func (b *fakeBackend) ListNotifications(context.Context, string, string) ([]domain.Notification, error) {
	if err := b.hit("ListNotifications"); err != nil {
		return nil, err
	}
	return b.notifications, nil
}

func (b *fakeBackend) MarkNotificationRead(_ context.Context, _, id string) error {
	if err := b.hit("MarkNotificationRead"); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.notifications {
		if b.notifications[i].ID == id {
			b.notifications[i].Read = true
		}
	}
	return nil
}
