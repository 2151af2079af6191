package store_test

import (
	"context"
	"encoding/json"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/store"
	"hrdesk/internal/pkg/clock"
)

type memPersister struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemPersister() *memPersister {
	return &memPersister{data: map[string][]byte{}}
}

func (m *memPersister) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (m *memPersister) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *memPersister) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

var day = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func TestPersistOnlyAuthAndProfile(t *testing.T) {
	ctx := context.Background()
	p := newMemPersister()

	s := store.New("hrdesk", "ws-1", p, clock.NewFake(day))
	s.SetSession(domain.Session{Token: "tok", Identifier: "a@b.co", Roles: []string{domain.RoleEmployee}})
	s.SetProfile(domain.Profile{EmployeeID: "E1", Name: "Ann"})
	s.ReplaceAttendance([]domain.AttendanceRecord{{ID: "x", Status: domain.AttendancePresent, HoursWorked: "01:00:00"}})
	s.ReplaceEmployees([]domain.Employee{{ID: "E1", Email: "a@b.co"}})

	require.NoError(t, s.Persist(ctx))

	raw, ok := p.data["hrdesk:ws-1"]
	require.True(t, ok)
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, "auth")
	assert.Contains(t, keys, "profile")

	restored := store.New("hrdesk", "ws-1", p, clock.NewFake(day))
	require.NoError(t, restored.Hydrate(ctx))

	sess := restored.Session()
	require.NotNil(t, sess)
	assert.Equal(t, "tok", sess.Token)
	prof, ok := restored.Profile()
	require.True(t, ok)
	assert.Equal(t, "Ann", prof.Name)
	assert.Empty(t, restored.Attendance())
	assert.Empty(t, restored.Employees())
}

func TestHydrateMissingEntry(t *testing.T) {
	s := store.New("hrdesk", "nobody", newMemPersister(), nil)
	require.NoError(t, s.Hydrate(context.Background()))
	assert.Nil(t, s.Session())
}

func TestPersistWithoutSessionDeletesEntry(t *testing.T) {
	ctx := context.Background()
	p := newMemPersister()
	s := store.New("hrdesk", "ws", p, nil)

	s.SetSession(domain.Session{Token: "t", Roles: []string{domain.RoleEmployee}})
	require.NoError(t, s.Persist(ctx))
	require.Contains(t, p.data, "hrdesk:ws")

	s.ClearSession()
	require.NoError(t, s.Persist(ctx))
	assert.NotContains(t, p.data, "hrdesk:ws")
}

func TestResetClearsEverything(t *testing.T) {
	ctx := context.Background()
	p := newMemPersister()
	s := store.New("hrdesk", "ws", p, nil)

	s.SetSession(domain.Session{Token: "t", Roles: []string{domain.RoleEmployee}})
	s.ReplaceLeave([]domain.LeaveRequest{{ID: "l1"}})
	require.NoError(t, s.Persist(ctx))

	require.NoError(t, s.Reset(ctx))
	assert.Nil(t, s.Session())
	assert.Empty(t, s.Leave())
	assert.Empty(t, p.data)
}

func TestReadersGetCopies(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	s.SetSession(domain.Session{Roles: []string{domain.RoleEmployee}})
	s.ReplaceLeave([]domain.LeaveRequest{{ID: "l1", Status: domain.LeavePending}})

	sess := s.Session()
	sess.Roles[0] = domain.RoleSuperAdmin
	assert.False(t, s.Session().IsSuperAdmin())

	leave := s.Leave()
	leave[0].Status = domain.LeaveApproved
	assert.Equal(t, domain.LeavePending, s.Leave()[0].Status)
}

func TestSetActiveRole(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	assert.ErrorIs(t, s.SetActiveRole(domain.RoleAdmin), domain.ErrNotAuthenticated)

	s.SetSession(domain.Session{Roles: []string{domain.RoleEmployee, domain.RoleManager}})
	assert.ErrorIs(t, s.SetActiveRole(domain.RoleAdmin), domain.ErrRoleNotGranted)
	require.NoError(t, s.SetActiveRole(domain.RoleManager))
	assert.Equal(t, domain.RoleManager, s.Session().ActiveRole)
}

func TestReplaceAttendanceNormalizesAbsentDays(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	s.ReplaceAttendance([]domain.AttendanceRecord{{Status: domain.AttendanceAbsent, HoursWorked: "08:00:00"}})
	assert.Equal(t, "00:00:00", s.Attendance()[0].HoursWorked)
}

func TestTransitionLeave(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	s.UpsertLeave(domain.LeaveRequest{ID: "l1", Status: domain.LeavePending})

	got, err := s.TransitionLeave("l1", domain.LeaveApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveApproved, got.Status)

	_, err = s.TransitionLeave("l1", domain.LeaveRejected)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.LeaveApproved, s.Leave()[0].Status)

	_, err = s.TransitionLeave("missing", domain.LeaveApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpsertLeaveReplacesByID(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	s.UpsertLeave(domain.LeaveRequest{ID: "l1", Type: "sick"})
	s.UpsertLeave(domain.LeaveRequest{ID: "l1", Type: "annual"})
	s.UpsertLeave(domain.LeaveRequest{ID: "l2", Type: "annual"})

	require.Len(t, s.Leave(), 2)
	got, ok := s.LeaveByID("l1")
	require.True(t, ok)
	assert.Equal(t, "annual", got.Type)
}

func TestAddLoanAssignsUniqueNumbers(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, clock.NewFake(day))
	pattern := regexp.MustCompile(`^LN-20240315-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		loan := s.AddLoan(domain.LoanRequest{Amount: 1000, DurationMonths: 10})
		assert.Regexp(t, pattern, loan.LoanNumber)
		assert.False(t, seen[loan.LoanNumber])
		seen[loan.LoanNumber] = true
		assert.Equal(t, domain.LoanPending, loan.Status)
		assert.Nil(t, loan.MonthlyPayment)
		assert.Equal(t, day, loan.RequestedAt)
	}
	assert.Len(t, s.Loans(), 50)
}

func TestApproveLoanComputesOnce(t *testing.T) {
	fake := clock.NewFake(day)
	s := store.New("hrdesk", "ws", nil, fake)
	loan := s.AddLoan(domain.LoanRequest{Amount: 1200, DurationMonths: 12})

	fake.Advance(time.Hour)
	approved, err := s.ApproveLoan(loan.LoanNumber, 0)
	require.NoError(t, err)
	require.NotNil(t, approved.MonthlyPayment)
	assert.Equal(t, 100.0, *approved.MonthlyPayment)
	assert.Equal(t, 1200.0, *approved.RemainingBalance)
	assert.Equal(t, day.Add(time.Hour), *approved.ApprovedAt)

	_, err = s.ApproveLoan(loan.LoanNumber, 12)
	assert.ErrorIs(t, err, domain.ErrLoanAlreadyApproved)
	stored, _ := s.LoanByNumber(loan.LoanNumber)
	assert.Equal(t, 100.0, *stored.MonthlyPayment)
}

func TestApproveLoanInvalidDuration(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	s.ReplaceLoans([]domain.LoanRequest{{LoanNumber: "LN-1", Amount: 500, Status: domain.LoanPending}})

	_, err := s.ApproveLoan("LN-1", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	stored, _ := s.LoanByNumber("LN-1")
	assert.Equal(t, domain.LoanPending, stored.Status)

	s.ReplaceLoans([]domain.LoanRequest{{LoanNumber: "LN-2", Amount: 1000, DurationMonths: 100000, Status: domain.LoanPending}})
	assert.NotPanics(t, func() {
		_, err = s.ApproveLoan("LN-2", 12)
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRemoveLoan(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	loan := s.AddLoan(domain.LoanRequest{Amount: 10, DurationMonths: 1})
	s.RemoveLoan(loan.LoanNumber)
	assert.Empty(t, s.Loans())
}

func TestUnreadNotifications(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	s.ReplaceNotifications([]domain.Notification{{ID: "1"}, {ID: "2", Read: true}, {ID: "3"}})
	assert.Equal(t, 2, s.UnreadNotifications())
}

func TestFindEmployee(t *testing.T) {
	s := store.New("hrdesk", "ws", nil, nil)
	s.ReplaceEmployees([]domain.Employee{{ID: "E1", Email: "Ann@Co.com", Phone: "(555) 010-0000"}})

	e, ok := s.FindEmployee("ann@co.com")
	require.True(t, ok)
	assert.Equal(t, "E1", e.ID)

	_, ok = s.FindEmployee("5550100000")
	assert.True(t, ok)

	_, ok = s.FindEmployee("EMP001@co.com")
	assert.False(t, ok)
}
