package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/core/domain"
)

func TestSessionRoles(t *testing.T) {
	var nilSession *domain.Session
	assert.False(t, nilSession.Authenticated())

	s := &domain.Session{Roles: []string{"employee", "superadmin"}}
	assert.True(t, s.Authenticated())
	assert.True(t, s.IsSuperAdmin())

	assert.False(t, (&domain.Session{}).Authenticated())
}

func TestPrimaryRole(t *testing.T) {
	assert.Equal(t, "superadmin", domain.PrimaryRole([]string{"employee", "superadmin"}))
	assert.Equal(t, "hr", domain.PrimaryRole([]string{"employee", "hr"}))
	// unknown roles keep backend order
	assert.Equal(t, "auditor", domain.PrimaryRole([]string{"auditor", "intern"}))
	assert.Equal(t, "", domain.PrimaryRole(nil))
}

func TestEmployeeHasContact(t *testing.T) {
	e := domain.Employee{Email: "Ana@Co.com", Phone: "(555) 010-1234"}
	assert.True(t, e.HasContact("ana@co.com"))
	assert.True(t, e.HasContact("5550101234"))
	assert.False(t, e.HasContact("bob@co.com"))
	assert.False(t, e.HasContact(""))
}

func TestLeaveTransition(t *testing.T) {
	l := &domain.LeaveRequest{Status: domain.LeavePending}
	require.NoError(t, l.Transition(domain.LeaveApproved))
	assert.Equal(t, domain.LeaveApproved, l.Status)

	assert.ErrorIs(t, l.Transition(domain.LeaveRejected), domain.ErrInvalidTransition)

	p := &domain.LeaveRequest{Status: domain.LeavePending}
	assert.ErrorIs(t, p.Transition(domain.LeavePending), domain.ErrInvalidTransition)
}

func TestLeaveValidate(t *testing.T) {
	l := domain.LeaveRequest{
		Type:      "annual",
		StartDate: domain.MustDate("2024-01-05"),
		EndDate:   domain.MustDate("2024-01-02"),
	}
	err := l.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)

	var v *domain.ValidationError
	require.True(t, errors.As(err, &v))
	assert.Equal(t, []string{"before_start"}, v.Rules("end_date"))
}

func TestLoanApproveOnce(t *testing.T) {
	l := &domain.LoanRequest{Amount: 1200, DurationMonths: 12, Status: domain.LoanPending}
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, l.Approve(0, 100, at))
	require.NotNil(t, l.MonthlyPayment)
	assert.Equal(t, 100.0, *l.MonthlyPayment)
	assert.Equal(t, 1200.0, *l.RemainingBalance)

	assert.ErrorIs(t, l.Approve(0, 90, at), domain.ErrLoanAlreadyApproved)
	assert.Equal(t, 100.0, *l.MonthlyPayment)
}

func TestAttendanceNormalize(t *testing.T) {
	a := domain.AttendanceRecord{Status: domain.AttendanceAbsent, HoursWorked: "08:00:00"}
	assert.Equal(t, "00:00:00", a.Normalize().HoursWorked)
}

func TestDateJSON(t *testing.T) {
	var v struct {
		D domain.Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2024-01-02T15:04:05Z"}`), &v))
	assert.Equal(t, "2024-01-02", v.D.String())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-01-02"}`, string(out))
}

func TestAPIErrorMapsToTaxonomy(t *testing.T) {
	err := fmt.Errorf("list employees: %w", &domain.APIError{Failed: true, Message: "gone", Status: 404})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrNetwork)

	upstream := &domain.APIError{Failed: true, Message: "boom", Status: 503}
	assert.ErrorIs(t, upstream, domain.ErrNetwork)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, domain.MsgBadCredentials, domain.UserMessage(fmt.Errorf("login: %w", domain.ErrAuth)))
	assert.Equal(t, "teapot", domain.UserMessage(&domain.APIError{Failed: true, Message: "teapot", Status: 418}))
	assert.Equal(t, "", domain.UserMessage(nil))
}

func TestUserMessageNotFoundNamesEmployeeOnlyForDirectoryLookups(t *testing.T) {
	leave := fmt.Errorf("leave request 7: %w", domain.ErrNotFound)
	loan := fmt.Errorf("loan LN-9: %w", &domain.APIError{Failed: true, Message: "gone", Status: 404})
	assert.Equal(t, "The requested record was not found", domain.UserMessage(leave))
	assert.Equal(t, "The requested record was not found", domain.UserMessage(loan))

	lookup := fmt.Errorf("reset: %w", domain.ErrEmployeeNotFound)
	assert.ErrorIs(t, lookup, domain.ErrNotFound)
	assert.Equal(t, "No matching employee found", domain.UserMessage(lookup))
}
