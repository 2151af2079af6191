package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/adapters/backend"
	"hrdesk/internal/core/domain"
)

func newServer(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL+"/", "svc-token", 0, backend.WithHTTPClient(srv.Client()))
}

func TestFindByContactUsesServiceToken(t *testing.T) {
	var auth, contact string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contact = r.URL.Query().Get("contact")
		json.NewEncoder(w).Encode([]domain.Employee{
			{ID: "E100", Email: "ann@co.com", Roles: []string{"employee"}},
		})
	})

	emp, err := c.FindByContact(context.Background(), "Ann@co.com")
	require.NoError(t, err)
	assert.Equal(t, "E100", emp.ID)
	assert.Equal(t, "Bearer svc-token", auth)
	assert.Equal(t, "Ann@co.com", contact)
}

func TestFindByContactNoMatch(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := c.FindByContact(context.Background(), "EMP001@co.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestErrorEnvelopeIsReturned(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":true,"message":"not your record","status":403}`))
	})

	_, err := c.GetEmployee(context.Background(), "tok", "E200")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Failed)
	assert.Equal(t, "not your record", apiErr.Message)
	assert.Equal(t, 403, apiErr.Status)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestErrorWithoutBody(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.DeleteLeave(context.Background(), "tok", "lv-1")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not Found", apiErr.Message)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnreachableBackendIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := backend.NewClient(url, "svc-token", 0)
	_, err := c.ListEmployees(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestBearerTokenAndQuery(t *testing.T) {
	var got *http.Request
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Write([]byte(`[{"date":"2024-03-01","employee_id":"E100","status":"present","hours_worked":"08:00:00"}]`))
	})

	list, err := c.ListAttendance(context.Background(), "user-tok", "E100")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "08:00:00", list[0].HoursWorked)
	assert.Equal(t, "/attendance", got.URL.Path)
	assert.Equal(t, "E100", got.URL.Query().Get("employee_id"))
	assert.Equal(t, "Bearer user-tok", got.Header.Get("Authorization"))

	_, err = c.ListAttendance(context.Background(), "user-tok", "")
	require.NoError(t, err)
	assert.Empty(t, got.URL.RawQuery)
}

func TestCreateLeaveSendsJSON(t *testing.T) {
	var body domain.LeaveRequest
	var method, contentType string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		body.ID = "lv-9"
		json.NewEncoder(w).Encode(body)
	})

	req := domain.LeaveRequest{
		EmployeeID: "E100",
		Type:       "annual",
		StartDate:  domain.MustDate("2024-03-04"),
		EndDate:    domain.MustDate("2024-03-06"),
		Status:     domain.LeavePending,
	}
	out, err := c.CreateLeave(context.Background(), "tok", req)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "lv-9", out.ID)
	assert.Equal(t, "annual", body.Type)
	assert.True(t, out.EndDate.Equal(req.EndDate.Time))
}

func TestUpdateLoanPath(t *testing.T) {
	var path, method string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
		w.Write([]byte(`{"loan_number":"LN-20240315-0000ABCD","status":"Approved"}`))
	})

	out, err := c.UpdateLoan(context.Background(), "tok", domain.LoanRequest{LoanNumber: "LN-20240315-0000ABCD"})
	require.NoError(t, err)
	assert.Equal(t, "/loans/LN-20240315-0000ABCD", path)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, domain.LoanApproved, out.Status)
}

func TestMarkNotificationReadNoContent(t *testing.T) {
	var path string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.MarkNotificationRead(context.Background(), "tok", "n-1"))
	assert.Equal(t, "/notifications/n-1/read", path)
}
