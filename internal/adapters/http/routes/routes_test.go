package routes_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/adapters/http/handlers"
	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/adapters/http/routes"
	"hrdesk/internal/config"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/clock"
)

var start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type harness struct {
	app     *fiber.App
	clock   *clock.Fake
	backend *stubBackend
}

func newHarness(t *testing.T, checks map[string]handlers.HealthCheckFunc) *harness {
	t.Helper()

	fake := clock.NewFake(start)
	identity := &stubIdentity{
		passwords: map[string]string{
			"ann@co.com":  "Secret123!",
			"boss@co.com": "Boss1234!",
		},
		code: "123456",
	}
	backend := &stubBackend{employees: []domain.Employee{
		{ID: "E100", Name: "Ann Lee", Email: "ann@co.com", Phone: "0812345678", Roles: []string{domain.RoleEmployee}},
		{ID: "E000", Name: "Bo Boss", Email: "boss@co.com", Phone: "0899999999", Roles: []string{domain.RoleSuperAdmin}},
	}}

	cfg := &config.Config{
		AppMode: "dev",
		Cookie:  config.CookieConfig{Name: "hr_client", SameSite: "lax", MaxAgeDays: 30},
	}
	leaveCfg := services.LeaveConfig{TotalAllowance: 20, ByType: map[string]int{"annual": 15, "sick": 5}}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	routes.Setup(app, cfg, routes.Deps{
		Registry:      services.NewWorkspaceRegistry("test", nil, identity, backend, fake, nil),
		Dashboard:     services.NewDashboardService(backend, leaveCfg, fake, nil),
		Leave:         services.NewLeaveService(backend, leaveCfg, fake, nil),
		Loan:          services.NewLoanService(backend, 12, nil),
		Attendance:    services.NewAttendanceService(backend),
		Records:       services.NewRecordsService(backend),
		HealthChecks:  checks,
		CountdownTick: 10 * time.Millisecond,
	})

	return &harness{app: app, clock: fake, backend: backend}
}

// browser holds the workspace cookie across requests
type browser struct {
	t      *testing.T
	h      *harness
	cookie *http.Cookie
}

func (h *harness) browser(t *testing.T) *browser {
	return &browser{t: t, h: h}
}

func (b *browser) do(method, path string, body any) (int, string) {
	b.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(b.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}

	resp, err := b.h.app.Test(req, -1)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == "hr_client" {
			b.cookie = c
		}
	}

	out, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp.StatusCode, string(out)
}

func (b *browser) login(identifier, secret string) {
	b.t.Helper()
	status, body := b.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"identifier": identifier,
		"password":   secret,
	})
	require.Equal(b.t, fiber.StatusOK, status, body)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []string        `json:"details"`
}

func decode(t *testing.T, body string) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env), body)
	return env
}

func TestHealth(t *testing.T) {
	h := newHarness(t, map[string]handlers.HealthCheckFunc{
		"database": func() error { return nil },
	})
	status, body := h.browser(t).do(http.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"database":"healthy"`)

	h = newHarness(t, map[string]handlers.HealthCheckFunc{
		"redis": func() error { return errors.New("refused") },
	})
	status, body = h.browser(t).do(http.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, body, `"status":"degraded"`)
}

func TestWorkspaceCookieIssuedOnce(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	status, _ := b.do(http.MethodGet, "/api/v1/auth/state", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, b.cookie)
	first := b.cookie.Value
	assert.True(t, b.cookie.HttpOnly)

	status, body := b.do(http.MethodGet, "/api/v1/auth/state", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, first, b.cookie.Value)
	assert.Contains(t, body, `"state":"logged_out"`)
}

func TestLoginHidesToken(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	status, body := b.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"identifier": "ann@co.com",
		"password":   "Secret123!",
	})
	require.Equal(t, fiber.StatusOK, status, body)
	assert.NotContains(t, body, "tok-")
	assert.Contains(t, body, `"home":"/employee"`)

	status, body = b.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Contains(t, body, `"employee_id":"E100"`)
	assert.NotContains(t, body, "tok-")
}

func TestLoginErrors(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	status, body := b.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"identifier": "not-an-email",
		"password":   "",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	env := decode(t, body)
	assert.False(t, env.Success)
	assert.Contains(t, env.Details, "identifier:format")
	assert.Contains(t, env.Details, "password:required")

	status, body = b.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"identifier": "ann@co.com",
		"password":   "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, domain.UserMessage(domain.ErrAuth), decode(t, body).Error)
}

func TestMalformedBody(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)
	b.do(http.MethodGet, "/api/v1/auth/state", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.AddCookie(b.cookie)
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	for _, path := range []string{"/api/v1/leave", "/api/v1/loans", "/api/v1/dashboard/employee", "/api/v1/auth/me"} {
		status, _ := b.do(http.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
	}
}

func TestAdminRoutesForbiddenForEmployee(t *testing.T) {
	h := newHarness(t, nil)
	ann := h.browser(t)
	ann.login("ann@co.com", "Secret123!")

	status, _ := ann.do(http.MethodGet, "/api/v1/dashboard/admin", nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = ann.do(http.MethodGet, "/api/v1/employees", nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	boss := h.browser(t)
	boss.login("boss@co.com", "Boss1234!")
	status, body := boss.do(http.MethodGet, "/api/v1/dashboard/admin", nil)
	assert.Equal(t, fiber.StatusOK, status, body)
	status, body = boss.do(http.MethodGet, "/api/v1/employees?page=1&limit=1", nil)
	assert.Equal(t, fiber.StatusOK, status, body)
}

func TestRegistrationCountdownStream(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	status, _ := b.do(http.MethodGet, "/api/v1/auth/otp/countdown", nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, body := b.do(http.MethodPost, "/api/v1/auth/register/otp", map[string]string{"identifier": "ann@co.com"})
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Contains(t, body, `"seconds_remaining":30`)

	h.clock.Advance(31 * time.Second)

	status, body = b.do(http.MethodGet, "/api/v1/auth/otp/countdown", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"seconds_remaining":0`)
	assert.Contains(t, body, "event: done")

	status, body = b.do(http.MethodPost, "/api/v1/auth/register/verify", map[string]string{
		"identifier": "ann@co.com",
		"code":       "123456",
	})
	require.Equal(t, fiber.StatusOK, status, body)

	status, body = b.do(http.MethodPost, "/api/v1/auth/register/password", map[string]string{
		"password":         "NewSecret1!",
		"confirm_password": "NewSecret2!",
	})
	assert.Equal(t, fiber.StatusBadRequest, status, body)
}

func TestRegistrationSessionLimitedUntilPasswordSet(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	status, body := b.do(http.MethodPost, "/api/v1/auth/register/otp", map[string]string{"identifier": "ann@co.com"})
	require.Equal(t, fiber.StatusOK, status, body)
	status, body = b.do(http.MethodPost, "/api/v1/auth/register/verify", map[string]string{
		"identifier": "ann@co.com",
		"code":       "123456",
	})
	require.Equal(t, fiber.StatusOK, status, body)

	for _, path := range []string{"/api/v1/dashboard/employee", "/api/v1/leave", "/api/v1/loans/quote?amount=1000&months=12&rate=12"} {
		status, _ = b.do(http.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusForbidden, status, path)
	}
	status, body = b.do(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, fiber.StatusOK, status, body)

	status, body = b.do(http.MethodPost, "/api/v1/auth/register/password", map[string]string{
		"password":         "NewSecret1!",
		"confirm_password": "NewSecret1!",
	})
	require.Equal(t, fiber.StatusOK, status, body)

	status, body = b.do(http.MethodGet, "/api/v1/loans/quote?amount=1000&months=12&rate=12", nil)
	assert.Equal(t, fiber.StatusOK, status, body)
}

func TestUnknownEmployeeCannotRegister(t *testing.T) {
	h := newHarness(t, nil)
	status, _ := h.browser(t).do(http.MethodPost, "/api/v1/auth/register/otp", map[string]string{"identifier": "ghost@co.com"})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestResetPasswordMismatch(t *testing.T) {
	h := newHarness(t, nil)
	status, body := h.browser(t).do(http.MethodPost, "/api/v1/auth/password/reset", map[string]string{
		"identifier":       "ann@co.com",
		"code":             "123456",
		"password":         "NewSecret1!",
		"confirm_password": "Different1!",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.UserMessage(domain.ErrMismatch), decode(t, body).Error)
}

func TestValidatePassword(t *testing.T) {
	h := newHarness(t, nil)
	status, body := h.browser(t).do(http.MethodPost, "/api/v1/auth/password/validate", map[string]string{"password": "abc"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"valid":false`)
}

func TestLeaveApproval(t *testing.T) {
	h := newHarness(t, nil)
	ann := h.browser(t)
	ann.login("ann@co.com", "Secret123!")

	status, body := ann.do(http.MethodPost, "/api/v1/leave", map[string]string{
		"type":       "annual",
		"start_date": "2026-03-10",
		"end_date":   "2026-03-12",
		"reason":     "trip",
	})
	require.Equal(t, fiber.StatusCreated, status, body)

	var created domain.LeaveRequest
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &created))
	assert.Equal(t, domain.LeavePending, created.Status)

	status, _ = ann.do(http.MethodPut, "/api/v1/leave/"+created.ID+"/status", map[string]string{"status": "Approved"})
	assert.Equal(t, fiber.StatusForbidden, status)

	boss := h.browser(t)
	boss.login("boss@co.com", "Boss1234!")
	status, body = boss.do(http.MethodPut, "/api/v1/leave/"+created.ID+"/status", map[string]string{"status": string(domain.LeaveApproved)})
	require.Equal(t, fiber.StatusOK, status, body)

	status, _ = boss.do(http.MethodPut, "/api/v1/leave/"+created.ID+"/status", map[string]string{"status": string(domain.LeaveRejected)})
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = ann.do(http.MethodGet, "/api/v1/leave/balance", nil)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Contains(t, body, `"remaining":17`)
}

func TestLeaveValidation(t *testing.T) {
	h := newHarness(t, nil)
	ann := h.browser(t)
	ann.login("ann@co.com", "Secret123!")

	status, body := ann.do(http.MethodPost, "/api/v1/leave", map[string]string{
		"type":       "annual",
		"start_date": "2026-03-12",
		"end_date":   "2026-03-10",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode(t, body).Details, "end_date:before_start")

	status, _ = ann.do(http.MethodGet, "/api/v1/leave?from=yesterday", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLoanApproval(t *testing.T) {
	h := newHarness(t, nil)
	ann := h.browser(t)
	ann.login("ann@co.com", "Secret123!")

	status, body := ann.do(http.MethodPost, "/api/v1/loans", map[string]any{
		"amount":          12000,
		"duration_months": 12,
		"purpose":         "laptop",
	})
	require.Equal(t, fiber.StatusCreated, status, body)

	var loan domain.LoanRequest
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &loan))
	assert.True(t, strings.HasPrefix(loan.LoanNumber, "LN-"))
	assert.Nil(t, loan.MonthlyPayment)

	status, _ = ann.do(http.MethodPut, "/api/v1/loans/"+loan.LoanNumber+"/approve", map[string]any{})
	assert.Equal(t, fiber.StatusForbidden, status)

	boss := h.browser(t)
	boss.login("boss@co.com", "Boss1234!")
	status, body = boss.do(http.MethodPut, "/api/v1/loans/"+loan.LoanNumber+"/approve", map[string]any{})
	require.Equal(t, fiber.StatusOK, status, body)

	var approved domain.LoanRequest
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &approved))
	require.NotNil(t, approved.MonthlyPayment)
	assert.InDelta(t, 1066.19, *approved.MonthlyPayment, 0.01)

	status, _ = boss.do(http.MethodPut, "/api/v1/loans/"+loan.LoanNumber+"/approve", map[string]any{})
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = ann.do(http.MethodGet, "/api/v1/loans/"+loan.LoanNumber+"/schedule", nil)
	require.Equal(t, fiber.StatusOK, status, body)
}

func TestLoanQuote(t *testing.T) {
	h := newHarness(t, nil)
	ann := h.browser(t)
	ann.login("ann@co.com", "Secret123!")

	status, body := ann.do(http.MethodGet, "/api/v1/loans/quote?amount=12000&months=12&rate=0", nil)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Contains(t, body, `"monthly_payment":1000`)

	status, _ = ann.do(http.MethodGet, "/api/v1/loans/quote?amount=abc&months=12", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = ann.do(http.MethodGet, "/api/v1/loans/quote?amount=1000&months=100000&rate=12", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLogoutEndsSession(t *testing.T) {
	h := newHarness(t, nil)
	ann := h.browser(t)
	ann.login("ann@co.com", "Secret123!")

	status, _ := ann.do(http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = ann.do(http.MethodGet, "/api/v1/dashboard/employee", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
