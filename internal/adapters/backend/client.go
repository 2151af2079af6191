package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/logger"
)

// Client talks to the HR backend REST API
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	log          *logger.Logger
}

var _ services.Backend = (*Client)(nil)

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithLogger attaches a logger
func WithLogger(l *logger.Logger) Option {
	return func(cl *Client) {
		cl.log = l.Component("backend")
	}
}

// NewClient creates a backend client. serviceToken authorizes directory
// lookups made before a user session exists.
func NewClient(baseURL, serviceToken string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		serviceToken: serviceToken,
		httpClient:   &http.Client{Timeout: timeout},
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ============================================
// Transport
// ============================================

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")
		return fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := decodeError(resp)
		c.log.Debug().Int("status", apiErr.Status).Str("path", path).Str("message", apiErr.Message).Msg("backend error")
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError reads the backend's error envelope, falling back to the status text
func decodeError(resp *http.Response) *domain.APIError {
	apiErr := &domain.APIError{}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(b) > 0 {
		_ = json.Unmarshal(b, apiErr)
	}
	apiErr.Failed = true
	if apiErr.Status == 0 {
		apiErr.Status = resp.StatusCode
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func byEmployee(employeeID string) url.Values {
	if employeeID == "" {
		return nil
	}
	return url.Values{"employee_id": {employeeID}}
}

// ============================================
// Employees
// ============================================

// FindByContact resolves an email or phone to its employee record
func (c *Client) FindByContact(ctx context.Context, identifier string) (domain.Employee, error) {
	var list []domain.Employee
	err := c.do(ctx, http.MethodGet, "/employees", c.serviceToken, url.Values{"contact": {identifier}}, nil, &list)
	if err != nil {
		return domain.Employee{}, err
	}
	for _, e := range list {
		if e.HasContact(identifier) {
			return e, nil
		}
	}
	return domain.Employee{}, domain.ErrNotFound
}

func (c *Client) ListEmployees(ctx context.Context, token string) ([]domain.Employee, error) {
	var list []domain.Employee
	err := c.do(ctx, http.MethodGet, "/employees", token, nil, nil, &list)
	return list, err
}

func (c *Client) GetEmployee(ctx context.Context, token, id string) (domain.Employee, error) {
	var e domain.Employee
	err := c.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(id), token, nil, nil, &e)
	return e, err
}

// ============================================
// Attendance & Leave
// ============================================

func (c *Client) ListAttendance(ctx context.Context, token, employeeID string) ([]domain.AttendanceRecord, error) {
	var list []domain.AttendanceRecord
	err := c.do(ctx, http.MethodGet, "/attendance", token, byEmployee(employeeID), nil, &list)
	return list, err
}

func (c *Client) ListLeave(ctx context.Context, token, employeeID string) ([]domain.LeaveRequest, error) {
	var list []domain.LeaveRequest
	err := c.do(ctx, http.MethodGet, "/leave", token, byEmployee(employeeID), nil, &list)
	return list, err
}

func (c *Client) CreateLeave(ctx context.Context, token string, req domain.LeaveRequest) (domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	err := c.do(ctx, http.MethodPost, "/leave", token, nil, req, &out)
	return out, err
}

func (c *Client) UpdateLeave(ctx context.Context, token string, req domain.LeaveRequest) (domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	err := c.do(ctx, http.MethodPut, "/leave/"+url.PathEscape(req.ID), token, nil, req, &out)
	return out, err
}

func (c *Client) DeleteLeave(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/leave/"+url.PathEscape(id), token, nil, nil, nil)
}

// ============================================
// Loans
// ============================================

func (c *Client) ListLoans(ctx context.Context, token, employeeID string) ([]domain.LoanRequest, error) {
	var list []domain.LoanRequest
	err := c.do(ctx, http.MethodGet, "/loans", token, byEmployee(employeeID), nil, &list)
	return list, err
}

func (c *Client) CreateLoan(ctx context.Context, token string, req domain.LoanRequest) (domain.LoanRequest, error) {
	var out domain.LoanRequest
	err := c.do(ctx, http.MethodPost, "/loans", token, nil, req, &out)
	return out, err
}

func (c *Client) UpdateLoan(ctx context.Context, token string, req domain.LoanRequest) (domain.LoanRequest, error) {
	var out domain.LoanRequest
	err := c.do(ctx, http.MethodPut, "/loans/"+url.PathEscape(req.LoanNumber), token, nil, req, &out)
	return out, err
}

// ============================================
// Records
// ============================================

func (c *Client) ListPayroll(ctx context.Context, token, employeeID string) ([]domain.PayrollRecord, error) {
	var list []domain.PayrollRecord
	err := c.do(ctx, http.MethodGet, "/payroll", token, byEmployee(employeeID), nil, &list)
	return list, err
}

func (c *Client) ListPerformance(ctx context.Context, token, employeeID string) ([]domain.PerformancePoint, error) {
	var list []domain.PerformancePoint
	err := c.do(ctx, http.MethodGet, "/performance", token, byEmployee(employeeID), nil, &list)
	return list, err
}

func (c *Client) ListTraining(ctx context.Context, token, employeeID string) ([]domain.TrainingRecord, error) {
	var list []domain.TrainingRecord
	err := c.do(ctx, http.MethodGet, "/training", token, byEmployee(employeeID), nil, &list)
	return list, err
}

func (c *Client) ListAnnouncements(ctx context.Context, token string) ([]domain.Event, error) {
	var list []domain.Event
	err := c.do(ctx, http.MethodGet, "/announcements", token, nil, nil, &list)
	return list, err
}

func (c *Client) ListNotifications(ctx context.Context, token, employeeID string) ([]domain.Notification, error) {
	var list []domain.Notification
	err := c.do(ctx, http.MethodGet, "/notifications", token, byEmployee(employeeID), nil, &list)
	return list, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+url.PathEscape(id)+"/read", token, nil, nil, nil)
}
