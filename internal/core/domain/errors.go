package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy surfaced to the dashboard
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotProvisioned  = errors.New("identifier not provisioned")
	ErrNotFound        = errors.New("resource not found")
	ErrAuth            = errors.New("authentication failed")
	ErrInvalidOTP      = errors.New("invalid one-time code")
	ErrNetwork         = errors.New("collaborator unreachable")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMismatch        = errors.New("confirmation does not match")

	// ErrEmployeeNotFound is the ErrNotFound of a directory lookup by contact
	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrNotFound)
)

// Flow errors
var (
	ErrOperationInFlight = errors.New("operation already in progress")
	ErrNoChallenge       = errors.New("no active one-time code challenge")
	ErrStaleResult       = errors.New("result discarded: flow changed while waiting")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrRoleNotGranted    = errors.New("role not granted")
	ErrForbidden         = errors.New("forbidden")
)

// Record errors
var (
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrLoanAlreadyApproved = errors.New("loan already approved")
)

// Violation is one failed field rule
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists client-side rule violations. It matches ErrValidation.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(field string, rules ...string) *ValidationError {
	v := &ValidationError{}
	for _, r := range rules {
		v.Add(field, r)
	}
	return v
}

// Add records a violation
func (v *ValidationError) Add(field, rule string) {
	v.Violations = append(v.Violations, Violation{Field: field, Rule: rule})
}

// OrNil returns nil when nothing was violated
func (v *ValidationError) OrNil() error {
	if len(v.Violations) == 0 {
		return nil
	}
	return v
}

// Rules returns the violated rules for field
func (v *ValidationError) Rules(field string) []string {
	var rules []string
	for _, viol := range v.Violations {
		if viol.Field == field {
			rules = append(rules, viol.Rule)
		}
	}
	return rules
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Violations))
	for _, viol := range v.Violations {
		parts = append(parts, viol.Field+":"+viol.Rule)
	}
	return fmt.Sprintf("validation failed (%s)", strings.Join(parts, ", "))
}

func (v *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// APIError is the backend's error envelope. It is a recoverable failure.
type APIError struct {
	Failed  bool   `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.Status, e.Message)
}

// Is maps backend statuses onto the taxonomy
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == 404
	case ErrAuth:
		return e.Status == 401
	case ErrForbidden:
		return e.Status == 403
	case ErrNetwork:
		return e.Status >= 500
	}
	return false
}
