package domain

import (
	"slices"
	"strings"
	"time"
)

// Role names as issued by the backend
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleManager    = "manager"
	RoleEmployee   = "employee"
)

// RolePrecedence orders roles from most to least privileged. Roles not listed
// rank after every listed role, in the order the backend returned them.
var RolePrecedence = []string{RoleSuperAdmin, RoleAdmin, RoleHR, RoleManager, RoleEmployee}

// Session represents the authenticated principal of a client workspace
type Session struct {
	Token            string    `json:"token,omitempty"`
	Identifier       string    `json:"identifier"`
	EmployeeID       string    `json:"employee_id"`
	Roles            []string  `json:"roles"`
	ActiveRole       string    `json:"active_role,omitempty"`
	RegistrationMode bool      `json:"registration_mode"`
	EstablishedAt    time.Time `json:"established_at"`
}

// Authenticated reports whether the session carries at least one role
func (s *Session) Authenticated() bool {
	return s != nil && len(s.Roles) > 0
}

// HasRole reports whether role was granted
func (s *Session) HasRole(role string) bool {
	return s != nil && slices.Contains(s.Roles, role)
}

// IsSuperAdmin reports whether the session may use admin routes
func (s *Session) IsSuperAdmin() bool {
	return s.HasRole(RoleSuperAdmin)
}

// PrimaryRole picks the highest-precedence role. Ties keep backend order.
func PrimaryRole(roles []string) string {
	best, bestRank := "", len(RolePrecedence)+1
	for _, r := range roles {
		rank := slices.Index(RolePrecedence, r)
		if rank < 0 {
			rank = len(RolePrecedence)
		}
		if rank < bestRank {
			best, bestRank = r, rank
		}
	}
	return best
}

// OTPPurpose tells what an OTP challenge unlocks
type OTPPurpose string

const (
	OTPPurposeRegister OTPPurpose = "register"
	OTPPurposeReset    OTPPurpose = "reset"
)

// OTPChallenge is an in-flight one-time-passcode exchange
type OTPChallenge struct {
	ID               string     `json:"id"`
	Identifier       string     `json:"identifier"`
	Purpose          OTPPurpose `json:"purpose"`
	Sent             bool       `json:"sent"`
	Verified         bool       `json:"verified"`
	StartedAt        time.Time  `json:"started_at"`
	SecondsRemaining int        `json:"seconds_remaining"`
	LastError        string     `json:"last_error,omitempty"`
}

// Profile is the signed-in employee's own details
type Profile struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

// Employee is the backend's employee record (read-only here)
type Employee struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Department string   `json:"department,omitempty"`
	Position   string   `json:"position,omitempty"`
	Roles      []string `json:"roles"`
}

// HasContact reports whether identifier is this employee's email or phone
func (e Employee) HasContact(identifier string) bool {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return false
	}
	if strings.EqualFold(e.Email, identifier) {
		return true
	}
	return e.Phone != "" && digitsOnly(e.Phone) == digitsOnly(identifier)
}

// Profile projects the employee onto the profile slice
func (e Employee) Profile() Profile {
	return Profile{
		EmployeeID: e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Position:   e.Position,
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AttendanceStatus of a day
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// AttendanceRecord is one employee-day. HoursWorked is "HH:MM:SS".
type AttendanceRecord struct {
	ID          string           `json:"id,omitempty"`
	Date        Date             `json:"date"`
	EmployeeID  string           `json:"employee_id"`
	Status      AttendanceStatus `json:"status"`
	HoursWorked string           `json:"hours_worked"`
}

// Normalize forces absent days to zero hours
func (a AttendanceRecord) Normalize() AttendanceRecord {
	if a.Status == AttendanceAbsent {
		a.HoursWorked = "00:00:00"
	}
	return a
}

// LeaveStatus of a leave request
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// LeaveRequest covers StartDate..EndDate inclusive
type LeaveRequest struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employee_id"`
	Type       string      `json:"type"`
	StartDate  Date        `json:"start_date"`
	EndDate    Date        `json:"end_date"`
	Status     LeaveStatus `json:"status"`
	Reason     string      `json:"reason,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Validate checks the request's own fields
func (l LeaveRequest) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(l.Type) == "" {
		v.Add("type", "required")
	}
	if l.StartDate.IsZero() {
		v.Add("start_date", "required")
	}
	if l.EndDate.IsZero() {
		v.Add("end_date", "required")
	}
	if !l.StartDate.IsZero() && !l.EndDate.IsZero() && l.EndDate.Before(l.StartDate.Time) {
		v.Add("end_date", "before_start")
	}
	return v.OrNil()
}

// Transition moves a pending request to a terminal state
func (l *LeaveRequest) Transition(to LeaveStatus) error {
	if l.Status != LeavePending {
		return ErrInvalidTransition
	}
	if to != LeaveApproved && to != LeaveRejected {
		return ErrInvalidTransition
	}
	l.Status = to
	return nil
}

// LoanStatus of a loan request
type LoanStatus string

const (
	LoanPending  LoanStatus = "Pending"
	LoanApproved LoanStatus = "Approved"
	LoanRejected LoanStatus = "Rejected"
)

// LoanRequest is an employee loan. MonthlyPayment and RemainingBalance are nil until approval.
type LoanRequest struct {
	LoanNumber       string     `json:"loan_number"`
	EmployeeID       string     `json:"employee_id"`
	Amount           float64    `json:"amount"`
	DurationMonths   int        `json:"duration_months"`
	Purpose          string     `json:"purpose,omitempty"`
	Status           LoanStatus `json:"status"`
	RequestedAt      time.Time  `json:"requested_at"`
	InterestRate     float64    `json:"interest_rate"`
	MonthlyPayment   *float64   `json:"monthly_payment,omitempty"`
	RemainingBalance *float64   `json:"remaining_balance,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
}

// Approve stores the derived payment figures. It only succeeds once.
func (l *LoanRequest) Approve(rate, monthlyPayment float64, at time.Time) error {
	if l.Status == LoanApproved {
		return ErrLoanAlreadyApproved
	}
	if l.Status != LoanPending {
		return ErrInvalidTransition
	}
	remaining := l.Amount
	l.Status = LoanApproved
	l.InterestRate = rate
	l.MonthlyPayment = &monthlyPayment
	l.RemainingBalance = &remaining
	l.ApprovedAt = &at
	return nil
}

// PerformancePoint is one period's score
type PerformancePoint struct {
	Period string  `json:"period"`
	Score  float64 `json:"score"`
}

// Event is an announcement or calendar entry. Time uses a 12-hour clock ("3:04 PM").
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Notification shown in the dashboard bell
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// PayrollRecord is one pay period
type PayrollRecord struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

// TrainingRecord is an assigned course
type TrainingRecord struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
