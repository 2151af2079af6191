package metrics

import (
	"math"
	"time"

	"hrdesk/internal/core/domain"
)

// LeavePolicy decides which requests reduce the balance
type LeavePolicy int

const (
	// CountAll deducts every request whatever its status. Pending requests
	// reserve balance and rejected ones are never credited back.
	CountAll LeavePolicy = iota
	// ExcludeRejected credits rejected requests back to the balance
	ExcludeRejected
)

// ParseLeavePolicy maps a config value onto a policy; unknown values give CountAll
func ParseLeavePolicy(s string) LeavePolicy {
	if s == "exclude_rejected" {
		return ExcludeRejected
	}
	return CountAll
}

func (p LeavePolicy) String() string {
	if p == ExcludeRejected {
		return "exclude_rejected"
	}
	return "count_all"
}

func (p LeavePolicy) counts(status domain.LeaveStatus) bool {
	return p == CountAll || status != domain.LeaveRejected
}

// LeaveDays is the inclusive day count between start and end.
// It returns 0 when end is before start.
func LeaveDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := math.Ceil(end.Sub(start).Hours() / 24)
	return int(days) + 1
}

// ComputeRemainingLeave deducts every request from the allowance. The result
// may be negative.
func ComputeRemainingLeave(totalAllowance int, requests []domain.LeaveRequest) int {
	return RemainingLeave(totalAllowance, requests, CountAll)
}

// RemainingLeave is ComputeRemainingLeave under an explicit policy
func RemainingLeave(totalAllowance int, requests []domain.LeaveRequest, policy LeavePolicy) int {
	remaining := totalAllowance
	for _, r := range requests {
		if !policy.counts(r.Status) {
			continue
		}
		remaining -= LeaveDays(r.StartDate.Time, r.EndDate.Time)
	}
	return remaining
}

// ComputeLeaveBalanceByType applies RemainingLeave per leave type. Requests of
// a type without an allowance are reported against a zero allowance.
func ComputeLeaveBalanceByType(allowances map[string]int, requests []domain.LeaveRequest, policy LeavePolicy) map[string]int {
	byType := make(map[string][]domain.LeaveRequest)
	for _, r := range requests {
		byType[r.Type] = append(byType[r.Type], r)
	}

	out := make(map[string]int, len(allowances))
	for t, allowance := range allowances {
		out[t] = RemainingLeave(allowance, byType[t], policy)
	}
	for t, reqs := range byType {
		if _, ok := out[t]; !ok {
			out[t] = RemainingLeave(0, reqs, policy)
		}
	}
	return out
}
