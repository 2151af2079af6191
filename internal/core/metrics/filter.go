package metrics

import (
	"fmt"
	"time"

	"hrdesk/internal/core/domain"
)

// FilterByDateRange keeps records whose date falls within [from, to]. A zero
// from or to leaves that side open. from after to is a caller error.
func FilterByDateRange[T any](records []T, from, to time.Time, dateOf func(T) time.Time) ([]T, error) {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, fmt.Errorf("filter %s..%s: %w", from.Format(domain.DateLayout), to.Format(domain.DateLayout),
			domain.NewValidationError("from", "after_to"))
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		d := dateOf(r)
		if !from.IsZero() && d.Before(from) {
			continue
		}
		if !to.IsZero() && d.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// AttendanceDate is the date accessor for attendance records
func AttendanceDate(r domain.AttendanceRecord) time.Time { return r.Date.Time }

// LeaveStartDate is the date accessor for leave history
func LeaveStartDate(r domain.LeaveRequest) time.Time { return r.StartDate.Time }
