// Package metrics turns raw HR records into dashboard figures. Every function
// is pure: same input, same output, no I/O and no retained state.
package metrics

import (
	"strconv"
	"strings"

	"hrdesk/internal/core/domain"
)

// AttendanceMetrics summarises a list of attendance records
type AttendanceMetrics struct {
	PresentCount            int   `json:"present_count"`
	AbsentCount             int   `json:"absent_count"`
	TotalHoursWorkedSeconds int64 `json:"total_hours_worked_seconds"`
}

// ComputeAttendanceMetrics counts present/absent days and sums worked time.
// A present record with a malformed duration adds zero seconds.
func ComputeAttendanceMetrics(records []domain.AttendanceRecord) AttendanceMetrics {
	var m AttendanceMetrics
	for _, r := range records {
		switch r.Status {
		case domain.AttendancePresent:
			m.PresentCount++
			if secs, ok := ParseHMS(r.HoursWorked); ok {
				m.TotalHoursWorkedSeconds += secs
			}
		case domain.AttendanceAbsent:
			m.AbsentCount++
		}
	}
	return m
}

// ParseHMS parses "HH:MM:SS" into seconds. Hours may exceed 23.
func ParseHMS(s string) (int64, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, false
	}

	var vals [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		vals[i] = n
	}
	if vals[1] > 59 || vals[2] > 59 {
		return 0, false
	}
	return vals[0]*3600 + vals[1]*60 + vals[2], true
}

// FormatHMS renders seconds as "HH:MM:SS"
func FormatHMS(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return pad2(h) + ":" + pad2(m) + ":" + pad2(s)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
