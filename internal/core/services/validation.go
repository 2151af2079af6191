package services

import (
	"regexp"
	"strings"
	"time"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/pkg/password"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// IsValidIdentifier reports whether s is an email (local@domain.tld) or a 10-digit phone number
func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	return emailPattern.MatchString(s) || phonePattern.MatchString(s)
}

// IsPhoneIdentifier reports whether s is a 10-digit phone number
func IsPhoneIdentifier(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

func validateIdentifier(v *domain.ValidationError, identifier string) {
	if strings.TrimSpace(identifier) == "" {
		v.Add("identifier", "required")
		return
	}
	if !IsValidIdentifier(identifier) {
		v.Add("identifier", "format")
	}
}

// ValidateNewPassword returns the unsatisfied password rules, empty when acceptable
func ValidateNewPassword(candidate string) []string {
	return password.Validate(candidate)
}

func validatePassword(v *domain.ValidationError, candidate string) {
	for _, rule := range password.Validate(candidate) {
		v.Add("password", rule)
	}
}

// checkRange rejects an inverted date range before any backend call
func checkRange(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return domain.NewValidationError("from", "after_to")
	}
	return nil
}
