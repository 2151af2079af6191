package handlers

import (
	"errors"
	"net/http"
	"time"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// statusFor maps a domain error onto an HTTP status
func statusFor(err error) int {
	var apiErr *domain.APIError
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMismatch),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidOTP):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAuth),
		errors.Is(err, domain.ErrNotAuthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrRoleNotGranted):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrNotProvisioned):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrOperationInFlight),
		errors.Is(err, domain.ErrNoChallenge),
		errors.Is(err, domain.ErrStaleResult),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrLoanAlreadyApproved):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNetwork):
		return fiber.StatusBadGateway
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		return apiErr.Status
	case errors.As(err, &apiErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// fail renders err as the dashboard's error envelope
func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		details := make([]string, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			details = append(details, v.Field+":"+v.Rule)
		}
		return response.ErrorWithDetails(c, status, domain.UserMessage(err), details)
	}

	if status == fiber.StatusInternalServerError {
		return response.Error(c, status, http.StatusText(status))
	}
	return response.Error(c, status, domain.UserMessage(err))
}

func badBody(c *fiber.Ctx) error {
	return response.BadRequest(c, "Invalid request body")
}

// dateQuery parses an optional "2006-01-02" query parameter
func dateQuery(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(key, "format")
	}
	return d.Time, nil
}
