package domain

import "errors"

// MsgBadCredentials is deliberately the same for unknown identifiers and wrong passwords
const MsgBadCredentials = "No matching employee or incorrect password"

// UserMessage returns the notification text for err
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "Please check the highlighted fields"
	case errors.Is(err, ErrMismatch):
		return "Passwords do not match"
	case errors.Is(err, ErrNotProvisioned):
		return "This email or phone has not been added by an administrator yet"
	case errors.Is(err, ErrAuth):
		return MsgBadCredentials
	case errors.Is(err, ErrInvalidOTP):
		return "The code you entered is incorrect or has expired"
	case errors.Is(err, ErrNoChallenge):
		return "Request a new code first"
	case errors.Is(err, ErrOperationInFlight):
		return "Please wait for the previous request to finish"
	case errors.Is(err, ErrStaleResult):
		return "The request was cancelled"
	case errors.Is(err, ErrNotAuthenticated):
		return "Please sign in"
	case errors.Is(err, ErrRoleNotGranted), errors.Is(err, ErrForbidden):
		return "You do not have access to this page"
	case errors.Is(err, ErrInvalidTransition):
		return "This request has already been decided"
	case errors.Is(err, ErrLoanAlreadyApproved):
		return "This loan has already been approved"
	case errors.Is(err, ErrInvalidArgument):
		return "Invalid input"
	case errors.Is(err, ErrEmployeeNotFound):
		return "No matching employee found"
	case errors.Is(err, ErrNotFound):
		return "The requested record was not found"
	case errors.Is(err, ErrNetwork):
		return "Service unavailable, please try again"
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	default:
		return "Something went wrong, please try again"
	}
}
