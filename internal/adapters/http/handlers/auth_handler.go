package handlers

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/otp"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles login, registration, password reset and role selection
type AuthHandler struct {
	tick time.Duration
}

// NewAuthHandler creates a new auth handler. tick is the countdown stream interval.
func NewAuthHandler(tick time.Duration) *AuthHandler {
	if tick <= 0 {
		tick = time.Second
	}
	return &AuthHandler{tick: tick}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// IdentifierRequest carries an email or 10-digit phone
type IdentifierRequest struct {
	Identifier string `json:"identifier"`
}

// VerifyOTPRequest represents the registration code submission
type VerifyOTPRequest struct {
	Identifier string `json:"identifier"`
	Code       string `json:"code"`
}

// SetPasswordRequest represents the password step after registration
type SetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetPasswordRequest represents the password reset confirmation
type ResetPasswordRequest struct {
	Identifier      string `json:"identifier"`
	Code            string `json:"code"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// PasswordCheckRequest represents a live password strength check
type PasswordCheckRequest struct {
	Password string `json:"password"`
}

// RoleRequest selects the active role
type RoleRequest struct {
	Role string `json:"role"`
}

// Login handles email/phone + password sign-in
// @Summary Sign in
// @Description Authenticate with email or phone and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ws := middleware.CurrentWorkspace(c)
	result, err := ws.Flow.SubmitCredentials(c.UserContext(), strings.TrimSpace(req.Identifier), req.Password)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Signed in", publicResult(result))
}

// RequestRegistrationOtp sends a registration code to a provisioned identifier
// @Summary Request registration code
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body IdentifierRequest true "Identifier"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/register/otp [post]
func (h *AuthHandler) RequestRegistrationOtp(c *fiber.Ctx) error {
	var req IdentifierRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ws := middleware.CurrentWorkspace(c)
	challenge, err := ws.Flow.RequestRegistrationOtp(c.UserContext(), strings.TrimSpace(req.Identifier))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Code sent", challenge)
}

// VerifyRegistrationOtp checks the registration code and signs the user in
// @Summary Verify registration code
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body VerifyOTPRequest true "Code"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register/verify [post]
func (h *AuthHandler) VerifyRegistrationOtp(c *fiber.Ctx) error {
	var req VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ws := middleware.CurrentWorkspace(c)
	result, err := ws.Flow.VerifyRegistrationOtp(c.UserContext(), strings.TrimSpace(req.Identifier), strings.TrimSpace(req.Code))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Verified", publicResult(result))
}

// CompleteRegistration stores the first password of a newly verified account
// @Summary Set initial password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SetPasswordRequest true "Password"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register/password [post]
func (h *AuthHandler) CompleteRegistration(c *fiber.Ctx) error {
	var req SetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if req.Password != req.ConfirmPassword {
		return fail(c, domain.ErrMismatch)
	}

	ws := middleware.CurrentWorkspace(c)
	if err := ws.Flow.CompleteRegistration(c.UserContext(), req.Password); err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Password saved", nil)
}

// ResendOtp re-sends the active challenge's code once the cooldown has elapsed
// @Summary Resend code
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body IdentifierRequest true "Identifier"
// @Success 200 {object} response.Response
// @Router /auth/otp/resend [post]
func (h *AuthHandler) ResendOtp(c *fiber.Ctx) error {
	var req IdentifierRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ws := middleware.CurrentWorkspace(c)
	sent, err := ws.Flow.ResendOtp(c.UserContext(), strings.TrimSpace(req.Identifier))
	if err != nil {
		return fail(c, err)
	}

	challenge, _ := ws.Flow.Challenge()
	return response.Success(c, "", fiber.Map{"sent": sent, "challenge": challenge})
}

// Challenge returns the active challenge with its remaining cooldown
// @Summary Current code challenge
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/otp [get]
func (h *AuthHandler) Challenge(c *fiber.Ctx) error {
	ws := middleware.CurrentWorkspace(c)
	challenge, ok := ws.Flow.Challenge()
	if !ok {
		return fail(c, domain.ErrNoChallenge)
	}
	return response.Success(c, "", challenge)
}

// CancelChallenge abandons the active challenge
// @Summary Cancel code challenge
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/otp [delete]
func (h *AuthHandler) CancelChallenge(c *fiber.Ctx) error {
	middleware.CurrentWorkspace(c).Flow.CancelChallenge()
	return response.Success(c, "Cancelled", nil)
}

// Countdown streams the resend cooldown as Server-Sent Events until it reaches zero
// @Summary Resend countdown stream
// @Tags Auth
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Failure 409 {object} response.Response
// @Router /auth/otp/countdown [get]
func (h *AuthHandler) Countdown(c *fiber.Ctx) error {
	ws := middleware.CurrentWorkspace(c)
	source, ok := ws.Flow.CountdownSource()
	if !ok {
		return fail(c, domain.ErrNoChallenge)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	tick := h.tick
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		for secs := range otp.Countdown(ctx, tick, source) {
			fmt.Fprintf(w, "event: countdown\ndata: {\"seconds_remaining\":%d}\n\n", secs)
			if err := w.Flush(); err != nil {
				return
			}
		}
		fmt.Fprint(w, "event: done\ndata: {}\n\n")
		w.Flush()
	})
	return nil
}

// ValidatePassword reports which password rules the candidate misses
// @Summary Check password strength
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body PasswordCheckRequest true "Candidate"
// @Success 200 {object} response.Response
// @Router /auth/password/validate [post]
func (h *AuthHandler) ValidatePassword(c *fiber.Ctx) error {
	var req PasswordCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	violations := services.ValidateNewPassword(req.Password)
	if violations == nil {
		violations = []string{}
	}
	return response.Success(c, "", fiber.Map{
		"valid":      len(violations) == 0,
		"violations": violations,
	})
}

// ForgotPassword sends a reset code to a registered identifier
// @Summary Request password reset
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body IdentifierRequest true "Identifier"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/password/forgot [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req IdentifierRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ws := middleware.CurrentWorkspace(c)
	challenge, err := ws.Flow.RequestPasswordReset(c.UserContext(), strings.TrimSpace(req.Identifier))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Reset code sent", challenge)
}

// ResetPassword confirms the reset code and stores the new password
// @Summary Confirm password reset
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Reset data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/password/reset [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if req.Password != req.ConfirmPassword {
		return fail(c, domain.ErrMismatch)
	}

	ws := middleware.CurrentWorkspace(c)
	err := ws.Flow.ConfirmPasswordReset(c.UserContext(), strings.TrimSpace(req.Identifier), strings.TrimSpace(req.Code), req.Password)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Password updated, please sign in", nil)
}

// SelectRole picks the active role of a multi-role session
// @Summary Select role
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RoleRequest true "Role"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/role [post]
func (h *AuthHandler) SelectRole(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ws := middleware.CurrentWorkspace(c)
	home, err := ws.Flow.SelectRole(c.UserContext(), strings.TrimSpace(req.Role))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "", fiber.Map{"home": home})
}

// Logout clears the workspace session
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ws := middleware.CurrentWorkspace(c)
	if err := ws.Flow.Logout(c.UserContext()); err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Signed out", nil)
}

// State returns the flow snapshot (no session required)
// @Summary Auth flow state
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/state [get]
func (h *AuthHandler) State(c *fiber.Ctx) error {
	snap := middleware.CurrentWorkspace(c).Flow.Snapshot()
	snap.Session = publicSession(snap.Session)
	return response.Success(c, "", snap)
}

// Me returns the signed-in session and profile
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ws := middleware.CurrentWorkspace(c)
	sess, err := ws.Session()
	if err != nil {
		return fail(c, err)
	}
	profile, _ := ws.Store.Profile()
	return response.Success(c, "", fiber.Map{
		"session": publicSession(sess),
		"profile": profile,
	})
}

// publicSession hides the upstream bearer token from the browser
func publicSession(sess *domain.Session) *domain.Session {
	if sess == nil {
		return nil
	}
	cp := *sess
	cp.Token = ""
	return &cp
}

func publicResult(result *services.LoginResult) *services.LoginResult {
	cp := *result
	cp.Session.Token = ""
	return &cp
}
