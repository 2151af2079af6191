package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/otp"
	"hrdesk/internal/core/store"
	"hrdesk/internal/pkg/clock"
	"hrdesk/internal/pkg/logger"
)

// ============================================================
// Auth / Registration / OTP flow
// ============================================================

// FlowState is the position of a workspace in the auth flow
type FlowState string

const (
	StateLoggedOut      FlowState = "logged_out"
	StateLoggingIn      FlowState = "logging_in"
	StateRegistering    FlowState = "registering"
	StateAwaitingOTP    FlowState = "awaiting_otp"
	StateForgotPassword FlowState = "forgot_password"
	StateAwaitingReset  FlowState = "awaiting_reset"
	StateRoleSelection  FlowState = "role_selection"
	StateLoggedIn       FlowState = "logged_in"
)

// Operation names a collaborator call that may be in flight
type Operation string

const (
	OpLogin         Operation = "login"
	OpOTPSend       Operation = "otp_send"
	OpOTPVerify     Operation = "otp_verify"
	OpPasswordReset Operation = "password_reset"
	OpPasswordSet   Operation = "password_set"
)

// Home routes
const (
	HomeAdmin    = "/admin"
	HomeEmployee = "/employee"
)

// LoginResult is returned when a session is established
type LoginResult struct {
	Session            domain.Session `json:"session"`
	Home               string         `json:"home"`
	NeedsRoleSelection bool           `json:"needs_role_selection"`
}

// FlowSnapshot is a read-only view of the flow for the UI
type FlowSnapshot struct {
	State     FlowState            `json:"state"`
	Session   *domain.Session      `json:"session,omitempty"`
	Challenge *domain.OTPChallenge `json:"challenge,omitempty"`
	InFlight  []Operation          `json:"in_flight"`
}

// AuthFlow drives one workspace through login, registration, password reset
// and role selection. The mutex guards flow state only and is released
// before every collaborator call.
type AuthFlow struct {
	identity  IdentityProvider
	directory EmployeeDirectory
	store     *store.Store
	clock     clock.Clock
	cooldown  time.Duration
	log       *logger.Logger

	mu        sync.Mutex
	state     FlowState
	challenge *domain.OTPChallenge
	inFlight  map[Operation]bool
	epoch     uint64
}

// NewAuthFlow creates a flow bound to a workspace store
func NewAuthFlow(st *store.Store, identity IdentityProvider, directory EmployeeDirectory, clk clock.Clock, log *logger.Logger) *AuthFlow {
	if clk == nil {
		clk = clock.Real()
	}
	if log == nil {
		log = logger.Nop()
	}
	f := &AuthFlow{
		identity:  identity,
		directory: directory,
		store:     st,
		clock:     clk,
		cooldown:  otp.Cooldown,
		log:       log,
		state:     StateLoggedOut,
		inFlight:  make(map[Operation]bool),
	}
	f.restoreState()
	return f
}

// restoreState derives the flow state from a hydrated session
func (f *AuthFlow) restoreState() {
	sess := f.store.Session()
	switch {
	case !sess.Authenticated():
		f.state = StateLoggedOut
	case sess.ActiveRole == "" && len(sess.Roles) > 1:
		f.state = StateRoleSelection
	default:
		f.state = StateLoggedIn
	}
}

// State returns the current flow state
func (f *AuthFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot returns the state, session, challenge and in-flight operations
func (f *AuthFlow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := FlowSnapshot{State: f.state, Session: f.store.Session(), InFlight: []Operation{}}
	if c, ok := f.challengeLocked(); ok {
		snap.Challenge = &c
	}
	for op, busy := range f.inFlight {
		if busy {
			snap.InFlight = append(snap.InFlight, op)
		}
	}
	slices.Sort(snap.InFlight)
	return snap
}

// Challenge returns the active OTP challenge with its cooldown computed from the clock
func (f *AuthFlow) Challenge() (domain.OTPChallenge, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.challengeLocked()
}

func (f *AuthFlow) challengeLocked() (domain.OTPChallenge, bool) {
	if f.challenge == nil {
		return domain.OTPChallenge{}, false
	}
	c := *f.challenge
	c.SecondsRemaining = otp.SecondsRemaining(c.StartedAt, f.clock.Now(), f.cooldown)
	return c, true
}

// CountdownSource samples the cooldown of the current challenge. It reports
// false once that challenge is cleared or replaced.
func (f *AuthFlow) CountdownSource() (func() (int, bool), bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.challenge == nil {
		return nil, false
	}
	id := f.challenge.ID
	return func() (int, bool) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.challenge == nil || f.challenge.ID != id {
			return 0, false
		}
		return otp.SecondsRemaining(f.challenge.StartedAt, f.clock.Now(), f.cooldown), true
	}, true
}

// InFlight reports whether op is waiting on a collaborator
func (f *AuthFlow) InFlight(op Operation) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight[op]
}

// begin marks op in flight and returns the session epoch it started under
func (f *AuthFlow) beginLocked(op Operation) (uint64, error) {
	if f.inFlight[op] {
		return 0, fmt.Errorf("%s: %w", op, domain.ErrOperationInFlight)
	}
	f.inFlight[op] = true
	return f.epoch, nil
}

func (f *AuthFlow) end(op Operation) {
	f.mu.Lock()
	f.inFlight[op] = false
	f.mu.Unlock()
}

func (f *AuthFlow) persist(ctx context.Context) {
	if err := f.store.Persist(ctx); err != nil {
		f.log.Error().Err(err).Str("key", f.store.Key()).Msg("persist session failed")
	}
}

// ============================================================
// Login
// ============================================================

// SubmitCredentials signs in with a password and resolves the employee's roles
func (f *AuthFlow) SubmitCredentials(ctx context.Context, identifier, secret string) (*LoginResult, error) {
	// 1. Validate before any network call
	v := &domain.ValidationError{}
	validateIdentifier(v, identifier)
	if secret == "" {
		v.Add("password", "required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	identifier = strings.TrimSpace(identifier)

	f.mu.Lock()
	epoch, err := f.beginLocked(OpLogin)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	prev := f.state
	f.state = StateLoggingIn
	f.mu.Unlock()
	defer f.end(OpLogin)

	fail := func(err error) (*LoginResult, error) {
		f.mu.Lock()
		if f.epoch == epoch && f.state == StateLoggingIn {
			f.state = prev
		}
		f.mu.Unlock()
		f.log.Warn().Err(err).Str("op", string(OpLogin)).Msg("login failed")
		return nil, err
	}

	// 2. Password sign-in
	token, err := f.identity.PasswordSignIn(ctx, identifier, secret)
	if err != nil {
		if errors.Is(err, domain.ErrAuth) || errors.Is(err, domain.ErrNotFound) {
			return fail(domain.ErrAuth)
		}
		return fail(err)
	}

	// 3. Resolve employee and roles
	employee, err := f.directory.FindByContact(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(domain.ErrAuth)
		}
		return fail(err)
	}
	if len(employee.Roles) == 0 {
		return fail(domain.ErrRoleNotGranted)
	}

	// 4. Establish session unless logout happened meanwhile
	f.mu.Lock()
	if f.epoch != epoch {
		f.mu.Unlock()
		return nil, domain.ErrStaleResult
	}
	sess := f.establishLocked(token, identifier, employee, false)
	f.mu.Unlock()

	f.persist(ctx)
	f.log.Info().Str("employee_id", employee.ID).Strs("roles", employee.Roles).Msg("signed in")

	return &LoginResult{
		Session:            sess,
		Home:               homeFor(sess),
		NeedsRoleSelection: sess.ActiveRole == "",
	}, nil
}

func (f *AuthFlow) establishLocked(token, identifier string, employee domain.Employee, registration bool) domain.Session {
	sess := domain.Session{
		Token:            token,
		Identifier:       identifier,
		EmployeeID:       employee.ID,
		Roles:            slices.Clone(employee.Roles),
		RegistrationMode: registration,
		EstablishedAt:    f.clock.Now(),
	}
	if len(sess.Roles) == 1 {
		sess.ActiveRole = sess.Roles[0]
	}

	f.store.SetSession(sess)
	f.store.SetProfile(employee.Profile())
	f.challenge = nil
	if sess.ActiveRole == "" && len(sess.Roles) > 1 {
		f.state = StateRoleSelection
	} else {
		f.state = StateLoggedIn
	}
	return sess
}

func homeFor(sess domain.Session) string {
	if sess.IsSuperAdmin() {
		return HomeAdmin
	}
	return HomeEmployee
}

// SelectRole picks the active role. An empty role selects the highest-precedence one.
func (f *AuthFlow) SelectRole(ctx context.Context, role string) (string, error) {
	f.mu.Lock()
	sess := f.store.Session()
	if !sess.Authenticated() {
		f.mu.Unlock()
		return "", domain.ErrNotAuthenticated
	}
	if role == "" {
		role = domain.PrimaryRole(sess.Roles)
	}
	if err := f.store.SetActiveRole(role); err != nil {
		f.mu.Unlock()
		return "", err
	}
	f.state = StateLoggedIn
	f.mu.Unlock()

	f.persist(ctx)
	if role == domain.RoleSuperAdmin {
		return HomeAdmin, nil
	}
	return HomeEmployee, nil
}

// Logout clears the session and any challenge. Results of calls still in
// flight are discarded when they return.
func (f *AuthFlow) Logout(ctx context.Context) error {
	f.mu.Lock()
	f.epoch++
	f.challenge = nil
	f.state = StateLoggedOut
	f.mu.Unlock()

	if err := f.store.Reset(ctx); err != nil {
		f.log.Error().Err(err).Msg("logout: clear persisted state failed")
		return err
	}
	return nil
}

// ============================================================
// Registration
// ============================================================

// RequestRegistrationOtp sends a code to a provisioned identifier and starts a challenge
func (f *AuthFlow) RequestRegistrationOtp(ctx context.Context, identifier string) (domain.OTPChallenge, error) {
	v := &domain.ValidationError{}
	validateIdentifier(v, identifier)
	if err := v.OrNil(); err != nil {
		return domain.OTPChallenge{}, err
	}
	identifier = strings.TrimSpace(identifier)

	f.mu.Lock()
	if c, ok := f.coolingChallengeLocked(identifier, domain.OTPPurposeRegister); ok {
		f.mu.Unlock()
		return c, nil
	}
	epoch, err := f.beginLocked(OpOTPSend)
	if err != nil {
		f.mu.Unlock()
		return domain.OTPChallenge{}, err
	}
	prev := f.state
	f.state = StateRegistering
	f.mu.Unlock()
	defer f.end(OpOTPSend)

	fail := func(err error) (domain.OTPChallenge, error) {
		f.mu.Lock()
		if f.epoch == epoch && f.state == StateRegistering {
			f.state = prev
		}
		f.mu.Unlock()
		f.log.Warn().Err(err).Str("op", string(OpOTPSend)).Msg("registration code not sent")
		return domain.OTPChallenge{}, err
	}

	// 1. Only employees added by an administrator may register
	if _, err := f.directory.FindByContact(ctx, identifier); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(domain.ErrNotProvisioned)
		}
		return fail(err)
	}

	// 2. Dispatch the code
	if err := f.identity.SendCode(ctx, identifier, domain.OTPPurposeRegister); err != nil {
		return fail(err)
	}

	// 3. Start the challenge
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch != epoch {
		return domain.OTPChallenge{}, domain.ErrStaleResult
	}
	f.startChallengeLocked(identifier, domain.OTPPurposeRegister)
	f.state = StateAwaitingOTP
	c, _ := f.challengeLocked()
	return c, nil
}

func (f *AuthFlow) startChallengeLocked(identifier string, purpose domain.OTPPurpose) {
	f.challenge = &domain.OTPChallenge{
		ID:         uuid.NewString(),
		Identifier: identifier,
		Purpose:    purpose,
		Sent:       true,
		StartedAt:  f.clock.Now(),
	}
}

// coolingChallengeLocked returns the current challenge for identifier and
// purpose while its resend cooldown still runs. A repeated request then
// sends nothing.
func (f *AuthFlow) coolingChallengeLocked(identifier string, purpose domain.OTPPurpose) (domain.OTPChallenge, bool) {
	c := f.challenge
	if c == nil || !c.Sent || c.Purpose != purpose || !strings.EqualFold(identifier, c.Identifier) {
		return domain.OTPChallenge{}, false
	}
	if otp.CanResend(c.StartedAt, f.clock.Now(), f.cooldown) {
		return domain.OTPChallenge{}, false
	}
	return f.challengeLocked()
}

// activeChallengeLocked returns the challenge for identifier and purpose
func (f *AuthFlow) activeChallengeLocked(identifier string, purpose domain.OTPPurpose) (*domain.OTPChallenge, error) {
	c := f.challenge
	if c == nil || !c.Sent || c.Purpose != purpose {
		return nil, domain.ErrNoChallenge
	}
	if identifier != "" && !strings.EqualFold(strings.TrimSpace(identifier), c.Identifier) {
		return nil, domain.ErrNoChallenge
	}
	return c, nil
}

// recordChallengeError stores a failure on the challenge if it is still current
func (f *AuthFlow) recordChallengeError(id string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.challenge != nil && f.challenge.ID == id {
		f.challenge.LastError = domain.UserMessage(err)
	}
}

// VerifyRegistrationOtp checks the code and establishes a session in registration mode.
// A wrong code leaves the challenge and its cooldown untouched.
func (f *AuthFlow) VerifyRegistrationOtp(ctx context.Context, identifier, code string) (*LoginResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}

	f.mu.Lock()
	c, err := f.activeChallengeLocked(identifier, domain.OTPPurposeRegister)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	challengeID, target := c.ID, c.Identifier
	if _, err := f.beginLocked(OpOTPVerify); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.mu.Unlock()
	defer f.end(OpOTPVerify)

	token, err := f.identity.VerifyCode(ctx, target, code, domain.OTPPurposeRegister)
	if err != nil {
		f.recordChallengeError(challengeID, err)
		f.log.Warn().Err(err).Str("op", string(OpOTPVerify)).Msg("registration code rejected")
		return nil, err
	}

	employee, err := f.directory.FindByContact(ctx, target)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrNotProvisioned
		}
		f.recordChallengeError(challengeID, err)
		return nil, err
	}

	f.mu.Lock()
	if f.challenge == nil || f.challenge.ID != challengeID {
		f.mu.Unlock()
		return nil, domain.ErrStaleResult
	}
	f.challenge.Verified = true
	sess := f.establishLocked(token, target, employee, true)
	f.mu.Unlock()

	f.persist(ctx)
	f.log.Info().Str("employee_id", employee.ID).Msg("registration verified")

	return &LoginResult{
		Session:            sess,
		Home:               homeFor(sess),
		NeedsRoleSelection: sess.ActiveRole == "",
	}, nil
}

// CompleteRegistration sets the password of a session established by registration
func (f *AuthFlow) CompleteRegistration(ctx context.Context, newPassword string) error {
	v := &domain.ValidationError{}
	validatePassword(v, newPassword)
	if err := v.OrNil(); err != nil {
		return err
	}

	f.mu.Lock()
	sess := f.store.Session()
	if !sess.Authenticated() {
		f.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	if !sess.RegistrationMode {
		f.mu.Unlock()
		return domain.ErrForbidden
	}
	epoch, err := f.beginLocked(OpPasswordSet)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.mu.Unlock()
	defer f.end(OpPasswordSet)

	if err := f.identity.SetPassword(ctx, sess.Token, newPassword); err != nil {
		f.log.Warn().Err(err).Str("op", string(OpPasswordSet)).Msg("set password failed")
		return err
	}

	f.mu.Lock()
	if f.epoch != epoch {
		f.mu.Unlock()
		return domain.ErrStaleResult
	}
	if current := f.store.Session(); current != nil {
		current.RegistrationMode = false
		f.store.SetSession(*current)
	}
	f.mu.Unlock()

	f.persist(ctx)
	return nil
}

// ResendOtp re-sends the active challenge's code. While the cooldown runs it
// is a silent no-op and reports false.
func (f *AuthFlow) ResendOtp(ctx context.Context, identifier string) (bool, error) {
	f.mu.Lock()
	c := f.challenge
	if c == nil || !c.Sent {
		f.mu.Unlock()
		return false, domain.ErrNoChallenge
	}
	if identifier != "" && !strings.EqualFold(strings.TrimSpace(identifier), c.Identifier) {
		f.mu.Unlock()
		return false, domain.ErrNoChallenge
	}
	if !otp.CanResend(c.StartedAt, f.clock.Now(), f.cooldown) {
		f.mu.Unlock()
		return false, nil
	}
	challengeID, target, purpose := c.ID, c.Identifier, c.Purpose
	if _, err := f.beginLocked(OpOTPSend); err != nil {
		f.mu.Unlock()
		return false, err
	}
	f.mu.Unlock()
	defer f.end(OpOTPSend)

	var err error
	if purpose == domain.OTPPurposeReset {
		err = f.identity.SendPasswordReset(ctx, target)
	} else {
		err = f.identity.SendCode(ctx, target, purpose)
	}
	if err != nil {
		f.recordChallengeError(challengeID, err)
		f.log.Warn().Err(err).Str("op", string(OpOTPSend)).Msg("resend failed")
		return false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.challenge == nil || f.challenge.ID != challengeID {
		return false, domain.ErrStaleResult
	}
	f.challenge.StartedAt = f.clock.Now()
	f.challenge.LastError = ""
	return true, nil
}

// CancelChallenge drops the active challenge and returns to the logged-out state
func (f *AuthFlow) CancelChallenge() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.challenge = nil
	switch f.state {
	case StateRegistering, StateAwaitingOTP, StateForgotPassword, StateAwaitingReset:
		f.state = StateLoggedOut
	}
}

// ============================================================
// Password reset
// ============================================================

// RequestPasswordReset dispatches a reset code to a known employee
func (f *AuthFlow) RequestPasswordReset(ctx context.Context, identifier string) (domain.OTPChallenge, error) {
	v := &domain.ValidationError{}
	validateIdentifier(v, identifier)
	if err := v.OrNil(); err != nil {
		return domain.OTPChallenge{}, err
	}
	identifier = strings.TrimSpace(identifier)

	f.mu.Lock()
	if c, ok := f.coolingChallengeLocked(identifier, domain.OTPPurposeReset); ok {
		f.mu.Unlock()
		return c, nil
	}
	epoch, err := f.beginLocked(OpPasswordReset)
	if err != nil {
		f.mu.Unlock()
		return domain.OTPChallenge{}, err
	}
	prev := f.state
	f.state = StateForgotPassword
	f.mu.Unlock()
	defer f.end(OpPasswordReset)

	fail := func(err error) (domain.OTPChallenge, error) {
		f.mu.Lock()
		if f.epoch == epoch && f.state == StateForgotPassword {
			f.state = prev
		}
		f.mu.Unlock()
		f.log.Warn().Err(err).Str("op", string(OpPasswordReset)).Msg("reset code not sent")
		return domain.OTPChallenge{}, err
	}

	if _, err := f.directory.FindByContact(ctx, identifier); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(domain.ErrEmployeeNotFound)
		}
		return fail(err)
	}
	if err := f.identity.SendPasswordReset(ctx, identifier); err != nil {
		return fail(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch != epoch {
		return domain.OTPChallenge{}, domain.ErrStaleResult
	}
	f.startChallengeLocked(identifier, domain.OTPPurposeReset)
	f.state = StateAwaitingReset
	c, _ := f.challengeLocked()
	return c, nil
}

// ConfirmPasswordReset sets a new password using the reset code. The caller
// checks the confirmation field before invoking.
func (f *AuthFlow) ConfirmPasswordReset(ctx context.Context, identifier, code, newPassword string) error {
	v := &domain.ValidationError{}
	if strings.TrimSpace(code) == "" {
		v.Add("code", "required")
	}
	validatePassword(v, newPassword)
	if err := v.OrNil(); err != nil {
		return err
	}

	f.mu.Lock()
	c, err := f.activeChallengeLocked(identifier, domain.OTPPurposeReset)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	challengeID, target := c.ID, c.Identifier
	if _, err := f.beginLocked(OpPasswordReset); err != nil {
		f.mu.Unlock()
		return err
	}
	f.mu.Unlock()
	defer f.end(OpPasswordReset)

	if err := f.identity.ConfirmPasswordReset(ctx, target, strings.TrimSpace(code), newPassword); err != nil {
		f.recordChallengeError(challengeID, err)
		f.log.Warn().Err(err).Str("op", string(OpPasswordReset)).Msg("password reset rejected")
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.challenge == nil || f.challenge.ID != challengeID {
		return domain.ErrStaleResult
	}
	f.challenge = nil
	f.state = StateLoggedOut
	f.log.Info().Str("identifier", target).Msg("password reset")
	return nil
}
