package identity

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/adapters/persistence/repositories"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/clock"
	"hrdesk/internal/pkg/jwt"
	"hrdesk/internal/pkg/logger"
	"hrdesk/internal/pkg/password"

	"github.com/google/uuid"
)

// Config holds the provider's tunables
type Config struct {
	JWTSecret   string
	SessionTTL  time.Duration
	CodeTTL     time.Duration
	CodeLength  int
	MaxAttempts int
}

func (c Config) withDefaults() Config {
	if c.SessionTTL <= 0 {
		c.SessionTTL = 8 * time.Hour
	}
	if c.CodeTTL <= 0 {
		c.CodeTTL = 5 * time.Minute
	}
	if c.CodeLength <= 0 {
		c.CodeLength = 6
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	return c
}

// LocalProvider is the built-in identity provider. Credentials and one-time
// codes live in the database; sessions are signed JWTs.
type LocalProvider struct {
	creds     repositories.CredentialRepository
	codes     repositories.OneTimeCodeRepository
	directory services.EmployeeDirectory
	sender    Sender
	cfg       Config
	clock     clock.Clock
	log       *logger.Logger
}

var _ services.IdentityProvider = (*LocalProvider)(nil)

// NewLocalProvider creates a new local identity provider
func NewLocalProvider(
	creds repositories.CredentialRepository,
	codes repositories.OneTimeCodeRepository,
	directory services.EmployeeDirectory,
	sender Sender,
	cfg Config,
	clk clock.Clock,
	log *logger.Logger,
) *LocalProvider {
	if clk == nil {
		clk = clock.Real()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LocalProvider{
		creds:     creds,
		codes:     codes,
		directory: directory,
		sender:    sender,
		cfg:       cfg.withDefaults(),
		clock:     clk,
		log:       log.Component("identity"),
	}
}

// Normalize canonicalizes an identifier: emails are lowercased, phone numbers
// keep only their digits.
func Normalize(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		return strings.ToLower(identifier)
	}
	var b strings.Builder
	for _, r := range identifier {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PasswordSignIn checks the password and issues a session token
func (p *LocalProvider) PasswordSignIn(ctx context.Context, identifier, secret string) (string, error) {
	id := Normalize(identifier)

	// 1. Find credential
	cred, err := p.creds.GetByIdentifier(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrAuth
		}
		return "", unavailable("credential lookup", err)
	}

	// 2. Verify password
	if !cred.HasPassword() || !password.Verify(secret, cred.PasswordHash) {
		return "", domain.ErrAuth
	}

	// 3. Record login
	if err := p.creds.TouchLogin(ctx, cred.ID, p.clock.Now()); err != nil {
		p.log.Warn().Err(err).Str("identifier", id).Msg("failed to record login")
	}

	return p.issueToken(cred.Identifier, cred.EmployeeID)
}

// SendCode issues a fresh one-time code and delivers it. Earlier codes for
// the same identifier and purpose stop working.
func (p *LocalProvider) SendCode(ctx context.Context, identifier string, purpose domain.OTPPurpose) error {
	return p.issueCode(ctx, Normalize(identifier), purpose)
}

// VerifyCode consumes a valid code and issues a session token
func (p *LocalProvider) VerifyCode(ctx context.Context, identifier, code string, purpose domain.OTPPurpose) (string, error) {
	id := Normalize(identifier)
	if err := p.consumeCode(ctx, id, code, purpose); err != nil {
		return "", err
	}

	cred, err := p.ensureCredential(ctx, id)
	if err != nil {
		return "", err
	}
	return p.issueToken(cred.Identifier, cred.EmployeeID)
}

// SendPasswordReset issues a reset code to a registered identifier
func (p *LocalProvider) SendPasswordReset(ctx context.Context, identifier string) error {
	id := Normalize(identifier)
	if _, err := p.creds.GetByIdentifier(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrEmployeeNotFound
		}
		return unavailable("credential lookup", err)
	}
	return p.issueCode(ctx, id, domain.OTPPurposeReset)
}

// ConfirmPasswordReset consumes a reset code and stores the new password
func (p *LocalProvider) ConfirmPasswordReset(ctx context.Context, identifier, code, newPassword string) error {
	id := Normalize(identifier)
	if err := checkPassword(newPassword); err != nil {
		return err
	}
	if err := p.consumeCode(ctx, id, code, domain.OTPPurposeReset); err != nil {
		return err
	}
	return p.storePassword(ctx, id, newPassword)
}

// SetPassword stores a password for the holder of token
func (p *LocalProvider) SetPassword(ctx context.Context, token, newPassword string) error {
	id, err := p.ValidateToken(ctx, token)
	if err != nil {
		return err
	}
	return p.storePassword(ctx, id, newPassword)
}

// ValidateToken returns the identifier a session token was issued to
func (p *LocalProvider) ValidateToken(_ context.Context, token string) (string, error) {
	claims, err := jwt.ValidateSessionToken(token, p.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	return claims.Identifier, nil
}

// PurgeExpired deletes codes that are past their expiry
func (p *LocalProvider) PurgeExpired(ctx context.Context) (int64, error) {
	return p.codes.DeleteExpired(ctx, p.clock.Now())
}

// ============================================
// Helpers
// ============================================

func (p *LocalProvider) issueCode(ctx context.Context, id string, purpose domain.OTPPurpose) error {
	now := p.clock.Now()

	// 1. Supersede outstanding codes
	if err := p.codes.ConsumeAllPending(ctx, id, string(purpose), now); err != nil {
		return unavailable("supersede codes", err)
	}

	// 2. Generate and store hashed code
	code, err := generateSecureOTP(p.cfg.CodeLength)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	record := &models.OneTimeCode{
		Identifier: id,
		Purpose:    string(purpose),
		CodeHash:   password.HashToken(code),
		ExpiresAt:  now.Add(p.cfg.CodeTTL),
	}
	if err := p.codes.Create(ctx, record); err != nil {
		return unavailable("store code", err)
	}

	// 3. Deliver
	if err := p.sender.Send(ctx, Message{Identifier: id, Code: code, Purpose: purpose, ExpiresIn: p.cfg.CodeTTL}); err != nil {
		return unavailable("deliver code", err)
	}

	p.log.Info().Str("identifier", id).Str("purpose", string(purpose)).Msg("one-time code sent")
	return nil
}

func (p *LocalProvider) consumeCode(ctx context.Context, id, code string, purpose domain.OTPPurpose) error {
	now := p.clock.Now()

	record, err := p.codes.GetLatestPending(ctx, id, string(purpose))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidOTP
		}
		return unavailable("code lookup", err)
	}

	if record.IsExpired(now) || record.Attempts >= p.cfg.MaxAttempts {
		if err := p.codes.Consume(ctx, record.ID, now); err != nil {
			p.log.Warn().Err(err).Uint("code_id", record.ID).Msg("failed to retire code")
		}
		return domain.ErrInvalidOTP
	}

	if password.HashToken(strings.TrimSpace(code)) != record.CodeHash {
		if err := p.codes.IncrementAttempts(ctx, record.ID); err != nil {
			p.log.Warn().Err(err).Uint("code_id", record.ID).Msg("failed to count attempt")
		}
		return domain.ErrInvalidOTP
	}

	if err := p.codes.Consume(ctx, record.ID, now); err != nil {
		return unavailable("consume code", err)
	}
	return nil
}

// ensureCredential returns the identifier's credential, creating a
// password-less one on first verification.
func (p *LocalProvider) ensureCredential(ctx context.Context, id string) (*models.Credential, error) {
	cred, err := p.creds.GetByIdentifier(ctx, id)
	if err == nil {
		return cred, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, unavailable("credential lookup", err)
	}

	emp, err := p.directory.FindByContact(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotProvisioned
		}
		return nil, err
	}

	cred = &models.Credential{Identifier: id, EmployeeID: emp.ID, Verified: true}
	if err := p.creds.Create(ctx, cred); err != nil {
		return nil, unavailable("create credential", err)
	}
	return cred, nil
}

func checkPassword(candidate string) error {
	if rules := password.Validate(candidate); len(rules) > 0 {
		return domain.NewValidationError("password", rules...)
	}
	return nil
}

func (p *LocalProvider) storePassword(ctx context.Context, id, newPassword string) error {
	if err := checkPassword(newPassword); err != nil {
		return err
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := p.creds.UpdatePassword(ctx, id, hash, p.clock.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrEmployeeNotFound
		}
		return unavailable("store password", err)
	}
	return nil
}

func (p *LocalProvider) issueToken(identifier, employeeID string) (string, error) {
	token, err := jwt.GenerateSessionToken(identifier, employeeID, uuid.New().String(), p.cfg.JWTSecret, p.cfg.SessionTTL)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// unavailable marks a storage or delivery failure as a collaborator outage
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrNetwork, err)
}

// generateSecureOTP generates a cryptographically secure random numeric code
func generateSecureOTP(length int) (string, error) {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
