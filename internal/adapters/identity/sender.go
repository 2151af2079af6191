package identity

import (
	"context"
	"strings"
	"time"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/pkg/logger"
)

// Message is one one-time code delivery
type Message struct {
	Identifier string
	Code       string
	Purpose    domain.OTPPurpose
	ExpiresIn  time.Duration
}

// Sender delivers one-time codes to their recipient
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes codes to the log. Only suitable for development.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender creates a sender that logs instead of delivering
func NewLogSender(log *logger.Logger) *LogSender {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSender{log: log.Component("otp-sender")}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Debug().
		Str("identifier", msg.Identifier).
		Str("purpose", string(msg.Purpose)).
		Str("code", msg.Code).
		Msg("one-time code (not delivered)")
	return nil
}

// Router sends email identifiers through Email and everything else through Phone
type Router struct {
	Email Sender
	Phone Sender
}

func (r Router) Send(ctx context.Context, msg Message) error {
	if strings.Contains(msg.Identifier, "@") {
		return r.Email.Send(ctx, msg)
	}
	return r.Phone.Send(ctx, msg)
}
