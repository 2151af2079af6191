package identity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/adapters/identity"
	"hrdesk/internal/core/domain"
)

type postmarkPayload struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	TextBody string `json:"TextBody"`
}

func TestPostmarkSendsCode(t *testing.T) {
	var received postmarkPayload
	var gotToken string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Postmark-Server-Token")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"MessageID": "test-id"}`))
	}))
	defer server.Close()

	s := identity.NewPostmarkSender("test-token", "noreply@co.com",
		identity.WithEndpoint(server.URL), identity.WithHTTPClient(server.Client()))

	err := s.Send(context.Background(), identity.Message{
		Identifier: "ann@co.com",
		Code:       "123456",
		Purpose:    domain.OTPPurposeReset,
		ExpiresIn:  5 * time.Minute,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "ann@co.com", received.To)
	assert.Equal(t, "noreply@co.com", received.From)
	assert.Equal(t, "Reset your HR dashboard password", received.Subject)
	assert.Contains(t, received.TextBody, "123456")
	assert.Contains(t, received.TextBody, "5 minutes")
}

func TestPostmarkAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	s := identity.NewPostmarkSender("test-token", "noreply@co.com", identity.WithEndpoint(server.URL))
	err := s.Send(context.Background(), identity.Message{Identifier: "ann@co.com", Code: "1"})
	assert.Error(t, err)
}

func TestPostmarkNotConfigured(t *testing.T) {
	s := identity.NewPostmarkSender("", "noreply@co.com")
	assert.False(t, s.Configured())
	assert.Error(t, s.Send(context.Background(), identity.Message{Identifier: "ann@co.com"}))
}

func TestComposeRegistration(t *testing.T) {
	mail := identity.Compose(identity.Message{Code: "654321", Purpose: domain.OTPPurposeRegister, ExpiresIn: 5 * time.Minute})
	assert.Equal(t, "Activate your HR dashboard account", mail.Subject)
	assert.Contains(t, mail.HTML, "<strong>654321</strong>")
}

func TestSMTPMessageHeaders(t *testing.T) {
	s := identity.NewSMTPSender("localhost", 2525, "", "", "noreply@co.com")
	m := s.Message(identity.Message{Identifier: "ann@co.com", Code: "1", Purpose: domain.OTPPurposeReset})
	assert.Equal(t, []string{"ann@co.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Reset your HR dashboard password"}, m.GetHeader("Subject"))
}
