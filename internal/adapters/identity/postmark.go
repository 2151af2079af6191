package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultPostmarkURL is Postmark's single-email endpoint
const DefaultPostmarkURL = "https://api.postmarkapp.com/email"

// PostmarkSender emails one-time codes through Postmark
type PostmarkSender struct {
	serverToken string
	fromEmail   string
	endpoint    string
	httpClient  *http.Client
}

// PostmarkOption customizes a PostmarkSender
type PostmarkOption func(*PostmarkSender)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) PostmarkOption {
	return func(s *PostmarkSender) {
		s.httpClient = c
	}
}

// WithEndpoint replaces the API endpoint
func WithEndpoint(url string) PostmarkOption {
	return func(s *PostmarkSender) {
		s.endpoint = url
	}
}

// NewPostmarkSender creates a new Postmark sender
func NewPostmarkSender(serverToken, fromEmail string, opts ...PostmarkOption) *PostmarkSender {
	s := &PostmarkSender{
		serverToken: serverToken,
		fromEmail:   fromEmail,
		endpoint:    DefaultPostmarkURL,
		httpClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured returns true if the server token is set
func (s *PostmarkSender) Configured() bool {
	return s.serverToken != ""
}

type postmarkEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if !s.Configured() {
		return fmt.Errorf("email sender not configured: missing server token")
	}

	mail := Compose(msg)

	payload := postmarkEmail{
		From:     s.fromEmail,
		To:       msg.Identifier,
		Subject:  mail.Subject,
		HtmlBody: mail.HTML,
		TextBody: mail.Text,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", s.serverToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("postmark API error: status %d", resp.StatusCode)
	}

	return nil
}
