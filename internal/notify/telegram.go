package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default transport configuration.
const (
	defaultEndpoint    = "https://api.telegram.org"
	defaultSendTimeout = 10 * time.Second
	parseMode          = "Markdown"
)

// TelegramOption applies a configuration option to the TelegramSender.
type TelegramOption func(*TelegramSender)

// WithEndpoint overrides the API base URL. Tests point this at a local
// httptest server.
func WithEndpoint(endpoint string) TelegramOption {
	return func(s *TelegramSender) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

// WithTimeout sets the per-send timeout.
func WithTimeout(timeout time.Duration) TelegramOption {
	return func(s *TelegramSender) {
		if timeout > 0 {
			s.client.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) TelegramOption {
	return func(s *TelegramSender) {
		if client != nil {
			s.client = client
		}
	}
}

// TelegramSender delivers messages through the Telegram bot API.
type TelegramSender struct {
	endpoint string
	token    string
	chatID   string
	client   *http.Client
}

// NewTelegramSender creates a sender for the given bot token and chat id.
func NewTelegramSender(token, chatID string, opts ...TelegramOption) *TelegramSender {
	s := &TelegramSender{
		endpoint: defaultEndpoint,
		token:    token,
		chatID:   chatID,
		client:   &http.Client{Timeout: defaultSendTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sendMessageRequest mirrors the bot API sendMessage body.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts the message. Success is any 2xx status; everything else is an
// ErrTransport-wrapped failure with no retry.
func (s *TelegramSender) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrTransport, err)
	}

	url := s.endpoint + "/bot" + s.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}
	return nil
}
