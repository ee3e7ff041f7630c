package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// ErrMissingCredentials is returned when a send is attempted without a bot
// token or chat ID. Credentials are only checked at send time so that no-op
// runs work without them.
var ErrMissingCredentials = errors.New("telegram: bot token or chat id missing")

// APIError represents a failure response from the Bot API.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.StatusCode, e.Description)
}

// Client sends documents to a fixed chat through the Bot API.
type Client struct {
	baseURL    string
	token      string
	chatID     string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// New creates a Bot API client for one chat.
func New(token, chatID string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		chatID:  chatID,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithBaseURL overrides the Bot API endpoint.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// SendDocument uploads content as a named file attachment to the chat.
func (c *Client) SendDocument(ctx context.Context, name string, content []byte) error {
	if c.token == "" || c.chatID == "" {
		return ErrMissingCredentials
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("chat_id", c.chatID); err != nil {
		return fmt.Errorf("write chat_id field: %w", err)
	}
	fw, err := mw.CreateFormFile("document", name)
	if err != nil {
		return fmt.Errorf("create document part: %w", err)
	}
	if _, err := fw.Write(content); err != nil {
		return fmt.Errorf("write document part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	url := c.baseURL + "/bot" + c.token + "/sendDocument"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		desc := apiDescription(respBody)
		if desc == "" {
			desc = http.StatusText(resp.StatusCode)
		}
		return &APIError{
			StatusCode:  resp.StatusCode,
			Description: desc,
		}
	}

	c.logger.Debug("document sent", "name", name, "bytes", len(content))
	return nil
}

// apiDescription pulls the human-readable error out of a Bot API response.
func apiDescription(body []byte) string {
	var r struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &r); err == nil {
		return r.Description
	}
	return ""
}
