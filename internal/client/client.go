// Package client is a typed Go client for the InternLink HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
)

const requestTimeout = 8 * time.Second

var (
	ErrSessionExpired = errors.New("session expired, please log in again")
	ErrNoSession      = errors.New("no session")
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Session is the result of a login. It is passed explicitly to every call
// that needs authentication.
type Session struct {
	Token     string
	User      dto.UserResponse
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim is at or before now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// NewSession decodes the token's expiry without verifying its signature;
// the server remains the authority on validity.
func NewSession(token string, user dto.UserResponse) (*Session, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	session := &Session{Token: token, User: user}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		now:        time.Now,
	}
}

// Do sends a request to path under the API root and decodes the data field
// of the success envelope into out. A nil session sends no credentials.
func (c *Client) Do(ctx context.Context, session *Session, method, path string, body, out interface{}) error {
	if session != nil && session.Expired(c.now()) {
		return ErrSessionExpired
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != nil {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	start := time.Now()
	slog.Debug("api request", "method", method, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("api request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	slog.Debug("api response", "method", method, "path", path, "status", resp.StatusCode,
		"latency_ms", float64(time.Since(start).Microseconds())/1000)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var env dto.ErrorResponse
		if err := json.Unmarshal(raw, &env); err != nil || env.Message == "" {
			env.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp dto.AuthResponse
	if err := c.Do(ctx, nil, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return NewSession(resp.Token, resp.User)
}

func (c *Client) ListInternships(ctx context.Context) ([]models.Internship, error) {
	var internships []models.Internship
	err := c.Do(ctx, nil, http.MethodGet, "/internships", nil, &internships)
	return internships, err
}

func (c *Client) Apply(ctx context.Context, session *Session, req dto.ApplyRequest) (*models.Application, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	var application models.Application
	if err := c.Do(ctx, session, http.MethodPost, "/applications/apply", req, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (c *Client) Notifications(ctx context.Context, session *Session) ([]models.Notification, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	var notifications []models.Notification
	err := c.Do(ctx, session, http.MethodGet, "/notifications", nil, &notifications)
	return notifications, err
}

func (c *Client) Conversations(ctx context.Context, session *Session) ([]dto.Conversation, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	var conversations []dto.Conversation
	err := c.Do(ctx, session, http.MethodGet, "/messages/conversations", nil, &conversations)
	return conversations, err
}

// Poll calls fn immediately and then every interval until ctx is done or fn
// returns an error. It returns the error that stopped it.
func Poll(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				return err
			}
		}
	}
}
