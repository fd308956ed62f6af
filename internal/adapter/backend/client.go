// Package backend is the HTTP client for the hosted auth and object storage
// service that owns identities and evidence files.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/precinct-records/internal/config"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

// Client talks to the auth (GoTrue-style) and storage REST APIs.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	bucket     string
	httpClient *http.Client
	// uploadClient streams evidence bodies and is bounded by UploadTimeout
	// instead of RequestTimeout.
	uploadClient *http.Client
	log          *slog.Logger
}

// NewClient creates a Client from BackendConfig.
func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.URL, "/"),
		anonKey:      cfg.AnonKey,
		serviceKey:   cfg.ServiceKey,
		bucket:       cfg.EvidenceBucket,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		uploadClient: &http.Client{Timeout: cfg.UploadTimeout},
		log:          logger.With("adapter", "backend"),
	}
}

// apiError covers the error shapes returned by the auth and storage APIs.
type apiError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	StatusCode       string `json:"statusCode"`
}

func (e apiError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// newRequest builds a request with the api key header set.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("backend: create request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("backend: encode body: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do executes req and decodes a 2xx JSON body into out (if non-nil).
// Non-2xx responses are mapped to domain errors.
func (c *Client) do(req *http.Request, op string, out any) error {
	return c.doWith(c.httpClient, req, op, out)
}

func (c *Client) doWith(hc *http.Client, req *http.Request, op string, out any) error {
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.log.ErrorContext(req.Context(), "backend request failed",
			slog.String("op", op), slog.String("error", err.Error()))
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return fmt.Errorf("backend: %s: %w", op, ctxErr)
		}
		return fmt.Errorf("backend: %s: %w: %v", op, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: %s: read body: %w", op, err)
	}

	c.log.DebugContext(req.Context(), "backend response",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("backend: %s: decode json: %w", op, err)
		}
		return nil
	}

	return mapStatus(op, resp.StatusCode, body)
}

// mapStatus converts an error response into a domain error.
func mapStatus(op string, status int, body []byte) error {
	var apiErr apiError
	_ = json.Unmarshal(body, &apiErr)
	msg := apiErr.text()
	if msg == "" {
		msg = http.StatusText(status)
	}
	lower := strings.ToLower(msg)

	switch {
	case apiErr.ErrorCode == "user_already_exists" || strings.Contains(lower, "already registered"):
		return fmt.Errorf("backend: %s: %w: an account with this email already exists", op, domain.ErrAlreadyExists)
	case status == http.StatusConflict || strings.Contains(lower, "already exists") || apiErr.StatusCode == "409":
		return fmt.Errorf("backend: %s: %w: %s", op, domain.ErrAlreadyExists, msg)
	case apiErr.Error == "invalid_grant" || strings.Contains(lower, "invalid login credentials"):
		return fmt.Errorf("backend: %s: %w: invalid login credentials", op, domain.ErrUnauthorized)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("backend: %s: %w: %s", op, domain.ErrUnauthorized, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("backend: %s: %w: %s", op, domain.ErrNotFound, msg)
	case status == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("backend: %s: %w", op, domain.NewValidationError("file", "file too large"))
	case status >= 400 && status < 500:
		return fmt.Errorf("backend: %s: %w: %s", op, domain.ErrValidation, msg)
	default:
		return fmt.Errorf("backend: %s: %w: status %d: %s", op, domain.ErrBackendUnavailable, status, msg)
	}
}

// Ping checks that the auth API answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/health", nil)
	if err != nil {
		return err
	}
	return c.do(req, "health", nil)
}
