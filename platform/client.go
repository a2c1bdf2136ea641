// Package platform is the typed client for the retention-platform REST API.
// Every screen in the app goes through it; it is the only place HTTP requests
// to the platform are made.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionExpired is returned for any HTTP 401. Callers clear the stored
// credentials and send the user back to the login screen.
var ErrSessionExpired = errors.New("session expired")

// APIError carries a non-2xx platform response. Detail is the body's
// conventional {"detail": "..."} message, or a generic fallback.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Client talks to the platform API. It holds no session state; the token is
// passed per call and attached as a bearer header.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a platform client with the fixed client-wide timeout.
// No retries, no backoff; a failed request surfaces its message to the user.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured platform host, used to display webhook URLs.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, token, method, path string, payload any) ([]byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, token)
}

// doMultipart uploads a file with optional extra form fields. Used by the
// CSV import endpoints; the file is streamed through untouched — the server
// is the sole source of parsing truth.
func (c *Client) doMultipart(ctx context.Context, token, path, fieldName, filename string, file io.Reader, extra map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy upload: %w", err)
	}
	for k, v := range extra {
		if err := writer.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, token)
}

// doDownload fetches a blob response (CSV exports) and returns the bytes
// plus the filename from Content-Disposition, if the server sent one.
func (c *Client) doDownload(ctx context.Context, token, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}

	data, header, err := c.sendRaw(req, token)
	if err != nil {
		return nil, "", err
	}

	filename := ""
	if cd := header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			filename = params["filename"]
		}
	}
	return data, filename, nil
}

func (c *Client) send(req *http.Request, token string) ([]byte, error) {
	data, _, err := c.sendRaw(req, token)
	return data, err
}

func (c *Client) sendRaw(req *http.Request, token string) ([]byte, http.Header, error) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Warn("platform request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, nil, fmt.Errorf("platform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	zap.L().Debug("platform response",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, nil, ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &APIError{Status: resp.StatusCode, Detail: detailMessage(body)}
	}
	return body, resp.Header, nil
}

// detailMessage extracts the conventional {"detail": "..."} error body, with
// a generic fallback when the body is empty or not in that shape.
func detailMessage(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return "Something went wrong. Please try again."
}

// decodeList handles the platform's inconsistent list shapes: some endpoints
// return a bare JSON array, others wrap it as {"data": [...]}.
func decodeList[T any](body []byte) ([]T, error) {
	var bare []T
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return wrapped.Data, nil
}

func decodeObject[T any](body []byte, out *T) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
