// Package assistant is the HTTP client for the legal-assistant API.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"strings"
	"time"

	app_errors "legalbot/internal/errors"
)

// Client defines the operations the legal-assistant API exposes.
type Client interface {
	Chat(ctx context.Context, message string) (*ChatResponse, error)
	UploadFile(ctx context.Context, filename string, r io.Reader) (*UploadResponse, error)
	Stats(ctx context.Context) (*StatsResponse, error)
	ClearDocuments(ctx context.Context) (*ClearResponse, error)
}

// ChatRequest is the body of POST /v1/api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply payload of the chat endpoint. A response without
// a reply field is malformed.
type ChatResponse struct {
	Reply string `json:"reply" validate:"required"`
}

// UploadResponse is the payload returned for a successful upload. The server
// reports how many chunks the document was split into during indexing.
type UploadResponse struct {
	Message     string `json:"message"`
	Filename    string `json:"filename" validate:"required"`
	ChunksCount int    `json:"chunks_count"`
}

// StatsResponse describes the server-side document index. All fields are
// optional; the raw collection stats are kept opaque.
type StatsResponse struct {
	CollectionName string          `json:"collection_name"`
	DocumentCount  int             `json:"document_count"`
	Stats          json.RawMessage `json:"stats,omitempty"`
}

// ClearResponse is the payload of DELETE /v1/api/clear.
type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PayloadTooLargeError carries the server's detail message for an oversize
// upload (HTTP 413) so it can be surfaced to the user verbatim.
type PayloadTooLargeError struct {
	Detail string
}

func (e *PayloadTooLargeError) Error() string { return e.Detail }

// Is makes errors.Is(err, app_errors.ErrPayloadTooLarge) hold.
func (e *PayloadTooLargeError) Is(target error) bool {
	return target == app_errors.ErrPayloadTooLarge
}

const defaultTimeout = 30 * time.Second

type httpClient struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *slog.Logger
}

// Options configures a Client. Timeout defaults to 30s; the upstream API
// documents no SLA, so every call is bounded.
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Logger  *slog.Logger
}

func NewClient(opts Options) Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &httpClient{
		client:  newHTTPClient(opts.Timeout),
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		logger:  opts.Logger,
	}
}

// newHTTPClient returns a pooled HTTP client with conservative timeouts.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func (c *httpClient) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	body, err := json.Marshal(ChatRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("could not marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError("chat", resp)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("%w: could not decode chat response: %s", app_errors.ErrMalformedResponse, err)
	}
	if err := validateResponse(&chatResp); err != nil {
		return nil, err
	}
	return &chatResp, nil
}

func (c *httpClient) UploadFile(ctx context.Context, filename string, r io.Reader) (*UploadResponse, error) {
	// Uploads are capped at 1 MiB client-side, so buffering the whole body
	// is fine and keeps the request length known.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("could not create multipart field: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("could not read upload source: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("could not finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/api/uploadfile", &buf)
	if err != nil {
		return nil, fmt.Errorf("could not create upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		// The server confirmed the file is oversize; surface its detail
		// message instead of a generic failure.
		var errBody struct {
			Detail string `json:"detail"`
		}
		detail := "File size exceeds maximum allowed size"
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Detail != "" {
			detail = errBody.Detail
		}
		return nil, &PayloadTooLargeError{Detail: detail}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError("upload", resp)
	}

	var uploadResp UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return nil, fmt.Errorf("%w: could not decode upload response: %s", app_errors.ErrMalformedResponse, err)
	}
	if err := validateResponse(&uploadResp); err != nil {
		return nil, err
	}
	return &uploadResp, nil
}

func (c *httpClient) Stats(ctx context.Context) (*StatsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/api/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("could not create stats request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError("stats", resp)
	}

	var statsResp StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&statsResp); err != nil {
		return nil, fmt.Errorf("%w: could not decode stats response: %s", app_errors.ErrMalformedResponse, err)
	}
	return &statsResp, nil
}

func (c *httpClient) ClearDocuments(ctx context.Context) (*ClearResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/v1/api/clear", nil)
	if err != nil {
		return nil, fmt.Errorf("could not create clear request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError("clear", resp)
	}

	var clearResp ClearResponse
	if err := json.NewDecoder(resp.Body).Decode(&clearResp); err != nil {
		return nil, fmt.Errorf("%w: could not decode clear response: %s", app_errors.ErrMalformedResponse, err)
	}
	return &clearResp, nil
}

func (c *httpClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *httpClient) statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	c.logger.Warn("assistant API returned non-2xx status",
		"op", op, "status", resp.StatusCode, "body", string(body))
	return fmt.Errorf("%w: %s returned status %d", app_errors.ErrUpstream, op, resp.StatusCode)
}
